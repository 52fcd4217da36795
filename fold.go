package charfreq

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseSense selects the folding applied to each character before it is
// used as a counting key.
type CaseSense int

const (
	// InsensitiveASCIIOnly lowercases ASCII letters only (default)
	InsensitiveASCIIOnly CaseSense = iota
	// Insensitive applies full Unicode lowercasing
	Insensitive
	// Sensitive counts characters exactly as they appear
	Sensitive
)

// String returns the string representation of the case policy.
func (cs CaseSense) String() string {
	switch cs {
	case InsensitiveASCIIOnly:
		return "insensitive-ascii"
	case Insensitive:
		return "insensitive"
	case Sensitive:
		return "sensitive"
	default:
		return "unknown"
	}
}

// UnsupportedFoldError reports a character whose full Unicode lowercase
// form spans more than one character (e.g. 'İ', which lowercases to an
// 'i' plus a combining dot). Such a form cannot serve as a single
// counting key under the Insensitive policy, so the count is rejected.
type UnsupportedFoldError struct {
	Char   rune   // the character that could not be folded
	Folded string // its multi-character lowercase form
}

func (e *UnsupportedFoldError) Error() string {
	return fmt.Sprintf("charfreq: %q lowercases to %q, which is not a single character", e.Char, e.Folded)
}

// foldFunc maps one input character to its counting key.
type foldFunc func(r rune) (rune, error)

// newFolder returns the folding function for the given policy. Each
// worker builds its own folder: the caser behind Insensitive carries
// internal state and is not safe for concurrent use.
// Unrecognized policy values fold like the default InsensitiveASCIIOnly.
func newFolder(cs CaseSense) foldFunc {
	switch cs {
	case Sensitive:
		return func(r rune) (rune, error) {
			return r, nil
		}
	case Insensitive:
		lower := cases.Lower(language.Und)
		return func(r rune) (rune, error) {
			folded := lower.String(string(r))
			key, size := utf8.DecodeRuneInString(folded)
			if size != len(folded) {
				return 0, &UnsupportedFoldError{Char: r, Folded: folded}
			}
			return key, nil
		}
	default:
		return func(r rune) (rune, error) {
			if r >= 'A' && r <= 'Z' {
				return r + ('a' - 'A'), nil
			}
			return r, nil
		}
	}
}
