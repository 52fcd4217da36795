// Package charfreq counts the frequency of each character in a text
// across multiple goroutines.
//
// The text is partitioned into contiguous character segments, one
// worker goroutine counts each segment into a local partial map, and
// the partials are summed into a single map from character to
// occurrence count. A case policy (CaseSense) decides how characters
// are folded before counting; the default lowercases ASCII letters
// only. Results are independent of the worker count and of goroutine
// scheduling.
//
// Usage Example:
//
//	freq, err := charfreq.Count("Hello, World!")
//	// freq['l'] == 3, freq['o'] == 2
//
// The four entry points form a 2×2 grid: thread count auto-detected or
// explicit, case policy defaulted or explicit.
package charfreq

import (
	"errors"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FrequencyMap maps each counting key to its occurrence count. For a
// successful count, the values always sum to the number of characters
// in the input text.
type FrequencyMap map[rune]int

// ErrInvalidThreadCount rejects explicit thread counts below 1.
var ErrInvalidThreadCount = errors.New("charfreq: thread count must be at least 1")

// Engine drives the partition → count → merge pipeline.
//
// The zero value works but never spawns more than one worker; use New
// to get an engine that sizes itself to the host.
type Engine struct {
	// NumCPU reports the number of available processing units and is
	// the thread count when none is given explicitly. It is a field so
	// tests can pin it to a fixed value instead of depending on the
	// host. Values below 1 are clamped to 1.
	NumCPU func() int
}

// New creates an Engine that defaults its worker count to the host CPU
// count.
func New() *Engine {
	return &Engine{NumCPU: runtime.NumCPU}
}

var defaultEngine = New()

// Count returns the character frequencies of text using one worker per
// host CPU and the default InsensitiveASCIIOnly case policy, so 'A'
// and 'a' are tallied under the single key 'a'.
func Count(text string) (FrequencyMap, error) {
	return defaultEngine.Count(text)
}

// CountWithThreads is Count with an explicit worker count.
// It returns ErrInvalidThreadCount when threads is below 1.
func CountWithThreads(text string, threads int) (FrequencyMap, error) {
	return defaultEngine.CountWithThreads(text, threads)
}

// CountWithCase is Count with an explicit case policy. Under
// Insensitive, a character whose full lowercase form is not a single
// character yields an *UnsupportedFoldError.
func CountWithCase(text string, cs CaseSense) (FrequencyMap, error) {
	return defaultEngine.CountWithCase(text, cs)
}

// CountWithThreadsAndCase is Count with both an explicit worker count
// and an explicit case policy.
func CountWithThreadsAndCase(text string, threads int, cs CaseSense) (FrequencyMap, error) {
	return defaultEngine.CountWithThreadsAndCase(text, threads, cs)
}

// Count counts with the engine's auto-detected worker count and the
// default case policy.
func (e *Engine) Count(text string) (FrequencyMap, error) {
	return e.CountWithThreadsAndCase(text, e.autoThreads(), InsensitiveASCIIOnly)
}

// CountWithThreads counts with an explicit worker count and the
// default case policy.
func (e *Engine) CountWithThreads(text string, threads int) (FrequencyMap, error) {
	return e.CountWithThreadsAndCase(text, threads, InsensitiveASCIIOnly)
}

// CountWithCase counts with the engine's auto-detected worker count
// and an explicit case policy.
func (e *Engine) CountWithCase(text string, cs CaseSense) (FrequencyMap, error) {
	return e.CountWithThreadsAndCase(text, e.autoThreads(), cs)
}

// CountWithThreadsAndCase counts with an explicit worker count and an
// explicit case policy. Every other entry point funnels into here.
func (e *Engine) CountWithThreadsAndCase(text string, threads int, cs CaseSense) (FrequencyMap, error) {
	if threads < 1 {
		return nil, ErrInvalidThreadCount
	}

	chars := []rune(text)
	if len(chars) == 0 {
		return FrequencyMap{}, nil
	}

	// never spawn more workers than there are characters
	if threads > len(chars) {
		threads = len(chars)
	}
	segments := partition(len(chars), threads)

	// a single segment needs no fan-out; count it inline
	if len(segments) == 1 {
		return countRange(chars, segments[0], newFolder(cs))
	}

	slog.Debug("Dispatching count workers", "chars", len(chars), "workers", len(segments), "case", cs.String())

	// chars is shared read-only across workers; each partial lands in
	// its own slot, so the fan-out runs without locks
	partials := make([]FrequencyMap, len(segments))
	var g errgroup.Group
	for i, seg := range segments {
		i, seg := i, seg
		g.Go(func() error {
			partial, err := countRange(chars, seg, newFolder(cs))
			if err != nil {
				return err
			}
			partials[i] = partial
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeFrequencies(partials), nil
}

// autoThreads resolves the default worker count from the engine's CPU
// source, clamped to at least 1.
func (e *Engine) autoThreads() int {
	threads := 1
	if e.NumCPU != nil {
		threads = e.NumCPU()
	}
	if threads < 1 {
		threads = 1
	}
	return threads
}
