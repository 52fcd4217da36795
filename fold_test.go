package charfreq

import (
	"errors"
	"testing"
)

func TestFolding(t *testing.T) {
	tests := []struct {
		name     string
		policy   CaseSense
		char     rune
		expected rune
	}{
		{"sensitive keeps uppercase", Sensitive, 'A', 'A'},
		{"sensitive keeps lowercase", Sensitive, 'a', 'a'},
		{"sensitive keeps non-ascii", Sensitive, 'Ä', 'Ä'},
		{"sensitive keeps cjk", Sensitive, '维', '维'},
		{"ascii lowercases A", InsensitiveASCIIOnly, 'A', 'a'},
		{"ascii lowercases Z", InsensitiveASCIIOnly, 'Z', 'z'},
		{"ascii keeps lowercase", InsensitiveASCIIOnly, 'h', 'h'},
		{"ascii keeps digit", InsensitiveASCIIOnly, '7', '7'},
		{"ascii keeps punctuation", InsensitiveASCIIOnly, '!', '!'},
		{"ascii leaves non-ascii alone", InsensitiveASCIIOnly, 'Ä', 'Ä'},
		{"ascii leaves cjk alone", InsensitiveASCIIOnly, '熊', '熊'},
		{"unicode lowercases ascii", Insensitive, 'A', 'a'},
		{"unicode lowercases umlaut", Insensitive, 'Ä', 'ä'},
		{"unicode lowercases sigma", Insensitive, 'Σ', 'σ'},
		{"unicode keeps cjk", Insensitive, '尼', '尼'},
		{"unicode keeps sharp s", Insensitive, 'ß', 'ß'},
		{"unknown policy folds like default", CaseSense(99), 'A', 'a'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fold := newFolder(tt.policy)
			result, err := fold(tt.char)
			if err != nil {
				t.Fatalf("fold(%q) under %v returned error: %v", tt.char, tt.policy, err)
			}
			if result != tt.expected {
				t.Errorf("fold(%q) under %v = %q, want %q", tt.char, tt.policy, result, tt.expected)
			}
		})
	}
}

func TestFoldingMultiCharExpansion(t *testing.T) {
	// 'İ' (U+0130) fully lowercases to "i" plus a combining dot above,
	// which is two characters and cannot be a single counting key
	fold := newFolder(Insensitive)
	_, err := fold('İ')
	if err == nil {
		t.Fatal("fold('İ') under Insensitive expected error, got nil")
	}

	var foldErr *UnsupportedFoldError
	if !errors.As(err, &foldErr) {
		t.Fatalf("fold('İ') error = %T, want *UnsupportedFoldError", err)
	}
	if foldErr.Char != 'İ' {
		t.Errorf("UnsupportedFoldError.Char = %q, want %q", foldErr.Char, 'İ')
	}
	if foldErr.Folded == "" {
		t.Error("UnsupportedFoldError.Folded is empty, want the lowercase expansion")
	}
}

func TestFoldingASCIIOnlyNeverFails(t *testing.T) {
	// the character that breaks Insensitive is fine under the default policy
	fold := newFolder(InsensitiveASCIIOnly)
	result, err := fold('İ')
	if err != nil {
		t.Fatalf("fold('İ') under InsensitiveASCIIOnly returned error: %v", err)
	}
	if result != 'İ' {
		t.Errorf("fold('İ') = %q, want identity %q", result, 'İ')
	}
}

func TestCaseSenseString(t *testing.T) {
	tests := []struct {
		policy   CaseSense
		expected string
	}{
		{InsensitiveASCIIOnly, "insensitive-ascii"},
		{Insensitive, "insensitive"},
		{Sensitive, "sensitive"},
		{CaseSense(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := tt.policy.String(); result != tt.expected {
				t.Errorf("CaseSense(%d).String() = %q, want %q", int(tt.policy), result, tt.expected)
			}
		})
	}
}
