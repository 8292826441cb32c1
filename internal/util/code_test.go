package util

import (
	"strings"
	"testing"
)

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode(16)
	if err != nil {
		t.Fatalf("GenerateCode() error: %v", err)
	}
	if len(code) != 16 {
		t.Errorf("len(code) = %d, want 16", len(code))
	}
	for _, c := range code {
		if !strings.ContainsRune(codeCharset, c) {
			t.Errorf("code contains byte %q outside charset", c)
		}
	}
}

func TestGenerateCodeUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateCode(16)
		if err != nil {
			t.Fatalf("GenerateCode() error: %v", err)
		}
		if seen[code] {
			t.Fatalf("duplicate code %s after %d draws", code, i)
		}
		seen[code] = true
	}
}
