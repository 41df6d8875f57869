package i18n_test

import (
	"testing"

	"github.com/reoring/bytepack/i18n"
)

func TestTranslator_LanguageSwitch(t *testing.T) {
	t.Cleanup(func() { i18n.SetLanguage("en") })

	if got := i18n.T("nested_default", nil); got != "cannot have default value on nested types" {
		t.Fatalf("en message mismatch: %q", got)
	}
	i18n.SetLanguage("ja")
	if got := i18n.T("nested_default", nil); got == "cannot have default value on nested types" {
		t.Fatalf("ja message not applied: %q", got)
	}
	i18n.SetLanguage("en")
	if got := i18n.T("unknown_code", nil); got != "unknown_code" {
		t.Fatalf("unknown codes must pass through, got %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string { return "X:" + code }

func TestTranslator_CustomAndReset(t *testing.T) {
	t.Cleanup(func() { i18n.SetTranslator(nil) })

	i18n.SetTranslator(upperTranslator{})
	if got := i18n.T("bad_pattern", nil); got != "X:bad_pattern" {
		t.Fatalf("custom translator not used: %q", got)
	}
	i18n.SetTranslator(nil)
	if got := i18n.T("bad_pattern", nil); got != "invalid pattern" {
		t.Fatalf("reset to builtin failed: %q", got)
	}
}
