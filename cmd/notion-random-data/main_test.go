package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		env, err := loadDotEnv(filepath.Join(t.TempDir(), "nope"))
		if err != nil {
			t.Fatal(err)
		}
		if len(env) != 0 {
			t.Errorf("expected empty map, got %v", env)
		}
	})

	t.Run("Parse", func(t *testing.T) {
		p := writeEnv(t, "# comment\n\nNOTION_KEY=secret_abc\nQUOTED=\"a b\\tc\"\nexport OTHER = x=y \ngarbage\n")
		env, err := loadDotEnv(p)
		if err != nil {
			t.Fatal(err)
		}
		want := map[string]string{
			"NOTION_KEY": "secret_abc",
			"QUOTED":     "a b\tc",
			"OTHER":      "x=y",
		}
		if diff := cmp.Diff(want, env); diff != "" {
			t.Errorf("env mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("SingleQuotes", func(t *testing.T) {
		for _, line := range []string{"K='v'", "K='v", "K=v'"} {
			if _, err := loadDotEnv(writeEnv(t, line+"\n")); err == nil {
				t.Errorf("%q: expected error", line)
			}
		}
	})

	t.Run("BadQuote", func(t *testing.T) {
		_, err := loadDotEnv(writeEnv(t, "K=\"unterminated\n"))
		if err == nil || !strings.Contains(err.Error(), "unquote K") {
			t.Errorf("unexpected error %v", err)
		}
	})
}

func TestDropZero(t *testing.T) {
	for _, a := range []slog.Attr{slog.String("s", ""), slog.Int("n", 0), slog.Bool("b", false), slog.Any("x", nil)} {
		if got := dropZero(nil, a); !got.Equal(slog.Attr{}) {
			t.Errorf("%v should be dropped", a)
		}
	}
	a := slog.Int("n", 3)
	if got := dropZero(nil, a); !got.Equal(a) {
		t.Errorf("%v should be kept", a)
	}
}
