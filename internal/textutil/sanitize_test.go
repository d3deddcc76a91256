package textutil

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeToken(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", "unknown"},
		{"   ", "unknown"},
		{"Anime Library", "anime_library"},
		{"__x__", "x"},
		{"间谍过家家", "unknown"},
		{"Show-2024_HD", "show-2024_hd"},
		{"/media/anime/", "media_anime"},
	}
	for _, tc := range cases {
		if got := SanitizeToken(tc.in); got != tc.want {
			t.Fatalf("SanitizeToken(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPathToken(t *testing.T) {
	base := t.TempDir()
	a := PathToken(filepath.Join(base, "one", "anime"))
	b := PathToken(filepath.Join(base, "two", "anime"))
	if a == b {
		t.Fatalf("distinct paths share token %q", a)
	}
	if !strings.HasPrefix(a, "anime-") {
		t.Fatalf("unexpected prefix in %q", a)
	}
	if again := PathToken(filepath.Join(base, "one", "anime") + string(filepath.Separator)); again != a {
		t.Fatalf("token not stable across trailing separator: %q vs %q", again, a)
	}
}
