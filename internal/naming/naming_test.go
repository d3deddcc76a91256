package naming

import (
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want EpisodeFile
	}{
		{
			name: "chinese series single tag",
			in:   "[ANi] 间谍过家家 - 01 [1080P].mp4",
			want: EpisodeFile{Publisher: "ANi", Series: "间谍过家家", Episode: "01", Tags: "[1080P]", Extension: ".mp4"},
		},
		{
			name: "ideographic spaces between fields",
			in:   "[ANi]\u3000间谍过家家\u3000-\u300001\u3000[1080P].mp4",
			want: EpisodeFile{Publisher: "ANi", Series: "间谍过家家", Episode: "01", Tags: "[1080P]", Extension: ".mp4"},
		},
		{
			name: "two tag groups captured together",
			in:   "[EMBER] 鬼灭之刃 - 01 [1080p][Multiple Subtitle].avi",
			want: EpisodeFile{Publisher: "EMBER", Series: "鬼灭之刃", Episode: "01", Tags: "[1080p][Multiple Subtitle]", Extension: ".avi"},
		},
		{
			name: "single digit episode padded",
			in:   "[ANi] 测试 - 1 [Tag].mp4",
			want: EpisodeFile{Publisher: "ANi", Series: "测试", Episode: "01", Tags: "[Tag]", Extension: ".mp4"},
		},
		{
			name: "multiple tag groups and spaces in series",
			in:   "[Nekomoe kissaten] Sousou no Frieren - 12 [WebRip][1080p][CHS].mkv",
			want: EpisodeFile{Publisher: "Nekomoe kissaten", Series: "Sousou no Frieren", Episode: "12", Tags: "[WebRip][1080p][CHS]", Extension: ".mkv"},
		},
		{
			name: "three digit episode kept",
			in:   "[SubsPlease] One Piece - 1100 [720p].mkv",
			want: EpisodeFile{Publisher: "SubsPlease", Series: "One Piece", Episode: "1100", Tags: "[720p]", Extension: ".mkv"},
		},
		{
			name: "extension lower cased",
			in:   "[ANi] Show - 3 [1080P].MP4",
			want: EpisodeFile{Publisher: "ANi", Series: "Show", Episode: "03", Tags: "[1080P]", Extension: ".mp4"},
		},
		{
			name: "leading zero preserved",
			in:   "[ANi] Show - 007 [x].avi",
			want: EpisodeFile{Publisher: "ANi", Series: "Show", Episode: "007", Tags: "[x]", Extension: ".avi"},
		},
		{
			name: "extra whitespace trimmed",
			in:   "[ ANi ]   Show   -   5   [tag].mkv",
			want: EpisodeFile{Publisher: "ANi", Series: "Show", Episode: "05", Tags: "[tag]", Extension: ".mkv"},
		},
		{
			name: "tags with spaces between groups",
			in:   "[Grp] Show - 10 [A] [B].mkv",
			want: EpisodeFile{Publisher: "Grp", Series: "Show", Episode: "10", Tags: "[A] [B]", Extension: ".mkv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join("downloads", tt.in)
			got, ok := Parse(path)
			if !ok {
				t.Fatalf("Parse(%q) did not match", tt.in)
			}
			tt.want.SourcePath = path
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	inputs := []string{
		"",
		".",
		"random_video.mp4",
		"测试 - 01.mp4",
		"[ANi] Show 01 [1080P].mp4",
		"[ANi] Show - 01.mp4",
		"[ANi] Show - 01 [1080P]",
		"[ANi] Show - EP01 [1080P].mp4",
		"[] Show - 01 [1080P].mp4",
		"ANi Show - 01 [1080P].mp4",
		"[ANi] Show - 01 1080P.mp4",
		"\xff\xfe\xfd",
		"[ANi] \xff - 01 [x]",
	}
	for _, in := range inputs {
		if rec, ok := Parse(in); ok {
			t.Fatalf("Parse(%q) matched unexpectedly: %+v", in, rec)
		}
	}
}

func TestParseUsesBaseName(t *testing.T) {
	path := filepath.Join("[Dir] Not - 01 [x].mkv", "plain.mkv")
	if _, ok := Parse(path); ok {
		t.Fatalf("expected directory components to be ignored")
	}
}

func TestParseNormalizesToNFC(t *testing.T) {
	decomposed := "[Grp] Cafe\u0301 - 2 [x].mkv"
	composed := "[Grp] Caf\u00e9 - 2 [x].mkv"

	a, ok := Parse(decomposed)
	if !ok {
		t.Fatalf("decomposed name did not match")
	}
	b, ok := Parse(composed)
	if !ok {
		t.Fatalf("composed name did not match")
	}
	if a.Series != b.Series {
		t.Fatalf("series mismatch: %q vs %q", a.Series, b.Series)
	}
	if a.SourcePath != decomposed {
		t.Fatalf("source path rewritten: %q", a.SourcePath)
	}
}

func TestFileName(t *testing.T) {
	rec := EpisodeFile{Episode: "01", Tags: "[1080P]", Extension: ".mp4"}
	if got := rec.FileName(); got != "01 [1080P].mp4" {
		t.Fatalf("FileName() = %q", got)
	}
}

func TestPadEpisode(t *testing.T) {
	cases := map[string]string{"0": "00", "1": "01", "10": "10", "100": "100"}
	for in, want := range cases {
		if got := padEpisode(in); got != want {
			t.Fatalf("padEpisode(%q) = %q, want %q", in, got, want)
		}
	}
}
