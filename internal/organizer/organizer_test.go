package organizer_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"syscall"
	"testing"

	"aniorg/internal/fileutil"
	"aniorg/internal/logging"
	"aniorg/internal/naming"
	"aniorg/internal/organizer"
	"aniorg/internal/services"
	"aniorg/internal/testsupport"
)

func parseFixture(t *testing.T, dir, name, content string) naming.EpisodeFile {
	t.Helper()
	path := filepath.Join(dir, name)
	testsupport.WriteFile(t, path, content)
	rec, ok := naming.Parse(path)
	if !ok {
		t.Fatalf("fixture %q does not parse", name)
	}
	return rec
}

func TestDestinationPath(t *testing.T) {
	rec := naming.EpisodeFile{Publisher: "ANi", Series: "间谍过家家", Episode: "01", Tags: "[1080P]", Extension: ".mp4"}
	got := organizer.DestinationPath(rec, filepath.Join("lib"))
	want := filepath.Join("lib", "间谍过家家", "01 [1080P].mp4")
	if got != want {
		t.Fatalf("DestinationPath = %q, want %q", got, want)
	}
	if strings.Contains(got, "ANi") {
		t.Fatalf("publisher leaked into destination %q", got)
	}
}

func TestOrganizeMove(t *testing.T) {
	src, target := t.TempDir(), t.TempDir()
	rec := parseFixture(t, src, "[ANi] 间谍过家家 - 1 [1080P].mp4", "episode-one")

	engine := organizer.NewEngine(logging.NewNop())
	out := engine.Organize(context.Background(), rec, target, organizer.ModeMove, false)
	if !out.OK() {
		t.Fatalf("move failed: %v", out.Err)
	}
	want := filepath.Join(target, "间谍过家家", "01 [1080P].mp4")
	if out.Destination != want {
		t.Fatalf("destination = %q, want %q", out.Destination, want)
	}
	if got := testsupport.ReadFile(t, want); got != "episode-one" {
		t.Fatalf("destination content = %q", got)
	}
	testsupport.AssertMissing(t, rec.SourcePath)
}

func TestOrganizeCopy(t *testing.T) {
	src, target := t.TempDir(), t.TempDir()
	rec := parseFixture(t, src, "[EMBER] 鬼灭之刃 - 01 [1080p][Multiple Subtitle].avi", "payload")

	engine := organizer.NewEngine(logging.NewNop())
	out := engine.Organize(context.Background(), rec, target, organizer.ModeCopy, false)
	if !out.OK() {
		t.Fatalf("copy failed: %v", out.Err)
	}
	dest := filepath.Join(target, "鬼灭之刃", "01 [1080p][Multiple Subtitle].avi")
	if got := testsupport.ReadFile(t, dest); got != "payload" {
		t.Fatalf("destination content = %q", got)
	}
	if got := testsupport.ReadFile(t, rec.SourcePath); got != "payload" {
		t.Fatalf("source modified: %q", got)
	}
}

func TestOrganizeOverwritesExistingDestination(t *testing.T) {
	for _, mode := range []organizer.Mode{organizer.ModeMove, organizer.ModeCopy} {
		t.Run(mode.String(), func(t *testing.T) {
			src, target := t.TempDir(), t.TempDir()
			rec := parseFixture(t, src, "[Grp] Show - 2 [x].mkv", "new")
			dest := filepath.Join(target, "Show", "02 [x].mkv")
			testsupport.WriteFile(t, dest, "old content that is longer")

			out := organizer.NewEngine(logging.NewNop()).Organize(context.Background(), rec, target, mode, false)
			if !out.OK() {
				t.Fatalf("organize failed: %v", out.Err)
			}
			if got := testsupport.ReadFile(t, dest); got != "new" {
				t.Fatalf("destination content = %q, want %q", got, "new")
			}
		})
	}
}

func TestOrganizeDryRunLeavesFilesystemUntouched(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "in")
	target := filepath.Join(root, "out")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	rec := parseFixture(t, src, "[ANi] 测试 - 1 [Tag].mp4", "data")
	before := testsupport.Snapshot(t, root)

	var preview bytes.Buffer
	engine := organizer.NewEngine(logging.NewNop(), organizer.WithPreview(&preview))
	for _, mode := range []organizer.Mode{organizer.ModeMove, organizer.ModeCopy, organizer.ModeLink} {
		preview.Reset()
		out := engine.Organize(context.Background(), rec, target, mode, true)
		if !out.OK() || !out.DryRun {
			t.Fatalf("dry run %s: ok=%v dry=%v err=%v", mode, out.OK(), out.DryRun, out.Err)
		}
		wantLine := "[DRY-RUN] " + rec.SourcePath + " -> " + filepath.Join(target, "测试", "01 [Tag].mp4") + "\n"
		if preview.String() != wantLine {
			t.Fatalf("preview = %q, want %q", preview.String(), wantLine)
		}
	}

	if after := testsupport.Snapshot(t, root); !reflect.DeepEqual(before, after) {
		t.Fatalf("dry run changed the tree:\nbefore %v\nafter  %v", before, after)
	}
}

func TestOrganizeLinkUsesLinker(t *testing.T) {
	src, target := t.TempDir(), t.TempDir()
	rec := parseFixture(t, src, "[Grp] Show - 3 [x].mkv", "data")

	var gotTarget, gotSource string
	linker := fileutil.LinkerFunc(func(target, source string) error {
		gotTarget, gotSource = target, source
		return os.Link(source, target)
	})
	out := organizer.NewEngine(logging.NewNop(), organizer.WithLinker(linker)).
		Organize(context.Background(), rec, target, organizer.ModeLink, false)
	if !out.OK() {
		t.Fatalf("link failed: %v", out.Err)
	}
	if gotSource != rec.SourcePath || gotTarget != out.Destination {
		t.Fatalf("linker called with (%q, %q)", gotTarget, gotSource)
	}
	if !fileutil.SameFile(rec.SourcePath, out.Destination) {
		t.Fatal("expected destination to share the source inode")
	}
}

func TestOrganizeLinkAlreadyInPlace(t *testing.T) {
	src, target := t.TempDir(), t.TempDir()
	rec := parseFixture(t, src, "[Grp] Show - 4 [x].mkv", "data")
	dest := organizer.DestinationPath(rec, target)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Link(rec.SourcePath, dest); err != nil {
		t.Skipf("hard links unavailable: %v", err)
	}

	calls := 0
	linker := fileutil.LinkerFunc(func(string, string) error {
		calls++
		return errors.New("should not be called")
	})
	out := organizer.NewEngine(logging.NewNop(), organizer.WithLinker(linker)).
		Organize(context.Background(), rec, target, organizer.ModeLink, false)
	if !out.OK() {
		t.Fatalf("expected existing link to count as success: %v", out.Err)
	}
	if calls != 0 {
		t.Fatalf("linker called %d times", calls)
	}
}

func TestOrganizeLinkCrossDevice(t *testing.T) {
	src, target := t.TempDir(), t.TempDir()
	rec := parseFixture(t, src, "[ANi] 测试 - 1 [Tag].mp4", "keep me")

	linker := fileutil.LinkerFunc(func(target, source string) error {
		return &fileutil.CrossDeviceLinkError{Source: source, Target: target, Err: syscall.EXDEV}
	})
	var logs bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &logs})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	out := organizer.NewEngine(logger, organizer.WithLinker(linker)).
		Organize(context.Background(), rec, target, organizer.ModeLink, false)
	if out.OK() {
		t.Fatal("expected cross-device failure")
	}
	if !fileutil.IsCrossDevice(out.Err) {
		t.Fatalf("expected CrossDeviceLinkError, got %v", out.Err)
	}
	if !errors.Is(out.Err, services.ErrLink) {
		t.Fatalf("expected link marker, got %v", out.Err)
	}
	if services.FailureKind(out.Err) != services.KindCrossDeviceLink {
		t.Fatalf("kind = %q", services.FailureKind(out.Err))
	}
	if got := testsupport.ReadFile(t, rec.SourcePath); got != "keep me" {
		t.Fatalf("source changed: %q", got)
	}
	testsupport.AssertMissing(t, out.Destination)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one log record, got %d:\n%s", len(lines), logs.String())
	}
	for _, want := range []string{`"failure_kind":"cross_device_link"`, `"level":"error"`, `"component":"organizer"`} {
		if !strings.Contains(lines[0], want) {
			t.Fatalf("log record missing %s: %s", want, lines[0])
		}
	}
}

func TestOrganizeLinkUnsupportedDoesNotCopy(t *testing.T) {
	src, target := t.TempDir(), t.TempDir()
	rec := parseFixture(t, src, "[Grp] Show - 5 [x].mkv", "data")

	linker := fileutil.LinkerFunc(func(target, source string) error {
		return &fileutil.LinkUnsupportedError{Source: source, Target: target, Err: errors.ErrUnsupported}
	})
	out := organizer.NewEngine(logging.NewNop(), organizer.WithLinker(linker)).
		Organize(context.Background(), rec, target, organizer.ModeLink, false)
	if services.FailureKind(out.Err) != services.KindLinkUnsupported {
		t.Fatalf("kind = %q (%v)", services.FailureKind(out.Err), out.Err)
	}
	testsupport.AssertMissing(t, out.Destination)
}

func TestOrganizeLinkExistingDestinationIsLinkFailure(t *testing.T) {
	src, target := t.TempDir(), t.TempDir()
	rec := parseFixture(t, src, "[Grp] Cross-Device Story - 01 [x].mkv", "new")
	dest := organizer.DestinationPath(rec, target)
	testsupport.WriteFile(t, dest, "old")

	out := organizer.NewEngine(logging.NewNop()).
		Organize(context.Background(), rec, target, organizer.ModeLink, false)
	if fileutil.IsCrossDevice(out.Err) {
		t.Fatalf("same-filesystem failure reported as cross-device: %v", out.Err)
	}
	if got := services.FailureKind(out.Err); got != services.KindLinkFailed {
		t.Fatalf("failure kind = %q (err %v)", got, out.Err)
	}
	if got := testsupport.ReadFile(t, dest); got != "old" {
		t.Fatalf("existing destination changed: %q", got)
	}
}

func TestOrganizeClassifiesRawLinkerErrors(t *testing.T) {
	src, target := t.TempDir(), t.TempDir()
	rec := parseFixture(t, src, "[Grp] Show - 7 [x].mkv", "data")
	linker := fileutil.LinkerFunc(func(target, source string) error {
		return &os.LinkError{Op: "link", Old: source, New: target, Err: syscall.EPERM}
	})

	out := organizer.NewEngine(logging.NewNop(), organizer.WithLinker(linker)).
		Organize(context.Background(), rec, target, organizer.ModeLink, false)
	if !fileutil.IsLinkFailed(out.Err) {
		t.Fatalf("expected LinkFailedError, got %T %v", out.Err, out.Err)
	}
	if !errors.Is(out.Err, syscall.EPERM) {
		t.Fatalf("expected errno to stay reachable, got %v", out.Err)
	}
}

func TestOrganizeDirectoryCreationFailure(t *testing.T) {
	src, base := t.TempDir(), t.TempDir()
	rec := parseFixture(t, src, "[Grp] Show - 6 [x].mkv", "data")
	blocker := filepath.Join(base, "target")
	testsupport.WriteFile(t, blocker, "not a directory")

	out := organizer.NewEngine(logging.NewNop()).Organize(context.Background(), rec, blocker, organizer.ModeCopy, false)
	if !errors.Is(out.Err, services.ErrDirectoryCreation) {
		t.Fatalf("expected directory creation failure, got %v", out.Err)
	}
	if got := testsupport.ReadFile(t, rec.SourcePath); got != "data" {
		t.Fatalf("source changed: %q", got)
	}
}

func TestOrganizeMissingSourceFails(t *testing.T) {
	target := t.TempDir()
	rec, ok := naming.Parse(filepath.Join(t.TempDir(), "[Grp] Show - 7 [x].mkv"))
	if !ok {
		t.Fatal("fixture does not parse")
	}
	out := organizer.NewEngine(logging.NewNop()).Organize(context.Background(), rec, target, organizer.ModeMove, false)
	if !errors.Is(out.Err, services.ErrMove) {
		t.Fatalf("expected move failure, got %v", out.Err)
	}
}

func TestOrganizeRejectsDotSeries(t *testing.T) {
	src, target := t.TempDir(), t.TempDir()
	rec := parseFixture(t, src, "[Grp] .. - 1 [x].mkv", "data")

	out := organizer.NewEngine(logging.NewNop()).Organize(context.Background(), rec, target, organizer.ModeCopy, false)
	if !errors.Is(out.Err, services.ErrValidation) {
		t.Fatalf("expected validation failure, got %v", out.Err)
	}
	testsupport.AssertMissing(t, filepath.Join(filepath.Dir(target), "01 [x].mkv"))
}

func TestOrganizeReusesSeriesDirectory(t *testing.T) {
	src, target := t.TempDir(), t.TempDir()
	engine := organizer.NewEngine(logging.NewNop())
	for _, name := range []string{"[Grp] Show - 1 [x].mkv", "[Grp] Show - 2 [x].mkv"} {
		rec := parseFixture(t, src, name, name)
		if out := engine.Organize(context.Background(), rec, target, organizer.ModeCopy, false); !out.OK() {
			t.Fatalf("organize %s: %v", name, out.Err)
		}
	}
	entries, err := os.ReadDir(filepath.Join(target, "Show"))
	if err != nil {
		t.Fatalf("read series dir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 episodes, got %d", len(entries))
	}
}
