package preflight_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Daisywait/AntiDeepfake/internal/corpus"
	"github.com/Daisywait/AntiDeepfake/internal/preflight"
	"github.com/Daisywait/AntiDeepfake/internal/testsupport"
)

func TestRunAllAgainstCompleteLayout(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	profile := corpus.ASVspoof2019LA()
	root := cfg.Paths.DataRoot

	for _, name := range profile.ProtocolFiles {
		testsupport.WriteProtocol(t, profile.ProtocolPath(root, name), "LA_0079 LA_T_1138215 - - bonafide")
	}
	for _, subset := range corpus.Subsets() {
		if err := os.MkdirAll(profile.AudioDir(root, subset), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(cfg.Paths.OutputDir, 0o755); err != nil {
		t.Fatal(err)
	}

	results := preflight.RunAll(cfg, profile)
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	for _, result := range results {
		if !result.Passed {
			t.Errorf("check %q failed: %s", result.Name, result.Detail)
		}
	}
	if !preflight.AllPassed(results) {
		t.Fatal("AllPassed should be true")
	}
}

func TestRunAllReportsMissingPieces(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	profile := corpus.ASVspoof2019LA()

	results := preflight.RunAll(cfg, profile)
	if preflight.AllPassed(results) {
		t.Fatal("AllPassed should be false for an empty data root")
	}

	byName := make(map[string]preflight.Result, len(results))
	for _, result := range results {
		byName[result.Name] = result
	}

	if byName["Data root"].Passed {
		t.Fatal("data root check should fail when the directory is absent")
	}
	// The output directory does not exist yet but its parent is writable,
	// so the build can create it.
	if !byName["Output directory"].Passed {
		t.Fatalf("output directory check should pass: %s", byName["Output directory"].Detail)
	}
}

func TestCheckFileReadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "protocol.txt")
	if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if result := preflight.CheckFileReadable("Protocol", path); !result.Passed {
		t.Fatalf("expected pass: %s", result.Detail)
	}
	if result := preflight.CheckFileReadable("Protocol", filepath.Join(dir, "absent.txt")); result.Passed {
		t.Fatal("expected failure for missing file")
	}
	if result := preflight.CheckFileReadable("Protocol", dir); result.Passed {
		t.Fatal("expected failure for directory")
	}
}

func TestCacheDirectoryOnlyCheckedWhenEnabled(t *testing.T) {
	profile := corpus.ASVspoof2019LA()

	plain := preflight.RunAll(testsupport.NewConfig(t), profile)
	cached := preflight.RunAll(testsupport.NewConfig(t, testsupport.WithProbeCache(true)), profile)

	if len(cached) != len(plain)+1 {
		t.Fatalf("expected one extra check with cache enabled: %d vs %d", len(cached), len(plain))
	}
}
