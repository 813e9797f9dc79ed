package main

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Daisywait/AntiDeepfake/internal/corpus"
	"github.com/Daisywait/AntiDeepfake/internal/testsupport"
)

func seedMiniCorpus(t *testing.T, env *cliTestEnv) corpus.Profile {
	t.Helper()
	profile := corpus.ASVspoof2019LA()
	root := env.cfg.Paths.DataRoot

	testsupport.WriteProtocol(t, profile.ProtocolPath(root, profile.ProtocolFiles[0]),
		"LA_0079 LA_T_1138215 - - bonafide",
		"LA_0079 LA_T_1271820 - A01 spoof",
	)
	testsupport.WriteProtocol(t, profile.ProtocolPath(root, profile.ProtocolFiles[1]),
		"LA_0069 LA_D_1047731 - - bonafide",
	)
	testsupport.WriteProtocol(t, profile.ProtocolPath(root, profile.ProtocolFiles[2]),
		"LA_0012 LA_E_2834763 - A13 spoof",
	)
	testsupport.SeedUtterance(t, env.cfg, profile, "LA_T_1138215", 16000)
	testsupport.SeedUtterance(t, env.cfg, profile, "LA_T_1271820", 24000)
	testsupport.SeedUtterance(t, env.cfg, profile, "LA_D_1047731", 32000)
	testsupport.SeedUtterance(t, env.cfg, profile, "LA_E_2834763", 8000)
	return profile
}

func TestBuildCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	profile := seedMiniCorpus(t, env)

	out, _, err := runCLI(t, []string{"build"}, env.configPath)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	requireContains(t, out, "Rows: 4")

	manifestPath := filepath.Join(env.cfg.Paths.OutputDir, profile.OutputName())
	file, err := os.Open(manifestPath)
	if err != nil {
		t.Fatalf("open manifest: %v", err)
	}
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected header + 4 rows, got %d", len(rows))
	}
	if rows[1][0] != "ASV19LA-LA_T_1138215" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
}

func TestBuildCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	seedMiniCorpus(t, env)

	out, _, err := runCLI(t, []string{"build", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("build --json: %v", err)
	}

	var summary buildSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("parse summary: %v\noutput: %s", err, out)
	}
	if summary.Rows != 4 {
		t.Fatalf("Rows = %d, want 4", summary.Rows)
	}
	if summary.RealRows != 2 || summary.FakeRows != 2 {
		t.Fatalf("label counts = %d/%d, want 2/2", summary.RealRows, summary.FakeRows)
	}
	if summary.TrainRows != 2 || summary.ValidRows != 1 || summary.TestRows != 1 {
		t.Fatalf("subset counts = %d/%d/%d", summary.TrainRows, summary.ValidRows, summary.TestRows)
	}
	if summary.RunID == "" {
		t.Fatal("expected run_id in summary")
	}
}

func TestBuildCommandWorkerOverride(t *testing.T) {
	env := setupCLITestEnv(t)
	seedMiniCorpus(t, env)

	if _, _, err := runCLI(t, []string{"build", "--workers", "8"}, env.configPath); err != nil {
		t.Fatalf("build --workers: %v", err)
	}
}

func TestBuildCommandFailsWithoutDataRoot(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"build"}, env.configPath)
	if err == nil {
		t.Fatal("expected preflight failure for missing data root")
	}
	requireContains(t, err.Error(), "preflight")
}

func TestBuildCommandOutputDirOverride(t *testing.T) {
	env := setupCLITestEnv(t)
	profile := seedMiniCorpus(t, env)
	altOut := filepath.Join(t.TempDir(), "alt")

	if _, _, err := runCLI(t, []string{"build", "--output-dir", altOut}, env.configPath); err != nil {
		t.Fatalf("build --output-dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(altOut, profile.OutputName())); err != nil {
		t.Fatalf("expected manifest in alternate output dir: %v", err)
	}
}
