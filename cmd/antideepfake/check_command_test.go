package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/Daisywait/AntiDeepfake/internal/corpus"
	"github.com/Daisywait/AntiDeepfake/internal/testsupport"
)

func TestCheckCommandFailsOnEmptyLayout(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err == nil {
		t.Fatal("expected check to fail against an empty data root")
	}
	requireContains(t, out, "FAIL")
	requireContains(t, err.Error(), "preflight checks failed")
}

func TestCheckCommandPassesOnCompleteLayout(t *testing.T) {
	env := setupCLITestEnv(t)
	profile := corpus.ASVspoof2019LA()
	root := env.cfg.Paths.DataRoot

	for _, name := range profile.ProtocolFiles {
		testsupport.WriteProtocol(t, profile.ProtocolPath(root, name), "LA_0079 LA_T_1138215 - - bonafide")
	}
	for _, subset := range corpus.Subsets() {
		if err := os.MkdirAll(profile.AudioDir(root, subset), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(env.cfg.Paths.OutputDir, 0o755); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v\noutput: %s", err, out)
	}
	requireContains(t, out, "OK")
}

func TestCheckCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"check", "--json"}, env.configPath)
	if err == nil {
		t.Fatal("expected failure exit")
	}

	var results []checkResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("parse results: %v\noutput: %s", err, out)
	}
	if len(results) == 0 {
		t.Fatal("expected check results")
	}
	foundDataRoot := false
	for _, result := range results {
		if result.Name == "Data root" {
			foundDataRoot = true
			if result.Passed {
				t.Fatal("data root check should fail")
			}
		}
	}
	if !foundDataRoot {
		t.Fatal("expected a data root check")
	}
}
