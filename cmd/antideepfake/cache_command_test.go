package main

import (
	"testing"

	"github.com/Daisywait/AntiDeepfake/internal/testsupport"
)

func TestCacheStatsEmptyAndAfterBuild(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithProbeCache(true))

	out, _, err := runCLI(t, []string{"cache", "stats"}, env.configPath)
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	requireContains(t, out, "Probe cache is empty")

	seedMiniCorpus(t, env)
	if _, _, err := runCLI(t, []string{"build"}, env.configPath); err != nil {
		t.Fatalf("build: %v", err)
	}

	out, _, err = runCLI(t, []string{"cache", "stats"}, env.configPath)
	if err != nil {
		t.Fatalf("cache stats after build: %v", err)
	}
	requireContains(t, out, "Entries:  4")
}

func TestCacheClear(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithProbeCache(true))
	seedMiniCorpus(t, env)

	if _, _, err := runCLI(t, []string{"build"}, env.configPath); err != nil {
		t.Fatalf("build: %v", err)
	}

	out, _, err := runCLI(t, []string{"cache", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	requireContains(t, out, "Removed 4 cached probes")

	out, _, err = runCLI(t, []string{"cache", "stats"}, env.configPath)
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	requireContains(t, out, "Entries:  0")
}

func TestCacheClearWithoutDatabase(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"cache", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	requireContains(t, out, "already empty")
}
