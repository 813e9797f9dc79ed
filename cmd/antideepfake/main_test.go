package main

import "testing"

func TestRootShowsHelp(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, nil, env.configPath)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	requireContains(t, out, "build")
	requireContains(t, out, "inspect")
	requireContains(t, out, "check")
}

func TestUnknownCommand(t *testing.T) {
	if _, _, err := runCLI(t, []string{"frobnicate"}, ""); err == nil {
		t.Fatal("expected error for unknown command")
	}
}
