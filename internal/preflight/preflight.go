package preflight

import (
	"path/filepath"

	"github.com/Daisywait/AntiDeepfake/internal/config"
	"github.com/Daisywait/AntiDeepfake/internal/corpus"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all preflight checks for the given config against the
// corpus layout described by profile.
func RunAll(cfg *config.Config, profile corpus.Profile) []Result {
	if cfg == nil {
		return nil
	}

	root := cfg.Paths.DataRoot
	results := []Result{
		CheckDirectoryReadable("Data root", root),
		CheckDirectoryReadable("Protocol directory", profile.ProtocolPath(root, "")),
	}

	for _, name := range profile.ProtocolFiles {
		results = append(results, CheckFileReadable("Protocol "+name, profile.ProtocolPath(root, name)))
	}

	for _, subset := range corpus.Subsets() {
		results = append(results, CheckDirectoryReadable(
			"Audio directory ("+string(subset)+")",
			profile.AudioDir(root, subset),
		))
	}

	results = append(results, CheckDirectoryWritable("Output directory", cfg.Paths.OutputDir))
	if cfg.ProbeCache.Enabled {
		results = append(results, CheckDirectoryWritable("Probe cache directory", filepath.Dir(cfg.ProbeCache.Path)))
	}

	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}
