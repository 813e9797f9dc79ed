package testsupport

import (
	"testing"

	"github.com/Daisywait/AntiDeepfake/internal/config"
	"github.com/Daisywait/AntiDeepfake/internal/corpus"
)

// SeedUtterance writes a protocol-addressable FLAC file for the given
// utterance under the config's data root, using standard 16 kHz mono
// parameters unless frames says otherwise.
func SeedUtterance(t testing.TB, cfg *config.Config, profile corpus.Profile, utteranceID string, frames int64) {
	t.Helper()

	subset := corpus.ClassifySubset(utteranceID)
	WriteFLAC(t, profile.AudioPath(cfg.Paths.DataRoot, subset, utteranceID), 16000, 1, 16, frames)
}
