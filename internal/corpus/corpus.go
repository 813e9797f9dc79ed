package corpus

import (
	"path/filepath"
	"strings"
)

// Label classifies an utterance as genuine or spoofed speech.
type Label string

const (
	// LabelReal marks bonafide utterances.
	LabelReal Label = "real"
	// LabelFake marks spoofed utterances.
	LabelFake Label = "fake"
)

// LabelFromProtocol maps a raw protocol label to a manifest label. The match
// is exact and case sensitive: "bonafide" is real, every other value is fake.
func LabelFromProtocol(raw string) Label {
	if raw == "bonafide" {
		return LabelReal
	}
	return LabelFake
}

// Subset identifies the corpus partition an utterance belongs to.
type Subset string

const (
	SubsetTrain Subset = "train"
	SubsetValid Subset = "valid"
	SubsetTest  Subset = "test"
)

// Subsets lists the partitions in protocol processing order.
func Subsets() []Subset {
	return []Subset{SubsetTrain, SubsetValid, SubsetTest}
}

// ClassifySubset derives the subset from a raw utterance ID using ordered,
// case-sensitive substring rules: "T_" wins over "D_", and IDs matching
// neither fall through to the evaluation subset.
func ClassifySubset(utteranceID string) Subset {
	switch {
	case strings.Contains(utteranceID, "T_"):
		return SubsetTrain
	case strings.Contains(utteranceID, "D_"):
		return SubsetValid
	default:
		return SubsetTest
	}
}

// Profile describes the on-disk layout and naming conventions of one corpus.
type Profile struct {
	// Name is the dataset identifier and the output CSV base name.
	Name string
	// IDPrefix is prepended to every utterance ID in the manifest.
	IDPrefix string
	// ProtocolDir is the directory under the data root holding protocol files.
	ProtocolDir string
	// ProtocolFiles lists protocol file names in processing order.
	ProtocolFiles []string
	// SubsetDirs maps each subset to its directory under the data root.
	SubsetDirs map[Subset]string
	// AudioSubdir is the directory inside a subset dir holding audio files.
	AudioSubdir string
	// AudioExt is the audio file extension including the leading dot.
	AudioExt string
}

// ASVspoof2019LA returns the layout of the ASVspoof 2019 logical access corpus.
func ASVspoof2019LA() Profile {
	return Profile{
		Name:        "ASVspoof2019_LA",
		IDPrefix:    "ASV19LA-",
		ProtocolDir: "ASVspoof2019_LA_cm_protocols",
		ProtocolFiles: []string{
			"ASVspoof2019.LA.cm.train.trn.txt",
			"ASVspoof2019.LA.cm.dev.trl.txt",
			"ASVspoof2019.LA.cm.eval.trl.txt",
		},
		SubsetDirs: map[Subset]string{
			SubsetTrain: "ASVspoof2019_LA_train",
			SubsetValid: "ASVspoof2019_LA_dev",
			SubsetTest:  "ASVspoof2019_LA_eval",
		},
		AudioSubdir: "flac",
		AudioExt:    ".flac",
	}
}

// ProtocolPath returns the location of a protocol file under the data root.
func (p Profile) ProtocolPath(root, name string) string {
	return filepath.Join(root, p.ProtocolDir, name)
}

// AudioDir returns the directory holding a subset's audio files.
func (p Profile) AudioDir(root string, subset Subset) string {
	return filepath.Join(root, p.SubsetDirs[subset], p.AudioSubdir)
}

// AudioPath returns the expected audio file location for an utterance.
func (p Profile) AudioPath(root string, subset Subset, utteranceID string) string {
	return filepath.Join(root, p.SubsetDirs[subset], p.AudioSubdir, utteranceID+p.AudioExt)
}

// RelativeAudioPath returns the audio path with the data root replaced by the
// portable token recorded in manifests.
func (p Profile) RelativeAudioPath(subset Subset, utteranceID string) string {
	return "$ROOT/" + filepath.ToSlash(filepath.Join(p.SubsetDirs[subset], p.AudioSubdir, utteranceID+p.AudioExt))
}

// OutputName returns the manifest CSV file name for this corpus.
func (p Profile) OutputName() string {
	return p.Name + ".csv"
}

// ManifestID returns the prefixed utterance ID recorded in the manifest.
func (p Profile) ManifestID(utteranceID string) string {
	return p.IDPrefix + utteranceID
}
