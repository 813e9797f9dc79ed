// Package corpus defines the labels, subset partitions, and on-disk layout
// conventions of the speech corpora the manifest builder understands.
//
// A Profile captures everything path-shaped about a dataset: where protocol
// files live, how subset directories are named, and how utterance IDs map to
// audio files. Subset and label classification keep the ordered matching
// rules of the upstream protocol format in one place so every consumer
// agrees on the mapping.
package corpus
