package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Daisywait/AntiDeepfake/internal/config"
	"github.com/Daisywait/AntiDeepfake/internal/probe"
)

func newInspectCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:         "inspect <file>",
		Short:       "Probe one audio file's header",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			info, err := probe.File(path)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, inspectPayload{
					Path:            path,
					SampleRate:      info.SampleRate,
					Channels:        info.Channels,
					Frames:          info.Frames,
					BitsPerSample:   info.BitsPerSample,
					Encoding:        info.Encoding,
					DurationSeconds: info.Duration(),
				})
			}

			printInspect(cmd, path, info)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit header fields as JSON")
	return cmd
}

type inspectPayload struct {
	Path            string  `json:"path"`
	SampleRate      int     `json:"sample_rate"`
	Channels        int     `json:"channels"`
	Frames          int64   `json:"frames"`
	BitsPerSample   int     `json:"bits_per_sample"`
	Encoding        string  `json:"encoding"`
	DurationSeconds float64 `json:"duration_seconds"`
}

func printInspect(cmd *cobra.Command, path string, info probe.Info) {
	out := cmd.OutOrStdout()

	rows := [][]string{
		{"Path", path},
		{"Encoding", info.Encoding},
		{"Sample rate", strconv.Itoa(info.SampleRate) + " Hz"},
		{"Channels", strconv.Itoa(info.Channels)},
		{"Bits per sample", strconv.Itoa(info.BitsPerSample)},
		{"Frames", strconv.FormatInt(info.Frames, 10)},
		{"Duration", fmt.Sprintf("%.2f s", info.Duration())},
	}

	if isTerminal(out) {
		fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}))
		return
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s: %s\n", row[0], row[1])
	}
}
