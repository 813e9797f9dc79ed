package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Daisywait/AntiDeepfake/internal/config"
	"github.com/Daisywait/AntiDeepfake/internal/corpus"
	"github.com/Daisywait/AntiDeepfake/internal/logging"
	"github.com/Daisywait/AntiDeepfake/internal/manifest"
	"github.com/Daisywait/AntiDeepfake/internal/preflight"
	"github.com/Daisywait/AntiDeepfake/internal/probecache"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var dataRoot string
	var outputDir string
	var workers int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the corpus manifest CSV",
		Long: "Build reads the corpus protocol files, probes every referenced audio\n" +
			"file's header, and writes one CSV row per utterance.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyBuildOverrides(cfg, dataRoot, outputDir, workers); err != nil {
				return err
			}

			profile := corpus.ASVspoof2019LA()
			if result := preflight.CheckDirectoryReadable("Data root", cfg.Paths.DataRoot); !result.Passed {
				return fmt.Errorf("preflight: %s", result.Detail)
			}
			if result := preflight.CheckDirectoryWritable("Output directory", cfg.Paths.OutputDir); !result.Passed {
				return fmt.Errorf("preflight: %s", result.Detail)
			}

			logger, err := buildLogger(cfg, jsonOut)
			if err != nil {
				return err
			}

			var opts []manifest.Option
			if cfg.ProbeCache.Enabled {
				cache, err := probecache.Open(cfg.ProbeCache.Path)
				if err != nil {
					return fmt.Errorf("open probe cache: %w", err)
				}
				defer cache.Close()
				opts = append(opts, manifest.WithCache(cache))
			}

			summary, err := manifest.New(cfg, profile, logger, opts...).Build(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, buildSummaryPayload(summary))
			}
			printBuildSummary(cmd, summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataRoot, "data-root", "", "Corpus data root (overrides config)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Manifest output directory (overrides config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent header probes (overrides config)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the build summary as JSON")
	return cmd
}

func applyBuildOverrides(cfg *config.Config, dataRoot, outputDir string, workers int) error {
	var err error
	if dataRoot != "" {
		if cfg.Paths.DataRoot, err = config.ExpandPath(dataRoot); err != nil {
			return fmt.Errorf("resolve --data-root: %w", err)
		}
	}
	if outputDir != "" {
		if cfg.Paths.OutputDir, err = config.ExpandPath(outputDir); err != nil {
			return fmt.Errorf("resolve --output-dir: %w", err)
		}
	}
	if workers > 0 {
		cfg.Build.Workers = workers
	}
	return nil
}

// buildLogger routes log lines to stderr when stdout carries the JSON
// summary, and to stdout otherwise. A file copy always lands in the log dir.
func buildLogger(cfg *config.Config, jsonOut bool) (*slog.Logger, error) {
	console := "stdout"
	if jsonOut {
		console = "stderr"
	}
	outputs := []string{console}
	if cfg.Paths.LogDir != "" {
		outputs = append(outputs, filepath.Join(cfg.Paths.LogDir, "antideepfake.log"))
	}
	return logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: outputs,
	})
}

type buildSummary struct {
	RunID            string   `json:"run_id"`
	Output           string   `json:"output"`
	Rows             int      `json:"rows"`
	RealRows         int      `json:"real_rows"`
	FakeRows         int      `json:"fake_rows"`
	TrainRows        int      `json:"train_rows"`
	ValidRows        int      `json:"valid_rows"`
	TestRows         int      `json:"test_rows"`
	MissingAudio     int      `json:"missing_audio"`
	MultiChannel     int      `json:"multi_channel"`
	SkippedProtocols []string `json:"skipped_protocols"`
	CacheHits        int      `json:"cache_hits"`
	CacheMisses      int      `json:"cache_misses"`
	ElapsedSeconds   float64  `json:"elapsed_seconds"`
}

func buildSummaryPayload(summary *manifest.Summary) buildSummary {
	skipped := summary.SkippedProtocols
	if skipped == nil {
		skipped = []string{}
	}
	return buildSummary{
		RunID:            summary.RunID,
		Output:           summary.OutputPath,
		Rows:             summary.Rows,
		RealRows:         summary.RealRows,
		FakeRows:         summary.FakeRows,
		TrainRows:        summary.SubsetRows[corpus.SubsetTrain],
		ValidRows:        summary.SubsetRows[corpus.SubsetValid],
		TestRows:         summary.SubsetRows[corpus.SubsetTest],
		MissingAudio:     summary.MissingAudio,
		MultiChannel:     summary.MultiChannel,
		SkippedProtocols: skipped,
		CacheHits:        summary.CacheHits,
		CacheMisses:      summary.CacheMisses,
		ElapsedSeconds:   summary.Elapsed.Seconds(),
	}
}

func printBuildSummary(cmd *cobra.Command, summary *manifest.Summary) {
	out := cmd.OutOrStdout()

	rows := [][]string{
		{"Output", summary.OutputPath},
		{"Rows", strconv.Itoa(summary.Rows)},
		{"Real / fake", fmt.Sprintf("%d / %d", summary.RealRows, summary.FakeRows)},
		{"Train / valid / test", fmt.Sprintf("%d / %d / %d",
			summary.SubsetRows[corpus.SubsetTrain],
			summary.SubsetRows[corpus.SubsetValid],
			summary.SubsetRows[corpus.SubsetTest])},
		{"Missing audio", strconv.Itoa(summary.MissingAudio)},
		{"Multi-channel audio", strconv.Itoa(summary.MultiChannel)},
		{"Skipped protocols", strconv.Itoa(len(summary.SkippedProtocols))},
		{"Elapsed", summary.Elapsed.Round(time.Millisecond).String()},
	}
	if summary.CacheHits > 0 || summary.CacheMisses > 0 {
		rows = append(rows, []string{"Cache hits / misses",
			fmt.Sprintf("%d / %d", summary.CacheHits, summary.CacheMisses)})
	}

	if isTerminal(out) {
		fmt.Fprintln(out, renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}))
		return
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s: %s\n", row[0], row[1])
	}
}
