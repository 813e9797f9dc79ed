package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Daisywait/AntiDeepfake/internal/probecache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the probe cache",
	}

	cacheCmd.AddCommand(newCacheStatsCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func newCacheStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show probe cache usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if _, err := os.Stat(cfg.ProbeCache.Path); os.IsNotExist(err) {
				fmt.Fprintf(out, "Probe cache is empty (no database at %s)\n", cfg.ProbeCache.Path)
				return nil
			}

			store, err := probecache.Open(cfg.ProbeCache.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Enabled:  %s\n", yesNo(cfg.ProbeCache.Enabled))
			fmt.Fprintf(out, "Database: %s\n", stats.DBPath)
			fmt.Fprintf(out, "Entries:  %d\n", stats.Entries)
			fmt.Fprintf(out, "Size:     %s\n", humanBytes(stats.SizeBytes))
			return nil
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached probe results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if _, err := os.Stat(cfg.ProbeCache.Path); os.IsNotExist(err) {
				fmt.Fprintln(out, "Probe cache is already empty")
				return nil
			}

			store, err := probecache.Open(cfg.ProbeCache.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Removed %d cached probes\n", removed)
			return nil
		},
	}
}
