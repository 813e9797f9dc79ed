package manifest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/Daisywait/AntiDeepfake/internal/config"
	"github.com/Daisywait/AntiDeepfake/internal/corpus"
	"github.com/Daisywait/AntiDeepfake/internal/logging"
	"github.com/Daisywait/AntiDeepfake/internal/probecache"
	"github.com/Daisywait/AntiDeepfake/internal/protocol"
)

// ErrBuildInProgress indicates another build already holds the output lock.
var ErrBuildInProgress = errors.New("another build is already writing this manifest")

// Builder assembles a corpus manifest from protocol files and audio headers.
type Builder struct {
	cfg     *config.Config
	profile corpus.Profile
	logger  *slog.Logger
	cache   *probecache.Store
}

// Option customizes a Builder.
type Option func(*Builder)

// WithCache attaches a probe cache consulted before opening audio headers.
func WithCache(store *probecache.Store) Option {
	return func(b *Builder) {
		b.cache = store
	}
}

// New creates a Builder for the given corpus profile.
func New(cfg *config.Config, profile corpus.Profile, logger *slog.Logger, opts ...Option) *Builder {
	builder := &Builder{
		cfg:     cfg,
		profile: profile,
		logger:  logging.NewComponentLogger(logger, "manifest"),
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder
}

// Summary aggregates what a build produced.
type Summary struct {
	RunID            string
	OutputPath       string
	Rows             int
	RealRows         int
	FakeRows         int
	SubsetRows       map[corpus.Subset]int
	MissingAudio     int
	MultiChannel     int
	SkippedProtocols []string
	CacheHits        int
	CacheMisses      int
	Elapsed          time.Duration
}

// Build runs the full pipeline: every protocol file in profile order, rows
// enriched on a bounded worker pool, one CSV written at the end. A missing
// protocol file is skipped with a warning; an unreadable protocol file or
// audio header aborts the build before anything is written.
func (b *Builder) Build(ctx context.Context) (*Summary, error) {
	start := time.Now()
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, b.logger)

	if err := b.cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	outputPath := filepath.Join(b.cfg.Paths.OutputDir, b.profile.OutputName())
	lock := flock.New(lockPath(outputPath))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire build lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrBuildInProgress, outputPath)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	logger.Info("manifest build started",
		logging.String("corpus", b.profile.Name),
		logging.String("data_root", b.cfg.Paths.DataRoot),
		logging.Int("workers", b.cfg.Build.Workers),
		logging.Bool("probe_cache", b.cache != nil))

	summary := &Summary{
		RunID:      runID,
		OutputPath: outputPath,
		SubsetRows: make(map[corpus.Subset]int),
	}

	var records []Record
	for _, name := range b.profile.ProtocolFiles {
		protocolPath := b.profile.ProtocolPath(b.cfg.Paths.DataRoot, name)
		if _, err := os.Stat(protocolPath); err != nil {
			if os.IsNotExist(err) {
				logging.WarnWithContext(logger, "protocol file missing; skipping", "protocol_missing",
					logging.String(logging.FieldProtocol, name),
					logging.String("path", protocolPath),
					logging.String(logging.FieldErrorHint, "check paths.data_root points at the extracted corpus"),
					logging.String(logging.FieldImpact, "its utterances will not appear in the manifest"))
				summary.SkippedProtocols = append(summary.SkippedProtocols, name)
				continue
			}
			return nil, fmt.Errorf("stat protocol %s: %w", protocolPath, err)
		}

		entries, err := protocol.ReadFile(protocolPath)
		if err != nil {
			return nil, err
		}

		results, err := b.enrichAll(ctx, logger, entries)
		if err != nil {
			return nil, err
		}

		logger.Info("protocol processed",
			logging.String(logging.FieldProtocol, name),
			logging.Int("entries", len(entries)))

		for _, result := range results {
			records = append(records, result.record)
			summary.tally(result)
		}
	}

	if err := WriteCSV(outputPath, records); err != nil {
		return nil, err
	}

	summary.Rows = len(records)
	summary.Elapsed = time.Since(start)
	logger.Info("manifest written",
		logging.String("path", outputPath),
		logging.Int("rows", summary.Rows),
		logging.Int("missing_audio", summary.MissingAudio),
		logging.Duration("elapsed", summary.Elapsed))
	return summary, nil
}

func (s *Summary) tally(result rowResult) {
	record := result.record
	switch record.Label {
	case corpus.LabelReal:
		s.RealRows++
	case corpus.LabelFake:
		s.FakeRows++
	}
	s.SubsetRows[record.Subset]++
	if result.missing {
		s.MissingAudio++
	}
	if record.Channels > 1 {
		s.MultiChannel++
	}
	if result.cacheHit {
		s.CacheHits++
	}
	if result.cacheMiss {
		s.CacheMisses++
	}
}

func lockPath(outputPath string) string {
	return filepath.Join(filepath.Dir(outputPath), "."+filepath.Base(outputPath)+".lock")
}
