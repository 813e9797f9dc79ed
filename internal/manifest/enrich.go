package manifest

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/Daisywait/AntiDeepfake/internal/corpus"
	"github.com/Daisywait/AntiDeepfake/internal/logging"
	"github.com/Daisywait/AntiDeepfake/internal/probe"
	"github.com/Daisywait/AntiDeepfake/internal/protocol"
)

type rowResult struct {
	record    Record
	missing   bool
	cacheHit  bool
	cacheMiss bool
}

// enrichAll probes every entry's audio file on a bounded worker pool.
// Results land in a slice indexed by entry position, so output order is
// independent of scheduling. The first probe error cancels the group and
// fails the whole build.
func (b *Builder) enrichAll(ctx context.Context, logger *slog.Logger, entries []protocol.Entry) ([]rowResult, error) {
	results := make([]rowResult, len(entries))

	workers := b.cfg.Build.Workers
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, entry := range entries {
		g.Go(func() error {
			result, err := b.enrich(gctx, logger, entry)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (b *Builder) enrich(ctx context.Context, logger *slog.Logger, entry protocol.Entry) (rowResult, error) {
	subset := corpus.ClassifySubset(entry.UtteranceID)
	record := Record{
		ID:       b.profile.ManifestID(entry.UtteranceID),
		Label:    corpus.LabelFromProtocol(entry.Label),
		Attack:   entry.Attack,
		Speaker:  entry.Speaker,
		Subset:   subset,
		Language: b.cfg.ManifestLanguage(),
	}

	audioPath := b.profile.AudioPath(b.cfg.Paths.DataRoot, subset, entry.UtteranceID)
	fileInfo, err := os.Stat(audioPath)
	if err != nil {
		if os.IsNotExist(err) {
			logging.WarnWithContext(logger, "audio file missing", "audio_missing",
				logging.String(logging.FieldUtterance, entry.UtteranceID),
				logging.String(logging.FieldSubset, string(subset)),
				logging.String("path", audioPath),
				logging.String(logging.FieldImpact, "row emitted with sentinel values"))
			record.Duration = missingNumeric
			record.SampleRate = missingNumeric
			record.Channels = missingNumeric
			record.BitsPerSample = missingNumeric
			record.Encoding = missingText
			record.Path = missingText
			return rowResult{record: record, missing: true}, nil
		}
		return rowResult{}, fmt.Errorf("stat audio %s: %w", audioPath, err)
	}

	result := rowResult{}
	info, err := b.probeFile(ctx, audioPath, fileInfo.Size(), fileInfo.ModTime().UnixNano(), &result)
	if err != nil {
		return rowResult{}, fmt.Errorf("probe %s: %w", audioPath, err)
	}

	if info.Channels > 1 {
		logging.WarnWithContext(logger, "multi-channel audio", "multi_channel_audio",
			logging.String(logging.FieldUtterance, entry.UtteranceID),
			logging.Int("channels", info.Channels),
			logging.String(logging.FieldImpact, "true channel count recorded; downstream mono pipelines may need a downmix"))
	}

	record.Duration = math.Round(info.Duration()*100) / 100
	record.SampleRate = info.SampleRate
	record.Channels = info.Channels
	record.BitsPerSample = info.BitsPerSample
	record.Encoding = info.Encoding
	record.Path = b.profile.RelativeAudioPath(subset, entry.UtteranceID)
	result.record = record
	return result, nil
}

// probeFile consults the cache when one is attached, falling back to an
// actual header probe on a miss and recording the fresh result.
func (b *Builder) probeFile(ctx context.Context, path string, size, mtimeNS int64, result *rowResult) (probe.Info, error) {
	if b.cache != nil {
		info, ok, err := b.cache.Lookup(ctx, path, size, mtimeNS)
		if err != nil {
			return probe.Info{}, err
		}
		if ok {
			result.cacheHit = true
			return info, nil
		}
		result.cacheMiss = true
	}

	info, err := probe.File(path)
	if err != nil {
		return probe.Info{}, err
	}
	if b.cache != nil {
		if err := b.cache.Save(ctx, path, size, mtimeNS, info); err != nil {
			return probe.Info{}, err
		}
	}
	return info, nil
}
