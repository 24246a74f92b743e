package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"recipe-viewer/core/partition"
	"recipe-viewer/feature/recipes/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// timestampLayout matches the millisecond UTC timestamps the viewer displays.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Options describes one index build.
type Options struct {
	// DumpPath is the raw dump to read.
	DumpPath string
	// OutputDir receives the dataset. An existing dataset is replaced only on success.
	OutputDir string
	// Version is recorded in the metadata.
	Version string
	// Workers bounds concurrent recipe-map writes.
	Workers int
}

// Result summarises a successful build.
type Result struct {
	OutputDir string
	Metadata  models.Metadata
	Anomalies []Anomaly
	Duration  time.Duration
}

// Indexer turns a raw dump into a partitioned, indexed dataset.
type Indexer struct {
	logger *zap.Logger
	now    func() time.Time
}

// New creates an indexer.
func New(logger *zap.Logger) *Indexer {
	return &Indexer{logger: logger, now: time.Now}
}

// Run builds the dataset described by opts. Any failure leaves the previous output
// directory as it was.
func (ix *Indexer) Run(ctx context.Context, opts Options) (res *Result, err error) {
	start := ix.now()
	defer func() {
		if err != nil {
			runsTotal.WithLabelValues("error").Inc()
			return
		}
		runsTotal.WithLabelValues("success").Inc()
		runDuration.Observe(time.Since(start).Seconds())
	}()

	// 1. Load and validate the dump before touching the output
	ix.logger.Info("Loading recipe dump", zap.String("path", opts.DumpPath))
	dump, err := Load(opts.DumpPath)
	if err != nil {
		return nil, err
	}
	stats := StatsOf(dump)
	ix.logger.Info("Loaded recipe dump",
		zap.Int("items", stats.Items),
		zap.Int("fluids", stats.Fluids),
		zap.Int("recipemaps", stats.Recipemaps),
		zap.Int("crafting", stats.Crafting),
		zap.Int("smelting", stats.Smelting),
		zap.Int("machine_recipes", stats.MachineRecipes),
	)

	// 2. Build the inverted indexes
	indexes := BuildIndexes(dump)
	ix.logger.Info("Built recipe indexes",
		zap.Int("item_keys", len(indexes.Items)),
		zap.Int("fluid_keys", len(indexes.Fluids)),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 3. Write everything into a staging directory
	stage, err := partition.NewStage(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if derr := stage.Discard(); derr != nil {
				ix.logger.Error("Failed to remove staging directory", zap.String("dir", stage.Dir()), zap.Error(derr))
			}
		}
	}()

	meta := models.Metadata{
		Version:   opts.Version,
		Timestamp: start.UTC().Format(timestampLayout),
		Stats:     stats,
	}
	if err := ix.write(ctx, stage, dump, indexes, meta, opts.Workers); err != nil {
		return nil, fmt.Errorf("write dataset: %w", err)
	}

	// 4. Check the staged indexes against the staged recipe collections
	_, anomalies, err := ScanDataset(ctx, &partition.DirSource{Dir: stage.Dir()})
	if err != nil {
		return nil, fmt.Errorf("verify dataset: %w", err)
	}
	danglingRefs.Set(float64(len(anomalies)))
	for _, a := range anomalies {
		ix.logger.Warn("Dangling recipe reference", zap.String("anomaly", a.String()))
	}

	// 5. Swap into place
	if err := stage.Commit(ix.logger); err != nil {
		return nil, err
	}

	res = &Result{
		OutputDir: opts.OutputDir,
		Metadata:  meta,
		Anomalies: anomalies,
		Duration:  ix.now().Sub(start),
	}
	ix.logger.Info("Dataset written",
		zap.String("output", opts.OutputDir),
		zap.Int("anomalies", len(anomalies)),
		zap.Duration("duration", res.Duration),
	)
	return res, nil
}

func (ix *Indexer) write(ctx context.Context, stage *partition.Stage, dump *models.Dump, indexes *models.Indexes, meta models.Metadata, workers int) error {
	if workers <= 0 {
		workers = 4
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	put := func(artifact string, v any) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := stage.Write(artifact, v); err != nil {
				return err
			}
			ix.logger.Debug("Wrote artifact", zap.String("artifact", artifact))
			return nil
		})
	}

	raw := dump.Raw
	if raw == nil {
		raw = &models.DumpSections{}
	}
	// Collections are copied through from the source bytes when available.
	pass := func(artifact string, src json.RawMessage, decoded any) {
		if len(src) > 0 {
			put(artifact, src)
			return
		}
		put(artifact, decoded)
	}

	pass(partition.Items, raw.Items, dump.Items)
	pass(partition.Fluids, raw.Fluids, dump.Fluids)
	pass(partition.OreDict, raw.OreDict, dump.OreDict)
	pass(partition.Crafting, raw.Crafting, dump.Crafting)
	pass(partition.Smelting, raw.Smelting, dump.Smelting)
	pass(partition.Machines, raw.Machines, dump.Machines)

	names := SortedMapNames(dump.Recipemaps)
	for _, name := range names {
		m := dump.Recipemaps[name]
		pass(partition.MapArtifact(name), raw.Recipemaps[name], &m)
	}
	put(partition.Manifest, models.Manifest{Count: len(names), Maps: names})

	put(partition.ItemIndex, indexes.Items)
	put(partition.FluidIndex, indexes.Fluids)
	put(partition.SearchItems, searchItems(dump.Items))
	put(partition.SearchFluids, searchFluids(dump.Fluids))
	put(partition.Metadata, meta)

	return g.Wait()
}
