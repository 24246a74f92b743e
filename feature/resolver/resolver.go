package resolver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"recipe-viewer/core/partition"
	"recipe-viewer/feature/recipes/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DefaultLoadTimeout bounds a single shared partition load.
const DefaultLoadTimeout = 2 * time.Minute

// Resolver materialises recipe references, loading each partition at most once.
//
// The cache lives as long as the Resolver and is never evicted. Concurrent requests for
// the same uncached partition share one fetch; a caller whose context ends stops
// waiting without cancelling the fetch for the others.
type Resolver struct {
	source      partition.Source
	logger      *zap.Logger
	loadTimeout time.Duration

	mu    sync.RWMutex
	cache map[string]any
	sf    singleflight.Group
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLoadTimeout overrides DefaultLoadTimeout. Zero disables the bound.
func WithLoadTimeout(d time.Duration) Option {
	return func(r *Resolver) { r.loadTimeout = d }
}

// New creates a resolver reading partitions from source.
func New(source partition.Source, logger *zap.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		source:      source,
		logger:      logger,
		loadTimeout: DefaultLoadTimeout,
		cache:       make(map[string]any),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ItemIndex returns the item recipe index.
func (r *Resolver) ItemIndex(ctx context.Context) (models.RecipeIndex, error) {
	idx, err := load[models.RecipeIndex](ctx, r, partition.ItemIndex, "index")
	if err != nil {
		return nil, err
	}
	return *idx, nil
}

// FluidIndex returns the fluid recipe index.
func (r *Resolver) FluidIndex(ctx context.Context) (models.RecipeIndex, error) {
	idx, err := load[models.RecipeIndex](ctx, r, partition.FluidIndex, "index")
	if err != nil {
		return nil, err
	}
	return *idx, nil
}

// OreDict returns the ore dictionary.
func (r *Resolver) OreDict(ctx context.Context) (*models.OreDict, error) {
	return load[models.OreDict](ctx, r, partition.OreDict, "oredict")
}

// Resolve turns refs into recipes. Machine recipes come first, then crafting, then
// smelting; refs of one kind keep their relative order. Refs whose position has no
// recipe are dropped.
func (r *Resolver) Resolve(ctx context.Context, refs []models.RecipeRef) ([]models.LoadedRecipe, error) {
	if len(refs) == 0 {
		return []models.LoadedRecipe{}, nil
	}

	// 1. Group references by kind
	var machineRefs, craftingRefs, smeltingRefs []models.RecipeRef
	var mapNames []string
	seen := make(map[string]struct{})
	for _, ref := range refs {
		switch {
		case ref.Type == models.KindMachine && ref.Map != "":
			machineRefs = append(machineRefs, ref)
			if _, ok := seen[ref.Map]; !ok {
				seen[ref.Map] = struct{}{}
				mapNames = append(mapNames, ref.Map)
			}
		case ref.Type == models.KindCrafting:
			craftingRefs = append(craftingRefs, ref)
		case ref.Type == models.KindSmelting:
			smeltingRefs = append(smeltingRefs, ref)
		default:
			r.logger.Debug("Skipping unresolvable reference", zap.Any("ref", ref))
		}
	}

	// 2. Load the partitions they need
	var (
		maps     = make([]*models.RecipeMap, len(mapNames))
		crafting *[]models.CraftingRecipe
		smelting *[]models.SmeltingRecipe
	)
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range mapNames {
		g.Go(func() error {
			m, err := load[models.RecipeMap](gctx, r, partition.MapArtifact(name), "map")
			maps[i] = m
			return err
		})
	}
	if len(craftingRefs) > 0 {
		g.Go(func() (err error) {
			crafting, err = load[[]models.CraftingRecipe](gctx, r, partition.Crafting, "crafting")
			return err
		})
	}
	if len(smeltingRefs) > 0 {
		g.Go(func() (err error) {
			smelting, err = load[[]models.SmeltingRecipe](gctx, r, partition.Smelting, "smelting")
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byName := make(map[string]*models.RecipeMap, len(mapNames))
	for i, name := range mapNames {
		byName[name] = maps[i]
	}

	// 3. Positional lookup
	out := make([]models.LoadedRecipe, 0, len(refs))
	for _, ref := range machineRefs {
		m := byName[ref.Map]
		if !inRange(ref.Index, len(m.Recipes)) {
			r.dangling(ref)
			continue
		}
		out = append(out, models.LoadedRecipe{Ref: ref, Recipe: &m.Recipes[ref.Index], MapName: m.DisplayName(ref.Map)})
	}
	for _, ref := range craftingRefs {
		if !inRange(ref.Index, len(*crafting)) {
			r.dangling(ref)
			continue
		}
		out = append(out, models.LoadedRecipe{Ref: ref, Recipe: &(*crafting)[ref.Index]})
	}
	for _, ref := range smeltingRefs {
		if !inRange(ref.Index, len(*smelting)) {
			r.dangling(ref)
			continue
		}
		out = append(out, models.LoadedRecipe{Ref: ref, Recipe: &(*smelting)[ref.Index]})
	}
	return out, nil
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}

func (r *Resolver) dangling(ref models.RecipeRef) {
	danglingDropped.Inc()
	r.logger.Debug("Dropping dangling recipe reference", zap.Any("ref", ref))
}

// load returns the decoded artifact, fetching it at most once at a time.
func load[T any](ctx context.Context, r *Resolver, artifact, kind string) (*T, error) {
	// Fast path
	r.mu.RLock()
	v, ok := r.cache[artifact]
	r.mu.RUnlock()
	if ok {
		cacheHits.Inc()
		return v.(*T), nil
	}

	// Slow path: one fetch per artifact, detached from any single caller's cancellation
	ch := r.sf.DoChan(artifact, func() (any, error) {
		r.mu.RLock()
		v, ok := r.cache[artifact]
		r.mu.RUnlock()
		if ok {
			return v, nil
		}

		loadCtx := context.WithoutCancel(ctx)
		if r.loadTimeout > 0 {
			var cancel context.CancelFunc
			loadCtx, cancel = context.WithTimeout(loadCtx, r.loadTimeout)
			defer cancel()
		}

		start := time.Now()
		val := new(T)
		if err := partition.Fetch(loadCtx, r.source, artifact, val); err != nil {
			partitionLoads.WithLabelValues(kind, "error").Inc()
			r.logger.Warn("Partition load failed", zap.String("partition", artifact), zap.Error(err))
			return nil, err
		}
		partitionLoads.WithLabelValues(kind, "success").Inc()
		partitionLoadDuration.Observe(time.Since(start).Seconds())
		r.logger.Debug("Partition loaded", zap.String("partition", artifact), zap.Duration("duration", time.Since(start)))

		r.mu.Lock()
		r.cache[artifact] = val
		r.mu.Unlock()
		return val, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrPartitionFetch, artifact, res.Err)
		}
		return res.Val.(*T), nil
	}
}
