package recipes

import (
	"context"
	"sync"

	"recipe-viewer/core/identity"
	"recipe-viewer/feature/oredict"
	"recipe-viewer/feature/recipes/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Resolver is the data access the service needs; *resolver.Resolver implements it.
type Resolver interface {
	ItemIndex(ctx context.Context) (models.RecipeIndex, error)
	FluidIndex(ctx context.Context) (models.RecipeIndex, error)
	OreDict(ctx context.Context) (*models.OreDict, error)
	Resolve(ctx context.Context, refs []models.RecipeRef) ([]models.LoadedRecipe, error)
}

// Service answers "which recipes consume or produce this item/fluid".
type Service struct {
	resolver Resolver
	logger   *zap.Logger

	mu      sync.RWMutex
	reverse map[string][]string
	flight  singleflight.Group
}

// NewService creates a new recipe query service.
func NewService(resolver Resolver, logger *zap.Logger) *Service {
	return &Service{resolver: resolver, logger: logger}
}

// RecipesForItem returns the recipes using and producing an item. Unless the variant
// is the wildcard itself, recipes recorded under the resource's wildcard key are
// included. An unknown item yields empty lists.
func (s *Service) RecipesForItem(ctx context.Context, resourceID string, variantID int) (*models.RecipesResult, error) {
	idx, err := s.resolver.ItemIndex(ctx)
	if err != nil {
		return nil, err
	}
	in, out := itemRefs(idx, resourceID, variantID)
	return s.resolve(ctx, in, out)
}

// RecipesForFluid returns the recipes using and producing a fluid.
func (s *Service) RecipesForFluid(ctx context.Context, unlocalizedName string) (*models.RecipesResult, error) {
	idx, err := s.resolver.FluidIndex(ctx)
	if err != nil {
		return nil, err
	}
	entry := idx.Lookup(identity.FluidKey(unlocalizedName))
	if entry == nil {
		return models.EmptyResult(), nil
	}
	return s.resolve(ctx, entry.AsInput, entry.AsOutput)
}

// DescribeItem returns the ore-dictionary groups of an item and how many recipes use
// and produce it, counted the same way RecipesForItem gathers them.
func (s *Service) DescribeItem(ctx context.Context, resourceID string, variantID int) (*models.ItemDescription, error) {
	idx, err := s.resolver.ItemIndex(ctx)
	if err != nil {
		return nil, err
	}
	reverse, err := s.reverseOreDict(ctx)
	if err != nil {
		return nil, err
	}

	key := identity.ItemKey(resourceID, variantID)
	in, out := itemRefs(idx, resourceID, variantID)
	names := reverse[key]
	if names == nil {
		names = []string{}
	}
	return &models.ItemDescription{
		Key:        key,
		OreDict:    names,
		UsedIn:     len(in),
		ProducedBy: len(out),
	}, nil
}

// reverseOreDict builds the reverse ore dictionary once. Concurrent callers share one
// build; each stops waiting when its own context ends. A failed build is retried by the
// next caller.
func (s *Service) reverseOreDict(ctx context.Context) (map[string][]string, error) {
	s.mu.RLock()
	reverse := s.reverse
	s.mu.RUnlock()
	if reverse != nil {
		return reverse, nil
	}

	ch := s.flight.DoChan("reverse", func() (any, error) {
		s.mu.RLock()
		cached := s.reverse
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		dict, err := s.resolver.OreDict(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		built := oredict.Reverse(dict)
		s.mu.Lock()
		s.reverse = built
		s.mu.Unlock()
		s.logger.Debug("Built reverse ore dictionary", zap.Int("keys", len(built)))
		return built, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(map[string][]string), nil
	}
}

// itemRefs unions the exact and wildcard entries. Duplicates are kept.
func itemRefs(idx models.RecipeIndex, resourceID string, variantID int) (in, out []models.RecipeRef) {
	in, out = []models.RecipeRef{}, []models.RecipeRef{}
	keys := []string{identity.ItemKey(resourceID, variantID)}
	if !identity.IsWildcard(variantID) {
		keys = append(keys, identity.ItemKey(resourceID, identity.WildcardVariant))
	}
	for _, key := range keys {
		if entry := idx.Lookup(key); entry != nil {
			in = append(in, entry.AsInput...)
			out = append(out, entry.AsOutput...)
		}
	}
	return in, out
}

func (s *Service) resolve(ctx context.Context, in, out []models.RecipeRef) (*models.RecipesResult, error) {
	res := models.EmptyResult()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.AsInput, err = s.resolver.Resolve(gctx, in)
		return err
	})
	g.Go(func() (err error) {
		res.AsOutput, err = s.resolver.Resolve(gctx, out)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
