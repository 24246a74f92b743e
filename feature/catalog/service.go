package catalog

import (
	"context"
	"fmt"
	"strings"

	"recipe-viewer/core/identity"
	"recipe-viewer/core/partition"
	"recipe-viewer/feature/oredict"
	"recipe-viewer/feature/recipes/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const batchSize = 500

// Service maintains and queries the item/fluid catalog tables.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Migrate creates or updates the catalog tables.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(&ItemRow{}, &FluidRow{})
}

// Sync replaces the catalog with the contents of a built dataset.
func (s *Service) Sync(ctx context.Context, src partition.Source) (*SyncResult, error) {
	// 1. Fetch the artifacts the catalog is derived from
	var (
		items      []models.Item
		fluids     []models.Fluid
		dict       models.OreDict
		itemIndex  models.RecipeIndex
		fluidIndex models.RecipeIndex
	)
	for artifact, dst := range map[string]any{
		partition.Items:      &items,
		partition.Fluids:     &fluids,
		partition.OreDict:    &dict,
		partition.ItemIndex:  &itemIndex,
		partition.FluidIndex: &fluidIndex,
	} {
		if err := partition.Fetch(ctx, src, artifact, dst); err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", artifact, err)
		}
	}

	// 2. Build rows
	itemRows := BuildItemRows(items, &dict, itemIndex)
	fluidRows := BuildFluidRows(fluids, fluidIndex)

	// 3. Replace table contents in one transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&ItemRow{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&FluidRow{}).Error; err != nil {
			return err
		}
		if len(itemRows) > 0 {
			if err := tx.CreateInBatches(itemRows, batchSize).Error; err != nil {
				return err
			}
		}
		if len(fluidRows) > 0 {
			if err := tx.CreateInBatches(fluidRows, batchSize).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sync catalog: %w", err)
	}

	s.logger.Info("Catalog synced", zap.Int("items", len(itemRows)), zap.Int("fluids", len(fluidRows)))
	return &SyncResult{Items: len(itemRows), Fluids: len(fluidRows)}, nil
}

// BuildItemRows derives catalog rows from the item list. Recipe counts include the
// resource's wildcard entry, matching item recipe lookups.
func BuildItemRows(items []models.Item, dict *models.OreDict, idx models.RecipeIndex) []ItemRow {
	reverse := oredict.Reverse(dict)
	rows := make([]ItemRow, len(items))
	for i, item := range items {
		key := item.Key()
		row := ItemRow{
			Position:       i,
			ItemKey:        key,
			Resource:       item.Resource,
			Variant:        item.Variant(),
			DisplayName:    item.DisplayName,
			TranslationKey: item.TranslationKey,
			Mod:            item.Mod(),
			Rarity:         item.Rarity,
			OreDict:        strings.Join(reverse[key], ","),
		}
		keys := []string{key}
		if !identity.IsWildcard(item.Variant()) {
			keys = append(keys, identity.ItemKey(item.Resource, identity.WildcardVariant))
		}
		for _, k := range keys {
			if e := idx.Lookup(k); e != nil {
				row.UsedIn += len(e.AsInput)
				row.ProducedBy += len(e.AsOutput)
			}
		}
		rows[i] = row
	}
	return rows
}

// BuildFluidRows derives catalog rows from the fluid list.
func BuildFluidRows(fluids []models.Fluid, idx models.RecipeIndex) []FluidRow {
	rows := make([]FluidRow, len(fluids))
	for i, f := range fluids {
		row := FluidRow{
			Position:             i,
			FluidUnlocalizedName: f.FluidUnlocalizedName,
			FluidName:            f.FluidName,
			FluidLocalizedName:   f.FluidLocalizedName,
			Temperature:          f.FluidTemperature,
		}
		if e := idx.Lookup(f.Key()); e != nil {
			row.UsedIn = len(e.AsInput)
			row.ProducedBy = len(e.AsOutput)
		}
		rows[i] = row
	}
	return rows
}

// SearchItems returns matching items ordered by dataset position, plus the total match count.
func (s *Service) SearchItems(ctx context.Context, f ItemFilter, page Page) ([]ItemRow, int64, error) {
	page = page.normalize()
	q := s.db.WithContext(ctx).Model(&ItemRow{})
	if f.Query != "" {
		pat := likePattern(f.Query)
		q = q.Where("LOWER(display_name) LIKE ? OR LOWER(resource) LIKE ?", pat, pat)
	}
	if f.Mod != "" {
		q = q.Where("mod_name = ?", f.Mod)
	}
	if f.Rarity != "" {
		q = q.Where("rarity = ?", f.Rarity)
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}
	var rows []ItemRow
	if err := q.Order("position").Limit(page.Limit).Offset(page.Offset).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search items: %w", err)
	}
	return rows, total, nil
}

// SearchFluids returns matching fluids ordered by dataset position, plus the total match count.
func (s *Service) SearchFluids(ctx context.Context, f FluidFilter, page Page) ([]FluidRow, int64, error) {
	page = page.normalize()
	q := s.db.WithContext(ctx).Model(&FluidRow{})
	if f.Query != "" {
		pat := likePattern(f.Query)
		q = q.Where("LOWER(fluid_localized_name) LIKE ? OR LOWER(fluid_name) LIKE ?", pat, pat)
	}
	if f.MinTemperature != nil {
		q = q.Where("temperature >= ?", *f.MinTemperature)
	}
	if f.MaxTemperature != nil {
		q = q.Where("temperature <= ?", *f.MaxTemperature)
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count fluids: %w", err)
	}
	var rows []FluidRow
	if err := q.Order("position").Limit(page.Limit).Offset(page.Offset).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search fluids: %w", err)
	}
	return rows, total, nil
}

func likePattern(query string) string {
	return "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
}
