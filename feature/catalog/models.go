package catalog

// ItemRow is one searchable item. Position is the item's index in the dataset's item
// list and search index, so it doubles as the search id.
type ItemRow struct {
	Position       int    `gorm:"column:position;primaryKey;autoIncrement:false" json:"id"`
	ItemKey        string `gorm:"column:item_key;size:255;index" json:"key"`
	Resource       string `gorm:"column:resource;size:255;index" json:"resource"`
	Variant        int    `gorm:"column:variant" json:"variant"`
	DisplayName    string `gorm:"column:display_name;size:255;index" json:"displayName"`
	TranslationKey string `gorm:"column:translation_key;size:255" json:"translationKey"`
	Mod            string `gorm:"column:mod_name;size:128;index" json:"mod"`
	Rarity         string `gorm:"column:rarity;size:32;index" json:"rarity"`
	OreDict        string `gorm:"column:ore_dict;type:text" json:"oreDict"`
	UsedIn         int    `gorm:"column:used_in" json:"usedIn"`
	ProducedBy     int    `gorm:"column:produced_by" json:"producedBy"`
}

func (ItemRow) TableName() string { return "catalog_items" }

// FluidRow is one searchable fluid.
type FluidRow struct {
	Position             int    `gorm:"column:position;primaryKey;autoIncrement:false" json:"id"`
	FluidUnlocalizedName string `gorm:"column:fluid_unlocalized_name;size:255;index" json:"fluidUnlocalizedName"`
	FluidName            string `gorm:"column:fluid_name;size:255" json:"fluidName"`
	FluidLocalizedName   string `gorm:"column:fluid_localized_name;size:255;index" json:"fluidLocalizedName"`
	Temperature          int    `gorm:"column:temperature" json:"temperature"`
	UsedIn               int    `gorm:"column:used_in" json:"usedIn"`
	ProducedBy           int    `gorm:"column:produced_by" json:"producedBy"`
}

func (FluidRow) TableName() string { return "catalog_fluids" }

// ItemFilter narrows an item search. Empty fields match everything.
type ItemFilter struct {
	// Query matches display name or resource id, case-insensitively.
	Query string
	// Mod matches the resource namespace exactly.
	Mod string
	// Rarity matches exactly.
	Rarity string
}

// FluidFilter narrows a fluid search.
type FluidFilter struct {
	// Query matches localized or registry name, case-insensitively.
	Query          string
	MinTemperature *int
	MaxTemperature *int
}

// Page bounds a search.
type Page struct {
	Limit  int
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 500
)

func (p Page) normalize() Page {
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// SyncResult reports how many rows a sync wrote.
type SyncResult struct {
	Items  int `json:"items"`
	Fluids int `json:"fluids"`
}
