package indexer

// Config holds settings for the offline index build.
type Config struct {
	// Dump is the path of the raw recipe dump (plain or .gz JSON).
	Dump string `mapstructure:"dump" default:"recipedump.json" validate:"required"`
	// Version is recorded in the dataset metadata.
	Version string `mapstructure:"version" default:"1.0.0" validate:"required"`
	// Workers bounds concurrent partition writes.
	Workers int `mapstructure:"workers" default:"4" validate:"min=1"`
}
