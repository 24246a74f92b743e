package partition

const (
	SourceLocal  = "local"
	SourceBucket = "bucket"
)

// Config selects where the dataset artifacts are read from.
type Config struct {
	// Source is either "local" (a built output directory) or "bucket" (object storage).
	Source string `mapstructure:"source" default:"local" validate:"oneof=local bucket"`
	// Dir is the dataset directory when Source is local.
	Dir string `mapstructure:"dir" default:"data/recipes" validate:"required_if=Source local"`
	// Prefix is the object key prefix when Source is bucket.
	Prefix string `mapstructure:"prefix" default:"recipes"`
}
