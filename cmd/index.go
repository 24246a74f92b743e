package cmd

import (
	"fmt"

	"recipe-viewer/core/partition"
	"recipe-viewer/feature/catalog"
	"recipe-viewer/feature/indexer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the partitioned dataset from a recipe dump",
	Long: `Reads the raw recipe dump, builds the item and fluid recipe indexes and writes every
artifact into the data directory. The previous dataset is replaced only when the whole build succeeds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		defer s.logger.Sync()

		opts := indexer.Options{
			DumpPath:  s.cfg.Indexer.Dump,
			OutputDir: s.cfg.Data.Dir,
			Version:   s.cfg.Indexer.Version,
			Workers:   s.cfg.Indexer.Workers,
		}
		if v, _ := cmd.Flags().GetString("dump"); v != "" {
			opts.DumpPath = v
		}
		if v, _ := cmd.Flags().GetString("out"); v != "" {
			opts.OutputDir = v
		}
		if v, _ := cmd.Flags().GetString("dataset-version"); v != "" {
			opts.Version = v
		}
		if opts.OutputDir == "" {
			return fmt.Errorf("no output directory: set DATA_DIR or --out")
		}

		res, err := indexer.New(s.logger).Run(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("index build failed: %w", err)
		}

		stats := res.Metadata.Stats
		s.logger.Info("Index build completed",
			zap.String("output", res.OutputDir),
			zap.Int("items", stats.Items),
			zap.Int("fluids", stats.Fluids),
			zap.Int("recipemaps", stats.Recipemaps),
			zap.Int("machine_recipes", stats.MachineRecipes),
			zap.Int("anomalies", len(res.Anomalies)),
			zap.Duration("duration", res.Duration),
		)

		if sync, _ := cmd.Flags().GetBool("sync-catalog"); sync {
			db, err := s.requireDatabase()
			if err != nil {
				return err
			}
			svc := catalog.NewService(db, s.logger)
			if err := svc.Migrate(); err != nil {
				return fmt.Errorf("failed to migrate catalog: %w", err)
			}
			if _, err := svc.Sync(cmd.Context(), &partition.DirSource{Dir: res.OutputDir}); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(indexCmd)
	indexCmd.Flags().String("dump", "", "Recipe dump path (overrides INDEXER_DUMP)")
	indexCmd.Flags().String("out", "", "Output dataset directory (overrides DATA_DIR)")
	indexCmd.Flags().String("dataset-version", "", "Version recorded in metadata (overrides INDEXER_VERSION)")
	indexCmd.Flags().Bool("sync-catalog", false, "Sync the catalog database from the new dataset")
}
