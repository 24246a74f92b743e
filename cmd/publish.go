package cmd

import (
	"fmt"

	"recipe-viewer/core/partition"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload a built dataset to object storage",
	Long: `Uploads every artifact of a built dataset directory to the storage bucket under the
data prefix, creating the bucket when missing. With --prune, objects under the prefix that
are not part of the dataset are removed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		defer s.logger.Sync()

		client, err := s.storageClient()
		if err != nil {
			return err
		}

		opts := partition.PublishOptions{
			Dir:     s.cfg.Data.Dir,
			Bucket:  s.cfg.Storage.Bucket,
			Prefix:  s.cfg.Data.Prefix,
			Workers: s.cfg.Indexer.Workers,
		}
		if v, _ := cmd.Flags().GetString("dir"); v != "" {
			opts.Dir = v
		}
		opts.Prune, _ = cmd.Flags().GetBool("prune")
		if opts.Dir == "" {
			return fmt.Errorf("no dataset directory: set DATA_DIR or --dir")
		}

		res, err := partition.Publish(cmd.Context(), client, opts, s.logger)
		if err != nil {
			return fmt.Errorf("publish failed: %w", err)
		}
		s.logger.Info("Publish completed",
			zap.String("bucket", opts.Bucket),
			zap.String("prefix", opts.Prefix),
			zap.Int("uploaded", res.Uploaded),
			zap.Int("pruned", len(res.Pruned)),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(publishCmd)
	publishCmd.Flags().String("dir", "", "Dataset directory (overrides DATA_DIR)")
	publishCmd.Flags().Bool("prune", false, "Remove stale objects under the prefix")
}
