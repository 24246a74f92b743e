package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"recipe-viewer/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the built dataset",
	Long: `Runs every configured check: required artifacts, recipe map reconciliation, dangling
index references, and (when configured) the catalog schema and the publish bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		s, svc, err := integrityService(true)
		if err != nil {
			return err
		}
		s.logger.Info("Running all integrity checks (this might take a while)...")
		report := svc.RunAll(cmd.Context())

		if jsonOutput {
			filename := fmt.Sprintf("integrity_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			s.logger.Info("Detailed JSON report saved", zap.String("file", filename))
		}

		for name, entry := range report {
			if m, ok := entry.(map[string]any); ok && m["status"] == "error" {
				s.logger.Error("Check failed", zap.String("check", name), zap.Any("error", m["error"]))
			}
		}
		s.logger.Info("Integrity checks completed", zap.Duration("execution_time", time.Since(startTime)))
		return nil
	},
}

var artifactsCmd = &cobra.Command{
	Use:   "artifacts",
	Short: "Check that every required artifact exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, svc, err := integrityService(false)
		if err != nil {
			return err
		}
		missing, err := svc.CheckArtifacts(cmd.Context())
		if err != nil {
			return fmt.Errorf("artifacts check failed: %w", err)
		}
		if len(missing) == 0 {
			s.logger.Info("All required artifacts are present.")
			return nil
		}
		s.logger.Warn("Missing artifacts detected", zap.Strings("missing", missing))
		return fmt.Errorf("%d required artifacts missing", len(missing))
	},
}

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "Reconcile the recipe map manifest, partitions and index references",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, svc, err := integrityService(false)
		if err != nil {
			return err
		}
		report, err := svc.ReconcileMaps(cmd.Context())
		if err != nil {
			return fmt.Errorf("map reconciliation failed: %w", err)
		}
		if report.Matched {
			s.logger.Info("Recipe maps are consistent.", zap.Int("maps", len(report.Maps)))
			return nil
		}
		for _, m := range report.Inconsistent() {
			s.logger.Warn("Inconsistent recipe map",
				zap.String("map", m.Name),
				zap.Bool("in_manifest", m.InManifest),
				zap.Bool("partition_present", m.PartitionPresent),
				zap.Int("references", m.References),
			)
		}
		return fmt.Errorf("%d recipe maps inconsistent", len(report.Inconsistent()))
	},
}

var danglingCmd = &cobra.Command{
	Use:   "dangling",
	Short: "Scan the recipe indexes for dangling references",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, svc, err := integrityService(false)
		if err != nil {
			return err
		}
		report, err := svc.ScanDangling(cmd.Context())
		if err != nil {
			return fmt.Errorf("dangling reference scan failed: %w", err)
		}
		for _, a := range report.Anomalies {
			s.logger.Warn("Dangling reference", zap.String("anomaly", a.String()))
		}
		s.logger.Info("Dangling reference scan completed",
			zap.Int("checked", report.Checked),
			zap.Int("anomalies", len(report.Anomalies)))
		if len(report.Anomalies) > 0 {
			return fmt.Errorf("%d dangling references", len(report.Anomalies))
		}
		return nil
	},
}

var catalogCheckCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Check the catalog database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, svc, err := integrityService(true)
		if err != nil {
			return err
		}
		report, err := svc.CheckCatalog()
		if err != nil {
			return fmt.Errorf("catalog schema check failed: %w", err)
		}
		if report.Matched {
			s.logger.Info("Catalog schema matches the expected definition.")
			return nil
		}
		for table, tblReport := range report.Tables {
			if tblReport.Status == "ok" {
				continue
			}
			if len(tblReport.MissingColumns) > 0 {
				s.logger.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
			}
			if len(tblReport.TypeMismatches) > 0 {
				s.logger.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
			}
		}
		for _, e := range report.Errors {
			s.logger.Error("Inspection Error", zap.String("error", e))
		}
		return fmt.Errorf("catalog schema mismatch")
	},
}

var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Check (and with --fix create) the publish bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, svc, err := integrityService(false)
		if err != nil {
			return err
		}
		return checkBucket(cmd.Context(), s, svc)
	},
}

func checkBucket(ctx context.Context, s *session, svc *integrity.Service) error {
	report, err := svc.CheckBucket(ctx)
	if err != nil {
		return fmt.Errorf("bucket check failed: %w", err)
	}
	if report.BucketExists {
		s.logger.Info("Bucket exists.", zap.String("bucket", report.Bucket), zap.Bool("populated", report.Populated))
		return nil
	}

	s.logger.Warn("Bucket is missing", zap.String("bucket", report.Bucket))
	if !fixFlag {
		s.logger.Info("Run with --fix to create the bucket.")
		return nil
	}
	if err := svc.FixBucket(ctx); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	s.logger.Info("Bucket created successfully.")
	return nil
}

// integrityService wires the service. withDB connects the catalog database, optionally.
func integrityService(withDB bool) (*session, *integrity.Service, error) {
	s, err := loadSession()
	if err != nil {
		return nil, nil, err
	}

	client, err := s.storageClient()
	if err != nil {
		s.logger.Warn("Storage client unavailable", zap.Error(err))
	}
	src, err := s.source(client)
	if err != nil {
		return nil, nil, err
	}

	var db *gorm.DB
	if withDB {
		db = s.optionalDatabase()
	}
	return s, integrity.NewService(src, client, s.cfg.Storage.Bucket, s.cfg.Data.Prefix, db, s.logger), nil
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(artifactsCmd, mapsCmd, danglingCmd, catalogCheckCmd, bucketCmd)

	integrityCmd.Flags().Bool("json", false, "Save the combined report as JSON")
	bucketCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket when missing")
}
