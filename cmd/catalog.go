package cmd

import (
	"fmt"
	"text/tabwriter"

	"recipe-viewer/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// catalogCmd groups the catalog database commands
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage and search the item/fluid catalog database",
}

var catalogSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Replace the catalog with the contents of the configured dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, svc, err := catalogService()
		if err != nil {
			return err
		}
		defer s.logger.Sync()

		src, err := s.source(nil)
		if err != nil {
			return err
		}
		res, err := svc.Sync(cmd.Context(), src)
		if err != nil {
			return err
		}
		s.logger.Info("Catalog sync completed", zap.Int("items", res.Items), zap.Int("fluids", res.Fluids))
		return nil
	},
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search items (or fluids with --fluids)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, svc, err := catalogService()
		if err != nil {
			return err
		}

		var query string
		if len(args) == 1 {
			query = args[0]
		}
		limit, _ := cmd.Flags().GetInt("limit")
		fluids, _ := cmd.Flags().GetBool("fluids")
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

		if fluids {
			rows, total, err := svc.SearchFluids(cmd.Context(), catalog.FluidFilter{Query: query}, catalog.Page{Limit: limit})
			if err != nil {
				return err
			}
			headerColor.Fprintf(w, "%d fluids\n", total)
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%s\t%dK\tused in %d\tproduced by %d\n",
					r.FluidUnlocalizedName, r.FluidLocalizedName, r.Temperature, r.UsedIn, r.ProducedBy)
			}
			return w.Flush()
		}

		mod, _ := cmd.Flags().GetString("mod")
		rarity, _ := cmd.Flags().GetString("rarity")
		rows, total, err := svc.SearchItems(cmd.Context(), catalog.ItemFilter{Query: query, Mod: mod, Rarity: rarity}, catalog.Page{Limit: limit})
		if err != nil {
			return err
		}
		headerColor.Fprintf(w, "%d items\n", total)
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\tused in %d\tproduced by %d\n",
				r.ItemKey, r.DisplayName, r.OreDict, r.UsedIn, r.ProducedBy)
		}
		return w.Flush()
	},
}

func catalogService() (*session, *catalog.Service, error) {
	s, err := loadSession()
	if err != nil {
		return nil, nil, err
	}
	db, err := s.requireDatabase()
	if err != nil {
		return nil, nil, err
	}
	svc := catalog.NewService(db, s.logger)
	if err := svc.Migrate(); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate catalog: %w", err)
	}
	return s, svc, nil
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogSyncCmd, catalogSearchCmd)
	catalogSearchCmd.Flags().Bool("fluids", false, "Search fluids instead of items")
	catalogSearchCmd.Flags().String("mod", "", "Only items of this mod namespace")
	catalogSearchCmd.Flags().String("rarity", "", "Only items of this rarity")
	catalogSearchCmd.Flags().Int("limit", 20, "Maximum results")
}
