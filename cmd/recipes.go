package cmd

import (
	"fmt"
	"strconv"

	"recipe-viewer/core/identity"
	"recipe-viewer/feature/recipes"
	"recipe-viewer/feature/resolver"

	"github.com/spf13/cobra"
)

// recipesCmd groups the lookup commands
var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Look up recipes in the configured dataset",
}

var recipesItemCmd = &cobra.Command{
	Use:   "item <resource> [variant] | item <key>",
	Short: "List recipes using and producing an item",
	Long: `Lists recipes using and producing an item, including recipes recorded for the
resource's wildcard variant. The item is either a resource and optional variant
("minecraft:planks 1") or a full item key ("minecraft:planks:1").`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resource, variant, err := itemArgs(args)
		if err != nil {
			return err
		}
		svc, err := recipeService()
		if err != nil {
			return err
		}
		res, err := svc.RecipesForItem(cmd.Context(), resource, variant)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return writeRecipes(cmd.OutOrStdout(), format, identity.ItemKey(resource, variant), res)
	},
}

var recipesFluidCmd = &cobra.Command{
	Use:   "fluid <unlocalized-name>",
	Short: "List recipes using and producing a fluid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := recipeService()
		if err != nil {
			return err
		}
		res, err := svc.RecipesForFluid(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return writeRecipes(cmd.OutOrStdout(), format, identity.FluidKey(args[0]), res)
	},
}

var recipesDescribeCmd = &cobra.Command{
	Use:   "describe <resource> [variant] | describe <key>",
	Short: "Show an item's ore dictionary names and recipe counts",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resource, variant, err := itemArgs(args)
		if err != nil {
			return err
		}
		svc, err := recipeService()
		if err != nil {
			return err
		}
		desc, err := svc.DescribeItem(cmd.Context(), resource, variant)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		if format != formatTable {
			return writeStructured(cmd.OutOrStdout(), format, desc)
		}
		w := cmd.OutOrStdout()
		headerColor.Fprintf(w, "%s\n", desc.Key)
		fmt.Fprintf(w, "  ore dictionary: %s\n", joinOrNone(desc.OreDict))
		fmt.Fprintf(w, "  used in:        %d\n", desc.UsedIn)
		fmt.Fprintf(w, "  produced by:    %d\n", desc.ProducedBy)
		return nil
	},
}

// itemArgs accepts "<resource> <variant>", "<key>" or a bare "<resource>".
func itemArgs(args []string) (string, int, error) {
	if len(args) == 2 {
		variant, err := strconv.Atoi(args[1])
		if err != nil {
			return "", 0, fmt.Errorf("variant must be an integer: %w", err)
		}
		return args[0], variant, nil
	}
	if resource, variant, err := identity.ParseItemKey(args[0]); err == nil {
		return resource, variant, nil
	}
	return args[0], 0, nil
}

func recipeService() (*recipes.Service, error) {
	s, err := loadSession()
	if err != nil {
		return nil, err
	}
	src, err := s.source(nil)
	if err != nil {
		return nil, err
	}
	return recipes.NewService(resolver.New(src, s.logger), s.logger), nil
}

func init() {
	RootCmd.AddCommand(recipesCmd)
	recipesCmd.AddCommand(recipesItemCmd, recipesFluidCmd, recipesDescribeCmd)
	recipesCmd.PersistentFlags().String("format", formatTable, "Output format: table, json or yaml")
}
