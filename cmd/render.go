package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"recipe-viewer/feature/recipes/models"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	kindColor   = color.New(color.FgYellow)
	dimColor    = color.New(color.Faint)
)

// writeStructured writes v as indented JSON or as YAML keyed by its JSON field names.
func writeStructured(w io.Writer, format string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	switch format {
	case formatJSON:
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}

// writeRecipes renders a lookup result, as a table unless format asks otherwise.
func writeRecipes(w io.Writer, format, subject string, res *models.RecipesResult) error {
	if format != formatTable {
		return writeStructured(w, format, res)
	}

	headerColor.Fprintf(w, "%s\n", subject)
	for _, side := range []struct {
		title   string
		recipes []models.LoadedRecipe
	}{{"Used in", res.AsInput}, {"Produced by", res.AsOutput}} {
		headerColor.Fprintf(w, "\n%s (%d)\n", side.title, len(side.recipes))
		if len(side.recipes) == 0 {
			dimColor.Fprintln(w, "  none")
			continue
		}
		for _, lr := range side.recipes {
			kindColor.Fprintf(w, "  %-9s", lr.Ref.Type)
			fmt.Fprintf(w, " %s\n", summarize(lr))
		}
	}
	return nil
}

// summarize renders one recipe on a single line.
func summarize(lr models.LoadedRecipe) string {
	switch r := lr.Recipe.(type) {
	case *models.MachineRecipe:
		var outs []string
		for _, o := range r.Outputs {
			outs = append(outs, stackLabel(o))
		}
		for _, o := range r.ChancedOutputs {
			outs = append(outs, fmt.Sprintf("%s (%.2f%%)", stackLabel(o.ItemStack), float64(o.Chance)/100))
		}
		for _, f := range r.FluidOutputs {
			outs = append(outs, fmt.Sprintf("%dmB %s", f.Amount, f.UnlocalizedName))
		}
		return fmt.Sprintf("%s #%d  %d EU/t, %d ticks -> %s", lr.MapName, lr.Ref.Index, r.EUt, r.Duration, joinOrNone(outs))
	case *models.CraftingRecipe:
		out := "nothing"
		if r.Output != nil {
			out = stackLabel(*r.Output)
		}
		return fmt.Sprintf("#%d %s (%s) -> %s", lr.Ref.Index, r.RegistryName, r.Type, out)
	case *models.SmeltingRecipe:
		in, out := "?", "?"
		if r.Input != nil {
			in = stackLabel(*r.Input)
		}
		if r.Output != nil {
			out = stackLabel(*r.Output)
		}
		return fmt.Sprintf("#%d %s -> %s", lr.Ref.Index, in, out)
	}
	return fmt.Sprintf("#%d", lr.Ref.Index)
}

func stackLabel(s models.ItemStack) string {
	name := s.DisplayName
	if name == "" {
		name = s.Key()
	}
	if n := s.Size(); n > 1 {
		return fmt.Sprintf("%dx %s", n, name)
	}
	return name
}

func joinOrNone(parts []string) string {
	if len(parts) == 0 {
		return "nothing"
	}
	return strings.Join(parts, ", ")
}
