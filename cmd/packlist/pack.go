package main

import (
	"fmt"
	"strconv"

	"packlist/internal/pack"

	"github.com/spf13/cobra"
)

// pack command
var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Manage the current pack",
}

var (
	addCategory  string
	addQty       int
	addNote      string
	addWeight    float64
	addThumbnail string
)

var packAddCmd = &cobra.Command{
	Use:   "add <id> <name>",
	Short: "Add a closet item to the pack",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddToPack")
		if err != nil {
			return err
		}
		defer a.Close()

		item := pack.ClosetItem{
			ID:         args[0],
			Name:       args[1],
			CategoryID: addCategory,
			Thumbnail:  addThumbnail,
		}
		if cmd.Flags().Changed("weight") {
			w := addWeight
			item.WeightPerUnit = &w
		}

		a.Pack.AddToPack(item, addQty, addNote)
		fmt.Printf("Added %s × %d\n", item.Name, addQty)
		return nil
	},
}

var packRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an item from the pack",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemoveFromPack")
		if err != nil {
			return err
		}
		defer a.Close()

		a.Pack.RemoveFromPack(args[0])
		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}

var packQtyCmd = &cobra.Command{
	Use:   "qty <id> <quantity>",
	Short: "Set an item's quantity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity: %s", args[1])
		}

		a, err := newApp("SetQuantity")
		if err != nil {
			return err
		}
		defer a.Close()

		a.Pack.SetQuantity(args[0], qty)
		return nil
	},
}

var packNoteCmd = &cobra.Command{
	Use:   "note <id> <note>",
	Short: "Set an item's note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SetNote")
		if err != nil {
			return err
		}
		defer a.Close()

		a.Pack.SetNote(args[0], args[1])
		return nil
	},
}

var packWeightClear bool

var packWeightCmd = &cobra.Command{
	Use:   "weight <id> [kg]",
	Short: "Set or clear an item's per-piece weight",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SetItemWeight")
		if err != nil {
			return err
		}
		defer a.Close()

		if packWeightClear {
			a.Pack.SetItemWeight(args[0], nil)
			return nil
		}
		if len(args) < 2 {
			return fmt.Errorf("weight in kg required (or --clear)")
		}
		w, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[1])
		}
		a.Pack.SetItemWeight(args[0], &w)
		return nil
	},
}

var packClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the pack (bag weight and allowance are kept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ClearPack")
		if err != nil {
			return err
		}
		defer a.Close()

		a.Pack.ClearPack()
		fmt.Println("Pack cleared")
		return nil
	},
}

var packBagCmd = &cobra.Command{
	Use:   "bag <kg>",
	Short: "Set the empty bag weight",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[0])
		}

		a, err := newApp("SetBagWeight")
		if err != nil {
			return err
		}
		defer a.Close()

		a.Pack.SetBagWeight(w)
		return nil
	},
}

var packAllowanceClear bool

var packAllowanceCmd = &cobra.Command{
	Use:   "allowance [kg]",
	Short: "Set or clear the airline weight allowance",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SetAllowance")
		if err != nil {
			return err
		}
		defer a.Close()

		if packAllowanceClear {
			a.Pack.SetAllowance(nil)
			return nil
		}
		if len(args) < 1 {
			return fmt.Errorf("allowance in kg required (or --clear)")
		}
		w, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid allowance: %s", args[0])
		}
		a.Pack.SetAllowance(&w)
		return nil
	},
}

var packSeasonCmd = &cobra.Command{
	Use:   "season <summer|winter|spring|autumn|any>",
	Short: "Tag the pack with a season",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SetSeason")
		if err != nil {
			return err
		}
		defer a.Close()

		a.Pack.SetSeason(pack.Season(args[0]))
		return nil
	},
}

var packListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the pack contents and totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListPack")
		if err != nil {
			return err
		}
		defer a.Close()

		p := a.Pack.Pack()
		fmt.Printf("%s (%d items, total qty %d)\n", p.Name, p.ItemCount(), p.TotalQuantity())
		for _, it := range p.Items {
			line := fmt.Sprintf("  %-24s × %d", it.Name, it.Quantity)
			if it.WeightPerUnit != nil {
				line += fmt.Sprintf("  %.2fkg/pc", *it.WeightPerUnit)
			}
			if it.Note != "" {
				line += "  (" + it.Note + ")"
			}
			fmt.Println(line)
		}
		fmt.Printf("Total weight: %.2f kg (with bag: %.2f kg)\n", p.TotalWeight(), p.TotalWithBagWeight())
		if rem := p.RemainingAllowance(); rem != nil {
			fmt.Printf("Remaining allowance: %.2f kg\n", *rem)
		}
		if la := a.Pack.LastAdded(); la != nil {
			fmt.Printf("Last added: %s at %s\n", la.Name, la.At.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var packExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the pack as a shareable text report",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ExportAsText")
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Println(a.Pack.ExportAsText(nil))
		return nil
	},
}

// template command
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage pack templates",
}

var templateSaveSeason string

var templateSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Snapshot the current pack items as a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SaveTemplate")
		if err != nil {
			return err
		}
		defer a.Close()

		tpl := a.Pack.SaveTemplate(args[0], pack.Season(templateSaveSeason))
		fmt.Printf("Saved template %s (%s)\n", tpl.Name, tpl.ID)
		return nil
	},
}

var templateLoadCmd = &cobra.Command{
	Use:   "load <id>",
	Short: "Replace the pack items with a template's items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("LoadTemplate")
		if err != nil {
			return err
		}
		defer a.Close()

		a.Pack.LoadTemplate(args[0])
		return nil
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("DeleteTemplate")
		if err != nil {
			return err
		}
		defer a.Close()

		a.Pack.DeleteTemplate(args[0])
		return nil
	},
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved templates, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListTemplates")
		if err != nil {
			return err
		}
		defer a.Close()

		for _, tpl := range a.Pack.Templates() {
			line := fmt.Sprintf("%s  %s (%d items)", tpl.ID, tpl.Name, len(tpl.Items))
			if tpl.Season != "" {
				line += "  [" + string(tpl.Season) + "]"
			}
			fmt.Println(line)
		}
		return nil
	},
}

var templateExportCmd = &cobra.Command{
	Use:   "export <id> <file>",
	Short: "Write a template to a YAML file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ExportPackTemplate")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.ExportPackTemplate(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", args[1])
		return nil
	},
}

var templateImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add a template from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ImportPackTemplate")
		if err != nil {
			return err
		}
		defer a.Close()

		tpl, err := a.ImportPackTemplate(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Imported template %s (%s)\n", tpl.Name, tpl.ID)
		return nil
	},
}

func init() {
	packAddCmd.Flags().StringVar(&addCategory, "category", "", "category id for display grouping")
	packAddCmd.Flags().IntVar(&addQty, "qty", 1, "quantity to add")
	packAddCmd.Flags().StringVar(&addNote, "note", "", "note for the item")
	packAddCmd.Flags().Float64Var(&addWeight, "weight", 0, "per-piece weight in kg")
	packAddCmd.Flags().StringVar(&addThumbnail, "thumbnail", "", "thumbnail URL")
	packWeightCmd.Flags().BoolVar(&packWeightClear, "clear", false, "clear the item weight")
	packAllowanceCmd.Flags().BoolVar(&packAllowanceClear, "clear", false, "clear the allowance")
	templateSaveCmd.Flags().StringVar(&templateSaveSeason, "season", "", "season tag for the template")

	packCmd.AddCommand(packAddCmd, packRemoveCmd, packQtyCmd, packNoteCmd, packWeightCmd,
		packClearCmd, packBagCmd, packAllowanceCmd, packSeasonCmd, packListCmd, packExportCmd)
	templateCmd.AddCommand(templateSaveCmd, templateLoadCmd, templateDeleteCmd,
		templateListCmd, templateExportCmd, templateImportCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(templateCmd)
}
