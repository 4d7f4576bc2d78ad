package main

import (
	"fmt"
	"strings"

	"packlist/internal/essentials"

	"github.com/spf13/cobra"
)

// essentials command
var essentialsCmd = &cobra.Command{
	Use:   "essentials",
	Short: "Manage travel essential rules",
}

func scopeSummary(rule essentials.TravelEssential) string {
	return fmt.Sprintf("seasons=%s trips=%s",
		strings.Join(rule.Seasons.Tags(), ","),
		strings.Join(rule.TripTypes.Tags(), ","))
}

var essentialsListCustom bool

var essentialsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List essential rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListEssentials")
		if err != nil {
			return err
		}
		defer a.Close()

		rules := a.Essentials.Essentials()
		if essentialsListCustom {
			rules = a.Essentials.CustomEssentials()
		}
		for _, rule := range rules {
			marker := "optional"
			if rule.IsRequired {
				marker = "required"
			}
			fmt.Printf("%s  %-20s %s/%s  %s\n", rule.ID, rule.Name, marker, rule.Priority, scopeSummary(rule))
		}
		return nil
	},
}

var (
	essentialDescription  string
	essentialCategory     string
	essentialRequired     bool
	essentialPriority     string
	essentialSeasons      []string
	essentialTrips        []string
	essentialAlternatives []string
)

var essentialsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom essential rule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddEssential")
		if err != nil {
			return err
		}
		defer a.Close()

		rule := a.Essentials.AddEssential(essentials.TravelEssential{
			Name:         args[0],
			Description:  essentialDescription,
			CategoryID:   essentialCategory,
			IsRequired:   essentialRequired,
			Seasons:      essentials.SeasonScopeFromTags(essentialSeasons),
			TripTypes:    essentials.TripScopeFromTags(essentialTrips),
			Priority:     essentials.Priority(essentialPriority),
			Alternatives: essentialAlternatives,
		})
		fmt.Printf("Added essential %s (%s)\n", rule.Name, rule.ID)
		return nil
	},
}

var essentialsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an essential rule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("UpdateEssential")
		if err != nil {
			return err
		}
		defer a.Close()

		var update essentials.EssentialUpdate
		flags := cmd.Flags()
		if flags.Changed("name") {
			name, _ := flags.GetString("name")
			update.Name = &name
		}
		if flags.Changed("description") {
			update.Description = &essentialDescription
		}
		if flags.Changed("category") {
			update.CategoryID = &essentialCategory
		}
		if flags.Changed("required") {
			update.IsRequired = &essentialRequired
		}
		if flags.Changed("priority") {
			p := essentials.Priority(essentialPriority)
			update.Priority = &p
		}
		if flags.Changed("seasons") {
			scope := essentials.SeasonScopeFromTags(essentialSeasons)
			update.Seasons = &scope
		}
		if flags.Changed("trips") {
			scope := essentials.TripScopeFromTags(essentialTrips)
			update.TripTypes = &scope
		}
		if flags.Changed("alternatives") {
			update.Alternatives = &essentialAlternatives
		}

		a.Essentials.UpdateEssential(args[0], update)
		return nil
	},
}

var essentialsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a custom essential rule (built-ins are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemoveEssential")
		if err != nil {
			return err
		}
		defer a.Close()

		a.Essentials.RemoveEssential(args[0])
		return nil
	},
}

// check command
var (
	checkSeason string
	checkTrip   string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report essentials missing from the current pack",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("CheckPack")
		if err != nil {
			return err
		}
		defer a.Close()

		missing := a.CheckPack(essentials.Season(checkSeason), essentials.TripType(checkTrip))
		if len(missing) == 0 {
			fmt.Println("All essentials covered")
			return nil
		}
		for _, m := range missing {
			line := fmt.Sprintf("%-20s %s", m.Essential.Name, m.Reason)
			if m.HasAlternative {
				line += " (alternative packed)"
			}
			fmt.Println(line)
		}
		return nil
	},
}

// essentials template command
var essentialsTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage essentials templates",
}

var essentialsTemplateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List essentials templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListEssentialsTemplates")
		if err != nil {
			return err
		}
		defer a.Close()

		for _, tpl := range a.Essentials.Templates() {
			line := fmt.Sprintf("%s  %s (%d rules)", tpl.ID, tpl.Name, len(tpl.Essentials))
			if tpl.IsDefault {
				line += "  [built-in]"
			}
			fmt.Println(line)
		}
		return nil
	},
}

var essentialsTemplateSaveDescription string

var essentialsTemplateSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Bundle the custom essential rules into a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddEssentialsTemplate")
		if err != nil {
			return err
		}
		defer a.Close()

		rules := a.Essentials.CustomEssentials()
		tpl := a.Essentials.AddTemplate(args[0], essentialsTemplateSaveDescription, rules)
		fmt.Printf("Saved template %s (%s)\n", tpl.Name, tpl.ID)
		return nil
	},
}

var essentialsTemplateDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an essentials template (built-ins are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemoveEssentialsTemplate")
		if err != nil {
			return err
		}
		defer a.Close()

		a.Essentials.RemoveTemplate(args[0])
		return nil
	},
}

var essentialsTemplateExportCmd = &cobra.Command{
	Use:   "export <id> <file>",
	Short: "Write an essentials template to a YAML file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ExportEssentialsTemplate")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.ExportEssentialsTemplate(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", args[1])
		return nil
	},
}

var essentialsTemplateImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add an essentials template from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ImportEssentialsTemplate")
		if err != nil {
			return err
		}
		defer a.Close()

		tpl, err := a.ImportEssentialsTemplate(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Imported template %s (%s)\n", tpl.Name, tpl.ID)
		return nil
	},
}

// search command
var searchEssentials bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search pack items or essential rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Search")
		if err != nil {
			return err
		}
		defer a.Close()

		if searchEssentials {
			for _, rule := range a.SearchEssentials(args[0]) {
				fmt.Printf("%s  %s\n", rule.ID, rule.Name)
			}
			return nil
		}
		for _, item := range a.SearchItems(args[0]) {
			fmt.Printf("%s  %s × %d\n", item.ID, item.Name, item.Quantity)
		}
		return nil
	},
}

func init() {
	essentialsAddCmd.Flags().StringVar(&essentialDescription, "description", "", "rule description")
	essentialsAddCmd.Flags().StringVar(&essentialCategory, "category", "", "category id that satisfies the rule")
	essentialsAddCmd.Flags().BoolVar(&essentialRequired, "required", false, "mark the rule as required")
	essentialsAddCmd.Flags().StringVar(&essentialPriority, "priority", "medium", "priority: high, medium or low")
	essentialsAddCmd.Flags().StringSliceVar(&essentialSeasons, "seasons", []string{"all"}, "seasons the rule applies to (or all)")
	essentialsAddCmd.Flags().StringSliceVar(&essentialTrips, "trips", []string{"all"}, "trip types the rule applies to (or all)")
	essentialsAddCmd.Flags().StringSliceVar(&essentialAlternatives, "alternatives", nil, "item names that satisfy the same need")

	essentialsUpdateCmd.Flags().String("name", "", "new rule name")
	essentialsUpdateCmd.Flags().StringVar(&essentialDescription, "description", "", "new description")
	essentialsUpdateCmd.Flags().StringVar(&essentialCategory, "category", "", "new category id")
	essentialsUpdateCmd.Flags().BoolVar(&essentialRequired, "required", false, "mark the rule as required")
	essentialsUpdateCmd.Flags().StringVar(&essentialPriority, "priority", "", "new priority")
	essentialsUpdateCmd.Flags().StringSliceVar(&essentialSeasons, "seasons", nil, "new season scope")
	essentialsUpdateCmd.Flags().StringSliceVar(&essentialTrips, "trips", nil, "new trip scope")
	essentialsUpdateCmd.Flags().StringSliceVar(&essentialAlternatives, "alternatives", nil, "new alternatives")

	essentialsListCmd.Flags().BoolVar(&essentialsListCustom, "custom", false, "only user-defined rules")

	checkCmd.Flags().StringVar(&checkSeason, "season", "", "season to check against")
	checkCmd.Flags().StringVar(&checkTrip, "trip", "", "trip type to check against")

	essentialsTemplateSaveCmd.Flags().StringVar(&essentialsTemplateSaveDescription, "description", "", "template description")

	searchCmd.Flags().BoolVar(&searchEssentials, "essentials", false, "search essential rules instead of pack items")

	essentialsTemplateCmd.AddCommand(essentialsTemplateListCmd, essentialsTemplateSaveCmd,
		essentialsTemplateDeleteCmd, essentialsTemplateExportCmd, essentialsTemplateImportCmd)
	essentialsCmd.AddCommand(essentialsListCmd, essentialsAddCmd, essentialsUpdateCmd,
		essentialsRemoveCmd, essentialsTemplateCmd)
	rootCmd.AddCommand(essentialsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(searchCmd)
}
