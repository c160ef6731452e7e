package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	rollMethod   string
	unprepare    bool
	suggestLevel string
)

var setLevelCmd = &cobra.Command{
	Use:   "set-level [session-id] [level]",
	Short: "Set the character level and re-derive",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid level %q: %w", args[1], err)
		}

		ctx, cancel := withTimeout()
		defer cancel()

		var resp sheet
		if err := call(ctx, http.MethodPut, "/sessions/"+args[0]+"/level", map[string]int{"level": level}, &resp); err != nil {
			return fmt.Errorf("failed to set level: %w", err)
		}
		printSheet(&resp)
		return nil
	},
}

var rollAbilityScoresCmd = &cobra.Command{
	Use:   "roll-ability-scores [session-id]",
	Short: "Roll and apply all six ability scores",
	Long: `Roll ability scores for a session's character. The default method is 4d6
drop lowest; --method accepts 4d6_drop_lowest, 3d6 or 4d6_reroll_1s.

  Example: roll-ability-scores sheet_1a2b --method 3d6`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout()
		defer cancel()

		var resp struct {
			sheet
			Rolls []struct {
				Label   string `json:"label"`
				Dice    []int  `json:"dice"`
				Dropped []int  `json:"dropped"`
				Total   int    `json:"total"`
			} `json:"rolls"`
		}
		body := map[string]string{"method": rollMethod}
		if err := call(ctx, http.MethodPost, "/sessions/"+args[0]+"/abilities/roll", body, &resp); err != nil {
			return fmt.Errorf("failed to roll ability scores: %w", err)
		}

		for _, roll := range resp.Rolls {
			fmt.Printf("%-4s %2d  dice %v", roll.Label, roll.Total, roll.Dice)
			if len(roll.Dropped) > 0 {
				fmt.Printf("  dropped %v", roll.Dropped)
			}
			fmt.Println()
		}
		printSheet(&resp.sheet)
		return nil
	},
}

var addSpellCmd = &cobra.Command{
	Use:   "add-spell [session-id] [level] [name]",
	Short: "Add a known spell (level C for cantrips)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout()
		defer cancel()

		path := "/sessions/" + args[0] + "/spells/" + url.PathEscape(args[1])
		var resp sheet
		if err := call(ctx, http.MethodPost, path, map[string]string{"name": args[2]}, &resp); err != nil {
			return fmt.Errorf("failed to add spell: %w", err)
		}
		printSheet(&resp)
		return nil
	},
}

var prepareSpellCmd = &cobra.Command{
	Use:   "prepare-spell [session-id] [level] [name]",
	Short: "Prepare a known spell, or unprepare it with --unprepare",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout()
		defer cancel()

		path := "/sessions/" + args[0] + "/spells/" + url.PathEscape(args[1]) + "/" + url.PathEscape(args[2]) + "/prepared"
		var resp sheet
		if err := call(ctx, http.MethodPut, path, map[string]bool{"prepared": !unprepare}, &resp); err != nil {
			return fmt.Errorf("failed to update prepared spell: %w", err)
		}
		printSheet(&resp)
		return nil
	},
}

var suggestSpellsCmd = &cobra.Command{
	Use:   "suggest-spells [session-id] [query]",
	Short: "Suggest spell names for a partial name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout()
		defer cancel()

		query := url.Values{"q": {args[1]}}
		if suggestLevel != "" {
			query.Set("level", suggestLevel)
		}

		var resp struct {
			Suggestions []struct {
				Name   string `json:"name"`
				Level  *int   `json:"level"`
				Source string `json:"source"`
			} `json:"suggestions"`
		}
		path := "/sessions/" + args[0] + "/spells/suggest?" + query.Encode()
		if err := call(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return fmt.Errorf("failed to suggest spells: %w", err)
		}

		for _, s := range resp.Suggestions {
			level := "?"
			if s.Level != nil {
				level = strconv.Itoa(*s.Level)
			}
			fmt.Printf("%-30s level %s  (%s)\n", s.Name, level, s.Source)
		}
		return nil
	},
}

func init() {
	rollAbilityScoresCmd.Flags().StringVar(&rollMethod, "method", "", "Rolling method")
	prepareSpellCmd.Flags().BoolVar(&unprepare, "unprepare", false, "Unprepare instead of prepare")
	suggestSpellsCmd.Flags().StringVar(&suggestLevel, "level", "", "Only suggest spells of this level")
}
