package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var (
	moduleID      string
	characterName string
	outputPath    string
	verboseSheet  bool
)

var listModulesCmd = &cobra.Command{
	Use:   "list-modules",
	Short: "List rule modules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout()
		defer cancel()

		var resp struct {
			Modules []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"modules"`
			Default string `json:"default"`
		}
		if err := call(ctx, http.MethodGet, "/modules", nil, &resp); err != nil {
			return fmt.Errorf("failed to list modules: %w", err)
		}

		for _, m := range resp.Modules {
			marker := " "
			if m.ID == resp.Default {
				marker = "*"
			}
			fmt.Printf("%s %-20s %s\n", marker, m.ID, m.Name)
		}
		return nil
	},
}

var listSessionsCmd = &cobra.Command{
	Use:   "list-sessions",
	Short: "List open sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout()
		defer cancel()

		var resp struct {
			SessionIDs []string `json:"session_ids"`
		}
		if err := call(ctx, http.MethodGet, "/sessions", nil, &resp); err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		for _, id := range resp.SessionIDs {
			fmt.Println(id)
		}
		return nil
	},
}

var newCharacterCmd = &cobra.Command{
	Use:   "new-character",
	Short: "Create a character in a new session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout()
		defer cancel()

		body := map[string]string{"module_id": moduleID, "name": characterName}
		var resp sheet
		if err := call(ctx, http.MethodPost, "/sessions", body, &resp); err != nil {
			return fmt.Errorf("failed to create character: %w", err)
		}
		printSheet(&resp)
		return nil
	},
}

var loadCharacterCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Open a character file in a new session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		ctx, cancel := withTimeout()
		defer cancel()

		var resp sheet
		if err := call(ctx, http.MethodPost, "/sessions/load", data, &resp); err != nil {
			return fmt.Errorf("failed to load character: %w", err)
		}
		printSheet(&resp)
		return nil
	},
}

var getCharacterCmd = &cobra.Command{
	Use:   "get [session-id]",
	Short: "Show a session's character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout()
		defer cancel()

		var resp sheet
		if err := call(ctx, http.MethodGet, "/sessions/"+args[0], nil, &resp); err != nil {
			return fmt.Errorf("failed to get character: %w", err)
		}
		if verboseSheet {
			return printJSON(resp)
		}
		printSheet(&resp)
		return nil
	},
}

var saveCharacterCmd = &cobra.Command{
	Use:   "save [session-id]",
	Short: "Validate and write a session's character to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout()
		defer cancel()

		var resp struct {
			Filename string          `json:"filename"`
			Document json.RawMessage `json:"document"`
			Issues   []string        `json:"issues"`
		}
		if err := call(ctx, http.MethodGet, "/sessions/"+args[0]+"/save", nil, &resp); err != nil {
			return fmt.Errorf("failed to save character: %w", err)
		}

		path := outputPath
		if path == "" {
			path = resp.Filename
		}
		if err := os.WriteFile(path, resp.Document, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("Wrote %s\n", path)
		for _, issue := range resp.Issues {
			fmt.Printf("Warning: %s\n", issue)
		}
		return nil
	},
}

var closeSessionCmd = &cobra.Command{
	Use:   "close [session-id]",
	Short: "Close a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout()
		defer cancel()

		if err := call(ctx, http.MethodDelete, "/sessions/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to close session: %w", err)
		}
		fmt.Printf("Closed %s\n", args[0])
		return nil
	},
}

var noticesCmd = &cobra.Command{
	Use:   "notices [session-id]",
	Short: "Drain a session's pending notices",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout()
		defer cancel()

		var resp struct {
			Notices []struct {
				Message string `json:"message"`
				At      string `json:"at"`
			} `json:"notices"`
		}
		if err := call(ctx, http.MethodGet, "/sessions/"+args[0]+"/notices", nil, &resp); err != nil {
			return fmt.Errorf("failed to get notices: %w", err)
		}
		for _, n := range resp.Notices {
			fmt.Printf("%s  %s\n", n.At, n.Message)
		}
		return nil
	},
}

func init() {
	newCharacterCmd.Flags().StringVar(&moduleID, "module", "", "Rule module (defaults to the server's choice)")
	newCharacterCmd.Flags().StringVar(&characterName, "name", "", "Character name")
	saveCharacterCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (defaults to the suggested name)")
	getCharacterCmd.Flags().BoolVarP(&verboseSheet, "verbose", "v", false, "Print the full reply")
}
