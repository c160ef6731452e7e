// Package client provides test commands for the rpg-sheet HTTP API
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Connection flags
	serverURL string
	timeout   time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the rpg-sheet API",
	Long:  `Client commands let you exercise a running server by making real HTTP requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "rpg-sheet server URL")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Session commands
	ClientCmd.AddCommand(listModulesCmd)
	ClientCmd.AddCommand(listSessionsCmd)
	ClientCmd.AddCommand(newCharacterCmd)
	ClientCmd.AddCommand(loadCharacterCmd)
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(saveCharacterCmd)
	ClientCmd.AddCommand(closeSessionCmd)
	ClientCmd.AddCommand(noticesCmd)

	// Edit commands
	ClientCmd.AddCommand(setLevelCmd)
	ClientCmd.AddCommand(rollAbilityScoresCmd)
	ClientCmd.AddCommand(addSpellCmd)
	ClientCmd.AddCommand(prepareSpellCmd)
	ClientCmd.AddCommand(suggestSpellsCmd)
}

// apiError is the error body returned by the server
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// call sends a request to the API and decodes a JSON reply into out
func call(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	url := strings.TrimRight(serverURL, "/") + "/api/v1" + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Code != "" {
			return fmt.Errorf("%s (%d): %s", apiErr.Code, resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// withTimeout returns a context bounded by the --timeout flag
func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// printJSON writes v as indented JSON to stdout
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// sheet is the subset of the sheet reply the commands print
type sheet struct {
	SessionID string          `json:"session_id"`
	Version   uint64          `json:"version"`
	Document  json.RawMessage `json:"document"`
	Derived   json.RawMessage `json:"derived"`
	Notices   []string        `json:"notices"`
	Dropped   []struct {
		Level string `json:"level"`
		Name  string `json:"name"`
	} `json:"dropped"`
}

func printSheet(s *sheet) {
	fmt.Printf("Session: %s (version %d)\n", s.SessionID, s.Version)
	if len(s.Derived) == 0 || string(s.Derived) == "null" {
		fmt.Println("Derived: (absent)")
	}
	for _, d := range s.Dropped {
		fmt.Printf("Dropped prepared spell: %s (level %s)\n", d.Name, d.Level)
	}
	for _, n := range s.Notices {
		fmt.Printf("Notice: %s\n", n)
	}
}
