// Command fix-corrupted-sessions scans stored sheet sessions and removes
// records the server can no longer restore.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

const (
	sessionPattern = "sheet_session:*"
	indexKey       = "sheet_session:index"
	keyPrefix      = "sheet_session:"
)

// storedSession mirrors the persisted session record
type storedSession struct {
	ID       string          `json:"id"`
	Document json.RawMessage `json:"document"`
	Derived  json.RawMessage `json:"derived"`
	Version  uint64          `json:"version"`
}

// check reports why a record cannot be restored, or "" when it is fine
func check(key, data string) string {
	var rec storedSession
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return fmt.Sprintf("corrupted JSON: %v", err)
	}
	if rec.ID != strings.TrimPrefix(key, keyPrefix) {
		return fmt.Sprintf("id %q does not match key", rec.ID)
	}
	if len(rec.Document) > 0 && string(rec.Document) != "null" {
		var doc entities.Document
		if err := json.Unmarshal(rec.Document, &doc); err != nil {
			return fmt.Sprintf("document does not decode: %v", err)
		}
	}
	if len(rec.Derived) > 0 && string(rec.Derived) != "null" {
		if _, err := entities.ParseSnapshot(rec.Derived); err != nil {
			return fmt.Sprintf("derived snapshot does not decode: %v", err)
		}
	}
	return ""
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted sessions...")

	iter := client.Scan(ctx, 0, sessionPattern, 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		if key == indexKey {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		if reason := check(key, data); reason != "" {
			fmt.Printf("x %s: %s\n", key, reason)
			corruptedKeys = append(corruptedKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d sessions, found %d corrupted\n", checkedCount, len(corruptedKeys))
	if len(corruptedKeys) == 0 {
		return
	}

	fmt.Print("\nDelete these sessions? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)
	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		pipe := client.TxPipeline()
		pipe.Del(ctx, key)
		pipe.SRem(ctx, indexKey, strings.TrimPrefix(key, keyPrefix))
		if _, err := pipe.Exec(ctx); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
			continue
		}
		fmt.Printf("Deleted %s\n", key)
	}
}
