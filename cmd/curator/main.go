// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/curator"
	"github.com/poiesic/curator/ai"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/reindex"
	"github.com/poiesic/curator/storage"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "curator",
		Usage: "Content curation pipeline with human approval and knowledge indexing",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:     "db",
				Aliases:  []string{"d"},
				Usage:    "Path to BadgerDB database directory",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "policy",
				Usage: "Path to the curation policy YAML (built-in defaults when absent)",
			},
			&cli.StringFlag{
				Name:  "embedding-host",
				Usage: "Embedding service host URL",
				Value: "http://localhost:11434/v1",
			},
			&cli.StringFlag{
				Name:  "embedding-model",
				Usage: "Embedding model name",
				Value: "embeddinggemma",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Run a batch of content records through the curation gates",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to a JSON array of content records",
						Required: true,
					},
				},
			},
			{
				Name:   "pending",
				Usage:  "List items waiting for an approval decision",
				Action: pendingCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of items to list (0 for all)",
						Value: 20,
					},
				},
			},
			{
				Name:   "recommend",
				Usage:  "List the best pending items up to the daily quota",
				Action: recommendCommand,
			},
			{
				Name:      "approve",
				Usage:     "Approve a pending item and index it into the knowledge store",
				ArgsUsage: "<key>",
				Action:    approveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "by",
						Usage:    "Operator identifier recorded with the decision",
						Required: true,
					},
				},
			},
			{
				Name:      "reject",
				Usage:     "Reject a pending item",
				ArgsUsage: "<key>",
				Action:    rejectCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "by",
						Usage:    "Operator identifier recorded with the decision",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "reason",
						Usage:    "Why the item was rejected",
						Required: true,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Similarity search over indexed content chunks",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Maximum number of results",
						Value: 5,
					},
					&cli.Float64Flag{
						Name:  "min-score",
						Usage: "Minimum similarity score",
						Value: 0.3,
					},
				},
			},
			{
				Name:   "claims",
				Usage:  "Query extracted knowledge claims",
				Action: claimsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "subject", Usage: "Filter by claim subject"},
					&cli.StringFlag{Name: "predicate", Usage: "Filter by claim predicate"},
					&cli.StringFlag{Name: "object", Usage: "Filter by claim object"},
					&cli.StringFlag{Name: "domain", Usage: "Filter by source domain"},
					&cli.Float64Flag{
						Name:  "min-confidence",
						Usage: "Minimum claim confidence",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of claims to list (0 for all)",
						Value: 20,
					},
				},
			},
			{
				Name:   "sources",
				Usage:  "List per-domain indexing statistics",
				Action: sourcesCommand,
			},
			{
				Name:   "stats",
				Usage:  "Show queue and knowledge store statistics",
				Action: statsCommand,
			},
			{
				Name:   "reindex",
				Usage:  "Re-embed every stored chunk with the configured embedding model",
				Action: reindexCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of chunks to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N chunks",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// recordDoc is the JSON wire form of a content record as accepted by
// the ingest command.
type recordDoc struct {
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	Body         string    `json:"body"`
	Summary      string    `json:"summary,omitempty"`
	Author       string    `json:"author,omitempty"`
	PublishedAt  time.Time `json:"published_at,omitempty"`
	SourceName   string    `json:"source_name,omitempty"`
	SourceDomain string    `json:"source_domain"`
	ContentType  string    `json:"content_type,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	License      string    `json:"license,omitempty"`
}

func openCurator(c *cli.Context) (*curator.Curator, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	return curator.New(context.Background(), c.String("db"),
		curator.WithAIConfig(aiConfig),
		curator.WithPolicyPath(c.String("policy")))
}

func parseKey(c *cli.Context) (core.ID, error) {
	arg := c.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("item key argument is required")
	}
	key, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid item key %q: %w", arg, err)
	}
	return core.ID(key), nil
}

func ingestCommand(c *cli.Context) error {
	data, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read records file: %w", err)
	}

	var docs []recordDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return fmt.Errorf("failed to parse records file: %w", err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("records file contains no records")
	}

	records := make([]*core.ContentRecord, len(docs))
	for i, doc := range docs {
		records[i] = &core.ContentRecord{
			Title:        doc.Title,
			URL:          doc.URL,
			Body:         doc.Body,
			Summary:      doc.Summary,
			Author:       doc.Author,
			PublishedAt:  doc.PublishedAt,
			SourceName:   doc.SourceName,
			SourceDomain: doc.SourceDomain,
			ContentType:  doc.ContentType,
			Tags:         doc.Tags,
			License:      doc.License,
		}
	}

	cur, err := openCurator(c)
	if err != nil {
		return err
	}
	defer cur.Close()

	report, err := cur.Ingest(context.Background(), records)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	fmt.Printf("Processed %d records: %d queued, %d license-rejected, %d duplicates, %d invalid, %d failed\n",
		report.Processed, report.Queued, report.LicenseRejected,
		report.Duplicates, report.Invalid, report.Failed)
	for _, result := range report.Results {
		line := fmt.Sprintf("%d: [%s] %s", result.Key, result.Outcome, result.URL)
		if result.Reason != "" {
			line += " - " + result.Reason
		}
		fmt.Println(line)
	}
	for _, err := range report.Errors {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return nil
}

func pendingCommand(c *cli.Context) error {
	cur, err := openCurator(c)
	if err != nil {
		return err
	}
	defer cur.Close()

	items, err := cur.Pending(context.Background(), c.Int("limit"))
	if err != nil {
		return err
	}

	fmt.Printf("%d pending items\n", len(items))
	for _, item := range items {
		printItem(item)
	}
	return nil
}

func recommendCommand(c *cli.Context) error {
	cur, err := openCurator(c)
	if err != nil {
		return err
	}
	defer cur.Close()

	items, err := cur.TopRecommendations(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("%d recommended items\n", len(items))
	for _, item := range items {
		printItem(item)
	}
	return nil
}

func printItem(item *core.ApprovalItem) {
	fmt.Printf("%d: %q (%s)\n", item.Key, item.Record.Title, item.Record.SourceDomain)
	fmt.Printf("   quality=%.2f risk=%s novelty=%.2f\n",
		item.Quality.Overall, item.Risk.Level, item.Novelty.Score)
	fmt.Printf("   %s\n", item.Recommendation)
}

func approveCommand(c *cli.Context) error {
	key, err := parseKey(c)
	if err != nil {
		return err
	}

	cur, err := openCurator(c)
	if err != nil {
		return err
	}
	defer cur.Close()

	item, err := cur.Approve(context.Background(), key, c.String("by"))
	if err != nil {
		return fmt.Errorf("approve failed: %w", err)
	}
	fmt.Printf("%d: %s by %s\n", item.Key, item.Status, item.ApprovedBy)
	return nil
}

func rejectCommand(c *cli.Context) error {
	key, err := parseKey(c)
	if err != nil {
		return err
	}

	cur, err := openCurator(c)
	if err != nil {
		return err
	}
	defer cur.Close()

	item, err := cur.Reject(context.Background(), key, c.String("by"), c.String("reason"))
	if err != nil {
		return fmt.Errorf("reject failed: %w", err)
	}
	fmt.Printf("%d: %s by %s (%s)\n", item.Key, item.Status, item.ApprovedBy, item.RejectionReason)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("search query argument is required")
	}

	cur, err := openCurator(c)
	if err != nil {
		return err
	}
	defer cur.Close()

	results, err := cur.Search(context.Background(), query,
		c.Int("top-k"), float32(c.Float64("min-score")))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %q (%s) [%0.3f]\n", i, hit.Chunk.Title, hit.Chunk.URL, hit.Score)
		fmt.Printf("   %s\n", excerpt(hit.Chunk.Text, 160))
	}
	return nil
}

func claimsCommand(c *cli.Context) error {
	cur, err := openCurator(c)
	if err != nil {
		return err
	}
	defer cur.Close()

	claims, err := cur.QueryClaims(context.Background(), storage.ClaimFilter{
		Subject:       c.String("subject"),
		Predicate:     c.String("predicate"),
		Object:        c.String("object"),
		SourceDomain:  c.String("domain"),
		MinConfidence: c.Float64("min-confidence"),
		Limit:         c.Int("limit"),
	})
	if err != nil {
		return fmt.Errorf("claims query failed: %w", err)
	}

	fmt.Printf("%d claims\n", len(claims))
	for _, claim := range claims {
		fmt.Printf("(%s, %s, %s) conf=%.2f from %s\n",
			claim.Subject, claim.Predicate, excerpt(claim.Object, 80),
			claim.Confidence, claim.SourceDomain)
	}
	return nil
}

func sourcesCommand(c *cli.Context) error {
	cur, err := openCurator(c)
	if err != nil {
		return err
	}
	defer cur.Close()

	sources, err := cur.Sources(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("%d sources\n", len(sources))
	for _, source := range sources {
		fmt.Printf("%s: %d records, avg quality %.2f, last seen %s\n",
			source.Domain, source.Records, source.AvgQuality(),
			source.LastSeen.Format("2006-01-02"))
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	cur, err := openCurator(c)
	if err != nil {
		return err
	}
	defer cur.Close()

	stats, err := cur.Stats(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Queue: %d pending, %d approved, %d rejected (avg quality %.2f)\n",
		stats.Queue.Pending, stats.Queue.Approved, stats.Queue.Rejected,
		stats.Queue.AvgQuality)
	for level, count := range stats.Queue.RiskDistribution {
		fmt.Printf("  risk %s: %d\n", level, count)
	}
	fmt.Printf("Knowledge: %d chunks, %d claims, %d records in novelty index\n",
		stats.Chunks, stats.Claims, stats.IndexedRecords)
	return nil
}

func reindexCommand(c *cli.Context) error {
	config := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	cur, err := openCurator(c)
	if err != nil {
		return err
	}
	defer cur.Close()

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := cur.NewReindexer(config, os.Stderr).Run(context.Background()); err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}
	return nil
}

func excerpt(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
