// Copyright 2025 Arman Aubakirov
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
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/AubakirovArman/skai"
	"github.com/AubakirovArman/skai/ai"
	"github.com/AubakirovArman/skai/ai/bge"
	"github.com/AubakirovArman/skai/reembed"
	"github.com/AubakirovArman/skai/search"
	"github.com/AubakirovArman/skai/storage/postgres"
)

func main() {
	app := &cli.App{
		Name:  "skai",
		Usage: "Semantic search over corporate governance documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Run a semantic query over sections and subsections",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: append(connectionFlags(),
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of candidates to fetch per level",
						Value: search.DefaultTopK,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results to return",
						Value: search.DefaultLimit,
					},
					&cli.Float64Flag{
						Name:  "min-score",
						Usage: "Minimum cosine similarity for a result",
						Value: search.DefaultMinScore,
					},
					&cli.BoolFlag{
						Name:  "context",
						Usage: "Print an assembled context block instead of JSON",
					},
					&cli.IntFlag{
						Name:  "char-budget",
						Usage: "Character budget for the assembled context",
						Value: search.DefaultCharBudget,
					},
				),
			},
			{
				Name:   "reembed",
				Usage:  "Recompute embeddings for all sections and subsections",
				Action: reembedCommand,
				Flags: append(connectionFlags(),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of rows to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N rows",
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
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of batches embedded concurrently",
						Value: 2,
					},
				),
			},
			{
				Name:   "health",
				Usage:  "Check database and embedding service connectivity",
				Action: healthCommand,
				Flags:  connectionFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// connectionFlags are shared by every command that talks to the
// database and the embedding service.
func connectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "dsn",
			Usage:    "PostgreSQL connection string",
			EnvVars:  []string{"DB_DSN"},
			Required: true,
		},
		&cli.StringFlag{
			Name:    "embedding-host",
			Usage:   "Embedding service host URL",
			EnvVars: []string{"EMBEDDING_SERVICE_URL"},
			Value:   "http://localhost:8001",
		},
		&cli.StringFlag{
			Name:    "embedding-model",
			Usage:   "Embedding model name",
			EnvVars: []string{"EMBED_MODEL"},
			Value:   "BAAI/bge-m3",
		},
		&cli.StringFlag{
			Name:  "provider",
			Usage: "Embedding provider: bge or openai",
			Value: "bge",
		},
		&cli.StringFlag{
			Name:  "cache",
			Usage: "Directory for a persistent embedding cache (disabled when empty)",
		},
	}
}

// newEngine builds an Engine from the shared connection flags.
func newEngine(ctx context.Context, c *cli.Context) (*skai.Engine, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithModel(c.String("embedding-model")),
	)

	opts := []skai.EngineOption{skai.WithAIConfig(aiConfig)}
	switch c.String("provider") {
	case "bge":
	case "openai":
		opts = append(opts, skai.WithOpenAIEmbedder())
	default:
		return nil, fmt.Errorf("invalid provider %q: must be bge or openai", c.String("provider"))
	}
	if cachePath := c.String("cache"); cachePath != "" {
		opts = append(opts, skai.WithEmbeddingCache(cachePath))
	}

	engine, err := skai.NewEngine(ctx, c.String("dsn"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize engine: %w", err)
	}
	return engine, nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	engine, err := newEngine(ctx, c)
	if err != nil {
		return err
	}
	defer engine.Close()

	searchConfig := search.NewConfig(
		search.WithTopK(c.Int("top-k")),
		search.WithLimit(c.Int("limit")),
		search.WithMinScore(c.Float64("min-score")),
		search.WithCharBudget(c.Int("char-budget")),
	)

	searcher, err := engine.NewSearcher(search.WithConfig(searchConfig))
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	response, err := searcher.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if c.Bool("context") {
		fmt.Println(search.BuildContext(response.Results, searchConfig.CharBudget))
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	reembedConfig := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
		Workers:        c.Int("workers"),
	}

	// Validate config
	if reembedConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reembedConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reembedConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}
	if reembedConfig.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0")
	}

	engine, err := newEngine(ctx, c)
	if err != nil {
		return err
	}
	defer engine.Close()

	reembedder, err := engine.NewReembedder(reembedConfig, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to create reembedder: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(ctx); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}

	return nil
}

func healthCommand(c *cli.Context) error {
	ctx := context.Background()

	store, err := postgres.NewStore(ctx, c.String("dsn"))
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer store.Close()

	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	fmt.Println("database: ok")

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithModel(c.String("embedding-model")),
	)
	client, err := bge.NewClient(aiConfig)
	if err != nil {
		return fmt.Errorf("embedding service: %w", err)
	}
	if err := client.Health(ctx); err != nil {
		return fmt.Errorf("embedding service: %w", err)
	}
	fmt.Println("embedding service: ok")

	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
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
