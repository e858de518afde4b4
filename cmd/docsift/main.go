// Copyright 2025 Docsift Authors
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
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/docsift/docsift"
	"github.com/docsift/docsift/core"
	"github.com/docsift/docsift/extract"
	"github.com/docsift/docsift/output"
	"github.com/docsift/docsift/storage"
	"github.com/docsift/docsift/storage/badger"
)

func main() {
	app := &cli.App{
		Name:  "docsift",
		Usage: "Persona-driven section extraction from PDF collections",
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
				Name:   "run",
				Usage:  "Analyze one document collection",
				Action: runCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to the challenge input JSON file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "pdf-dir",
						Usage: "Directory holding the collection's PDF files (defaults to PDFs/ next to the input file)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path to write the result JSON (defaults to stdout)",
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of sections generalized analysis returns",
						Value: 5,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent extraction workers (0 = half the CPUs)",
					},
					&cli.StringFlag{
						Name:  "cache-db",
						Usage: "Path to a BadgerDB directory used as an extraction cache",
					},
				},
			},
			{
				Name:   "batch",
				Usage:  "Analyze every collection directory under a root",
				Action: batchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "root",
						Aliases:  []string{"r"},
						Usage:    "Directory whose subdirectories each hold an input JSON and a PDFs/ directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "input-name",
						Usage: "Input file name inside each collection directory",
						Value: "challenge1b_input.json",
					},
					&cli.StringFlag{
						Name:  "output-name",
						Usage: "Output file name written inside each collection directory",
						Value: "challenge1b_output.json",
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of sections generalized analysis returns",
						Value: 5,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent extraction workers (0 = half the CPUs)",
					},
					&cli.StringFlag{
						Name:  "cache-db",
						Usage: "Path to a BadgerDB directory used as an extraction cache",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCommand(c *cli.Context) error {
	inputPath := c.String("input")
	spec, err := loadInput(inputPath)
	if err != nil {
		return err
	}

	pdfDir := c.String("pdf-dir")
	if pdfDir == "" {
		pdfDir = filepath.Join(filepath.Dir(inputPath), "PDFs")
	}

	engine, cache, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Release()
	if cache != nil {
		defer cache.Close()
	}

	result, err := engine.Process(context.Background(), extract.DirResolver(pdfDir),
		spec.Filenames(), spec.Persona.Role, spec.JobToBeDone.Task)
	if err != nil {
		return fmt.Errorf("processing collection: %w", err)
	}

	return writeResult(c.String("output"), result)
}

func batchCommand(c *cli.Context) error {
	root := c.String("root")
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("reading collection root: %w", err)
	}

	engine, cache, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Release()
	if cache != nil {
		defer cache.Close()
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	sort.Strings(dirs)

	failures := 0
	for _, dir := range dirs {
		collectionDir := filepath.Join(root, dir)
		inputPath := filepath.Join(collectionDir, c.String("input-name"))
		if _, err := os.Stat(inputPath); err != nil {
			slog.Debug("skipping directory without input file", "dir", collectionDir)
			continue
		}

		if err := processCollection(engine, collectionDir, inputPath, c.String("output-name")); err != nil {
			slog.Error("collection failed", "dir", collectionDir, "err", err)
			failures++
			continue
		}
		slog.Info("collection complete", "dir", collectionDir)
	}

	if failures > 0 {
		return fmt.Errorf("%d collection(s) failed", failures)
	}
	return nil
}

func processCollection(engine *docsift.Engine, collectionDir, inputPath, outputName string) error {
	spec, err := loadInput(inputPath)
	if err != nil {
		return err
	}

	result, err := engine.Process(context.Background(),
		extract.DirResolver(filepath.Join(collectionDir, "PDFs")),
		spec.Filenames(), spec.Persona.Role, spec.JobToBeDone.Task)
	if err != nil {
		return err
	}

	return writeResult(filepath.Join(collectionDir, outputName), result)
}

func newEngine(c *cli.Context) (*docsift.Engine, storage.BlockRepository, error) {
	opts := []docsift.Option{docsift.WithTopK(c.Int("top-k"))}
	if workers := c.Int("workers"); workers > 0 {
		opts = append(opts, docsift.WithPoolSize(workers))
	}

	var cache storage.BlockRepository
	if dbPath := c.String("cache-db"); dbPath != "" {
		backend, err := badger.OpenBackend(dbPath, false)
		if err != nil {
			return nil, nil, fmt.Errorf("opening cache database: %w", err)
		}
		repo, err := badger.NewBlockRepository(backend)
		if err != nil {
			backend.Close()
			return nil, nil, fmt.Errorf("creating block repository: %w", err)
		}
		cache = &closingCache{BlockRepository: repo, backend: backend}
		opts = append(opts, docsift.WithBlockCache(cache))
	}

	engine, err := docsift.New(opts...)
	if err != nil {
		if cache != nil {
			cache.Close()
		}
		return nil, nil, err
	}
	return engine, cache, nil
}

// closingCache ties the backend's lifetime to the repository handed to the
// engine.
type closingCache struct {
	storage.BlockRepository
	backend *badger.Backend
}

func (c *closingCache) Close() error {
	return c.backend.Close()
}

func writeResult(path string, result *core.Result) error {
	if path == "" {
		return output.Encode(os.Stdout, result)
	}

	data, err := output.Marshal(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
