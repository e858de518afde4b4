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

// Package docsift extracts layout-aware text from PDF document collections
// and ranks the sections most relevant to a persona and their job to be
// done. The top-level Engine wires together extraction, analysis, and
// result assembly; the subpackages are usable on their own.
package docsift

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docsift/docsift/analyze"
	"github.com/docsift/docsift/core"
	"github.com/docsift/docsift/extract"
	"github.com/docsift/docsift/output"
	"github.com/docsift/docsift/registry"
	"github.com/docsift/docsift/storage"
)

// Engine runs the full pipeline: batch PDF extraction, persona+job
// analysis, and result assembly. Create with New, release with Release.
type Engine struct {
	batch     *extract.Batch
	analyzer  *analyze.Analyzer
	assembler *output.Assembler
	logger    *slog.Logger

	poolSize int
	topK     int
	cache    storage.BlockRepository
}

// Option configures an Engine.
type Option func(*Engine) error

// WithPoolSize sets the number of concurrent extraction workers.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		e.poolSize = size
		return nil
	}
}

// WithTopK sets how many sections generalized analysis returns.
func WithTopK(k int) Option {
	return func(e *Engine) error {
		e.topK = k
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithBlockCache attaches a block repository used as an extraction cache,
// keyed by content hash. The engine does not close the repository.
func WithBlockCache(cache storage.BlockRepository) Option {
	return func(e *Engine) error {
		e.cache = cache
		return nil
	}
}

// New creates an engine over the embedded registry.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	reg, err := registry.Default()
	if err != nil {
		return nil, fmt.Errorf("loading registry: %w", err)
	}

	batchOpts := []extract.Option{extract.WithLogger(e.logger)}
	if e.poolSize > 0 {
		batchOpts = append(batchOpts, extract.WithPoolSize(e.poolSize))
	}
	if e.cache != nil {
		batchOpts = append(batchOpts, extract.WithCache(e.cache))
	}
	e.batch, err = extract.NewBatch(batchOpts...)
	if err != nil {
		return nil, err
	}

	analyzerOpts := []analyze.Option{analyze.WithLogger(e.logger)}
	if e.topK > 0 {
		analyzerOpts = append(analyzerOpts, analyze.WithTopK(e.topK))
	}
	e.analyzer, err = analyze.NewAnalyzer(reg, analyzerOpts...)
	if err != nil {
		e.batch.Release()
		return nil, err
	}

	e.assembler = output.NewAssembler()
	return e, nil
}

// Process runs the pipeline for one query. Filenames that cannot be opened
// are logged and excluded from extraction but still listed in the result
// metadata, which always carries the full input list.
func (e *Engine) Process(ctx context.Context, resolver extract.Resolver, filenames []string, personaRole, jobDescription string) (*core.Result, error) {
	docs := e.batch.ExtractAll(ctx, resolver, filenames)

	totalBlocks := 0
	for _, doc := range docs {
		totalBlocks += len(doc.Blocks)
	}
	e.logger.Info("extraction complete",
		"documents", len(docs), "requested", len(filenames), "blocks", totalBlocks)

	sections, subsections, err := e.analyzer.Analyze(docs, personaRole, jobDescription)
	if err != nil {
		return nil, err
	}

	return e.assembler.Assemble(filenames, personaRole, jobDescription, sections, subsections)
}

// Release frees the engine's worker pool. The engine must not be used
// afterwards.
func (e *Engine) Release() {
	e.batch.Release()
}
