// Copyright 2025 Dittonal
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package handlers exposes the search pipeline over HTTP. It is
// presentation glue only - all the matching logic lives in the
// engine, query and tokenizer packages.
package handlers

import (
	"context"

	"litsearch/corpus"
	"litsearch/engine"
)

type corpusLoader interface {
	LoadAll(ctx context.Context) (engine.Corpus, error)
}

type textFlusher interface {
	FlushSourceTexts(ctx context.Context, urls []string) (int, error)
}

type Actions struct {
	conf   *corpus.SourcesSetup
	loader corpusLoader
	cache  textFlusher
}

func NewActions(
	conf *corpus.SourcesSetup,
	loader corpusLoader,
	cache textFlusher,
) *Actions {
	return &Actions{
		conf:   conf,
		loader: loader,
		cache:  cache,
	}
}
