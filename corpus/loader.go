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

// Package corpus fetches the configured annotated texts and turns
// them into segmented sources for the search engine. Any failure to
// obtain a text degrades to an empty source - a book being
// temporarily unavailable must not break searching in the others.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"litsearch/engine"
	"litsearch/merror"
	"litsearch/rdb"
	"litsearch/tokenizer"
)

const maxParallelFetches = 4

// TextCache stores fetched raw texts between requests. It is
// implemented by rdb.Adapter; tests plug in their own.
type TextCache interface {
	GetSourceText(ctx context.Context, url string) (string, error)
	StoreSourceText(ctx context.Context, url, text string) error
}

type Loader struct {
	conf   *SourcesSetup
	cache  TextCache
	client *http.Client
}

func (l *Loader) fetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for %s: %w", url, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", merror.TimeoutError{Msg: fmt.Sprintf("fetching %s timed out", url)}
		}
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", merror.InternalError{
			Msg: fmt.Sprintf("unexpected status %d when fetching %s", resp.StatusCode, url),
		}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response for %s: %w", url, err)
	}
	return string(body), nil
}

// loadText returns the raw text of a source, preferring the cache.
// On any failure it returns an empty string - the caller then sees
// a source with zero sentences.
func (l *Loader) loadText(ctx context.Context, src *SourceSetup) string {
	text, err := l.cache.GetSourceText(ctx, src.URL)
	if err == nil {
		return text

	} else if !errors.Is(err, rdb.ErrNotStored) {
		log.Warn().Err(err).Str("source", src.ID).Msg("text cache unavailable, fetching directly")
	}
	text, err = l.fetchText(ctx, src.URL)
	if err != nil {
		log.Warn().Err(err).Str("source", src.ID).Msg("failed to obtain source text")
		return ""
	}
	if err := l.cache.StoreSourceText(ctx, src.URL, text); err != nil {
		log.Warn().Err(err).Str("source", src.ID).Msg("failed to cache source text")
	}
	return text
}

// LoadAll provides the segmented corpus for a single search request.
// Sources are fetched concurrently but the returned corpus keeps the
// configured order. Unavailable sources come out with an empty
// sentence list rather than as an error.
func (l *Loader) LoadAll(ctx context.Context) (engine.Corpus, error) {
	ans := make(engine.Corpus, len(l.conf.Resources))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelFetches)
	for i, src := range l.conf.Resources {
		i, src := i, src
		g.Go(func() error {
			text := l.loadText(gCtx, src)
			ans[i] = engine.SourceSentences{
				Name:      src.FullName,
				Sentences: tokenizer.Segment(text),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ans, nil
}

func NewLoader(conf *SourcesSetup, cache TextCache) *Loader {
	return &Loader{
		conf:  conf,
		cache: cache,
		client: &http.Client{
			Timeout: time.Duration(conf.FetchTimeoutSecs) * time.Second,
		},
	}
}
