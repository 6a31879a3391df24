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

// Package rdb provides a Redis-backed cache for fetched source
// texts. Entries are keyed by the source URL and expire after a
// configured TTL, so a restarted or long-running server does not
// hammer the upstream raw file hosting on every search request.
package rdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTextTTL = time.Hour
)

// ErrNotStored is returned when a requested text is not
// in the cache (never stored or already expired).
var ErrNotStored = errors.New("text not stored")

type Conf struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DB       int    `json:"db"`
	Password string `json:"password"`

	// TextTTLSecs defines how long a fetched source text stays
	// cached. Zero means the DefaultTextTTL.
	TextTTLSecs int `json:"textTtlSecs"`
}

func (conf *Conf) TextTTL() time.Duration {
	if conf.TextTTLSecs == 0 {
		return DefaultTextTTL
	}
	return time.Duration(conf.TextTTLSecs) * time.Second
}

type Adapter struct {
	ctx context.Context
	c   *redis.Client
	ttl time.Duration
}

func (a *Adapter) TestConnection(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(a.ctx, timeout)
	defer cancel()
	if err := a.c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}

// GetSourceText returns a cached raw text for the provided URL.
func (a *Adapter) GetSourceText(ctx context.Context, url string) (string, error) {
	cmd := a.c.Get(ctx, textKey(url))
	if errors.Is(cmd.Err(), redis.Nil) {
		return "", ErrNotStored

	} else if cmd.Err() != nil {
		return "", fmt.Errorf("failed to read cached text: %w", cmd.Err())
	}
	return cmd.Val(), nil
}

// StoreSourceText caches a fetched raw text under its URL with
// the configured TTL.
func (a *Adapter) StoreSourceText(ctx context.Context, url, text string) error {
	if err := a.c.Set(ctx, textKey(url), text, a.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store text: %w", err)
	}
	log.Debug().
		Str("url", url).
		Dur("ttl", a.ttl).
		Msg("cached source text")
	return nil
}

// FlushSourceTexts drops the cached texts of the provided URLs
// and returns the number of entries actually removed.
func (a *Adapter) FlushSourceTexts(ctx context.Context, urls []string) (int, error) {
	keys := make([]string, len(urls))
	for i, u := range urls {
		keys[i] = textKey(u)
	}
	cmd := a.c.Del(ctx, keys...)
	if cmd.Err() != nil {
		return 0, fmt.Errorf("failed to flush cached texts: %w", cmd.Err())
	}
	return int(cmd.Val()), nil
}

func NewAdapter(conf *Conf, ctx context.Context) *Adapter {
	return &Adapter{
		ctx: ctx,
		c: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		ttl: conf.TextTTL(),
	}
}
