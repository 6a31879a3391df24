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

package corpus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"litsearch/rdb"
)

type memCache struct {
	data map[string]string
}

func (mc *memCache) GetSourceText(ctx context.Context, url string) (string, error) {
	text, ok := mc.data[url]
	if !ok {
		return "", rdb.ErrNotStored
	}
	return text, nil
}

func (mc *memCache) StoreSourceText(ctx context.Context, url, text string) error {
	mc.data[url] = text
	return nil
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]string)}
}

func TestLoadAllFetchesAndSegments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("猫/n 爱/v 鱼/n。狗/n 追/v 猫/n。"))
	}))
	defer srv.Close()

	conf := &SourcesSetup{
		Resources: []*SourceSetup{
			{ID: "book1", FullName: "Book One", URL: srv.URL + "/book1.txt"},
		},
		FetchTimeoutSecs: 5,
	}
	loader := NewLoader(conf, newMemCache())
	corpus, err := loader.LoadAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, corpus, 1)
	assert.Equal(t, "Book One", corpus[0].Name)
	assert.Equal(t, []string{"猫/n 爱/v 鱼/n", "狗/n 追/v 猫/n"}, corpus[0].Sentences)
}

func TestLoadAllKeepsConfiguredOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("a/n。"))
	}))
	defer srv.Close()

	conf := &SourcesSetup{
		Resources: []*SourceSetup{
			{ID: "b2", FullName: "B2", URL: srv.URL + "/b2"},
			{ID: "b1", FullName: "B1", URL: srv.URL + "/b1"},
			{ID: "b3", FullName: "B3", URL: srv.URL + "/b3"},
		},
		FetchTimeoutSecs: 5,
	}
	loader := NewLoader(conf, newMemCache())
	corpus, err := loader.LoadAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "B2", corpus[0].Name)
	assert.Equal(t, "B1", corpus[1].Name)
	assert.Equal(t, "B3", corpus[2].Name)
}

func TestLoadAllDegradesOnHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	conf := &SourcesSetup{
		Resources: []*SourceSetup{
			{ID: "missing", FullName: "Missing", URL: srv.URL + "/missing"},
		},
		FetchTimeoutSecs: 5,
	}
	loader := NewLoader(conf, newMemCache())
	corpus, err := loader.LoadAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, corpus, 1)
	assert.Empty(t, corpus[0].Sentences)
}

func TestLoadAllPrefersCachedText(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		hits++
		w.Write([]byte("fresh/n。"))
	}))
	defer srv.Close()

	conf := &SourcesSetup{
		Resources: []*SourceSetup{
			{ID: "b", FullName: "B", URL: srv.URL + "/b"},
		},
		FetchTimeoutSecs: 5,
	}
	cache := newMemCache()
	cache.data[srv.URL+"/b"] = "cached/n。"
	loader := NewLoader(conf, cache)
	corpus, err := loader.LoadAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"cached/n"}, corpus[0].Sentences)
	assert.Zero(t, hits)
}

func TestLoadAllStoresFetchedText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("fresh/n。"))
	}))
	defer srv.Close()

	conf := &SourcesSetup{
		Resources: []*SourceSetup{
			{ID: "b", FullName: "B", URL: srv.URL + "/b"},
		},
		FetchTimeoutSecs: 5,
	}
	cache := newMemCache()
	loader := NewLoader(conf, cache)
	_, err := loader.LoadAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "fresh/n。", cache.data[srv.URL+"/b"])
}
