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
	"fmt"
	"net/url"
	"strings"
)

const (
	DfltFetchTimeoutSecs = 10
)

// SourceSetup configures a single searchable text - typically one
// book with POS annotation, hosted as a raw UTF-8 file.
type SourceSetup struct {
	ID string `json:"id"`

	// FullName is the display name shown to users,
	// e.g. `老舍《骆驼祥子》`.
	FullName string `json:"fullName"`

	// URL points to the raw annotated text.
	URL string `json:"url"`
}

// SourcesSetup defines the root configuration of searchable sources.
// The order of Resources is kept throughout the whole pipeline up to
// the search results.
type SourcesSetup struct {
	Resources []*SourceSetup `json:"resources"`

	FetchTimeoutSecs int `json:"fetchTimeoutSecs"`
}

func (ss *SourcesSetup) Get(sourceID string) *SourceSetup {
	for _, res := range ss.Resources {
		if res.ID == sourceID {
			return res
		}
	}
	return nil
}

func (ss *SourcesSetup) URLs() []string {
	ans := make([]string, len(ss.Resources))
	for i, res := range ss.Resources {
		ans[i] = res.URL
	}
	return ans
}

func (ss *SourcesSetup) ValidateAndDefaults(confContext string) error {
	if ss == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	if len(ss.Resources) == 0 {
		return fmt.Errorf("missing `%s.resources` (nothing to search in)", confContext)
	}
	seen := make(map[string]bool, len(ss.Resources))
	for i, res := range ss.Resources {
		if res.ID == "" {
			return fmt.Errorf("missing `%s.resources[%d].id`", confContext, i)
		}
		if seen[res.ID] {
			return fmt.Errorf("duplicate source id `%s` in `%s.resources`", res.ID, confContext)
		}
		seen[res.ID] = true
		if res.FullName == "" {
			res.FullName = res.ID
		}
		parsed, err := url.Parse(res.URL)
		if err != nil || !strings.HasPrefix(parsed.Scheme, "http") {
			return fmt.Errorf("invalid `%s.resources[%d].url`: %s", confContext, i, res.URL)
		}
	}
	if ss.FetchTimeoutSecs == 0 {
		ss.FetchTimeoutSecs = DfltFetchTimeoutSecs
	}
	return nil
}
