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

// Package engine runs boolean queries over segmented sources and
// collects matching sentences along with per-source counts. The
// whole corpus is re-scanned on every call; with a handful of books
// this is cheap enough that no index is kept around.
package engine

import (
	"litsearch/query"
	"litsearch/tokenizer"
)

// SourceSentences is one named source with its segmented sentences
// in original text order.
type SourceSentences struct {
	Name      string   `json:"name"`
	Sentences []string `json:"sentences"`
}

// Corpus is an ordered list of sources. The order is significant -
// results follow it and so does the presentation layer.
type Corpus []SourceSentences

// MatchRecord is a single sentence satisfying a query. Text keeps
// the original annotated form incl. POS tags.
type MatchRecord struct {
	Source  string `json:"source"`
	Ordinal int    `json:"ordinal"`
	Text    string `json:"text"`
}

// MatchTally maps a source name to its number of matches within
// one request. Sources with no match are present with a zero value.
type MatchTally map[string]int

func (mt MatchTally) Total() int {
	var ans int
	for _, v := range mt {
		ans += v
	}
	return ans
}

type SearchResult struct {
	Matches []MatchRecord `json:"matches"`
	Tally   MatchTally    `json:"tally"`
}

// Search evaluates q against every sentence of every source.
// Matches come out ordered by (source position within corpus,
// sentence ordinal) and the tally total always equals the number
// of matches. An all-empty corpus is not an error, it just yields
// zero matches everywhere; reporting that condition is up to
// the caller.
func Search(q string, corpus Corpus) SearchResult {
	ans := SearchResult{
		Matches: []MatchRecord{},
		Tally:   make(MatchTally, len(corpus)),
	}
	for _, src := range corpus {
		ans.Tally[src.Name] = 0
		for i, sentence := range src.Sentences {
			words := query.NewWordSet(tokenizer.ExtractWords(sentence))
			if query.Evaluate(q, words) {
				ans.Matches = append(ans.Matches, MatchRecord{
					Source:  src.Name,
					Ordinal: i + 1,
					Text:    sentence,
				})
				ans.Tally[src.Name]++
			}
		}
	}
	return ans
}
