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

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchEndToEnd(t *testing.T) {
	corpus := Corpus{
		{Name: "Book", Sentences: []string{"猫/n 爱/v 鱼/n", "狗/n 追/v 猫/n"}},
	}
	ans := Search("猫 AND 爱", corpus)
	assert.Equal(
		t,
		[]MatchRecord{{Source: "Book", Ordinal: 1, Text: "猫/n 爱/v 鱼/n"}},
		ans.Matches,
	)
	assert.Equal(t, MatchTally{"Book": 1}, ans.Tally)
}

func TestSearchEmptyCorpus(t *testing.T) {
	ans := Search("anything", Corpus{{Name: "X", Sentences: []string{}}})
	assert.Empty(t, ans.Matches)
	assert.Equal(t, MatchTally{"X": 0}, ans.Tally)
}

func TestSearchOrdering(t *testing.T) {
	corpus := Corpus{
		{Name: "B2", Sentences: []string{"猫/n", "鱼/n", "猫/n 鱼/n"}},
		{Name: "B1", Sentences: []string{"猫/n 狗/n"}},
	}
	ans := Search("猫", corpus)
	assert.Equal(
		t,
		[]MatchRecord{
			{Source: "B2", Ordinal: 1, Text: "猫/n"},
			{Source: "B2", Ordinal: 3, Text: "猫/n 鱼/n"},
			{Source: "B1", Ordinal: 1, Text: "猫/n 狗/n"},
		},
		ans.Matches,
	)
}

func TestSearchTallySumMatchesLen(t *testing.T) {
	corpus := Corpus{
		{Name: "A", Sentences: []string{"猫/n 爱/v", "狗/n", "猫/n"}},
		{Name: "B", Sentences: []string{"鱼/n 猫/n"}},
	}
	for _, q := range []string{"猫", "猫 OR 狗", "猫 AND NOT 鱼", "missing"} {
		ans := Search(q, corpus)
		assert.Equal(t, len(ans.Matches), ans.Tally.Total(), "query: %s", q)
	}
}

func TestSearchIdempotent(t *testing.T) {
	corpus := Corpus{
		{Name: "A", Sentences: []string{"猫/n 爱/v 鱼/n", "狗/n"}},
	}
	first := Search("猫 OR 狗", corpus)
	second := Search("猫 OR 狗", corpus)
	assert.Equal(t, first, second)
}

func TestSearchKeepsAnnotatedText(t *testing.T) {
	corpus := Corpus{{Name: "A", Sentences: []string{"女人/n 爱/v"}}}
	ans := Search("女人 AND 爱", corpus)
	assert.Equal(t, "女人/n 爱/v", ans.Matches[0].Text)
}

func TestSearchNoSources(t *testing.T) {
	ans := Search("猫", Corpus{})
	assert.Empty(t, ans.Matches)
	assert.Zero(t, ans.Tally.Total())
}
