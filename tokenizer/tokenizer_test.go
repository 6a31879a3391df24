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

package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentBasic(t *testing.T) {
	ans := Segment("猫/n 爱/v 鱼/n。狗/n 追/v 猫/n！")
	assert.Equal(t, []string{"猫/n 爱/v 鱼/n", "狗/n 追/v 猫/n"}, ans)
}

func TestSegmentMixedTerminals(t *testing.T) {
	ans := Segment("a b？c d; e f！g h")
	assert.Equal(t, []string{"a b", "c d", "e f", "g h"}, ans)
}

func TestSegmentNewlines(t *testing.T) {
	ans := Segment("first/n sentence/n\n\nsecond/n one/n\nthird/n")
	assert.Equal(t, []string{"first/n sentence/n", "second/n one/n", "third/n"}, ans)
}

func TestSegmentCollapsesHorizontalWhitespace(t *testing.T) {
	ans := Segment("  猫/n \t 爱/v  鱼/n  。")
	assert.Equal(t, []string{"猫/n 爱/v 鱼/n"}, ans)
}

func TestSegmentEmptyInput(t *testing.T) {
	assert.Empty(t, Segment(""))
	assert.Empty(t, Segment("   \t \n  "))
}

func TestSegmentNoEmptyFragments(t *testing.T) {
	ans := Segment("。。！a/x？？")
	assert.Equal(t, []string{"a/x"}, ans)
}

func TestExtractWordsStripsTags(t *testing.T) {
	ans := ExtractWords("猫/n 爱/v 鱼/n")
	assert.Equal(t, []string{"猫", "爱", "鱼"}, ans)
}

func TestExtractWordsWithoutTags(t *testing.T) {
	ans := ExtractWords("猫 爱 鱼/n")
	assert.Equal(t, []string{"猫", "爱", "鱼"}, ans)
}

func TestExtractWordsFirstSeparatorWins(t *testing.T) {
	ans := ExtractWords("a/b/c")
	assert.Equal(t, []string{"a"}, ans)
}

func TestExtractWordsKeepsEmptyWord(t *testing.T) {
	ans := ExtractWords("猫/n /v 鱼/n")
	assert.Equal(t, []string{"猫", "", "鱼"}, ans)
}

func TestExtractWordsEmptySentence(t *testing.T) {
	assert.Empty(t, ExtractWords(""))
}
