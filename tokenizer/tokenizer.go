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

// Package tokenizer turns raw POS-annotated text into sentences
// and sentences into bare words. The expected input format is
// whitespace-separated tokens of the form `word` or `word/tag`,
// with sentences delimited by Chinese or Latin sentence-terminal
// punctuation (or newlines).
package tokenizer

import (
	"regexp"
	"strings"
)

var (
	horizSpace   = regexp.MustCompile(`[ \t]+`)
	sentenceTerm = regexp.MustCompile(`[。！？!?；;]\s*|\n+`)
)

// Segment splits a raw text blob into sentences. Runs of horizontal
// whitespace are collapsed first so that segmentation does not depend
// on the source file's indentation. Empty fragments (e.g. produced by
// a terminal punctuation at the very end of the text) are dropped.
// The returned sentences keep their original order as downstream
// numbering relies on it.
func Segment(rawText string) []string {
	normalized := horizSpace.ReplaceAllString(strings.TrimSpace(rawText), " ")
	fragments := sentenceTerm.Split(normalized, -1)
	ans := make([]string, 0, len(fragments))
	for _, frag := range fragments {
		frag = strings.TrimSpace(frag)
		if frag != "" {
			ans = append(ans, frag)
		}
	}
	return ans
}

// ExtractWords splits a sentence into tokens and strips the POS tag
// from each `word/tag` token. Tokens without a tag separator are kept
// verbatim. A token like `/v` produces an empty word; we keep it and
// leave any filtering to the caller.
func ExtractWords(sentence string) []string {
	tokens := strings.Fields(sentence)
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		if idx := strings.IndexByte(tok, '/'); idx > -1 {
			words[i] = tok[:idx]

		} else {
			words[i] = tok
		}
	}
	return words
}
