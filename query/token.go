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

// Package query implements the boolean query language used for
// sentence matching: literal terms combined with AND, OR and the
// unary NOT, applied strictly left to right. There is no operator
// precedence and parentheses, while accepted by the lexer, carry
// no grouping effect.
package query

import "strings"

type TokenType int

const (
	TokenTerm TokenType = iota
	TokenAnd
	TokenOr
	TokenNot
	TokenLParen
	TokenRParen
)

// Token is one unit of a lexed query. Value is filled
// for TokenTerm only.
type Token struct {
	Type  TokenType
	Value string
}

// Tokenize lexes a raw user query into a token stream. Operator
// keywords are matched case-insensitively; term values come out
// uppercased and are re-lowercased at evaluation time.
func Tokenize(q string) []Token {
	q = strings.ToUpper(q)
	q = strings.ReplaceAll(q, "(", " ( ")
	q = strings.ReplaceAll(q, ")", " ) ")
	fields := strings.Fields(q)
	ans := make([]Token, 0, len(fields))
	for _, f := range fields {
		switch f {
		case "AND":
			ans = append(ans, Token{Type: TokenAnd})
		case "OR":
			ans = append(ans, Token{Type: TokenOr})
		case "NOT":
			ans = append(ans, Token{Type: TokenNot})
		case "(":
			ans = append(ans, Token{Type: TokenLParen})
		case ")":
			ans = append(ans, Token{Type: TokenRParen})
		default:
			ans = append(ans, Token{Type: TokenTerm, Value: f})
		}
	}
	return ans
}

// WordSet is the matching universe of a single sentence. All the
// words are stored lowercased.
type WordSet map[string]bool

func NewWordSet(words []string) WordSet {
	ans := make(WordSet, len(words))
	for _, w := range words {
		ans[strings.ToLower(w)] = true
	}
	return ans
}

func (ws WordSet) Contains(w string) bool {
	return ws[strings.ToLower(w)]
}
