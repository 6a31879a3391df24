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

package query

type operator int

const (
	opNone operator = iota
	opAnd
	opOr
)

// stackItem is either a boolean operand or a pending
// binary operator, never both.
type stackItem struct {
	isOp bool
	op   operator
	val  bool
}

// Evaluate decides whether a sentence's word set satisfies a query.
// Matching is case-insensitive. The function is total: malformed
// queries never produce an error. A NOT with nothing to negate
// pushes a plain true, and a query with no term at all yields false
// (the two fallbacks are asymmetric on purpose, they mirror the
// behavior search results were originally tuned against). The same
// fallback fires whenever NOT follows a binary operator - NOT acts
// on the already-pushed operand and never looks ahead, so
// `A AND NOT B` is effectively `A AND true AND B`, not a negation
// of B.
func Evaluate(q string, words WordSet) bool {
	tokens := Tokenize(q)
	items := make([]stackItem, 0, len(tokens))
	for _, tok := range tokens {
		switch tok.Type {
		case TokenLParen, TokenRParen:
			// no grouping support, parentheses are dropped
		case TokenNot:
			if n := len(items); n > 0 && !items[n-1].isOp {
				items[n-1].val = !items[n-1].val

			} else {
				items = append(items, stackItem{val: true})
			}
		case TokenAnd:
			items = append(items, stackItem{isOp: true, op: opAnd})
		case TokenOr:
			items = append(items, stackItem{isOp: true, op: opOr})
		case TokenTerm:
			items = append(items, stackItem{val: words.Contains(tok.Value)})
		}
	}

	// single left-to-right fold, AND and OR bind equally tight
	var (
		result  bool
		seeded  bool
		pending operator
	)
	for _, item := range items {
		if item.isOp {
			pending = item.op
			continue
		}
		if !seeded {
			result = item.val
			seeded = true
			continue
		}
		switch pending {
		case opAnd:
			result = result && item.val
		case opOr:
			result = result || item.val
		}
	}
	return seeded && result
}
