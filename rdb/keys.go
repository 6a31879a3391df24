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

package rdb

import (
	"crypto/sha1"
	"encoding/hex"
)

const textKeyPrefix = "litsearchText:"

// textKey derives a fixed-size cache key from a source URL. URLs
// here contain non-ASCII book titles, hashing keeps the keyspace
// uniform and inspectable.
func textKey(url string) string {
	hashKey := sha1.Sum([]byte(url))
	return textKeyPrefix + hex.EncodeToString(hashKey[:])
}
