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

package handlers

import (
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type flushCacheResponse struct {
	Flushed int `json:"flushed"`
}

// FlushCache drops all the cached source texts so the next search
// re-fetches them. Useful after the upstream files change before
// their TTL runs out.
func (a *Actions) FlushCache(ctx *gin.Context) {
	flushed, err := a.cache.FlushSourceTexts(ctx.Request.Context(), a.conf.URLs())
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusInternalServerError)
		return
	}
	log.Info().Int("flushed", flushed).Msg("flushed source text cache")
	uniresp.WriteJSONResponse(ctx.Writer, &flushCacheResponse{Flushed: flushed})
}
