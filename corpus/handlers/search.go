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

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"litsearch/engine"
	"litsearch/merror"
)

const noTextsNote = "no source texts available - please check the configured URLs"

type searchResponse struct {
	SearchID string               `json:"searchId"`
	Query    string               `json:"query"`
	Matches  []engine.MatchRecord `json:"matches"`
	Tally    engine.MatchTally    `json:"tally"`
	Total    int                  `json:"total"`
	Note     string               `json:"note,omitempty"`
}

// Search runs a boolean query (`q` URL argument) over all the
// configured sources. The response carries both the matching
// sentences (the results table) and per-source counts (the
// dashboard numbers); an in-band note is attached when no source
// provided any text, which the client should surface as a warning.
func (a *Actions) Search(ctx *gin.Context) {
	q := ctx.Query("q")
	if q == "" {
		uniresp.RespondWithErrorJSON(
			ctx,
			merror.InputError{Msg: "missing `q` argument"},
			http.StatusBadRequest,
		)
		return
	}
	searchID := uuid.New().String()
	logging.AddLogEvent(ctx, "searchId", searchID)
	logging.AddLogEvent(ctx, "query", q)

	corp, err := a.loader.LoadAll(ctx.Request.Context())
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusInternalServerError)
		return
	}
	var numSentences int
	for _, src := range corp {
		numSentences += len(src.Sentences)
	}

	result := engine.Search(q, corp)
	ans := searchResponse{
		SearchID: searchID,
		Query:    q,
		Matches:  result.Matches,
		Tally:    result.Tally,
		Total:    result.Tally.Total(),
	}
	if numSentences == 0 {
		ans.Note = noTextsNote
	}
	log.Debug().
		Str("searchId", searchID).
		Int("total", ans.Total).
		Msg("search finished")
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}
