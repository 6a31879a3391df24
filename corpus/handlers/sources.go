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

	"litsearch/merror"
)

type sourceCompactInfo struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	URL      string `json:"url"`
}

type sourceListResponse struct {
	Sources []sourceCompactInfo `json:"sources"`
}

// SourceList provides the configured searchable sources.
func (a *Actions) SourceList(ctx *gin.Context) {
	sources := make([]sourceCompactInfo, len(a.conf.Resources))
	for i, res := range a.conf.Resources {
		sources[i] = sourceCompactInfo{
			ID:       res.ID,
			FullName: res.FullName,
			URL:      res.URL,
		}
	}
	uniresp.WriteJSONResponse(ctx.Writer, &sourceListResponse{Sources: sources})
}

// SourceInfo provides a single configured source by its ID.
func (a *Actions) SourceInfo(ctx *gin.Context) {
	src := a.conf.Get(ctx.Param("sourceId"))
	if src == nil {
		uniresp.RespondWithErrorJSON(
			ctx,
			merror.InputError{Msg: "source not found"},
			http.StatusNotFound,
		)
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		&sourceCompactInfo{ID: src.ID, FullName: src.FullName, URL: src.URL},
	)
}
