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

package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAndDefaults(t *testing.T) {
	conf := &SourcesSetup{
		Resources: []*SourceSetup{
			{ID: "b1", URL: "https://example.com/b1.txt"},
		},
	}
	err := conf.ValidateAndDefaults("sources")
	assert.NoError(t, err)
	assert.Equal(t, DfltFetchTimeoutSecs, conf.FetchTimeoutSecs)
	assert.Equal(t, "b1", conf.Resources[0].FullName)
}

func TestValidateRejectsEmptyResources(t *testing.T) {
	conf := &SourcesSetup{}
	assert.Error(t, conf.ValidateAndDefaults("sources"))
}

func TestValidateRejectsDuplicateID(t *testing.T) {
	conf := &SourcesSetup{
		Resources: []*SourceSetup{
			{ID: "b1", URL: "https://example.com/b1.txt"},
			{ID: "b1", URL: "https://example.com/other.txt"},
		},
	}
	assert.Error(t, conf.ValidateAndDefaults("sources"))
}

func TestValidateRejectsNonHTTPURL(t *testing.T) {
	conf := &SourcesSetup{
		Resources: []*SourceSetup{
			{ID: "b1", URL: "ftp://example.com/b1.txt"},
		},
	}
	assert.Error(t, conf.ValidateAndDefaults("sources"))
}

func TestGet(t *testing.T) {
	conf := &SourcesSetup{
		Resources: []*SourceSetup{
			{ID: "b1", URL: "https://example.com/b1.txt"},
		},
	}
	assert.Equal(t, conf.Resources[0], conf.Get("b1"))
	assert.Nil(t, conf.Get("b2"))
}
