// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package healthcheck

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"code.gitea.io/openid-selector/modules/json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	handler := NewCheck("selector", map[string]Checker{
		"providers:registry": func() error { return nil },
	})
	resp := httptest.NewRecorder()
	handler(resp, httptest.NewRequest(http.MethodGet, "/api/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.Code)

	var rsp response
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &rsp))
	assert.Equal(t, pass, rsp.Status)
	assert.Equal(t, "selector", rsp.Description)
	assert.Equal(t, pass, rsp.Checks["providers:registry"][0].Status)
}

func TestCheckFail(t *testing.T) {
	handler := NewCheck("selector", map[string]Checker{
		"providers:registry": func() error { return nil },
		"templates":          func() error { return errors.New("missing") },
	})
	resp := httptest.NewRecorder()
	handler(resp, httptest.NewRequest(http.MethodGet, "/api/healthz", nil))
	assert.Equal(t, http.StatusFailedDependency, resp.Code)

	var rsp response
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &rsp))
	assert.Equal(t, fail, rsp.Status)
	assert.Equal(t, "missing", rsp.Checks["templates"][0].Output)
}
