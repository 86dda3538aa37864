// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package healthcheck

import (
	"net/http"
	"sort"
	"time"

	"code.gitea.io/openid-selector/modules/json"
	"code.gitea.io/openid-selector/modules/log"
)

type status string

const (
	// pass healthy, fail unhealthy
	// ref https://datatracker.ietf.org/doc/html/draft-inadarei-api-health-check#section-3.1
	pass status = "pass"
	fail status = "fail"
)

func (s status) ToHTTPStatus() int {
	if s == pass {
		return http.StatusOK
	}
	return http.StatusFailedDependency
}

type checks map[string][]componentStatus

// response is the data returned by the health endpoint, which will be marshaled to JSON format
type response struct {
	Status      status `json:"status"`
	Description string `json:"description"`
	Checks      checks `json:"checks,omitempty"`
}

// componentStatus presents one status of a single check object
type componentStatus struct {
	Status status `json:"status"`
	Time   string `json:"time"`             // the date-time, in ISO8601 format
	Output string `json:"output,omitempty"` // this field SHOULD be omitted for "pass" state.
}

// Checker reports a problem of one component, nil when it is healthy
type Checker func() error

// NewCheck returns the health check API handler running the named checkers
func NewCheck(description string, checkers map[string]Checker) http.HandlerFunc {
	names := make([]string, 0, len(checkers))
	for name := range checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		rsp := response{
			Status:      pass,
			Description: description,
			Checks:      make(checks),
		}
		for _, name := range names {
			st := componentStatus{Status: pass, Time: getCheckTime()}
			if err := checkers[name](); err != nil {
				st.Status = fail
				st.Output = err.Error()
				rsp.Status = fail
				log.Error("%s health check failed with error: %v", name, err)
			}
			rsp.Checks[name] = []componentStatus{st}
		}

		data, _ := json.MarshalIndent(rsp, "", "  ")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rsp.Status.ToHTTPStatus())
		_, _ = w.Write(data)
	}
}

func getCheckTime() string {
	return time.Now().UTC().Format(time.RFC3339)
}
