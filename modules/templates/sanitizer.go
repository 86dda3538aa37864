// Copyright 2017 The Gitea Authors. All rights reserved.
// Copyright 2017 The Gogs Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package templates

import (
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	sanitizerOnce   sync.Once
	sanitizerPolicy *bluemonday.Policy
)

func policy() *bluemonday.Policy {
	sanitizerOnce.Do(func() {
		sanitizerPolicy = bluemonday.UGCPolicy()
	})
	return sanitizerPolicy
}

// SanitizeHTML removes everything but inline markup from raw, eg: provider labels like "Enter your <b>Blogger</b> account"
func SanitizeHTML(raw string) template.HTML {
	return template.HTML(policy().Sanitize(raw))
}
