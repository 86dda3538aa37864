// Copyright 2020 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package templates

import (
	"code.gitea.io/openid-selector/modules/setting"
)

// TplName is the name of a template, the path below templates/ without the extension
type TplName string

// Vars represents variables to be render in golang templates
type Vars map[string]any

// Merge merges another vars to the current, another Vars will override the current
func (vars Vars) Merge(another map[string]any) Vars {
	for k, v := range another {
		vars[k] = v
	}
	return vars
}

// BaseVars returns all basic vars
func BaseVars() Vars {
	return Vars{
		"AppURL":     setting.AppURL,
		"AppSubURL":  setting.AppSubURL,
		"SigninText": setting.OpenIDSelector.SigninText,
		"InputID":    setting.OpenIDSelector.InputID,
		"ImgPath":    setting.OpenIDSelector.ImgPath,
	}
}
