// Copyright 2014 The Gogs Authors. All rights reserved.
// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"fmt"
)

var (
	// CustomConf is the ini file given by --config, it is optional
	CustomConf string

	// CfgProvider is the config provider loaded by InitCfgProvider
	CfgProvider ConfigProvider
)

// InitCfgProvider loads the custom config file, a missing file gives an empty config
func InitCfgProvider(file string) error {
	cfg, err := NewConfigProviderFromFile(file)
	if err != nil {
		return fmt.Errorf("unable to init config provider from %q: %w", file, err)
	}
	CustomConf, CfgProvider = file, cfg
	return nil
}

// LoadCommonSettings loads common configurations from the config provider
func LoadCommonSettings() error {
	if err := loadCommonSettingsFrom(CfgProvider); err != nil {
		return fmt.Errorf("unable to load settings from %q: %w", CustomConf, err)
	}
	return nil
}

func loadCommonSettingsFrom(cfg ConfigProvider) error {
	loadLogFrom(cfg)
	if err := loadServerFrom(cfg); err != nil {
		return err
	}
	loadSecurityFrom(cfg)
	if err := loadCorsFrom(cfg); err != nil {
		return err
	}
	if err := loadOpenIDFrom(cfg); err != nil {
		return err
	}
	return loadOpenIDSelectorFrom(cfg)
}
