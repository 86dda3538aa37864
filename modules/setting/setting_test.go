// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"code.gitea.io/openid-selector/modules/log"
	"code.gitea.io/openid-selector/modules/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServer(t *testing.T) {
	cfg, err := NewConfigProviderFromData(`
[server]
HTTP_PORT = 8080
APP_URL = https://ci.example.com/jenkins
`)
	require.NoError(t, err)
	require.NoError(t, loadServerFrom(cfg))
	assert.Equal(t, "8080", HTTPPort)
	assert.Equal(t, "https://ci.example.com/jenkins/", AppURL)
	assert.Equal(t, "/jenkins", AppSubURL)

	cfg, _ = NewConfigProviderFromData(``)
	require.NoError(t, loadServerFrom(cfg))
	assert.Equal(t, "http://localhost:3000/", AppURL)
	assert.Empty(t, AppSubURL)
}

func TestLoadOpenIDLists(t *testing.T) {
	cfg, err := NewConfigProviderFromData(`
[openid]
WHITELISTED_URIS = ^https://.*\.example\.com/ ^https://id\.example\.org/
BLACKLISTED_URIS = evil
`)
	require.NoError(t, err)
	require.NoError(t, loadOpenIDFrom(cfg))
	require.Len(t, OpenID.Whitelist, 2)
	require.Len(t, OpenID.Blacklist, 1)
	assert.True(t, OpenID.Whitelist[0].MatchString("https://alice.example.com/"))

	cfg, _ = NewConfigProviderFromData("[openid]\nBLACKLISTED_URIS = (\n")
	assert.Error(t, loadOpenIDFrom(cfg))
}

func TestLoadLogAndSecurity(t *testing.T) {
	cfg, err := NewConfigProviderFromData(`
[log]
LEVEL = debug
FLAGS = level
COLORIZE = false

[security]
SECRET_KEY = s3cr3t
REVERSE_PROXY_TRUSTED_PROXIES = 10.0.0.1, 192.168.0.0/16
`)
	require.NoError(t, err)
	loadLogFrom(cfg)
	loadSecurityFrom(cfg)
	assert.Equal(t, log.DEBUG, Log.Level)
	assert.Equal(t, log.DEBUG, Log.RouterLevel)
	assert.Equal(t, log.Llevel, Log.Flags)
	assert.False(t, Log.Colorize)
	assert.Equal(t, "s3cr3t", SecretKey)
	assert.Equal(t, 1, ReverseProxyLimit)
	assert.Equal(t, []string{"10.0.0.1", "192.168.0.0/16"}, ReverseProxyTrustedProxies)

	cfg, _ = NewConfigProviderFromData(``)
	loadSecurityFrom(cfg)
	assert.NotEmpty(t, SecretKey)
	assert.NotEqual(t, "s3cr3t", SecretKey)
}

func TestNewConfigProviderFromFile(t *testing.T) {
	cfg, err := NewConfigProviderFromFile(filepath.Join(t.TempDir(), "missing.ini"))
	require.NoError(t, err)
	assert.False(t, cfg.HasSection("server"))

	file := filepath.Join(t.TempDir(), "app.ini")
	require.NoError(t, os.WriteFile(file, []byte("[openid_selector]\nCOOKIE_NAME = x\n"), 0o644))
	cfg, err = NewConfigProviderFromFile(file)
	require.NoError(t, err)
	assert.True(t, cfg.HasSection("openid_selector"))
	assert.Equal(t, "x", cfg.Section("openid_selector").Key("COOKIE_NAME").String())
}

func TestLoadCors(t *testing.T) {
	defer test.MockVariableValue(&CORSConfig)()

	cfg, err := NewConfigProviderFromData(`
[cors]
ENABLED = true
ALLOW_DOMAIN = https://portal.example,https://intranet.example
MAX_AGE = 1h
`)
	require.NoError(t, err)
	require.NoError(t, loadCorsFrom(cfg))
	assert.True(t, CORSConfig.Enabled)
	assert.Equal(t, []string{"https://portal.example", "https://intranet.example"}, CORSConfig.AllowDomain)
	assert.Equal(t, []string{"GET", "HEAD", "OPTIONS"}, CORSConfig.Methods)
	assert.Equal(t, time.Hour, CORSConfig.MaxAge)
}
