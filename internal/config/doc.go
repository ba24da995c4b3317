// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for cogctl's user
// configuration. The configuration is expected to be a YAML document located
// in the user's configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/cogctl.yaml or $HOME/.config/cogctl.yaml
//   - Windows: %APPDATA%/cogctl/cogctl.yaml
//
// Actual resolution relies on os.UserConfigDir which follows platform
// conventions.
package config
