// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws loads AWS SDK v2 configuration and constructs the Cognito
// Identity Provider client used by commands and the interactive UI.
package aws
