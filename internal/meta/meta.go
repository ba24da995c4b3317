// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/cogctl/cogctl/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context, and the starting working directory.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string
}
