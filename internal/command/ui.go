// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/cogctl/cogctl/internal/config"
	"github.com/cogctl/cogctl/internal/exclude"
	"github.com/cogctl/cogctl/internal/meta"
	"github.com/cogctl/cogctl/internal/tui"
)

// uiCommandAction is the action handler for the "ui" subcommand. It connects
// to the configured pool and launches the interactive console.
func uiCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "ui") {
		return nil
	}

	client, err := NewPoolClient(ctx, cmd)
	if err != nil {
		return err
	}

	excluded := exclude.NewSet(config.ExcludedUsers())
	accessKey, _ := config.StaticCredentials()

	settings := tui.Settings{
		Region:    cmd.String("region"),
		AccessKey: accessKey,
		PoolID:    client.PoolID(),
		Excluded:  excluded.Entries(),
	}

	return tui.Run(ctx, client, excluded, settings)
}

// uiCommandBuilder constructs the cli.Command for "ui", wiring metadata,
// flags, and action handlers.
func uiCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "ui",
		Usage:     "interactive user management console",
		UsageText: "cogctl ui [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewPoolFlag("ui", meta.Config.Source),
			NewRegionFlag("ui", meta.Config.Source),
			NewProfileFlag("ui", meta.Config.Source),
		},
		Action: uiCommandAction,
	}
}
