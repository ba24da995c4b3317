// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/cogctl/cogctl/internal/meta"
)

// gqDefaultAttrs specifies the default attributes displayed for pool groups
// in the "gq" command output.
var gqDefaultAttrs = []string{".name", ".description", ".created::t"}

// gqCommandAction is the action handler for the "gq" subcommand. It lists
// groups in the selected pool, sorted by name.
func gqCommandAction(ctx context.Context, cmd *cli.Command) error {
	client, err := NewPoolClient(ctx, cmd)
	if err != nil {
		return err
	}

	fetch := func(ctx context.Context, cmd *cli.Command) ([]groupRow, error) {
		// With --user, list only the groups that user belongs to.
		if username := cmd.String("user"); username != "" {
			names, err := client.UserGroups(ctx, username)
			if err != nil {
				return nil, err
			}
			rows := make([]groupRow, 0, len(names))
			for _, name := range names {
				rows = append(rows, groupRow{Name: name})
			}
			return rows, nil
		}

		groups, err := client.ListGroups(ctx)
		if err != nil {
			return nil, err
		}
		return groupsToRows(groups), nil
	}

	return NewQueryActionRunner(
		"gq",
		gqDefaultAttrs,
		fetch,
	).Run(ctx, cmd)
}

// gqCommandBuilder constructs the cli.Command for "gq", wiring metadata,
// flags, and action handlers.
func gqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "gq",
		Usage:     "group query",
		UsageText: "cogctl gq [options]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "user",
				Aliases: []string{"u"},
				Usage:   "list only the groups this user belongs to",
			},
			NewPoolFlag("gq", meta.Config.Source),
			NewRegionFlag("gq", meta.Config.Source),
			NewProfileFlag("gq", meta.Config.Source),
		},
		Action: gqCommandAction,
		Meta:   meta,
	}).Build()
}
