// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/cogctl/cogctl/internal/config"
	"github.com/cogctl/cogctl/internal/exclude"
	"github.com/cogctl/cogctl/internal/filters"
	"github.com/cogctl/cogctl/internal/meta"
)

// uqDefaultAttrs specifies the default attributes displayed for pool users
// in the "uq" command output.
var uqDefaultAttrs = []string{".username", ".email", ".status", ".enabled"}

// uqCommandAction is the action handler for the "uq" subcommand. It lists
// users in the selected pool.
func uqCommandAction(ctx context.Context, cmd *cli.Command) error {
	client, err := NewPoolClient(ctx, cmd)
	if err != nil {
		return err
	}

	excluded := exclude.NewSet(config.ExcludedUsers())

	fetch := func(ctx context.Context, cmd *cli.Command) ([]userRow, error) {
		users, err := client.ListUsers(ctx, uqServerSideFilter(cmd), cmd.Int("limit"))
		if err != nil {
			return nil, err
		}
		return usersToRows(users, excluded), nil
	}

	return NewQueryActionRunner(
		"uq",
		uqDefaultAttrs,
		fetch,
	).Run(ctx, cmd)
}

// uqServerSideFilter translates the first server-side entry of --filter into
// a Cognito ListUsers filter expression. The service accepts a single filter
// of the form `name = "value"` or `name ^= "value"`; every other server-side
// operand is rejected so the user isn't silently handed an unfiltered list.
// The remaining (non-underscored) filters still apply client-side.
func uqServerSideFilter(cmd *cli.Command) string {
	spec := cmd.String("filter")
	filterList := filters.BuildFilters(spec)

	expr := ""
	seen := false
	for _, f := range filterList {
		// We only care about server-side filters.
		if !f.ServerSide {
			continue
		}

		// Cognito takes a single filter expression. The first server-side
		// filter decides it; the rest are ignored, loudly.
		if seen {
			log.Warnf("Cognito accepts one server-side filter; ignoring _%s%s%s", f.Key, f.Operand, f.Value)
			continue
		}
		seen = true

		switch f.Operand {
		case "=":
			expr = fmt.Sprintf("%s = %q", f.Key, f.Value)
		case "^":
			expr = fmt.Sprintf("%s ^= %q", f.Key, f.Value)
		default:
			log.Warnf("unsupported server-side operand %q for %s; ignoring", f.Operand, f.Key)
		}
	}

	return expr
}

// uqCommandBuilder constructs the cli.Command for "uq", wiring metadata,
// flags, and action handlers.
func uqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "uq",
		Usage:     "user query",
		UsageText: "cogctl uq [options]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "limit users returned (0 means all)",
				Value: 0,
			},
			NewPoolFlag("uq", meta.Config.Source),
			NewRegionFlag("uq", meta.Config.Source),
			NewProfileFlag("uq", meta.Config.Source),
		},
		Action: uqCommandAction,
		Meta:   meta,
	}).Build()
}
