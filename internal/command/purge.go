// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/cogctl/cogctl/internal/bulk"
	"github.com/cogctl/cogctl/internal/config"
	"github.com/cogctl/cogctl/internal/exclude"
	"github.com/cogctl/cogctl/internal/meta"
)

// purgeCommandAction is the action handler for the "purge" subcommand. It
// deletes every user in the pool except those excluded via EXCLUDE_USERS or
// --exclude, matched by username or email. The first listing or deletion
// error aborts the scan; counts up to that point are still reported.
func purgeCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "purge") {
		return nil
	}

	excluded := exclude.NewSet(
		config.ExcludedUsers(),
		strings.Split(cmd.String("exclude"), ","),
	)

	client, err := NewPoolClient(ctx, cmd)
	if err != nil {
		return err
	}

	if !cmd.Bool("yes") {
		prompt := fmt.Sprintf("This deletes every user in pool %s except %d excluded.",
			client.PoolID(), len(excluded))
		if !Confirm(prompt) {
			fmt.Println("aborted")
			return nil
		}
	}

	result, err := bulk.Purge(ctx, client, excluded)
	fmt.Printf("deleted %d users, skipped %d excluded\n", result.Deleted, result.Skipped)
	if err != nil {
		return fmt.Errorf("purge aborted: %w", err)
	}

	return nil
}

// purgeCommandBuilder constructs the cli.Command for "purge", wiring
// metadata, flags, and action handlers.
func purgeCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "purge",
		Usage:     "delete all users except exclusions",
		UsageText: "cogctl purge [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			&cli.StringFlag{
				Name:    "exclude",
				Aliases: []string{"x"},
				Usage:   "comma-separated usernames or emails to keep (adds to EXCLUDE_USERS)",
			},
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the confirmation prompt",
				HideDefault: true,
			},
			NewPoolFlag("purge", meta.Config.Source),
			NewRegionFlag("purge", meta.Config.Source),
			NewProfileFlag("purge", meta.Config.Source),
		},
		Action: purgeCommandAction,
	}
}
