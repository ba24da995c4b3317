// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/cogctl/cogctl/internal/cognito"
	"github.com/cogctl/cogctl/internal/config"
	"github.com/cogctl/cogctl/internal/exclude"
	"github.com/cogctl/cogctl/internal/meta"
)

// rmCommandAction is the action handler for the "rm" subcommand. It deletes
// the named users, skipping any that are excluded. Each deletion is
// independent; failures are logged and counted.
func rmCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "rm") {
		return nil
	}

	usernames := cmd.Args().Slice()
	if len(usernames) == 0 {
		return fmt.Errorf("no usernames given")
	}

	excluded := exclude.NewSet(
		config.ExcludedUsers(),
		strings.Split(cmd.String("exclude"), ","),
	)

	client, err := NewPoolClient(ctx, cmd)
	if err != nil {
		return err
	}

	deleted, failed, skipped := 0, 0, 0
	for _, username := range usernames {
		if excluded.Has(username, username) {
			log.Infof("skipping excluded user: %s", username)
			skipped++
			continue
		}

		if err := client.DeleteUser(ctx, username); err != nil {
			log.Errorf("failed to delete %s: %s", username, cognito.Message(err))
			failed++
			continue
		}
		deleted++
	}

	fmt.Printf("deleted %d users, %d failed, %d excluded\n", deleted, failed, skipped)
	return nil
}

// rmCommandBuilder constructs the cli.Command for "rm", wiring metadata,
// flags, and action handlers.
func rmCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "delete named users",
		UsageText: "cogctl rm USERNAME... [options]",
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
			NewPoolFlag("rm", meta.Config.Source),
			NewRegionFlag("rm", meta.Config.Source),
			NewProfileFlag("rm", meta.Config.Source),
		},
		Action: rmCommandAction,
	}
}
