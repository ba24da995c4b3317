// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/cogctl/cogctl/internal/bulk"
	"github.com/cogctl/cogctl/internal/cognito"
	"github.com/cogctl/cogctl/internal/meta"
)

// createCommandAction is the action handler for the "create" subcommand.
// With --email it creates the one named user; otherwise it creates N test
// users with a permanent password, optionally adding each to a group.
// Individual bulk failures are counted, not fatal; the run always makes
// exactly N attempts.
func createCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "create") {
		return nil
	}

	if email := cmd.String("email"); email != "" {
		if cmd.Args().First() != "" {
			return fmt.Errorf("--email and a user count are mutually exclusive")
		}
		return createSingle(ctx, cmd, email)
	}

	n := 1
	if arg := cmd.Args().First(); arg != "" {
		var err error
		n, err = strconv.Atoi(arg)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid user count %q: want a positive integer", arg)
		}
	}

	password, err := ResolvePassword(cmd.String("password"))
	if err != nil {
		return err
	}

	client, err := NewPoolClient(ctx, cmd)
	if err != nil {
		return err
	}

	result := bulk.Create(ctx, client, n, password, cmd.String("group"))

	fmt.Printf("created %d of %d users (%d failed)\n", result.Created, n, result.Failed)
	if group := cmd.String("group"); group != "" {
		fmt.Printf("added %d users to group %s\n", result.Grouped, group)
	}

	return nil
}

// createSingle creates one user with the given email as the username.
func createSingle(ctx context.Context, cmd *cli.Command, email string) error {
	password, err := ResolvePassword(cmd.String("password"))
	if err != nil {
		return err
	}

	client, err := NewPoolClient(ctx, cmd)
	if err != nil {
		return err
	}

	if err := client.CreateUser(ctx, email, cmd.String("phone"), password); err != nil {
		if cognito.IsUserExists(err) {
			return fmt.Errorf("user already exists: %s", email)
		}
		return err
	}
	fmt.Printf("created user %s\n", email)

	if group := cmd.String("group"); group != "" {
		if err := client.AddToGroup(ctx, email, group); err != nil {
			return err
		}
		fmt.Printf("added %s to group %s\n", email, group)
	}

	return nil
}

// createCommandBuilder constructs the cli.Command for "create", wiring
// metadata, flags, and action handlers.
func createCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "create test users",
		UsageText: "cogctl create [N] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			&cli.StringFlag{
				Name:  "email",
				Usage: "create this single user instead of numbered test users",
			},
			&cli.StringFlag{
				Name:  "phone",
				Usage: "phone number for --email (defaults to the placeholder)",
			},
			&cli.StringFlag{
				Name:  "password",
				Usage: "permanent password for created users ('-' prompts)",
			},
			&cli.StringFlag{
				Name:    "group",
				Aliases: []string{"g"},
				Usage:   "add each created user to this group",
			},
			NewPoolFlag("create", meta.Config.Source),
			NewRegionFlag("create", meta.Config.Source),
			NewProfileFlag("create", meta.Config.Source),
		},
		Action: createCommandAction,
	}
}
