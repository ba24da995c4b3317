// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/cogctl/cogctl/internal/cognito"
	"github.com/cogctl/cogctl/internal/meta"
)

// membershipAction runs a group membership change (add or remove) for each
// named user. Each change is independent; failures are logged and counted.
func membershipAction(
	ctx context.Context,
	cmd *cli.Command,
	name string,
	apply func(*cognito.Client, context.Context, string, string) error,
) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, name) {
		return nil
	}

	args := cmd.Args().Slice()
	if len(args) < 2 {
		return fmt.Errorf("usage: cogctl %s GROUP USERNAME...", name)
	}
	group, usernames := args[0], args[1:]

	client, err := NewPoolClient(ctx, cmd)
	if err != nil {
		return err
	}

	ok, failed := 0, 0
	for _, username := range usernames {
		if err := apply(client, ctx, username, group); err != nil {
			log.Errorf("%s failed for %s: %s", name, username, cognito.Message(err))
			failed++
			continue
		}
		ok++
	}

	fmt.Printf("%s: %d users updated, %d failed\n", name, ok, failed)
	return nil
}

// grantCommandBuilder constructs the cli.Command for "grant", which adds
// users to a group.
func grantCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "grant",
		Usage:     "add users to a group",
		UsageText: "cogctl grant GROUP USERNAME... [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewPoolFlag("grant", meta.Config.Source),
			NewRegionFlag("grant", meta.Config.Source),
			NewProfileFlag("grant", meta.Config.Source),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return membershipAction(ctx, cmd, "grant",
				(*cognito.Client).AddToGroup)
		},
	}
}

// revokeCommandBuilder constructs the cli.Command for "revoke", which removes
// users from a group.
func revokeCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "revoke",
		Usage:     "remove users from a group",
		UsageText: "cogctl revoke GROUP USERNAME... [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewPoolFlag("revoke", meta.Config.Source),
			NewRegionFlag("revoke", meta.Config.Source),
			NewProfileFlag("revoke", meta.Config.Source),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return membershipAction(ctx, cmd, "revoke",
				(*cognito.Client).RemoveFromGroup)
		},
	}
}
