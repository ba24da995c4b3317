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
	"github.com/cogctl/cogctl/internal/meta"
)

// modCommandAction is the action handler for the "mod" subcommand. It applies
// the requested changes to one user: attribute updates, a permanent password,
// enable/disable, and MFA reset. Changes are applied in that order; the first
// failure stops the run.
func modCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "mod") {
		return nil
	}

	username := cmd.Args().First()
	if username == "" {
		return fmt.Errorf("no username given")
	}

	if cmd.Bool("enable") && cmd.Bool("disable") {
		return fmt.Errorf("--enable and --disable are mutually exclusive")
	}

	client, err := NewPoolClient(ctx, cmd)
	if err != nil {
		return err
	}

	if specs := cmd.StringSlice("attr"); len(specs) > 0 {
		attrs, err := parseAttrSpecs(specs)
		if err != nil {
			return err
		}
		if err := client.UpdateAttributes(ctx, username, attrs); err != nil {
			return fmt.Errorf("failed to update attributes: %s", cognito.Message(err))
		}
		fmt.Printf("updated %d attributes for %s\n", len(attrs), username)
	}

	if pw := cmd.String("password"); pw != "" {
		password, err := ResolvePassword(pw)
		if err != nil {
			return err
		}
		if err := client.SetPassword(ctx, username, password); err != nil {
			return fmt.Errorf("failed to set password: %s", cognito.Message(err))
		}
		fmt.Printf("set permanent password for %s\n", username)
	}

	if cmd.Bool("enable") || cmd.Bool("disable") {
		enabled := cmd.Bool("enable")
		if err := client.SetEnabled(ctx, username, enabled); err != nil {
			return fmt.Errorf("failed to change enabled state: %s", cognito.Message(err))
		}
		fmt.Printf("user %s is now enabled=%v\n", username, enabled)
	}

	if cmd.Bool("reset-mfa") {
		if err := client.ResetMFA(ctx, username); err != nil {
			return fmt.Errorf("failed to reset MFA: %s", cognito.Message(err))
		}
		fmt.Printf("reset MFA preferences for %s\n", username)
	}

	return nil
}

// parseAttrSpecs parses repeated --attr name=value specs.
func parseAttrSpecs(specs []string) ([]cognito.Attribute, error) {
	attrs := make([]cognito.Attribute, 0, len(specs))
	for _, spec := range specs {
		name, value, found := strings.Cut(spec, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid attribute spec %q: want name=value", spec)
		}
		attrs = append(attrs, cognito.Attribute{Name: name, Value: value})
	}
	return attrs, nil
}

// modCommandBuilder constructs the cli.Command for "mod", wiring metadata,
// flags, and action handlers.
func modCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "mod",
		Usage:     "modify a user",
		UsageText: "cogctl mod USERNAME [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			&cli.StringSliceFlag{
				Name:  "attr",
				Usage: "attribute to set as name=value (repeatable)",
			},
			&cli.StringFlag{
				Name:  "password",
				Usage: "set a new permanent password ('-' prompts)",
			},
			&cli.BoolFlag{
				Name:        "enable",
				Usage:       "enable the user",
				HideDefault: true,
			},
			&cli.BoolFlag{
				Name:        "disable",
				Usage:       "disable the user",
				HideDefault: true,
			},
			&cli.BoolFlag{
				Name:        "reset-mfa",
				Usage:       "disable SMS and TOTP MFA preferences",
				HideDefault: true,
			},
			NewPoolFlag("mod", meta.Config.Source),
			NewRegionFlag("mod", meta.Config.Source),
			NewProfileFlag("mod", meta.Config.Source),
		},
		Action: modCommandAction,
	}
}
