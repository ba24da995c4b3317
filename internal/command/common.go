// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/cogctl/cogctl/internal/attrs"
	"github.com/cogctl/cogctl/internal/aws"
	"github.com/cogctl/cogctl/internal/cognito"
	"github.com/cogctl/cogctl/internal/config"
	"github.com/cogctl/cogctl/internal/exclude"
	"github.com/cogctl/cogctl/internal/meta"
	"github.com/cogctl/cogctl/internal/output"
)

// userRow is the JSON shape handed to the output pipeline for user queries.
// Top-level fields are addressed with a leading dot in --attrs; everything in
// Attributes is addressed bare (e.g. "sub" becomes "attributes.sub").
type userRow struct {
	Username   string            `json:"username"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Status     string            `json:"status"`
	Enabled    bool              `json:"enabled"`
	Excluded   bool              `json:"excluded"`
	Created    time.Time         `json:"created"`
	Modified   time.Time         `json:"modified"`
	Attributes map[string]string `json:"attributes"`
}

// groupRow is the JSON shape handed to the output pipeline for group queries.
type groupRow struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
}

// usersToRows projects pool users into output rows, marking the ones in the
// exclusion set.
func usersToRows(users []cognito.User, excluded exclude.Set) []userRow {
	rows := make([]userRow, 0, len(users))
	for _, u := range users {
		row := userRow{
			Username:   u.Username,
			Email:      u.Email,
			Phone:      u.Phone,
			Status:     u.Status,
			Enabled:    u.Enabled,
			Excluded:   excluded.Has(u.Username, u.Email),
			Created:    u.Created,
			Modified:   u.Modified,
			Attributes: make(map[string]string, len(u.Attributes)),
		}
		for _, a := range u.Attributes {
			row.Attributes[a.Name] = a.Value
		}
		rows = append(rows, row)
	}
	return rows
}

// groupsToRows projects pool groups into output rows.
func groupsToRows(groups []cognito.Group) []groupRow {
	rows := make([]groupRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, groupRow{
			Name:        g.Name,
			Description: g.Description,
			Created:     g.Created,
		})
	}
	return rows
}

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// EmitRows marshals a slice of rows and passes it to the common output
// routine.
func EmitRows(results any, al attrs.AttrList, cmd *cli.Command) error {
	var raw bytes.Buffer
	enc := json.NewEncoder(&raw)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to marshal rows: %w", err)
	}
	output.SliceDiceSpit(raw, al, cmd, "", os.Stdout, nil)
	return nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// NewPoolClient resolves region and credentials, builds the SDK client, and
// binds it to the pool from --pool (or the environment). The returned error
// is cognito.ErrMissingPoolID when no pool ID could be resolved.
func NewPoolClient(ctx context.Context, cmd *cli.Command) (*cognito.Client, error) {
	opts := []aws.Option{aws.WithRegion(cmd.String("region"))}

	if profile := cmd.String("profile"); profile != "" {
		opts = append(opts, aws.WithProfile(profile))
	} else if accessKey, secretKey := config.StaticCredentials(); accessKey != "" && secretKey != "" {
		opts = append(opts, aws.WithStaticCredentials(accessKey, secretKey))
	}

	cfg, err := aws.LoadAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return cognito.NewClient(aws.NewCognito(cfg), cmd.String("pool"))
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr cogctl <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "cogctl", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// ResolvePassword returns the password for create/mod operations. A literal
// "-" prompts on the terminal without echo; an empty value falls back to the
// default permanent password.
func ResolvePassword(value string) (string, error) {
	if value != "-" {
		if value == "" {
			return cognito.DefaultPassword, nil
		}
		return value, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}

// Confirm prompts for the literal word "yes" on stdin and reports whether it
// was given. Used before destructive operations unless --yes is set.
func Confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s Type 'yes' to continue: ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	return strings.TrimSpace(scanner.Text()) == "yes"
}
