// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
)

// QueryActionRunner[T] encapsulates the common query action pattern for the
// query subcommands. It handles GetMeta, short-circuit checks, BuildAttrs,
// and output emission, with the data fetching provided by FetchFn.
type QueryActionRunner[T any] struct {
	CommandName  string
	DefaultAttrs []string
	FetchFn      func(context.Context, *cli.Command) ([]T, error)
}

// Run executes the query action with the provided context and command.
func (qar *QueryActionRunner[T]) Run(
	ctx context.Context,
	cmd *cli.Command,
) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, qar.CommandName) {
		return nil
	}

	attrs := BuildAttrs(cmd, qar.DefaultAttrs...)
	log.Debugf("attrs: %v", attrs)

	results, err := qar.FetchFn(ctx, cmd)
	if err != nil {
		return err
	}

	return EmitRows(results, attrs, cmd)
}

// NewQueryActionRunner creates a QueryActionRunner with the provided
// configuration.
func NewQueryActionRunner[T any](
	commandName string,
	defaultAttrs []string,
	fetchFn func(context.Context, *cli.Command) ([]T, error),
) *QueryActionRunner[T] {
	return &QueryActionRunner[T]{
		CommandName:  commandName,
		DefaultAttrs: defaultAttrs,
		FetchFn:      fetchFn,
	}
}
