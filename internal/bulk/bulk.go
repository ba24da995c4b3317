// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package bulk implements the batch user routines: deterministic test-user
// creation and exclusion-aware pool purging. Neither routine is
// transactional; partial completion is reported through counts.
package bulk

import (
	"context"
	"fmt"

	"github.com/cogctl/cogctl/internal/cognito"
	"github.com/cogctl/cogctl/internal/exclude"
	"github.com/cogctl/cogctl/internal/log"
)

// Username returns the deterministic test username for index i (1-based).
func Username(i int) string {
	return fmt.Sprintf("testuser%d@example.com", i)
}

// CreateResult reports the outcome of a bulk create run.
type CreateResult struct {
	Created int
	Failed  int
	Grouped int
}

// Create creates n test users with the given permanent password, optionally
// adding each to group. Every user is independent: a failure (including
// already-exists) is logged, counted, and the loop continues. Exactly n
// creation attempts are made.
func Create(ctx context.Context, c *cognito.Client, n int, password, group string) CreateResult {
	var result CreateResult

	for i := 1; i <= n; i++ {
		email := Username(i)

		if err := c.CreateUser(ctx, email, "", password); err != nil {
			if cognito.IsUserExists(err) {
				log.Infof("user already exists: %s", email)
			} else {
				log.Errorf("failed to create %s: %s", email, cognito.Message(err))
			}
			result.Failed++
			continue
		}

		log.Infof("created user: %s", email)
		result.Created++

		if group != "" {
			if err := c.AddToGroup(ctx, email, group); err != nil {
				log.Warnf("failed to add %s to group %s: %s", email, group, cognito.Message(err))
				continue
			}
			result.Grouped++
		}
	}

	return result
}

// PurgeResult reports the outcome of a purge run.
type PurgeResult struct {
	Deleted int
	Skipped int
}

// Purge deletes every user in the pool except those in the exclusion set,
// matched by username or email. The listing is paginated; the first listing
// or deletion error aborts the scan and is returned alongside the counts
// accumulated so far. A partial purge is not resumable.
func Purge(ctx context.Context, c *cognito.Client, excluded exclude.Set) (PurgeResult, error) {
	var result PurgeResult

	users, err := c.ListUsers(ctx, "", 0)
	if err != nil {
		return result, err
	}

	for _, user := range users {
		if excluded.Has(user.Username, user.Email) {
			log.Infof("skipping excluded user: %s", user.Username)
			result.Skipped++
			continue
		}

		log.Infof("deleting user: %s", user.Username)
		if err := c.DeleteUser(ctx, user.Username); err != nil {
			return result, err
		}
		result.Deleted++
	}

	return result, nil
}
