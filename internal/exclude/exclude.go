// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package exclude holds the set of usernames/emails protected from bulk
// deletion. The set is assembled once per run from the environment plus any
// --exclude flags.
package exclude

import "strings"

// Set is a membership set keyed by username or email.
type Set map[string]struct{}

// NewSet builds a Set from one or more entry lists, trimming whitespace and
// dropping blanks.
func NewSet(lists ...[]string) Set {
	s := Set{}
	for _, list := range lists {
		for _, entry := range list {
			if entry = strings.TrimSpace(entry); entry != "" {
				s[entry] = struct{}{}
			}
		}
	}
	return s
}

// Has reports whether the user is protected, matching on either username or
// email.
func (s Set) Has(username, email string) bool {
	if _, ok := s[username]; ok {
		return true
	}
	if email == "" {
		return false
	}
	_, ok := s[email]
	return ok
}

// Entries returns the set contents in unspecified order.
func (s Set) Entries() []string {
	entries := make([]string, 0, len(s))
	for e := range s {
		entries = append(entries, e)
	}
	return entries
}
