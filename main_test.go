// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{
			name:     "no version flag",
			args:     []string{"cogctl", "uq"},
			expected: false,
		},
		{
			name:     "long flag",
			args:     []string{"cogctl", "--version"},
			expected: true,
		},
		{
			name:     "short flag",
			args:     []string{"cogctl", "-v"},
			expected: true,
		},
		{
			name:     "version flag after command",
			args:     []string{"cogctl", "uq", "--version"},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handleVersion(tt.args); got != tt.expected {
				t.Errorf("handleVersion(%v) = %v, want %v", tt.args, got, tt.expected)
			}
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "binary only gets help",
			args:     []string{"cogctl"},
			expected: []string{"cogctl", "--help"},
		},
		{
			name:     "command present unchanged",
			args:     []string{"cogctl", "uq"},
			expected: []string{"cogctl", "uq"},
		},
		{
			name:     "command with flags unchanged",
			args:     []string{"cogctl", "purge", "--yes"},
			expected: []string{"cogctl", "purge", "--yes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := handleNakedCommand(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("handleNakedCommand(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestProcessSetOnly(t *testing.T) {
	// With no config file loaded the @set expands to nothing, so the only
	// observable effect is the @set token being consumed.
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no set token unchanged",
			args:     []string{"cogctl", "uq", "--titles"},
			expected: []string{"cogctl", "uq", "--titles"},
		},
		{
			name:     "set token consumed",
			args:     []string{"cogctl", "uq", "@dev", "--titles"},
			expected: []string{"cogctl", "uq", "--titles"},
		},
		{
			name:     "set token at end consumed",
			args:     []string{"cogctl", "uq", "--titles", "@dev"},
			expected: []string{"cogctl", "uq", "--titles"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := processSetOnly(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("processSetOnly(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestProcessCommandArgsCompletionPassthrough(t *testing.T) {
	args := []string{"cogctl", "completion", "@dev", "bash"}
	result := processCommandArgs(args)
	if !reflect.DeepEqual(result, args) {
		t.Errorf("processCommandArgs(%v) = %v, want unchanged", args, result)
	}
}
