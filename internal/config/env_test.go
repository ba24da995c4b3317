// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegion(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	assert.Equal(t, DefaultRegion, Region())

	t.Setenv("AWS_REGION", "eu-west-1")
	assert.Equal(t, "eu-west-1", Region())
}

func TestUserPoolID(t *testing.T) {
	t.Setenv("AWS_COGNITO_USER_POOL_ID", "")
	assert.Empty(t, UserPoolID())

	t.Setenv("AWS_COGNITO_USER_POOL_ID", "ap-southeast-1_AbCdEfGhI")
	assert.Equal(t, "ap-southeast-1_AbCdEfGhI", UserPoolID())
}

func TestExcludedUsers(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want []string
	}{
		{
			name: "unset",
			env:  "",
			want: nil,
		},
		{
			name: "single entry",
			env:  "admin@example.com",
			want: []string{"admin@example.com"},
		},
		{
			name: "multiple with whitespace",
			env:  " admin@example.com , ops@example.com ",
			want: []string{"admin@example.com", "ops@example.com"},
		},
		{
			name: "blank entries dropped",
			env:  "admin@example.com,, ,ops@example.com",
			want: []string{"admin@example.com", "ops@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EXCLUDE_USERS", tt.env)
			assert.Equal(t, tt.want, ExcludedUsers())
		})
	}
}

func TestStaticCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIAEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	ak, sk := StaticCredentials()
	assert.Equal(t, "AKIAEXAMPLE", ak)
	assert.Equal(t, "secret", sk)
}
