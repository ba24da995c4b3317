// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"github.com/apex/log"
)

// DefaultRegion is used when AWS_REGION is not set anywhere.
const DefaultRegion = "ap-southeast-1"

var dotenvOnce sync.Once

// LoadDotenv loads a .env file from the current working directory into the
// process environment. Existing environment variables win. Called once per
// process; subsequent calls are no-ops.
func LoadDotenv() {
	dotenvOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			// A missing .env is the normal case.
			log.Debugf("dotenv not loaded: err=%v", err)
			return
		}
		log.Debugf("dotenv loaded from cwd")
	})
}

// Region returns the AWS region from AWS_REGION, falling back to
// DefaultRegion.
func Region() string {
	if r := os.Getenv("AWS_REGION"); r != "" {
		return r
	}
	return DefaultRegion
}

// UserPoolID returns the Cognito user pool ID from
// AWS_COGNITO_USER_POOL_ID. Empty means unconfigured; callers decide how to
// fail.
func UserPoolID() string {
	return os.Getenv("AWS_COGNITO_USER_POOL_ID")
}

// StaticCredentials returns the access key pair from the environment. Both
// empty means "use the SDK default chain".
func StaticCredentials() (accessKey, secretKey string) {
	return os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
}

// ExcludedUsers returns the usernames/emails protected from bulk deletion,
// parsed from the comma-separated EXCLUDE_USERS variable. Blank entries are
// dropped.
func ExcludedUsers() []string {
	raw := os.Getenv("EXCLUDE_USERS")
	if raw == "" {
		return nil
	}
	var users []string
	for _, u := range strings.Split(raw, ",") {
		if u = strings.TrimSpace(u); u != "" {
			users = append(users, u)
		}
	}
	return users
}
