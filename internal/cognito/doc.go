// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package cognito wraps the AWS Cognito Identity Provider admin API for a
// single user pool. It marshals parameters, drives token-based pagination,
// and normalizes provider errors; all durable state lives in the service.
package cognito
