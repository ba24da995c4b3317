// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package cognito

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
)

// ErrMissingPoolID is returned when no user pool ID is configured. It is the
// one configuration failure with a dedicated exit code.
var ErrMissingPoolID = errors.New("AWS_COGNITO_USER_POOL_ID environment variable not set")

// IsUserExists reports whether err is the provider's UsernameExistsException.
// Creation is the only flow that distinguishes a specific provider code.
func IsUserExists(err error) bool {
	var exists *types.UsernameExistsException
	return errors.As(err, &exists)
}

// IsUserNotFound reports whether err is the provider's UserNotFoundException.
func IsUserNotFound(err error) bool {
	var notFound *types.UserNotFoundException
	return errors.As(err, &notFound)
}

// Message extracts the provider error message from a smithy APIError, falling
// back to err.Error(). The result is always non-empty for a non-nil err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorMessage() != "" {
		return apiErr.ErrorMessage()
	}
	return err.Error()
}
