// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package cognito

import (
	"context"

	idp "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
)

// API defines the Cognito Identity Provider surface consumed by cogctl.
// This allows the client to be mocked for testing.
type API interface {
	AdminCreateUser(ctx context.Context, params *idp.AdminCreateUserInput, optFns ...func(*idp.Options)) (*idp.AdminCreateUserOutput, error)
	AdminSetUserPassword(ctx context.Context, params *idp.AdminSetUserPasswordInput, optFns ...func(*idp.Options)) (*idp.AdminSetUserPasswordOutput, error)
	AdminGetUser(ctx context.Context, params *idp.AdminGetUserInput, optFns ...func(*idp.Options)) (*idp.AdminGetUserOutput, error)
	AdminUpdateUserAttributes(ctx context.Context, params *idp.AdminUpdateUserAttributesInput, optFns ...func(*idp.Options)) (*idp.AdminUpdateUserAttributesOutput, error)
	AdminEnableUser(ctx context.Context, params *idp.AdminEnableUserInput, optFns ...func(*idp.Options)) (*idp.AdminEnableUserOutput, error)
	AdminDisableUser(ctx context.Context, params *idp.AdminDisableUserInput, optFns ...func(*idp.Options)) (*idp.AdminDisableUserOutput, error)
	AdminDeleteUser(ctx context.Context, params *idp.AdminDeleteUserInput, optFns ...func(*idp.Options)) (*idp.AdminDeleteUserOutput, error)
	AdminSetUserMFAPreference(ctx context.Context, params *idp.AdminSetUserMFAPreferenceInput, optFns ...func(*idp.Options)) (*idp.AdminSetUserMFAPreferenceOutput, error)
	AdminAddUserToGroup(ctx context.Context, params *idp.AdminAddUserToGroupInput, optFns ...func(*idp.Options)) (*idp.AdminAddUserToGroupOutput, error)
	AdminRemoveUserFromGroup(ctx context.Context, params *idp.AdminRemoveUserFromGroupInput, optFns ...func(*idp.Options)) (*idp.AdminRemoveUserFromGroupOutput, error)
	AdminListGroupsForUser(ctx context.Context, params *idp.AdminListGroupsForUserInput, optFns ...func(*idp.Options)) (*idp.AdminListGroupsForUserOutput, error)
	ListUsers(ctx context.Context, params *idp.ListUsersInput, optFns ...func(*idp.Options)) (*idp.ListUsersOutput, error)
	ListGroups(ctx context.Context, params *idp.ListGroupsInput, optFns ...func(*idp.Options)) (*idp.ListGroupsOutput, error)
}

// Verify that *cognitoidentityprovider.Client implements the API interface
var _ API = (*idp.Client)(nil)
