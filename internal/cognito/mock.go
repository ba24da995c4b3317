// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package cognito

import (
	"context"

	idp "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/stretchr/testify/mock"
)

// MockAPI is a testify mock of the API interface, shared by tests across
// packages that drive the client.
type MockAPI struct {
	mock.Mock
}

var _ API = (*MockAPI)(nil)

func (m *MockAPI) AdminCreateUser(ctx context.Context, params *idp.AdminCreateUserInput, optFns ...func(*idp.Options)) (*idp.AdminCreateUserOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idp.AdminCreateUserOutput), args.Error(1)
}

func (m *MockAPI) AdminSetUserPassword(ctx context.Context, params *idp.AdminSetUserPasswordInput, optFns ...func(*idp.Options)) (*idp.AdminSetUserPasswordOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idp.AdminSetUserPasswordOutput), args.Error(1)
}

func (m *MockAPI) AdminGetUser(ctx context.Context, params *idp.AdminGetUserInput, optFns ...func(*idp.Options)) (*idp.AdminGetUserOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idp.AdminGetUserOutput), args.Error(1)
}

func (m *MockAPI) AdminUpdateUserAttributes(ctx context.Context, params *idp.AdminUpdateUserAttributesInput, optFns ...func(*idp.Options)) (*idp.AdminUpdateUserAttributesOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idp.AdminUpdateUserAttributesOutput), args.Error(1)
}

func (m *MockAPI) AdminEnableUser(ctx context.Context, params *idp.AdminEnableUserInput, optFns ...func(*idp.Options)) (*idp.AdminEnableUserOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idp.AdminEnableUserOutput), args.Error(1)
}

func (m *MockAPI) AdminDisableUser(ctx context.Context, params *idp.AdminDisableUserInput, optFns ...func(*idp.Options)) (*idp.AdminDisableUserOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idp.AdminDisableUserOutput), args.Error(1)
}

func (m *MockAPI) AdminDeleteUser(ctx context.Context, params *idp.AdminDeleteUserInput, optFns ...func(*idp.Options)) (*idp.AdminDeleteUserOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idp.AdminDeleteUserOutput), args.Error(1)
}

func (m *MockAPI) AdminSetUserMFAPreference(ctx context.Context, params *idp.AdminSetUserMFAPreferenceInput, optFns ...func(*idp.Options)) (*idp.AdminSetUserMFAPreferenceOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idp.AdminSetUserMFAPreferenceOutput), args.Error(1)
}

func (m *MockAPI) AdminAddUserToGroup(ctx context.Context, params *idp.AdminAddUserToGroupInput, optFns ...func(*idp.Options)) (*idp.AdminAddUserToGroupOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idp.AdminAddUserToGroupOutput), args.Error(1)
}

func (m *MockAPI) AdminRemoveUserFromGroup(ctx context.Context, params *idp.AdminRemoveUserFromGroupInput, optFns ...func(*idp.Options)) (*idp.AdminRemoveUserFromGroupOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idp.AdminRemoveUserFromGroupOutput), args.Error(1)
}

func (m *MockAPI) AdminListGroupsForUser(ctx context.Context, params *idp.AdminListGroupsForUserInput, optFns ...func(*idp.Options)) (*idp.AdminListGroupsForUserOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idp.AdminListGroupsForUserOutput), args.Error(1)
}

func (m *MockAPI) ListUsers(ctx context.Context, params *idp.ListUsersInput, optFns ...func(*idp.Options)) (*idp.ListUsersOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idp.ListUsersOutput), args.Error(1)
}

func (m *MockAPI) ListGroups(ctx context.Context, params *idp.ListGroupsInput, optFns ...func(*idp.Options)) (*idp.ListGroupsOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idp.ListGroupsOutput), args.Error(1)
}
