// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package bulk

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	idp "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cogctl/cogctl/internal/cognito"
	"github.com/cogctl/cogctl/internal/exclude"
)

func newTestClient(t *testing.T) (*cognito.Client, *cognito.MockAPI) {
	t.Helper()
	api := &cognito.MockAPI{}
	c, err := cognito.NewClient(api, "ap-southeast-1_TestPool")
	require.NoError(t, err)
	return c, api
}

func TestUsername(t *testing.T) {
	assert.Equal(t, "testuser1@example.com", Username(1))
	assert.Equal(t, "testuser25@example.com", Username(25))
}

func TestCreate_AllSucceed(t *testing.T) {
	c, api := newTestClient(t)

	var seen []string
	api.On("AdminCreateUser", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			in := args.Get(1).(*idp.AdminCreateUserInput)
			seen = append(seen, *in.Username)
		}).
		Return(&idp.AdminCreateUserOutput{}, nil).Times(3)
	api.On("AdminSetUserPassword", mock.Anything, mock.Anything).
		Return(&idp.AdminSetUserPasswordOutput{}, nil).Times(3)

	result := Create(context.Background(), c, 3, "Password123!", "")

	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 0, result.Failed)
	// Deterministic usernames, in order.
	assert.Equal(t, []string{
		"testuser1@example.com",
		"testuser2@example.com",
		"testuser3@example.com",
	}, seen)
	api.AssertExpectations(t)
}

func TestCreate_ExistingUsersCountAsFailures(t *testing.T) {
	c, api := newTestClient(t)

	// testuser2 already exists; the loop must continue and still make all
	// three attempts.
	for i := 1; i <= 3; i++ {
		call := api.On("AdminCreateUser", mock.Anything, mock.MatchedBy(func(n int) func(*idp.AdminCreateUserInput) bool {
			return func(in *idp.AdminCreateUserInput) bool {
				return *in.Username == Username(n)
			}
		}(i)))
		if i == 2 {
			call.Return(nil, &types.UsernameExistsException{Message: aws.String("exists")}).Once()
		} else {
			call.Return(&idp.AdminCreateUserOutput{}, nil).Once()
		}
	}
	api.On("AdminSetUserPassword", mock.Anything, mock.Anything).
		Return(&idp.AdminSetUserPasswordOutput{}, nil).Times(2)

	result := Create(context.Background(), c, 3, "", "")

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Failed)
	api.AssertExpectations(t)
}

func TestCreate_GroupMembership(t *testing.T) {
	c, api := newTestClient(t)

	api.On("AdminCreateUser", mock.Anything, mock.Anything).
		Return(&idp.AdminCreateUserOutput{}, nil).Times(2)
	api.On("AdminSetUserPassword", mock.Anything, mock.Anything).
		Return(&idp.AdminSetUserPasswordOutput{}, nil).Times(2)
	api.On("AdminAddUserToGroup", mock.Anything, mock.MatchedBy(func(in *idp.AdminAddUserToGroupInput) bool {
		return *in.GroupName == "testers" && *in.Username == Username(1)
	})).Return(&idp.AdminAddUserToGroupOutput{}, nil).Once()
	api.On("AdminAddUserToGroup", mock.Anything, mock.MatchedBy(func(in *idp.AdminAddUserToGroupInput) bool {
		return *in.Username == Username(2)
	})).Return(nil, fmt.Errorf("throttled")).Once()

	result := Create(context.Background(), c, 2, "", "testers")

	// A group failure does not fail the creation itself.
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Grouped)
	api.AssertExpectations(t)
}

func listPage(token *string, users ...[2]string) *idp.ListUsersOutput {
	out := &idp.ListUsersOutput{PaginationToken: token}
	for _, u := range users {
		out.Users = append(out.Users, types.UserType{
			Username: aws.String(u[0]),
			Enabled:  true,
			Attributes: []types.AttributeType{
				{Name: aws.String("email"), Value: aws.String(u[1])},
			},
		})
	}
	return out
}

func TestPurge_ExcludedUsersSurvive(t *testing.T) {
	c, api := newTestClient(t)

	api.On("ListUsers", mock.Anything, mock.MatchedBy(func(in *idp.ListUsersInput) bool {
		return in.PaginationToken == nil
	})).Return(listPage(aws.String("tok"),
		[2]string{"admin", "admin@example.com"},
		[2]string{"testuser1@example.com", "testuser1@example.com"},
	), nil).Once()
	api.On("ListUsers", mock.Anything, mock.MatchedBy(func(in *idp.ListUsersInput) bool {
		return in.PaginationToken != nil
	})).Return(listPage(nil,
		[2]string{"d4c3b2a1", "ops@example.com"},
		[2]string{"testuser2@example.com", "testuser2@example.com"},
	), nil).Once()

	var deleted []string
	api.On("AdminDeleteUser", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			in := args.Get(1).(*idp.AdminDeleteUserInput)
			deleted = append(deleted, *in.Username)
		}).
		Return(&idp.AdminDeleteUserOutput{}, nil)

	// admin excluded by username, d4c3b2a1 excluded by email.
	excluded := exclude.NewSet([]string{"admin", "ops@example.com"})
	result, err := Purge(context.Background(), c, excluded)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Deleted)
	assert.Equal(t, 2, result.Skipped)
	assert.NotContains(t, deleted, "admin")
	assert.NotContains(t, deleted, "d4c3b2a1")
	api.AssertExpectations(t)
}

func TestPurge_AbortsOnDeleteError(t *testing.T) {
	c, api := newTestClient(t)

	api.On("ListUsers", mock.Anything, mock.Anything).Return(listPage(nil,
		[2]string{"a@example.com", "a@example.com"},
		[2]string{"b@example.com", "b@example.com"},
		[2]string{"c@example.com", "c@example.com"},
	), nil).Once()

	api.On("AdminDeleteUser", mock.Anything, mock.MatchedBy(func(in *idp.AdminDeleteUserInput) bool {
		return *in.Username == "a@example.com"
	})).Return(&idp.AdminDeleteUserOutput{}, nil).Once()
	api.On("AdminDeleteUser", mock.Anything, mock.MatchedBy(func(in *idp.AdminDeleteUserInput) bool {
		return *in.Username == "b@example.com"
	})).Return(nil, &types.InternalErrorException{Message: aws.String("boom")}).Once()

	result, err := Purge(context.Background(), c, exclude.NewSet())

	// The scan stops at the first failure; c is never attempted.
	require.Error(t, err)
	assert.Equal(t, 1, result.Deleted)
	api.AssertExpectations(t)
}

func TestPurge_ListErrorReturnsZeroCounts(t *testing.T) {
	c, api := newTestClient(t)

	api.On("ListUsers", mock.Anything, mock.Anything).
		Return(nil, &types.NotAuthorizedException{Message: aws.String("denied")}).Once()

	result, err := Purge(context.Background(), c, exclude.NewSet())
	require.Error(t, err)
	assert.Zero(t, result.Deleted)
	assert.Zero(t, result.Skipped)
	api.AssertExpectations(t)
}
