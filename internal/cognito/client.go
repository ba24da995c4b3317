// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package cognito

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	idp "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/cogctl/cogctl/internal/log"
)

// DefaultPassword is the permanent password applied to users created without
// an explicit one.
const DefaultPassword = "Password123!"

// DefaultPhone is the placeholder phone number stamped onto created users
// when none is supplied.
const DefaultPhone = "+6587654321"

// Client binds the Cognito admin API to a single user pool.
type Client struct {
	api    API
	poolID string
}

// NewClient returns a Client for the given pool. An empty pool ID is the
// missing-configuration case and maps to exit code 1 at the CLI surface.
func NewClient(api API, poolID string) (*Client, error) {
	if poolID == "" {
		return nil, ErrMissingPoolID
	}
	return &Client{api: api, poolID: poolID}, nil
}

// PoolID returns the bound user pool ID.
func (c *Client) PoolID() string {
	return c.poolID
}

// CreateUser creates a user with verified email and phone attributes,
// suppresses the welcome message, and immediately sets a permanent password.
// The two calls are not transactional; a set-password failure leaves the
// user in FORCE_CHANGE_PASSWORD.
func (c *Client) CreateUser(ctx context.Context, email, phone, password string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if phone == "" {
		phone = DefaultPhone
	}
	if password == "" {
		password = DefaultPassword
	}

	attributes := []types.AttributeType{
		{Name: aws.String("email"), Value: aws.String(email)},
		{Name: aws.String("email_verified"), Value: aws.String("true")},
		{Name: aws.String("phone_number"), Value: aws.String(phone)},
		{Name: aws.String("phone_number_verified"), Value: aws.String("true")},
	}

	input := &idp.AdminCreateUserInput{
		UserPoolId:     aws.String(c.poolID),
		Username:       aws.String(email),
		UserAttributes: attributes,
		MessageAction:  types.MessageActionTypeSuppress, // Don't send welcome email
	}

	if _, err := c.api.AdminCreateUser(ctx, input); err != nil {
		return fmt.Errorf("failed to create user %s: %w", email, err)
	}
	log.Debugf("user created: username=%s", email)

	return c.SetPassword(ctx, email, password)
}

// SetPassword sets a permanent password for the user.
func (c *Client) SetPassword(ctx context.Context, username, password string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	input := &idp.AdminSetUserPasswordInput{
		UserPoolId: aws.String(c.poolID),
		Username:   aws.String(username),
		Password:   aws.String(password),
		Permanent:  true,
	}

	if _, err := c.api.AdminSetUserPassword(ctx, input); err != nil {
		return fmt.Errorf("failed to set password for %s: %w", username, err)
	}
	log.Debugf("password set: username=%s", username)
	return nil
}

// GetUser retrieves a single user with its full attribute list.
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	input := &idp.AdminGetUserInput{
		UserPoolId: aws.String(c.poolID),
		Username:   aws.String(username),
	}

	output, err := c.api.AdminGetUser(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}

	user := userFromAttributes(username, output.Enabled, output.UserStatus,
		output.UserCreateDate, output.UserLastModifiedDate, output.UserAttributes)
	return &user, nil
}

// DeleteUser removes a user from the pool.
func (c *Client) DeleteUser(ctx context.Context, username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	input := &idp.AdminDeleteUserInput{
		UserPoolId: aws.String(c.poolID),
		Username:   aws.String(username),
	}

	if _, err := c.api.AdminDeleteUser(ctx, input); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", username, err)
	}
	log.Debugf("user deleted: username=%s", username)
	return nil
}

// ListUsers lists users in the pool, following the opaque pagination token
// until the service stops returning one. serverFilter is a Cognito filter
// expression (e.g. `email ^= "test"`) applied server-side; empty means no
// filter. limit > 0 caps the number of users returned.
func (c *Client) ListUsers(ctx context.Context, serverFilter string, limit int) ([]User, error) {
	var users []User
	var nextToken *string

	for {
		input := &idp.ListUsersInput{
			UserPoolId:      aws.String(c.poolID),
			PaginationToken: nextToken,
		}
		if serverFilter != "" {
			input.Filter = aws.String(serverFilter)
		}

		output, err := c.api.ListUsers(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}

		for _, cu := range output.Users {
			if cu.Username == nil {
				continue
			}
			users = append(users, userFromAttributes(*cu.Username, cu.Enabled,
				cu.UserStatus, cu.UserCreateDate, cu.UserLastModifiedDate, cu.Attributes))
			if limit > 0 && len(users) >= limit {
				return users, nil
			}
		}

		nextToken = output.PaginationToken
		if nextToken == nil {
			break
		}
	}

	log.Debugf("users listed: count=%d", len(users))
	return users, nil
}

// ListGroups lists all groups in the pool, sorted by name.
func (c *Client) ListGroups(ctx context.Context) ([]Group, error) {
	var groups []Group
	var nextToken *string

	for {
		input := &idp.ListGroupsInput{
			UserPoolId: aws.String(c.poolID),
			NextToken:  nextToken,
		}

		output, err := c.api.ListGroups(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to list groups: %w", err)
		}

		for _, g := range output.Groups {
			if g.GroupName == nil {
				continue
			}
			group := Group{Name: *g.GroupName}
			if g.Description != nil {
				group.Description = *g.Description
			}
			if g.CreationDate != nil {
				group.Created = *g.CreationDate
			}
			groups = append(groups, group)
		}

		nextToken = output.NextToken
		if nextToken == nil {
			break
		}
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups, nil
}

// UserGroups returns the names of the groups the user belongs to.
func (c *Client) UserGroups(ctx context.Context, username string) ([]string, error) {
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	var groups []string
	var nextToken *string

	for {
		input := &idp.AdminListGroupsForUserInput{
			UserPoolId: aws.String(c.poolID),
			Username:   aws.String(username),
			NextToken:  nextToken,
		}

		output, err := c.api.AdminListGroupsForUser(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to list groups for %s: %w", username, err)
		}

		for _, g := range output.Groups {
			if g.GroupName != nil {
				groups = append(groups, *g.GroupName)
			}
		}

		nextToken = output.NextToken
		if nextToken == nil {
			break
		}
	}

	return groups, nil
}

// AddToGroup adds the user to a group.
func (c *Client) AddToGroup(ctx context.Context, username, group string) error {
	input := &idp.AdminAddUserToGroupInput{
		UserPoolId: aws.String(c.poolID),
		Username:   aws.String(username),
		GroupName:  aws.String(group),
	}

	if _, err := c.api.AdminAddUserToGroup(ctx, input); err != nil {
		return fmt.Errorf("failed to add %s to group %s: %w", username, group, err)
	}
	log.Debugf("group membership added: username=%s, group=%s", username, group)
	return nil
}

// RemoveFromGroup removes the user from a group.
func (c *Client) RemoveFromGroup(ctx context.Context, username, group string) error {
	input := &idp.AdminRemoveUserFromGroupInput{
		UserPoolId: aws.String(c.poolID),
		Username:   aws.String(username),
		GroupName:  aws.String(group),
	}

	if _, err := c.api.AdminRemoveUserFromGroup(ctx, input); err != nil {
		return fmt.Errorf("failed to remove %s from group %s: %w", username, group, err)
	}
	log.Debugf("group membership removed: username=%s, group=%s", username, group)
	return nil
}

// UpdateAttributes replaces the given attributes on the user. Attributes not
// named are left untouched by the service.
func (c *Client) UpdateAttributes(ctx context.Context, username string, attrs []Attribute) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if len(attrs) == 0 {
		return fmt.Errorf("no attributes to update")
	}

	attributes := make([]types.AttributeType, 0, len(attrs))
	for _, a := range attrs {
		attributes = append(attributes, types.AttributeType{
			Name:  aws.String(a.Name),
			Value: aws.String(a.Value),
		})
	}

	input := &idp.AdminUpdateUserAttributesInput{
		UserPoolId:     aws.String(c.poolID),
		Username:       aws.String(username),
		UserAttributes: attributes,
	}

	if _, err := c.api.AdminUpdateUserAttributes(ctx, input); err != nil {
		return fmt.Errorf("failed to update attributes for %s: %w", username, err)
	}
	log.Debugf("attributes updated: username=%s, count=%d", username, len(attrs))
	return nil
}

// SetEnabled enables or disables the user account.
func (c *Client) SetEnabled(ctx context.Context, username string, enabled bool) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if enabled {
		input := &idp.AdminEnableUserInput{
			UserPoolId: aws.String(c.poolID),
			Username:   aws.String(username),
		}
		if _, err := c.api.AdminEnableUser(ctx, input); err != nil {
			return fmt.Errorf("failed to enable user %s: %w", username, err)
		}
	} else {
		input := &idp.AdminDisableUserInput{
			UserPoolId: aws.String(c.poolID),
			Username:   aws.String(username),
		}
		if _, err := c.api.AdminDisableUser(ctx, input); err != nil {
			return fmt.Errorf("failed to disable user %s: %w", username, err)
		}
	}

	log.Debugf("enabled flag set: username=%s, enabled=%t", username, enabled)
	return nil
}

// ResetMFA clears both SMS and software-token MFA preferences for the user.
func (c *Client) ResetMFA(ctx context.Context, username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	input := &idp.AdminSetUserMFAPreferenceInput{
		UserPoolId: aws.String(c.poolID),
		Username:   aws.String(username),
		SMSMfaSettings: &types.SMSMfaSettingsType{
			Enabled:      false,
			PreferredMfa: false,
		},
		SoftwareTokenMfaSettings: &types.SoftwareTokenMfaSettingsType{
			Enabled:      false,
			PreferredMfa: false,
		},
	}

	if _, err := c.api.AdminSetUserMFAPreference(ctx, input); err != nil {
		return fmt.Errorf("failed to reset MFA for %s: %w", username, err)
	}
	log.Debugf("mfa reset: username=%s", username)
	return nil
}
