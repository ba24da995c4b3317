// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package cognito

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// Attribute is a single name/value user attribute as stored by the pool.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// User is the local projection of a pool user. It lives only for the
// duration of a single listing or screen render; the service owns the
// record.
type User struct {
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Status        string      `json:"status"`
	Enabled       bool        `json:"enabled"`
	EmailVerified bool        `json:"emailVerified"`
	PhoneVerified bool        `json:"phoneVerified"`
	Created       time.Time   `json:"created"`
	Modified      time.Time   `json:"modified"`
	Attributes    []Attribute `json:"attributes,omitempty"`
}

// Group is a named collection of usernames; membership is owned remotely.
type Group struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
}

// Attr returns the value of the named attribute, or "" when absent.
func (u *User) Attr(name string) string {
	for _, a := range u.Attributes {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// userFromAttributes builds a User from the attribute list shared by
// ListUsers rows and AdminGetUser responses.
func userFromAttributes(username string, enabled bool, status types.UserStatusType,
	created, modified *time.Time, attrs []types.AttributeType) User {

	u := User{
		Username: username,
		Enabled:  enabled,
		Status:   string(status),
	}
	if created != nil {
		u.Created = *created
	}
	if modified != nil {
		u.Modified = *modified
	}

	for _, attr := range attrs {
		if attr.Name == nil {
			continue
		}
		value := ""
		if attr.Value != nil {
			value = *attr.Value
		}
		u.Attributes = append(u.Attributes, Attribute{Name: *attr.Name, Value: value})

		switch *attr.Name {
		case "email":
			u.Email = value
		case "phone_number":
			u.Phone = value
		case "email_verified":
			u.EmailVerified = value == "true"
		case "phone_number_verified":
			u.PhoneVerified = value == "true"
		}
	}

	return u
}
