// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters provides filtering capabilities for query result rows.
//
// The package parses filter expressions to select subsets of rows based on
// attribute values. Filters are specified as key-operator-target expressions and
// can be combined using a configurable delimiter (default: comma).
//
// Operators include:
//
//   - = : exact match (supports negation with !=)
//   - ^ : prefix match (supports negation with !^)
//   - ~ : case-insensitive match (supports negation with !~)
//   - < : less than (numeric comparison)
//   - > : greater than (numeric comparison)
//   - @ : contains substring (supports negation with !@)
//   - / : regex match (supports negation with !/)
//
// Examples:
//
//   - "username=alice@example.com" : matches rows where username equals "alice@example.com"
//   - "email^test" : matches rows where email starts with "test"
//   - "status~confirmed" : matches rows where status equals "confirmed" ignoring case
//   - "email!@example.org" : matches rows where email does not contain "example.org"
//
// Filter Keys and Attributes:
//
// Filter keys are matched against the OutputKey of attributes (see attrs package).
// Keys prefixed with underscore (_) are reserved for Cognito server-side filters
// and are silently ignored by this package.
//
// Filter Parsing:
//
// The BuildFilters function parses a comma-delimited (or custom-delimited) filter
// specification string. Invalid specifications (unsupported operands or malformed
// expressions) are logged as warnings and skipped, allowing partial filter sets
// to be processed.
//
// Filter Application:
//
// The FilterDataset function filters a candidate result set, keeping only rows
// that match all provided filter expressions. Attributes specified in the attrs
// parameter are used to determine which fields from the row are included in the
// filtered result.
package filters
