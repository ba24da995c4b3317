// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"

	"github.com/cogctl/cogctl/internal/attrs"
)

func TestSortDataset(t *testing.T) {
	testData := []map[string]interface{}{
		{"username": "zoe@example.com", "logins": 3.0, "status": "CONFIRMED"},
		{"username": "alice@example.com", "logins": 1.0, "status": "FORCE_CHANGE_PASSWORD"},
		{"username": "bob@example.com", "logins": 2.0, "status": "CONFIRMED"},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{
			name:      "ascending by username",
			spec:      "username",
			wantOrder: []string{"alice@example.com", "bob@example.com", "zoe@example.com"},
		},
		{
			name:      "descending by username",
			spec:      "-username",
			wantOrder: []string{"zoe@example.com", "bob@example.com", "alice@example.com"},
		},
		{
			name:      "ascending by numeric field",
			spec:      "logins",
			wantOrder: []string{"alice@example.com", "bob@example.com", "zoe@example.com"},
		},
		{
			name:      "descending by numeric field",
			spec:      "-logins",
			wantOrder: []string{"zoe@example.com", "bob@example.com", "alice@example.com"},
		},
		{
			name:      "case sensitive",
			spec:      "!username",
			wantOrder: []string{"alice@example.com", "bob@example.com", "zoe@example.com"},
		},
		{
			name:      "multiple fields",
			spec:      "status,username",
			wantOrder: []string{"bob@example.com", "zoe@example.com", "alice@example.com"},
		},
		{
			name:      "empty spec preserves order",
			spec:      "",
			wantOrder: []string{"zoe@example.com", "alice@example.com", "bob@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]map[string]interface{}, len(testData))
			copy(data, testData)
			SortDataset(data, tt.spec)
			for i, expected := range tt.wantOrder {
				assert.Equal(t, expected, data[i]["username"], "at index %d", i)
			}
		})
	}
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{
			name:  "string",
			value: "hello",
			want:  "hello",
		},
		{
			name:  "int",
			value: 42,
			want:  "42",
		},
		{
			name:  "float64",
			value: 42.5,
			want:  "42",
		},
		{
			name:  "float64 with decimal",
			value: 42.7,
			want:  "43",
		},
		{
			name:  "bool true",
			value: true,
			want:  "true",
		},
		{
			name:  "bool false is zero value",
			value: false,
			want:  "",
		},
		{
			name:  "nil default",
			value: nil,
			want:  "",
		},
		{
			name:     "nil custom",
			value:    nil,
			emptyVal: "-",
			want:     "-",
		},
		{
			name:  "slice",
			value: []string{"a", "b"},
			want:  `["a","b"]`,
		},
		{
			name:  "map",
			value: map[string]int{"x": 1},
			want:  `{"x":1}`,
		},
		{
			name:  "zero value int",
			value: 0,
			want:  "",
		},
		{
			name:     "zero value with custom empty",
			value:    0,
			emptyVal: "N/A",
			want:     "N/A",
		},
		{
			name:  "nested slice",
			value: []interface{}{1, "two", true},
			want:  `[1,"two",true]`,
		},
		{
			name:  "negative number",
			value: -42.0,
			want:  "-42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetColors(t *testing.T) {
	header, even, odd := getColors("colors")

	assert.NotNil(t, header)
	assert.NotNil(t, even)
	assert.NotNil(t, odd)
}

// newTestCommand builds a cli.Command carrying the output flags SliceDiceSpit
// and TableWriter read.
func newTestCommand(output, filter, sort string, titles bool) *cli.Command {
	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: output},
			&cli.StringFlag{Name: "filter", Value: filter},
			&cli.StringFlag{Name: "sort", Value: sort},
			&cli.BoolFlag{Name: "local"},
			&cli.BoolFlag{Name: "color"},
			&cli.BoolFlag{Name: "titles", Value: titles},
			&cli.IntFlag{Name: "padding", Value: 2},
		},
	}
	cmd.Metadata = make(map[string]interface{})
	return cmd
}

func TestTableWriter(t *testing.T) {
	userAttrs := attrs.AttrList{
		{Key: "username", OutputKey: "username", Include: true},
		{Key: "status", OutputKey: "status", Include: true},
		{Key: "attributes.sub", OutputKey: "sub", Include: false},
	}

	tests := []struct {
		name        string
		resultSet   []map[string]interface{}
		wantContain []string
		wantAbsent  []string
	}{
		{
			name:      "empty result set renders nothing",
			resultSet: []map[string]interface{}{},
		},
		{
			name: "rows and titles are rendered",
			resultSet: []map[string]interface{}{
				{"username": "alice@example.com", "status": "CONFIRMED", "sub": "0b1c2d3e"},
			},
			wantContain: []string{"username", "status", "alice@example.com", "CONFIRMED"},
			wantAbsent:  []string{"0b1c2d3e"},
		},
		{
			name: "missing values render as dash",
			resultSet: []map[string]interface{}{
				{"username": "bob@example.com"},
			},
			wantContain: []string{"bob@example.com", "-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			cmd := newTestCommand("text", "", "", true)

			TableWriter(tt.resultSet, userAttrs, cmd, buf)

			if len(tt.resultSet) == 0 {
				assert.Empty(t, buf.String())
				return
			}
			for _, want := range tt.wantContain {
				assert.Contains(t, buf.String(), want)
			}
			for _, absent := range tt.wantAbsent {
				assert.NotContains(t, buf.String(), absent)
			}
		})
	}
}

func TestTableWriterHeaderFooter(t *testing.T) {
	buf := new(bytes.Buffer)
	cmd := newTestCommand("text", "", "", false)
	cmd.Metadata["header"] = "pool ap-southeast-1_AbCdEfGhI"
	cmd.Metadata["footer"] = "1 user"

	TableWriter([]map[string]interface{}{
		{"username": "alice@example.com", "status": "CONFIRMED"},
	}, attrs.AttrList{
		{Key: "username", OutputKey: "username", Include: true},
		{Key: "status", OutputKey: "status", Include: true},
	}, cmd, buf)

	assert.Contains(t, buf.String(), "pool ap-southeast-1_AbCdEfGhI")
	assert.Contains(t, buf.String(), "1 user")
}

func TestSliceDiceSpit(t *testing.T) {
	userJSON := `{
		"users": [
			{"username": "alice@example.com", "status": "CONFIRMED", "attributes": {"sub": "1111"}},
			{"username": "testuser1@example.com", "status": "CONFIRMED", "attributes": {"sub": "2222"}},
			{"username": "bob@example.com", "status": "FORCE_CHANGE_PASSWORD", "attributes": {"sub": "3333"}}
		]
	}`

	newAttrs := func() attrs.AttrList {
		return attrs.AttrList{
			{Key: "username", OutputKey: "username", Include: true},
			{Key: "status", OutputKey: "status", Include: true},
			{Key: "attributes.sub", OutputKey: "sub", Include: true},
		}
	}

	t.Run("raw output dumps the payload", func(t *testing.T) {
		buf := new(bytes.Buffer)
		cmd := newTestCommand("raw", "", "", true)

		SliceDiceSpit(*bytes.NewBufferString(userJSON), newAttrs(), cmd, "users", buf, nil)

		assert.Equal(t, userJSON, buf.String())
	})

	t.Run("parent key selects the dataset", func(t *testing.T) {
		buf := new(bytes.Buffer)
		cmd := newTestCommand("text", "", "", true)

		SliceDiceSpit(*bytes.NewBufferString(userJSON), newAttrs(), cmd, "users", buf, nil)

		assert.Contains(t, buf.String(), "alice@example.com")
		assert.Contains(t, buf.String(), "1111")
	})

	t.Run("filter trims the dataset", func(t *testing.T) {
		buf := new(bytes.Buffer)
		cmd := newTestCommand("text", "username^test", "", true)

		SliceDiceSpit(*bytes.NewBufferString(userJSON), newAttrs(), cmd, "users", buf, nil)

		assert.Contains(t, buf.String(), "testuser1@example.com")
		assert.NotContains(t, buf.String(), "alice@example.com")
	})

	t.Run("sort orders the dataset", func(t *testing.T) {
		buf := new(bytes.Buffer)
		cmd := newTestCommand("text", "", "-username", true)

		SliceDiceSpit(*bytes.NewBufferString(userJSON), newAttrs(), cmd, "users", buf, nil)

		out := buf.String()
		assert.Less(t, bytes.Index([]byte(out), []byte("testuser1@example.com")),
			bytes.Index([]byte(out), []byte("alice@example.com")))
	})

	t.Run("postProcess can rewrite rows", func(t *testing.T) {
		buf := new(bytes.Buffer)
		cmd := newTestCommand("text", "username^alice", "", true)

		SliceDiceSpit(*bytes.NewBufferString(userJSON), newAttrs(), cmd, "users", buf,
			func(rows []map[string]interface{}) error {
				for _, row := range rows {
					row["status"] = "REDACTED"
				}
				return nil
			})

		assert.Contains(t, buf.String(), "REDACTED")
		assert.NotContains(t, buf.String(), "CONFIRMED")
	})
}

func BenchmarkSortDataset(b *testing.B) {
	testData := []map[string]interface{}{
		{"username": "zoe@example.com", "logins": 3.0},
		{"username": "alice@example.com", "logins": 1.0},
		{"username": "bob@example.com", "logins": 2.0},
	}

	spec := "username"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data := make([]map[string]interface{}, len(testData))
		copy(data, testData)
		SortDataset(data, spec)
	}
}

func BenchmarkInterfaceToString(b *testing.B) {
	values := []interface{}{
		"string",
		42,
		42.5,
		true,
		nil,
		[]string{"a", "b"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range values {
			InterfaceToString(v)
		}
	}
}
