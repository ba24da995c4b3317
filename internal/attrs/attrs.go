// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/cogctl/cogctl/internal/log"
)

// Attr is one output column of a user or group query. A spec like
// `sub::-12` or `.username` from --attrs parses into one of these.
type Attr struct {
	// The JSON key to extract from the marshaled row. Bare keys address the
	// row's Cognito attribute map (e.g. "attributes.sub"); keys written with
	// a leading dot address the row root.
	Key string `yaml:"key" json:"Key"`
	// Should this Attr be included in output or is it just
	// intended for filtering and sorting?
	Include bool `yaml:"include" json:"Include"`
	// The key to use in the output. This is also used as the column title when
	// output=text.
	OutputKey string `yaml:"outputKey" json:"OutputKey"`
	// Transformation spec to apply to the output value.
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
}

// lengthSpec matches the truncation part of a transform spec, e.g. the -12
// in `sub::-12`.
var lengthSpec = regexp.MustCompile(`-?\d+`)

// Transform applies the attribute's transform spec to a value and returns the
// transformed result. Only string values are transformed; Cognito timestamps
// and attribute values all arrive as strings.
func (a *Attr) Transform(value interface{}) interface{} {
	result, ok := value.(string)
	if !ok {
		if mapValue, ok := value.(map[string]interface{}); ok {
			log.Tracef("map value: value=%v", value)
			return mapValue
		}
		log.Tracef("non-string value: value=%v", value)
		return value
	}

	// t renders timestamps (created/modified) in local time, T as relative
	// "time ago". A value that doesn't parse as RFC3339 passes through
	// untouched, skipping the remaining transforms.
	if strings.ContainsAny(a.TransformSpec, "tT") {
		localized, ok := localizeTime(result, strings.Contains(a.TransformSpec, "T"))
		if !ok {
			return result
		}
		result = localized
	}

	result = a.applyCase(result)
	return a.applyLength(result)
}

// localizeTime converts an RFC3339 timestamp into the system zone, either as
// a formatted local time or a humanized relative one.
func localizeTime(value string, relative bool) (string, bool) {
	now := time.Now()
	tz, _ := now.In(time.Local).Zone()
	if tz == "" {
		return "", false
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return "", false
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "", false
	}

	local := t.In(loc)
	if relative {
		log.Tracef("time ago: value=%s", value)
		return humanize.Time(local), true
	}
	log.Tracef("time local: value=%s", value)
	return local.Format("2006-01-02T15:04:05MST"), true
}

// applyCase upper- or lower-cases the value. Whichever case letter appears
// LAST in the spec wins, so a global `*::U` prepended onto `email::l` still
// yields lower case.
func (a *Attr) applyCase(result string) string {
	lastL := strings.LastIndexAny(a.TransformSpec, "lL")
	lastU := strings.LastIndexAny(a.TransformSpec, "uU")

	if lastL > lastU {
		result = strings.ToLower(result)
		log.Tracef("case lower: result=%s", result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
		log.Tracef("case upper: result=%s", result)
	}

	return result
}

// applyLength truncates the value per the last numeric part of the spec. A
// positive N keeps the first N characters. A negative N keeps the ends and
// elides the middle, which is how long opaque values like a sub UUID stay
// recognizable in narrow columns.
func (a *Attr) applyLength(result string) string {
	if a.TransformSpec == "" {
		return result
	}

	match := lengthSpec.FindAllString(a.TransformSpec, -1)
	if len(match) == 0 {
		return result
	}

	// The last match overrides, same rule as case.
	l, _ := strconv.Atoi(match[len(match)-1])
	abs := int(math.Abs(float64(l)))
	if len(result) <= abs {
		return result
	}

	if l < 0 {
		keep := abs/2 - 1
		result = result[0:keep] + ".." + result[len(result)-keep:]
		log.Tracef("length middle: result=%s", result)
	} else {
		result = result[:l]
		log.Tracef("length trunc: result=%s", result)
	}

	return result
}

// AttrList is a collection of Attr used to shape output fields.
type AttrList []Attr

// Set parses each spec from --attrs and adds it to the AttrList. Specs are
// comma-separated; each is key[:outputKey[:transformSpec]]. Bare keys map
// into the row's attribute map, dotted keys into the row root, so
// `.username,sub::-12,created::T` is a typical user-query value.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		log.Debugf("early return: value=%s", value)
		return nil
	}

	const (
		keyIdx = iota
		outputIdx
		transformIdx
	)

	specs := strings.Split(value, ",")
	log.Debugf("specs split: specs=%v", specs)
specloop:
	for _, spec := range specs {

		// Include by default; a leading ! keeps the attr available for
		// filtering and sorting but out of the rendered output.
		attr := Attr{
			Include: true,
		}

		parts := strings.Split(spec, ":")

		attr.Key = strings.TrimSpace(parts[keyIdx])
		if strings.HasPrefix(attr.Key, "!") {
			attr.Include = false
			attr.Key = attr.Key[1:]
		}

		// `*` carries a global transform spec, never a column.
		if attr.Key == "*" {
			attr.Include = false
		}
		log.Tracef("key parsed: key=%s, include=%v", attr.Key, attr.Include)

		// The output key defaults to the last dotted segment of the key, so
		// "attributes.sub" titles its column "sub".
		if len(parts) == 1 {
			segments := strings.Split(attr.Key, ".")
			attr.OutputKey = segments[len(segments)-1]
		} else {
			if parts[outputIdx] != "" {
				attr.OutputKey = strings.TrimSpace(parts[outputIdx])
			} else {
				attr.OutputKey = attr.Key
			}
		}
		log.Tracef("output set: outputKey=%s", attr.OutputKey)

		attr.TransformSpec = ""
		if len(parts) > transformIdx {
			attr.TransformSpec = strings.TrimSpace(parts[transformIdx])
		}
		log.Tracef("transform set: spec=%s", attr.TransformSpec)

		// A spec naming an attr already in the list (a command default, or a
		// double entry) updates it in place rather than adding a column.
		for i := range *a {
			if (*a)[i].Key == attr.Key || (*a)[i].OutputKey == attr.Key {
				(*a)[i].Include = attr.Include
				(*a)[i].OutputKey = attr.OutputKey
				(*a)[i].TransformSpec = attr.TransformSpec
				log.Tracef("existing updated: i=%d", i)
				continue specloop
			}
		}

		// Root keys are written ".username"; everything else addresses the
		// Cognito attribute map.
		if strings.HasPrefix(attr.Key, ".") {
			attr.Key = attr.Key[1:]
		} else if attr.Key != "*" {
			attr.Key = "attributes." + attr.Key
		}
		log.Tracef("key fixed: key=%s", attr.Key)

		*a = append(*a, attr)
		log.Tracef("attr appended: len=%d", len(*a))

	}

	return nil
}

// SetGlobalTransformSpec prepends the `*` entry's transform spec, if any,
// onto every attr in the list. Per-attr specs come later in the combined
// string and therefore win.
func (a *AttrList) SetGlobalTransformSpec() error {
	spec := ""

	// If there is more than one global entry, the first wins.
	for attr := range *a {
		if (*a)[attr].Key == "*" {
			spec = (*a)[attr].TransformSpec
			break
		}
	}
	log.Debugf("global spec: spec=%s", spec)

	if spec == "" {
		log.Debugf("no global spec")
		return nil
	}

	for attr := range *a {
		(*a)[attr].TransformSpec = spec + "," + (*a)[attr].TransformSpec
	}
	log.Debugf("specs prepended")

	return nil
}

// String renders the AttrList back in --attrs flag form.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		result = append(result, fmt.Sprintf("%s:%s:%s", attr.Key, attr.OutputKey, attr.TransformSpec))
	}

	resultStr := strings.Join(result, ",")
	log.Debugf("string built: result=%s", resultStr)
	return resultStr
}

// Type returns the flag type for use with the flag.Value interface.
func (a *AttrList) Type() string { return "list" }
