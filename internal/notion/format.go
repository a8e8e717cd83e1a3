// Renders property values as display strings.

package notion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Missing is rendered in place of an absent value.
const Missing = "???"

// isoLayout is ISO 8601 in UTC with millisecond precision.
const isoLayout = "2006-01-02T15:04:05.000Z"

// FormatValue returns the display string of a property value.
//
// It panics if the value's type is not in AllPropertyTypes, or if a formula
// or rollup carries an unknown result type: the set is closed and a missing
// case is a bug, not bad data.
func FormatValue(pv *PropertyValue) string {
	switch pv.Type {
	case TypeCheckbox:
		if pv.Checkbox == nil {
			return "false"
		}
		return strconv.FormatBool(*pv.Checkbox)
	case TypeCreatedBy:
		return formatPerson(pv.CreatedBy)
	case TypeLastEditedBy:
		return formatPerson(pv.LastEditedBy)
	case TypePeople:
		return joinEach(pv.People, func(p *Person) string { return formatPerson(p) })
	case TypeCreatedTime:
		return formatTime(pv.CreatedTime)
	case TypeLastEditedTime:
		return formatTime(pv.LastEditedTime)
	case TypeDate:
		return formatDate(pv.Date)
	case TypeEmail:
		return formatString(pv.Email)
	case TypeURL:
		return formatString(pv.URL)
	case TypePhoneNumber:
		return formatString(pv.PhoneNumber)
	case TypeNumber:
		return formatNumber(pv.Number)
	case TypeSelect:
		return formatOption(pv.Select)
	case TypeStatus:
		return formatOption(pv.Status)
	case TypeMultiSelect:
		return joinEach(pv.MultiSelect, formatOption)
	case TypeTitle:
		return richTextToPlain(pv.Title)
	case TypeRichText:
		return richTextToPlain(pv.RichText)
	case TypeFiles:
		return joinEach(pv.Files, func(f *FileValue) string { return f.Name })
	case TypeRelation:
		return joinEach(pv.Relation, func(r *RelationValue) string { return r.ID })
	case TypeUniqueID:
		return formatUniqueID(pv.UniqueID)
	case TypeFormula:
		return formatFormula(pv.Formula)
	case TypeRollup:
		return formatRollup(pv.Rollup)
	}
	panic(fmt.Sprintf("notion: unhandled property type %q", pv.Type))
}

func formatFormula(f *FormulaValue) string {
	if f == nil {
		return Missing
	}
	switch f.Type {
	case FormulaString:
		if f.String == nil || *f.String == "" {
			return Missing
		}
		return *f.String
	case FormulaNumber:
		return formatNumber(f.Number)
	case FormulaBoolean:
		if f.Boolean == nil {
			return "false"
		}
		return strconv.FormatBool(*f.Boolean)
	case FormulaDate:
		return formatDate(f.Date)
	}
	panic(fmt.Sprintf("notion: unhandled formula type %q", f.Type))
}

func formatRollup(r *RollupValue) string {
	if r == nil {
		return Missing
	}
	switch r.Type {
	case RollupNumber:
		return formatNumber(r.Number)
	case RollupDate:
		return formatDate(r.Date)
	case RollupArray:
		if len(r.Array) == 0 || string(r.Array) == "null" {
			return "[]"
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, r.Array); err != nil {
			return string(r.Array)
		}
		return buf.String()
	case RollupIncomplete, RollupUnsupported:
		return Missing
	}
	panic(fmt.Sprintf("notion: unhandled rollup type %q", r.Type))
}

// formatPerson returns "<id>: <name>".
func formatPerson(p *Person) string {
	if p == nil {
		return Missing
	}
	name := p.Name
	if name == "" {
		name = "Unknown Name"
	}
	return p.ID + ": " + name
}

func formatOption(o *SelectOption) string {
	if o == nil {
		return Missing
	}
	return o.ID + " " + o.Name
}

func formatString(s *string) string {
	if s == nil {
		return Missing
	}
	return *s
}

func formatNumber(f *float64) string {
	if f == nil {
		return Missing
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return Missing
	}
	return t.UTC().Format(isoLayout)
}

func formatDate(d *DateValue) string {
	if d == nil || d.Start == "" {
		return Missing
	}
	t, ok := parseDate(d.Start)
	if !ok {
		return d.Start
	}
	return formatTime(&t)
}

func formatUniqueID(u *UniqueIDValue) string {
	if u == nil {
		return Missing
	}
	n := strconv.Itoa(u.Number)
	if u.Prefix != nil && *u.Prefix != "" {
		return *u.Prefix + "-" + n
	}
	return n
}

// parseDate parses a Notion date string.
// Date-only values are parsed as midnight UTC.
func parseDate(s string) (time.Time, bool) {
	// Datetime format first: "2025-10-22T12:30:00.000Z"
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// richTextToPlain joins the plain text of each segment.
func richTextToPlain(rt []RichText) string {
	return joinEach(rt, func(r *RichText) string { return r.PlainText })
}

func joinEach[T any](items []T, f func(*T) string) string {
	parts := make([]string, 0, len(items))
	for i := range items {
		parts = append(parts, f(&items[i]))
	}
	return strings.Join(parts, ", ")
}
