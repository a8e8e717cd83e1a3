// Package fakedata generates random property values matching a Notion
// database schema.
package fakedata

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/maruel/notion-random-data/internal/notion"
)

// Generator creates fake property values.
type Generator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// New returns a generator drawing from f. A nil f uses a randomly seeded
// faker.
func New(f *gofakeit.Faker) *Generator {
	if f == nil {
		f = gofakeit.New(0)
	}
	return &Generator{faker: f, now: time.Now}
}

// Properties returns one random value per writable property in the schema.
//
// Read-only and unknown property types are skipped, as are select and
// multi_select properties without options. It never fails.
func (g *Generator) Properties(ctx context.Context, schema map[string]notion.DBProperty) map[string]notion.InputPropertyValue {
	out := make(map[string]notion.InputPropertyValue, len(schema))
	// Sorted so that a seeded faker always yields the same record.
	for _, name := range slices.Sorted(maps.Keys(schema)) {
		prop := schema[name]
		v, ok := g.value(&prop)
		if !ok {
			switch {
			case prop.Type == notion.TypeSelect || prop.Type == notion.TypeMultiSelect:
				slog.DebugContext(ctx, "no option to pick", "property", name, "type", prop.Type)
			case prop.Type.Known():
				slog.InfoContext(ctx, "read-only property type", "property", name, "type", prop.Type)
			default:
				slog.InfoContext(ctx, "unimplemented property type", "property", name, "type", prop.Type)
			}
			continue
		}
		out[name] = v
	}
	return out
}

// value returns a random value for prop. The returned Type always equals
// prop.Type.
func (g *Generator) value(prop *notion.DBProperty) (notion.InputPropertyValue, bool) {
	v := notion.InputPropertyValue{ID: prop.ID, Type: prop.Type}
	f := g.faker
	switch prop.Type {
	case notion.TypeDate:
		now := g.now()
		t := f.DateRange(now.AddDate(-1, 0, 0), now)
		v.Date = &notion.DateValue{Start: t.UTC().Format(time.RFC3339)}
	case notion.TypeSelect:
		o, ok := g.pick(prop.Select)
		if !ok {
			return v, false
		}
		v.Select = &o
	case notion.TypeMultiSelect:
		o, ok := g.pick(prop.MultiSelect)
		if !ok {
			return v, false
		}
		v.MultiSelect = []notion.SelectOption{o}
	case notion.TypeEmail:
		s := f.Email()
		v.Email = &s
	case notion.TypeURL:
		s := f.URL()
		v.URL = &s
	case notion.TypePhoneNumber:
		s := f.Phone()
		v.PhoneNumber = &s
	case notion.TypeCheckbox:
		b := f.Bool()
		v.Checkbox = &b
	case notion.TypeNumber:
		n := float64(f.Int32())
		v.Number = &n
	case notion.TypeTitle:
		words := []string{f.LoremIpsumWord(), f.LoremIpsumWord(), f.LoremIpsumWord()}
		v.Title = notion.Text(strings.Join(words, " "))
	case notion.TypeRichText:
		v.RichText = notion.Text(f.FirstName())
	default:
		return v, false
	}
	return v, true
}

// pick returns an option chosen uniformly at random.
func (g *Generator) pick(cfg *notion.SelectConfig) (notion.SelectOption, bool) {
	if cfg == nil || len(cfg.Options) == 0 {
		return notion.SelectOption{}, false
	}
	return cfg.Options[g.faker.Number(0, len(cfg.Options)-1)], true
}
