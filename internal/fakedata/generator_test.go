package fakedata

import (
	"bytes"
	"log/slog"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
	"github.com/maruel/notion-random-data/internal/notion"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestGenerator(seed int64) *Generator {
	g := New(gofakeit.New(seed))
	g.now = func() time.Time { return fixedNow }
	return g
}

func options(names ...string) *notion.SelectConfig {
	cfg := &notion.SelectConfig{}
	for _, n := range names {
		cfg.Options = append(cfg.Options, notion.SelectOption{ID: "id-" + n, Name: n, Color: "blue"})
	}
	return cfg
}

func writableSchema() map[string]notion.DBProperty {
	return map[string]notion.DBProperty{
		"Name":  {ID: "title", Type: notion.TypeTitle},
		"Notes": {ID: "n1", Type: notion.TypeRichText},
		"Due":   {ID: "d1", Type: notion.TypeDate},
		"Tags":  {ID: "t1", Type: notion.TypeMultiSelect, MultiSelect: options("a", "b", "c")},
		"State": {ID: "s1", Type: notion.TypeSelect, Select: options("open", "closed")},
		"Email": {ID: "e1", Type: notion.TypeEmail},
		"Site":  {ID: "u1", Type: notion.TypeURL},
		"Phone": {ID: "p1", Type: notion.TypePhoneNumber},
		"Done":  {ID: "c1", Type: notion.TypeCheckbox},
		"Score": {ID: "num", Type: notion.TypeNumber},
	}
}

// captureLogs routes the default logger to a buffer for the test duration.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestProperties(t *testing.T) {
	t.Run("TypeMatches", func(t *testing.T) {
		schema := writableSchema()
		got := newTestGenerator(1).Properties(t.Context(), schema)
		if len(got) != len(schema) {
			t.Fatalf("expected %d values, got %d", len(schema), len(got))
		}
		for name, def := range schema {
			v, ok := got[name]
			if !ok {
				t.Errorf("%s: missing", name)
				continue
			}
			if v.Type != def.Type {
				t.Errorf("%s: type %q, want %q", name, v.Type, def.Type)
			}
			if v.ID != def.ID {
				t.Errorf("%s: id %q, want %q", name, v.ID, def.ID)
			}
		}
	})

	t.Run("Payloads", func(t *testing.T) {
		got := newTestGenerator(2).Properties(t.Context(), writableSchema())
		if e := *got["Email"].Email; !strings.Contains(e, "@") {
			t.Errorf("email %q", e)
		}
		if u, err := url.Parse(*got["Site"].URL); err != nil || u.Scheme == "" || u.Host == "" {
			t.Errorf("url %q: %v", *got["Site"].URL, err)
		}
		if *got["Phone"].PhoneNumber == "" {
			t.Error("empty phone number")
		}
		if got["Done"].Checkbox == nil {
			t.Error("nil checkbox")
		}
		if got["Score"].Number == nil {
			t.Error("nil number")
		}
		title := got["Name"].Title
		if len(title) != 1 || title[0].Type != "text" || len(strings.Fields(title[0].Text.Content)) != 3 {
			t.Errorf("title %+v", title)
		}
		notes := got["Notes"].RichText
		if len(notes) != 1 || notes[0].Text.Content == "" {
			t.Errorf("rich text %+v", notes)
		}
		if n := len(got["Tags"].MultiSelect); n != 1 {
			t.Errorf("expected one tag, got %d", n)
		}
	})

	t.Run("DateInPast", func(t *testing.T) {
		g := newTestGenerator(3)
		schema := map[string]notion.DBProperty{"Due": {Type: notion.TypeDate}}
		for range 50 {
			v := g.Properties(t.Context(), schema)["Due"]
			d, err := time.Parse(time.RFC3339, v.Date.Start)
			if err != nil {
				t.Fatal(err)
			}
			if d.After(fixedNow) || d.Before(fixedNow.AddDate(-1, 0, -1)) {
				t.Errorf("date %s outside of the past year", d)
			}
		}
	})

	t.Run("OptionMembership", func(t *testing.T) {
		g := newTestGenerator(4)
		schema := map[string]notion.DBProperty{
			"State": {Type: notion.TypeSelect, Select: options("open", "closed", "blocked")},
			"Tags":  {Type: notion.TypeMultiSelect, MultiSelect: options("x", "y")},
		}
		allowed := map[notion.SelectOption]bool{}
		for _, o := range schema["State"].Select.Options {
			allowed[o] = true
		}
		for _, o := range schema["Tags"].MultiSelect.Options {
			allowed[o] = true
		}
		seen := map[string]bool{}
		for range 300 {
			got := g.Properties(t.Context(), schema)
			s := *got["State"].Select
			if !allowed[s] {
				t.Fatalf("select %+v not in options", s)
			}
			seen[s.Name] = true
			for _, o := range got["Tags"].MultiSelect {
				if !allowed[o] {
					t.Fatalf("multi_select %+v not in options", o)
				}
				seen[o.Name] = true
			}
		}
		if len(seen) != 5 {
			t.Errorf("expected every option to be drawn, saw %v", seen)
		}
	})

	t.Run("EmptyOptions", func(t *testing.T) {
		g := newTestGenerator(5)
		schema := map[string]notion.DBProperty{
			"State": {Type: notion.TypeSelect, Select: &notion.SelectConfig{}},
		}
		if got := g.Properties(t.Context(), schema); len(got) != 0 {
			t.Errorf("expected no values, got %+v", got)
		}
		schema = map[string]notion.DBProperty{
			"Tags":  {Type: notion.TypeMultiSelect},
			"State": {Type: notion.TypeSelect, Select: &notion.SelectConfig{}},
		}
		if got := g.Properties(t.Context(), schema); len(got) != 0 {
			t.Errorf("expected no values, got %+v", got)
		}
	})

	t.Run("SkipsUnsupported", func(t *testing.T) {
		g := newTestGenerator(6)
		schema := map[string]notion.DBProperty{
			"Total":   {Type: notion.TypeFormula},
			"Sum":     {Type: notion.TypeRollup},
			"Owner":   {Type: notion.TypePeople},
			"Created": {Type: notion.TypeCreatedTime},
			"Action":  {Type: "button"},
			"Done":    {Type: notion.TypeCheckbox},
		}
		logs := captureLogs(t)
		got := g.Properties(t.Context(), schema)
		if len(got) != 1 {
			t.Fatalf("expected only Done, got %+v", got)
		}
		if _, ok := got["Done"]; !ok {
			t.Error("missing Done")
		}
		out := logs.String()
		for _, want := range []string{
			`msg="unimplemented property type" property=Action type=button`,
			`msg="read-only property type" property=Total type=formula`,
			`msg="read-only property type" property=Created type=created_time`,
		} {
			if !strings.Contains(out, want) {
				t.Errorf("missing log %q in:\n%s", want, out)
			}
		}
	})

	t.Run("Reproducible", func(t *testing.T) {
		a := newTestGenerator(42).Properties(t.Context(), writableSchema())
		b := newTestGenerator(42).Properties(t.Context(), writableSchema())
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("same seed, different output (-a +b):\n%s", diff)
		}
	})
}
