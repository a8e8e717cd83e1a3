// Package seeder fills a Notion database with generated rows and prints the
// rows created by the run.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/maruel/notion-random-data/internal/fakedata"
	"github.com/maruel/notion-random-data/internal/notion"
)

// DefaultCount is the number of pages created when Options.Count is zero.
const DefaultCount = 10

// ErrNoDatabases is returned when no database is shared with the integration.
var ErrNoDatabases = errors.New("this integration doesn't have access to any databases")

// API is the subset of the Notion API used by the seeder.
//
// *notion.Client implements it.
type API interface {
	SearchDatabases(ctx context.Context) ([]notion.Database, error)
	GetDatabase(ctx context.Context, id string) (*notion.Database, error)
	CreatePage(ctx context.Context, req *notion.CreatePageRequest) (*notion.Page, error)
	QueryDatabase(ctx context.Context, databaseID string, opts *notion.QueryOptions) (*notion.QueryResponse, error)
}

// Options controls a run.
type Options struct {
	// DatabaseID is the database to fill. Empty selects the first database
	// returned by search.
	DatabaseID string
	// Count is the number of pages to create; 0 means DefaultCount.
	Count int
}

// Stats summarizes a run.
type Stats struct {
	DatabaseID string        `json:"database_id"`
	Created    int           `json:"created"`
	New        int           `json:"new"`
	Old        int           `json:"old"`
	Duration   time.Duration `json:"duration"`
}

// Seeder runs the generate, write, read back sequence.
type Seeder struct {
	api    API
	gen    *fakedata.Generator
	report Reporter
	now    func() time.Time
}

// New returns a Seeder. A nil gen uses a randomly seeded generator and a nil
// report discards output.
func New(api API, gen *fakedata.Generator, report Reporter) *Seeder {
	if gen == nil {
		gen = fakedata.New(nil)
	}
	if report == nil {
		report = &NullReporter{}
	}
	return &Seeder{api: api, gen: gen, report: report, now: time.Now}
}

// Run creates opts.Count pages in the database then reports the pages
// created since the run started.
//
// Calls are strictly sequential. The first failing call aborts the run.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Stats, error) {
	if opts.Count <= 0 {
		opts.Count = DefaultCount
	}
	dbID := opts.DatabaseID
	if dbID == "" {
		dbs, err := s.api.SearchDatabases(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list databases: %w", err)
		}
		if len(dbs) == 0 {
			return nil, ErrNoDatabases
		}
		dbID = dbs[0].ID
		slog.InfoContext(ctx, "Using first accessible database", "id", dbID, "found", len(dbs))
	}

	db, err := s.api.GetDatabase(ctx, dbID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve database %s: %w", dbID, err)
	}
	s.report.OnDatabase(db)

	start := s.now()
	stats := &Stats{DatabaseID: db.ID}
	for i := range opts.Count {
		props := s.gen.Properties(ctx, db.Properties)
		page, err := s.api.CreatePage(ctx, notion.NewDatabasePage(db.ID, props))
		if err != nil {
			return nil, fmt.Errorf("failed to create page %d/%d: %w", i+1, opts.Count, err)
		}
		stats.Created++
		slog.DebugContext(ctx, "Created page", "id", page.ID, "n", i+1, "properties", len(props))
		s.report.OnCreated(i+1, opts.Count, page)
	}

	resp, err := s.api.QueryDatabase(ctx, db.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query database %s: %w", db.ID, err)
	}
	if resp.HasMore {
		slog.WarnContext(ctx, "Query returned a partial result; only the first page is shown", "rows", len(resp.Results))
	}

	fresh, old := Partition(resp.Results, start)
	if stats.Created > 0 && len(fresh) == 0 {
		slog.WarnContext(ctx, "None of the created pages is newer than the run start; Notion truncates created_time to the minute", "created", stats.Created, "start", start)
	}
	for i := range fresh {
		p := &fresh[i]
		s.report.OnNewPage(p)
		for _, name := range slices.Sorted(maps.Keys(p.Properties)) {
			pv := p.Properties[name]
			s.report.OnProperty(name, &pv)
		}
	}
	stats.New = len(fresh)
	stats.Old = old
	stats.Duration = s.now().Sub(start)
	s.report.OnComplete(*stats)
	return stats, nil
}

// Partition splits pages on their creation time. Pages created after start
// are returned in their original order; the others are only counted.
func Partition(pages []notion.Page, start time.Time) ([]notion.Page, int) {
	var fresh []notion.Page
	old := 0
	for i := range pages {
		if !pages[i].CreatedTime.After(start) {
			old++
			continue
		}
		fresh = append(fresh, pages[i])
	}
	return fresh, old
}
