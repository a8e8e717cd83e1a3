// Defines how run progress and results are reported.

package seeder

import (
	"fmt"
	"io"

	"github.com/maruel/notion-random-data/internal/notion"
)

// Reporter receives the progress and results of a run.
//
// Calls are made from the goroutine running Seeder.Run, in this order:
// OnDatabase once, OnCreated per page created, then for each new page
// OnNewPage followed by OnProperty per property sorted by name, and finally
// OnComplete.
type Reporter interface {
	OnDatabase(db *notion.Database)
	OnCreated(n, total int, page *notion.Page)
	OnNewPage(page *notion.Page)
	OnProperty(name string, pv *notion.PropertyValue)
	OnComplete(stats Stats)
}

// CLIReporter prints each new page with its formatted properties to Out.
//
// Progress goes to Err when set so that Out only carries the listing.
type CLIReporter struct {
	Out io.Writer
	Err io.Writer
}

// OnDatabase prints the database being filled.
func (r *CLIReporter) OnDatabase(db *notion.Database) {
	if r.Err == nil {
		return
	}
	_, _ = fmt.Fprintf(r.Err, "Database: %s (%d properties)\n", db.ID, len(db.Properties))
}

// OnCreated prints one progress line per created page.
func (r *CLIReporter) OnCreated(n, total int, page *notion.Page) {
	if r.Err == nil {
		return
	}
	_, _ = fmt.Fprintf(r.Err, "[%d/%d] %s\n", n, total, page.ID)
}

// OnNewPage prints the page header.
func (r *CLIReporter) OnNewPage(page *notion.Page) {
	_, _ = fmt.Fprintf(r.Out, "New page: %s\n", page.ID)
}

// OnProperty prints one property of the last page passed to OnNewPage.
func (r *CLIReporter) OnProperty(name string, pv *notion.PropertyValue) {
	_, _ = fmt.Fprintf(r.Out, " - %s %s - %s\n", name, pv.ID, notion.FormatValue(pv))
}

// OnComplete prints how many pre-existing rows were skipped.
func (r *CLIReporter) OnComplete(stats Stats) {
	_, _ = fmt.Fprintf(r.Out, "did not print %d old rows\n", stats.Old)
}

// NullReporter discards all results.
type NullReporter struct{}

func (r *NullReporter) OnDatabase(db *notion.Database)                   {}
func (r *NullReporter) OnCreated(n, total int, page *notion.Page)        {}
func (r *NullReporter) OnNewPage(page *notion.Page)                      {}
func (r *NullReporter) OnProperty(name string, pv *notion.PropertyValue) {}
func (r *NullReporter) OnComplete(stats Stats)                           {}
