// Package main is the entry point for the notion-random-data CLI tool.
//
// notion-random-data fills a Notion database with random rows matching its
// schema, then reads the database back and prints the rows it created. The
// integration token is read from -token, the NOTION_KEY environment variable
// or a local .env file, in that order.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/maruel/notion-random-data/internal/fakedata"
	"github.com/maruel/notion-random-data/internal/notion"
	"github.com/maruel/notion-random-data/internal/seeder"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := mainImpl(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "notion-random-data: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	version := flag.Bool("version", false, "Print version and exit")
	token := flag.String("token", "", "Notion integration token (default: NOTION_KEY)")
	databaseID := flag.String("database", "", "Database ID to fill (default: first accessible database)")
	count := flag.Int("count", seeder.DefaultCount, "Number of pages to create")
	envPath := flag.String("env", ".env", "Settings file read for NOTION_KEY when it is not in the environment")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()
	if len(flag.Args()) > 0 {
		return fmt.Errorf("unknown arguments: %v", flag.Args())
	}

	if *version {
		printVersion()
		return nil
	}
	if *count <= 0 {
		return fmt.Errorf("-count must be positive, got %d", *count)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()
	ll := &slog.LevelVar{}
	switch *logLevel {
	case "debug":
		ll.Set(slog.LevelDebug)
	case "info":
	case "warn":
		ll.Set(slog.LevelWarn)
	case "error":
		ll.Set(slog.LevelError)
	default:
		return fmt.Errorf("unknown log level: %q", *logLevel)
	}
	slog.SetDefault(slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:       ll,
		TimeFormat:  "15:04:05.000", // Like time.TimeOnly plus milliseconds.
		NoColor:     !isatty.IsTerminal(os.Stderr.Fd()),
		ReplaceAttr: dropZero,
	})))

	env, err := loadDotEnv(*envPath)
	if err != nil {
		return err
	}
	if *token == "" {
		*token = os.Getenv("NOTION_KEY")
	}
	if *token == "" {
		*token = env["NOTION_KEY"]
	}
	if *token == "" {
		return errors.New("-token or NOTION_KEY is required")
	}

	s := seeder.New(notion.NewClient(*token), fakedata.New(nil), &seeder.CLIReporter{Out: os.Stdout, Err: os.Stderr})
	stats, err := s.Run(ctx, seeder.Options{DatabaseID: *databaseID, Count: *count})
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "Done", "database", stats.DatabaseID, "created", stats.Created, "new", stats.New, "old", stats.Old, "dur", stats.Duration.Round(time.Millisecond))
	return nil
}

// dropZero removes zero-valued attributes from log records.
func dropZero(groups []string, a slog.Attr) slog.Attr {
	skip := false
	switch t := a.Value.Any().(type) {
	case string:
		skip = t == ""
	case bool:
		skip = !t
	case int64:
		skip = t == 0
	case uint64:
		skip = t == 0
	case float64:
		skip = t == 0
	case time.Duration:
		skip = t == 0
	case nil:
		skip = true
	}
	if skip {
		return slog.Attr{}
	}
	return a
}

// loadDotEnv parses KEY=VALUE lines. A missing file yields an empty map.
func loadDotEnv(path string) (map[string]string, error) {
	env := make(map[string]string)
	raw, err := os.ReadFile(path) //nolint:gosec // G304: path comes from a flag
	if err != nil {
		if os.IsNotExist(err) {
			return env, nil
		}
		return nil, err
	}

	for line := range strings.SplitSeq(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		val = strings.TrimSpace(val)

		if strings.HasPrefix(val, "'") || strings.HasSuffix(val, "'") {
			if strings.HasPrefix(val, "'") && strings.HasSuffix(val, "'") {
				return nil, fmt.Errorf("single quotes are not supported for wrapping in %s: %s", path, key)
			}
			return nil, fmt.Errorf("unbalanced single quotes in %s: %s", path, key)
		}
		if strings.HasPrefix(val, "\"") {
			unquoted, err := strconv.Unquote(val)
			if err != nil {
				return nil, fmt.Errorf("failed to unquote %s: %w", key, err)
			}
			val = unquoted
		}
		env[key] = val
	}
	return env, nil
}

func printVersion() {
	version, goVersion, revision, dirty := getBuildInfo()
	fmt.Printf("notion-random-data %s\n", version)
	fmt.Printf("  Go version: %s\n", goVersion)
	fmt.Printf("  Revision:   %s\n", revision)
	if dirty {
		fmt.Printf("  Modified:   true\n")
	}
}

func getBuildInfo() (version, goVersion, revision string, dirty bool) {
	version = "unknown"
	goVersion = "unknown"
	revision = "unknown"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	version = info.Main.Version
	if version == "" || version == "(devel)" {
		version = "dev"
	}
	goVersion = info.GoVersion
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	return
}
