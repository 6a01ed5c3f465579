package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vintedgen/internal/config"
	"vintedgen/internal/export"
	"vintedgen/internal/pipeline"
	"vintedgen/internal/profile"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel)
	must(err)
	defer func() { _ = logger.Sync() }()

	registry := profile.BuiltinWith(profile.Thresholds{
		CottonMinPct:   cfg.CottonMinPct,
		ElastaneMinPct: cfg.ElastaneMinPct,
	})
	gen := pipeline.NewGenerator(registry, logger)

	cmd := os.Args[1]
	switch cmd {
	case "generate":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "file with raw AI response text")
		profileKey := fs.String("profile", cfg.DefaultProfile, "profile key")
		overridesPath := fs.String("overrides", "", "JSON file with per-field overrides")
		out := fs.String("out", "", "output JSON path (default stdout)")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}

		rawText, err := os.ReadFile(*input)
		must(err)
		overrides, err := loadOverrides(*overridesPath)
		must(err)

		result, err := gen.Generate(pipeline.Request{
			RawText:    string(rawText),
			ProfileKey: *profileKey,
			Overrides:  overrides,
		})
		must(err)

		payload := result.Listing.ToMap()
		if result.Price != nil {
			payload["price"] = result.Price.Price
			payload["price_rationale"] = result.Price.Rationale
		}
		encoded, err := json.MarshalIndent(payload, "", "  ")
		must(err)

		if strings.TrimSpace(*out) == "" {
			fmt.Println(string(encoded))
			return
		}
		must(os.MkdirAll(filepath.Dir(*out), 0o755))
		must(os.WriteFile(*out, append(encoded, '\n'), 0o644))
		fmt.Printf("generate done title=%q output=%s\n", result.Listing.Title(), *out)
	case "batch":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		dir := fs.String("dir", "", "directory of raw AI response files")
		profileKey := fs.String("profile", cfg.DefaultProfile, "profile key")
		out := fs.String("out", filepath.Join(cfg.OutputDir, "listings.xlsx"), "output xlsx path")
		workers := fs.Int("workers", cfg.BatchWorkers, "concurrent generations")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*dir) == "" {
			must(fmt.Errorf("--dir is required"))
		}

		rows, err := runBatch(gen, *dir, *profileKey, *workers)
		must(err)
		if len(rows) == 0 {
			must(fmt.Errorf("no input files in %s", *dir))
		}
		must(export.WriteXLSX(rows, *out))
		fmt.Printf("batch done listings=%d output=%s\n", len(rows), *out)
	case "profiles":
		for _, key := range registry.Keys() {
			fmt.Println(key)
		}
	default:
		usage()
		os.Exit(1)
	}
}

// runBatch generates one listing per file in dir, concurrently. Results keep
// a stable order regardless of which worker finished first.
func runBatch(gen *pipeline.Generator, dir, profileKey string, workers int) ([]export.Row, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var g errgroup.Group
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	var mu sync.Mutex
	var rows []export.Row
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		path := filepath.Join(dir, name)
		g.Go(func() error {
			rawText, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			result, err := gen.Generate(pipeline.Request{
				RawText:    string(rawText),
				ProfileKey: profileKey,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			mu.Lock()
			rows = append(rows, export.Row{Source: name, Listing: result.Listing, Price: result.Price})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Source < rows[j].Source })
	return rows, nil
}

func loadOverrides(path string) (map[string]any, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var overrides map[string]any
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("overrides %s: %w", path, err)
	}
	return overrides, nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	parsed, err := zap.ParseAtomicLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.Level = parsed
	return cfg.Build()
}

func usage() {
	fmt.Println("usage: vintedgen <command>")
	fmt.Println("commands:")
	fmt.Println("  generate --input=raw.txt [--profile=jean_levis] [--overrides=fields.json] [--out=listing.json]")
	fmt.Println("  batch --dir=./inputs [--profile=jean_levis] [--out=./out/listings.xlsx] [--workers=4]")
	fmt.Println("  profiles")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
