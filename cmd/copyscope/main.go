package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mhailey/copyscope/internal/adcopy"
	"github.com/mhailey/copyscope/internal/batch"
	"github.com/mhailey/copyscope/internal/config"
	"github.com/mhailey/copyscope/internal/render"
	"github.com/mhailey/copyscope/internal/store"
	"github.com/mhailey/copyscope/internal/taxonomy"
	"github.com/mhailey/copyscope/internal/watch"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("load config: %v", err)
	}

	switch os.Args[1] {
	case "analyze":
		if len(os.Args) < 3 {
			fatal("usage: copyscope analyze <ads.json|.jsonl|.jsonl.zst>")
		}
		if err := runAnalyze(cfg, os.Args[2]); err != nil {
			fatal("analyze: %v", err)
		}

	case "watch":
		if err := runWatch(cfg); err != nil && err != context.Canceled {
			fatal("watch: %v", err)
		}

	case "taxonomy":
		if len(os.Args) < 3 || os.Args[2] != "check" {
			fatal("usage: copyscope taxonomy check [file]")
		}
		path := cfg.TaxonomyPath
		if len(os.Args) > 3 {
			path = os.Args[3]
		}
		if err := runTaxonomyCheck(path); err != nil {
			fatal("taxonomy check: %v", err)
		}

	case "version":
		fmt.Printf("copyscope v%s\n", version)

	case "help", "--help", "-h":
		usage()

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func runAnalyze(cfg config.Config, path string) error {
	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	ads, err := adcopy.ReadFile(path)
	if err != nil {
		return err
	}
	if len(ads) == 0 {
		fmt.Println("no ads found")
		return nil
	}

	results, err := batch.Run(context.Background(), ads, tax, cfg.Analyze.Workers)
	if err != nil {
		return err
	}

	var st *store.Store
	var runID int64
	if cfg.Analyze.Persist {
		if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
			return fmt.Errorf("create database dir: %w", err)
		}
		st, err = store.Open(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer st.Close()
		if runID, err = st.BeginRun(path); err != nil {
			return err
		}
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "copyscope: skipping %s: %v\n", r.Ad.ID, r.Err)
			continue
		}
		if cfg.Output.Markdown {
			fmt.Println(render.Markdown(r.Framework))
		} else {
			fmt.Println(render.Text(r.Framework))
		}
		if st != nil {
			if err := st.SaveFramework(runID, r.Framework); err != nil {
				return err
			}
		}
	}

	if st != nil {
		if err := st.FinishRun(runID, len(results), failed); err != nil {
			return err
		}
	}

	fmt.Printf("analyzed %d/%d ads\n", len(results)-failed, len(results))
	return nil
}

func runWatch(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(cfg.InboxDir, 0o755); err != nil {
		return fmt.Errorf("create inbox dir: %w", err)
	}

	fmt.Printf("watching %s\n", cfg.InboxDir)
	return watch.Watch(ctx, cfg.InboxDir, func(path string) {
		if err := runAnalyze(cfg, path); err != nil {
			fmt.Fprintf(os.Stderr, "copyscope: %s: %v\n", path, err)
		}
	})
}

func runTaxonomyCheck(path string) error {
	if path == "" {
		fmt.Println("no taxonomy file configured; built-in defaults in use")
		return nil
	}
	if _, err := taxonomy.Load(path); err != nil {
		return err
	}
	fmt.Printf("%s: ok\n", path)
	return nil
}

func loadTaxonomy(cfg config.Config) (*taxonomy.Taxonomy, error) {
	if cfg.TaxonomyPath == "" {
		return taxonomy.Default(), nil
	}
	return taxonomy.Load(cfg.TaxonomyPath)
}

func usage() {
	fmt.Fprintf(os.Stderr, `copyscope v%s — DR framework extraction from ad copy

Usage:
  copyscope analyze <file>        Analyze an ad dump (.json, .jsonl, .jsonl.zst)
  copyscope watch                 Watch the inbox dir for new ad dumps
  copyscope taxonomy check [file] Validate a taxonomy file
  copyscope version               Print version
  copyscope help                  Show this help

Configuration: ~/.config/copyscope/config.toml
`, version)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "copyscope: "+format+"\n", args...)
	os.Exit(1)
}
