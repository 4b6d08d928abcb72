// Package scan walks a directory tree, parses every Vue single-file
// component it finds, and aggregates the per-file outcomes into a Report.
// Files are parsed concurrently with bounded parallelism; an optional
// Emitter observes per-file progress.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vuesplit/vuesplit/sfcparser"
)

// Options configures a directory scan. The zero value parses with the
// canonical grammar and one worker per CPU.
type Options struct {
	Jobs          int      // concurrent parse workers; <1 means GOMAXPROCS
	AllowUnquoted bool     // accept unquoted attribute values
	Events        *Emitter // optional progress observer
}

// Dir walks root and parses every file with a .vue extension. Parse
// failures are recorded per file in the Report, not returned as errors; the
// returned error reports walk failures or context cancellation.
func Dir(ctx context.Context, root string, opts Options) (*Report, error) {
	paths, err := vueFiles(root)
	if err != nil {
		return nil, err
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	emit(opts.Events, ScanStartedEvent(root, len(paths)))

	parser := sfcparser.Parser{AllowUnquoted: opts.AllowUnquoted}
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fileStart := time.Now()
			res := scanFile(parser, path)
			results[i] = res
			if res.Err != "" {
				emit(opts.Events, FileFailedEvent(res.Path, res.Err, time.Since(fileStart)))
			} else {
				emit(opts.Events, FileParsedEvent(res.Path, res.Sections, len(res.Blocks), time.Since(fileStart)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	report := &Report{
		ID:      uuid.New().String(),
		Root:    root,
		Files:   len(results),
		Elapsed: time.Since(start),
		Results: results,
	}
	for _, res := range results {
		if res.OK() {
			report.Parsed++
		} else {
			report.Failed++
		}
	}
	emit(opts.Events, ScanCompletedEvent(report.Files, report.Parsed, report.Failed, report.Elapsed))
	return report, nil
}

// vueFiles collects every *.vue path under root in walk order. Hidden
// directories and node_modules are skipped.
func vueFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); path != root && (name == "node_modules" || strings.HasPrefix(name, ".")) {
				return fs.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".vue") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return paths, nil
}

// scanFile reads and parses one component file.
func scanFile(parser sfcparser.Parser, path string) Result {
	res := Result{Path: path}
	src, err := os.ReadFile(path)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	sections, err := parser.Parse(string(src))
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.Sections = len(sections)
	for _, section := range sections {
		block, ok := section.(sfcparser.Block)
		if !ok {
			continue
		}
		info := BlockInfo{Name: block.Name.String(), Bytes: len(block.Content)}
		for _, attr := range block.Attributes {
			info.Attributes = append(info.Attributes, attr.String())
		}
		if lang, ok := block.Attr("lang"); ok && lang.Value != nil {
			info.Lang = lang.Value.String()
		}
		res.Blocks = append(res.Blocks, info)
	}
	return res
}

func emit(e *Emitter, event Event) {
	if e != nil {
		e.Emit(event)
	}
}
