// Package export orchestrates one full export run: resolve the schema
// source once, then for each requested dialect generate the raw schema
// script into its artifact file and clean it in place.
//
// Dialects run sequentially in their configured order. Each dialect gets a
// fresh generator, so no dialect configuration is shared or reused across
// runs; a failing dialect is reported and the remaining ones still run.
// Only an unresolvable schema source fails the whole run, before any
// dialect is attempted.
package export

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"schemagen/internal/cleanup"
	"schemagen/internal/ddlgen"
	"schemagen/internal/dialect"
	"schemagen/internal/metrics"
	"schemagen/internal/schema"
)

// Request describes one export run.
type Request struct {
	// Source is the schema source identifier, e.g. "rsv.core". Required.
	Source string
	// OutDir is where artifacts are written; empty means the current
	// directory.
	OutDir string
	// Dialects is the ordered dialect set; empty means the default set.
	Dialects []dialect.Descriptor
	// TypeOverrides maps dialect short name → logical type → SQL type.
	TypeOverrides map[string]map[schema.ColType]string
	// Verbose echoes each generated statement to stdout.
	Verbose bool
}

// Result is the outcome for a single dialect.
type Result struct {
	Dialect     dialect.Descriptor
	Path        string
	Bytes       int64
	Removed     int
	Fingerprint uint64
	Took        time.Duration
	Err         error
}

// Summary is the outcome of a whole run.
type Summary struct {
	RunID   string
	Source  string
	Results []Result
	Failed  int
}

// Run executes the export. The returned error is only non-nil for
// configuration problems that abort the run before any dialect; per-dialect
// failures are carried in the Summary.
func Run(req Request) (Summary, error) {
	if req.Source == "" {
		return Summary{}, fmt.Errorf("export: schema source is required")
	}
	dialects := req.Dialects
	if len(dialects) == 0 {
		dialects = dialect.DefaultSet()
	}
	outDir := req.OutDir
	if outDir == "" {
		outDir = "."
	}

	// Resolving the source is the only fatal error: without metadata there
	// is nothing to export for any dialect.
	tables, err := schema.Resolve(req.Source)
	if err != nil {
		return Summary{}, fmt.Errorf("export: %w", err)
	}

	sum := Summary{RunID: uuid.NewString(), Source: req.Source}
	log.Printf("export: run %s: source=%s tables=%d dialects=%d outdir=%s",
		sum.RunID, req.Source, len(tables), len(dialects), outDir)

	for _, d := range dialects {
		res := exportOne(d, tables, req, outDir)
		metrics.RecordDialect(req.Source, d.Name, res.Err, res.Took)
		if res.Err != nil {
			sum.Failed++
			log.Printf("export: %s: %v (continuing)", d.Name, res.Err)
		} else {
			metrics.RecordLinesRemoved(d.Name, int64(res.Removed))
			log.Printf("export: %s: wrote %s (%s, removed %d lines, xxh3=%016x) in %s",
				d.Name, filepath.Base(res.Path), humanize.Bytes(uint64(res.Bytes)),
				res.Removed, res.Fingerprint, res.Took.Truncate(time.Millisecond))
		}
		sum.Results = append(sum.Results, res)
	}

	log.Printf("export: run %s: done, %d/%d dialects ok",
		sum.RunID, len(sum.Results)-sum.Failed, len(sum.Results))
	return sum, nil
}

// exportOne runs a single dialect with its own fresh generator. Errors are
// carried in the Result so the remaining dialects still run.
func exportOne(d dialect.Descriptor, tables []*schema.Table, req Request, outDir string) (res Result) {
	start := time.Now()
	defer func() { res.Took = time.Since(start) }()

	res = Result{Dialect: d, Path: FilePath(outDir, d, req.Source)}

	gen, err := ddlgen.New(d, tables, req.TypeOverrides[d.Name])
	if err != nil {
		res.Err = err
		return res
	}
	if req.Verbose {
		gen.SetEcho(func(stmt string) { fmt.Println(stmt) })
	}

	if _, err := gen.ExportFile(res.Path); err != nil {
		res.Err = err
		return res
	}

	stats, err := cleanup.File(res.Path)
	if err != nil {
		// The raw artifact stays in place for inspection.
		res.Err = err
		return res
	}
	res.Removed = stats.LinesRemoved

	b, err := os.ReadFile(res.Path)
	if err != nil {
		res.Err = fmt.Errorf("export: read back %s: %w", res.Path, err)
		return res
	}
	res.Bytes = int64(len(b))
	res.Fingerprint = xxh3.Hash(b)
	return res
}
