// Package ddlgen renders the raw schema script for one (model group,
// dialect) pair. A Generator is constructed fresh per export run and never
// reused; dialect state cannot leak between runs.
//
// The emitted script follows the exporter conventions the downstream
// cleanup pass is written against:
//
//   - lowercase SQL keywords, ";" statement delimiter
//   - every statement block is followed by exactly one blank line
//   - drop table / drop sequence statements occupy a single line
//   - alter statements span multiple lines with the verb clause on the
//     second line
//   - drops come first (constraints, tables, sequences), then creates
//     (tables, indexes, constraints, sequences)
package ddlgen

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"schemagen/internal/dialect"
	"schemagen/internal/schema"
)

// Generator renders the schema script for a fixed table set and dialect.
type Generator struct {
	desc   dialect.Descriptor
	r      dialect.Renderer
	tables []*schema.Table
	delim  string
	echo   func(stmt string)
}

// New constructs a fresh Generator. The renderer is looked up and built per
// call, so two Generators never share dialect configuration.
func New(desc dialect.Descriptor, tables []*schema.Table, overrides map[schema.ColType]string) (*Generator, error) {
	r, err := dialect.New(desc, overrides)
	if err != nil {
		return nil, fmt.Errorf("ddlgen: %w", err)
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("ddlgen: no tables to generate")
	}
	return &Generator{desc: desc, r: r, tables: tables, delim: ";"}, nil
}

// SetEcho installs a callback invoked with each statement (delimiter
// included) as it is written. Used for verbose console output.
func (g *Generator) SetEcho(fn func(stmt string)) { g.echo = fn }

// Statements renders the full script as an ordered statement list, without
// delimiters.
func (g *Generator) Statements() ([]string, error) {
	q := g.r.QuoteIdent
	var out []string

	for _, t := range g.tables {
		for _, fk := range t.ForeignKeys {
			if s, ok := g.r.DropForeignKey(t.Name, fk.Name); ok {
				out = append(out, s)
			}
		}
	}
	// Tables drop in reverse declaration order so children go before the
	// tables they reference.
	for i := len(g.tables) - 1; i >= 0; i-- {
		out = append(out, g.r.DropTable(g.tables[i].Name))
	}
	for _, t := range g.tables {
		if name, ok := g.sequenceName(t); ok {
			if s, ok := g.r.DropSequence(name); ok {
				out = append(out, s)
			}
		}
	}

	for _, t := range g.tables {
		s, err := g.createTable(t)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	for _, t := range g.tables {
		for _, idx := range t.Indexes {
			if idx.Unique {
				continue
			}
			out = append(out, fmt.Sprintf("create index %s on %s (%s)",
				q(idx.Name), q(t.Name), joinQuoted(q, idx.Columns)))
		}
	}
	for _, t := range g.tables {
		for _, c := range t.Columns {
			if !c.Unique || c.PrimaryKey {
				continue
			}
			name := schema.Fold(fmt.Sprintf("uk_%s_%s", t.Name, c.Name))
			out = append(out, g.addUnique(t.Name, name, []string{c.Name}))
		}
		for _, idx := range t.Indexes {
			if !idx.Unique {
				continue
			}
			out = append(out, g.addUnique(t.Name, idx.Name, idx.Columns))
		}
		for _, fk := range t.ForeignKeys {
			out = append(out, g.addForeignKey(t.Name, fk))
		}
	}
	for _, t := range g.tables {
		if name, ok := g.sequenceName(t); ok {
			if s, ok := g.r.CreateSequence(name); ok {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

// WriteTo writes the script: each statement, the delimiter, then a blank
// line. Implements io.WriterTo.
func (g *Generator) WriteTo(w io.Writer) (int64, error) {
	stmts, err := g.Statements()
	if err != nil {
		return 0, err
	}
	var n int64
	for _, s := range stmts {
		m, err := io.WriteString(w, s+g.delim+"\n\n")
		n += int64(m)
		if err != nil {
			return n, fmt.Errorf("ddlgen: write: %w", err)
		}
		if g.echo != nil {
			g.echo(s + g.delim)
		}
	}
	return n, nil
}

// ExportFile writes the script to path, truncating any previous artifact,
// and returns the number of bytes written.
func (g *Generator) ExportFile(path string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("ddlgen: create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	n, err := g.WriteTo(bw)
	if err != nil {
		f.Close()
		return n, err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return n, fmt.Errorf("ddlgen: flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("ddlgen: close %s: %w", path, err)
	}
	return n, nil
}

// createTable renders the multi-line create table statement: one column per
// line, primary key clause last.
func (g *Generator) createTable(t *schema.Table) (string, error) {
	if strings.TrimSpace(t.Name) == "" {
		return "", fmt.Errorf("ddlgen: table name must not be empty")
	}
	if len(t.Columns) == 0 {
		return "", fmt.Errorf("ddlgen: table %s has no columns", t.Name)
	}
	q := g.r.QuoteIdent

	cols := make([]string, 0, len(t.Columns)+1)
	for _, c := range t.Columns {
		typ, err := g.r.TypeFor(c)
		if err != nil {
			return "", fmt.Errorf("ddlgen: table %s: %w", t.Name, err)
		}

		var sb strings.Builder
		sb.WriteString(q(c.Name))
		sb.WriteByte(' ')
		sb.WriteString(typ)

		if def := strings.TrimSpace(c.Default); def != "" {
			sb.WriteString(" default ")
			// Default is emitted as a raw SQL expression.
			sb.WriteString(def)
		}
		if c.NotNull {
			sb.WriteString(" not null")
		}
		if c.AutoIncrement {
			if sfx := g.r.AutoIncrementSuffix(); sfx != "" {
				sb.WriteByte(' ')
				sb.WriteString(sfx)
			}
		}
		cols = append(cols, sb.String())
	}

	if len(t.PrimaryKey) > 0 {
		cols = append(cols, fmt.Sprintf("primary key (%s)", joinQuoted(q, t.PrimaryKey)))
	}

	return fmt.Sprintf("create table %s (\n    %s\n)", q(t.Name), strings.Join(cols, ",\n    ")), nil
}

func (g *Generator) addUnique(table, name string, cols []string) string {
	q := g.r.QuoteIdent
	return fmt.Sprintf("alter table %s\n    add constraint %s\n    unique (%s)",
		q(table), q(name), joinQuoted(q, cols))
}

func (g *Generator) addForeignKey(table string, fk schema.ForeignKey) string {
	q := g.r.QuoteIdent
	return fmt.Sprintf("alter table %s\n    add constraint %s\n    foreign key (%s)\n    references %s (%s)",
		q(table), q(fk.Name), joinQuoted(q, fk.Columns), q(fk.RefTable), joinQuoted(q, fk.RefColumns))
}

// sequenceName derives the per-table sequence name for auto-increment
// primary keys. Whether the dialect actually uses it is decided by the
// renderer's sequence methods.
func (g *Generator) sequenceName(t *schema.Table) (string, bool) {
	pk, ok := t.AutoIncrementPK()
	if !ok {
		return "", false
	}
	return schema.Fold(fmt.Sprintf("%s_%s_seq", t.Name, pk.Name)), true
}

func joinQuoted(q func(string) string, ids []string) string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = q(id)
	}
	return strings.Join(out, ", ")
}
