// Package dialect defines the fixed set of target SQL dialects and the
// renderer abstraction the DDL generator works through.
//
// Vendor-specific renderers (postgres, oracle, mysql, hsql) live in
// subpackages and register themselves at init time under their vendor SQL
// identifier; importing schemagen/internal/dialect/all wires them all in.
// A fresh renderer is constructed per export run so dialect configuration is
// never shared or reused across runs.
package dialect

import (
	"fmt"
	"sync"

	"schemagen/internal/schema"
)

// Descriptor identifies one target dialect. It is an immutable pair of the
// short name used in artifact file names and the vendor SQL dialect
// identifier under which a renderer is registered.
type Descriptor struct {
	Name string
	SQL  string
}

// The enumerated dialect set. Constant for the life of the process.
var (
	Postgres = Descriptor{Name: "postgres", SQL: "postgresql"}
	Oracle   = Descriptor{Name: "oracle", SQL: "oracle10g"}
	MySQL    = Descriptor{Name: "mysql", SQL: "mysql"}
	HSQL     = Descriptor{Name: "hsql", SQL: "hsqldb"}
)

// DefaultSet is the ordered dialect set exported when none is configured.
func DefaultSet() []Descriptor {
	return []Descriptor{Postgres, Oracle, MySQL}
}

// All returns every known descriptor, in a fixed order.
func All() []Descriptor {
	return []Descriptor{Postgres, Oracle, MySQL, HSQL}
}

// ByName resolves a short dialect name as used in -dialects and config
// files.
func ByName(name string) (Descriptor, error) {
	for _, d := range All() {
		if d.Name == name {
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("dialect: unknown dialect %q (known: postgres, oracle, mysql, hsql)", name)
}

// Renderer renders the vendor-specific fragments of a schema script. All
// returned statements are bare SQL without a trailing delimiter; the
// generator appends the delimiter and block separator.
type Renderer interface {
	// TypeFor maps a logical column type onto this vendor's SQL type,
	// honoring any configured overrides.
	TypeFor(c schema.Column) (string, error)

	// QuoteIdent quotes an identifier only when it needs quoting; plain
	// lowercase identifiers are emitted bare.
	QuoteIdent(id string) string

	// DropTable renders the vendor's drop-table statement.
	DropTable(table string) string

	// DropForeignKey renders the constraint drop preceding a table drop.
	// ok is false when the vendor's drop-table form already cascades over
	// constraints and no separate statement is emitted.
	DropForeignKey(table, name string) (stmt string, ok bool)

	// DropSequence and CreateSequence render sequence maintenance for the
	// vendor. ok is false for vendors without sequences.
	DropSequence(name string) (stmt string, ok bool)
	CreateSequence(name string) (stmt string, ok bool)

	// AutoIncrementSuffix is appended to the primary key column definition
	// on vendors that use an identity keyword instead of sequences; empty
	// otherwise.
	AutoIncrementSuffix() string
}

// Factory builds a fresh Renderer with the given column-type overrides
// (logical type → raw SQL type). Overrides replace the built-in mapping for
// that logical type wholesale.
type Factory func(overrides map[schema.ColType]string) Renderer

var (
	factMu    sync.RWMutex
	factories = map[string]Factory{}
)

// Register registers (or replaces) a renderer factory for the given vendor
// SQL identifier. It is typically called from vendor packages' init()
// functions.
func Register(sqlName string, fn Factory) {
	factMu.Lock()
	defer factMu.Unlock()
	factories[sqlName] = fn
}

// New constructs a fresh renderer for the descriptor. Each call returns an
// independent instance; callers must not reuse one across export runs.
//
// If no renderer has been registered for the descriptor's vendor
// identifier, an error is returned.
func New(d Descriptor, overrides map[schema.ColType]string) (Renderer, error) {
	factMu.RLock()
	fn, ok := factories[d.SQL]
	factMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("dialect: no renderer registered for %q", d.SQL)
	}
	return fn(overrides), nil
}
