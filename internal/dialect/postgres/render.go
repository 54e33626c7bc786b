package postgres

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"schemagen/internal/schema"
)

// Renderer implements dialect.Renderer for PostgreSQL.
type Renderer struct {
	overrides map[schema.ColType]string
}

// New returns a fresh PostgreSQL renderer with the given type overrides.
func New(overrides map[schema.ColType]string) *Renderer {
	return &Renderer{overrides: overrides}
}

func (r *Renderer) TypeFor(c schema.Column) (string, error) {
	if t, ok := r.overrides[c.Type]; ok {
		return t, nil
	}
	return mapType(c)
}

// QuoteIdent emits plain lowercase identifiers bare and defers to pgx's
// sanitizer for anything that needs quoting.
func (r *Renderer) QuoteIdent(id string) string {
	if bareIdent(id) {
		return id
	}
	return pgx.Identifier{id}.Sanitize()
}

func (r *Renderer) DropTable(table string) string {
	return fmt.Sprintf("drop table if exists %s cascade", r.QuoteIdent(table))
}

func (r *Renderer) DropForeignKey(table, name string) (string, bool) {
	return fmt.Sprintf("alter table %s\n    drop constraint %s", r.QuoteIdent(table), r.QuoteIdent(name)), true
}

func (r *Renderer) DropSequence(name string) (string, bool) {
	return fmt.Sprintf("drop sequence if exists %s", r.QuoteIdent(name)), true
}

func (r *Renderer) CreateSequence(name string) (string, bool) {
	return fmt.Sprintf("create sequence %s", r.QuoteIdent(name)), true
}

func (r *Renderer) AutoIncrementSuffix() string { return "" }

// bareIdent reports whether id can be emitted unquoted: [a-z_][a-z0-9_]*.
func bareIdent(id string) bool {
	if id == "" {
		return false
	}
	for i, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
