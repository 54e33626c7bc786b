package oracle

import (
	"fmt"
	"strings"

	"schemagen/internal/schema"
)

// Renderer implements dialect.Renderer for Oracle.
type Renderer struct {
	overrides map[schema.ColType]string
}

// New returns a fresh Oracle renderer with the given type overrides.
func New(overrides map[schema.ColType]string) *Renderer {
	return &Renderer{overrides: overrides}
}

func (r *Renderer) TypeFor(c schema.Column) (string, error) {
	if t, ok := r.overrides[c.Type]; ok {
		return t, nil
	}
	return mapType(c)
}

// QuoteIdent quotes with double quotes, doubling any embedded quote.
// Plain lowercase identifiers stay bare.
func (r *Renderer) QuoteIdent(id string) string {
	if bareIdent(id) {
		return id
	}
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}

// DropTable uses cascade constraints, so no separate foreign key drops are
// needed on Oracle.
func (r *Renderer) DropTable(table string) string {
	return fmt.Sprintf("drop table %s cascade constraints", r.QuoteIdent(table))
}

func (r *Renderer) DropForeignKey(table, name string) (string, bool) {
	return "", false
}

func (r *Renderer) DropSequence(name string) (string, bool) {
	return fmt.Sprintf("drop sequence %s", r.QuoteIdent(name)), true
}

func (r *Renderer) CreateSequence(name string) (string, bool) {
	return fmt.Sprintf("create sequence %s", r.QuoteIdent(name)), true
}

func (r *Renderer) AutoIncrementSuffix() string { return "" }

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
