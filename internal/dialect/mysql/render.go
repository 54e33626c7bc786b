package mysql

import (
	"fmt"
	"strings"

	"schemagen/internal/schema"
)

// Renderer implements dialect.Renderer for MySQL.
type Renderer struct {
	overrides map[schema.ColType]string
}

// New returns a fresh MySQL renderer. The built-in datetime(3) override for
// timestamps is installed first; caller overrides win over it.
func New(overrides map[schema.ColType]string) *Renderer {
	merged := map[schema.ColType]string{
		schema.TypeTime: "datetime(3)",
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return &Renderer{overrides: merged}
}

func (r *Renderer) TypeFor(c schema.Column) (string, error) {
	if t, ok := r.overrides[c.Type]; ok {
		return t, nil
	}
	return mapType(c)
}

// QuoteIdent quotes with backticks, doubling any embedded backtick. Plain
// lowercase identifiers stay bare.
func (r *Renderer) QuoteIdent(id string) string {
	if bareIdent(id) {
		return id
	}
	return "`" + strings.ReplaceAll(id, "`", "``") + "`"
}

func (r *Renderer) DropTable(table string) string {
	return fmt.Sprintf("drop table if exists %s", r.QuoteIdent(table))
}

// DropForeignKey uses MySQL's drop foreign key form rather than the
// standard drop constraint.
func (r *Renderer) DropForeignKey(table, name string) (string, bool) {
	return fmt.Sprintf("alter table %s\n    drop foreign key %s", r.QuoteIdent(table), r.QuoteIdent(name)), true
}

// MySQL has no sequences; auto-increment primary keys use the column
// suffix instead.
func (r *Renderer) DropSequence(name string) (string, bool)   { return "", false }
func (r *Renderer) CreateSequence(name string) (string, bool) { return "", false }

func (r *Renderer) AutoIncrementSuffix() string { return "auto_increment" }

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
