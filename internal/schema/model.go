// Package schema defines the database-agnostic table metadata that DDL
// generation works from, the registry of named model groups, and the parser
// that derives metadata from GORM-tagged Go structs.
//
// The metadata model is intentionally small:
//
//   - Logical column types cover the portable set the dialect renderers can
//     map (bool, int, bigint, float, string, text, time, bytes).
//   - Constraints are carried by name so generated scripts are deterministic
//     run to run.
//   - Nothing here knows about any concrete SQL dialect; rendering happens
//     in internal/dialect and internal/ddlgen.
package schema

// ColType is a logical, dialect-independent column type.
type ColType string

const (
	TypeBool   ColType = "bool"
	TypeInt    ColType = "int"    // 32-bit integer
	TypeBigInt ColType = "bigint" // 64-bit integer
	TypeFloat  ColType = "float"
	TypeString ColType = "string" // bounded character data (see Column.Size)
	TypeText   ColType = "text"   // unbounded character data
	TypeTime   ColType = "time"   // timestamp
	TypeBytes  ColType = "bytes"
)

// AllTypes lists every logical column type.
func AllTypes() []ColType {
	return []ColType{TypeBool, TypeInt, TypeBigInt, TypeFloat, TypeString, TypeText, TypeTime, TypeBytes}
}

// Column describes a single table column.
//
// Fields:
//   - Name: column name (unquoted; quoting happens at render time)
//   - Type: logical type, mapped to a vendor SQL type by each renderer
//   - Size: character length for TypeString (0 means renderer default)
//   - NotNull: whether NULL is rejected
//   - Unique: whether the column carries a single-column unique constraint
//   - AutoIncrement: whether values come from a sequence or identity feature
//   - PrimaryKey: whether the column is part of the primary key
//   - Default: raw default expression, emitted as-is
type Column struct {
	Name          string
	Type          ColType
	Size          int
	NotNull       bool
	Unique        bool
	AutoIncrement bool
	PrimaryKey    bool
	Default       string
}

// ForeignKey describes a named foreign key constraint on a table.
type ForeignKey struct {
	Name       string
	Columns    []string
	RefTable   string
	RefColumns []string
}

// Index describes a named secondary index. Unique indexes render as
// constraints on dialects that prefer that form.
type Index struct {
	Name    string
	Columns []string
	Unique  bool
}

// Table is the full metadata for one table: ordered columns plus named
// constraints. Instances are built once by FromModels and treated as
// read-only afterwards; generation runs must not mutate them.
type Table struct {
	Name        string
	Columns     []Column
	PrimaryKey  []string
	ForeignKeys []ForeignKey
	Indexes     []Index
}

// AutoIncrementPK reports the table's auto-increment primary key column, if
// it has exactly one. Dialect renderers use this to decide between sequences
// and identity columns.
func (t *Table) AutoIncrementPK() (Column, bool) {
	if len(t.PrimaryKey) != 1 {
		return Column{}, false
	}
	for _, c := range t.Columns {
		if c.Name == t.PrimaryKey[0] && c.AutoIncrement {
			return c, true
		}
	}
	return Column{}, false
}
