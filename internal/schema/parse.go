package schema

import (
	"fmt"
	"sort"
	"sync"

	gormschema "gorm.io/gorm/schema"
)

// FromModels parses GORM-tagged structs into table metadata, in declaration
// order. Each call uses a fresh parse cache so no state leaks between runs.
func FromModels(models ...any) ([]*Table, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("schema: model group is empty")
	}
	cache := &sync.Map{}
	tables := make([]*Table, 0, len(models))
	for _, m := range models {
		s, err := gormschema.Parse(m, cache, gormschema.NamingStrategy{})
		if err != nil {
			return nil, fmt.Errorf("schema: parse %T: %w", m, err)
		}
		t, err := fromParsed(s)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func fromParsed(s *gormschema.Schema) (*Table, error) {
	t := &Table{Name: s.Table}

	for _, f := range s.Fields {
		if f.DBName == "" {
			// relation or ignored field
			continue
		}
		ct, err := colType(f)
		if err != nil {
			return nil, fmt.Errorf("schema: table %s: %w", s.Table, err)
		}
		col := Column{
			Name:          f.DBName,
			Type:          ct,
			NotNull:       f.NotNull || f.PrimaryKey,
			Unique:        f.Unique,
			AutoIncrement: f.AutoIncrement && f.PrimaryKey,
			PrimaryKey:    f.PrimaryKey,
			Default:       f.DefaultValue,
		}
		if ct == TypeString {
			col.Size = f.Size
		}
		t.Columns = append(t.Columns, col)
	}
	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("schema: table %s has no columns", s.Table)
	}

	for _, f := range s.PrimaryFields {
		t.PrimaryKey = append(t.PrimaryKey, f.DBName)
	}

	// Foreign keys come from belongs-to relations declared on the model
	// itself; the slice follows struct declaration order, which keeps
	// constraint order stable run to run.
	for _, rel := range s.Relationships.BelongsTo {
		c := rel.ParseConstraint()
		if c == nil || c.ReferenceSchema == nil {
			continue
		}
		fk := ForeignKey{
			Name:     Fold(c.Name),
			RefTable: c.ReferenceSchema.Table,
		}
		for _, f := range c.ForeignKeys {
			fk.Columns = append(fk.Columns, f.DBName)
		}
		for _, f := range c.References {
			fk.RefColumns = append(fk.RefColumns, f.DBName)
		}
		t.ForeignKeys = append(t.ForeignKeys, fk)
	}

	// ParseIndexes returns a map; sort names so generated scripts are
	// deterministic.
	idxs := s.ParseIndexes()
	names := make([]string, 0, len(idxs))
	for name := range idxs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		idx := idxs[name]
		out := Index{Name: Fold(name), Unique: idx.Class == "UNIQUE"}
		for _, opt := range idx.Fields {
			out.Columns = append(out.Columns, opt.DBName)
		}
		t.Indexes = append(t.Indexes, out)
	}

	return t, nil
}

// colType maps a parsed GORM field onto the logical type set. Integer width
// follows the Go type: anything below 64 bits maps to TypeInt.
func colType(f *gormschema.Field) (ColType, error) {
	switch f.DataType {
	case gormschema.Bool:
		return TypeBool, nil
	case gormschema.Int, gormschema.Uint:
		if f.Size > 0 && f.Size < 64 {
			return TypeInt, nil
		}
		return TypeBigInt, nil
	case gormschema.Float:
		return TypeFloat, nil
	case gormschema.String:
		return TypeString, nil
	case gormschema.Time:
		return TypeTime, nil
	case gormschema.Bytes:
		return TypeBytes, nil
	case "text":
		return TypeText, nil
	}
	return "", fmt.Errorf("column %s: unsupported data type %q", f.DBName, f.DataType)
}
