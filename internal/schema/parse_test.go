package schema

import (
	"strings"
	"testing"
	"time"
)

type parseOwner struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:64;not null"`
}

type parseCar struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	VIN      string `gorm:"size:17;unique;not null"`
	OwnerID  uint64 `gorm:"not null;index"`
	Owner    *parseOwner
	Mileage  int32
	Price    float64
	Imported bool
	Notes    string    `gorm:"type:text"`
	AddedAt  time.Time `gorm:"not null"`
	Payload  []byte
}

// column finds a column by name or fails the test.
func column(t *testing.T, tb *Table, name string) Column {
	t.Helper()
	for _, c := range tb.Columns {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("table %s has no column %q", tb.Name, name)
	return Column{}
}

/*
TestFromModels_Tables verifies struct parsing end to end: table naming,
column typing, nullability, primary keys, belongs-to foreign keys and
declared indexes.
*/
func TestFromModels_Tables(t *testing.T) {
	t.Parallel()

	tables, err := FromModels(&parseOwner{}, &parseCar{})
	if err != nil {
		t.Fatalf("FromModels() unexpected error = %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("FromModels() returned %d tables, want 2", len(tables))
	}

	owners, cars := tables[0], tables[1]
	if owners.Name != "parse_owners" || cars.Name != "parse_cars" {
		t.Fatalf("table names = %q, %q; want parse_owners, parse_cars", owners.Name, cars.Name)
	}

	id := column(t, owners, "id")
	if id.Type != TypeBigInt || !id.PrimaryKey || !id.AutoIncrement || !id.NotNull {
		t.Fatalf("owners.id = %+v, want big-int auto-increment primary key", id)
	}
	name := column(t, owners, "name")
	if name.Type != TypeString || name.Size != 64 || !name.NotNull {
		t.Fatalf("owners.name = %+v, want not-null string of size 64", name)
	}

	if len(owners.PrimaryKey) != 1 || owners.PrimaryKey[0] != "id" {
		t.Fatalf("owners primary key = %v, want [id]", owners.PrimaryKey)
	}

	// Relation fields must not become columns.
	for _, c := range cars.Columns {
		if c.Name == "owner" {
			t.Fatalf("relation field leaked into columns: %+v", cars.Columns)
		}
	}
}

/*
TestFromModels_ColumnTypes verifies the Go type to logical type mapping,
including the 32/64-bit integer split and the text override tag.
*/
func TestFromModels_ColumnTypes(t *testing.T) {
	t.Parallel()

	tables, err := FromModels(&parseOwner{}, &parseCar{})
	if err != nil {
		t.Fatalf("FromModels() unexpected error = %v", err)
	}
	cars := tables[1]

	tests := []struct {
		col  string
		want ColType
	}{
		{col: "vin", want: TypeString},
		{col: "owner_id", want: TypeBigInt},
		{col: "mileage", want: TypeInt},
		{col: "price", want: TypeFloat},
		{col: "imported", want: TypeBool},
		{col: "notes", want: TypeText},
		{col: "added_at", want: TypeTime},
		{col: "payload", want: TypeBytes},
	}
	for _, tt := range tests {
		if got := column(t, cars, tt.col).Type; got != tt.want {
			t.Fatalf("cars.%s type = %q, want %q", tt.col, got, tt.want)
		}
	}

	vin := column(t, cars, "vin")
	if vin.Size != 17 || !vin.Unique || !vin.NotNull {
		t.Fatalf("cars.vin = %+v, want unique not-null string of size 17", vin)
	}
}

/*
TestFromModels_Relations verifies the belongs-to foreign key and the
declared index on the referencing column.
*/
func TestFromModels_Relations(t *testing.T) {
	t.Parallel()

	tables, err := FromModels(&parseOwner{}, &parseCar{})
	if err != nil {
		t.Fatalf("FromModels() unexpected error = %v", err)
	}
	cars := tables[1]

	if len(cars.ForeignKeys) != 1 {
		t.Fatalf("cars has %d foreign keys, want 1", len(cars.ForeignKeys))
	}
	fk := cars.ForeignKeys[0]
	if fk.Name != "fk_parse_cars_owner" {
		t.Fatalf("foreign key name = %q, want fk_parse_cars_owner", fk.Name)
	}
	if len(fk.Columns) != 1 || fk.Columns[0] != "owner_id" {
		t.Fatalf("foreign key columns = %v, want [owner_id]", fk.Columns)
	}
	if fk.RefTable != "parse_owners" {
		t.Fatalf("foreign key references table %q, want parse_owners", fk.RefTable)
	}
	if len(fk.RefColumns) != 1 || fk.RefColumns[0] != "id" {
		t.Fatalf("foreign key references columns %v, want [id]", fk.RefColumns)
	}

	if len(cars.Indexes) != 1 {
		t.Fatalf("cars has %d indexes, want 1", len(cars.Indexes))
	}
	idx := cars.Indexes[0]
	if idx.Name != "idx_parse_cars_owner_id" || idx.Unique {
		t.Fatalf("index = %+v, want non-unique idx_parse_cars_owner_id", idx)
	}
	if len(idx.Columns) != 1 || idx.Columns[0] != "owner_id" {
		t.Fatalf("index columns = %v, want [owner_id]", idx.Columns)
	}
}

type parseWidget struct {
	ID   uint64 `gorm:"primaryKey"`
	Meta string `gorm:"type:json"`
}

// TestFromModels_Errors covers the empty group and a column type the
// exporter has no mapping for.
func TestFromModels_Errors(t *testing.T) {
	t.Parallel()

	if _, err := FromModels(); err == nil || !strings.Contains(err.Error(), "model group is empty") {
		t.Fatalf("FromModels() error = %v, want empty-group error", err)
	}

	_, err := FromModels(&parseWidget{})
	if err == nil {
		t.Fatalf("FromModels() error = nil, want unsupported type error")
	}
	if !strings.Contains(err.Error(), `unsupported data type "json"`) {
		t.Fatalf("FromModels() error = %q, want unsupported data type message", err)
	}
}
