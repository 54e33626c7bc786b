// Package postgres renders PostgreSQL-flavored DDL fragments. Type names
// follow the classic short forms (int8, float8) used by the upstream
// exporter this tool replaced.
package postgres

import (
	"fmt"

	"schemagen/internal/schema"
)

// mapType maps a logical column type onto the PostgreSQL SQL type.
//
//	bool   -> boolean
//	int    -> int4
//	bigint -> int8
//	float  -> float8
//	string -> varchar(n), n defaulting to 255
//	text   -> text
//	time   -> timestamp
//	bytes  -> bytea
func mapType(c schema.Column) (string, error) {
	switch c.Type {
	case schema.TypeBool:
		return "boolean", nil
	case schema.TypeInt:
		return "int4", nil
	case schema.TypeBigInt:
		return "int8", nil
	case schema.TypeFloat:
		return "float8", nil
	case schema.TypeString:
		size := c.Size
		if size <= 0 {
			size = 255
		}
		return fmt.Sprintf("varchar(%d)", size), nil
	case schema.TypeText:
		return "text", nil
	case schema.TypeTime:
		return "timestamp", nil
	case schema.TypeBytes:
		return "bytea", nil
	}
	return "", fmt.Errorf("postgres: no SQL type for %q", c.Type)
}
