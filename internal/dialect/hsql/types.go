// Package hsql renders HSQLDB-flavored DDL fragments. HSQLDB is kept for
// parity with the embedded test databases some downstream consumers run
// against; it is not part of the default export set.
package hsql

import (
	"fmt"

	"schemagen/internal/schema"
)

// mapType maps a logical column type onto the HSQLDB SQL type.
//
//	bool   -> boolean
//	int    -> integer
//	bigint -> bigint
//	float  -> double
//	string -> varchar(n), n defaulting to 255
//	text   -> longvarchar
//	time   -> timestamp
//	bytes  -> longvarbinary
func mapType(c schema.Column) (string, error) {
	switch c.Type {
	case schema.TypeBool:
		return "boolean", nil
	case schema.TypeInt:
		return "integer", nil
	case schema.TypeBigInt:
		return "bigint", nil
	case schema.TypeFloat:
		return "double", nil
	case schema.TypeString:
		size := c.Size
		if size <= 0 {
			size = 255
		}
		return fmt.Sprintf("varchar(%d)", size), nil
	case schema.TypeText:
		return "longvarchar", nil
	case schema.TypeTime:
		return "timestamp", nil
	case schema.TypeBytes:
		return "longvarbinary", nil
	}
	return "", fmt.Errorf("hsql: no SQL type for %q", c.Type)
}
