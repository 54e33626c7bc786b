// Package oracle renders Oracle-flavored DDL fragments (Oracle 10g syntax:
// number-based integers, varchar2 with char semantics, clob/blob LOBs).
package oracle

import (
	"fmt"

	"schemagen/internal/schema"
)

// mapType maps a logical column type onto the Oracle SQL type.
//
//	bool   -> number(1,0)
//	int    -> number(10,0)
//	bigint -> number(19,0)
//	float  -> double precision
//	string -> varchar2(n char), n defaulting to 255
//	text   -> clob
//	time   -> timestamp
//	bytes  -> blob
func mapType(c schema.Column) (string, error) {
	switch c.Type {
	case schema.TypeBool:
		return "number(1,0)", nil
	case schema.TypeInt:
		return "number(10,0)", nil
	case schema.TypeBigInt:
		return "number(19,0)", nil
	case schema.TypeFloat:
		return "double precision", nil
	case schema.TypeString:
		size := c.Size
		if size <= 0 {
			size = 255
		}
		return fmt.Sprintf("varchar2(%d char)", size), nil
	case schema.TypeText:
		return "clob", nil
	case schema.TypeTime:
		return "timestamp", nil
	case schema.TypeBytes:
		return "blob", nil
	}
	return "", fmt.Errorf("oracle: no SQL type for %q", c.Type)
}
