// Package mysql renders MySQL-flavored DDL fragments.
//
// The timestamp mapping defaults to datetime(3): MySQL's plain datetime
// truncates fractional seconds, which silently degrades any sub-second
// timestamp data loaded into an exported schema. Config-level overrides can
// still replace the mapping.
package mysql

import (
	"fmt"

	"schemagen/internal/schema"
)

// mapType maps a logical column type onto the MySQL SQL type. The time
// mapping here is the plain vendor default; New installs the datetime(3)
// override on top of it.
//
//	bool   -> bit
//	int    -> integer
//	bigint -> bigint
//	float  -> double precision
//	string -> varchar(n), n defaulting to 255
//	text   -> longtext
//	time   -> datetime
//	bytes  -> longblob
func mapType(c schema.Column) (string, error) {
	switch c.Type {
	case schema.TypeBool:
		return "bit", nil
	case schema.TypeInt:
		return "integer", nil
	case schema.TypeBigInt:
		return "bigint", nil
	case schema.TypeFloat:
		return "double precision", nil
	case schema.TypeString:
		size := c.Size
		if size <= 0 {
			size = 255
		}
		return fmt.Sprintf("varchar(%d)", size), nil
	case schema.TypeText:
		return "longtext", nil
	case schema.TypeTime:
		return "datetime", nil
	case schema.TypeBytes:
		return "longblob", nil
	}
	return "", fmt.Errorf("mysql: no SQL type for %q", c.Type)
}
