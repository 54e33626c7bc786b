// Package all wires all built-in dialect renderers into the dialect
// registry. Importing it (even as a blank import) runs each vendor
// package's init function, making the following vendor identifiers
// resolvable at runtime:
//
//   - "postgresql" (schemagen/internal/dialect/postgres)
//   - "oracle10g"  (schemagen/internal/dialect/oracle)
//   - "mysql"      (schemagen/internal/dialect/mysql)
//   - "hsqldb"     (schemagen/internal/dialect/hsql)
package all

import (
	_ "schemagen/internal/dialect/hsql"
	_ "schemagen/internal/dialect/mysql"
	_ "schemagen/internal/dialect/oracle"
	_ "schemagen/internal/dialect/postgres"
)
