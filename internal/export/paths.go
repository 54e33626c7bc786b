package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"schemagen/internal/dialect"
)

// FilePath derives the artifact path for one dialect. It is a pure function
// of the output directory, the dialect, and the source identifier; the raw
// script and the cleaned script share this path (cleanup happens in place).
//
// The file name is ddl_<dialect>_<source>.sql with the source's dots
// replaced by underscores, e.g. ddl_postgres_rsv_core.sql.
func FilePath(outDir string, d dialect.Descriptor, source string) string {
	name := fmt.Sprintf("ddl_%s_%s.sql",
		strings.ToLower(d.Name),
		strings.ReplaceAll(source, ".", "_"))
	return filepath.Join(outDir, name)
}
