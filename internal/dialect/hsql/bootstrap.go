package hsql

import (
	"schemagen/internal/dialect"
	"schemagen/internal/schema"
)

func init() {
	dialect.Register("hsqldb", func(o map[schema.ColType]string) dialect.Renderer {
		return New(o)
	})
}
