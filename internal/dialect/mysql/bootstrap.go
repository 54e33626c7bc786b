package mysql

import (
	"schemagen/internal/dialect"
	"schemagen/internal/schema"
)

func init() {
	dialect.Register("mysql", func(o map[schema.ColType]string) dialect.Renderer {
		return New(o)
	})
}
