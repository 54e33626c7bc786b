package postgres

import (
	"schemagen/internal/dialect"
	"schemagen/internal/schema"
)

func init() {
	dialect.Register("postgresql", func(o map[schema.ColType]string) dialect.Renderer {
		return New(o)
	})
}
