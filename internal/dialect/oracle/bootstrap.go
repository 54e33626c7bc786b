package oracle

import (
	"schemagen/internal/dialect"
	"schemagen/internal/schema"
)

func init() {
	dialect.Register("oracle10g", func(o map[schema.ColType]string) dialect.Renderer {
		return New(o)
	})
}
