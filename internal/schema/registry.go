package schema

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	regMu  sync.RWMutex
	groups = map[string][]any{}
)

// Register registers (or replaces) the model group for the given schema
// source identifier, e.g. "rsv.core". It is typically called from model
// packages' init() functions; the declaration order of models becomes the
// table order in generated scripts, so parents should precede children.
func Register(source string, models ...any) {
	regMu.Lock()
	defer regMu.Unlock()
	groups[source] = models
}

// Resolve looks up the model group registered under the source identifier
// and parses it into table metadata.
//
// An unknown identifier is a configuration error: nothing can be generated
// without a registered group, so callers are expected to fail the whole run
// before any dialect is attempted.
func Resolve(source string) ([]*Table, error) {
	regMu.RLock()
	models, ok := groups[source]
	regMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("schema: no model group registered for source %q (known: %s)",
			source, strings.Join(Sources(), ", "))
	}
	return FromModels(models...)
}

// Sources returns all registered source identifiers, sorted.
func Sources() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]string, 0, len(groups))
	for k := range groups {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
