// Package all wires all built-in model groups into the schema registry.
//
// This package exists purely for side effects: importing it (even as a blank
// import) causes the init functions of each model package to run, which in
// turn register their groups with the schema package.
//
// Importing this package makes the following schema sources resolvable at
// runtime:
//
//   - "rsv.core"  (schemagen/internal/models/rsv)
//   - "rsv.audit" (schemagen/internal/models/rsv)
//
// Typical usage (in cmd/schemagen/main.go or a similar wiring layer):
//
//	import (
//	    _ "schemagen/internal/models/all" // enable all model groups
//	)
//
// A binary that should only expose a subset of groups can import the
// individual model packages instead of this one.
package all

import (
	_ "schemagen/internal/models/rsv"
)
