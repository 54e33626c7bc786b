package config

import (
	"fmt"
	"sort"
	"strings"

	"schemagen/internal/dialect"
	"schemagen/internal/schema"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that should block execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a configuration warning that should be surfaced
	// to users but may not necessarily block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding for a Config.
//
// Path is a dotted path into the config (e.g. "dialects[1]",
// "type_overrides.mysql.time"). Message is human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a single
// error in contexts that expect error.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// Validate performs static validation of a Config.
//
// It does not mutate the config. Instead it returns a slice of Issue
// values; callers decide whether to treat warnings as fatal.
func Validate(c Config) []Issue {
	var issues []Issue

	issues = append(issues, validateDialects(c.Dialects)...)
	issues = append(issues, validateOverrides(c.TypeOverrides)...)
	issues = append(issues, validateMetrics(c.Metrics)...)

	return issues
}

// validateDialects checks the dialect list against the known set.
func validateDialects(names []string) []Issue {
	var issues []Issue
	seen := map[string]int{}
	for i, name := range names {
		if _, err := dialect.ByName(name); err != nil {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     fmt.Sprintf("dialects[%d]", i),
				Message:  fmt.Sprintf("unknown dialect %q", name),
			})
			continue
		}
		if first, ok := seen[name]; ok {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Path:     fmt.Sprintf("dialects[%d]", i),
				Message:  fmt.Sprintf("dialect %q already listed at index %d", name, first),
			})
			continue
		}
		seen[name] = i
	}
	return issues
}

// validateOverrides checks type override keys. Dialect names must be known;
// unknown logical types are warnings since the raw SQL type still renders.
func validateOverrides(overrides map[string]map[string]string) []Issue {
	var issues []Issue

	knownTypes := map[string]struct{}{}
	for _, t := range schema.AllTypes() {
		knownTypes[string(t)] = struct{}{}
	}

	dialectNames := make([]string, 0, len(overrides))
	for name := range overrides {
		dialectNames = append(dialectNames, name)
	}
	sort.Strings(dialectNames)

	for _, dialectName := range dialectNames {
		if _, err := dialect.ByName(dialectName); err != nil {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "type_overrides." + dialectName,
				Message:  fmt.Sprintf("unknown dialect %q", dialectName),
			})
			continue
		}

		types := make([]string, 0, len(overrides[dialectName]))
		for t := range overrides[dialectName] {
			types = append(types, t)
		}
		sort.Strings(types)

		for _, t := range types {
			path := fmt.Sprintf("type_overrides.%s.%s", dialectName, t)
			if _, ok := knownTypes[t]; !ok {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Path:     path,
					Message:  fmt.Sprintf("unknown logical type %q; override will never apply", t),
				})
			}
			if strings.TrimSpace(overrides[dialectName][t]) == "" {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Path:     path,
					Message:  "override SQL type must not be empty",
				})
			}
		}
	}
	return issues
}

// validateMetrics checks the metrics backend selection. An empty URL is
// fine for either push backend; the wiring layer falls back to the
// conventional local endpoint.
func validateMetrics(m Metrics) []Issue {
	var issues []Issue

	known := map[string]struct{}{
		"":            {},
		"none":        {},
		"pushgateway": {},
		"datadog":     {},
	}
	if _, ok := known[m.Backend]; !ok {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "metrics.backend",
			Message:  fmt.Sprintf("unknown metrics backend %q (known: none, pushgateway, datadog)", m.Backend),
		})
	}
	return issues
}
