package export

import (
	"os"
	"strings"
	"testing"

	"schemagen/internal/dialect"
	"schemagen/internal/schema"

	// register the vendor renderers the runs are driven through.
	_ "schemagen/internal/dialect/all"
)

type expOwner struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:64;not null"`
}

type expCar struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	OwnerID uint64 `gorm:"not null"`
	Owner   *expOwner
}

/*
TestRun_WritesCleanArtifacts runs a full default-set export into a temp
directory and checks every artifact: expected file name, drop statements
stripped, create statements intact, and the result metadata filled in.
*/
func TestRun_WritesCleanArtifacts(t *testing.T) {
	schema.Register("test.export", &expOwner{}, &expCar{})
	dir := t.TempDir()

	sum, err := Run(Request{Source: "test.export", OutDir: dir})
	if err != nil {
		t.Fatalf("Run() unexpected error = %v", err)
	}
	if sum.Failed != 0 {
		t.Fatalf("Run() Failed = %d, want 0; results: %+v", sum.Failed, sum.Results)
	}
	if sum.RunID == "" || sum.Source != "test.export" {
		t.Fatalf("Run() summary = %+v, want run id and source set", sum)
	}
	if len(sum.Results) != 3 {
		t.Fatalf("Run() produced %d results, want 3 (default set)", len(sum.Results))
	}

	for i, want := range dialect.DefaultSet() {
		res := sum.Results[i]
		if res.Dialect != want {
			t.Fatalf("result %d dialect = %+v, want %+v", i, res.Dialect, want)
		}
		if res.Err != nil {
			t.Fatalf("result %d (%s) error = %v", i, want.Name, res.Err)
		}
		if res.Path != FilePath(dir, want, "test.export") {
			t.Fatalf("result %d path = %q, want %q", i, res.Path, FilePath(dir, want, "test.export"))
		}

		b, err := os.ReadFile(res.Path)
		if err != nil {
			t.Fatalf("read artifact %s: %v", res.Path, err)
		}
		content := string(b)
		if strings.Contains(content, "drop") {
			t.Fatalf("%s artifact still contains drop statements:\n%s", want.Name, content)
		}
		if !strings.Contains(content, "create table exp_owners") ||
			!strings.Contains(content, "create table exp_cars") {
			t.Fatalf("%s artifact is missing create statements:\n%s", want.Name, content)
		}
		if res.Bytes != int64(len(b)) {
			t.Fatalf("%s result bytes = %d, file has %d", want.Name, res.Bytes, len(b))
		}
		if res.Removed == 0 {
			t.Fatalf("%s result removed = 0, want the drop prefix counted", want.Name)
		}
		if res.Fingerprint == 0 {
			t.Fatalf("%s result fingerprint = 0, want xxh3 of the artifact", want.Name)
		}
	}

	// Vendor spot checks on the cleaned artifacts.
	pg, _ := os.ReadFile(FilePath(dir, dialect.Postgres, "test.export"))
	if !strings.Contains(string(pg), "create sequence exp_owners_id_seq") {
		t.Fatalf("postgres artifact is missing sequences:\n%s", pg)
	}
	my, _ := os.ReadFile(FilePath(dir, dialect.MySQL, "test.export"))
	if !strings.Contains(string(my), "auto_increment") {
		t.Fatalf("mysql artifact is missing auto_increment:\n%s", my)
	}
	ora, _ := os.ReadFile(FilePath(dir, dialect.Oracle, "test.export"))
	if !strings.Contains(string(ora), "number(19,0)") {
		t.Fatalf("oracle artifact is missing number types:\n%s", ora)
	}
}

// TestRun_SourceRequired verifies the empty-source configuration error.
func TestRun_SourceRequired(t *testing.T) {
	t.Parallel()

	_, err := Run(Request{})
	if err == nil || !strings.Contains(err.Error(), "schema source is required") {
		t.Fatalf("Run() error = %v, want source-required error", err)
	}
}

// TestRun_UnknownSource verifies an unresolvable source fails the run
// before any dialect, with the export prefix on the error.
func TestRun_UnknownSource(t *testing.T) {
	dir := t.TempDir()

	_, err := Run(Request{Source: "test.no-such", OutDir: dir})
	if err == nil {
		t.Fatalf("Run() error = nil, want non-nil for unknown source")
	}
	if !strings.HasPrefix(err.Error(), "export: ") ||
		!strings.Contains(err.Error(), "no model group registered") {
		t.Fatalf("Run() error = %q, want wrapped unknown-source error", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("Run() wrote artifacts despite fatal source error: %v", entries)
	}
}

/*
TestRun_FailedDialectContinues verifies per-dialect isolation: a dialect
with no registered renderer is reported in the summary while the remaining
dialects still export.
*/
func TestRun_FailedDialectContinues(t *testing.T) {
	schema.Register("test.export.isolation", &expOwner{})
	dir := t.TempDir()

	bogus := dialect.Descriptor{Name: "bogus", SQL: "bogus"}
	sum, err := Run(Request{
		Source:   "test.export.isolation",
		OutDir:   dir,
		Dialects: []dialect.Descriptor{bogus, dialect.Postgres},
	})
	if err != nil {
		t.Fatalf("Run() unexpected error = %v; per-dialect failures must not abort", err)
	}
	if sum.Failed != 1 {
		t.Fatalf("Run() Failed = %d, want 1", sum.Failed)
	}
	if len(sum.Results) != 2 {
		t.Fatalf("Run() produced %d results, want 2", len(sum.Results))
	}

	if sum.Results[0].Err == nil ||
		!strings.Contains(sum.Results[0].Err.Error(), "no renderer registered") {
		t.Fatalf("bogus dialect error = %v, want no-renderer error", sum.Results[0].Err)
	}
	if sum.Results[1].Err != nil {
		t.Fatalf("postgres result error = %v, want nil", sum.Results[1].Err)
	}

	if _, err := os.Stat(FilePath(dir, dialect.Postgres, "test.export.isolation")); err != nil {
		t.Fatalf("postgres artifact missing after isolated failure: %v", err)
	}
}

// TestRun_TypeOverridesPerDialect verifies overrides are keyed by dialect
// short name and reach the rendered artifact.
func TestRun_TypeOverridesPerDialect(t *testing.T) {
	schema.Register("test.export.overrides", &expOwner{})
	dir := t.TempDir()

	sum, err := Run(Request{
		Source:   "test.export.overrides",
		OutDir:   dir,
		Dialects: []dialect.Descriptor{dialect.Postgres},
		TypeOverrides: map[string]map[schema.ColType]string{
			"postgres": {schema.TypeBigInt: "bigint"},
		},
	})
	if err != nil {
		t.Fatalf("Run() unexpected error = %v", err)
	}
	if sum.Failed != 0 {
		t.Fatalf("Run() Failed = %d, want 0", sum.Failed)
	}

	b, err := os.ReadFile(FilePath(dir, dialect.Postgres, "test.export.overrides"))
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if !strings.Contains(string(b), "id bigint not null") {
		t.Fatalf("override did not reach the artifact:\n%s", b)
	}
	if strings.Contains(string(b), "int8") {
		t.Fatalf("built-in mapping used despite override:\n%s", b)
	}
}
