package dialect

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"

	"schemagen/internal/schema"
)

type fakeRenderer struct {
	overrides map[schema.ColType]string
}

func (f *fakeRenderer) TypeFor(c schema.Column) (string, error)          { return "t", nil }
func (f *fakeRenderer) QuoteIdent(id string) string                      { return id }
func (f *fakeRenderer) DropTable(table string) string                    { return "drop table " + table }
func (f *fakeRenderer) DropForeignKey(table, name string) (string, bool) { return "", false }
func (f *fakeRenderer) DropSequence(name string) (string, bool)          { return "", false }
func (f *fakeRenderer) CreateSequence(name string) (string, bool)        { return "", false }
func (f *fakeRenderer) AutoIncrementSuffix() string                      { return "" }

// TestByName verifies short-name resolution, including that vendor SQL
// identifiers and differently-cased names are rejected.
func TestByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantSQL string
		wantErr bool
	}{
		{name: "postgres", in: "postgres", wantSQL: "postgresql"},
		{name: "oracle", in: "oracle", wantSQL: "oracle10g"},
		{name: "mysql", in: "mysql", wantSQL: "mysql"},
		{name: "hsql", in: "hsql", wantSQL: "hsqldb"},
		{name: "vendor identifier rejected", in: "postgresql", wantErr: true},
		{name: "case sensitive", in: "Postgres", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt // capture range variable
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := ByName(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ByName(%q) error = nil, want non-nil", tt.in)
				}
				if !strings.Contains(err.Error(), "unknown dialect") {
					t.Fatalf("ByName(%q) error = %q, want unknown-dialect message", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ByName(%q) unexpected error = %v", tt.in, err)
			}
			if d.SQL != tt.wantSQL {
				t.Fatalf("ByName(%q).SQL = %q, want %q", tt.in, d.SQL, tt.wantSQL)
			}
		})
	}
}

// TestDefaultSet pins the default export order and that hsql stays out of
// it unless asked for.
func TestDefaultSet(t *testing.T) {
	t.Parallel()

	got := DefaultSet()
	want := []Descriptor{Postgres, Oracle, MySQL}
	if len(got) != len(want) {
		t.Fatalf("DefaultSet() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DefaultSet()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	for _, d := range got {
		if d == HSQL {
			t.Fatalf("DefaultSet() includes hsql")
		}
	}
}

// TestNew_UnknownRenderer verifies the lookup error for an unregistered
// vendor identifier.
func TestNew_UnknownRenderer(t *testing.T) {
	t.Parallel()

	_, err := New(Descriptor{Name: "x", SQL: "no-such"}, nil)
	if err == nil {
		t.Fatalf("New() error = nil, want non-nil")
	}
	if !strings.Contains(err.Error(), `no renderer registered for "no-such"`) {
		t.Fatalf("New() error = %q, want no-renderer message", err)
	}
}

// TestRegisterAndNew verifies factories receive the overrides and every
// New call yields an independent renderer.
func TestRegisterAndNew(t *testing.T) {
	Register("fake", func(o map[schema.ColType]string) Renderer {
		return &fakeRenderer{overrides: o}
	})

	d := Descriptor{Name: "fake", SQL: "fake"}
	ov := map[schema.ColType]string{schema.TypeTime: "datetime(3)"}

	r1, err := New(d, ov)
	if err != nil {
		t.Fatalf("New() unexpected error = %v", err)
	}
	fr, ok := r1.(*fakeRenderer)
	if !ok {
		t.Fatalf("New() returned %T, want *fakeRenderer", r1)
	}
	if fr.overrides[schema.TypeTime] != "datetime(3)" {
		t.Fatalf("factory overrides = %v, want the ones passed to New", fr.overrides)
	}

	r2, err := New(d, nil)
	if err != nil {
		t.Fatalf("New() unexpected error = %v", err)
	}
	if r1 == r2 {
		t.Fatalf("New() returned the same renderer twice; instances must be independent")
	}
}

// TestRegister_Concurrent exercises factory registration and lookup from
// parallel goroutines.
func TestRegister_Concurrent(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			sqlName := fmt.Sprintf("fake-%d", i)
			Register(sqlName, func(o map[schema.ColType]string) Renderer {
				return &fakeRenderer{overrides: o}
			})
			if _, err := New(Descriptor{Name: sqlName, SQL: sqlName}, nil); err != nil {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent register/new: %v", err)
	}
}
