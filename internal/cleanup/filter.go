// Package cleanup strips drop statements from generated schema scripts.
//
// Generated scripts open with drop statements (constraints, tables,
// sequences) so they can be re-applied over an existing database. Shipped
// schema-creation artifacts must not carry those drops; this package
// removes them while passing every other statement block through byte for
// byte.
//
// The filter works line by line with the statement block (lines up to and
// including the blank separator line) as the unit of removal:
//
//   - lines containing "drop table" or "drop sequence" start a skipped block
//   - an "alter table" line starts a skipped block when the drop verb sits
//     on the same line or the next one; any other alter block passes through
//   - every other line passes through unchanged, terminator included
//
// Matching is raw, case-sensitive substring containment, checked in the
// order above with first match winning. A data value that happens to
// contain a trigger substring will be misclassified; that is an accepted
// limitation of the line-based convention. End of input acts as an implicit
// block terminator in every state, so truncated input never fails.
package cleanup

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// state is the filter's position within the line stream.
type state int

const (
	// stateScanning classifies the first line of each block.
	stateScanning state = iota
	// stateSkippingUntilBlank discards lines up to and including the next
	// blank separator line.
	stateSkippingUntilBlank
	// statePassThroughPending holds a buffered alter line whose fate
	// depends on the following line.
	statePassThroughPending
)

// filter is the three-state machine. It never touches I/O itself; emitted
// lines go through the out callback, which keeps the transitions
// independently testable.
type filter struct {
	out     func(line string) error
	st      state
	pending string
	removed int
}

func newFilter(out func(string) error) *filter {
	return &filter{out: out}
}

// feed classifies one raw line, terminator included, and emits whatever
// survives.
func (f *filter) feed(line string) error {
	body := strings.TrimRight(line, "\r\n")

	switch f.st {
	case stateSkippingUntilBlank:
		f.removed++
		if body == "" {
			f.st = stateScanning
		}
		return nil

	case statePassThroughPending:
		if strings.Contains(body, "drop") {
			// The buffered alter line opened a drop-constraint block.
			f.removed += 2
			f.pending = ""
			f.st = stateSkippingUntilBlank
			return nil
		}
		if err := f.out(f.pending); err != nil {
			return err
		}
		f.pending = ""
		f.st = stateScanning
		return f.out(line)
	}

	switch {
	case strings.Contains(body, "drop table"),
		strings.Contains(body, "drop sequence"):
		f.removed++
		f.st = stateSkippingUntilBlank
		return nil

	case strings.Contains(body, "alter table"):
		if strings.Contains(body, "drop") {
			// Single-line drop-constraint form.
			f.removed++
			f.st = stateSkippingUntilBlank
			return nil
		}
		f.pending = line
		f.st = statePassThroughPending
		return nil

	default:
		return f.out(line)
	}
}

// finish flushes a buffered alter line at end of input. A lone trailing
// alter line is ordinary content and must survive.
func (f *filter) finish() error {
	if f.st != statePassThroughPending {
		f.st = stateScanning
		return nil
	}
	line := f.pending
	f.pending = ""
	f.st = stateScanning
	return f.out(line)
}

// Stats reports what one filter pass did.
type Stats struct {
	LinesIn      int
	LinesOut     int
	LinesRemoved int
}

// Stream copies r to w with drop statement blocks removed. Surviving lines
// are written exactly as read, original terminators included, so a second
// pass over cleaned output is a no-op.
func Stream(r io.Reader, w io.Writer) (Stats, error) {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	var stats Stats
	f := newFilter(func(line string) error {
		stats.LinesOut++
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("cleanup: write: %w", err)
		}
		return nil
	})

	for {
		line, readErr := br.ReadString('\n')
		if line != "" {
			stats.LinesIn++
			if err := f.feed(line); err != nil {
				return stats, err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return stats, fmt.Errorf("cleanup: read: %w", readErr)
		}
	}
	if err := f.finish(); err != nil {
		return stats, err
	}
	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("cleanup: write: %w", err)
	}

	stats.LinesRemoved = f.removed
	return stats, nil
}
