// Package columns maps the free-form headers of an uploaded sheet onto the
// canonical field names the importers understand.
package columns

import (
	"slices"

	"github.com/schollz/closestmatch"

	"github.com/ebisa/contabil/internal/apperr"
	"github.com/ebisa/contabil/internal/locale"
)

// Table is a header row plus data rows. Rows may be ragged.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Alias lists the accepted spellings of one canonical field. The canonical
// name itself is always accepted, ahead of the listed names.
type Alias struct {
	Canonical string
	Names     []string
}

// AliasMap is ordered: earlier canonical fields claim columns first.
type AliasMap []Alias

type Result struct {
	Table   Table
	Dropped []string
	// Renamed maps each canonical field to the header it was read from.
	Renamed map[string]string
}

// Reconcile renames the recognised columns of t, drops the rest and checks
// that every required field is present. Each raw column is claimed at most
// once and each canonical field at most once.
func Reconcile(t Table, aliases AliasMap, required []string) (Result, error) {
	normalized := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		normalized[i] = locale.NormalizeHeader(c)
	}

	assigned := make([]string, len(t.Columns))
	renamed := make(map[string]string, len(aliases))

	for _, a := range aliases {
		if idx := claim(a, normalized, assigned); idx >= 0 {
			assigned[idx] = a.Canonical
			renamed[a.Canonical] = t.Columns[idx]
		}
	}

	var (
		keep    []int
		dropped []string
		out     Table
	)

	for i, canonical := range assigned {
		if canonical == "" {
			if normalized[i] != "" {
				dropped = append(dropped, t.Columns[i])
			}

			continue
		}

		keep = append(keep, i)
		out.Columns = append(out.Columns, canonical)
	}

	out.Rows = make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		projected := make([]string, len(keep))
		for j, idx := range keep {
			if idx < len(row) {
				projected[j] = row[idx]
			}
		}

		out.Rows = append(out.Rows, projected)
	}

	res := Result{Table: out, Dropped: dropped, Renamed: renamed}

	var missing []string

	for _, r := range required {
		if _, ok := renamed[r]; !ok {
			missing = append(missing, r)
		}
	}

	if len(missing) > 0 {
		return res, &apperr.SchemaError{
			Missing: missing,
			Columns: out.Columns,
			Hints:   hints(missing, dropped),
		}
	}

	return res, nil
}

func claim(a Alias, normalized, assigned []string) int {
	names := append([]string{a.Canonical}, a.Names...)

	for _, name := range names {
		want := locale.NormalizeHeader(name)

		for i, got := range normalized {
			if assigned[i] == "" && got != "" && got == want {
				return i
			}
		}
	}

	return -1
}

// hints suggests, for each missing field, the unrecognised header that
// looks most like it.
func hints(missing, dropped []string) map[string]string {
	if len(dropped) == 0 {
		return nil
	}

	byKey := make(map[string]string, len(dropped))
	keys := make([]string, 0, len(dropped))

	for _, d := range dropped {
		k := locale.NormalizeHeader(d)
		if _, dup := byKey[k]; dup {
			continue
		}

		byKey[k] = d
		keys = append(keys, k)
	}

	cm := closestmatch.New(keys, []int{2, 3})
	out := make(map[string]string, len(missing))

	for _, m := range missing {
		if match := cm.Closest(m); match != "" {
			out[m] = byKey[match]
		}
	}

	return out
}

// Index returns the position of each canonical column in t.
func (t Table) Index() map[string]int {
	idx := make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		if !slices.Contains(t.Columns[:i], c) {
			idx[c] = i
		}
	}

	return idx
}
