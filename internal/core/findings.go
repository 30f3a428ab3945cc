// Package core implements the validation rules, report rendering and
// request orchestration for matrix workbooks.
package core

// Finding is one rule violation discovered during a validation run. A
// finding is ordinary data, not an error: a workbook full of findings is
// still a successfully validated workbook.
type Finding struct {
	// Message is the human-readable description, already formatted for
	// the report (Spanish, with the cell reference embedded).
	Message string
}

// ValidationReport is the ordered outcome of one validation run.
// Ordering is fixed: header findings first, then duplicate questions,
// then forbidden characters, each in discovery order.
type ValidationReport struct {
	Findings []Finding
}

// Passed reports whether the run produced no findings.
func (r ValidationReport) Passed() bool { return len(r.Findings) == 0 }
