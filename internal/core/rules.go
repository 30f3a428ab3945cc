package core

// rules.go contains the three validation checks applied to every uploaded
// matrix workbook:
//
//  1. Header check: row 1 must carry the fixed column labels.
//  2. Duplicate-question check: column C must not repeat a question.
//  3. Forbidden-character check: no text cell may contain a character from
//     the forbidden set.
//
// Each check is a pure function over the grid returning its findings in
// discovery order. The checks are independent: all three always run, and
// Validate concatenates their results in the order above.

import (
	"fmt"
	"strings"

	"github.com/validador-matrices/api/internal/grid"
)

// expectedHeaders are the required labels for columns A, B and C of row 1,
// compared case-sensitively after trimming.
var expectedHeaders = [3]string{"Capitulo", "Subcapitulo", "Preguntas"}

// questionCol is the 1-based column holding the question text.
const questionCol = 3

// forbiddenChars is the set of characters disallowed in any text cell.
const forbiddenChars = "!@#$%&/()=¡¨*[];:_°|¬"

// Validate runs all three checks over the grid and returns the combined
// report.
func Validate(g *grid.Grid) ValidationReport {
	var findings []Finding
	findings = append(findings, CheckHeaders(g)...)
	findings = append(findings, CheckDuplicateQuestions(g)...)
	findings = append(findings, CheckForbiddenChars(g)...)
	return ValidationReport{Findings: findings}
}

// CheckHeaders verifies that row 1 columns A-C hold exactly the expected
// labels. Every column is checked independently; a mismatch in one never
// hides a mismatch in another. An absent cell compares as the empty
// string.
func CheckHeaders(g *grid.Grid) []Finding {
	var findings []Finding
	for i, want := range expectedHeaders {
		col := i + 1
		got := strings.TrimSpace(g.Cell(1, col).Value)
		if got != want {
			findings = append(findings, Finding{
				Message: fmt.Sprintf("❌ Celda %s debería contener '%s', pero tiene '%s'",
					grid.Ref(1, col), want, got),
			})
		}
	}
	return findings
}

// CheckDuplicateQuestions groups the trimmed question texts of column C
// (rows 2 onward) and emits one finding per group that occurs more than
// once, listing every row in the group. Groups appear in the order their
// first occurrence was seen; empty cells never participate.
func CheckDuplicateQuestions(g *grid.Grid) []Finding {
	rowsByText := make(map[string][]int)
	var order []string

	for row := 2; row <= g.Rows(); row++ {
		cell := g.Cell(row, questionCol)
		if cell.IsEmpty() {
			continue
		}
		text := strings.TrimSpace(cell.Value)
		if text == "" {
			continue
		}
		if _, seen := rowsByText[text]; !seen {
			order = append(order, text)
		}
		rowsByText[text] = append(rowsByText[text], row)
	}

	var findings []Finding
	for _, text := range order {
		rows := rowsByText[text]
		if len(rows) < 2 {
			continue
		}
		findings = append(findings, Finding{
			Message: fmt.Sprintf("❌ Pregunta duplicada en filas %s: '%s'", formatRows(rows), text),
		})
	}
	return findings
}

// formatRows renders a row list as "[2, 3, 7]".
func formatRows(rows []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, r := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", r)
	}
	b.WriteByte(']')
	return b.String()
}

// CheckForbiddenChars scans every text cell of the grid (header row
// included) and reports the first forbidden character it finds in a cell.
// Remaining forbidden characters in the same cell are deliberately not
// reported separately; one finding per offending cell.
func CheckForbiddenChars(g *grid.Grid) []Finding {
	var findings []Finding
	for row := 1; row <= g.Rows(); row++ {
		for col := 1; col <= g.Cols(row); col++ {
			cell := g.Cell(row, col)
			if cell.Kind != grid.Text {
				continue
			}
			for _, r := range cell.Value {
				if strings.ContainsRune(forbiddenChars, r) {
					findings = append(findings, Finding{
						Message: fmt.Sprintf("❌ Celda %s contiene caracter prohibido '%c' en: '%s'",
							grid.Ref(row, col), r, cell.Value),
					})
					break
				}
			}
		}
	}
	return findings
}
