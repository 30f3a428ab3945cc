package core

import (
	"strings"
	"testing"

	"github.com/validador-matrices/api/internal/grid"
)

// validHeader is a correct first row for building test grids.
var validHeader = []string{"Capitulo", "Subcapitulo", "Preguntas"}

func TestCheckHeaders(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want []string
	}{
		{
			name: "exact headers pass",
			rows: [][]string{validHeader},
			want: nil,
		},
		{
			name: "padded headers pass after trimming",
			rows: [][]string{{"  Capitulo ", "Subcapitulo", " Preguntas"}},
			want: nil,
		},
		{
			name: "wrong first column",
			rows: [][]string{{"Capítulo", "Subcapitulo", "Preguntas"}},
			want: []string{"❌ Celda A1 debería contener 'Capitulo', pero tiene 'Capítulo'"},
		},
		{
			name: "wrong case is a mismatch",
			rows: [][]string{{"Capitulo", "SUBCAPITULO", "Preguntas"}},
			want: []string{"❌ Celda B1 debería contener 'Subcapitulo', pero tiene 'SUBCAPITULO'"},
		},
		{
			name: "missing third column reported as empty",
			rows: [][]string{{"Capitulo", "Subcapitulo"}},
			want: []string{"❌ Celda C1 debería contener 'Preguntas', pero tiene ''"},
		},
		{
			name: "empty grid reports all three",
			rows: nil,
			want: []string{
				"❌ Celda A1 debería contener 'Capitulo', pero tiene ''",
				"❌ Celda B1 debería contener 'Subcapitulo', pero tiene ''",
				"❌ Celda C1 debería contener 'Preguntas', pero tiene ''",
			},
		},
		{
			name: "one mismatch does not hide another",
			rows: [][]string{{"X", "Subcapitulo", "Y"}},
			want: []string{
				"❌ Celda A1 debería contener 'Capitulo', pero tiene 'X'",
				"❌ Celda C1 debería contener 'Preguntas', pero tiene 'Y'",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckHeaders(grid.FromRows(tt.rows))
			assertMessages(t, got, tt.want)
		})
	}
}

func TestCheckDuplicateQuestions(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want []string
	}{
		{
			name: "no duplicates, no findings",
			rows: [][]string{
				validHeader,
				{"1", "1.1", "¿Qué es X?"},
				{"1", "1.2", "¿Qué es Y?"},
			},
			want: nil,
		},
		{
			name: "simple duplicate lists both rows",
			rows: [][]string{
				validHeader,
				{"1", "1.1", "¿Qué es X?"},
				{"1", "1.2", "¿Qué es X?"},
			},
			want: []string{"❌ Pregunta duplicada en filas [2, 3]: '¿Qué es X?'"},
		},
		{
			name: "trimming groups padded variants together",
			rows: [][]string{
				validHeader,
				{"1", "1.1", "  ¿Qué es X?  "},
				{"1", "1.2", "¿Qué es X?"},
			},
			want: []string{"❌ Pregunta duplicada en filas [2, 3]: '¿Qué es X?'"},
		},
		{
			name: "triple occurrence reports all rows once",
			rows: [][]string{
				validHeader,
				{"1", "1.1", "¿Qué es X?"},
				{"1", "1.2", "¿Qué es Y?"},
				{"2", "2.1", "¿Qué es X?"},
				{"2", "2.2", "¿Qué es X?"},
			},
			want: []string{"❌ Pregunta duplicada en filas [2, 4, 5]: '¿Qué es X?'"},
		},
		{
			name: "groups reported in first-seen order",
			rows: [][]string{
				validHeader,
				{"1", "1.1", "B"},
				{"1", "1.2", "A"},
				{"2", "2.1", "B"},
				{"2", "2.2", "A"},
			},
			want: []string{
				"❌ Pregunta duplicada en filas [2, 4]: 'B'",
				"❌ Pregunta duplicada en filas [3, 5]: 'A'",
			},
		},
		{
			name: "empty question cells are ignored",
			rows: [][]string{
				validHeader,
				{"1", "1.1", ""},
				{"1", "1.2", "   "},
				{"2", "2.1", ""},
			},
			want: nil,
		},
		{
			name: "header row is not a question",
			rows: [][]string{
				validHeader,
				{"1", "1.1", "Preguntas"},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckDuplicateQuestions(grid.FromRows(tt.rows))
			assertMessages(t, got, tt.want)
		})
	}
}

func TestCheckForbiddenChars(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want []string
	}{
		{
			name: "clean text produces no findings",
			rows: [][]string{
				validHeader,
				{"Uno", "Uno punto uno", "¿Qué es X?"},
			},
			want: nil,
		},
		{
			name: "single forbidden character",
			rows: [][]string{
				{"Capitulo", "Sub@capitulo", "Preguntas"},
			},
			want: []string{"❌ Celda B1 contiene caracter prohibido '@' en: 'Sub@capitulo'"},
		},
		{
			name: "only first forbidden character in a cell is reported",
			rows: [][]string{
				{"tiene !varios@ aquí#"},
			},
			want: []string{"❌ Celda A1 contiene caracter prohibido '!' en: 'tiene !varios@ aquí#'"},
		},
		{
			name: "multiple offending cells each get one finding",
			rows: [][]string{
				validHeader,
				{"cap(1)", "sub", "pregunta_uno"},
			},
			want: []string{
				"❌ Celda A2 contiene caracter prohibido '(' en: 'cap(1)'",
				"❌ Celda C2 contiene caracter prohibido '_' en: 'pregunta_uno'",
			},
		},
		{
			name: "numeric cells are skipped",
			rows: [][]string{
				validHeader,
				{"3", "4.5", "¿Qué?"},
			},
			want: nil,
		},
		{
			name: "non-ascii forbidden characters detected",
			rows: [][]string{
				{"inverted¡aquí", "diéresis¨aquí", "negación¬aquí"},
			},
			want: []string{
				"❌ Celda A1 contiene caracter prohibido '¡' en: 'inverted¡aquí'",
				"❌ Celda B1 contiene caracter prohibido '¨' en: 'diéresis¨aquí'",
				"❌ Celda C1 contiene caracter prohibido '¬' en: 'negación¬aquí'",
			},
		},
		{
			name: "question marks and accents are allowed",
			rows: [][]string{
				{"¿Cuál es la razón más común?"},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckForbiddenChars(grid.FromRows(tt.rows))
			assertMessages(t, got, tt.want)
		})
	}
}

func TestValidateOrdering(t *testing.T) {
	// One violation of each kind: findings must come out header first,
	// then duplicates, then forbidden characters.
	rows := [][]string{
		{"Capitulo", "Subcapitulo", "Pregunta"},
		{"1", "1.1", "misma pregunta#1"},
		{"1", "1.2", "misma pregunta#1"},
	}

	rep := Validate(grid.FromRows(rows))
	if rep.Passed() {
		t.Fatal("Passed() = true for a grid with violations")
	}

	var kinds []string
	for _, f := range rep.Findings {
		switch {
		case strings.Contains(f.Message, "debería contener"):
			kinds = append(kinds, "header")
		case strings.Contains(f.Message, "Pregunta duplicada"):
			kinds = append(kinds, "duplicate")
		case strings.Contains(f.Message, "caracter prohibido"):
			kinds = append(kinds, "forbidden")
		default:
			t.Fatalf("unclassifiable finding: %q", f.Message)
		}
	}

	want := []string{"header", "duplicate", "forbidden", "forbidden"}
	if len(kinds) != len(want) {
		t.Fatalf("finding kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("finding kinds = %v, want %v", kinds, want)
		}
	}
}

func TestValidateCleanGridPasses(t *testing.T) {
	rows := [][]string{
		validHeader,
		{"1", "1.1", "¿Qué es una matriz de preguntas?"},
		{"1", "1.2", "¿Cuántos capítulos tiene?"},
	}

	rep := Validate(grid.FromRows(rows))
	if !rep.Passed() {
		t.Fatalf("Passed() = false, findings: %v", rep.Findings)
	}
}

// assertMessages compares finding messages against expectations in order.
func assertMessages(t *testing.T, got []Finding, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d findings, want %d\ngot: %v", len(got), len(want), messages(got))
	}
	for i, w := range want {
		if got[i].Message != w {
			t.Errorf("finding[%d] = %q, want %q", i, got[i].Message, w)
		}
	}
}

func messages(findings []Finding) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.Message
	}
	return out
}
