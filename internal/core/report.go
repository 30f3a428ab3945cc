package core

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Report body headers. These strings are a committed contract with the
// frontend and with existing user workflows; the report must reproduce
// them byte for byte.
const (
	reportSuccessLine = "✅ VALIDACIÓN EXITOSA: No se encontraron errores.\n"
	reportFailureLine = "❌ VALIDACIÓN FALLIDA: Se encontraron errores:\n\n"
	reportMediaType   = "text/plain; charset=utf-8"
	reportNameTimeFmt = "20060102_150405"
	reportNamePrefix  = "reporte_errores_"
	reportNameSuffix  = ".txt"
)

// RenderReport serializes a validation outcome into the downloadable
// plain-text report and derives its filename from the uploaded workbook's
// name and the given timestamp. The function is deterministic: identical
// inputs (including now) produce identical bytes and name.
func RenderReport(rep ValidationReport, sourceFilename string, now time.Time) (data []byte, filename string) {
	var buf bytes.Buffer
	if rep.Passed() {
		buf.WriteString(reportSuccessLine)
	} else {
		buf.WriteString(reportFailureLine)
		for _, f := range rep.Findings {
			buf.WriteString(f.Message)
			buf.WriteByte('\n')
		}
	}

	stem := strings.TrimSuffix(sourceFilename, filepath.Ext(sourceFilename))
	filename = fmt.Sprintf("%s%s_%s%s", reportNamePrefix, stem, now.Format(reportNameTimeFmt), reportNameSuffix)

	return buf.Bytes(), filename
}
