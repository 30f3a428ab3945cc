package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/validador-matrices/api/internal/store"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "nil error returns empty", err: nil, wantCode: ""},
		{
			name:     "oversize upload",
			err:      errors.New("file too large or invalid form: http: request body too large"),
			wantCode: "FILE001",
		},
		{
			name:     "wrong extension",
			err:      errors.New(`unsupported file extension ".xls"`),
			wantCode: "FILE002",
		},
		{
			name:     "unreadable workbook",
			err:      fmt.Errorf("open workbook: %w", errors.New("zip: not a valid zip file")),
			wantCode: "FILE003",
		},
		{
			name:     "missing multipart file",
			err:      errors.New("no file provided: http: no such file"),
			wantCode: "FILE004",
		},
		{
			name:     "sheetless workbook",
			err:      errors.New("workbook has no sheets"),
			wantCode: "FILE005",
		},
		{
			name:     "row budget exceeded",
			err:      errTooManyRows(20000, 10000),
			wantCode: "FILE006",
		},
		{
			name:     "limiter saturation",
			err:      ErrTooManyValidations,
			wantCode: "UPL001",
		},
		{
			name:     "unknown token",
			err:      store.ErrNotFound,
			wantCode: "LNK001",
		},
		{
			name:     "expired link",
			err:      store.ErrExpired,
			wantCode: "LNK002",
		},
		{
			name:     "rate limited",
			err:      errors.New("rate limit exceeded"),
			wantCode: "RATE001",
		},
		{
			name:     "unmatched error falls back",
			err:      errors.New("some internal surprise"),
			wantCode: "ERR000",
		},
		{
			name:     "matching is case-insensitive",
			err:      errors.New("DOWNLOAD LINK EXPIRED"),
			wantCode: "LNK002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError(%v) code = %q, want %q", tt.err, got.Code, tt.wantCode)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	got := FormatUserError(store.ErrExpired)
	want := "El link de descarga expiró (Code: LNK002). Vuelva a validar el archivo para generar un nuevo link"
	if got != want {
		t.Errorf("FormatUserError() = %q, want %q", got, want)
	}

	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}
}
