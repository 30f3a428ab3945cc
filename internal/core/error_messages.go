package core

// error_messages.go maps technical errors to user-friendly messages with
// support codes. When a user reports a problem, the code pins down the
// failure category without anyone having to read server logs first.
//
// Code families:
//
//	FILE001-FILE099  upload and workbook parsing problems
//	UPL001-UPL099    validation request lifecycle problems
//	LNK001-LNK099    download link problems
//	RATE001          rate limiting
//	ERR000           fallback for unmatched errors
//
// Validation findings are NOT errors and never pass through this mapping;
// a workbook that fails its checks still produces a report and a token.

import (
	"fmt"
	"strings"
)

// UserMessage is a user-friendly error with an optional suggested action
// and a support reference code.
type UserMessage struct {
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// errorPattern maps a substring of a technical error to a user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns is searched in order; first match wins. Patterns are
// matched case-insensitively against err.Error().
var errorPatterns = []errorPattern{
	// =========================================================================
	// File errors (FILE001-FILE006)
	// =========================================================================
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "El archivo excede el tamaño máximo permitido",
			Action:  "Suba un archivo .xlsx más pequeño",
			Code:    "FILE001",
		},
	},
	{
		pattern: "unsupported file extension",
		msg: UserMessage{
			Message: "El archivo debe ser .xlsx",
			Action:  "Exporte la matriz como libro de Excel (.xlsx) y vuelva a intentarlo",
			Code:    "FILE002",
		},
	},
	{
		pattern: "open workbook",
		msg: UserMessage{
			Message: "No se pudo abrir el archivo",
			Action:  "Verifique que el archivo sea un libro de Excel válido",
			Code:    "FILE003",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No se seleccionó ningún archivo",
			Action:  "Seleccione un archivo .xlsx para validar",
			Code:    "FILE004",
		},
	},
	{
		pattern: "workbook has no sheets",
		msg: UserMessage{
			Message: "El libro no contiene hojas",
			Action:  "Verifique que el archivo tenga al menos una hoja con datos",
			Code:    "FILE005",
		},
	},
	{
		pattern: "too many rows",
		msg: UserMessage{
			Message: "El libro tiene demasiadas filas",
			Action:  "Divida la matriz en archivos más pequeños",
			Code:    "FILE006",
		},
	},

	// =========================================================================
	// Validation request errors (UPL001-UPL003)
	// =========================================================================
	{
		pattern: "too many concurrent validations",
		msg: UserMessage{
			Message: "El sistema está ocupado procesando otras validaciones",
			Action:  "Espere un momento y vuelva a intentarlo",
			Code:    "UPL001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "La solicitud fue cancelada",
			Action:  "Vuelva a intentarlo",
			Code:    "UPL002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "La solicitud tardó demasiado",
			Action:  "Intente con un archivo más pequeño o verifique su conexión",
			Code:    "UPL003",
		},
	},

	// =========================================================================
	// Download link errors (LNK001-LNK002)
	// =========================================================================
	{
		pattern: "download token not found",
		msg: UserMessage{
			Message: "Link de descarga inválido",
			Action:  "Vuelva a validar el archivo para generar un nuevo link",
			Code:    "LNK001",
		},
	},
	{
		pattern: "download link expired",
		msg: UserMessage{
			Message: "El link de descarga expiró",
			Action:  "Vuelva a validar el archivo para generar un nuevo link",
			Code:    "LNK002",
		},
	},

	// =========================================================================
	// Rate limiting (RATE001)
	// =========================================================================
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Demasiadas solicitudes",
			Action:  "Espere un momento antes de volver a intentarlo",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is the ERR000 fallback when no pattern matches. Check the
// server logs for the original technical error when users report ERR000.
var defaultMessage = UserMessage{
	Message: "Ocurrió un error inesperado",
	Action:  "Vuelva a intentarlo o contacte a soporte",
	Code:    "ERR000",
}

// MapError converts a technical error to its user-facing message. Unknown
// errors fall back to ERR000.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}
	return defaultMessage
}

// FormatUserError renders a mapped error as a single display string:
// "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
