package web

import (
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// handleRoot reports that the API is up. Kept for frontend smoke checks.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"message": "API de validación de matrices funcionando 🚀",
	})
}

// handleHealth is the liveness probe endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleValidate accepts a multipart upload of an .xlsx matrix, runs the
// validation pipeline and responds with the download token plus finding
// count. A workbook that fails its checks is still a 200: findings are
// data, not errors.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		respondError(w, r, fmt.Errorf("file too large or invalid form: %w", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, fmt.Errorf("no file provided: %w", err), http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		respondError(w, r, fmt.Errorf("unsupported file extension %q", filepath.Ext(header.Filename)), http.StatusBadRequest)
		return
	}

	result, err := s.service.ValidateWorkbook(r.Context(), header.Filename, file)
	if err != nil {
		respondError(w, r, err, statusForError(err))
		return
	}

	writeJSON(w, result)
}

// handleDownload streams a stored report back to the client. Unknown
// tokens are 404, expired ones 410 — an expired link once existed and the
// frontend words the two cases differently.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	artifact, err := s.service.FetchReport(token)
	if err != nil {
		respondError(w, r, err, statusForError(err))
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": artifact.Filename})
	w.Header().Set("Content-Type", artifact.MediaType)
	w.Header().Set("Content-Disposition", disposition)
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Payload)))
	w.Header().Set("Cache-Control", "no-store")
	w.Write(artifact.Payload)
}
