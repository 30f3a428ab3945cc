package core

import (
	"context"
	"io"
	"time"

	"github.com/validador-matrices/api/internal/config"
	"github.com/validador-matrices/api/internal/grid"
	"github.com/validador-matrices/api/internal/logging"
	"github.com/validador-matrices/api/internal/store"
)

// Service wires the rule engine, report generator and artifact store into
// the two operations the HTTP layer exposes: validate a workbook and fetch
// a previously generated report.
type Service struct {
	store   *store.Store
	limiter *ValidationLimiter
	maxRows int
	now     func() time.Time
}

// NewService creates a Service backed by the given artifact store,
// applying the upload limits from cfg.
func NewService(st *store.Store, cfg *config.Config) *Service {
	return &Service{
		store:   st,
		limiter: NewValidationLimiter(cfg.Upload.MaxConcurrent, cfg.Upload.MaxWaitTime),
		maxRows: cfg.Upload.MaxRows,
		now:     time.Now,
	}
}

// ValidationResult is the outcome of a completed validation run. A run
// with findings is still a successful run; Passed only describes the
// workbook, not the operation.
type ValidationResult struct {
	Token        string `json:"token"`
	Filename     string `json:"filename"`
	FindingCount int    `json:"errores"`
	Passed       bool   `json:"valido"`
}

// ValidateWorkbook decodes the uploaded workbook, runs the three checks,
// renders the report and registers it for download. The returned token
// stays valid until the store's TTL elapses.
func (s *Service) ValidateWorkbook(ctx context.Context, sourceFilename string, r io.Reader) (ValidationResult, error) {
	if err := s.limiter.Acquire(ctx); err != nil {
		return ValidationResult{}, err
	}
	defer s.limiter.Release()

	g, err := grid.Decode(r)
	if err != nil {
		return ValidationResult{}, err
	}
	if s.maxRows > 0 && g.Rows() > s.maxRows {
		return ValidationResult{}, errTooManyRows(g.Rows(), s.maxRows)
	}

	rep := Validate(g)
	data, filename := RenderReport(rep, sourceFilename, s.now())
	token := s.store.Register(data, filename, reportMediaType)

	logging.FromContext(ctx).Info("workbook validated",
		"source", sourceFilename,
		"rows", g.Rows(),
		"findings", len(rep.Findings),
		"passed", rep.Passed(),
		"report", filename,
	)

	return ValidationResult{
		Token:        token,
		Filename:     filename,
		FindingCount: len(rep.Findings),
		Passed:       rep.Passed(),
	}, nil
}

// FetchReport returns the stored report for token. It propagates
// store.ErrNotFound and store.ErrExpired unchanged so the HTTP layer can
// distinguish them.
func (s *Service) FetchReport(token string) (store.Artifact, error) {
	return s.store.Lookup(token)
}

// ActiveValidations reports how many validation runs are currently in
// flight. Used for shutdown logging.
func (s *Service) ActiveValidations() int {
	return s.limiter.ActiveCount()
}

// WaitForValidations blocks until all in-flight validation runs finish or
// ctx is cancelled. Used during graceful shutdown.
func (s *Service) WaitForValidations(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}
