package reports

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/FireBushtree/stronger-body/internal/blob"
	"github.com/FireBushtree/stronger-body/internal/datestore"
	"github.com/google/uuid"
)

var (
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidDate      = errors.New("invalid date format")
	ErrInvalidDateRange = errors.New("from date must be before to date")
	ErrRangeTooLarge    = errors.New("date range too large")
	ErrReportNotFound   = errors.New("report not found")
)

// Service creates, lists and serves report exports. Metadata lives in the
// in-memory registry; the file bytes live inline (local mode) or in object
// storage (S3 mode).
type Service struct {
	registry        *Registry
	generator       *Generator
	blobStore       blob.Store
	maxRangeDays    int
	presignTTL      int
	localMode       bool
	publicBaseURL   string
	preferPublicURL bool
}

// NewService creates a new reports service. A nil blobStore selects local
// mode.
func NewService(generator *Generator, blobStore blob.Store, maxRangeDays, presignTTL int, publicBaseURL string, preferPublicURL bool) *Service {
	return &Service{
		registry:        NewRegistry(),
		generator:       generator,
		blobStore:       blobStore,
		maxRangeDays:    maxRangeDays,
		presignTTL:      presignTTL,
		localMode:       blobStore == nil,
		publicBaseURL:   publicBaseURL,
		preferPublicURL: preferPublicURL,
	}
}

// CreateReport validates the request, renders the file and registers it.
func (s *Service) CreateReport(ctx context.Context, req CreateReportRequest) (*Report, error) {
	if req.Format != FormatPDF && req.Format != FormatCSV {
		return nil, ErrInvalidFormat
	}

	fromDate, err := time.Parse(datestore.DateLayout, req.From)
	if err != nil {
		return nil, ErrInvalidDate
	}
	toDate, err := time.Parse(datestore.DateLayout, req.To)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if fromDate.After(toDate) {
		return nil, ErrInvalidDateRange
	}
	if int(toDate.Sub(fromDate).Hours()/24) > s.maxRangeDays {
		return nil, ErrRangeTooLarge
	}

	data, err := s.generator.GenerateReport(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	report := &Report{
		ID:        uuid.New(),
		Format:    req.Format,
		FromDate:  req.From,
		ToDate:    req.To,
		SizeBytes: int64(len(data)),
		Status:    StatusReady,
		CreatedAt: time.Now(),
	}

	if s.localMode {
		report.Data = data
	} else {
		objectKey := fmt.Sprintf("reports/%s_%s_%s.%s", req.From, req.To, report.ID.String(), req.Format)
		if _, err := s.blobStore.PutObject(ctx, objectKey, data, contentTypeFor(req.Format)); err != nil {
			return nil, fmt.Errorf("failed to upload report: %w", err)
		}
		report.ObjectKey = &objectKey
	}

	s.registry.Put(report)
	return report, nil
}

// GetReport retrieves a report by ID.
func (s *Service) GetReport(id uuid.UUID) (*Report, error) {
	report, ok := s.registry.Get(id)
	if !ok {
		return nil, ErrReportNotFound
	}
	return report, nil
}

// ListReports returns reports newest first.
func (s *Service) ListReports(limit, offset int) []Report {
	return s.registry.List(limit, offset)
}

// DeleteReport removes a report and, in S3 mode, its stored object.
func (s *Service) DeleteReport(ctx context.Context, id uuid.UUID) error {
	report, ok := s.registry.Get(id)
	if !ok {
		return ErrReportNotFound
	}

	if !s.localMode && report.ObjectKey != nil {
		if err := s.blobStore.DeleteObject(ctx, *report.ObjectKey); err != nil {
			// Metadata removal matters more than the orphaned object.
			log.Printf("reports: delete object %s: %v", *report.ObjectKey, err)
		}
	}

	s.registry.Delete(id)
	return nil
}

// DownloadURL returns the URL a client should fetch the file from: the
// local download endpoint, the public object URL, or a presigned URL.
func (s *Service) DownloadURL(ctx context.Context, id uuid.UUID, baseURL string) (string, error) {
	report, ok := s.registry.Get(id)
	if !ok {
		return "", ErrReportNotFound
	}

	if s.localMode {
		return fmt.Sprintf("%s/v1/reports/%s/download", strings.TrimSuffix(baseURL, "/"), id.String()), nil
	}

	if report.ObjectKey == nil {
		return "", fmt.Errorf("object key is missing")
	}

	if s.preferPublicURL && s.publicBaseURL != "" {
		return strings.TrimSuffix(s.publicBaseURL, "/") + "/" + *report.ObjectKey, nil
	}

	presigned, err := s.blobStore.PresignGet(ctx, *report.ObjectKey, s.presignTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return presigned, nil
}

// ReportData returns the raw file bytes for the local download endpoint.
func (s *Service) ReportData(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	report, ok := s.registry.Get(id)
	if !ok {
		return nil, "", ErrReportNotFound
	}

	contentType := contentTypeFor(report.Format)
	if s.localMode {
		return report.Data, contentType, nil
	}

	if report.ObjectKey == nil {
		return nil, "", fmt.Errorf("object key is missing")
	}
	data, err := s.blobStore.GetObject(ctx, *report.ObjectKey)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch report object: %w", err)
	}
	return data, contentType, nil
}

// LocalMode reports whether files are served inline rather than from
// object storage.
func (s *Service) LocalMode() bool { return s.localMode }

func contentTypeFor(format string) string {
	if format == FormatCSV {
		return "text/csv"
	}
	return "application/pdf"
}
