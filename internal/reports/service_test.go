package reports

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/FireBushtree/stronger-body/internal/kv"
	"github.com/FireBushtree/stronger-body/internal/nutrition"
	"github.com/FireBushtree/stronger-body/internal/profiles"
	"github.com/FireBushtree/stronger-body/internal/weights"
	"github.com/google/uuid"
)

func newLocalService(t *testing.T) (*Service, *weights.Store, *nutrition.Store) {
	t.Helper()
	backend := kv.NewMemory()
	weightStore := weights.NewStore(backend)
	nutritionStore := nutrition.NewStore(backend)
	generator := NewGenerator(weightStore, nutritionStore, profiles.NewStore(backend))
	return NewService(generator, nil, 90, 900, "", false), weightStore, nutritionStore
}

func TestCreateReportValidation(t *testing.T) {
	service, _, _ := newLocalService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateReportRequest
		want error
	}{
		{"bad format", CreateReportRequest{From: "2025-03-01", To: "2025-03-10", Format: "xlsx"}, ErrInvalidFormat},
		{"bad from", CreateReportRequest{From: "03/01/2025", To: "2025-03-10", Format: FormatCSV}, ErrInvalidDate},
		{"bad to", CreateReportRequest{From: "2025-03-01", To: "soon", Format: FormatCSV}, ErrInvalidDate},
		{"reversed", CreateReportRequest{From: "2025-03-10", To: "2025-03-01", Format: FormatCSV}, ErrInvalidDateRange},
		{"too large", CreateReportRequest{From: "2024-01-01", To: "2025-03-01", Format: FormatCSV}, ErrRangeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.CreateReport(ctx, tt.req); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateReportLocalLifecycle(t *testing.T) {
	service, weightStore, _ := newLocalService(t)
	ctx := context.Background()

	weightStore.Add(ctx, weights.WeightRecord{Date: "2025-03-05", Weight: 72.0, IsFasting: true})

	report, err := service.CreateReport(ctx, CreateReportRequest{From: "2025-03-01", To: "2025-03-10", Format: FormatCSV})
	if err != nil {
		t.Fatalf("CreateReport failed: %v", err)
	}
	if report.Status != StatusReady {
		t.Errorf("expected ready status, got %s", report.Status)
	}
	if len(report.Data) == 0 {
		t.Error("local mode must keep the file bytes inline")
	}
	if report.ObjectKey != nil {
		t.Error("local mode must not set an object key")
	}
	if report.SizeBytes != int64(len(report.Data)) {
		t.Errorf("size mismatch: %d vs %d", report.SizeBytes, len(report.Data))
	}

	// Retrievable by ID.
	got, err := service.GetReport(report.ID)
	if err != nil {
		t.Fatalf("GetReport failed: %v", err)
	}
	if got.FromDate != "2025-03-01" || got.ToDate != "2025-03-10" {
		t.Errorf("unexpected report: %+v", got)
	}

	// Download URL points at the inline download endpoint.
	url, err := service.DownloadURL(ctx, report.ID, "http://localhost:8080")
	if err != nil {
		t.Fatalf("DownloadURL failed: %v", err)
	}
	if !strings.HasSuffix(url, "/v1/reports/"+report.ID.String()+"/download") {
		t.Errorf("unexpected download URL: %s", url)
	}

	// Raw bytes are served with the right content type.
	data, contentType, err := service.ReportData(ctx, report.ID)
	if err != nil {
		t.Fatalf("ReportData failed: %v", err)
	}
	if contentType != "text/csv" {
		t.Errorf("expected text/csv, got %s", contentType)
	}
	if len(data) == 0 {
		t.Error("expected file bytes")
	}

	// Delete removes the metadata.
	if err := service.DeleteReport(ctx, report.ID); err != nil {
		t.Fatalf("DeleteReport failed: %v", err)
	}
	if _, err := service.GetReport(report.ID); !errors.Is(err, ErrReportNotFound) {
		t.Errorf("expected ErrReportNotFound after delete, got %v", err)
	}
}

func TestListReportsNewestFirst(t *testing.T) {
	service, _, _ := newLocalService(t)
	ctx := context.Background()

	first, _ := service.CreateReport(ctx, CreateReportRequest{From: "2025-03-01", To: "2025-03-05", Format: FormatCSV})
	second, _ := service.CreateReport(ctx, CreateReportRequest{From: "2025-03-06", To: "2025-03-10", Format: FormatCSV})

	list := service.ListReports(20, 0)
	if len(list) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Error("expected newest-first ordering")
	}

	if page := service.ListReports(1, 1); len(page) != 1 || page[0].ID != first.ID {
		t.Error("offset paging broken")
	}
}

func TestGetReportUnknownID(t *testing.T) {
	service, _, _ := newLocalService(t)
	if _, err := service.GetReport(uuid.New()); !errors.Is(err, ErrReportNotFound) {
		t.Errorf("expected ErrReportNotFound, got %v", err)
	}
}
