package reports

import (
	"time"

	"github.com/google/uuid"
)

// Report is the metadata of one generated export. Data is populated only in
// local mode; in S3 mode the bytes live behind ObjectKey.
type Report struct {
	ID        uuid.UUID
	Format    string // "pdf" or "csv"
	FromDate  string // YYYY-MM-DD
	ToDate    string // YYYY-MM-DD
	ObjectKey *string
	SizeBytes int64
	Status    string
	CreatedAt time.Time
	Data      []byte
}

// CreateReportRequest is the request to create a new report.
type CreateReportRequest struct {
	From   string `json:"from"` // YYYY-MM-DD
	To     string `json:"to"`   // YYYY-MM-DD
	Format string `json:"format"`
}

// ReportDTO is the response representation of a report.
type ReportDTO struct {
	ID          uuid.UUID `json:"id"`
	Format      string    `json:"format"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	DownloadURL string    `json:"downloadUrl"`
	SizeBytes   int64     `json:"sizeBytes"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ReportsResponse is the list response.
type ReportsResponse struct {
	Reports []ReportDTO `json:"reports"`
}

const (
	FormatPDF = "pdf"
	FormatCSV = "csv"

	StatusReady = "ready"
)
