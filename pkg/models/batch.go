package models

import "time"

// BatchResult is the outcome of running one batch through the pipeline:
// the de-duplicated accepted records in first-occurrence order, the exclusion
// log in the order entries were written, and summary counts.
type BatchResult struct {
	BatchID       string             `json:"batch_id"`
	Records       []*CanonicalRecord `json:"records"`
	Rejections    []RejectionEntry   `json:"rejections"`
	AdmittedCount int                `json:"admitted_count"`
	SourceRows    int                `json:"source_rows"`
	SourceColumns []string           `json:"source_columns"`
	StartedAt     time.Time          `json:"started_at"`
	CompletedAt   time.Time          `json:"completed_at"`
}

// InspectResponse is the diagnostics view of a batch, returned by the inspect
// endpoint in place of the CSV artifact.
type InspectResponse struct {
	BatchID       string           `json:"batch_id"`
	AdmittedCount int              `json:"admitted_count"`
	RejectedCount int              `json:"rejected_count"`
	SourceRows    int              `json:"source_rows"`
	SourceColumns []string         `json:"source_columns"`
	Rejections    []RejectionEntry `json:"rejections"`
}
