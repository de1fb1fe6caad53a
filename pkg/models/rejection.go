package models

// RejectReason identifies why a row was excluded from (or restructured in) the
// output. Validation reasons mean the row produced no output record; the two
// duplicate reasons are informational — the row's content is still emitted,
// replacing an earlier record at that record's original position.
type RejectReason string

const (
	RejectReasonEmptyName             RejectReason = "empty_name"
	RejectReasonNameIsURL             RejectReason = "name_is_url"
	RejectReasonPromotionalName       RejectReason = "promotional_name"
	RejectReasonInvalidClassification RejectReason = "invalid_classification"
	RejectReasonEmptyCategory         RejectReason = "empty_category"
	RejectReasonMissingPotency        RejectReason = "missing_potency"

	RejectReasonDuplicateExternalID RejectReason = "duplicate_external_id"
	RejectReasonLikelyDuplicate     RejectReason = "likely_duplicate"
)

// IsDuplicate reports whether the reason is one of the dedup-driven
// informational reasons rather than a validation failure.
func (r RejectReason) IsDuplicate() bool {
	return r == RejectReasonDuplicateExternalID || r == RejectReasonLikelyDuplicate
}

// RejectionEntry is one append-only exclusion log line: the source row number
// (1-based, counting the header as row 1), a human-readable message, and the
// best-effort display name for the row.
type RejectionEntry struct {
	Row     int          `json:"row"`
	Reason  RejectReason `json:"reason"`
	Message string       `json:"message"`
	Name    string       `json:"name"`
}
