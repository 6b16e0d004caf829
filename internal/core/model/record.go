package model

// DocumentCategory classifies the document under verification.
type DocumentCategory string

const (
	CategoryPassport       DocumentCategory = "passport"
	CategoryNationalID     DocumentCategory = "national_id"
	CategoryDrivingLicense DocumentCategory = "driving_license"
	CategoryOther          DocumentCategory = "other"
)

// Certainty levels the extraction model may self-report.
const (
	CertaintyHigh   = "high"
	CertaintyMedium = "medium"
	CertaintyLow    = "low"
)

// ExtractedRecord holds the structured fields pulled out of the raw document
// text by the extraction stage. Nil pointers mean the field was not found.
// The record is owned by a single verification run and never mutated.
type ExtractedRecord struct {
	DocumentType      *string  `json:"document_type"`
	DocumentNumber    *string  `json:"document_number"`
	ExpiryDate        *string  `json:"expiry_date"`
	Inconsistencies   []string `json:"inconsistencies"`
	SemanticCertainty *string  `json:"confidence_indication"`
}
