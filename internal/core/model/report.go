package model

// Report is the finished verification result for one uploaded document.
// It owns no reference back to the uploaded file.
type Report struct {
	Category       DocumentCategory `json:"document_type"`
	Outcome        Outcome          `json:"outcome"`
	Score          float64          `json:"confidence_score"`
	DocumentNumber *string          `json:"document_number"`
	ExpiryDate     *string          `json:"expiry_date"`
}

// Status renders the outcome as the API-level status string.
func (r Report) Status() string {
	if r.Outcome.Verified {
		return "Verified"
	}
	return "Failed"
}
