// Package fields pulls structured data out of classified document text.
// Every field is backed by an ordered list of pattern rules; the first rule
// that matches supplies the raw value, which is then normalized. Absent
// fields stay nil — extraction itself never fails.
package fields

import (
	"encoding/json"
	"regexp"

	"github.com/patriciodunstan/back-investigacion-vehiculos/constants"
)

// OrderFields is what we can read off a judicial order (oficio).
type OrderFields struct {
	CaseNumber   *string   `json:"case_number,omitempty"`
	OwnerRUT     *string   `json:"owner_rut,omitempty"`
	OwnerName    *string   `json:"owner_name,omitempty"`
	Plate        *string   `json:"plate,omitempty"`
	Addresses    []Address `json:"addresses,omitempty"`
	LegalContext *string   `json:"legal_context,omitempty"`
}

// CertificateFields is what we can read off a registration certificate (CAV).
type CertificateFields struct {
	Plate        *string `json:"plate,omitempty"`
	Make         *string `json:"make,omitempty"`
	Model        *string `json:"model,omitempty"`
	Year         *int    `json:"year,omitempty"`
	Color        *string `json:"color,omitempty"`
	VIN          *string `json:"vin,omitempty"`
	EngineNumber *string `json:"engine_number,omitempty"`
	OwnerRUT     *string `json:"owner_rut,omitempty"`
	OwnerName    *string `json:"owner_name,omitempty"`
	CaseNumber   *string `json:"case_number,omitempty"`
}

type Address struct {
	Street   string  `json:"street"`
	Locality *string `json:"locality,omitempty"`
	Region   *string `json:"region,omitempty"`
}

// Extracted is the persisted extracted-fields blob: exactly one side set,
// tagged by the detected type.
type Extracted struct {
	DocType     constants.DocType  `json:"doc_type"`
	Order       *OrderFields       `json:"order,omitempty"`
	Certificate *CertificateFields `json:"certificate,omitempty"`
}

// Extract dispatches to the extractor matching the classified type.
// UNKNOWN has no extractor; callers hold such documents for review.
func Extract(t constants.DocType, text string) (Extracted, bool) {
	switch t {
	case constants.DocTypeOrder:
		f := ExtractOrder(text)
		return Extracted{DocType: t, Order: &f}, true
	case constants.DocTypeCertificate:
		f := ExtractCertificate(text)
		return Extracted{DocType: t, Certificate: &f}, true
	default:
		return Extracted{DocType: constants.DocTypeUnknown}, false
	}
}

// Marshal serializes the blob for the extracted_fields column.
func (e Extracted) Marshal() json.RawMessage {
	b, _ := json.Marshal(e)
	return b
}

// Decode parses a persisted extracted-fields blob.
func Decode(raw json.RawMessage) (Extracted, error) {
	var e Extracted
	err := json.Unmarshal(raw, &e)
	return e, err
}

// PairKeyPlate returns the normalized plate for pairing, or "".
func (e Extracted) PairKeyPlate() string {
	switch {
	case e.Order != nil && e.Order.Plate != nil:
		return *e.Order.Plate
	case e.Certificate != nil && e.Certificate.Plate != nil:
		return *e.Certificate.Plate
	}
	return ""
}

// PairKeyCaseNumber returns the case number for pairing, or "".
func (e Extracted) PairKeyCaseNumber() string {
	switch {
	case e.Order != nil && e.Order.CaseNumber != nil:
		return *e.Order.CaseNumber
	case e.Certificate != nil && e.Certificate.CaseNumber != nil:
		return *e.Certificate.CaseNumber
	}
	return ""
}

// firstMatch runs rules in order and returns the first capture group of the
// first rule that hits.
func firstMatch(text string, rules []*regexp.Regexp) string {
	for _, re := range rules {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
