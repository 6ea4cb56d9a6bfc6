package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRUT(t *testing.T) {
	tests := []struct{ in, want string }{
		{"12.345.678-5", "12345678-5"},
		{"12345678-5", "12345678-5"},
		{"123456785", "12345678-5"},
		{"9.876.543-2", "9876543-2"},
		{"12.345.678-k", "12345678-K"},
		{"no es rut", ""},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeRUT(tc.in), "input %q", tc.in)
	}
}

func TestNormalizePlate(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ABCD12", "ABCD12"},
		{"abcd-12", "ABCD12"},
		{"ABCD·12", "ABCD12"},
		{"AB 1234", "AB1234"},
		{"ABC123", ""}, // no Chilean format
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizePlate(tc.in), "input %q", tc.in)
	}
}

func TestExtractedPairKeys(t *testing.T) {
	plate := "ABCD12"
	caseNo := "OF-2024-001"
	e := Extracted{Order: &OrderFields{CaseNumber: &caseNo}}
	assert.Equal(t, "", e.PairKeyPlate())
	assert.Equal(t, caseNo, e.PairKeyCaseNumber())

	e = Extracted{Certificate: &CertificateFields{Plate: &plate}}
	assert.Equal(t, plate, e.PairKeyPlate())
}

func TestExtractedRoundTrip(t *testing.T) {
	plate := "ABCD12"
	e := Extracted{DocType: "CERTIFICATE", Certificate: &CertificateFields{Plate: &plate}}
	got, err := Decode(e.Marshal())
	assert.NoError(t, err)
	assert.Equal(t, e, got)
}
