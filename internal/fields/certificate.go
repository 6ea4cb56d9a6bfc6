package fields

import (
	"regexp"
	"strconv"
)

var (
	certPlateRules = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:placa\s+(?:única|patente)|patente|PPU)\s*(?:n[°º]\s*)?:?\s*([A-Z]{2}[-·\s]?\d{4}|[A-Z]{4}[-·\s]?\d{2})`),
		regexp.MustCompile(`\b([A-Z]{4}[-·]?\d{2})\b`),
		// same guard as the order rules: OF-2024-001 is a case number,
		// not an old-format plate
		regexp.MustCompile(`\b([A-Z]{2}[-·]\d{4})(?:[^-\d]|$)`),
	}
	certMakeRules = []*regexp.Regexp{
		regexp.MustCompile(`(?i)marca\s*:?\s*([A-ZÁÉÍÓÚÑ0-9][A-Za-zÁÉÍÓÚÑáéíóúñ0-9\- ]{1,25}?)(?:\n|  |$)`),
	}
	certModelRules = []*regexp.Regexp{
		regexp.MustCompile(`(?i)modelo\s*:?\s*([A-ZÁÉÍÓÚÑ0-9][A-Za-zÁÉÍÓÚÑáéíóúñ0-9.\- ]{1,30}?)(?:\n|  |$)`),
	}
	certYearRules = []*regexp.Regexp{
		regexp.MustCompile(`(?i)año(?:\s+(?:fabricaci[oó]n|vehículo|vehiculo))?\s*:?\s*(\d{4})`),
	}
	certColorRules = []*regexp.Regexp{
		regexp.MustCompile(`(?i)color\s*:?\s*([A-ZÁÉÍÓÚÑ][A-Za-zÁÉÍÓÚÑáéíóúñ ]{2,20}?)(?:\n|  |$)`),
	}
	certVINRules = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:n[°º]?\.?\s*(?:de\s+)?chasis|chasis|VIN)\s*:?\s*([A-HJ-NPR-Z0-9]{6,17})`),
	}
	certEngineRules = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:n[°º]?\.?\s*(?:de\s+)?motor|motor)\s*:?\s*([A-Z0-9\-]{5,20})`),
	}
	certOwnerNameRules = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:propietari[oa]|nombre)\s*:?\s+([A-ZÁÉÍÓÚÑ][A-Za-zÁÉÍÓÚÑáéíóúñ]+(?:\s+[A-ZÁÉÍÓÚÑ][A-Za-zÁÉÍÓÚÑáéíóúñ]+){1,4})`),
	}
)

// ExtractCertificate pulls the structured fields off a registration
// certificate. Absent fields come back nil; an implausible year is treated
// as absent, not as an error.
func ExtractCertificate(text string) CertificateFields {
	var f CertificateFields

	if raw := firstMatch(text, certPlateRules); raw != "" {
		f.Plate = strPtr(NormalizePlate(raw))
	}
	if raw := firstMatch(text, certMakeRules); raw != "" {
		f.Make = strPtr(CollapseSpace(raw))
	}
	if raw := firstMatch(text, certModelRules); raw != "" {
		f.Model = strPtr(CollapseSpace(raw))
	}
	if raw := firstMatch(text, certYearRules); raw != "" {
		if y, err := strconv.Atoi(raw); err == nil && plausibleYear(y) {
			f.Year = &y
		}
	}
	if raw := firstMatch(text, certColorRules); raw != "" {
		f.Color = strPtr(CollapseSpace(raw))
	}
	if raw := firstMatch(text, certVINRules); raw != "" {
		f.VIN = strPtr(raw)
	}
	if raw := firstMatch(text, certEngineRules); raw != "" {
		f.EngineNumber = strPtr(raw)
	}
	if raw := firstMatch(text, rutRules); raw != "" {
		f.OwnerRUT = strPtr(NormalizeRUT(raw))
	}
	if raw := firstMatch(text, certOwnerNameRules); raw != "" {
		f.OwnerName = strPtr(CollapseSpace(raw))
	}
	if raw := firstMatch(text, orderCaseNumberRules); raw != "" {
		f.CaseNumber = strPtr(normalizeCaseNumber(raw))
	}
	return f
}
