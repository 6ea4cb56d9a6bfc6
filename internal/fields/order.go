package fields

import (
	"regexp"
	"strings"
)

// Rule order matters: explicit labels first, bare patterns as fallback.
var (
	orderCaseNumberRules = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(OF[-\s]?\d{4}[-\s]?\d{1,6})\b`),
		regexp.MustCompile(`(?i)oficio\s*(?:n[°ºo]\.?\s*)?:?\s*(\d{1,6}[-/]\d{2,4})`),
		regexp.MustCompile(`(?i)\bRUC\s*(?:n[°º]\s*)?:?\s*(\d{7,10}-[\dkK])`),
		regexp.MustCompile(`(?i)\bRIT\s*:?\s*([A-Z]-\d{1,6}-\d{4})`),
	}

	rutRules = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:RUT|R\.U\.T\.?|C[EÉ]DULA)\s*(?:n[°º]\s*)?:?\s*([\d.]{7,12}\s?-\s?[\dkK])`),
		regexp.MustCompile(`\b(\d{1,2}\.\d{3}\.\d{3}-[\dkK])\b`),
		regexp.MustCompile(`\b(\d{7,8}-[\dkK])\b`),
	}

	ownerNameRules = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:propietari[oa]|imputad[oa])\s*:?\s+([A-ZÁÉÍÓÚÑ][A-Za-zÁÉÍÓÚÑáéíóúñ]+(?:\s+[A-ZÁÉÍÓÚÑ][A-Za-zÁÉÍÓÚÑáéíóúñ]+){1,4})`),
		regexp.MustCompile(`\b(?:don|doña)\s+([A-ZÁÉÍÓÚÑ][A-Za-zÁÉÍÓÚÑáéíóúñ]+(?:\s+[A-ZÁÉÍÓÚÑ][A-Za-zÁÉÍÓÚÑáéíóúñ]+){1,4})`),
	}

	plateRules = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:patente|placa\s+(?:única|patente)|PPU)\s*(?:n[°º]\s*)?:?\s*([A-Z]{2}[-·\s]?\d{4}|[A-Z]{4}[-·\s]?\d{2})`),
		regexp.MustCompile(`\b([A-Z]{4}[-·]?\d{2})\b`),
		// a trailing digit group disqualifies the bare old-format rule:
		// case numbers like OF-2024-001 share the two-letter shape
		regexp.MustCompile(`\b([A-Z]{2}[-·]\d{4})(?:[^-\d]|$)`),
	}

	reAddress  = regexp.MustCompile(`(?i)\b((?:av\.|avda\.|avenida|calle|pasaje|psje\.|camino)\s+[^\n,;]{2,40}?\s+\d{1,5})\b`)
	reLocality = regexp.MustCompile(`(?i)comuna\s+de\s+([A-Za-zÁÉÍÓÚÑáéíóúñ]+(?:\s+[A-Za-zÁÉÍÓÚÑáéíóúñ]+)?)`)
	reRegion   = regexp.MustCompile(`(?i)regi[oó]n\s+(?:de\s+|del\s+)?([A-Za-zÁÉÍÓÚÑáéíóúñ]+(?:\s+[A-Za-zÁÉÍÓÚÑáéíóúñ]+)?)`)

	orderContextMarkers = []string{"se oficia", "orden de investigar", "investigar", "a fin de", "remitir"}
)

// ExtractOrder pulls the structured fields off a judicial order. Absent
// fields come back nil.
func ExtractOrder(text string) OrderFields {
	var f OrderFields

	if raw := firstMatch(text, orderCaseNumberRules); raw != "" {
		f.CaseNumber = strPtr(normalizeCaseNumber(raw))
	}
	if raw := firstMatch(text, rutRules); raw != "" {
		f.OwnerRUT = strPtr(NormalizeRUT(raw))
	}
	if raw := firstMatch(text, ownerNameRules); raw != "" {
		f.OwnerName = strPtr(CollapseSpace(raw))
	}
	if raw := firstMatch(text, plateRules); raw != "" {
		f.Plate = strPtr(NormalizePlate(raw))
	}
	f.Addresses = extractAddresses(text)
	if ctx := extractLegalContext(text); ctx != "" {
		f.LegalContext = &ctx
	}
	return f
}

func normalizeCaseNumber(raw string) string {
	s := strings.ToUpper(CollapseSpace(raw))
	return strings.ReplaceAll(s, " ", "-")
}

// extractAddresses collects every distinct street match together with the
// locality/region named on the same line.
func extractAddresses(text string) []Address {
	var out []Address
	seen := map[string]struct{}{}
	for _, line := range strings.Split(text, "\n") {
		for _, m := range reAddress.FindAllStringSubmatch(line, -1) {
			street := CollapseSpace(m[1])
			key := strings.ToLower(street)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			addr := Address{Street: street}
			if lm := reLocality.FindStringSubmatch(line); lm != nil {
				addr.Locality = strPtr(CollapseSpace(lm[1]))
			}
			if rm := reRegion.FindStringSubmatch(line); rm != nil {
				addr.Region = strPtr(CollapseSpace(rm[1]))
			}
			out = append(out, addr)
		}
	}
	return out
}

// extractLegalContext returns the first paragraph carrying an instructing
// clause, capped so the blob stays readable.
func extractLegalContext(text string) string {
	for _, para := range strings.Split(text, "\n\n") {
		lower := strings.ToLower(para)
		for _, marker := range orderContextMarkers {
			if strings.Contains(lower, marker) {
				ctx := CollapseSpace(para)
				if len(ctx) > 600 {
					ctx = ctx[:600]
				}
				return ctx
			}
		}
	}
	return ""
}
