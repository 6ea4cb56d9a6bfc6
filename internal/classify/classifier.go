// Package classify labels a document as a judicial order (oficio) or a
// vehicle registration certificate (CAV) using deterministic heuristics:
// filename substrings first, then keyword sets over the leading lines of
// the extracted text. First rule that matches wins.
package classify

import (
	"strings"

	"github.com/patriciodunstan/back-investigacion-vehiculos/constants"
)

// headLines bounds the text scan; headers carry the type signal.
const headLines = 40

var filenameRules = []struct {
	substr string
	t      constants.DocType
}{
	{"oficio", constants.DocTypeOrder},
	{"exhorto", constants.DocTypeOrder},
	{"resolucion", constants.DocTypeOrder},
	{"cav", constants.DocTypeCertificate},
	{"certificado", constants.DocTypeCertificate},
	{"padron", constants.DocTypeCertificate},
	{"anotaciones", constants.DocTypeCertificate},
}

var orderKeywords = []string{
	"juzgado",
	"tribunal",
	"fiscalia",
	"fiscalía",
	"oficio",
	"causa ruc",
	"causa rit",
	"se oficia",
	"orden de investigar",
}

var certificateKeywords = []string{
	"certificado de anotaciones",
	"anotaciones vigentes",
	"registro de vehiculos",
	"registro de vehículos",
	"inscripcion",
	"inscripción",
	"propietario",
	"año fabricacion",
	"año fabricación",
	"nro. motor",
}

// Classify returns exactly one of ORDER, CERTIFICATE or UNKNOWN. Pure
// function; text may be empty.
func Classify(filename, text string) constants.DocType {
	name := strings.ToLower(filename)
	for _, r := range filenameRules {
		if strings.Contains(name, r.substr) {
			return r.t
		}
	}

	head := strings.ToLower(headOf(text, headLines))
	for _, kw := range orderKeywords {
		if strings.Contains(head, kw) {
			return constants.DocTypeOrder
		}
	}
	for _, kw := range certificateKeywords {
		if strings.Contains(head, kw) {
			return constants.DocTypeCertificate
		}
	}
	return constants.DocTypeUnknown
}

func headOf(text string, n int) string {
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
