package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patriciodunstan/back-investigacion-vehiculos/constants"
)

func TestClassifyByFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     constants.DocType
	}{
		{"oficio-OF-2024-001.pdf", constants.DocTypeOrder},
		{"OFICIO_1234.pdf", constants.DocTypeOrder},
		{"exhorto-22.pdf", constants.DocTypeOrder},
		{"cav-ABCD12.pdf", constants.DocTypeCertificate},
		{"Certificado_Anotaciones.pdf", constants.DocTypeCertificate},
		{"scan0001.pdf", constants.DocTypeUnknown},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Classify(tc.filename, ""), "filename %s", tc.filename)
	}
}

func TestClassifyByContent(t *testing.T) {
	order := "SEGUNDO JUZGADO DE GARANTÍA DE SANTIAGO\nCausa RUC 2400012345-6\nSe oficia a..."
	cert := "CERTIFICADO DE ANOTACIONES VIGENTES\nRegistro de Vehículos Motorizados\nPropietario: ..."

	assert.Equal(t, constants.DocTypeOrder, Classify("scan0001.pdf", order))
	assert.Equal(t, constants.DocTypeCertificate, Classify("scan0002.pdf", cert))
}

func TestClassifyFilenameWinsOverContent(t *testing.T) {
	// filename signal takes priority over body keywords
	got := Classify("cav-XY.pdf", "juzgado de garantía")
	assert.Equal(t, constants.DocTypeCertificate, got)
}

func TestClassifyScansOnlyLeadingLines(t *testing.T) {
	// keyword buried past the scan window must not classify
	text := strings.Repeat("linea sin señal\n", headLines+5) + "juzgado de garantía"
	assert.Equal(t, constants.DocTypeUnknown, Classify("scan.pdf", text))
}

func TestClassifyEmptyInputs(t *testing.T) {
	assert.Equal(t, constants.DocTypeUnknown, Classify("", ""))
}
