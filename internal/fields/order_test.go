package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOrder = `SEGUNDO JUZGADO DE GARANTÍA DE SANTIAGO

OFICIO N° OF-2024-001

En causa RUC 2400012345-6, se oficia a Carabineros de Chile a fin de
investigar al imputado Juan Pérez Soto, RUT 12.345.678-5.
Domicilio registrado: Av. Principal 123, comuna de Ñuñoa, Región Metropolitana.
Domicilio laboral: Calle Moneda 975, comuna de Santiago.`

func TestExtractOrder(t *testing.T) {
	f := ExtractOrder(sampleOrder)

	require.NotNil(t, f.CaseNumber)
	assert.Equal(t, "OF-2024-001", *f.CaseNumber)

	require.NotNil(t, f.OwnerRUT)
	assert.Equal(t, "12345678-5", *f.OwnerRUT)

	require.NotNil(t, f.OwnerName)
	assert.Equal(t, "Juan Pérez Soto", *f.OwnerName)

	assert.Nil(t, f.Plate)

	require.Len(t, f.Addresses, 2)
	assert.Equal(t, "Av. Principal 123", f.Addresses[0].Street)
	require.NotNil(t, f.Addresses[0].Locality)
	assert.Equal(t, "Ñuñoa", *f.Addresses[0].Locality)
	require.NotNil(t, f.Addresses[0].Region)
	assert.Equal(t, "Metropolitana", *f.Addresses[0].Region)
	assert.Equal(t, "Calle Moneda 975", f.Addresses[1].Street)

	require.NotNil(t, f.LegalContext)
	assert.Contains(t, *f.LegalContext, "se oficia")
}

func TestExtractOrderRUCFallback(t *testing.T) {
	f := ExtractOrder("Causa RUC 2400012345-6 del Juzgado de Garantía")
	require.NotNil(t, f.CaseNumber)
	assert.Equal(t, "2400012345-6", *f.CaseNumber)
}

func TestExtractOrderPlateWhenPresent(t *testing.T) {
	f := ExtractOrder("se ordena investigar el vehículo patente ABCD-12 inscrito a nombre de")
	require.NotNil(t, f.Plate)
	assert.Equal(t, "ABCD12", *f.Plate)
}

func TestExtractOrderIgnoresCaseNumberShapedPlate(t *testing.T) {
	// OF-2024 inside a case number must not surface as a plate: a phantom
	// plate would keep the order from ever pairing with its certificate
	f := ExtractOrder("OFICIO N° OF-2024-001 del Juzgado de Garantía")
	require.NotNil(t, f.CaseNumber)
	assert.Equal(t, "OF-2024-001", *f.CaseNumber)
	assert.Nil(t, f.Plate)
}

func TestExtractOrderBareOldFormatPlate(t *testing.T) {
	f := ExtractOrder("se avistó el móvil AB·1234 en la intersección")
	require.NotNil(t, f.Plate)
	assert.Equal(t, "AB1234", *f.Plate)
}

func TestExtractOrderEmptyText(t *testing.T) {
	f := ExtractOrder("")
	assert.Nil(t, f.CaseNumber)
	assert.Nil(t, f.OwnerRUT)
	assert.Nil(t, f.OwnerName)
	assert.Empty(t, f.Addresses)
	assert.Nil(t, f.LegalContext)
}

func TestAddressDeduplication(t *testing.T) {
	text := "Av. Principal 123, comuna de Ñuñoa\nAv. Principal 123, comuna de Ñuñoa"
	f := ExtractOrder(text)
	assert.Len(t, f.Addresses, 1)
}
