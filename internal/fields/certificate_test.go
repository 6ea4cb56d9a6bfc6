package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCertificate = `CERTIFICADO DE ANOTACIONES VIGENTES

Placa Única : ABCD-12
Marca : TOYOTA
Modelo : YARIS 1.5
Año Fabricación : 2020
Color : ROJO
Nº Chasis : 9FBBW12JX5M123456
Nº Motor : 2NZ1234567
Propietario : María González Díaz
RUT : 9.876.543-2`

func TestExtractCertificate(t *testing.T) {
	f := ExtractCertificate(sampleCertificate)

	require.NotNil(t, f.Plate)
	assert.Equal(t, "ABCD12", *f.Plate)
	require.NotNil(t, f.Make)
	assert.Equal(t, "TOYOTA", *f.Make)
	require.NotNil(t, f.Model)
	assert.Equal(t, "YARIS 1.5", *f.Model)
	require.NotNil(t, f.Year)
	assert.Equal(t, 2020, *f.Year)
	require.NotNil(t, f.Color)
	assert.Equal(t, "ROJO", *f.Color)
	require.NotNil(t, f.VIN)
	assert.Equal(t, "9FBBW12JX5M123456", *f.VIN)
	require.NotNil(t, f.EngineNumber)
	assert.Equal(t, "2NZ1234567", *f.EngineNumber)
	require.NotNil(t, f.OwnerRUT)
	assert.Equal(t, "9876543-2", *f.OwnerRUT)
	require.NotNil(t, f.OwnerName)
	assert.Equal(t, "María González Díaz", *f.OwnerName)
}

// optional fields missing yields a partial record, never a failure
func TestExtractCertificatePartial(t *testing.T) {
	f := ExtractCertificate("Patente : ABCD-12\nMarca : Toyota")
	require.NotNil(t, f.Plate)
	assert.Equal(t, "ABCD12", *f.Plate)
	assert.Nil(t, f.Color)
	assert.Nil(t, f.VIN)
	assert.Nil(t, f.Year)
	assert.Nil(t, f.OwnerRUT)
}

func TestExtractCertificateImplausibleYear(t *testing.T) {
	f := ExtractCertificate("Patente : AB-1234\nAño : 1850")
	assert.Nil(t, f.Year)
	require.NotNil(t, f.Plate)
	assert.Equal(t, "AB1234", *f.Plate)
}

func TestExtractCertificateOldPlateFormat(t *testing.T) {
	f := ExtractCertificate("Placa Patente : XY·9876")
	require.NotNil(t, f.Plate)
	assert.Equal(t, "XY9876", *f.Plate)
}
