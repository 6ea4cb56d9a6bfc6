package assembly

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patriciodunstan/back-investigacion-vehiculos/constants"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/fields"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/registry"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/repository"
)

type fakeCases struct {
	repository.CaseRepository

	existing   map[string]*ent.InvestigationCase
	created    *repository.CreateCaseRequest
	activities []string
}

func (f *fakeCases) GetByCaseNumber(_ context.Context, caseNumber string) (*ent.InvestigationCase, error) {
	if row, ok := f.existing[caseNumber]; ok {
		return row, nil
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeCases) CreateCase(_ context.Context, req *repository.CreateCaseRequest) (*ent.InvestigationCase, error) {
	f.created = req
	return &ent.InvestigationCase{ID: uuid.New(), CaseNumber: req.CaseNumber}, nil
}

func (f *fakeCases) AddActivity(_ context.Context, _ uuid.UUID, kind, _ string) error {
	f.activities = append(f.activities, kind)
	return nil
}

type fakeDocRepo struct {
	repository.DocumentRepository

	completed []uuid.UUID
}

func (f *fakeDocRepo) SetCompleted(_ context.Context, id, _ uuid.UUID) error {
	f.completed = append(f.completed, id)
	return nil
}

type fakeRegistry struct {
	record *registry.VehicleRecord
	err    error
	calls  []string
}

func (f *fakeRegistry) LookupPlate(_ context.Context, plate string, _ *uuid.UUID) (*registry.VehicleRecord, error) {
	f.calls = append(f.calls, "plate:"+plate)
	return f.record, f.err
}

func (f *fakeRegistry) LookupRUT(_ context.Context, rut string, _ *uuid.UUID) (*registry.VehicleRecord, error) {
	f.calls = append(f.calls, "rut:"+rut)
	return f.record, f.err
}

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func pairedDocs(of fields.OrderFields, cf fields.CertificateFields) (*ent.ProcessedDocument, *ent.ProcessedDocument) {
	folder := uuid.New()
	order := &ent.ProcessedDocument{
		ID:              uuid.New(),
		FolderID:        folder,
		DocType:         string(constants.DocTypeOrder),
		State:           string(constants.StateAssembling),
		ExtractedFields: fields.Extracted{DocType: constants.DocTypeOrder, Order: &of}.Marshal(),
	}
	cert := &ent.ProcessedDocument{
		ID:              uuid.New(),
		FolderID:        folder,
		DocType:         string(constants.DocTypeCertificate),
		State:           string(constants.StateAssembling),
		ExtractedFields: fields.Extracted{DocType: constants.DocTypeCertificate, Certificate: &cf}.Marshal(),
	}
	return order, cert
}

func TestAssembleMergesWithPrecedence(t *testing.T) {
	order, cert := pairedDocs(
		fields.OrderFields{
			CaseNumber: strp("OF-2024-001"),
			Plate:      strp("ABCD12"),
			OwnerRUT:   strp("12345678-5"),
			OwnerName:  strp("Juan Pérez Soto"),
			Addresses:  []fields.Address{{Street: "Av. Providencia 1234", Locality: strp("Providencia")}},
		},
		fields.CertificateFields{
			Plate:     strp("ABCD12"),
			Make:      strp("TOYOTA"),
			Model:     strp("YARIS"),
			Year:      intp(2019),
			OwnerRUT:  strp("12345678-5"),
			OwnerName: strp("JUAN PEREZ SOTO"),
		},
	)
	reg := &fakeRegistry{record: &registry.VehicleRecord{
		Plate:     "ABCD12",
		Make:      strp("TOYOTA"),
		Model:     strp("YARIS SPORT"),
		Year:      intp(2020),
		Color:     strp("ROJO"),
		OwnerRUT:  strp("12345678-5"),
		OwnerName: strp("JUAN ANDRES PEREZ SOTO"),
	}}
	cases := &fakeCases{}
	svc := NewService(cases, &fakeDocRepo{}, reg, nil)

	row, err := svc.Assemble(context.Background(), order, cert)
	require.NoError(t, err)
	assert.Equal(t, "OF-2024-001", row.CaseNumber)

	req := cases.created
	require.NotNil(t, req)
	assert.Equal(t, []string{"plate:ABCD12"}, reg.calls)
	assert.Empty(t, req.Warnings)

	// registry beats the certificate field by field
	assert.Equal(t, "ABCD12", req.Vehicle.Plate)
	assert.Equal(t, "YARIS SPORT", *req.Vehicle.Model)
	assert.Equal(t, 2020, *req.Vehicle.Year)
	assert.Equal(t, "ROJO", *req.Vehicle.Color)

	require.Len(t, req.Owners, 3)
	assert.Equal(t, SourceEnrichment, req.Owners[0].Source)
	assert.Equal(t, SourceCertificate, req.Owners[1].Source)
	assert.Equal(t, SourceOrder, req.Owners[2].Source)

	require.Len(t, req.Addresses, 1)
	assert.Equal(t, SourceOrder, req.Addresses[0].Source)
	assert.Equal(t, "Av. Providencia 1234", req.Addresses[0].Street)

	assert.Equal(t, []uuid.UUID{order.ID, cert.ID}, req.SourceDocumentIDs)
	assert.NotNil(t, req.EnrichmentRaw)
	assert.Equal(t, []string{repository.ActivityCaseAssembled}, cases.activities)
}

func TestAssembleCertificateFillsRegistryGaps(t *testing.T) {
	order, cert := pairedDocs(
		fields.OrderFields{CaseNumber: strp("OF-2024-002"), Plate: strp("ABCD12")},
		fields.CertificateFields{Plate: strp("ABCD12"), Make: strp("NISSAN"), Model: strp("V16"), Color: strp("AZUL")},
	)
	reg := &fakeRegistry{record: &registry.VehicleRecord{Plate: "ABCD12", Make: strp("NISSAN")}}
	cases := &fakeCases{}
	svc := NewService(cases, &fakeDocRepo{}, reg, nil)

	_, err := svc.Assemble(context.Background(), order, cert)
	require.NoError(t, err)
	req := cases.created
	require.NotNil(t, req)
	assert.Equal(t, "NISSAN", *req.Vehicle.Make)
	assert.Equal(t, "V16", *req.Vehicle.Model)
	assert.Equal(t, "AZUL", *req.Vehicle.Color)
	assert.Nil(t, req.Vehicle.Year)
}

func TestAssembleReportsCrossValidationWarnings(t *testing.T) {
	order, cert := pairedDocs(
		fields.OrderFields{
			CaseNumber: strp("OF-2024-003"),
			Plate:      strp("ABCD12"),
			OwnerRUT:   strp("12345678-5"),
			OwnerName:  strp("Juan Pérez Soto"),
		},
		fields.CertificateFields{
			Plate:     strp("WXYZ99"),
			OwnerRUT:  strp("9876543-2"),
			OwnerName: strp("PEDRO RAMIREZ FUENTES"),
		},
	)
	cases := &fakeCases{}
	svc := NewService(cases, &fakeDocRepo{}, &fakeRegistry{err: registry.ErrNotFound}, nil)

	_, err := svc.Assemble(context.Background(), order, cert)
	require.NoError(t, err)
	req := cases.created
	require.NotNil(t, req)
	// plate + rut + name disagreements, plus the registry miss
	assert.Len(t, req.Warnings, 4)
	// the certificate plate is still the one trusted for the vehicle
	assert.Equal(t, "WXYZ99", req.Vehicle.Plate)
}

func TestAssembleDegradesWhenRegistryUnavailable(t *testing.T) {
	order, cert := pairedDocs(
		fields.OrderFields{CaseNumber: strp("OF-2024-004"), Plate: strp("ABCD12")},
		fields.CertificateFields{Plate: strp("ABCD12"), Make: strp("KIA")},
	)
	cases := &fakeCases{}
	svc := NewService(cases, &fakeDocRepo{}, &fakeRegistry{err: registry.ErrRateLimited}, nil)

	_, err := svc.Assemble(context.Background(), order, cert)
	require.NoError(t, err)
	req := cases.created
	require.NotNil(t, req)
	require.Len(t, req.Warnings, 1)
	assert.Contains(t, req.Warnings[0], "enrichment unavailable")
	assert.Equal(t, "KIA", *req.Vehicle.Make)
	assert.Nil(t, req.EnrichmentRaw)
}

func TestAssemblePropagatesRegistryOutage(t *testing.T) {
	// auth and upstream failures must reach the pipeline so the document
	// is retried instead of silently assembling without enrichment
	for _, regErr := range []error{registry.ErrUpstream, registry.ErrAuthFailed} {
		t.Run(regErr.Error(), func(t *testing.T) {
			order, cert := pairedDocs(
				fields.OrderFields{CaseNumber: strp("OF-2024-010"), Plate: strp("ABCD12")},
				fields.CertificateFields{Plate: strp("ABCD12")},
			)
			cases := &fakeCases{}
			svc := NewService(cases, &fakeDocRepo{}, &fakeRegistry{err: regErr}, nil)

			_, err := svc.Assemble(context.Background(), order, cert)
			require.Error(t, err)
			assert.ErrorIs(t, err, regErr)
			assert.Nil(t, cases.created)
		})
	}
}

func TestAssembleWarnsWhenRegistryContradictsDocuments(t *testing.T) {
	order, cert := pairedDocs(
		fields.OrderFields{CaseNumber: strp("OF-2024-011"), OwnerRUT: strp("12345678-5")},
		fields.CertificateFields{Plate: strp("ABCD12"), OwnerRUT: strp("12345678-5")},
	)
	reg := &fakeRegistry{record: &registry.VehicleRecord{
		Plate:    "WXYZ99",
		OwnerRUT: strp("9876543-2"),
	}}
	cases := &fakeCases{}
	svc := NewService(cases, &fakeDocRepo{}, reg, nil)

	_, err := svc.Assemble(context.Background(), order, cert)
	require.NoError(t, err)
	req := cases.created
	require.NotNil(t, req)
	// order rut + certificate plate + certificate rut all disagree with
	// the registry record
	require.Len(t, req.Warnings, 3)
	assert.Contains(t, req.Warnings[0], "registry says 9876543-2")
	assert.Contains(t, req.Warnings[1], "registry says WXYZ99")
	// the authoritative values still win the merge
	assert.Equal(t, "WXYZ99", req.Vehicle.Plate)
}

func TestAssembleIsIdempotentOnCaseNumber(t *testing.T) {
	order, cert := pairedDocs(
		fields.OrderFields{CaseNumber: strp("OF-2024-005"), Plate: strp("ABCD12")},
		fields.CertificateFields{Plate: strp("ABCD12")},
	)
	existing := &ent.InvestigationCase{ID: uuid.New(), CaseNumber: "OF-2024-005"}
	cases := &fakeCases{existing: map[string]*ent.InvestigationCase{"OF-2024-005": existing}}
	docs := &fakeDocRepo{}
	reg := &fakeRegistry{}
	svc := NewService(cases, docs, reg, nil)

	row, err := svc.Assemble(context.Background(), order, cert)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, row.ID)
	// no new case, no registry spend, sources finished
	assert.Nil(t, cases.created)
	assert.Empty(t, reg.calls)
	assert.Equal(t, []uuid.UUID{order.ID, cert.ID}, docs.completed)
}

func TestAssembleFallsBackToOwnerLookup(t *testing.T) {
	// neither document yielded a plate, but the certificate names the owner
	order, cert := pairedDocs(
		fields.OrderFields{CaseNumber: strp("OF-2024-006")},
		fields.CertificateFields{OwnerRUT: strp("12345678-5"), OwnerName: strp("JUAN PEREZ SOTO")},
	)
	reg := &fakeRegistry{record: &registry.VehicleRecord{Plate: "EFGH34", Make: strp("SUZUKI")}}
	cases := &fakeCases{}
	svc := NewService(cases, &fakeDocRepo{}, reg, nil)

	_, err := svc.Assemble(context.Background(), order, cert)
	require.NoError(t, err)
	assert.Equal(t, []string{"rut:12345678-5"}, reg.calls)
	req := cases.created
	require.NotNil(t, req)
	// the registry supplied the plate the documents were missing
	assert.Equal(t, "EFGH34", req.Vehicle.Plate)
}

func TestAssembleFailsWithoutCaseNumber(t *testing.T) {
	order, cert := pairedDocs(
		fields.OrderFields{Plate: strp("ABCD12")},
		fields.CertificateFields{Plate: strp("ABCD12")},
	)
	svc := NewService(&fakeCases{}, &fakeDocRepo{}, &fakeRegistry{}, nil)

	_, err := svc.Assemble(context.Background(), order, cert)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "case number")
}
