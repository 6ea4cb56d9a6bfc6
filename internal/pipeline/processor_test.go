package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patriciodunstan/back-investigacion-vehiculos/constants"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/repository"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/textextract"
)

const orderText = `JUZGADO DE GARANTÍA DE SANTIAGO
OFICIO N° 123-2024
Causa RUC 2400123456-7
Se oficia a Carabineros de Chile a fin de practicar diligencias sobre el
vehículo placa patente ABCD12, propiedad de don Juan Pérez Soto,
RUT 12.345.678-5, domiciliado en Av. Providencia 1234, comuna de Providencia.`

// memDocs is an in-memory DocumentRepository good enough for stage-driver
// tests: state moves, retries and errors land on the row like in Postgres.
type memDocs struct {
	repository.DocumentRepository

	rows map[uuid.UUID]*ent.ProcessedDocument

	markedErrors []string
	retries      []int
}

func newMemDocs(docs ...*ent.ProcessedDocument) *memDocs {
	m := &memDocs{rows: map[uuid.UUID]*ent.ProcessedDocument{}}
	for _, d := range docs {
		m.rows[d.ID] = d
	}
	return m
}

func (m *memDocs) GetByID(_ context.Context, id uuid.UUID) (*ent.ProcessedDocument, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, fmt.Errorf("document %s not found", id)
	}
	return row, nil
}

func (m *memDocs) SetClassified(_ context.Context, id uuid.UUID, docType constants.DocType, text string) error {
	row := m.rows[id]
	row.DocType = string(docType)
	row.State = string(constants.StateClassified)
	row.ExtractedText = &text
	return nil
}

func (m *memDocs) SetExtracted(_ context.Context, id uuid.UUID, blob json.RawMessage) error {
	row := m.rows[id]
	row.ExtractedFields = blob
	row.State = string(constants.StateExtracted)
	return nil
}

func (m *memDocs) Transition(_ context.Context, id uuid.UUID, from, to constants.DocState) error {
	row := m.rows[id]
	if constants.DocState(row.State) != from {
		return fmt.Errorf("document %s no longer in state %s", id, from)
	}
	if !constants.CanTransition(from, to) {
		return fmt.Errorf("illegal transition %s -> %s", from, to)
	}
	row.State = string(to)
	return nil
}

func (m *memDocs) MarkError(_ context.Context, id uuid.UUID, detail string) error {
	row := m.rows[id]
	row.State = string(constants.StateError)
	row.ErrorDetail = &detail
	m.markedErrors = append(m.markedErrors, detail)
	return nil
}

func (m *memDocs) ScheduleRetry(_ context.Context, id uuid.UUID, retryCount int, nextAttempt time.Time, detail string) error {
	row := m.rows[id]
	row.RetryCount = retryCount
	row.NextAttemptAt = &nextAttempt
	row.ErrorDetail = &detail
	m.retries = append(m.retries, retryCount)
	return nil
}

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) Extract(_ context.Context, _ string) (textextract.Result, error) {
	if s.err != nil {
		return textextract.Result{}, s.err
	}
	return textextract.Result{Text: s.text, Pages: 1, Method: "pdf-text"}, nil
}

type stubPairer struct {
	pairWith *uuid.UUID
	apply    func(doc *ent.ProcessedDocument)
}

func (s stubPairer) Pair(_ context.Context, doc *ent.ProcessedDocument) (*uuid.UUID, error) {
	if s.apply != nil {
		s.apply(doc)
	}
	return s.pairWith, nil
}

type stubAssembler struct {
	gotOrder *ent.ProcessedDocument
	gotCert  *ent.ProcessedDocument
	// errs are returned one per call, nil entries and exhaustion succeed
	errs  []error
	calls int
}

func (s *stubAssembler) Assemble(_ context.Context, order, cert *ent.ProcessedDocument) (*ent.InvestigationCase, error) {
	s.calls++
	s.gotOrder, s.gotCert = order, cert
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &ent.InvestigationCase{ID: uuid.New(), CaseNumber: "OF-2024-001"}, nil
}

func uploadedDoc(filename string) *ent.ProcessedDocument {
	return &ent.ProcessedDocument{
		ID:         uuid.New(),
		FolderID:   uuid.New(),
		StorageRef: "ab/cdef0123",
		Filename:   filename,
		FileExt:    "pdf",
		DocType:    string(constants.DocTypeUnknown),
		State:      string(constants.StateUploaded),
		CreatedAt:  time.Now(),
	}
}

func TestProcessRunsOrderThroughAssembly(t *testing.T) {
	doc := uploadedDoc("oficio_123.pdf")
	cert := &ent.ProcessedDocument{
		ID:       uuid.New(),
		FolderID: doc.FolderID,
		DocType:  string(constants.DocTypeCertificate),
		State:    string(constants.StatePaired),
	}
	docs := newMemDocs(doc, cert)

	certID := cert.ID
	pairer := stubPairer{
		pairWith: &certID,
		apply: func(d *ent.ProcessedDocument) {
			// mirror what the real claim does
			d.State = string(constants.StatePaired)
			d.PairID = &certID
			cert.PairID = &d.ID
		},
	}
	asm := &stubAssembler{}
	p := NewProcessor(Config{StorageDir: "/data"}, docs, stubExtractor{text: orderText}, pairer, asm, nil)

	require.NoError(t, p.Process(context.Background(), doc.ID))

	assert.Equal(t, string(constants.DocTypeOrder), doc.DocType)
	assert.Equal(t, string(constants.StateAssembling), doc.State)
	assert.Equal(t, string(constants.StateAssembling), cert.State)
	require.NotNil(t, asm.gotOrder)
	assert.Equal(t, doc.ID, asm.gotOrder.ID)
	assert.Equal(t, cert.ID, asm.gotCert.ID)
	require.NotNil(t, doc.ExtractedFields)
}

func TestProcessHoldsUnknownDocuments(t *testing.T) {
	doc := uploadedDoc("escaneo_sin_titulo.pdf")
	docs := newMemDocs(doc)
	p := NewProcessor(Config{}, docs, stubExtractor{text: "texto sin señales reconocibles"}, stubPairer{}, &stubAssembler{}, nil)

	require.NoError(t, p.Process(context.Background(), doc.ID))
	assert.Equal(t, string(constants.DocTypeUnknown), doc.DocType)
	assert.Equal(t, string(constants.StateClassified), doc.State)
	assert.Empty(t, docs.markedErrors)
}

func TestProcessStopsWhenParked(t *testing.T) {
	doc := uploadedDoc("oficio_456.pdf")
	docs := newMemDocs(doc)
	pairer := stubPairer{apply: func(d *ent.ProcessedDocument) {
		d.State = string(constants.StateAwaitingPair)
	}}
	p := NewProcessor(Config{}, docs, stubExtractor{text: orderText}, pairer, &stubAssembler{}, nil)

	require.NoError(t, p.Process(context.Background(), doc.ID))
	assert.Equal(t, string(constants.StateAwaitingPair), doc.State)
}

func TestProcessStructuralFailureGoesToError(t *testing.T) {
	doc := uploadedDoc("protegido.pdf")
	docs := newMemDocs(doc)
	p := NewProcessor(Config{}, docs, stubExtractor{err: textextract.ErrEncrypted}, stubPairer{}, &stubAssembler{}, nil)

	err := p.Process(context.Background(), doc.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, textextract.ErrEncrypted)
	assert.Equal(t, string(constants.StateError), doc.State)
	assert.Empty(t, docs.retries)
}

func TestProcessTransientFailureSchedulesRetry(t *testing.T) {
	doc := uploadedDoc("oficio_789.pdf")
	docs := newMemDocs(doc)
	p := NewProcessor(Config{MaxRetries: 3, RetryBaseDelay: time.Minute}, docs,
		stubExtractor{err: errors.New("pdftotext: exec format error")}, stubPairer{}, &stubAssembler{}, nil)

	err := p.Process(context.Background(), doc.ID)
	require.Error(t, err)
	assert.Equal(t, []int{1}, docs.retries)
	assert.Equal(t, string(constants.StateUploaded), doc.State)
	require.NotNil(t, doc.NextAttemptAt)
	assert.WithinDuration(t, time.Now().Add(time.Minute), *doc.NextAttemptAt, 5*time.Second)
}

func TestProcessResumesAssemblyAfterTransientFailure(t *testing.T) {
	order := uploadedDoc("oficio_321.pdf")
	order.DocType = string(constants.DocTypeOrder)
	order.State = string(constants.StatePaired)
	cert := &ent.ProcessedDocument{
		ID:       uuid.New(),
		FolderID: order.FolderID,
		DocType:  string(constants.DocTypeCertificate),
		State:    string(constants.StatePaired),
	}
	order.PairID = &cert.ID
	cert.PairID = &order.ID
	docs := newMemDocs(order, cert)

	asm := &stubAssembler{errs: []error{errors.New("registry lookup for ABCD12: upstream error")}}
	p := NewProcessor(Config{MaxRetries: 3, RetryBaseDelay: time.Minute}, docs, stubExtractor{}, stubPairer{}, asm, nil)

	err := p.Process(context.Background(), order.ID)
	require.Error(t, err)
	assert.Equal(t, []int{1}, docs.retries)
	assert.Equal(t, string(constants.StateAssembling), order.State)
	assert.Equal(t, string(constants.StateAssembling), cert.State)

	// the scheduled retry lands back here; assembly must run again and
	// finish instead of leaving both halves stuck
	require.NoError(t, p.Process(context.Background(), order.ID))
	assert.Equal(t, 2, asm.calls)
	assert.Empty(t, docs.markedErrors)
}

func TestProcessExhaustedRetriesGoToError(t *testing.T) {
	doc := uploadedDoc("oficio_999.pdf")
	doc.RetryCount = 3
	docs := newMemDocs(doc)
	p := NewProcessor(Config{MaxRetries: 3}, docs,
		stubExtractor{err: errors.New("pdftotext: exec format error")}, stubPairer{}, &stubAssembler{}, nil)

	err := p.Process(context.Background(), doc.ID)
	require.Error(t, err)
	assert.Equal(t, string(constants.StateError), doc.State)
	assert.Empty(t, docs.retries)
}
