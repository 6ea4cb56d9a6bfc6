package pairing

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patriciodunstan/back-investigacion-vehiculos/constants"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/fields"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/repository"
)

type fakeDocs struct {
	repository.DocumentRepository

	candidates []*ent.ProcessedDocument
	// candidate ids whose claim this fake reports as lost
	lostClaims map[uuid.UUID]bool

	claimAttempts []uuid.UUID
	parked        []uuid.UUID
}

func (f *fakeDocs) FindPairCandidates(_ context.Context, _ uuid.UUID, docType constants.DocType, since, until time.Time) ([]*ent.ProcessedDocument, error) {
	var out []*ent.ProcessedDocument
	for _, c := range f.candidates {
		if constants.DocType(c.DocType) != docType {
			continue
		}
		if c.CreatedAt.Before(since) || c.CreatedAt.After(until) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeDocs) ClaimPair(_ context.Context, _ uuid.UUID, candidateID uuid.UUID) (bool, error) {
	f.claimAttempts = append(f.claimAttempts, candidateID)
	return !f.lostClaims[candidateID], nil
}

func (f *fakeDocs) ParkAwaitingPair(_ context.Context, id uuid.UUID) error {
	f.parked = append(f.parked, id)
	return nil
}

func strp(s string) *string { return &s }

func orderBlob(plate, caseNumber string) json.RawMessage {
	f := fields.OrderFields{}
	if plate != "" {
		f.Plate = strp(plate)
	}
	if caseNumber != "" {
		f.CaseNumber = strp(caseNumber)
	}
	return fields.Extracted{DocType: constants.DocTypeOrder, Order: &f}.Marshal()
}

func certBlob(plate, caseNumber string) json.RawMessage {
	f := fields.CertificateFields{}
	if plate != "" {
		f.Plate = strp(plate)
	}
	if caseNumber != "" {
		f.CaseNumber = strp(caseNumber)
	}
	return fields.Extracted{DocType: constants.DocTypeCertificate, Certificate: &f}.Marshal()
}

func orderDoc(folderID uuid.UUID, createdAt time.Time, blob json.RawMessage) *ent.ProcessedDocument {
	return &ent.ProcessedDocument{
		ID:              uuid.New(),
		FolderID:        folderID,
		DocType:         string(constants.DocTypeOrder),
		State:           string(constants.StateExtracted),
		CreatedAt:       createdAt,
		ExtractedFields: blob,
	}
}

func certCandidate(folderID uuid.UUID, createdAt time.Time, blob json.RawMessage) *ent.ProcessedDocument {
	return &ent.ProcessedDocument{
		ID:              uuid.New(),
		FolderID:        folderID,
		DocType:         string(constants.DocTypeCertificate),
		State:           string(constants.StateAwaitingPair),
		CreatedAt:       createdAt,
		ExtractedFields: blob,
	}
}

func TestPairClaimsMatchingPlate(t *testing.T) {
	folder := uuid.New()
	now := time.Now()

	match := certCandidate(folder, now.Add(-time.Hour), certBlob("ABCD12", ""))
	other := certCandidate(folder, now.Add(-time.Hour), certBlob("ZZZZ99", ""))
	docs := &fakeDocs{candidates: []*ent.ProcessedDocument{other, match}}

	eng := NewEngine(docs, 24*time.Hour, nil)
	doc := orderDoc(folder, now, orderBlob("ABCD12", "OF-2024-001"))

	pairID, err := eng.Pair(context.Background(), doc)
	require.NoError(t, err)
	require.NotNil(t, pairID)
	assert.Equal(t, match.ID, *pairID)
	assert.Equal(t, []uuid.UUID{match.ID}, docs.claimAttempts)
	assert.Empty(t, docs.parked)
}

func TestPairFallsBackToCaseNumber(t *testing.T) {
	folder := uuid.New()
	now := time.Now()

	// certificate without a readable plate; case number still pairs it
	match := certCandidate(folder, now.Add(-2*time.Hour), certBlob("", "OF-2024-007"))
	docs := &fakeDocs{candidates: []*ent.ProcessedDocument{match}}

	eng := NewEngine(docs, 24*time.Hour, nil)
	doc := orderDoc(folder, now, orderBlob("ABCD12", "OF-2024-007"))

	pairID, err := eng.Pair(context.Background(), doc)
	require.NoError(t, err)
	require.NotNil(t, pairID)
	assert.Equal(t, match.ID, *pairID)
}

func TestPairPrefersClosestCreationTime(t *testing.T) {
	folder := uuid.New()
	now := time.Now()

	far := certCandidate(folder, now.Add(-10*time.Hour), certBlob("ABCD12", ""))
	near := certCandidate(folder, now.Add(-1*time.Hour), certBlob("ABCD12", ""))
	docs := &fakeDocs{candidates: []*ent.ProcessedDocument{far, near}}

	eng := NewEngine(docs, 24*time.Hour, nil)
	doc := orderDoc(folder, now, orderBlob("ABCD12", ""))

	pairID, err := eng.Pair(context.Background(), doc)
	require.NoError(t, err)
	require.NotNil(t, pairID)
	assert.Equal(t, near.ID, *pairID)
}

func TestPairMovesOnAfterLostClaim(t *testing.T) {
	folder := uuid.New()
	now := time.Now()

	first := certCandidate(folder, now.Add(-1*time.Hour), certBlob("ABCD12", ""))
	second := certCandidate(folder, now.Add(-2*time.Hour), certBlob("ABCD12", ""))
	docs := &fakeDocs{
		candidates: []*ent.ProcessedDocument{first, second},
		lostClaims: map[uuid.UUID]bool{first.ID: true},
	}

	eng := NewEngine(docs, 24*time.Hour, nil)
	doc := orderDoc(folder, now, orderBlob("ABCD12", ""))

	pairID, err := eng.Pair(context.Background(), doc)
	require.NoError(t, err)
	require.NotNil(t, pairID)
	assert.Equal(t, second.ID, *pairID)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, docs.claimAttempts)
}

func TestPairParksWhenNoCandidateMatches(t *testing.T) {
	folder := uuid.New()
	now := time.Now()

	other := certCandidate(folder, now.Add(-time.Hour), certBlob("ZZZZ99", "OF-2023-999"))
	docs := &fakeDocs{candidates: []*ent.ProcessedDocument{other}}

	eng := NewEngine(docs, 24*time.Hour, nil)
	doc := orderDoc(folder, now, orderBlob("ABCD12", "OF-2024-001"))

	pairID, err := eng.Pair(context.Background(), doc)
	require.NoError(t, err)
	assert.Nil(t, pairID)
	assert.Equal(t, []uuid.UUID{doc.ID}, docs.parked)
	assert.Empty(t, docs.claimAttempts)
}

func TestPairIgnoresCandidatesOutsideWindow(t *testing.T) {
	folder := uuid.New()
	now := time.Now()

	stale := certCandidate(folder, now.Add(-48*time.Hour), certBlob("ABCD12", ""))
	docs := &fakeDocs{candidates: []*ent.ProcessedDocument{stale}}

	eng := NewEngine(docs, 24*time.Hour, nil)
	doc := orderDoc(folder, now, orderBlob("ABCD12", ""))

	pairID, err := eng.Pair(context.Background(), doc)
	require.NoError(t, err)
	assert.Nil(t, pairID)
	assert.Equal(t, []uuid.UUID{doc.ID}, docs.parked)
}

func TestPairIgnoresCandidatesBeyondWindowAhead(t *testing.T) {
	folder := uuid.New()
	now := time.Now()

	// the order was ingested long ago and is only being paired now; a
	// certificate that arrived more than a window after it must not match
	late := certCandidate(folder, now.Add(30*time.Hour), certBlob("ABCD12", ""))
	docs := &fakeDocs{candidates: []*ent.ProcessedDocument{late}}

	eng := NewEngine(docs, 24*time.Hour, nil)
	doc := orderDoc(folder, now, orderBlob("ABCD12", ""))

	pairID, err := eng.Pair(context.Background(), doc)
	require.NoError(t, err)
	assert.Nil(t, pairID)
	assert.Equal(t, []uuid.UUID{doc.ID}, docs.parked)
}

func TestPairTieBreaksOnEarlierIngestedID(t *testing.T) {
	folder := uuid.New()
	now := time.Now()
	created := now.Add(-time.Hour)

	// identical creation timestamps: the time-ordered v7 id decides
	first := certCandidate(folder, created, certBlob("ABCD12", ""))
	second := certCandidate(folder, created, certBlob("ABCD12", ""))
	first.ID = uuid.Must(uuid.NewV7())
	second.ID = uuid.Must(uuid.NewV7())
	docs := &fakeDocs{candidates: []*ent.ProcessedDocument{second, first}}

	eng := NewEngine(docs, 24*time.Hour, nil)
	doc := orderDoc(folder, now, orderBlob("ABCD12", ""))

	pairID, err := eng.Pair(context.Background(), doc)
	require.NoError(t, err)
	require.NotNil(t, pairID)
	assert.Equal(t, first.ID, *pairID)
}

func TestPairParksWhenNoKeyExtracted(t *testing.T) {
	folder := uuid.New()
	docs := &fakeDocs{}

	eng := NewEngine(docs, 24*time.Hour, nil)
	doc := orderDoc(folder, time.Now(), orderBlob("", ""))

	pairID, err := eng.Pair(context.Background(), doc)
	require.NoError(t, err)
	assert.Nil(t, pairID)
	assert.Equal(t, []uuid.UUID{doc.ID}, docs.parked)
}
