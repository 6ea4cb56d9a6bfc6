package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/patriciodunstan/back-investigacion-vehiculos/constants"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent"
	entdoc "github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/processeddocument"
)

// DocumentRepository is the persistence surface the pipeline drives a
// document through. Transition finishes with the FSM table enforced; the
// pair claim is a single conditional UPDATE so two workers can never both
// win the same candidate.
type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.ProcessedDocument, error)
	GetByFolderAndHash(ctx context.Context, folderID uuid.UUID, hash []byte) (*ent.ProcessedDocument, error)
	Create(ctx context.Context, folderID uuid.UUID, storageRef, filename, ext string, size int, hash []byte) (*ent.ProcessedDocument, error)
	UpsertByHash(ctx context.Context, folderID uuid.UUID, storageRef, filename, ext string, size int, hash []byte) (*ent.ProcessedDocument, bool, error)

	SetClassified(ctx context.Context, id uuid.UUID, docType constants.DocType, text string) error
	SetExtracted(ctx context.Context, id uuid.UUID, fields json.RawMessage) error
	Transition(ctx context.Context, id uuid.UUID, from, to constants.DocState) error
	MarkError(ctx context.Context, id uuid.UUID, detail string) error
	ScheduleRetry(ctx context.Context, id uuid.UUID, retryCount int, nextAttempt time.Time, detail string) error
	SetCompleted(ctx context.Context, id, caseID uuid.UUID) error

	// ListByFolder returns a folder's documents, optionally filtered by
	// state, newest first.
	ListByFolder(ctx context.Context, folderID uuid.UUID, state *constants.DocState) ([]*ent.ProcessedDocument, error)

	// FindDueRetries returns documents whose scheduled retry time has
	// passed, oldest schedule first.
	FindDueRetries(ctx context.Context, now time.Time, limit int) ([]*ent.ProcessedDocument, error)

	// FindPairCandidates returns AWAITING_PAIR documents of the opposite
	// type in the same folder created inside [since, until], oldest first.
	// Both bounds matter: a delayed retry must not pair with a document
	// ingested a full window later.
	FindPairCandidates(ctx context.Context, folderID uuid.UUID, docType constants.DocType, since, until time.Time) ([]*ent.ProcessedDocument, error)
	// ClaimPair atomically claims candidateID for docID; reports whether
	// this worker won the claim.
	ClaimPair(ctx context.Context, docID, candidateID uuid.UUID) (bool, error)
	ParkAwaitingPair(ctx context.Context, id uuid.UUID) error
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.ProcessedDocument, error) {
	return r.ent.ProcessedDocument.Get(ctx, id)
}

func (r *documentRepo) GetByFolderAndHash(ctx context.Context, folderID uuid.UUID, hash []byte) (*ent.ProcessedDocument, error) {
	return r.ent.ProcessedDocument.Query().
		Where(
			entdoc.FolderID(folderID),
			entdoc.ContentHash(hash),
		).Only(ctx)
}

func (r *documentRepo) Create(ctx context.Context, folderID uuid.UUID, storageRef, filename, ext string, size int, hash []byte) (*ent.ProcessedDocument, error) {
	row, err := r.ent.ProcessedDocument.Create().
		SetFolderID(folderID).
		SetStorageRef(storageRef).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "folder_id", folderID, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *documentRepo) UpsertByHash(ctx context.Context, folderID uuid.UUID, storageRef, filename, ext string, size int, hash []byte) (*ent.ProcessedDocument, bool, error) {
	if existing, err := r.GetByFolderAndHash(ctx, folderID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, folderID, storageRef, filename, ext, size, hash)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}

func (r *documentRepo) SetClassified(ctx context.Context, id uuid.UUID, docType constants.DocType, text string) error {
	if err := r.guard(ctx, id, constants.StateClassified); err != nil {
		return err
	}
	_, err := r.ent.ProcessedDocument.UpdateOneID(id).
		SetDocType(string(docType)).
		SetState(string(constants.StateClassified)).
		SetExtractedText(text).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to persist classification", "doc_id", id, "error", err)
	}
	return err
}

func (r *documentRepo) SetExtracted(ctx context.Context, id uuid.UUID, fields json.RawMessage) error {
	if err := r.guard(ctx, id, constants.StateExtracted); err != nil {
		return err
	}
	_, err := r.ent.ProcessedDocument.UpdateOneID(id).
		SetExtractedFields(fields).
		SetState(string(constants.StateExtracted)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to persist extracted fields", "doc_id", id, "error", err)
	}
	return err
}

// Transition moves a document between states, rejecting moves the FSM
// table does not allow. The state predicate keeps it safe under
// concurrent workers.
func (r *documentRepo) Transition(ctx context.Context, id uuid.UUID, from, to constants.DocState) error {
	if !constants.CanTransition(from, to) {
		return fmt.Errorf("illegal transition %s -> %s", from, to)
	}
	n, err := r.ent.ProcessedDocument.Update().
		Where(entdoc.ID(id), entdoc.StateEQ(string(from))).
		SetState(string(to)).
		Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("document %s no longer in state %s", id, from)
	}
	return nil
}

func (r *documentRepo) MarkError(ctx context.Context, id uuid.UUID, detail string) error {
	_, err := r.ent.ProcessedDocument.UpdateOneID(id).
		SetState(string(constants.StateError)).
		SetErrorDetail(detail).
		ClearNextAttemptAt().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark document errored", "doc_id", id, "error", err)
		return err
	}
	r.logger.Warn("document marked ERROR", "doc_id", id, "detail", detail)
	return nil
}

func (r *documentRepo) ScheduleRetry(ctx context.Context, id uuid.UUID, retryCount int, nextAttempt time.Time, detail string) error {
	_, err := r.ent.ProcessedDocument.UpdateOneID(id).
		SetRetryCount(retryCount).
		SetNextAttemptAt(nextAttempt).
		SetErrorDetail(detail).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to schedule retry", "doc_id", id, "error", err)
	}
	return err
}

func (r *documentRepo) SetCompleted(ctx context.Context, id, caseID uuid.UUID) error {
	_, err := r.ent.ProcessedDocument.UpdateOneID(id).
		SetState(string(constants.StateCompleted)).
		SetCaseID(caseID).
		ClearErrorDetail().
		ClearNextAttemptAt().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to complete document", "doc_id", id, "case_id", caseID, "error", err)
	}
	return err
}

func (r *documentRepo) ListByFolder(ctx context.Context, folderID uuid.UUID, state *constants.DocState) ([]*ent.ProcessedDocument, error) {
	q := r.ent.ProcessedDocument.Query().
		Where(entdoc.FolderID(folderID)).
		Order(ent.Desc(entdoc.FieldCreatedAt))
	if state != nil {
		q = q.Where(entdoc.StateEQ(string(*state)))
	}
	return q.All(ctx)
}

func (r *documentRepo) FindDueRetries(ctx context.Context, now time.Time, limit int) ([]*ent.ProcessedDocument, error) {
	q := r.ent.ProcessedDocument.Query().
		Where(
			entdoc.NextAttemptAtNotNil(),
			entdoc.NextAttemptAtLTE(now),
			entdoc.StateNotIn(
				string(constants.StateCompleted),
				string(constants.StateError),
			),
		).
		Order(ent.Asc(entdoc.FieldNextAttemptAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.All(ctx)
}

func (r *documentRepo) FindPairCandidates(ctx context.Context, folderID uuid.UUID, docType constants.DocType, since, until time.Time) ([]*ent.ProcessedDocument, error) {
	return r.ent.ProcessedDocument.Query().
		Where(
			entdoc.FolderID(folderID),
			entdoc.StateEQ(string(constants.StateAwaitingPair)),
			entdoc.DocTypeEQ(string(docType)),
			entdoc.PairIDIsNil(),
			entdoc.CreatedAtGTE(since),
			entdoc.CreatedAtLTE(until),
		).
		Order(ent.Asc(entdoc.FieldCreatedAt), ent.Asc(entdoc.FieldID)).
		All(ctx)
}

// ClaimPair performs the symmetric pairing write. The candidate row is
// claimed with a conditional UPDATE ("pair still unset"); only the winner
// proceeds to link its own side inside the same transaction.
func (r *documentRepo) ClaimPair(ctx context.Context, docID, candidateID uuid.UUID) (bool, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return false, err
	}
	n, err := tx.ProcessedDocument.Update().
		Where(
			entdoc.ID(candidateID),
			entdoc.StateEQ(string(constants.StateAwaitingPair)),
			entdoc.PairIDIsNil(),
		).
		SetPairID(docID).
		SetState(string(constants.StatePaired)).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}
	if n == 0 {
		// lost the race; candidate already claimed
		_ = tx.Rollback()
		return false, nil
	}
	_, err = tx.ProcessedDocument.UpdateOneID(docID).
		SetPairID(candidateID).
		SetState(string(constants.StatePaired)).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	r.logger.Info("documents paired", "doc_id", docID, "pair_id", candidateID)
	return true, nil
}

func (r *documentRepo) ParkAwaitingPair(ctx context.Context, id uuid.UUID) error {
	return r.Transition(ctx, id, constants.StateExtracted, constants.StateAwaitingPair)
}

// guard verifies the current state admits the requested move.
func (r *documentRepo) guard(ctx context.Context, id uuid.UUID, to constants.DocState) error {
	row, err := r.ent.ProcessedDocument.Query().
		Where(entdoc.ID(id)).
		Select(entdoc.FieldState).
		Only(ctx)
	if err != nil {
		return err
	}
	if !constants.CanTransition(constants.DocState(row.State), to) {
		return fmt.Errorf("illegal transition %s -> %s", row.State, to)
	}
	return nil
}
