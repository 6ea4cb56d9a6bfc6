package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/patriciodunstan/back-investigacion-vehiculos/constants"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent"
	entcase "github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/entity"
)

// Timeline activity kinds.
const (
	ActivityRegistryLookup = "REGISTRY_LOOKUP"
	ActivityCaseAssembled  = "CASE_ASSEMBLED"
)

// CreateCaseRequest carries everything assembly produced for one case.
// Field names and optionality are part of the contract with the
// case-management layer.
type CreateCaseRequest struct {
	FolderID          uuid.UUID
	CaseNumber        string
	LegalContext      *string
	Warnings          []string
	EnrichmentRaw     json.RawMessage
	Vehicle           entity.Vehicle
	Owners            []entity.Owner
	Addresses         []entity.Address
	SourceDocumentIDs []uuid.UUID
}

type CaseRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.InvestigationCase, error)
	GetByCaseNumber(ctx context.Context, caseNumber string) (*ent.InvestigationCase, error)
	List(ctx context.Context, folderID *uuid.UUID) ([]*ent.InvestigationCase, error)
	// CreateCase creates the case with its vehicle, owners and addresses in
	// one transaction and marks the source documents COMPLETED.
	CreateCase(ctx context.Context, req *CreateCaseRequest) (*ent.InvestigationCase, error)
	AddActivity(ctx context.Context, caseID uuid.UUID, kind, detail string) error
	ConsumeCredit(ctx context.Context, subject, keyTail string) error
}

type caseRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewCaseRepository(entc *ent.Client, logger *slog.Logger) CaseRepository {
	return &caseRepo{ent: entc, logger: logger}
}

func (r *caseRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.InvestigationCase, error) {
	return r.ent.InvestigationCase.Query().
		Where(entcase.ID(id)).
		WithVehicle().
		WithOwners().
		WithAddresses().
		Only(ctx)
}

func (r *caseRepo) GetByCaseNumber(ctx context.Context, caseNumber string) (*ent.InvestigationCase, error) {
	return r.ent.InvestigationCase.Query().
		Where(entcase.CaseNumber(caseNumber)).
		Only(ctx)
}

func (r *caseRepo) List(ctx context.Context, folderID *uuid.UUID) ([]*ent.InvestigationCase, error) {
	q := r.ent.InvestigationCase.Query().
		WithVehicle().
		WithOwners().
		Order(ent.Desc(entcase.FieldCreatedAt))
	if folderID != nil {
		q = q.Where(entcase.FolderID(*folderID))
	}
	return q.All(ctx)
}

func (r *caseRepo) CreateCase(ctx context.Context, req *CreateCaseRequest) (*ent.InvestigationCase, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}

	create := tx.InvestigationCase.Create().
		SetFolderID(req.FolderID).
		SetCaseNumber(req.CaseNumber).
		SetWarnings(req.Warnings)
	if req.LegalContext != nil {
		create.SetLegalContext(*req.LegalContext)
	}
	if req.EnrichmentRaw != nil {
		create.SetEnrichmentRaw(req.EnrichmentRaw)
	}
	row, err := create.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to create case", "case_number", req.CaseNumber, "error", err)
		return nil, err
	}

	vc := tx.Vehicle.Create().
		SetCaseID(row.ID).
		SetPlate(req.Vehicle.Plate)
	if req.Vehicle.Make != nil {
		vc.SetMake(*req.Vehicle.Make)
	}
	if req.Vehicle.Model != nil {
		vc.SetModel(*req.Vehicle.Model)
	}
	if req.Vehicle.Year != nil {
		vc.SetYear(*req.Vehicle.Year)
	}
	if req.Vehicle.Color != nil {
		vc.SetColor(*req.Vehicle.Color)
	}
	if req.Vehicle.VIN != nil {
		vc.SetVin(*req.Vehicle.VIN)
	}
	if req.Vehicle.EngineNumber != nil {
		vc.SetEngineNumber(*req.Vehicle.EngineNumber)
	}
	if _, err := vc.Save(ctx); err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to create vehicle", "case_number", req.CaseNumber, "error", err)
		return nil, err
	}

	for _, o := range req.Owners {
		oc := tx.CaseOwner.Create().
			SetCaseID(row.ID).
			SetSource(o.Source)
		if o.NationalID != nil {
			oc.SetNationalID(*o.NationalID)
		}
		if o.FullName != nil {
			oc.SetFullName(*o.FullName)
		}
		if _, err := oc.Save(ctx); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}

	for _, a := range req.Addresses {
		ac := tx.CaseAddress.Create().
			SetCaseID(row.ID).
			SetStreet(a.Street).
			SetSource(a.Source)
		if a.Locality != nil {
			ac.SetLocality(*a.Locality)
		}
		if a.Region != nil {
			ac.SetRegion(*a.Region)
		}
		if _, err := ac.Save(ctx); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}

	// source documents become case-linked artifacts, terminal COMPLETED
	for _, docID := range req.SourceDocumentIDs {
		_, err := tx.ProcessedDocument.UpdateOneID(docID).
			SetState(string(constants.StateCompleted)).
			SetCaseID(row.ID).
			ClearErrorDetail().
			ClearNextAttemptAt().
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			r.logger.Error("failed to link source document", "case_number", req.CaseNumber, "doc_id", docID, "error", err)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.logger.Info("case created",
		"case_id", row.ID,
		"case_number", req.CaseNumber,
		"owners", len(req.Owners),
		"addresses", len(req.Addresses),
		"warnings", len(req.Warnings),
	)
	return row, nil
}

func (r *caseRepo) AddActivity(ctx context.Context, caseID uuid.UUID, kind, detail string) error {
	_, err := r.ent.CaseActivity.Create().
		SetCaseID(caseID).
		SetKind(kind).
		SetDetail(detail).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to record case activity", "case_id", caseID, "kind", kind, "error", err)
	}
	return err
}

func (r *caseRepo) ConsumeCredit(ctx context.Context, subject, keyTail string) error {
	_, err := r.ent.RegistryCredit.Create().
		SetSubject(subject).
		SetKeyTail(keyTail).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to record registry credit", "subject", subject, "error", err)
	}
	return err
}
