// Package assembly merges a paired order and certificate, enriched with
// registry data, into one investigation case. Field precedence is
// registry over certificate over order; disagreements between sources are
// never fatal, they become warnings on the case.
package assembly

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/google/uuid"

	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/entity"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/fields"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/registry"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/repository"
)

// Owner/address provenance markers persisted with each record.
const (
	SourceEnrichment  = "ENRICHMENT"
	SourceCertificate = "CERTIFICATE"
	SourceOrder       = "ORDER"
)

// nameSimilarityFloor is the levenshtein similarity below which two owner
// names are reported as diverging.
const nameSimilarityFloor = 0.80

// RegistryClient is the slice of the registry client assembly needs.
type RegistryClient interface {
	LookupPlate(ctx context.Context, plate string, caseID *uuid.UUID) (*registry.VehicleRecord, error)
	LookupRUT(ctx context.Context, rut string, caseID *uuid.UUID) (*registry.VehicleRecord, error)
}

type Service struct {
	cases    repository.CaseRepository
	docs     repository.DocumentRepository
	registry RegistryClient
	logger   *slog.Logger
}

func NewService(cases repository.CaseRepository, docs repository.DocumentRepository, reg RegistryClient, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cases: cases, docs: docs, registry: reg, logger: logger}
}

// Assemble builds the case for a paired order and certificate. It is
// idempotent on case number: a re-run after a crash finds the existing
// case and only finishes the source documents.
func (s *Service) Assemble(ctx context.Context, order, cert *ent.ProcessedDocument) (*ent.InvestigationCase, error) {
	of, cf, err := decodePair(order, cert)
	if err != nil {
		return nil, err
	}

	caseNumber := coalesceStr(of.CaseNumber, cf.CaseNumber)
	if caseNumber == "" {
		return nil, fmt.Errorf("neither document of pair %s/%s carries a case number", order.ID, cert.ID)
	}

	if existing, err := s.cases.GetByCaseNumber(ctx, caseNumber); err == nil {
		s.logger.Info("case already assembled, completing source documents", "case_number", caseNumber, "case_id", existing.ID)
		return existing, s.completeSources(ctx, existing.ID, order.ID, cert.ID)
	} else if !ent.IsNotFound(err) {
		return nil, err
	}

	warnings := crossValidate(of, cf)

	plate := coalesceStr(cf.Plate, of.Plate)
	rut := coalesceStr(cf.OwnerRUT, of.OwnerRUT)
	rec, enrichRaw, enrichWarnings, err := s.enrich(ctx, plate, rut)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, enrichWarnings...)
	warnings = append(warnings, enrichmentWarnings(rec, of, cf)...)

	req := &repository.CreateCaseRequest{
		FolderID:          order.FolderID,
		CaseNumber:        caseNumber,
		LegalContext:      of.LegalContext,
		Warnings:          warnings,
		EnrichmentRaw:     enrichRaw,
		Vehicle:           mergeVehicle(plate, rec, cf),
		Owners:            collectOwners(rec, cf, of),
		Addresses:         collectAddresses(of),
		SourceDocumentIDs: []uuid.UUID{order.ID, cert.ID},
	}

	row, err := s.cases.CreateCase(ctx, req)
	if err != nil {
		// a concurrent worker may have assembled the same case number
		if ent.IsConstraintError(err) {
			if existing, gerr := s.cases.GetByCaseNumber(ctx, caseNumber); gerr == nil {
				return existing, s.completeSources(ctx, existing.ID, order.ID, cert.ID)
			}
		}
		return nil, err
	}

	detail := fmt.Sprintf("case assembled from documents %s and %s", order.ID, cert.ID)
	if err := s.cases.AddActivity(ctx, row.ID, repository.ActivityCaseAssembled, detail); err != nil {
		s.logger.Warn("failed to record assembly activity", "case_id", row.ID, "error", err)
	}
	return row, nil
}

func (s *Service) completeSources(ctx context.Context, caseID uuid.UUID, docIDs ...uuid.UUID) error {
	for _, id := range docIDs {
		if err := s.docs.SetCompleted(ctx, id, caseID); err != nil {
			return err
		}
	}
	return nil
}

// enrich performs the registry lookup, by plate when one is known and by
// owner id otherwise. Expected misses (not found, throttled) degrade the
// case to document-only data; auth and upstream failures propagate so the
// pipeline can retry the assembly.
func (s *Service) enrich(ctx context.Context, plate, rut string) (*registry.VehicleRecord, json.RawMessage, []string, error) {
	if s.registry == nil {
		return nil, nil, nil, nil
	}
	var (
		rec     *registry.VehicleRecord
		err     error
		subject string
	)
	switch {
	case plate != "":
		subject = plate
		rec, err = s.registry.LookupPlate(ctx, plate, nil)
	case rut != "":
		subject = rut
		rec, err = s.registry.LookupRUT(ctx, rut, nil)
	default:
		return nil, nil, []string{"no plate or owner id available, registry enrichment skipped"}, nil
	}
	switch {
	case err == nil:
		raw, _ := json.Marshal(rec)
		return rec, raw, nil, nil
	case errors.Is(err, registry.ErrNotFound):
		return nil, nil, []string{fmt.Sprintf("%s not found in registry", subject)}, nil
	case errors.Is(err, registry.ErrRateLimited):
		s.logger.Warn("registry enrichment unavailable", "subject", subject, "error", err)
		return nil, nil, []string{fmt.Sprintf("registry enrichment unavailable: %v", err)}, nil
	default:
		return nil, nil, nil, fmt.Errorf("registry lookup for %s: %w", subject, err)
	}
}

func decodePair(order, cert *ent.ProcessedDocument) (*fields.OrderFields, *fields.CertificateFields, error) {
	oe, err := fields.Decode(order.ExtractedFields)
	if err != nil || oe.Order == nil {
		return nil, nil, fmt.Errorf("document %s has no order fields: %w", order.ID, err)
	}
	ce, err := fields.Decode(cert.ExtractedFields)
	if err != nil || ce.Certificate == nil {
		return nil, nil, fmt.Errorf("document %s has no certificate fields: %w", cert.ID, err)
	}
	return oe.Order, ce.Certificate, nil
}

// crossValidate compares the two documents' overlapping fields and
// reports every disagreement.
func crossValidate(of *fields.OrderFields, cf *fields.CertificateFields) []string {
	var warnings []string
	if of.Plate != nil && cf.Plate != nil && *of.Plate != *cf.Plate {
		warnings = append(warnings, fmt.Sprintf("plate mismatch: order says %s, certificate says %s", *of.Plate, *cf.Plate))
	}
	if of.OwnerRUT != nil && cf.OwnerRUT != nil && *of.OwnerRUT != *cf.OwnerRUT {
		warnings = append(warnings, fmt.Sprintf("owner id mismatch: order says %s, certificate says %s", *of.OwnerRUT, *cf.OwnerRUT))
	}
	if of.OwnerName != nil && cf.OwnerName != nil {
		sim := levenshtein.Match(normalizeName(*of.OwnerName), normalizeName(*cf.OwnerName), nil)
		if sim < nameSimilarityFloor {
			warnings = append(warnings, fmt.Sprintf("owner name diverges between documents: %q vs %q", *of.OwnerName, *cf.OwnerName))
		}
	}
	return warnings
}

// enrichmentWarnings reports document values the registry contradicts.
// The registry value still wins the merge; the disagreement stays visible
// on the case.
func enrichmentWarnings(rec *registry.VehicleRecord, of *fields.OrderFields, cf *fields.CertificateFields) []string {
	if rec == nil {
		return nil
	}
	var warnings []string
	sources := []struct {
		name  string
		plate *string
		rut   *string
	}{
		{"order", of.Plate, of.OwnerRUT},
		{"certificate", cf.Plate, cf.OwnerRUT},
	}
	for _, src := range sources {
		if rec.Plate != "" && src.plate != nil && *src.plate != rec.Plate {
			warnings = append(warnings, fmt.Sprintf("plate mismatch: registry says %s, %s says %s", rec.Plate, src.name, *src.plate))
		}
		if rec.OwnerRUT != nil && src.rut != nil && *src.rut != *rec.OwnerRUT {
			warnings = append(warnings, fmt.Sprintf("owner id mismatch: registry says %s, %s says %s", *rec.OwnerRUT, src.name, *src.rut))
		}
	}
	return warnings
}

func normalizeName(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}

// mergeVehicle applies source precedence per field: registry wins, the
// certificate fills the gaps, the order contributes only its plate.
func mergeVehicle(plate string, rec *registry.VehicleRecord, cf *fields.CertificateFields) entity.Vehicle {
	v := entity.Vehicle{Plate: plate}
	if rec != nil && rec.Plate != "" {
		v.Plate = rec.Plate
	}
	v.Make = pickStr(recStr(rec, func(r *registry.VehicleRecord) *string { return r.Make }), cf.Make)
	v.Model = pickStr(recStr(rec, func(r *registry.VehicleRecord) *string { return r.Model }), cf.Model)
	v.Color = pickStr(recStr(rec, func(r *registry.VehicleRecord) *string { return r.Color }), cf.Color)
	v.VIN = pickStr(recStr(rec, func(r *registry.VehicleRecord) *string { return r.VIN }), cf.VIN)
	v.EngineNumber = pickStr(recStr(rec, func(r *registry.VehicleRecord) *string { return r.EngineNumber }), cf.EngineNumber)
	if rec != nil && rec.Year != nil {
		v.Year = rec.Year
	} else {
		v.Year = cf.Year
	}
	return v
}

// collectOwners keeps one owner record per source so disagreements stay
// visible instead of being merged away.
func collectOwners(rec *registry.VehicleRecord, cf *fields.CertificateFields, of *fields.OrderFields) []entity.Owner {
	var owners []entity.Owner
	if rec != nil && (rec.OwnerRUT != nil || rec.OwnerName != nil) {
		owners = append(owners, entity.Owner{NationalID: rec.OwnerRUT, FullName: rec.OwnerName, Source: SourceEnrichment})
	}
	if cf.OwnerRUT != nil || cf.OwnerName != nil {
		owners = append(owners, entity.Owner{NationalID: cf.OwnerRUT, FullName: cf.OwnerName, Source: SourceCertificate})
	}
	if of.OwnerRUT != nil || of.OwnerName != nil {
		owners = append(owners, entity.Owner{NationalID: of.OwnerRUT, FullName: of.OwnerName, Source: SourceOrder})
	}
	return owners
}

func collectAddresses(of *fields.OrderFields) []entity.Address {
	out := make([]entity.Address, 0, len(of.Addresses))
	for _, a := range of.Addresses {
		out = append(out, entity.Address{
			Street:   a.Street,
			Locality: a.Locality,
			Region:   a.Region,
			Source:   SourceOrder,
		})
	}
	return out
}

func coalesceStr(ptrs ...*string) string {
	for _, p := range ptrs {
		if p != nil && *p != "" {
			return *p
		}
	}
	return ""
}

func pickStr(ptrs ...*string) *string {
	for _, p := range ptrs {
		if p != nil && *p != "" {
			return p
		}
	}
	return nil
}

func recStr(rec *registry.VehicleRecord, get func(*registry.VehicleRecord) *string) *string {
	if rec == nil {
		return nil
	}
	return get(rec)
}
