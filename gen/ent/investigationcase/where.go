// Code generated by ent, DO NOT EDIT.

package investigationcase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldLTE(FieldID, id))
}

// FolderID applies equality check predicate on the "folder_id" field. It's identical to FolderIDEQ.
func FolderID(v uuid.UUID) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldEQ(FieldFolderID, v))
}

// CaseNumber applies equality check predicate on the "case_number" field. It's identical to CaseNumberEQ.
func CaseNumber(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldEQ(FieldCaseNumber, v))
}

// LegalContext applies equality check predicate on the "legal_context" field. It's identical to LegalContextEQ.
func LegalContext(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldEQ(FieldLegalContext, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldEQ(FieldUpdatedAt, v))
}

// FolderIDEQ applies the EQ predicate on the "folder_id" field.
func FolderIDEQ(v uuid.UUID) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldEQ(FieldFolderID, v))
}

// FolderIDNEQ applies the NEQ predicate on the "folder_id" field.
func FolderIDNEQ(v uuid.UUID) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldNEQ(FieldFolderID, v))
}

// FolderIDIn applies the In predicate on the "folder_id" field.
func FolderIDIn(vs ...uuid.UUID) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldIn(FieldFolderID, vs...))
}

// FolderIDNotIn applies the NotIn predicate on the "folder_id" field.
func FolderIDNotIn(vs ...uuid.UUID) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldNotIn(FieldFolderID, vs...))
}

// CaseNumberEQ applies the EQ predicate on the "case_number" field.
func CaseNumberEQ(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldEQ(FieldCaseNumber, v))
}

// CaseNumberNEQ applies the NEQ predicate on the "case_number" field.
func CaseNumberNEQ(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldNEQ(FieldCaseNumber, v))
}

// CaseNumberIn applies the In predicate on the "case_number" field.
func CaseNumberIn(vs ...string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldIn(FieldCaseNumber, vs...))
}

// CaseNumberNotIn applies the NotIn predicate on the "case_number" field.
func CaseNumberNotIn(vs ...string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldNotIn(FieldCaseNumber, vs...))
}

// CaseNumberGT applies the GT predicate on the "case_number" field.
func CaseNumberGT(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldGT(FieldCaseNumber, v))
}

// CaseNumberGTE applies the GTE predicate on the "case_number" field.
func CaseNumberGTE(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldGTE(FieldCaseNumber, v))
}

// CaseNumberLT applies the LT predicate on the "case_number" field.
func CaseNumberLT(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldLT(FieldCaseNumber, v))
}

// CaseNumberLTE applies the LTE predicate on the "case_number" field.
func CaseNumberLTE(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldLTE(FieldCaseNumber, v))
}

// CaseNumberContains applies the Contains predicate on the "case_number" field.
func CaseNumberContains(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldContains(FieldCaseNumber, v))
}

// CaseNumberHasPrefix applies the HasPrefix predicate on the "case_number" field.
func CaseNumberHasPrefix(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldHasPrefix(FieldCaseNumber, v))
}

// CaseNumberHasSuffix applies the HasSuffix predicate on the "case_number" field.
func CaseNumberHasSuffix(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldHasSuffix(FieldCaseNumber, v))
}

// CaseNumberEqualFold applies the EqualFold predicate on the "case_number" field.
func CaseNumberEqualFold(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldEqualFold(FieldCaseNumber, v))
}

// CaseNumberContainsFold applies the ContainsFold predicate on the "case_number" field.
func CaseNumberContainsFold(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldContainsFold(FieldCaseNumber, v))
}

// LegalContextEQ applies the EQ predicate on the "legal_context" field.
func LegalContextEQ(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldEQ(FieldLegalContext, v))
}

// LegalContextNEQ applies the NEQ predicate on the "legal_context" field.
func LegalContextNEQ(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldNEQ(FieldLegalContext, v))
}

// LegalContextIn applies the In predicate on the "legal_context" field.
func LegalContextIn(vs ...string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldIn(FieldLegalContext, vs...))
}

// LegalContextNotIn applies the NotIn predicate on the "legal_context" field.
func LegalContextNotIn(vs ...string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldNotIn(FieldLegalContext, vs...))
}

// LegalContextGT applies the GT predicate on the "legal_context" field.
func LegalContextGT(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldGT(FieldLegalContext, v))
}

// LegalContextGTE applies the GTE predicate on the "legal_context" field.
func LegalContextGTE(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldGTE(FieldLegalContext, v))
}

// LegalContextLT applies the LT predicate on the "legal_context" field.
func LegalContextLT(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldLT(FieldLegalContext, v))
}

// LegalContextLTE applies the LTE predicate on the "legal_context" field.
func LegalContextLTE(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldLTE(FieldLegalContext, v))
}

// LegalContextContains applies the Contains predicate on the "legal_context" field.
func LegalContextContains(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldContains(FieldLegalContext, v))
}

// LegalContextHasPrefix applies the HasPrefix predicate on the "legal_context" field.
func LegalContextHasPrefix(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldHasPrefix(FieldLegalContext, v))
}

// LegalContextHasSuffix applies the HasSuffix predicate on the "legal_context" field.
func LegalContextHasSuffix(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldHasSuffix(FieldLegalContext, v))
}

// LegalContextIsNil applies the IsNil predicate on the "legal_context" field.
func LegalContextIsNil() predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldIsNull(FieldLegalContext))
}

// LegalContextNotNil applies the NotNil predicate on the "legal_context" field.
func LegalContextNotNil() predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldNotNull(FieldLegalContext))
}

// LegalContextEqualFold applies the EqualFold predicate on the "legal_context" field.
func LegalContextEqualFold(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldEqualFold(FieldLegalContext, v))
}

// LegalContextContainsFold applies the ContainsFold predicate on the "legal_context" field.
func LegalContextContainsFold(v string) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldContainsFold(FieldLegalContext, v))
}

// WarningsIsNil applies the IsNil predicate on the "warnings" field.
func WarningsIsNil() predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldIsNull(FieldWarnings))
}

// WarningsNotNil applies the NotNil predicate on the "warnings" field.
func WarningsNotNil() predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldNotNull(FieldWarnings))
}

// EnrichmentRawIsNil applies the IsNil predicate on the "enrichment_raw" field.
func EnrichmentRawIsNil() predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldIsNull(FieldEnrichmentRaw))
}

// EnrichmentRawNotNil applies the NotNil predicate on the "enrichment_raw" field.
func EnrichmentRawNotNil() predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldNotNull(FieldEnrichmentRaw))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFolder applies the HasEdge predicate on the "folder" edge.
func HasFolder() predicate.InvestigationCase {
	return predicate.InvestigationCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FolderTable, FolderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFolderWith applies the HasEdge predicate on the "folder" edge with a given conditions (other predicates).
func HasFolderWith(preds ...predicate.Folder) predicate.InvestigationCase {
	return predicate.InvestigationCase(func(s *sql.Selector) {
		step := newFolderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVehicle applies the HasEdge predicate on the "vehicle" edge.
func HasVehicle() predicate.InvestigationCase {
	return predicate.InvestigationCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, VehicleTable, VehicleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVehicleWith applies the HasEdge predicate on the "vehicle" edge with a given conditions (other predicates).
func HasVehicleWith(preds ...predicate.Vehicle) predicate.InvestigationCase {
	return predicate.InvestigationCase(func(s *sql.Selector) {
		step := newVehicleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOwners applies the HasEdge predicate on the "owners" edge.
func HasOwners() predicate.InvestigationCase {
	return predicate.InvestigationCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OwnersTable, OwnersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnersWith applies the HasEdge predicate on the "owners" edge with a given conditions (other predicates).
func HasOwnersWith(preds ...predicate.CaseOwner) predicate.InvestigationCase {
	return predicate.InvestigationCase(func(s *sql.Selector) {
		step := newOwnersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAddresses applies the HasEdge predicate on the "addresses" edge.
func HasAddresses() predicate.InvestigationCase {
	return predicate.InvestigationCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AddressesTable, AddressesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAddressesWith applies the HasEdge predicate on the "addresses" edge with a given conditions (other predicates).
func HasAddressesWith(preds ...predicate.CaseAddress) predicate.InvestigationCase {
	return predicate.InvestigationCase(func(s *sql.Selector) {
		step := newAddressesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasActivities applies the HasEdge predicate on the "activities" edge.
func HasActivities() predicate.InvestigationCase {
	return predicate.InvestigationCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ActivitiesTable, ActivitiesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActivitiesWith applies the HasEdge predicate on the "activities" edge with a given conditions (other predicates).
func HasActivitiesWith(preds ...predicate.CaseActivity) predicate.InvestigationCase {
	return predicate.InvestigationCase(func(s *sql.Selector) {
		step := newActivitiesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.InvestigationCase {
	return predicate.InvestigationCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.ProcessedDocument) predicate.InvestigationCase {
	return predicate.InvestigationCase(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InvestigationCase) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InvestigationCase) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InvestigationCase) predicate.InvestigationCase {
	return predicate.InvestigationCase(sql.NotPredicates(p))
}
