// Code generated by ent, DO NOT EDIT.

package caseaddress

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldLTE(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v uuid.UUID) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldEQ(FieldCaseID, v))
}

// Street applies equality check predicate on the "street" field. It's identical to StreetEQ.
func Street(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldEQ(FieldStreet, v))
}

// Locality applies equality check predicate on the "locality" field. It's identical to LocalityEQ.
func Locality(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldEQ(FieldLocality, v))
}

// Region applies equality check predicate on the "region" field. It's identical to RegionEQ.
func Region(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldEQ(FieldRegion, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldEQ(FieldSource, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v uuid.UUID) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v uuid.UUID) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...uuid.UUID) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...uuid.UUID) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldNotIn(FieldCaseID, vs...))
}

// StreetEQ applies the EQ predicate on the "street" field.
func StreetEQ(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldEQ(FieldStreet, v))
}

// StreetNEQ applies the NEQ predicate on the "street" field.
func StreetNEQ(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldNEQ(FieldStreet, v))
}

// StreetIn applies the In predicate on the "street" field.
func StreetIn(vs ...string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldIn(FieldStreet, vs...))
}

// StreetNotIn applies the NotIn predicate on the "street" field.
func StreetNotIn(vs ...string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldNotIn(FieldStreet, vs...))
}

// StreetGT applies the GT predicate on the "street" field.
func StreetGT(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldGT(FieldStreet, v))
}

// StreetGTE applies the GTE predicate on the "street" field.
func StreetGTE(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldGTE(FieldStreet, v))
}

// StreetLT applies the LT predicate on the "street" field.
func StreetLT(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldLT(FieldStreet, v))
}

// StreetLTE applies the LTE predicate on the "street" field.
func StreetLTE(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldLTE(FieldStreet, v))
}

// StreetContains applies the Contains predicate on the "street" field.
func StreetContains(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldContains(FieldStreet, v))
}

// StreetHasPrefix applies the HasPrefix predicate on the "street" field.
func StreetHasPrefix(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldHasPrefix(FieldStreet, v))
}

// StreetHasSuffix applies the HasSuffix predicate on the "street" field.
func StreetHasSuffix(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldHasSuffix(FieldStreet, v))
}

// StreetEqualFold applies the EqualFold predicate on the "street" field.
func StreetEqualFold(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldEqualFold(FieldStreet, v))
}

// StreetContainsFold applies the ContainsFold predicate on the "street" field.
func StreetContainsFold(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldContainsFold(FieldStreet, v))
}

// LocalityEQ applies the EQ predicate on the "locality" field.
func LocalityEQ(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldEQ(FieldLocality, v))
}

// LocalityNEQ applies the NEQ predicate on the "locality" field.
func LocalityNEQ(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldNEQ(FieldLocality, v))
}

// LocalityIn applies the In predicate on the "locality" field.
func LocalityIn(vs ...string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldIn(FieldLocality, vs...))
}

// LocalityNotIn applies the NotIn predicate on the "locality" field.
func LocalityNotIn(vs ...string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldNotIn(FieldLocality, vs...))
}

// LocalityGT applies the GT predicate on the "locality" field.
func LocalityGT(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldGT(FieldLocality, v))
}

// LocalityGTE applies the GTE predicate on the "locality" field.
func LocalityGTE(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldGTE(FieldLocality, v))
}

// LocalityLT applies the LT predicate on the "locality" field.
func LocalityLT(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldLT(FieldLocality, v))
}

// LocalityLTE applies the LTE predicate on the "locality" field.
func LocalityLTE(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldLTE(FieldLocality, v))
}

// LocalityContains applies the Contains predicate on the "locality" field.
func LocalityContains(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldContains(FieldLocality, v))
}

// LocalityHasPrefix applies the HasPrefix predicate on the "locality" field.
func LocalityHasPrefix(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldHasPrefix(FieldLocality, v))
}

// LocalityHasSuffix applies the HasSuffix predicate on the "locality" field.
func LocalityHasSuffix(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldHasSuffix(FieldLocality, v))
}

// LocalityIsNil applies the IsNil predicate on the "locality" field.
func LocalityIsNil() predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldIsNull(FieldLocality))
}

// LocalityNotNil applies the NotNil predicate on the "locality" field.
func LocalityNotNil() predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldNotNull(FieldLocality))
}

// LocalityEqualFold applies the EqualFold predicate on the "locality" field.
func LocalityEqualFold(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldEqualFold(FieldLocality, v))
}

// LocalityContainsFold applies the ContainsFold predicate on the "locality" field.
func LocalityContainsFold(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldContainsFold(FieldLocality, v))
}

// RegionEQ applies the EQ predicate on the "region" field.
func RegionEQ(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldEQ(FieldRegion, v))
}

// RegionNEQ applies the NEQ predicate on the "region" field.
func RegionNEQ(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldNEQ(FieldRegion, v))
}

// RegionIn applies the In predicate on the "region" field.
func RegionIn(vs ...string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldIn(FieldRegion, vs...))
}

// RegionNotIn applies the NotIn predicate on the "region" field.
func RegionNotIn(vs ...string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldNotIn(FieldRegion, vs...))
}

// RegionGT applies the GT predicate on the "region" field.
func RegionGT(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldGT(FieldRegion, v))
}

// RegionGTE applies the GTE predicate on the "region" field.
func RegionGTE(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldGTE(FieldRegion, v))
}

// RegionLT applies the LT predicate on the "region" field.
func RegionLT(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldLT(FieldRegion, v))
}

// RegionLTE applies the LTE predicate on the "region" field.
func RegionLTE(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldLTE(FieldRegion, v))
}

// RegionContains applies the Contains predicate on the "region" field.
func RegionContains(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldContains(FieldRegion, v))
}

// RegionHasPrefix applies the HasPrefix predicate on the "region" field.
func RegionHasPrefix(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldHasPrefix(FieldRegion, v))
}

// RegionHasSuffix applies the HasSuffix predicate on the "region" field.
func RegionHasSuffix(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldHasSuffix(FieldRegion, v))
}

// RegionIsNil applies the IsNil predicate on the "region" field.
func RegionIsNil() predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldIsNull(FieldRegion))
}

// RegionNotNil applies the NotNil predicate on the "region" field.
func RegionNotNil() predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldNotNull(FieldRegion))
}

// RegionEqualFold applies the EqualFold predicate on the "region" field.
func RegionEqualFold(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldEqualFold(FieldRegion, v))
}

// RegionContainsFold applies the ContainsFold predicate on the "region" field.
func RegionContainsFold(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldContainsFold(FieldRegion, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.CaseAddress {
	return predicate.CaseAddress(sql.FieldContainsFold(FieldSource, v))
}

// HasCase applies the HasEdge predicate on the "case" edge.
func HasCase() predicate.CaseAddress {
	return predicate.CaseAddress(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CaseTable, CaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCaseWith applies the HasEdge predicate on the "case" edge with a given conditions (other predicates).
func HasCaseWith(preds ...predicate.InvestigationCase) predicate.CaseAddress {
	return predicate.CaseAddress(func(s *sql.Selector) {
		step := newCaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CaseAddress) predicate.CaseAddress {
	return predicate.CaseAddress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CaseAddress) predicate.CaseAddress {
	return predicate.CaseAddress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CaseAddress) predicate.CaseAddress {
	return predicate.CaseAddress(sql.NotPredicates(p))
}
