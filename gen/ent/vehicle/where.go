// Code generated by ent, DO NOT EDIT.

package vehicle

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCaseID, v))
}

// Plate applies equality check predicate on the "plate" field. It's identical to PlateEQ.
func Plate(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldPlate, v))
}

// Make applies equality check predicate on the "make" field. It's identical to MakeEQ.
func Make(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldMake, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldModel, v))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldYear, v))
}

// Color applies equality check predicate on the "color" field. It's identical to ColorEQ.
func Color(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldColor, v))
}

// Vin applies equality check predicate on the "vin" field. It's identical to VinEQ.
func Vin(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldVin, v))
}

// EngineNumber applies equality check predicate on the "engine_number" field. It's identical to EngineNumberEQ.
func EngineNumber(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldEngineNumber, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldCaseID, vs...))
}

// PlateEQ applies the EQ predicate on the "plate" field.
func PlateEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldPlate, v))
}

// PlateNEQ applies the NEQ predicate on the "plate" field.
func PlateNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldPlate, v))
}

// PlateIn applies the In predicate on the "plate" field.
func PlateIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldPlate, vs...))
}

// PlateNotIn applies the NotIn predicate on the "plate" field.
func PlateNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldPlate, vs...))
}

// PlateGT applies the GT predicate on the "plate" field.
func PlateGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldPlate, v))
}

// PlateGTE applies the GTE predicate on the "plate" field.
func PlateGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldPlate, v))
}

// PlateLT applies the LT predicate on the "plate" field.
func PlateLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldPlate, v))
}

// PlateLTE applies the LTE predicate on the "plate" field.
func PlateLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldPlate, v))
}

// PlateContains applies the Contains predicate on the "plate" field.
func PlateContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldPlate, v))
}

// PlateHasPrefix applies the HasPrefix predicate on the "plate" field.
func PlateHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldPlate, v))
}

// PlateHasSuffix applies the HasSuffix predicate on the "plate" field.
func PlateHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldPlate, v))
}

// PlateEqualFold applies the EqualFold predicate on the "plate" field.
func PlateEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldPlate, v))
}

// PlateContainsFold applies the ContainsFold predicate on the "plate" field.
func PlateContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldPlate, v))
}

// MakeEQ applies the EQ predicate on the "make" field.
func MakeEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldMake, v))
}

// MakeNEQ applies the NEQ predicate on the "make" field.
func MakeNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldMake, v))
}

// MakeIn applies the In predicate on the "make" field.
func MakeIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldMake, vs...))
}

// MakeNotIn applies the NotIn predicate on the "make" field.
func MakeNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldMake, vs...))
}

// MakeGT applies the GT predicate on the "make" field.
func MakeGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldMake, v))
}

// MakeGTE applies the GTE predicate on the "make" field.
func MakeGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldMake, v))
}

// MakeLT applies the LT predicate on the "make" field.
func MakeLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldMake, v))
}

// MakeLTE applies the LTE predicate on the "make" field.
func MakeLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldMake, v))
}

// MakeContains applies the Contains predicate on the "make" field.
func MakeContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldMake, v))
}

// MakeHasPrefix applies the HasPrefix predicate on the "make" field.
func MakeHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldMake, v))
}

// MakeHasSuffix applies the HasSuffix predicate on the "make" field.
func MakeHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldMake, v))
}

// MakeIsNil applies the IsNil predicate on the "make" field.
func MakeIsNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIsNull(FieldMake))
}

// MakeNotNil applies the NotNil predicate on the "make" field.
func MakeNotNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotNull(FieldMake))
}

// MakeEqualFold applies the EqualFold predicate on the "make" field.
func MakeEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldMake, v))
}

// MakeContainsFold applies the ContainsFold predicate on the "make" field.
func MakeContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldMake, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldModel, v))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldYear, v))
}

// YearIsNil applies the IsNil predicate on the "year" field.
func YearIsNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIsNull(FieldYear))
}

// YearNotNil applies the NotNil predicate on the "year" field.
func YearNotNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotNull(FieldYear))
}

// ColorEQ applies the EQ predicate on the "color" field.
func ColorEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldColor, v))
}

// ColorNEQ applies the NEQ predicate on the "color" field.
func ColorNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldColor, v))
}

// ColorIn applies the In predicate on the "color" field.
func ColorIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldColor, vs...))
}

// ColorNotIn applies the NotIn predicate on the "color" field.
func ColorNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldColor, vs...))
}

// ColorGT applies the GT predicate on the "color" field.
func ColorGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldColor, v))
}

// ColorGTE applies the GTE predicate on the "color" field.
func ColorGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldColor, v))
}

// ColorLT applies the LT predicate on the "color" field.
func ColorLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldColor, v))
}

// ColorLTE applies the LTE predicate on the "color" field.
func ColorLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldColor, v))
}

// ColorContains applies the Contains predicate on the "color" field.
func ColorContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldColor, v))
}

// ColorHasPrefix applies the HasPrefix predicate on the "color" field.
func ColorHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldColor, v))
}

// ColorHasSuffix applies the HasSuffix predicate on the "color" field.
func ColorHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldColor, v))
}

// ColorIsNil applies the IsNil predicate on the "color" field.
func ColorIsNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIsNull(FieldColor))
}

// ColorNotNil applies the NotNil predicate on the "color" field.
func ColorNotNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotNull(FieldColor))
}

// ColorEqualFold applies the EqualFold predicate on the "color" field.
func ColorEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldColor, v))
}

// ColorContainsFold applies the ContainsFold predicate on the "color" field.
func ColorContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldColor, v))
}

// VinEQ applies the EQ predicate on the "vin" field.
func VinEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldVin, v))
}

// VinNEQ applies the NEQ predicate on the "vin" field.
func VinNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldVin, v))
}

// VinIn applies the In predicate on the "vin" field.
func VinIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldVin, vs...))
}

// VinNotIn applies the NotIn predicate on the "vin" field.
func VinNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldVin, vs...))
}

// VinGT applies the GT predicate on the "vin" field.
func VinGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldVin, v))
}

// VinGTE applies the GTE predicate on the "vin" field.
func VinGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldVin, v))
}

// VinLT applies the LT predicate on the "vin" field.
func VinLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldVin, v))
}

// VinLTE applies the LTE predicate on the "vin" field.
func VinLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldVin, v))
}

// VinContains applies the Contains predicate on the "vin" field.
func VinContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldVin, v))
}

// VinHasPrefix applies the HasPrefix predicate on the "vin" field.
func VinHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldVin, v))
}

// VinHasSuffix applies the HasSuffix predicate on the "vin" field.
func VinHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldVin, v))
}

// VinIsNil applies the IsNil predicate on the "vin" field.
func VinIsNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIsNull(FieldVin))
}

// VinNotNil applies the NotNil predicate on the "vin" field.
func VinNotNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotNull(FieldVin))
}

// VinEqualFold applies the EqualFold predicate on the "vin" field.
func VinEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldVin, v))
}

// VinContainsFold applies the ContainsFold predicate on the "vin" field.
func VinContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldVin, v))
}

// EngineNumberEQ applies the EQ predicate on the "engine_number" field.
func EngineNumberEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldEngineNumber, v))
}

// EngineNumberNEQ applies the NEQ predicate on the "engine_number" field.
func EngineNumberNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldEngineNumber, v))
}

// EngineNumberIn applies the In predicate on the "engine_number" field.
func EngineNumberIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldEngineNumber, vs...))
}

// EngineNumberNotIn applies the NotIn predicate on the "engine_number" field.
func EngineNumberNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldEngineNumber, vs...))
}

// EngineNumberGT applies the GT predicate on the "engine_number" field.
func EngineNumberGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldEngineNumber, v))
}

// EngineNumberGTE applies the GTE predicate on the "engine_number" field.
func EngineNumberGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldEngineNumber, v))
}

// EngineNumberLT applies the LT predicate on the "engine_number" field.
func EngineNumberLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldEngineNumber, v))
}

// EngineNumberLTE applies the LTE predicate on the "engine_number" field.
func EngineNumberLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldEngineNumber, v))
}

// EngineNumberContains applies the Contains predicate on the "engine_number" field.
func EngineNumberContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldEngineNumber, v))
}

// EngineNumberHasPrefix applies the HasPrefix predicate on the "engine_number" field.
func EngineNumberHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldEngineNumber, v))
}

// EngineNumberHasSuffix applies the HasSuffix predicate on the "engine_number" field.
func EngineNumberHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldEngineNumber, v))
}

// EngineNumberIsNil applies the IsNil predicate on the "engine_number" field.
func EngineNumberIsNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIsNull(FieldEngineNumber))
}

// EngineNumberNotNil applies the NotNil predicate on the "engine_number" field.
func EngineNumberNotNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotNull(FieldEngineNumber))
}

// EngineNumberEqualFold applies the EqualFold predicate on the "engine_number" field.
func EngineNumberEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldEngineNumber, v))
}

// EngineNumberContainsFold applies the ContainsFold predicate on the "engine_number" field.
func EngineNumberContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldEngineNumber, v))
}

// HasCase applies the HasEdge predicate on the "case" edge.
func HasCase() predicate.Vehicle {
	return predicate.Vehicle(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, CaseTable, CaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCaseWith applies the HasEdge predicate on the "case" edge with a given conditions (other predicates).
func HasCaseWith(preds ...predicate.InvestigationCase) predicate.Vehicle {
	return predicate.Vehicle(func(s *sql.Selector) {
		step := newCaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Vehicle) predicate.Vehicle {
	return predicate.Vehicle(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Vehicle) predicate.Vehicle {
	return predicate.Vehicle(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Vehicle) predicate.Vehicle {
	return predicate.Vehicle(sql.NotPredicates(p))
}
