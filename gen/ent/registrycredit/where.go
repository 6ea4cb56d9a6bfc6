// Code generated by ent, DO NOT EDIT.

package registrycredit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldLTE(FieldID, id))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldEQ(FieldSubject, v))
}

// KeyTail applies equality check predicate on the "key_tail" field. It's identical to KeyTailEQ.
func KeyTail(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldEQ(FieldKeyTail, v))
}

// ConsumedAt applies equality check predicate on the "consumed_at" field. It's identical to ConsumedAtEQ.
func ConsumedAt(v time.Time) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldEQ(FieldConsumedAt, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldContainsFold(FieldSubject, v))
}

// KeyTailEQ applies the EQ predicate on the "key_tail" field.
func KeyTailEQ(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldEQ(FieldKeyTail, v))
}

// KeyTailNEQ applies the NEQ predicate on the "key_tail" field.
func KeyTailNEQ(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldNEQ(FieldKeyTail, v))
}

// KeyTailIn applies the In predicate on the "key_tail" field.
func KeyTailIn(vs ...string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldIn(FieldKeyTail, vs...))
}

// KeyTailNotIn applies the NotIn predicate on the "key_tail" field.
func KeyTailNotIn(vs ...string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldNotIn(FieldKeyTail, vs...))
}

// KeyTailGT applies the GT predicate on the "key_tail" field.
func KeyTailGT(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldGT(FieldKeyTail, v))
}

// KeyTailGTE applies the GTE predicate on the "key_tail" field.
func KeyTailGTE(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldGTE(FieldKeyTail, v))
}

// KeyTailLT applies the LT predicate on the "key_tail" field.
func KeyTailLT(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldLT(FieldKeyTail, v))
}

// KeyTailLTE applies the LTE predicate on the "key_tail" field.
func KeyTailLTE(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldLTE(FieldKeyTail, v))
}

// KeyTailContains applies the Contains predicate on the "key_tail" field.
func KeyTailContains(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldContains(FieldKeyTail, v))
}

// KeyTailHasPrefix applies the HasPrefix predicate on the "key_tail" field.
func KeyTailHasPrefix(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldHasPrefix(FieldKeyTail, v))
}

// KeyTailHasSuffix applies the HasSuffix predicate on the "key_tail" field.
func KeyTailHasSuffix(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldHasSuffix(FieldKeyTail, v))
}

// KeyTailEqualFold applies the EqualFold predicate on the "key_tail" field.
func KeyTailEqualFold(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldEqualFold(FieldKeyTail, v))
}

// KeyTailContainsFold applies the ContainsFold predicate on the "key_tail" field.
func KeyTailContainsFold(v string) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldContainsFold(FieldKeyTail, v))
}

// ConsumedAtEQ applies the EQ predicate on the "consumed_at" field.
func ConsumedAtEQ(v time.Time) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldEQ(FieldConsumedAt, v))
}

// ConsumedAtNEQ applies the NEQ predicate on the "consumed_at" field.
func ConsumedAtNEQ(v time.Time) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldNEQ(FieldConsumedAt, v))
}

// ConsumedAtIn applies the In predicate on the "consumed_at" field.
func ConsumedAtIn(vs ...time.Time) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldIn(FieldConsumedAt, vs...))
}

// ConsumedAtNotIn applies the NotIn predicate on the "consumed_at" field.
func ConsumedAtNotIn(vs ...time.Time) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldNotIn(FieldConsumedAt, vs...))
}

// ConsumedAtGT applies the GT predicate on the "consumed_at" field.
func ConsumedAtGT(v time.Time) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldGT(FieldConsumedAt, v))
}

// ConsumedAtGTE applies the GTE predicate on the "consumed_at" field.
func ConsumedAtGTE(v time.Time) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldGTE(FieldConsumedAt, v))
}

// ConsumedAtLT applies the LT predicate on the "consumed_at" field.
func ConsumedAtLT(v time.Time) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldLT(FieldConsumedAt, v))
}

// ConsumedAtLTE applies the LTE predicate on the "consumed_at" field.
func ConsumedAtLTE(v time.Time) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.FieldLTE(FieldConsumedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RegistryCredit) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RegistryCredit) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RegistryCredit) predicate.RegistryCredit {
	return predicate.RegistryCredit(sql.NotPredicates(p))
}
