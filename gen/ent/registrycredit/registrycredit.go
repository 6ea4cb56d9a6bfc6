// Code generated by ent, DO NOT EDIT.

package registrycredit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the registrycredit type in the database.
	Label = "registry_credit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldKeyTail holds the string denoting the key_tail field in the database.
	FieldKeyTail = "key_tail"
	// FieldConsumedAt holds the string denoting the consumed_at field in the database.
	FieldConsumedAt = "consumed_at"
	// Table holds the table name of the registrycredit in the database.
	Table = "registry_credits"
)

// Columns holds all SQL columns for registrycredit fields.
var Columns = []string{
	FieldID,
	FieldSubject,
	FieldKeyTail,
	FieldConsumedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// KeyTailValidator is a validator for the "key_tail" field. It is called by the builders before save.
	KeyTailValidator func(string) error
	// DefaultConsumedAt holds the default value on creation for the "consumed_at" field.
	DefaultConsumedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the RegistryCredit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByKeyTail orders the results by the key_tail field.
func ByKeyTail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyTail, opts...).ToFunc()
}

// ByConsumedAt orders the results by the consumed_at field.
func ByConsumedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsumedAt, opts...).ToFunc()
}
