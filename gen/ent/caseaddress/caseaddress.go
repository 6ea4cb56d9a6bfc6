// Code generated by ent, DO NOT EDIT.

package caseaddress

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the caseaddress type in the database.
	Label = "case_address"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldStreet holds the string denoting the street field in the database.
	FieldStreet = "street"
	// FieldLocality holds the string denoting the locality field in the database.
	FieldLocality = "locality"
	// FieldRegion holds the string denoting the region field in the database.
	FieldRegion = "region"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// EdgeCase holds the string denoting the case edge name in mutations.
	EdgeCase = "case"
	// Table holds the table name of the caseaddress in the database.
	Table = "case_addresses"
	// CaseTable is the table that holds the case relation/edge.
	CaseTable = "case_addresses"
	// CaseInverseTable is the table name for the InvestigationCase entity.
	// It exists in this package in order to avoid circular dependency with the "investigationcase" package.
	CaseInverseTable = "investigation_cases"
	// CaseColumn is the table column denoting the case relation/edge.
	CaseColumn = "case_id"
)

// Columns holds all SQL columns for caseaddress fields.
var Columns = []string{
	FieldID,
	FieldCaseID,
	FieldStreet,
	FieldLocality,
	FieldRegion,
	FieldSource,
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
	// StreetValidator is a validator for the "street" field. It is called by the builders before save.
	StreetValidator func(string) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CaseAddress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByStreet orders the results by the street field.
func ByStreet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreet, opts...).ToFunc()
}

// ByLocality orders the results by the locality field.
func ByLocality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocality, opts...).ToFunc()
}

// ByRegion orders the results by the region field.
func ByRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegion, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByCaseField orders the results by case field.
func ByCaseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCaseStep(), sql.OrderByField(field, opts...))
	}
}
func newCaseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CaseInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CaseTable, CaseColumn),
	)
}
