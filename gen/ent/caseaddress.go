// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseaddress"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
)

// CaseAddress is the model entity for the CaseAddress schema.
type CaseAddress struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID uuid.UUID `json:"case_id,omitempty"`
	// Street holds the value of the "street" field.
	Street string `json:"street,omitempty"`
	// Locality holds the value of the "locality" field.
	Locality *string `json:"locality,omitempty"`
	// Region holds the value of the "region" field.
	Region *string `json:"region,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CaseAddressQuery when eager-loading is set.
	Edges        CaseAddressEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CaseAddressEdges holds the relations/edges for other nodes in the graph.
type CaseAddressEdges struct {
	// Case holds the value of the case edge.
	Case *InvestigationCase `json:"case,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CaseOrErr returns the Case value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CaseAddressEdges) CaseOrErr() (*InvestigationCase, error) {
	if e.Case != nil {
		return e.Case, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: investigationcase.Label}
	}
	return nil, &NotLoadedError{edge: "case"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CaseAddress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case caseaddress.FieldStreet, caseaddress.FieldLocality, caseaddress.FieldRegion, caseaddress.FieldSource:
			values[i] = new(sql.NullString)
		case caseaddress.FieldID, caseaddress.FieldCaseID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CaseAddress fields.
func (_m *CaseAddress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case caseaddress.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case caseaddress.FieldCaseID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value != nil {
				_m.CaseID = *value
			}
		case caseaddress.FieldStreet:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field street", values[i])
			} else if value.Valid {
				_m.Street = value.String
			}
		case caseaddress.FieldLocality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field locality", values[i])
			} else if value.Valid {
				_m.Locality = new(string)
				*_m.Locality = value.String
			}
		case caseaddress.FieldRegion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field region", values[i])
			} else if value.Valid {
				_m.Region = new(string)
				*_m.Region = value.String
			}
		case caseaddress.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CaseAddress.
// This includes values selected through modifiers, order, etc.
func (_m *CaseAddress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCase queries the "case" edge of the CaseAddress entity.
func (_m *CaseAddress) QueryCase() *InvestigationCaseQuery {
	return NewCaseAddressClient(_m.config).QueryCase(_m)
}

// Update returns a builder for updating this CaseAddress.
// Note that you need to call CaseAddress.Unwrap() before calling this method if this CaseAddress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CaseAddress) Update() *CaseAddressUpdateOne {
	return NewCaseAddressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CaseAddress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CaseAddress) Unwrap() *CaseAddress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CaseAddress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CaseAddress) String() string {
	var builder strings.Builder
	builder.WriteString("CaseAddress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("case_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CaseID))
	builder.WriteString(", ")
	builder.WriteString("street=")
	builder.WriteString(_m.Street)
	builder.WriteString(", ")
	if v := _m.Locality; v != nil {
		builder.WriteString("locality=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Region; v != nil {
		builder.WriteString("region=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteByte(')')
	return builder.String()
}

// CaseAddresses is a parsable slice of CaseAddress.
type CaseAddresses []*CaseAddress
