// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseowner"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
)

// CaseOwner is the model entity for the CaseOwner schema.
type CaseOwner struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID uuid.UUID `json:"case_id,omitempty"`
	// NationalID holds the value of the "national_id" field.
	NationalID *string `json:"national_id,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName *string `json:"full_name,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CaseOwnerQuery when eager-loading is set.
	Edges        CaseOwnerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CaseOwnerEdges holds the relations/edges for other nodes in the graph.
type CaseOwnerEdges struct {
	// Case holds the value of the case edge.
	Case *InvestigationCase `json:"case,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CaseOrErr returns the Case value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CaseOwnerEdges) CaseOrErr() (*InvestigationCase, error) {
	if e.Case != nil {
		return e.Case, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: investigationcase.Label}
	}
	return nil, &NotLoadedError{edge: "case"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CaseOwner) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case caseowner.FieldNationalID, caseowner.FieldFullName, caseowner.FieldSource:
			values[i] = new(sql.NullString)
		case caseowner.FieldID, caseowner.FieldCaseID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CaseOwner fields.
func (_m *CaseOwner) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case caseowner.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case caseowner.FieldCaseID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value != nil {
				_m.CaseID = *value
			}
		case caseowner.FieldNationalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field national_id", values[i])
			} else if value.Valid {
				_m.NationalID = new(string)
				*_m.NationalID = value.String
			}
		case caseowner.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = new(string)
				*_m.FullName = value.String
			}
		case caseowner.FieldSource:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CaseOwner.
// This includes values selected through modifiers, order, etc.
func (_m *CaseOwner) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCase queries the "case" edge of the CaseOwner entity.
func (_m *CaseOwner) QueryCase() *InvestigationCaseQuery {
	return NewCaseOwnerClient(_m.config).QueryCase(_m)
}

// Update returns a builder for updating this CaseOwner.
// Note that you need to call CaseOwner.Unwrap() before calling this method if this CaseOwner
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CaseOwner) Update() *CaseOwnerUpdateOne {
	return NewCaseOwnerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CaseOwner entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CaseOwner) Unwrap() *CaseOwner {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CaseOwner is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CaseOwner) String() string {
	var builder strings.Builder
	builder.WriteString("CaseOwner(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("case_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CaseID))
	builder.WriteString(", ")
	if v := _m.NationalID; v != nil {
		builder.WriteString("national_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FullName; v != nil {
		builder.WriteString("full_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteByte(')')
	return builder.String()
}

// CaseOwners is a parsable slice of CaseOwner.
type CaseOwners []*CaseOwner
