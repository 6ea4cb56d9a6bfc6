// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseactivity"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
)

// CaseActivity is the model entity for the CaseActivity schema.
type CaseActivity struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID uuid.UUID `json:"case_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// Detail holds the value of the "detail" field.
	Detail *string `json:"detail,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CaseActivityQuery when eager-loading is set.
	Edges        CaseActivityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CaseActivityEdges holds the relations/edges for other nodes in the graph.
type CaseActivityEdges struct {
	// Case holds the value of the case edge.
	Case *InvestigationCase `json:"case,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CaseOrErr returns the Case value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CaseActivityEdges) CaseOrErr() (*InvestigationCase, error) {
	if e.Case != nil {
		return e.Case, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: investigationcase.Label}
	}
	return nil, &NotLoadedError{edge: "case"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CaseActivity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case caseactivity.FieldKind, caseactivity.FieldDetail:
			values[i] = new(sql.NullString)
		case caseactivity.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case caseactivity.FieldID, caseactivity.FieldCaseID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CaseActivity fields.
func (_m *CaseActivity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case caseactivity.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case caseactivity.FieldCaseID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value != nil {
				_m.CaseID = *value
			}
		case caseactivity.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case caseactivity.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = new(string)
				*_m.Detail = value.String
			}
		case caseactivity.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CaseActivity.
// This includes values selected through modifiers, order, etc.
func (_m *CaseActivity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCase queries the "case" edge of the CaseActivity entity.
func (_m *CaseActivity) QueryCase() *InvestigationCaseQuery {
	return NewCaseActivityClient(_m.config).QueryCase(_m)
}

// Update returns a builder for updating this CaseActivity.
// Note that you need to call CaseActivity.Unwrap() before calling this method if this CaseActivity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CaseActivity) Update() *CaseActivityUpdateOne {
	return NewCaseActivityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CaseActivity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CaseActivity) Unwrap() *CaseActivity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CaseActivity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CaseActivity) String() string {
	var builder strings.Builder
	builder.WriteString("CaseActivity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("case_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CaseID))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	if v := _m.Detail; v != nil {
		builder.WriteString("detail=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CaseActivities is a parsable slice of CaseActivity.
type CaseActivities []*CaseActivity
