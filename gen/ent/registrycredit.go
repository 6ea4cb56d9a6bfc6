// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/registrycredit"
)

// RegistryCredit is the model entity for the RegistryCredit schema.
type RegistryCredit struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// KeyTail holds the value of the "key_tail" field.
	KeyTail string `json:"key_tail,omitempty"`
	// ConsumedAt holds the value of the "consumed_at" field.
	ConsumedAt   time.Time `json:"consumed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RegistryCredit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case registrycredit.FieldSubject, registrycredit.FieldKeyTail:
			values[i] = new(sql.NullString)
		case registrycredit.FieldConsumedAt:
			values[i] = new(sql.NullTime)
		case registrycredit.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RegistryCredit fields.
func (_m *RegistryCredit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case registrycredit.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case registrycredit.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case registrycredit.FieldKeyTail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key_tail", values[i])
			} else if value.Valid {
				_m.KeyTail = value.String
			}
		case registrycredit.FieldConsumedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field consumed_at", values[i])
			} else if value.Valid {
				_m.ConsumedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RegistryCredit.
// This includes values selected through modifiers, order, etc.
func (_m *RegistryCredit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RegistryCredit.
// Note that you need to call RegistryCredit.Unwrap() before calling this method if this RegistryCredit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RegistryCredit) Update() *RegistryCreditUpdateOne {
	return NewRegistryCreditClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RegistryCredit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RegistryCredit) Unwrap() *RegistryCredit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RegistryCredit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RegistryCredit) String() string {
	var builder strings.Builder
	builder.WriteString("RegistryCredit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("key_tail=")
	builder.WriteString(_m.KeyTail)
	builder.WriteString(", ")
	builder.WriteString("consumed_at=")
	builder.WriteString(_m.ConsumedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RegistryCredits is a parsable slice of RegistryCredit.
type RegistryCredits []*RegistryCredit
