// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/folder"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/vehicle"
)

// InvestigationCase is the model entity for the InvestigationCase schema.
type InvestigationCase struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FolderID holds the value of the "folder_id" field.
	FolderID uuid.UUID `json:"folder_id,omitempty"`
	// CaseNumber holds the value of the "case_number" field.
	CaseNumber string `json:"case_number,omitempty"`
	// LegalContext holds the value of the "legal_context" field.
	LegalContext *string `json:"legal_context,omitempty"`
	// Warnings holds the value of the "warnings" field.
	Warnings []string `json:"warnings,omitempty"`
	// EnrichmentRaw holds the value of the "enrichment_raw" field.
	EnrichmentRaw json.RawMessage `json:"enrichment_raw,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvestigationCaseQuery when eager-loading is set.
	Edges        InvestigationCaseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvestigationCaseEdges holds the relations/edges for other nodes in the graph.
type InvestigationCaseEdges struct {
	// Folder holds the value of the folder edge.
	Folder *Folder `json:"folder,omitempty"`
	// Vehicle holds the value of the vehicle edge.
	Vehicle *Vehicle `json:"vehicle,omitempty"`
	// Owners holds the value of the owners edge.
	Owners []*CaseOwner `json:"owners,omitempty"`
	// Addresses holds the value of the addresses edge.
	Addresses []*CaseAddress `json:"addresses,omitempty"`
	// Activities holds the value of the activities edge.
	Activities []*CaseActivity `json:"activities,omitempty"`
	// Documents holds the value of the documents edge.
	Documents []*ProcessedDocument `json:"documents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// FolderOrErr returns the Folder value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvestigationCaseEdges) FolderOrErr() (*Folder, error) {
	if e.Folder != nil {
		return e.Folder, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: folder.Label}
	}
	return nil, &NotLoadedError{edge: "folder"}
}

// VehicleOrErr returns the Vehicle value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvestigationCaseEdges) VehicleOrErr() (*Vehicle, error) {
	if e.Vehicle != nil {
		return e.Vehicle, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: vehicle.Label}
	}
	return nil, &NotLoadedError{edge: "vehicle"}
}

// OwnersOrErr returns the Owners value or an error if the edge
// was not loaded in eager-loading.
func (e InvestigationCaseEdges) OwnersOrErr() ([]*CaseOwner, error) {
	if e.loadedTypes[2] {
		return e.Owners, nil
	}
	return nil, &NotLoadedError{edge: "owners"}
}

// AddressesOrErr returns the Addresses value or an error if the edge
// was not loaded in eager-loading.
func (e InvestigationCaseEdges) AddressesOrErr() ([]*CaseAddress, error) {
	if e.loadedTypes[3] {
		return e.Addresses, nil
	}
	return nil, &NotLoadedError{edge: "addresses"}
}

// ActivitiesOrErr returns the Activities value or an error if the edge
// was not loaded in eager-loading.
func (e InvestigationCaseEdges) ActivitiesOrErr() ([]*CaseActivity, error) {
	if e.loadedTypes[4] {
		return e.Activities, nil
	}
	return nil, &NotLoadedError{edge: "activities"}
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e InvestigationCaseEdges) DocumentsOrErr() ([]*ProcessedDocument, error) {
	if e.loadedTypes[5] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InvestigationCase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case investigationcase.FieldWarnings, investigationcase.FieldEnrichmentRaw:
			values[i] = new([]byte)
		case investigationcase.FieldCaseNumber, investigationcase.FieldLegalContext:
			values[i] = new(sql.NullString)
		case investigationcase.FieldCreatedAt, investigationcase.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case investigationcase.FieldID, investigationcase.FieldFolderID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InvestigationCase fields.
func (_m *InvestigationCase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case investigationcase.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case investigationcase.FieldFolderID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field folder_id", values[i])
			} else if value != nil {
				_m.FolderID = *value
			}
		case investigationcase.FieldCaseNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_number", values[i])
			} else if value.Valid {
				_m.CaseNumber = value.String
			}
		case investigationcase.FieldLegalContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field legal_context", values[i])
			} else if value.Valid {
				_m.LegalContext = new(string)
				*_m.LegalContext = value.String
			}
		case investigationcase.FieldWarnings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field warnings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Warnings); err != nil {
					return fmt.Errorf("unmarshal field warnings: %w", err)
				}
			}
		case investigationcase.FieldEnrichmentRaw:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field enrichment_raw", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EnrichmentRaw); err != nil {
					return fmt.Errorf("unmarshal field enrichment_raw: %w", err)
				}
			}
		case investigationcase.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case investigationcase.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InvestigationCase.
// This includes values selected through modifiers, order, etc.
func (_m *InvestigationCase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFolder queries the "folder" edge of the InvestigationCase entity.
func (_m *InvestigationCase) QueryFolder() *FolderQuery {
	return NewInvestigationCaseClient(_m.config).QueryFolder(_m)
}

// QueryVehicle queries the "vehicle" edge of the InvestigationCase entity.
func (_m *InvestigationCase) QueryVehicle() *VehicleQuery {
	return NewInvestigationCaseClient(_m.config).QueryVehicle(_m)
}

// QueryOwners queries the "owners" edge of the InvestigationCase entity.
func (_m *InvestigationCase) QueryOwners() *CaseOwnerQuery {
	return NewInvestigationCaseClient(_m.config).QueryOwners(_m)
}

// QueryAddresses queries the "addresses" edge of the InvestigationCase entity.
func (_m *InvestigationCase) QueryAddresses() *CaseAddressQuery {
	return NewInvestigationCaseClient(_m.config).QueryAddresses(_m)
}

// QueryActivities queries the "activities" edge of the InvestigationCase entity.
func (_m *InvestigationCase) QueryActivities() *CaseActivityQuery {
	return NewInvestigationCaseClient(_m.config).QueryActivities(_m)
}

// QueryDocuments queries the "documents" edge of the InvestigationCase entity.
func (_m *InvestigationCase) QueryDocuments() *ProcessedDocumentQuery {
	return NewInvestigationCaseClient(_m.config).QueryDocuments(_m)
}

// Update returns a builder for updating this InvestigationCase.
// Note that you need to call InvestigationCase.Unwrap() before calling this method if this InvestigationCase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InvestigationCase) Update() *InvestigationCaseUpdateOne {
	return NewInvestigationCaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InvestigationCase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InvestigationCase) Unwrap() *InvestigationCase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InvestigationCase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InvestigationCase) String() string {
	var builder strings.Builder
	builder.WriteString("InvestigationCase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("folder_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FolderID))
	builder.WriteString(", ")
	builder.WriteString("case_number=")
	builder.WriteString(_m.CaseNumber)
	builder.WriteString(", ")
	if v := _m.LegalContext; v != nil {
		builder.WriteString("legal_context=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("warnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Warnings))
	builder.WriteString(", ")
	builder.WriteString("enrichment_raw=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnrichmentRaw))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InvestigationCases is a parsable slice of InvestigationCase.
type InvestigationCases []*InvestigationCase
