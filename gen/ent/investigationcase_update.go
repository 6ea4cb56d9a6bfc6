// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseactivity"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseaddress"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseowner"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/folder"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/processeddocument"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/vehicle"
)

// InvestigationCaseUpdate is the builder for updating InvestigationCase entities.
type InvestigationCaseUpdate struct {
	config
	hooks    []Hook
	mutation *InvestigationCaseMutation
}

// Where appends a list predicates to the InvestigationCaseUpdate builder.
func (_u *InvestigationCaseUpdate) Where(ps ...predicate.InvestigationCase) *InvestigationCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFolderID sets the "folder_id" field.
func (_u *InvestigationCaseUpdate) SetFolderID(v uuid.UUID) *InvestigationCaseUpdate {
	_u.mutation.SetFolderID(v)
	return _u
}

// SetNillableFolderID sets the "folder_id" field if the given value is not nil.
func (_u *InvestigationCaseUpdate) SetNillableFolderID(v *uuid.UUID) *InvestigationCaseUpdate {
	if v != nil {
		_u.SetFolderID(*v)
	}
	return _u
}

// SetCaseNumber sets the "case_number" field.
func (_u *InvestigationCaseUpdate) SetCaseNumber(v string) *InvestigationCaseUpdate {
	_u.mutation.SetCaseNumber(v)
	return _u
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_u *InvestigationCaseUpdate) SetNillableCaseNumber(v *string) *InvestigationCaseUpdate {
	if v != nil {
		_u.SetCaseNumber(*v)
	}
	return _u
}

// SetLegalContext sets the "legal_context" field.
func (_u *InvestigationCaseUpdate) SetLegalContext(v string) *InvestigationCaseUpdate {
	_u.mutation.SetLegalContext(v)
	return _u
}

// SetNillableLegalContext sets the "legal_context" field if the given value is not nil.
func (_u *InvestigationCaseUpdate) SetNillableLegalContext(v *string) *InvestigationCaseUpdate {
	if v != nil {
		_u.SetLegalContext(*v)
	}
	return _u
}

// ClearLegalContext clears the value of the "legal_context" field.
func (_u *InvestigationCaseUpdate) ClearLegalContext() *InvestigationCaseUpdate {
	_u.mutation.ClearLegalContext()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *InvestigationCaseUpdate) SetWarnings(v []string) *InvestigationCaseUpdate {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *InvestigationCaseUpdate) AppendWarnings(v []string) *InvestigationCaseUpdate {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *InvestigationCaseUpdate) ClearWarnings() *InvestigationCaseUpdate {
	_u.mutation.ClearWarnings()
	return _u
}

// SetEnrichmentRaw sets the "enrichment_raw" field.
func (_u *InvestigationCaseUpdate) SetEnrichmentRaw(v json.RawMessage) *InvestigationCaseUpdate {
	_u.mutation.SetEnrichmentRaw(v)
	return _u
}

// AppendEnrichmentRaw appends value to the "enrichment_raw" field.
func (_u *InvestigationCaseUpdate) AppendEnrichmentRaw(v json.RawMessage) *InvestigationCaseUpdate {
	_u.mutation.AppendEnrichmentRaw(v)
	return _u
}

// ClearEnrichmentRaw clears the value of the "enrichment_raw" field.
func (_u *InvestigationCaseUpdate) ClearEnrichmentRaw() *InvestigationCaseUpdate {
	_u.mutation.ClearEnrichmentRaw()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvestigationCaseUpdate) SetCreatedAt(v time.Time) *InvestigationCaseUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvestigationCaseUpdate) SetNillableCreatedAt(v *time.Time) *InvestigationCaseUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvestigationCaseUpdate) SetUpdatedAt(v time.Time) *InvestigationCaseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFolder sets the "folder" edge to the Folder entity.
func (_u *InvestigationCaseUpdate) SetFolder(v *Folder) *InvestigationCaseUpdate {
	return _u.SetFolderID(v.ID)
}

// SetVehicleID sets the "vehicle" edge to the Vehicle entity by ID.
func (_u *InvestigationCaseUpdate) SetVehicleID(id uuid.UUID) *InvestigationCaseUpdate {
	_u.mutation.SetVehicleID(id)
	return _u
}

// SetNillableVehicleID sets the "vehicle" edge to the Vehicle entity by ID if the given value is not nil.
func (_u *InvestigationCaseUpdate) SetNillableVehicleID(id *uuid.UUID) *InvestigationCaseUpdate {
	if id != nil {
		_u = _u.SetVehicleID(*id)
	}
	return _u
}

// SetVehicle sets the "vehicle" edge to the Vehicle entity.
func (_u *InvestigationCaseUpdate) SetVehicle(v *Vehicle) *InvestigationCaseUpdate {
	return _u.SetVehicleID(v.ID)
}

// AddOwnerIDs adds the "owners" edge to the CaseOwner entity by IDs.
func (_u *InvestigationCaseUpdate) AddOwnerIDs(ids ...uuid.UUID) *InvestigationCaseUpdate {
	_u.mutation.AddOwnerIDs(ids...)
	return _u
}

// AddOwners adds the "owners" edges to the CaseOwner entity.
func (_u *InvestigationCaseUpdate) AddOwners(v ...*CaseOwner) *InvestigationCaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOwnerIDs(ids...)
}

// AddAddressIDs adds the "addresses" edge to the CaseAddress entity by IDs.
func (_u *InvestigationCaseUpdate) AddAddressIDs(ids ...uuid.UUID) *InvestigationCaseUpdate {
	_u.mutation.AddAddressIDs(ids...)
	return _u
}

// AddAddresses adds the "addresses" edges to the CaseAddress entity.
func (_u *InvestigationCaseUpdate) AddAddresses(v ...*CaseAddress) *InvestigationCaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAddressIDs(ids...)
}

// AddActivityIDs adds the "activities" edge to the CaseActivity entity by IDs.
func (_u *InvestigationCaseUpdate) AddActivityIDs(ids ...uuid.UUID) *InvestigationCaseUpdate {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the CaseActivity entity.
func (_u *InvestigationCaseUpdate) AddActivities(v ...*CaseActivity) *InvestigationCaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the ProcessedDocument entity by IDs.
func (_u *InvestigationCaseUpdate) AddDocumentIDs(ids ...uuid.UUID) *InvestigationCaseUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the ProcessedDocument entity.
func (_u *InvestigationCaseUpdate) AddDocuments(v ...*ProcessedDocument) *InvestigationCaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the InvestigationCaseMutation object of the builder.
func (_u *InvestigationCaseUpdate) Mutation() *InvestigationCaseMutation {
	return _u.mutation
}

// ClearFolder clears the "folder" edge to the Folder entity.
func (_u *InvestigationCaseUpdate) ClearFolder() *InvestigationCaseUpdate {
	_u.mutation.ClearFolder()
	return _u
}

// ClearVehicle clears the "vehicle" edge to the Vehicle entity.
func (_u *InvestigationCaseUpdate) ClearVehicle() *InvestigationCaseUpdate {
	_u.mutation.ClearVehicle()
	return _u
}

// ClearOwners clears all "owners" edges to the CaseOwner entity.
func (_u *InvestigationCaseUpdate) ClearOwners() *InvestigationCaseUpdate {
	_u.mutation.ClearOwners()
	return _u
}

// RemoveOwnerIDs removes the "owners" edge to CaseOwner entities by IDs.
func (_u *InvestigationCaseUpdate) RemoveOwnerIDs(ids ...uuid.UUID) *InvestigationCaseUpdate {
	_u.mutation.RemoveOwnerIDs(ids...)
	return _u
}

// RemoveOwners removes "owners" edges to CaseOwner entities.
func (_u *InvestigationCaseUpdate) RemoveOwners(v ...*CaseOwner) *InvestigationCaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOwnerIDs(ids...)
}

// ClearAddresses clears all "addresses" edges to the CaseAddress entity.
func (_u *InvestigationCaseUpdate) ClearAddresses() *InvestigationCaseUpdate {
	_u.mutation.ClearAddresses()
	return _u
}

// RemoveAddressIDs removes the "addresses" edge to CaseAddress entities by IDs.
func (_u *InvestigationCaseUpdate) RemoveAddressIDs(ids ...uuid.UUID) *InvestigationCaseUpdate {
	_u.mutation.RemoveAddressIDs(ids...)
	return _u
}

// RemoveAddresses removes "addresses" edges to CaseAddress entities.
func (_u *InvestigationCaseUpdate) RemoveAddresses(v ...*CaseAddress) *InvestigationCaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAddressIDs(ids...)
}

// ClearActivities clears all "activities" edges to the CaseActivity entity.
func (_u *InvestigationCaseUpdate) ClearActivities() *InvestigationCaseUpdate {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to CaseActivity entities by IDs.
func (_u *InvestigationCaseUpdate) RemoveActivityIDs(ids ...uuid.UUID) *InvestigationCaseUpdate {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to CaseActivity entities.
func (_u *InvestigationCaseUpdate) RemoveActivities(v ...*CaseActivity) *InvestigationCaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the ProcessedDocument entity.
func (_u *InvestigationCaseUpdate) ClearDocuments() *InvestigationCaseUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to ProcessedDocument entities by IDs.
func (_u *InvestigationCaseUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *InvestigationCaseUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to ProcessedDocument entities.
func (_u *InvestigationCaseUpdate) RemoveDocuments(v ...*ProcessedDocument) *InvestigationCaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvestigationCaseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvestigationCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvestigationCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvestigationCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvestigationCaseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := investigationcase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvestigationCaseUpdate) check() error {
	if v, ok := _u.mutation.CaseNumber(); ok {
		if err := investigationcase.CaseNumberValidator(v); err != nil {
			return &ValidationError{Name: "case_number", err: fmt.Errorf(`ent: validator failed for field "InvestigationCase.case_number": %w`, err)}
		}
	}
	if _u.mutation.FolderCleared() && len(_u.mutation.FolderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvestigationCase.folder"`)
	}
	return nil
}

func (_u *InvestigationCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(investigationcase.Table, investigationcase.Columns, sqlgraph.NewFieldSpec(investigationcase.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseNumber(); ok {
		_spec.SetField(investigationcase.FieldCaseNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.LegalContext(); ok {
		_spec.SetField(investigationcase.FieldLegalContext, field.TypeString, value)
	}
	if _u.mutation.LegalContextCleared() {
		_spec.ClearField(investigationcase.FieldLegalContext, field.TypeString)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(investigationcase.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, investigationcase.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(investigationcase.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.EnrichmentRaw(); ok {
		_spec.SetField(investigationcase.FieldEnrichmentRaw, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEnrichmentRaw(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, investigationcase.FieldEnrichmentRaw, value)
		})
	}
	if _u.mutation.EnrichmentRawCleared() {
		_spec.ClearField(investigationcase.FieldEnrichmentRaw, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(investigationcase.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(investigationcase.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FolderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   investigationcase.FolderTable,
			Columns: []string{investigationcase.FolderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(folder.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FolderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   investigationcase.FolderTable,
			Columns: []string{investigationcase.FolderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(folder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VehicleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   investigationcase.VehicleTable,
			Columns: []string{investigationcase.VehicleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VehicleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   investigationcase.VehicleTable,
			Columns: []string{investigationcase.VehicleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OwnersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.OwnersTable,
			Columns: []string{investigationcase.OwnersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseowner.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOwnersIDs(); len(nodes) > 0 && !_u.mutation.OwnersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.OwnersTable,
			Columns: []string{investigationcase.OwnersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseowner.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.OwnersTable,
			Columns: []string{investigationcase.OwnersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseowner.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AddressesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.AddressesTable,
			Columns: []string{investigationcase.AddressesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseaddress.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAddressesIDs(); len(nodes) > 0 && !_u.mutation.AddressesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.AddressesTable,
			Columns: []string{investigationcase.AddressesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseaddress.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AddressesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.AddressesTable,
			Columns: []string{investigationcase.AddressesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseaddress.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.ActivitiesTable,
			Columns: []string{investigationcase.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseactivity.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.ActivitiesTable,
			Columns: []string{investigationcase.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseactivity.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.ActivitiesTable,
			Columns: []string{investigationcase.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseactivity.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.DocumentsTable,
			Columns: []string{investigationcase.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processeddocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.DocumentsTable,
			Columns: []string{investigationcase.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processeddocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.DocumentsTable,
			Columns: []string{investigationcase.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processeddocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{investigationcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvestigationCaseUpdateOne is the builder for updating a single InvestigationCase entity.
type InvestigationCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvestigationCaseMutation
}

// SetFolderID sets the "folder_id" field.
func (_u *InvestigationCaseUpdateOne) SetFolderID(v uuid.UUID) *InvestigationCaseUpdateOne {
	_u.mutation.SetFolderID(v)
	return _u
}

// SetNillableFolderID sets the "folder_id" field if the given value is not nil.
func (_u *InvestigationCaseUpdateOne) SetNillableFolderID(v *uuid.UUID) *InvestigationCaseUpdateOne {
	if v != nil {
		_u.SetFolderID(*v)
	}
	return _u
}

// SetCaseNumber sets the "case_number" field.
func (_u *InvestigationCaseUpdateOne) SetCaseNumber(v string) *InvestigationCaseUpdateOne {
	_u.mutation.SetCaseNumber(v)
	return _u
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_u *InvestigationCaseUpdateOne) SetNillableCaseNumber(v *string) *InvestigationCaseUpdateOne {
	if v != nil {
		_u.SetCaseNumber(*v)
	}
	return _u
}

// SetLegalContext sets the "legal_context" field.
func (_u *InvestigationCaseUpdateOne) SetLegalContext(v string) *InvestigationCaseUpdateOne {
	_u.mutation.SetLegalContext(v)
	return _u
}

// SetNillableLegalContext sets the "legal_context" field if the given value is not nil.
func (_u *InvestigationCaseUpdateOne) SetNillableLegalContext(v *string) *InvestigationCaseUpdateOne {
	if v != nil {
		_u.SetLegalContext(*v)
	}
	return _u
}

// ClearLegalContext clears the value of the "legal_context" field.
func (_u *InvestigationCaseUpdateOne) ClearLegalContext() *InvestigationCaseUpdateOne {
	_u.mutation.ClearLegalContext()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *InvestigationCaseUpdateOne) SetWarnings(v []string) *InvestigationCaseUpdateOne {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *InvestigationCaseUpdateOne) AppendWarnings(v []string) *InvestigationCaseUpdateOne {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *InvestigationCaseUpdateOne) ClearWarnings() *InvestigationCaseUpdateOne {
	_u.mutation.ClearWarnings()
	return _u
}

// SetEnrichmentRaw sets the "enrichment_raw" field.
func (_u *InvestigationCaseUpdateOne) SetEnrichmentRaw(v json.RawMessage) *InvestigationCaseUpdateOne {
	_u.mutation.SetEnrichmentRaw(v)
	return _u
}

// AppendEnrichmentRaw appends value to the "enrichment_raw" field.
func (_u *InvestigationCaseUpdateOne) AppendEnrichmentRaw(v json.RawMessage) *InvestigationCaseUpdateOne {
	_u.mutation.AppendEnrichmentRaw(v)
	return _u
}

// ClearEnrichmentRaw clears the value of the "enrichment_raw" field.
func (_u *InvestigationCaseUpdateOne) ClearEnrichmentRaw() *InvestigationCaseUpdateOne {
	_u.mutation.ClearEnrichmentRaw()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvestigationCaseUpdateOne) SetCreatedAt(v time.Time) *InvestigationCaseUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvestigationCaseUpdateOne) SetNillableCreatedAt(v *time.Time) *InvestigationCaseUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvestigationCaseUpdateOne) SetUpdatedAt(v time.Time) *InvestigationCaseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFolder sets the "folder" edge to the Folder entity.
func (_u *InvestigationCaseUpdateOne) SetFolder(v *Folder) *InvestigationCaseUpdateOne {
	return _u.SetFolderID(v.ID)
}

// SetVehicleID sets the "vehicle" edge to the Vehicle entity by ID.
func (_u *InvestigationCaseUpdateOne) SetVehicleID(id uuid.UUID) *InvestigationCaseUpdateOne {
	_u.mutation.SetVehicleID(id)
	return _u
}

// SetNillableVehicleID sets the "vehicle" edge to the Vehicle entity by ID if the given value is not nil.
func (_u *InvestigationCaseUpdateOne) SetNillableVehicleID(id *uuid.UUID) *InvestigationCaseUpdateOne {
	if id != nil {
		_u = _u.SetVehicleID(*id)
	}
	return _u
}

// SetVehicle sets the "vehicle" edge to the Vehicle entity.
func (_u *InvestigationCaseUpdateOne) SetVehicle(v *Vehicle) *InvestigationCaseUpdateOne {
	return _u.SetVehicleID(v.ID)
}

// AddOwnerIDs adds the "owners" edge to the CaseOwner entity by IDs.
func (_u *InvestigationCaseUpdateOne) AddOwnerIDs(ids ...uuid.UUID) *InvestigationCaseUpdateOne {
	_u.mutation.AddOwnerIDs(ids...)
	return _u
}

// AddOwners adds the "owners" edges to the CaseOwner entity.
func (_u *InvestigationCaseUpdateOne) AddOwners(v ...*CaseOwner) *InvestigationCaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOwnerIDs(ids...)
}

// AddAddressIDs adds the "addresses" edge to the CaseAddress entity by IDs.
func (_u *InvestigationCaseUpdateOne) AddAddressIDs(ids ...uuid.UUID) *InvestigationCaseUpdateOne {
	_u.mutation.AddAddressIDs(ids...)
	return _u
}

// AddAddresses adds the "addresses" edges to the CaseAddress entity.
func (_u *InvestigationCaseUpdateOne) AddAddresses(v ...*CaseAddress) *InvestigationCaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAddressIDs(ids...)
}

// AddActivityIDs adds the "activities" edge to the CaseActivity entity by IDs.
func (_u *InvestigationCaseUpdateOne) AddActivityIDs(ids ...uuid.UUID) *InvestigationCaseUpdateOne {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the CaseActivity entity.
func (_u *InvestigationCaseUpdateOne) AddActivities(v ...*CaseActivity) *InvestigationCaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the ProcessedDocument entity by IDs.
func (_u *InvestigationCaseUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *InvestigationCaseUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the ProcessedDocument entity.
func (_u *InvestigationCaseUpdateOne) AddDocuments(v ...*ProcessedDocument) *InvestigationCaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the InvestigationCaseMutation object of the builder.
func (_u *InvestigationCaseUpdateOne) Mutation() *InvestigationCaseMutation {
	return _u.mutation
}

// ClearFolder clears the "folder" edge to the Folder entity.
func (_u *InvestigationCaseUpdateOne) ClearFolder() *InvestigationCaseUpdateOne {
	_u.mutation.ClearFolder()
	return _u
}

// ClearVehicle clears the "vehicle" edge to the Vehicle entity.
func (_u *InvestigationCaseUpdateOne) ClearVehicle() *InvestigationCaseUpdateOne {
	_u.mutation.ClearVehicle()
	return _u
}

// ClearOwners clears all "owners" edges to the CaseOwner entity.
func (_u *InvestigationCaseUpdateOne) ClearOwners() *InvestigationCaseUpdateOne {
	_u.mutation.ClearOwners()
	return _u
}

// RemoveOwnerIDs removes the "owners" edge to CaseOwner entities by IDs.
func (_u *InvestigationCaseUpdateOne) RemoveOwnerIDs(ids ...uuid.UUID) *InvestigationCaseUpdateOne {
	_u.mutation.RemoveOwnerIDs(ids...)
	return _u
}

// RemoveOwners removes "owners" edges to CaseOwner entities.
func (_u *InvestigationCaseUpdateOne) RemoveOwners(v ...*CaseOwner) *InvestigationCaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOwnerIDs(ids...)
}

// ClearAddresses clears all "addresses" edges to the CaseAddress entity.
func (_u *InvestigationCaseUpdateOne) ClearAddresses() *InvestigationCaseUpdateOne {
	_u.mutation.ClearAddresses()
	return _u
}

// RemoveAddressIDs removes the "addresses" edge to CaseAddress entities by IDs.
func (_u *InvestigationCaseUpdateOne) RemoveAddressIDs(ids ...uuid.UUID) *InvestigationCaseUpdateOne {
	_u.mutation.RemoveAddressIDs(ids...)
	return _u
}

// RemoveAddresses removes "addresses" edges to CaseAddress entities.
func (_u *InvestigationCaseUpdateOne) RemoveAddresses(v ...*CaseAddress) *InvestigationCaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAddressIDs(ids...)
}

// ClearActivities clears all "activities" edges to the CaseActivity entity.
func (_u *InvestigationCaseUpdateOne) ClearActivities() *InvestigationCaseUpdateOne {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to CaseActivity entities by IDs.
func (_u *InvestigationCaseUpdateOne) RemoveActivityIDs(ids ...uuid.UUID) *InvestigationCaseUpdateOne {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to CaseActivity entities.
func (_u *InvestigationCaseUpdateOne) RemoveActivities(v ...*CaseActivity) *InvestigationCaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the ProcessedDocument entity.
func (_u *InvestigationCaseUpdateOne) ClearDocuments() *InvestigationCaseUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to ProcessedDocument entities by IDs.
func (_u *InvestigationCaseUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *InvestigationCaseUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to ProcessedDocument entities.
func (_u *InvestigationCaseUpdateOne) RemoveDocuments(v ...*ProcessedDocument) *InvestigationCaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Where appends a list predicates to the InvestigationCaseUpdate builder.
func (_u *InvestigationCaseUpdateOne) Where(ps ...predicate.InvestigationCase) *InvestigationCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvestigationCaseUpdateOne) Select(field string, fields ...string) *InvestigationCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvestigationCase entity.
func (_u *InvestigationCaseUpdateOne) Save(ctx context.Context) (*InvestigationCase, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvestigationCaseUpdateOne) SaveX(ctx context.Context) *InvestigationCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvestigationCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvestigationCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvestigationCaseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := investigationcase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvestigationCaseUpdateOne) check() error {
	if v, ok := _u.mutation.CaseNumber(); ok {
		if err := investigationcase.CaseNumberValidator(v); err != nil {
			return &ValidationError{Name: "case_number", err: fmt.Errorf(`ent: validator failed for field "InvestigationCase.case_number": %w`, err)}
		}
	}
	if _u.mutation.FolderCleared() && len(_u.mutation.FolderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvestigationCase.folder"`)
	}
	return nil
}

func (_u *InvestigationCaseUpdateOne) sqlSave(ctx context.Context) (_node *InvestigationCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(investigationcase.Table, investigationcase.Columns, sqlgraph.NewFieldSpec(investigationcase.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvestigationCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, investigationcase.FieldID)
		for _, f := range fields {
			if !investigationcase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != investigationcase.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseNumber(); ok {
		_spec.SetField(investigationcase.FieldCaseNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.LegalContext(); ok {
		_spec.SetField(investigationcase.FieldLegalContext, field.TypeString, value)
	}
	if _u.mutation.LegalContextCleared() {
		_spec.ClearField(investigationcase.FieldLegalContext, field.TypeString)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(investigationcase.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, investigationcase.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(investigationcase.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.EnrichmentRaw(); ok {
		_spec.SetField(investigationcase.FieldEnrichmentRaw, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEnrichmentRaw(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, investigationcase.FieldEnrichmentRaw, value)
		})
	}
	if _u.mutation.EnrichmentRawCleared() {
		_spec.ClearField(investigationcase.FieldEnrichmentRaw, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(investigationcase.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(investigationcase.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FolderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   investigationcase.FolderTable,
			Columns: []string{investigationcase.FolderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(folder.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FolderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   investigationcase.FolderTable,
			Columns: []string{investigationcase.FolderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(folder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VehicleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   investigationcase.VehicleTable,
			Columns: []string{investigationcase.VehicleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VehicleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   investigationcase.VehicleTable,
			Columns: []string{investigationcase.VehicleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OwnersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.OwnersTable,
			Columns: []string{investigationcase.OwnersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseowner.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOwnersIDs(); len(nodes) > 0 && !_u.mutation.OwnersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.OwnersTable,
			Columns: []string{investigationcase.OwnersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseowner.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.OwnersTable,
			Columns: []string{investigationcase.OwnersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseowner.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AddressesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.AddressesTable,
			Columns: []string{investigationcase.AddressesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseaddress.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAddressesIDs(); len(nodes) > 0 && !_u.mutation.AddressesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.AddressesTable,
			Columns: []string{investigationcase.AddressesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseaddress.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AddressesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.AddressesTable,
			Columns: []string{investigationcase.AddressesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseaddress.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.ActivitiesTable,
			Columns: []string{investigationcase.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseactivity.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.ActivitiesTable,
			Columns: []string{investigationcase.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseactivity.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.ActivitiesTable,
			Columns: []string{investigationcase.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseactivity.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.DocumentsTable,
			Columns: []string{investigationcase.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processeddocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.DocumentsTable,
			Columns: []string{investigationcase.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processeddocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigationcase.DocumentsTable,
			Columns: []string{investigationcase.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processeddocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InvestigationCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{investigationcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
