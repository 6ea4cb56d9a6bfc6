// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseactivity"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseaddress"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseowner"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/folder"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/processeddocument"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/vehicle"
)

// InvestigationCaseCreate is the builder for creating a InvestigationCase entity.
type InvestigationCaseCreate struct {
	config
	mutation *InvestigationCaseMutation
	hooks    []Hook
}

// SetFolderID sets the "folder_id" field.
func (_c *InvestigationCaseCreate) SetFolderID(v uuid.UUID) *InvestigationCaseCreate {
	_c.mutation.SetFolderID(v)
	return _c
}

// SetCaseNumber sets the "case_number" field.
func (_c *InvestigationCaseCreate) SetCaseNumber(v string) *InvestigationCaseCreate {
	_c.mutation.SetCaseNumber(v)
	return _c
}

// SetLegalContext sets the "legal_context" field.
func (_c *InvestigationCaseCreate) SetLegalContext(v string) *InvestigationCaseCreate {
	_c.mutation.SetLegalContext(v)
	return _c
}

// SetNillableLegalContext sets the "legal_context" field if the given value is not nil.
func (_c *InvestigationCaseCreate) SetNillableLegalContext(v *string) *InvestigationCaseCreate {
	if v != nil {
		_c.SetLegalContext(*v)
	}
	return _c
}

// SetWarnings sets the "warnings" field.
func (_c *InvestigationCaseCreate) SetWarnings(v []string) *InvestigationCaseCreate {
	_c.mutation.SetWarnings(v)
	return _c
}

// SetEnrichmentRaw sets the "enrichment_raw" field.
func (_c *InvestigationCaseCreate) SetEnrichmentRaw(v json.RawMessage) *InvestigationCaseCreate {
	_c.mutation.SetEnrichmentRaw(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvestigationCaseCreate) SetCreatedAt(v time.Time) *InvestigationCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvestigationCaseCreate) SetNillableCreatedAt(v *time.Time) *InvestigationCaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InvestigationCaseCreate) SetUpdatedAt(v time.Time) *InvestigationCaseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InvestigationCaseCreate) SetNillableUpdatedAt(v *time.Time) *InvestigationCaseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvestigationCaseCreate) SetID(v uuid.UUID) *InvestigationCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvestigationCaseCreate) SetNillableID(v *uuid.UUID) *InvestigationCaseCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFolder sets the "folder" edge to the Folder entity.
func (_c *InvestigationCaseCreate) SetFolder(v *Folder) *InvestigationCaseCreate {
	return _c.SetFolderID(v.ID)
}

// SetVehicleID sets the "vehicle" edge to the Vehicle entity by ID.
func (_c *InvestigationCaseCreate) SetVehicleID(id uuid.UUID) *InvestigationCaseCreate {
	_c.mutation.SetVehicleID(id)
	return _c
}

// SetNillableVehicleID sets the "vehicle" edge to the Vehicle entity by ID if the given value is not nil.
func (_c *InvestigationCaseCreate) SetNillableVehicleID(id *uuid.UUID) *InvestigationCaseCreate {
	if id != nil {
		_c = _c.SetVehicleID(*id)
	}
	return _c
}

// SetVehicle sets the "vehicle" edge to the Vehicle entity.
func (_c *InvestigationCaseCreate) SetVehicle(v *Vehicle) *InvestigationCaseCreate {
	return _c.SetVehicleID(v.ID)
}

// AddOwnerIDs adds the "owners" edge to the CaseOwner entity by IDs.
func (_c *InvestigationCaseCreate) AddOwnerIDs(ids ...uuid.UUID) *InvestigationCaseCreate {
	_c.mutation.AddOwnerIDs(ids...)
	return _c
}

// AddOwners adds the "owners" edges to the CaseOwner entity.
func (_c *InvestigationCaseCreate) AddOwners(v ...*CaseOwner) *InvestigationCaseCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOwnerIDs(ids...)
}

// AddAddressIDs adds the "addresses" edge to the CaseAddress entity by IDs.
func (_c *InvestigationCaseCreate) AddAddressIDs(ids ...uuid.UUID) *InvestigationCaseCreate {
	_c.mutation.AddAddressIDs(ids...)
	return _c
}

// AddAddresses adds the "addresses" edges to the CaseAddress entity.
func (_c *InvestigationCaseCreate) AddAddresses(v ...*CaseAddress) *InvestigationCaseCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAddressIDs(ids...)
}

// AddActivityIDs adds the "activities" edge to the CaseActivity entity by IDs.
func (_c *InvestigationCaseCreate) AddActivityIDs(ids ...uuid.UUID) *InvestigationCaseCreate {
	_c.mutation.AddActivityIDs(ids...)
	return _c
}

// AddActivities adds the "activities" edges to the CaseActivity entity.
func (_c *InvestigationCaseCreate) AddActivities(v ...*CaseActivity) *InvestigationCaseCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddActivityIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the ProcessedDocument entity by IDs.
func (_c *InvestigationCaseCreate) AddDocumentIDs(ids ...uuid.UUID) *InvestigationCaseCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the ProcessedDocument entity.
func (_c *InvestigationCaseCreate) AddDocuments(v ...*ProcessedDocument) *InvestigationCaseCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// Mutation returns the InvestigationCaseMutation object of the builder.
func (_c *InvestigationCaseCreate) Mutation() *InvestigationCaseMutation {
	return _c.mutation
}

// Save creates the InvestigationCase in the database.
func (_c *InvestigationCaseCreate) Save(ctx context.Context) (*InvestigationCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvestigationCaseCreate) SaveX(ctx context.Context) *InvestigationCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvestigationCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvestigationCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvestigationCaseCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := investigationcase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := investigationcase.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := investigationcase.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvestigationCaseCreate) check() error {
	if _, ok := _c.mutation.FolderID(); !ok {
		return &ValidationError{Name: "folder_id", err: errors.New(`ent: missing required field "InvestigationCase.folder_id"`)}
	}
	if _, ok := _c.mutation.CaseNumber(); !ok {
		return &ValidationError{Name: "case_number", err: errors.New(`ent: missing required field "InvestigationCase.case_number"`)}
	}
	if v, ok := _c.mutation.CaseNumber(); ok {
		if err := investigationcase.CaseNumberValidator(v); err != nil {
			return &ValidationError{Name: "case_number", err: fmt.Errorf(`ent: validator failed for field "InvestigationCase.case_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InvestigationCase.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "InvestigationCase.updated_at"`)}
	}
	if len(_c.mutation.FolderIDs()) == 0 {
		return &ValidationError{Name: "folder", err: errors.New(`ent: missing required edge "InvestigationCase.folder"`)}
	}
	return nil
}

func (_c *InvestigationCaseCreate) sqlSave(ctx context.Context) (*InvestigationCase, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvestigationCaseCreate) createSpec() (*InvestigationCase, *sqlgraph.CreateSpec) {
	var (
		_node = &InvestigationCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(investigationcase.Table, sqlgraph.NewFieldSpec(investigationcase.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CaseNumber(); ok {
		_spec.SetField(investigationcase.FieldCaseNumber, field.TypeString, value)
		_node.CaseNumber = value
	}
	if value, ok := _c.mutation.LegalContext(); ok {
		_spec.SetField(investigationcase.FieldLegalContext, field.TypeString, value)
		_node.LegalContext = &value
	}
	if value, ok := _c.mutation.Warnings(); ok {
		_spec.SetField(investigationcase.FieldWarnings, field.TypeJSON, value)
		_node.Warnings = value
	}
	if value, ok := _c.mutation.EnrichmentRaw(); ok {
		_spec.SetField(investigationcase.FieldEnrichmentRaw, field.TypeJSON, value)
		_node.EnrichmentRaw = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(investigationcase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(investigationcase.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FolderIDs(); len(nodes) > 0 {
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
		_node.FolderID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VehicleIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OwnersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AddressesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ActivitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvestigationCaseCreateBulk is the builder for creating many InvestigationCase entities in bulk.
type InvestigationCaseCreateBulk struct {
	config
	err      error
	builders []*InvestigationCaseCreate
}

// Save creates the InvestigationCase entities in the database.
func (_c *InvestigationCaseCreateBulk) Save(ctx context.Context) ([]*InvestigationCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvestigationCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvestigationCaseMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvestigationCaseCreateBulk) SaveX(ctx context.Context) []*InvestigationCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvestigationCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvestigationCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
