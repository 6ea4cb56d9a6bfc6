// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseaddress"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
)

// CaseAddressCreate is the builder for creating a CaseAddress entity.
type CaseAddressCreate struct {
	config
	mutation *CaseAddressMutation
	hooks    []Hook
}

// SetCaseID sets the "case_id" field.
func (_c *CaseAddressCreate) SetCaseID(v uuid.UUID) *CaseAddressCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetStreet sets the "street" field.
func (_c *CaseAddressCreate) SetStreet(v string) *CaseAddressCreate {
	_c.mutation.SetStreet(v)
	return _c
}

// SetLocality sets the "locality" field.
func (_c *CaseAddressCreate) SetLocality(v string) *CaseAddressCreate {
	_c.mutation.SetLocality(v)
	return _c
}

// SetNillableLocality sets the "locality" field if the given value is not nil.
func (_c *CaseAddressCreate) SetNillableLocality(v *string) *CaseAddressCreate {
	if v != nil {
		_c.SetLocality(*v)
	}
	return _c
}

// SetRegion sets the "region" field.
func (_c *CaseAddressCreate) SetRegion(v string) *CaseAddressCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_c *CaseAddressCreate) SetNillableRegion(v *string) *CaseAddressCreate {
	if v != nil {
		_c.SetRegion(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *CaseAddressCreate) SetSource(v string) *CaseAddressCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CaseAddressCreate) SetID(v uuid.UUID) *CaseAddressCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CaseAddressCreate) SetNillableID(v *uuid.UUID) *CaseAddressCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCase sets the "case" edge to the InvestigationCase entity.
func (_c *CaseAddressCreate) SetCase(v *InvestigationCase) *CaseAddressCreate {
	return _c.SetCaseID(v.ID)
}

// Mutation returns the CaseAddressMutation object of the builder.
func (_c *CaseAddressCreate) Mutation() *CaseAddressMutation {
	return _c.mutation
}

// Save creates the CaseAddress in the database.
func (_c *CaseAddressCreate) Save(ctx context.Context) (*CaseAddress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaseAddressCreate) SaveX(ctx context.Context) *CaseAddress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseAddressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseAddressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CaseAddressCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := caseaddress.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaseAddressCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "CaseAddress.case_id"`)}
	}
	if _, ok := _c.mutation.Street(); !ok {
		return &ValidationError{Name: "street", err: errors.New(`ent: missing required field "CaseAddress.street"`)}
	}
	if v, ok := _c.mutation.Street(); ok {
		if err := caseaddress.StreetValidator(v); err != nil {
			return &ValidationError{Name: "street", err: fmt.Errorf(`ent: validator failed for field "CaseAddress.street": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "CaseAddress.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := caseaddress.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CaseAddress.source": %w`, err)}
		}
	}
	if len(_c.mutation.CaseIDs()) == 0 {
		return &ValidationError{Name: "case", err: errors.New(`ent: missing required edge "CaseAddress.case"`)}
	}
	return nil
}

func (_c *CaseAddressCreate) sqlSave(ctx context.Context) (*CaseAddress, error) {
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

func (_c *CaseAddressCreate) createSpec() (*CaseAddress, *sqlgraph.CreateSpec) {
	var (
		_node = &CaseAddress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(caseaddress.Table, sqlgraph.NewFieldSpec(caseaddress.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Street(); ok {
		_spec.SetField(caseaddress.FieldStreet, field.TypeString, value)
		_node.Street = value
	}
	if value, ok := _c.mutation.Locality(); ok {
		_spec.SetField(caseaddress.FieldLocality, field.TypeString, value)
		_node.Locality = &value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(caseaddress.FieldRegion, field.TypeString, value)
		_node.Region = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(caseaddress.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if nodes := _c.mutation.CaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   caseaddress.CaseTable,
			Columns: []string{caseaddress.CaseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(investigationcase.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CaseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CaseAddressCreateBulk is the builder for creating many CaseAddress entities in bulk.
type CaseAddressCreateBulk struct {
	config
	err      error
	builders []*CaseAddressCreate
}

// Save creates the CaseAddress entities in the database.
func (_c *CaseAddressCreateBulk) Save(ctx context.Context) ([]*CaseAddress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaseAddress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaseAddressMutation)
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
func (_c *CaseAddressCreateBulk) SaveX(ctx context.Context) []*CaseAddress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseAddressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseAddressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
