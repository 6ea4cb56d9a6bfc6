// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseowner"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
)

// CaseOwnerCreate is the builder for creating a CaseOwner entity.
type CaseOwnerCreate struct {
	config
	mutation *CaseOwnerMutation
	hooks    []Hook
}

// SetCaseID sets the "case_id" field.
func (_c *CaseOwnerCreate) SetCaseID(v uuid.UUID) *CaseOwnerCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetNationalID sets the "national_id" field.
func (_c *CaseOwnerCreate) SetNationalID(v string) *CaseOwnerCreate {
	_c.mutation.SetNationalID(v)
	return _c
}

// SetNillableNationalID sets the "national_id" field if the given value is not nil.
func (_c *CaseOwnerCreate) SetNillableNationalID(v *string) *CaseOwnerCreate {
	if v != nil {
		_c.SetNationalID(*v)
	}
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *CaseOwnerCreate) SetFullName(v string) *CaseOwnerCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_c *CaseOwnerCreate) SetNillableFullName(v *string) *CaseOwnerCreate {
	if v != nil {
		_c.SetFullName(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *CaseOwnerCreate) SetSource(v string) *CaseOwnerCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CaseOwnerCreate) SetID(v uuid.UUID) *CaseOwnerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CaseOwnerCreate) SetNillableID(v *uuid.UUID) *CaseOwnerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCase sets the "case" edge to the InvestigationCase entity.
func (_c *CaseOwnerCreate) SetCase(v *InvestigationCase) *CaseOwnerCreate {
	return _c.SetCaseID(v.ID)
}

// Mutation returns the CaseOwnerMutation object of the builder.
func (_c *CaseOwnerCreate) Mutation() *CaseOwnerMutation {
	return _c.mutation
}

// Save creates the CaseOwner in the database.
func (_c *CaseOwnerCreate) Save(ctx context.Context) (*CaseOwner, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaseOwnerCreate) SaveX(ctx context.Context) *CaseOwner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseOwnerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseOwnerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CaseOwnerCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := caseowner.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaseOwnerCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "CaseOwner.case_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "CaseOwner.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := caseowner.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CaseOwner.source": %w`, err)}
		}
	}
	if len(_c.mutation.CaseIDs()) == 0 {
		return &ValidationError{Name: "case", err: errors.New(`ent: missing required edge "CaseOwner.case"`)}
	}
	return nil
}

func (_c *CaseOwnerCreate) sqlSave(ctx context.Context) (*CaseOwner, error) {
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

func (_c *CaseOwnerCreate) createSpec() (*CaseOwner, *sqlgraph.CreateSpec) {
	var (
		_node = &CaseOwner{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(caseowner.Table, sqlgraph.NewFieldSpec(caseowner.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.NationalID(); ok {
		_spec.SetField(caseowner.FieldNationalID, field.TypeString, value)
		_node.NationalID = &value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(caseowner.FieldFullName, field.TypeString, value)
		_node.FullName = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(caseowner.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if nodes := _c.mutation.CaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   caseowner.CaseTable,
			Columns: []string{caseowner.CaseColumn},
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

// CaseOwnerCreateBulk is the builder for creating many CaseOwner entities in bulk.
type CaseOwnerCreateBulk struct {
	config
	err      error
	builders []*CaseOwnerCreate
}

// Save creates the CaseOwner entities in the database.
func (_c *CaseOwnerCreateBulk) Save(ctx context.Context) ([]*CaseOwner, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaseOwner, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaseOwnerMutation)
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
func (_c *CaseOwnerCreateBulk) SaveX(ctx context.Context) []*CaseOwner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseOwnerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseOwnerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
