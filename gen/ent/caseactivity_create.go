// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseactivity"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
)

// CaseActivityCreate is the builder for creating a CaseActivity entity.
type CaseActivityCreate struct {
	config
	mutation *CaseActivityMutation
	hooks    []Hook
}

// SetCaseID sets the "case_id" field.
func (_c *CaseActivityCreate) SetCaseID(v uuid.UUID) *CaseActivityCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *CaseActivityCreate) SetKind(v string) *CaseActivityCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *CaseActivityCreate) SetDetail(v string) *CaseActivityCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *CaseActivityCreate) SetNillableDetail(v *string) *CaseActivityCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CaseActivityCreate) SetCreatedAt(v time.Time) *CaseActivityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CaseActivityCreate) SetNillableCreatedAt(v *time.Time) *CaseActivityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CaseActivityCreate) SetID(v uuid.UUID) *CaseActivityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CaseActivityCreate) SetNillableID(v *uuid.UUID) *CaseActivityCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCase sets the "case" edge to the InvestigationCase entity.
func (_c *CaseActivityCreate) SetCase(v *InvestigationCase) *CaseActivityCreate {
	return _c.SetCaseID(v.ID)
}

// Mutation returns the CaseActivityMutation object of the builder.
func (_c *CaseActivityCreate) Mutation() *CaseActivityMutation {
	return _c.mutation
}

// Save creates the CaseActivity in the database.
func (_c *CaseActivityCreate) Save(ctx context.Context) (*CaseActivity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaseActivityCreate) SaveX(ctx context.Context) *CaseActivity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseActivityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseActivityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CaseActivityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := caseactivity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := caseactivity.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaseActivityCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "CaseActivity.case_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "CaseActivity.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := caseactivity.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CaseActivity.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CaseActivity.created_at"`)}
	}
	if len(_c.mutation.CaseIDs()) == 0 {
		return &ValidationError{Name: "case", err: errors.New(`ent: missing required edge "CaseActivity.case"`)}
	}
	return nil
}

func (_c *CaseActivityCreate) sqlSave(ctx context.Context) (*CaseActivity, error) {
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

func (_c *CaseActivityCreate) createSpec() (*CaseActivity, *sqlgraph.CreateSpec) {
	var (
		_node = &CaseActivity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(caseactivity.Table, sqlgraph.NewFieldSpec(caseactivity.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(caseactivity.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(caseactivity.FieldDetail, field.TypeString, value)
		_node.Detail = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(caseactivity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   caseactivity.CaseTable,
			Columns: []string{caseactivity.CaseColumn},
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

// CaseActivityCreateBulk is the builder for creating many CaseActivity entities in bulk.
type CaseActivityCreateBulk struct {
	config
	err      error
	builders []*CaseActivityCreate
}

// Save creates the CaseActivity entities in the database.
func (_c *CaseActivityCreateBulk) Save(ctx context.Context) ([]*CaseActivity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaseActivity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaseActivityMutation)
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
func (_c *CaseActivityCreateBulk) SaveX(ctx context.Context) []*CaseActivity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseActivityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseActivityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
