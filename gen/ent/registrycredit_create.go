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
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/registrycredit"
)

// RegistryCreditCreate is the builder for creating a RegistryCredit entity.
type RegistryCreditCreate struct {
	config
	mutation *RegistryCreditMutation
	hooks    []Hook
}

// SetSubject sets the "subject" field.
func (_c *RegistryCreditCreate) SetSubject(v string) *RegistryCreditCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetKeyTail sets the "key_tail" field.
func (_c *RegistryCreditCreate) SetKeyTail(v string) *RegistryCreditCreate {
	_c.mutation.SetKeyTail(v)
	return _c
}

// SetConsumedAt sets the "consumed_at" field.
func (_c *RegistryCreditCreate) SetConsumedAt(v time.Time) *RegistryCreditCreate {
	_c.mutation.SetConsumedAt(v)
	return _c
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_c *RegistryCreditCreate) SetNillableConsumedAt(v *time.Time) *RegistryCreditCreate {
	if v != nil {
		_c.SetConsumedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RegistryCreditCreate) SetID(v uuid.UUID) *RegistryCreditCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RegistryCreditCreate) SetNillableID(v *uuid.UUID) *RegistryCreditCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RegistryCreditMutation object of the builder.
func (_c *RegistryCreditCreate) Mutation() *RegistryCreditMutation {
	return _c.mutation
}

// Save creates the RegistryCredit in the database.
func (_c *RegistryCreditCreate) Save(ctx context.Context) (*RegistryCredit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RegistryCreditCreate) SaveX(ctx context.Context) *RegistryCredit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RegistryCreditCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RegistryCreditCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RegistryCreditCreate) defaults() {
	if _, ok := _c.mutation.ConsumedAt(); !ok {
		v := registrycredit.DefaultConsumedAt()
		_c.mutation.SetConsumedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := registrycredit.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RegistryCreditCreate) check() error {
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "RegistryCredit.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := registrycredit.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "RegistryCredit.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.KeyTail(); !ok {
		return &ValidationError{Name: "key_tail", err: errors.New(`ent: missing required field "RegistryCredit.key_tail"`)}
	}
	if v, ok := _c.mutation.KeyTail(); ok {
		if err := registrycredit.KeyTailValidator(v); err != nil {
			return &ValidationError{Name: "key_tail", err: fmt.Errorf(`ent: validator failed for field "RegistryCredit.key_tail": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConsumedAt(); !ok {
		return &ValidationError{Name: "consumed_at", err: errors.New(`ent: missing required field "RegistryCredit.consumed_at"`)}
	}
	return nil
}

func (_c *RegistryCreditCreate) sqlSave(ctx context.Context) (*RegistryCredit, error) {
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

func (_c *RegistryCreditCreate) createSpec() (*RegistryCredit, *sqlgraph.CreateSpec) {
	var (
		_node = &RegistryCredit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(registrycredit.Table, sqlgraph.NewFieldSpec(registrycredit.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(registrycredit.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.KeyTail(); ok {
		_spec.SetField(registrycredit.FieldKeyTail, field.TypeString, value)
		_node.KeyTail = value
	}
	if value, ok := _c.mutation.ConsumedAt(); ok {
		_spec.SetField(registrycredit.FieldConsumedAt, field.TypeTime, value)
		_node.ConsumedAt = value
	}
	return _node, _spec
}

// RegistryCreditCreateBulk is the builder for creating many RegistryCredit entities in bulk.
type RegistryCreditCreateBulk struct {
	config
	err      error
	builders []*RegistryCreditCreate
}

// Save creates the RegistryCredit entities in the database.
func (_c *RegistryCreditCreateBulk) Save(ctx context.Context) ([]*RegistryCredit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RegistryCredit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RegistryCreditMutation)
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
func (_c *RegistryCreditCreateBulk) SaveX(ctx context.Context) []*RegistryCredit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RegistryCreditCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RegistryCreditCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
