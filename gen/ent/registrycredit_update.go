// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/registrycredit"
)

// RegistryCreditUpdate is the builder for updating RegistryCredit entities.
type RegistryCreditUpdate struct {
	config
	hooks    []Hook
	mutation *RegistryCreditMutation
}

// Where appends a list predicates to the RegistryCreditUpdate builder.
func (_u *RegistryCreditUpdate) Where(ps ...predicate.RegistryCredit) *RegistryCreditUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *RegistryCreditUpdate) SetSubject(v string) *RegistryCreditUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *RegistryCreditUpdate) SetNillableSubject(v *string) *RegistryCreditUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetKeyTail sets the "key_tail" field.
func (_u *RegistryCreditUpdate) SetKeyTail(v string) *RegistryCreditUpdate {
	_u.mutation.SetKeyTail(v)
	return _u
}

// SetNillableKeyTail sets the "key_tail" field if the given value is not nil.
func (_u *RegistryCreditUpdate) SetNillableKeyTail(v *string) *RegistryCreditUpdate {
	if v != nil {
		_u.SetKeyTail(*v)
	}
	return _u
}

// SetConsumedAt sets the "consumed_at" field.
func (_u *RegistryCreditUpdate) SetConsumedAt(v time.Time) *RegistryCreditUpdate {
	_u.mutation.SetConsumedAt(v)
	return _u
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_u *RegistryCreditUpdate) SetNillableConsumedAt(v *time.Time) *RegistryCreditUpdate {
	if v != nil {
		_u.SetConsumedAt(*v)
	}
	return _u
}

// Mutation returns the RegistryCreditMutation object of the builder.
func (_u *RegistryCreditUpdate) Mutation() *RegistryCreditMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RegistryCreditUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RegistryCreditUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RegistryCreditUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RegistryCreditUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RegistryCreditUpdate) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := registrycredit.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "RegistryCredit.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KeyTail(); ok {
		if err := registrycredit.KeyTailValidator(v); err != nil {
			return &ValidationError{Name: "key_tail", err: fmt.Errorf(`ent: validator failed for field "RegistryCredit.key_tail": %w`, err)}
		}
	}
	return nil
}

func (_u *RegistryCreditUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(registrycredit.Table, registrycredit.Columns, sqlgraph.NewFieldSpec(registrycredit.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(registrycredit.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyTail(); ok {
		_spec.SetField(registrycredit.FieldKeyTail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsumedAt(); ok {
		_spec.SetField(registrycredit.FieldConsumedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{registrycredit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RegistryCreditUpdateOne is the builder for updating a single RegistryCredit entity.
type RegistryCreditUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RegistryCreditMutation
}

// SetSubject sets the "subject" field.
func (_u *RegistryCreditUpdateOne) SetSubject(v string) *RegistryCreditUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *RegistryCreditUpdateOne) SetNillableSubject(v *string) *RegistryCreditUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetKeyTail sets the "key_tail" field.
func (_u *RegistryCreditUpdateOne) SetKeyTail(v string) *RegistryCreditUpdateOne {
	_u.mutation.SetKeyTail(v)
	return _u
}

// SetNillableKeyTail sets the "key_tail" field if the given value is not nil.
func (_u *RegistryCreditUpdateOne) SetNillableKeyTail(v *string) *RegistryCreditUpdateOne {
	if v != nil {
		_u.SetKeyTail(*v)
	}
	return _u
}

// SetConsumedAt sets the "consumed_at" field.
func (_u *RegistryCreditUpdateOne) SetConsumedAt(v time.Time) *RegistryCreditUpdateOne {
	_u.mutation.SetConsumedAt(v)
	return _u
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_u *RegistryCreditUpdateOne) SetNillableConsumedAt(v *time.Time) *RegistryCreditUpdateOne {
	if v != nil {
		_u.SetConsumedAt(*v)
	}
	return _u
}

// Mutation returns the RegistryCreditMutation object of the builder.
func (_u *RegistryCreditUpdateOne) Mutation() *RegistryCreditMutation {
	return _u.mutation
}

// Where appends a list predicates to the RegistryCreditUpdate builder.
func (_u *RegistryCreditUpdateOne) Where(ps ...predicate.RegistryCredit) *RegistryCreditUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RegistryCreditUpdateOne) Select(field string, fields ...string) *RegistryCreditUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RegistryCredit entity.
func (_u *RegistryCreditUpdateOne) Save(ctx context.Context) (*RegistryCredit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RegistryCreditUpdateOne) SaveX(ctx context.Context) *RegistryCredit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RegistryCreditUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RegistryCreditUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RegistryCreditUpdateOne) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := registrycredit.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "RegistryCredit.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KeyTail(); ok {
		if err := registrycredit.KeyTailValidator(v); err != nil {
			return &ValidationError{Name: "key_tail", err: fmt.Errorf(`ent: validator failed for field "RegistryCredit.key_tail": %w`, err)}
		}
	}
	return nil
}

func (_u *RegistryCreditUpdateOne) sqlSave(ctx context.Context) (_node *RegistryCredit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(registrycredit.Table, registrycredit.Columns, sqlgraph.NewFieldSpec(registrycredit.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RegistryCredit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, registrycredit.FieldID)
		for _, f := range fields {
			if !registrycredit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != registrycredit.FieldID {
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
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(registrycredit.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyTail(); ok {
		_spec.SetField(registrycredit.FieldKeyTail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsumedAt(); ok {
		_spec.SetField(registrycredit.FieldConsumedAt, field.TypeTime, value)
	}
	_node = &RegistryCredit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{registrycredit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
