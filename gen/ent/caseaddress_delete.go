// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseaddress"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
)

// CaseAddressDelete is the builder for deleting a CaseAddress entity.
type CaseAddressDelete struct {
	config
	hooks    []Hook
	mutation *CaseAddressMutation
}

// Where appends a list predicates to the CaseAddressDelete builder.
func (_d *CaseAddressDelete) Where(ps ...predicate.CaseAddress) *CaseAddressDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CaseAddressDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CaseAddressDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CaseAddressDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(caseaddress.Table, sqlgraph.NewFieldSpec(caseaddress.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CaseAddressDeleteOne is the builder for deleting a single CaseAddress entity.
type CaseAddressDeleteOne struct {
	_d *CaseAddressDelete
}

// Where appends a list predicates to the CaseAddressDelete builder.
func (_d *CaseAddressDeleteOne) Where(ps ...predicate.CaseAddress) *CaseAddressDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CaseAddressDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{caseaddress.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CaseAddressDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
