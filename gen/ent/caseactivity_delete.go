// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseactivity"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
)

// CaseActivityDelete is the builder for deleting a CaseActivity entity.
type CaseActivityDelete struct {
	config
	hooks    []Hook
	mutation *CaseActivityMutation
}

// Where appends a list predicates to the CaseActivityDelete builder.
func (_d *CaseActivityDelete) Where(ps ...predicate.CaseActivity) *CaseActivityDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CaseActivityDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CaseActivityDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CaseActivityDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(caseactivity.Table, sqlgraph.NewFieldSpec(caseactivity.FieldID, field.TypeUUID))
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

// CaseActivityDeleteOne is the builder for deleting a single CaseActivity entity.
type CaseActivityDeleteOne struct {
	_d *CaseActivityDelete
}

// Where appends a list predicates to the CaseActivityDelete builder.
func (_d *CaseActivityDeleteOne) Where(ps ...predicate.CaseActivity) *CaseActivityDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CaseActivityDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{caseactivity.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CaseActivityDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
