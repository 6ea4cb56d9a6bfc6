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
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseactivity"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
)

// CaseActivityUpdate is the builder for updating CaseActivity entities.
type CaseActivityUpdate struct {
	config
	hooks    []Hook
	mutation *CaseActivityMutation
}

// Where appends a list predicates to the CaseActivityUpdate builder.
func (_u *CaseActivityUpdate) Where(ps ...predicate.CaseActivity) *CaseActivityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *CaseActivityUpdate) SetCaseID(v uuid.UUID) *CaseActivityUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CaseActivityUpdate) SetNillableCaseID(v *uuid.UUID) *CaseActivityUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *CaseActivityUpdate) SetKind(v string) *CaseActivityUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CaseActivityUpdate) SetNillableKind(v *string) *CaseActivityUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *CaseActivityUpdate) SetDetail(v string) *CaseActivityUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *CaseActivityUpdate) SetNillableDetail(v *string) *CaseActivityUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *CaseActivityUpdate) ClearDetail() *CaseActivityUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CaseActivityUpdate) SetCreatedAt(v time.Time) *CaseActivityUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CaseActivityUpdate) SetNillableCreatedAt(v *time.Time) *CaseActivityUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCase sets the "case" edge to the InvestigationCase entity.
func (_u *CaseActivityUpdate) SetCase(v *InvestigationCase) *CaseActivityUpdate {
	return _u.SetCaseID(v.ID)
}

// Mutation returns the CaseActivityMutation object of the builder.
func (_u *CaseActivityUpdate) Mutation() *CaseActivityMutation {
	return _u.mutation
}

// ClearCase clears the "case" edge to the InvestigationCase entity.
func (_u *CaseActivityUpdate) ClearCase() *CaseActivityUpdate {
	_u.mutation.ClearCase()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaseActivityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseActivityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaseActivityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseActivityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseActivityUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := caseactivity.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CaseActivity.kind": %w`, err)}
		}
	}
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaseActivity.case"`)
	}
	return nil
}

func (_u *CaseActivityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caseactivity.Table, caseactivity.Columns, sqlgraph.NewFieldSpec(caseactivity.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(caseactivity.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(caseactivity.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(caseactivity.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(caseactivity.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CaseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CaseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caseactivity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaseActivityUpdateOne is the builder for updating a single CaseActivity entity.
type CaseActivityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaseActivityMutation
}

// SetCaseID sets the "case_id" field.
func (_u *CaseActivityUpdateOne) SetCaseID(v uuid.UUID) *CaseActivityUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CaseActivityUpdateOne) SetNillableCaseID(v *uuid.UUID) *CaseActivityUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *CaseActivityUpdateOne) SetKind(v string) *CaseActivityUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CaseActivityUpdateOne) SetNillableKind(v *string) *CaseActivityUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *CaseActivityUpdateOne) SetDetail(v string) *CaseActivityUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *CaseActivityUpdateOne) SetNillableDetail(v *string) *CaseActivityUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *CaseActivityUpdateOne) ClearDetail() *CaseActivityUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CaseActivityUpdateOne) SetCreatedAt(v time.Time) *CaseActivityUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CaseActivityUpdateOne) SetNillableCreatedAt(v *time.Time) *CaseActivityUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCase sets the "case" edge to the InvestigationCase entity.
func (_u *CaseActivityUpdateOne) SetCase(v *InvestigationCase) *CaseActivityUpdateOne {
	return _u.SetCaseID(v.ID)
}

// Mutation returns the CaseActivityMutation object of the builder.
func (_u *CaseActivityUpdateOne) Mutation() *CaseActivityMutation {
	return _u.mutation
}

// ClearCase clears the "case" edge to the InvestigationCase entity.
func (_u *CaseActivityUpdateOne) ClearCase() *CaseActivityUpdateOne {
	_u.mutation.ClearCase()
	return _u
}

// Where appends a list predicates to the CaseActivityUpdate builder.
func (_u *CaseActivityUpdateOne) Where(ps ...predicate.CaseActivity) *CaseActivityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaseActivityUpdateOne) Select(field string, fields ...string) *CaseActivityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaseActivity entity.
func (_u *CaseActivityUpdateOne) Save(ctx context.Context) (*CaseActivity, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseActivityUpdateOne) SaveX(ctx context.Context) *CaseActivity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaseActivityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseActivityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseActivityUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := caseactivity.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CaseActivity.kind": %w`, err)}
		}
	}
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaseActivity.case"`)
	}
	return nil
}

func (_u *CaseActivityUpdateOne) sqlSave(ctx context.Context) (_node *CaseActivity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caseactivity.Table, caseactivity.Columns, sqlgraph.NewFieldSpec(caseactivity.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaseActivity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, caseactivity.FieldID)
		for _, f := range fields {
			if !caseactivity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != caseactivity.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(caseactivity.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(caseactivity.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(caseactivity.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(caseactivity.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CaseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CaseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CaseActivity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caseactivity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
