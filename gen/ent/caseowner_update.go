// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseowner"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
)

// CaseOwnerUpdate is the builder for updating CaseOwner entities.
type CaseOwnerUpdate struct {
	config
	hooks    []Hook
	mutation *CaseOwnerMutation
}

// Where appends a list predicates to the CaseOwnerUpdate builder.
func (_u *CaseOwnerUpdate) Where(ps ...predicate.CaseOwner) *CaseOwnerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *CaseOwnerUpdate) SetCaseID(v uuid.UUID) *CaseOwnerUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CaseOwnerUpdate) SetNillableCaseID(v *uuid.UUID) *CaseOwnerUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetNationalID sets the "national_id" field.
func (_u *CaseOwnerUpdate) SetNationalID(v string) *CaseOwnerUpdate {
	_u.mutation.SetNationalID(v)
	return _u
}

// SetNillableNationalID sets the "national_id" field if the given value is not nil.
func (_u *CaseOwnerUpdate) SetNillableNationalID(v *string) *CaseOwnerUpdate {
	if v != nil {
		_u.SetNationalID(*v)
	}
	return _u
}

// ClearNationalID clears the value of the "national_id" field.
func (_u *CaseOwnerUpdate) ClearNationalID() *CaseOwnerUpdate {
	_u.mutation.ClearNationalID()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *CaseOwnerUpdate) SetFullName(v string) *CaseOwnerUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *CaseOwnerUpdate) SetNillableFullName(v *string) *CaseOwnerUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// ClearFullName clears the value of the "full_name" field.
func (_u *CaseOwnerUpdate) ClearFullName() *CaseOwnerUpdate {
	_u.mutation.ClearFullName()
	return _u
}

// SetSource sets the "source" field.
func (_u *CaseOwnerUpdate) SetSource(v string) *CaseOwnerUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CaseOwnerUpdate) SetNillableSource(v *string) *CaseOwnerUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCase sets the "case" edge to the InvestigationCase entity.
func (_u *CaseOwnerUpdate) SetCase(v *InvestigationCase) *CaseOwnerUpdate {
	return _u.SetCaseID(v.ID)
}

// Mutation returns the CaseOwnerMutation object of the builder.
func (_u *CaseOwnerUpdate) Mutation() *CaseOwnerMutation {
	return _u.mutation
}

// ClearCase clears the "case" edge to the InvestigationCase entity.
func (_u *CaseOwnerUpdate) ClearCase() *CaseOwnerUpdate {
	_u.mutation.ClearCase()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaseOwnerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseOwnerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaseOwnerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseOwnerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseOwnerUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := caseowner.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CaseOwner.source": %w`, err)}
		}
	}
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaseOwner.case"`)
	}
	return nil
}

func (_u *CaseOwnerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caseowner.Table, caseowner.Columns, sqlgraph.NewFieldSpec(caseowner.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NationalID(); ok {
		_spec.SetField(caseowner.FieldNationalID, field.TypeString, value)
	}
	if _u.mutation.NationalIDCleared() {
		_spec.ClearField(caseowner.FieldNationalID, field.TypeString)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(caseowner.FieldFullName, field.TypeString, value)
	}
	if _u.mutation.FullNameCleared() {
		_spec.ClearField(caseowner.FieldFullName, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(caseowner.FieldSource, field.TypeString, value)
	}
	if _u.mutation.CaseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CaseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caseowner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaseOwnerUpdateOne is the builder for updating a single CaseOwner entity.
type CaseOwnerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaseOwnerMutation
}

// SetCaseID sets the "case_id" field.
func (_u *CaseOwnerUpdateOne) SetCaseID(v uuid.UUID) *CaseOwnerUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CaseOwnerUpdateOne) SetNillableCaseID(v *uuid.UUID) *CaseOwnerUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetNationalID sets the "national_id" field.
func (_u *CaseOwnerUpdateOne) SetNationalID(v string) *CaseOwnerUpdateOne {
	_u.mutation.SetNationalID(v)
	return _u
}

// SetNillableNationalID sets the "national_id" field if the given value is not nil.
func (_u *CaseOwnerUpdateOne) SetNillableNationalID(v *string) *CaseOwnerUpdateOne {
	if v != nil {
		_u.SetNationalID(*v)
	}
	return _u
}

// ClearNationalID clears the value of the "national_id" field.
func (_u *CaseOwnerUpdateOne) ClearNationalID() *CaseOwnerUpdateOne {
	_u.mutation.ClearNationalID()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *CaseOwnerUpdateOne) SetFullName(v string) *CaseOwnerUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *CaseOwnerUpdateOne) SetNillableFullName(v *string) *CaseOwnerUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// ClearFullName clears the value of the "full_name" field.
func (_u *CaseOwnerUpdateOne) ClearFullName() *CaseOwnerUpdateOne {
	_u.mutation.ClearFullName()
	return _u
}

// SetSource sets the "source" field.
func (_u *CaseOwnerUpdateOne) SetSource(v string) *CaseOwnerUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CaseOwnerUpdateOne) SetNillableSource(v *string) *CaseOwnerUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCase sets the "case" edge to the InvestigationCase entity.
func (_u *CaseOwnerUpdateOne) SetCase(v *InvestigationCase) *CaseOwnerUpdateOne {
	return _u.SetCaseID(v.ID)
}

// Mutation returns the CaseOwnerMutation object of the builder.
func (_u *CaseOwnerUpdateOne) Mutation() *CaseOwnerMutation {
	return _u.mutation
}

// ClearCase clears the "case" edge to the InvestigationCase entity.
func (_u *CaseOwnerUpdateOne) ClearCase() *CaseOwnerUpdateOne {
	_u.mutation.ClearCase()
	return _u
}

// Where appends a list predicates to the CaseOwnerUpdate builder.
func (_u *CaseOwnerUpdateOne) Where(ps ...predicate.CaseOwner) *CaseOwnerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaseOwnerUpdateOne) Select(field string, fields ...string) *CaseOwnerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaseOwner entity.
func (_u *CaseOwnerUpdateOne) Save(ctx context.Context) (*CaseOwner, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseOwnerUpdateOne) SaveX(ctx context.Context) *CaseOwner {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaseOwnerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseOwnerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseOwnerUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := caseowner.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CaseOwner.source": %w`, err)}
		}
	}
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaseOwner.case"`)
	}
	return nil
}

func (_u *CaseOwnerUpdateOne) sqlSave(ctx context.Context) (_node *CaseOwner, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caseowner.Table, caseowner.Columns, sqlgraph.NewFieldSpec(caseowner.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaseOwner.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, caseowner.FieldID)
		for _, f := range fields {
			if !caseowner.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != caseowner.FieldID {
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
	if value, ok := _u.mutation.NationalID(); ok {
		_spec.SetField(caseowner.FieldNationalID, field.TypeString, value)
	}
	if _u.mutation.NationalIDCleared() {
		_spec.ClearField(caseowner.FieldNationalID, field.TypeString)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(caseowner.FieldFullName, field.TypeString, value)
	}
	if _u.mutation.FullNameCleared() {
		_spec.ClearField(caseowner.FieldFullName, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(caseowner.FieldSource, field.TypeString, value)
	}
	if _u.mutation.CaseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CaseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CaseOwner{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caseowner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
