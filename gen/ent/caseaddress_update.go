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
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseaddress"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
)

// CaseAddressUpdate is the builder for updating CaseAddress entities.
type CaseAddressUpdate struct {
	config
	hooks    []Hook
	mutation *CaseAddressMutation
}

// Where appends a list predicates to the CaseAddressUpdate builder.
func (_u *CaseAddressUpdate) Where(ps ...predicate.CaseAddress) *CaseAddressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *CaseAddressUpdate) SetCaseID(v uuid.UUID) *CaseAddressUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CaseAddressUpdate) SetNillableCaseID(v *uuid.UUID) *CaseAddressUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetStreet sets the "street" field.
func (_u *CaseAddressUpdate) SetStreet(v string) *CaseAddressUpdate {
	_u.mutation.SetStreet(v)
	return _u
}

// SetNillableStreet sets the "street" field if the given value is not nil.
func (_u *CaseAddressUpdate) SetNillableStreet(v *string) *CaseAddressUpdate {
	if v != nil {
		_u.SetStreet(*v)
	}
	return _u
}

// SetLocality sets the "locality" field.
func (_u *CaseAddressUpdate) SetLocality(v string) *CaseAddressUpdate {
	_u.mutation.SetLocality(v)
	return _u
}

// SetNillableLocality sets the "locality" field if the given value is not nil.
func (_u *CaseAddressUpdate) SetNillableLocality(v *string) *CaseAddressUpdate {
	if v != nil {
		_u.SetLocality(*v)
	}
	return _u
}

// ClearLocality clears the value of the "locality" field.
func (_u *CaseAddressUpdate) ClearLocality() *CaseAddressUpdate {
	_u.mutation.ClearLocality()
	return _u
}

// SetRegion sets the "region" field.
func (_u *CaseAddressUpdate) SetRegion(v string) *CaseAddressUpdate {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *CaseAddressUpdate) SetNillableRegion(v *string) *CaseAddressUpdate {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// ClearRegion clears the value of the "region" field.
func (_u *CaseAddressUpdate) ClearRegion() *CaseAddressUpdate {
	_u.mutation.ClearRegion()
	return _u
}

// SetSource sets the "source" field.
func (_u *CaseAddressUpdate) SetSource(v string) *CaseAddressUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CaseAddressUpdate) SetNillableSource(v *string) *CaseAddressUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCase sets the "case" edge to the InvestigationCase entity.
func (_u *CaseAddressUpdate) SetCase(v *InvestigationCase) *CaseAddressUpdate {
	return _u.SetCaseID(v.ID)
}

// Mutation returns the CaseAddressMutation object of the builder.
func (_u *CaseAddressUpdate) Mutation() *CaseAddressMutation {
	return _u.mutation
}

// ClearCase clears the "case" edge to the InvestigationCase entity.
func (_u *CaseAddressUpdate) ClearCase() *CaseAddressUpdate {
	_u.mutation.ClearCase()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaseAddressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseAddressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaseAddressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseAddressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseAddressUpdate) check() error {
	if v, ok := _u.mutation.Street(); ok {
		if err := caseaddress.StreetValidator(v); err != nil {
			return &ValidationError{Name: "street", err: fmt.Errorf(`ent: validator failed for field "CaseAddress.street": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := caseaddress.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CaseAddress.source": %w`, err)}
		}
	}
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaseAddress.case"`)
	}
	return nil
}

func (_u *CaseAddressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caseaddress.Table, caseaddress.Columns, sqlgraph.NewFieldSpec(caseaddress.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Street(); ok {
		_spec.SetField(caseaddress.FieldStreet, field.TypeString, value)
	}
	if value, ok := _u.mutation.Locality(); ok {
		_spec.SetField(caseaddress.FieldLocality, field.TypeString, value)
	}
	if _u.mutation.LocalityCleared() {
		_spec.ClearField(caseaddress.FieldLocality, field.TypeString)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(caseaddress.FieldRegion, field.TypeString, value)
	}
	if _u.mutation.RegionCleared() {
		_spec.ClearField(caseaddress.FieldRegion, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(caseaddress.FieldSource, field.TypeString, value)
	}
	if _u.mutation.CaseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CaseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caseaddress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaseAddressUpdateOne is the builder for updating a single CaseAddress entity.
type CaseAddressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaseAddressMutation
}

// SetCaseID sets the "case_id" field.
func (_u *CaseAddressUpdateOne) SetCaseID(v uuid.UUID) *CaseAddressUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CaseAddressUpdateOne) SetNillableCaseID(v *uuid.UUID) *CaseAddressUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetStreet sets the "street" field.
func (_u *CaseAddressUpdateOne) SetStreet(v string) *CaseAddressUpdateOne {
	_u.mutation.SetStreet(v)
	return _u
}

// SetNillableStreet sets the "street" field if the given value is not nil.
func (_u *CaseAddressUpdateOne) SetNillableStreet(v *string) *CaseAddressUpdateOne {
	if v != nil {
		_u.SetStreet(*v)
	}
	return _u
}

// SetLocality sets the "locality" field.
func (_u *CaseAddressUpdateOne) SetLocality(v string) *CaseAddressUpdateOne {
	_u.mutation.SetLocality(v)
	return _u
}

// SetNillableLocality sets the "locality" field if the given value is not nil.
func (_u *CaseAddressUpdateOne) SetNillableLocality(v *string) *CaseAddressUpdateOne {
	if v != nil {
		_u.SetLocality(*v)
	}
	return _u
}

// ClearLocality clears the value of the "locality" field.
func (_u *CaseAddressUpdateOne) ClearLocality() *CaseAddressUpdateOne {
	_u.mutation.ClearLocality()
	return _u
}

// SetRegion sets the "region" field.
func (_u *CaseAddressUpdateOne) SetRegion(v string) *CaseAddressUpdateOne {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *CaseAddressUpdateOne) SetNillableRegion(v *string) *CaseAddressUpdateOne {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// ClearRegion clears the value of the "region" field.
func (_u *CaseAddressUpdateOne) ClearRegion() *CaseAddressUpdateOne {
	_u.mutation.ClearRegion()
	return _u
}

// SetSource sets the "source" field.
func (_u *CaseAddressUpdateOne) SetSource(v string) *CaseAddressUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CaseAddressUpdateOne) SetNillableSource(v *string) *CaseAddressUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCase sets the "case" edge to the InvestigationCase entity.
func (_u *CaseAddressUpdateOne) SetCase(v *InvestigationCase) *CaseAddressUpdateOne {
	return _u.SetCaseID(v.ID)
}

// Mutation returns the CaseAddressMutation object of the builder.
func (_u *CaseAddressUpdateOne) Mutation() *CaseAddressMutation {
	return _u.mutation
}

// ClearCase clears the "case" edge to the InvestigationCase entity.
func (_u *CaseAddressUpdateOne) ClearCase() *CaseAddressUpdateOne {
	_u.mutation.ClearCase()
	return _u
}

// Where appends a list predicates to the CaseAddressUpdate builder.
func (_u *CaseAddressUpdateOne) Where(ps ...predicate.CaseAddress) *CaseAddressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaseAddressUpdateOne) Select(field string, fields ...string) *CaseAddressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaseAddress entity.
func (_u *CaseAddressUpdateOne) Save(ctx context.Context) (*CaseAddress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseAddressUpdateOne) SaveX(ctx context.Context) *CaseAddress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaseAddressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseAddressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseAddressUpdateOne) check() error {
	if v, ok := _u.mutation.Street(); ok {
		if err := caseaddress.StreetValidator(v); err != nil {
			return &ValidationError{Name: "street", err: fmt.Errorf(`ent: validator failed for field "CaseAddress.street": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := caseaddress.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CaseAddress.source": %w`, err)}
		}
	}
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaseAddress.case"`)
	}
	return nil
}

func (_u *CaseAddressUpdateOne) sqlSave(ctx context.Context) (_node *CaseAddress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caseaddress.Table, caseaddress.Columns, sqlgraph.NewFieldSpec(caseaddress.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaseAddress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, caseaddress.FieldID)
		for _, f := range fields {
			if !caseaddress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != caseaddress.FieldID {
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
	if value, ok := _u.mutation.Street(); ok {
		_spec.SetField(caseaddress.FieldStreet, field.TypeString, value)
	}
	if value, ok := _u.mutation.Locality(); ok {
		_spec.SetField(caseaddress.FieldLocality, field.TypeString, value)
	}
	if _u.mutation.LocalityCleared() {
		_spec.ClearField(caseaddress.FieldLocality, field.TypeString)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(caseaddress.FieldRegion, field.TypeString, value)
	}
	if _u.mutation.RegionCleared() {
		_spec.ClearField(caseaddress.FieldRegion, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(caseaddress.FieldSource, field.TypeString, value)
	}
	if _u.mutation.CaseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CaseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CaseAddress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caseaddress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
