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
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/vehicle"
)

// VehicleUpdate is the builder for updating Vehicle entities.
type VehicleUpdate struct {
	config
	hooks    []Hook
	mutation *VehicleMutation
}

// Where appends a list predicates to the VehicleUpdate builder.
func (_u *VehicleUpdate) Where(ps ...predicate.Vehicle) *VehicleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *VehicleUpdate) SetCaseID(v uuid.UUID) *VehicleUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableCaseID(v *uuid.UUID) *VehicleUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetPlate sets the "plate" field.
func (_u *VehicleUpdate) SetPlate(v string) *VehicleUpdate {
	_u.mutation.SetPlate(v)
	return _u
}

// SetNillablePlate sets the "plate" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillablePlate(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetPlate(*v)
	}
	return _u
}

// SetMake sets the "make" field.
func (_u *VehicleUpdate) SetMake(v string) *VehicleUpdate {
	_u.mutation.SetMake(v)
	return _u
}

// SetNillableMake sets the "make" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableMake(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetMake(*v)
	}
	return _u
}

// ClearMake clears the value of the "make" field.
func (_u *VehicleUpdate) ClearMake() *VehicleUpdate {
	_u.mutation.ClearMake()
	return _u
}

// SetModel sets the "model" field.
func (_u *VehicleUpdate) SetModel(v string) *VehicleUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableModel(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *VehicleUpdate) ClearModel() *VehicleUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetYear sets the "year" field.
func (_u *VehicleUpdate) SetYear(v int) *VehicleUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableYear(v *int) *VehicleUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *VehicleUpdate) AddYear(v int) *VehicleUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *VehicleUpdate) ClearYear() *VehicleUpdate {
	_u.mutation.ClearYear()
	return _u
}

// SetColor sets the "color" field.
func (_u *VehicleUpdate) SetColor(v string) *VehicleUpdate {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableColor(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *VehicleUpdate) ClearColor() *VehicleUpdate {
	_u.mutation.ClearColor()
	return _u
}

// SetVin sets the "vin" field.
func (_u *VehicleUpdate) SetVin(v string) *VehicleUpdate {
	_u.mutation.SetVin(v)
	return _u
}

// SetNillableVin sets the "vin" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableVin(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetVin(*v)
	}
	return _u
}

// ClearVin clears the value of the "vin" field.
func (_u *VehicleUpdate) ClearVin() *VehicleUpdate {
	_u.mutation.ClearVin()
	return _u
}

// SetEngineNumber sets the "engine_number" field.
func (_u *VehicleUpdate) SetEngineNumber(v string) *VehicleUpdate {
	_u.mutation.SetEngineNumber(v)
	return _u
}

// SetNillableEngineNumber sets the "engine_number" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableEngineNumber(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetEngineNumber(*v)
	}
	return _u
}

// ClearEngineNumber clears the value of the "engine_number" field.
func (_u *VehicleUpdate) ClearEngineNumber() *VehicleUpdate {
	_u.mutation.ClearEngineNumber()
	return _u
}

// SetCase sets the "case" edge to the InvestigationCase entity.
func (_u *VehicleUpdate) SetCase(v *InvestigationCase) *VehicleUpdate {
	return _u.SetCaseID(v.ID)
}

// Mutation returns the VehicleMutation object of the builder.
func (_u *VehicleUpdate) Mutation() *VehicleMutation {
	return _u.mutation
}

// ClearCase clears the "case" edge to the InvestigationCase entity.
func (_u *VehicleUpdate) ClearCase() *VehicleUpdate {
	_u.mutation.ClearCase()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VehicleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VehicleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VehicleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VehicleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VehicleUpdate) check() error {
	if v, ok := _u.mutation.Plate(); ok {
		if err := vehicle.PlateValidator(v); err != nil {
			return &ValidationError{Name: "plate", err: fmt.Errorf(`ent: validator failed for field "Vehicle.plate": %w`, err)}
		}
	}
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Vehicle.case"`)
	}
	return nil
}

func (_u *VehicleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vehicle.Table, vehicle.Columns, sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Plate(); ok {
		_spec.SetField(vehicle.FieldPlate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Make(); ok {
		_spec.SetField(vehicle.FieldMake, field.TypeString, value)
	}
	if _u.mutation.MakeCleared() {
		_spec.ClearField(vehicle.FieldMake, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(vehicle.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(vehicle.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(vehicle.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(vehicle.FieldYear, field.TypeInt, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(vehicle.FieldYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(vehicle.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(vehicle.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.Vin(); ok {
		_spec.SetField(vehicle.FieldVin, field.TypeString, value)
	}
	if _u.mutation.VinCleared() {
		_spec.ClearField(vehicle.FieldVin, field.TypeString)
	}
	if value, ok := _u.mutation.EngineNumber(); ok {
		_spec.SetField(vehicle.FieldEngineNumber, field.TypeString, value)
	}
	if _u.mutation.EngineNumberCleared() {
		_spec.ClearField(vehicle.FieldEngineNumber, field.TypeString)
	}
	if _u.mutation.CaseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   vehicle.CaseTable,
			Columns: []string{vehicle.CaseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(investigationcase.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   vehicle.CaseTable,
			Columns: []string{vehicle.CaseColumn},
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
			err = &NotFoundError{vehicle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VehicleUpdateOne is the builder for updating a single Vehicle entity.
type VehicleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VehicleMutation
}

// SetCaseID sets the "case_id" field.
func (_u *VehicleUpdateOne) SetCaseID(v uuid.UUID) *VehicleUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableCaseID(v *uuid.UUID) *VehicleUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetPlate sets the "plate" field.
func (_u *VehicleUpdateOne) SetPlate(v string) *VehicleUpdateOne {
	_u.mutation.SetPlate(v)
	return _u
}

// SetNillablePlate sets the "plate" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillablePlate(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetPlate(*v)
	}
	return _u
}

// SetMake sets the "make" field.
func (_u *VehicleUpdateOne) SetMake(v string) *VehicleUpdateOne {
	_u.mutation.SetMake(v)
	return _u
}

// SetNillableMake sets the "make" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableMake(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetMake(*v)
	}
	return _u
}

// ClearMake clears the value of the "make" field.
func (_u *VehicleUpdateOne) ClearMake() *VehicleUpdateOne {
	_u.mutation.ClearMake()
	return _u
}

// SetModel sets the "model" field.
func (_u *VehicleUpdateOne) SetModel(v string) *VehicleUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableModel(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *VehicleUpdateOne) ClearModel() *VehicleUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetYear sets the "year" field.
func (_u *VehicleUpdateOne) SetYear(v int) *VehicleUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableYear(v *int) *VehicleUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *VehicleUpdateOne) AddYear(v int) *VehicleUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *VehicleUpdateOne) ClearYear() *VehicleUpdateOne {
	_u.mutation.ClearYear()
	return _u
}

// SetColor sets the "color" field.
func (_u *VehicleUpdateOne) SetColor(v string) *VehicleUpdateOne {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableColor(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *VehicleUpdateOne) ClearColor() *VehicleUpdateOne {
	_u.mutation.ClearColor()
	return _u
}

// SetVin sets the "vin" field.
func (_u *VehicleUpdateOne) SetVin(v string) *VehicleUpdateOne {
	_u.mutation.SetVin(v)
	return _u
}

// SetNillableVin sets the "vin" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableVin(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetVin(*v)
	}
	return _u
}

// ClearVin clears the value of the "vin" field.
func (_u *VehicleUpdateOne) ClearVin() *VehicleUpdateOne {
	_u.mutation.ClearVin()
	return _u
}

// SetEngineNumber sets the "engine_number" field.
func (_u *VehicleUpdateOne) SetEngineNumber(v string) *VehicleUpdateOne {
	_u.mutation.SetEngineNumber(v)
	return _u
}

// SetNillableEngineNumber sets the "engine_number" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableEngineNumber(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetEngineNumber(*v)
	}
	return _u
}

// ClearEngineNumber clears the value of the "engine_number" field.
func (_u *VehicleUpdateOne) ClearEngineNumber() *VehicleUpdateOne {
	_u.mutation.ClearEngineNumber()
	return _u
}

// SetCase sets the "case" edge to the InvestigationCase entity.
func (_u *VehicleUpdateOne) SetCase(v *InvestigationCase) *VehicleUpdateOne {
	return _u.SetCaseID(v.ID)
}

// Mutation returns the VehicleMutation object of the builder.
func (_u *VehicleUpdateOne) Mutation() *VehicleMutation {
	return _u.mutation
}

// ClearCase clears the "case" edge to the InvestigationCase entity.
func (_u *VehicleUpdateOne) ClearCase() *VehicleUpdateOne {
	_u.mutation.ClearCase()
	return _u
}

// Where appends a list predicates to the VehicleUpdate builder.
func (_u *VehicleUpdateOne) Where(ps ...predicate.Vehicle) *VehicleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VehicleUpdateOne) Select(field string, fields ...string) *VehicleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vehicle entity.
func (_u *VehicleUpdateOne) Save(ctx context.Context) (*Vehicle, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VehicleUpdateOne) SaveX(ctx context.Context) *Vehicle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VehicleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VehicleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VehicleUpdateOne) check() error {
	if v, ok := _u.mutation.Plate(); ok {
		if err := vehicle.PlateValidator(v); err != nil {
			return &ValidationError{Name: "plate", err: fmt.Errorf(`ent: validator failed for field "Vehicle.plate": %w`, err)}
		}
	}
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Vehicle.case"`)
	}
	return nil
}

func (_u *VehicleUpdateOne) sqlSave(ctx context.Context) (_node *Vehicle, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vehicle.Table, vehicle.Columns, sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vehicle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vehicle.FieldID)
		for _, f := range fields {
			if !vehicle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vehicle.FieldID {
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
	if value, ok := _u.mutation.Plate(); ok {
		_spec.SetField(vehicle.FieldPlate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Make(); ok {
		_spec.SetField(vehicle.FieldMake, field.TypeString, value)
	}
	if _u.mutation.MakeCleared() {
		_spec.ClearField(vehicle.FieldMake, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(vehicle.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(vehicle.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(vehicle.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(vehicle.FieldYear, field.TypeInt, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(vehicle.FieldYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(vehicle.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(vehicle.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.Vin(); ok {
		_spec.SetField(vehicle.FieldVin, field.TypeString, value)
	}
	if _u.mutation.VinCleared() {
		_spec.ClearField(vehicle.FieldVin, field.TypeString)
	}
	if value, ok := _u.mutation.EngineNumber(); ok {
		_spec.SetField(vehicle.FieldEngineNumber, field.TypeString, value)
	}
	if _u.mutation.EngineNumberCleared() {
		_spec.ClearField(vehicle.FieldEngineNumber, field.TypeString)
	}
	if _u.mutation.CaseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   vehicle.CaseTable,
			Columns: []string{vehicle.CaseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(investigationcase.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   vehicle.CaseTable,
			Columns: []string{vehicle.CaseColumn},
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
	_node = &Vehicle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vehicle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
