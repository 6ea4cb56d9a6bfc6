// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/vehicle"
)

// VehicleCreate is the builder for creating a Vehicle entity.
type VehicleCreate struct {
	config
	mutation *VehicleMutation
	hooks    []Hook
}

// SetCaseID sets the "case_id" field.
func (_c *VehicleCreate) SetCaseID(v uuid.UUID) *VehicleCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetPlate sets the "plate" field.
func (_c *VehicleCreate) SetPlate(v string) *VehicleCreate {
	_c.mutation.SetPlate(v)
	return _c
}

// SetMake sets the "make" field.
func (_c *VehicleCreate) SetMake(v string) *VehicleCreate {
	_c.mutation.SetMake(v)
	return _c
}

// SetNillableMake sets the "make" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableMake(v *string) *VehicleCreate {
	if v != nil {
		_c.SetMake(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *VehicleCreate) SetModel(v string) *VehicleCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableModel(v *string) *VehicleCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetYear sets the "year" field.
func (_c *VehicleCreate) SetYear(v int) *VehicleCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableYear(v *int) *VehicleCreate {
	if v != nil {
		_c.SetYear(*v)
	}
	return _c
}

// SetColor sets the "color" field.
func (_c *VehicleCreate) SetColor(v string) *VehicleCreate {
	_c.mutation.SetColor(v)
	return _c
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableColor(v *string) *VehicleCreate {
	if v != nil {
		_c.SetColor(*v)
	}
	return _c
}

// SetVin sets the "vin" field.
func (_c *VehicleCreate) SetVin(v string) *VehicleCreate {
	_c.mutation.SetVin(v)
	return _c
}

// SetNillableVin sets the "vin" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableVin(v *string) *VehicleCreate {
	if v != nil {
		_c.SetVin(*v)
	}
	return _c
}

// SetEngineNumber sets the "engine_number" field.
func (_c *VehicleCreate) SetEngineNumber(v string) *VehicleCreate {
	_c.mutation.SetEngineNumber(v)
	return _c
}

// SetNillableEngineNumber sets the "engine_number" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableEngineNumber(v *string) *VehicleCreate {
	if v != nil {
		_c.SetEngineNumber(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VehicleCreate) SetID(v uuid.UUID) *VehicleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableID(v *uuid.UUID) *VehicleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCase sets the "case" edge to the InvestigationCase entity.
func (_c *VehicleCreate) SetCase(v *InvestigationCase) *VehicleCreate {
	return _c.SetCaseID(v.ID)
}

// Mutation returns the VehicleMutation object of the builder.
func (_c *VehicleCreate) Mutation() *VehicleMutation {
	return _c.mutation
}

// Save creates the Vehicle in the database.
func (_c *VehicleCreate) Save(ctx context.Context) (*Vehicle, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VehicleCreate) SaveX(ctx context.Context) *Vehicle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VehicleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VehicleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VehicleCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := vehicle.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VehicleCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "Vehicle.case_id"`)}
	}
	if _, ok := _c.mutation.Plate(); !ok {
		return &ValidationError{Name: "plate", err: errors.New(`ent: missing required field "Vehicle.plate"`)}
	}
	if v, ok := _c.mutation.Plate(); ok {
		if err := vehicle.PlateValidator(v); err != nil {
			return &ValidationError{Name: "plate", err: fmt.Errorf(`ent: validator failed for field "Vehicle.plate": %w`, err)}
		}
	}
	if len(_c.mutation.CaseIDs()) == 0 {
		return &ValidationError{Name: "case", err: errors.New(`ent: missing required edge "Vehicle.case"`)}
	}
	return nil
}

func (_c *VehicleCreate) sqlSave(ctx context.Context) (*Vehicle, error) {
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

func (_c *VehicleCreate) createSpec() (*Vehicle, *sqlgraph.CreateSpec) {
	var (
		_node = &Vehicle{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vehicle.Table, sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Plate(); ok {
		_spec.SetField(vehicle.FieldPlate, field.TypeString, value)
		_node.Plate = value
	}
	if value, ok := _c.mutation.Make(); ok {
		_spec.SetField(vehicle.FieldMake, field.TypeString, value)
		_node.Make = &value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(vehicle.FieldModel, field.TypeString, value)
		_node.Model = &value
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(vehicle.FieldYear, field.TypeInt, value)
		_node.Year = &value
	}
	if value, ok := _c.mutation.Color(); ok {
		_spec.SetField(vehicle.FieldColor, field.TypeString, value)
		_node.Color = &value
	}
	if value, ok := _c.mutation.Vin(); ok {
		_spec.SetField(vehicle.FieldVin, field.TypeString, value)
		_node.Vin = &value
	}
	if value, ok := _c.mutation.EngineNumber(); ok {
		_spec.SetField(vehicle.FieldEngineNumber, field.TypeString, value)
		_node.EngineNumber = &value
	}
	if nodes := _c.mutation.CaseIDs(); len(nodes) > 0 {
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
		_node.CaseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VehicleCreateBulk is the builder for creating many Vehicle entities in bulk.
type VehicleCreateBulk struct {
	config
	err      error
	builders []*VehicleCreate
}

// Save creates the Vehicle entities in the database.
func (_c *VehicleCreateBulk) Save(ctx context.Context) ([]*Vehicle, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Vehicle, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VehicleMutation)
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
func (_c *VehicleCreateBulk) SaveX(ctx context.Context) []*Vehicle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VehicleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VehicleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
