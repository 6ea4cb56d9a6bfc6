// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseactivity"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseaddress"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseowner"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/folder"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/processeddocument"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/registrycredit"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/vehicle"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCaseActivity      = "CaseActivity"
	TypeCaseAddress       = "CaseAddress"
	TypeCaseOwner         = "CaseOwner"
	TypeFolder            = "Folder"
	TypeInvestigationCase = "InvestigationCase"
	TypeProcessedDocument = "ProcessedDocument"
	TypeRegistryCredit    = "RegistryCredit"
	TypeVehicle           = "Vehicle"
)

// CaseActivityMutation represents an operation that mutates the CaseActivity nodes in the graph.
type CaseActivityMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	kind          *string
	detail        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	_case         *uuid.UUID
	cleared_case  bool
	done          bool
	oldValue      func(context.Context) (*CaseActivity, error)
	predicates    []predicate.CaseActivity
}

var _ ent.Mutation = (*CaseActivityMutation)(nil)

// caseactivityOption allows management of the mutation configuration using functional options.
type caseactivityOption func(*CaseActivityMutation)

// newCaseActivityMutation creates new mutation for the CaseActivity entity.
func newCaseActivityMutation(c config, op Op, opts ...caseactivityOption) *CaseActivityMutation {
	m := &CaseActivityMutation{
		config:        c,
		op:            op,
		typ:           TypeCaseActivity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCaseActivityID sets the ID field of the mutation.
func withCaseActivityID(id uuid.UUID) caseactivityOption {
	return func(m *CaseActivityMutation) {
		var (
			err   error
			once  sync.Once
			value *CaseActivity
		)
		m.oldValue = func(ctx context.Context) (*CaseActivity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CaseActivity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCaseActivity sets the old CaseActivity of the mutation.
func withCaseActivity(node *CaseActivity) caseactivityOption {
	return func(m *CaseActivityMutation) {
		m.oldValue = func(context.Context) (*CaseActivity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CaseActivityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CaseActivityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CaseActivity entities.
func (m *CaseActivityMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CaseActivityMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CaseActivityMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CaseActivity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *CaseActivityMutation) SetCaseID(u uuid.UUID) {
	m._case = &u
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *CaseActivityMutation) CaseID() (r uuid.UUID, exists bool) {
	v := m._case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the CaseActivity entity.
// If the CaseActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseActivityMutation) OldCaseID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *CaseActivityMutation) ResetCaseID() {
	m._case = nil
}

// SetKind sets the "kind" field.
func (m *CaseActivityMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *CaseActivityMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the CaseActivity entity.
// If the CaseActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseActivityMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *CaseActivityMutation) ResetKind() {
	m.kind = nil
}

// SetDetail sets the "detail" field.
func (m *CaseActivityMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *CaseActivityMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the CaseActivity entity.
// If the CaseActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseActivityMutation) OldDetail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *CaseActivityMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[caseactivity.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *CaseActivityMutation) DetailCleared() bool {
	_, ok := m.clearedFields[caseactivity.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *CaseActivityMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, caseactivity.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *CaseActivityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CaseActivityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CaseActivity entity.
// If the CaseActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseActivityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CaseActivityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCase clears the "case" edge to the InvestigationCase entity.
func (m *CaseActivityMutation) ClearCase() {
	m.cleared_case = true
	m.clearedFields[caseactivity.FieldCaseID] = struct{}{}
}

// CaseCleared reports if the "case" edge to the InvestigationCase entity was cleared.
func (m *CaseActivityMutation) CaseCleared() bool {
	return m.cleared_case
}

// CaseIDs returns the "case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CaseID instead. It exists only for internal usage by the builders.
func (m *CaseActivityMutation) CaseIDs() (ids []uuid.UUID) {
	if id := m._case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCase resets all changes to the "case" edge.
func (m *CaseActivityMutation) ResetCase() {
	m._case = nil
	m.cleared_case = false
}

// Where appends a list predicates to the CaseActivityMutation builder.
func (m *CaseActivityMutation) Where(ps ...predicate.CaseActivity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CaseActivityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CaseActivityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CaseActivity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CaseActivityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CaseActivityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CaseActivity).
func (m *CaseActivityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CaseActivityMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m._case != nil {
		fields = append(fields, caseactivity.FieldCaseID)
	}
	if m.kind != nil {
		fields = append(fields, caseactivity.FieldKind)
	}
	if m.detail != nil {
		fields = append(fields, caseactivity.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, caseactivity.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CaseActivityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case caseactivity.FieldCaseID:
		return m.CaseID()
	case caseactivity.FieldKind:
		return m.Kind()
	case caseactivity.FieldDetail:
		return m.Detail()
	case caseactivity.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CaseActivityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case caseactivity.FieldCaseID:
		return m.OldCaseID(ctx)
	case caseactivity.FieldKind:
		return m.OldKind(ctx)
	case caseactivity.FieldDetail:
		return m.OldDetail(ctx)
	case caseactivity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CaseActivity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseActivityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case caseactivity.FieldCaseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case caseactivity.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case caseactivity.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case caseactivity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CaseActivity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CaseActivityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CaseActivityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseActivityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CaseActivity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CaseActivityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(caseactivity.FieldDetail) {
		fields = append(fields, caseactivity.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CaseActivityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CaseActivityMutation) ClearField(name string) error {
	switch name {
	case caseactivity.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown CaseActivity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CaseActivityMutation) ResetField(name string) error {
	switch name {
	case caseactivity.FieldCaseID:
		m.ResetCaseID()
		return nil
	case caseactivity.FieldKind:
		m.ResetKind()
		return nil
	case caseactivity.FieldDetail:
		m.ResetDetail()
		return nil
	case caseactivity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CaseActivity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CaseActivityMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._case != nil {
		edges = append(edges, caseactivity.EdgeCase)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CaseActivityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case caseactivity.EdgeCase:
		if id := m._case; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CaseActivityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CaseActivityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CaseActivityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_case {
		edges = append(edges, caseactivity.EdgeCase)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CaseActivityMutation) EdgeCleared(name string) bool {
	switch name {
	case caseactivity.EdgeCase:
		return m.cleared_case
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CaseActivityMutation) ClearEdge(name string) error {
	switch name {
	case caseactivity.EdgeCase:
		m.ClearCase()
		return nil
	}
	return fmt.Errorf("unknown CaseActivity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CaseActivityMutation) ResetEdge(name string) error {
	switch name {
	case caseactivity.EdgeCase:
		m.ResetCase()
		return nil
	}
	return fmt.Errorf("unknown CaseActivity edge %s", name)
}

// CaseAddressMutation represents an operation that mutates the CaseAddress nodes in the graph.
type CaseAddressMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	street        *string
	locality      *string
	region        *string
	source        *string
	clearedFields map[string]struct{}
	_case         *uuid.UUID
	cleared_case  bool
	done          bool
	oldValue      func(context.Context) (*CaseAddress, error)
	predicates    []predicate.CaseAddress
}

var _ ent.Mutation = (*CaseAddressMutation)(nil)

// caseaddressOption allows management of the mutation configuration using functional options.
type caseaddressOption func(*CaseAddressMutation)

// newCaseAddressMutation creates new mutation for the CaseAddress entity.
func newCaseAddressMutation(c config, op Op, opts ...caseaddressOption) *CaseAddressMutation {
	m := &CaseAddressMutation{
		config:        c,
		op:            op,
		typ:           TypeCaseAddress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCaseAddressID sets the ID field of the mutation.
func withCaseAddressID(id uuid.UUID) caseaddressOption {
	return func(m *CaseAddressMutation) {
		var (
			err   error
			once  sync.Once
			value *CaseAddress
		)
		m.oldValue = func(ctx context.Context) (*CaseAddress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CaseAddress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCaseAddress sets the old CaseAddress of the mutation.
func withCaseAddress(node *CaseAddress) caseaddressOption {
	return func(m *CaseAddressMutation) {
		m.oldValue = func(context.Context) (*CaseAddress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CaseAddressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CaseAddressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CaseAddress entities.
func (m *CaseAddressMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CaseAddressMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CaseAddressMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CaseAddress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *CaseAddressMutation) SetCaseID(u uuid.UUID) {
	m._case = &u
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *CaseAddressMutation) CaseID() (r uuid.UUID, exists bool) {
	v := m._case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the CaseAddress entity.
// If the CaseAddress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseAddressMutation) OldCaseID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *CaseAddressMutation) ResetCaseID() {
	m._case = nil
}

// SetStreet sets the "street" field.
func (m *CaseAddressMutation) SetStreet(s string) {
	m.street = &s
}

// Street returns the value of the "street" field in the mutation.
func (m *CaseAddressMutation) Street() (r string, exists bool) {
	v := m.street
	if v == nil {
		return
	}
	return *v, true
}

// OldStreet returns the old "street" field's value of the CaseAddress entity.
// If the CaseAddress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseAddressMutation) OldStreet(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreet: %w", err)
	}
	return oldValue.Street, nil
}

// ResetStreet resets all changes to the "street" field.
func (m *CaseAddressMutation) ResetStreet() {
	m.street = nil
}

// SetLocality sets the "locality" field.
func (m *CaseAddressMutation) SetLocality(s string) {
	m.locality = &s
}

// Locality returns the value of the "locality" field in the mutation.
func (m *CaseAddressMutation) Locality() (r string, exists bool) {
	v := m.locality
	if v == nil {
		return
	}
	return *v, true
}

// OldLocality returns the old "locality" field's value of the CaseAddress entity.
// If the CaseAddress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseAddressMutation) OldLocality(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocality: %w", err)
	}
	return oldValue.Locality, nil
}

// ClearLocality clears the value of the "locality" field.
func (m *CaseAddressMutation) ClearLocality() {
	m.locality = nil
	m.clearedFields[caseaddress.FieldLocality] = struct{}{}
}

// LocalityCleared returns if the "locality" field was cleared in this mutation.
func (m *CaseAddressMutation) LocalityCleared() bool {
	_, ok := m.clearedFields[caseaddress.FieldLocality]
	return ok
}

// ResetLocality resets all changes to the "locality" field.
func (m *CaseAddressMutation) ResetLocality() {
	m.locality = nil
	delete(m.clearedFields, caseaddress.FieldLocality)
}

// SetRegion sets the "region" field.
func (m *CaseAddressMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *CaseAddressMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the CaseAddress entity.
// If the CaseAddress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseAddressMutation) OldRegion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ClearRegion clears the value of the "region" field.
func (m *CaseAddressMutation) ClearRegion() {
	m.region = nil
	m.clearedFields[caseaddress.FieldRegion] = struct{}{}
}

// RegionCleared returns if the "region" field was cleared in this mutation.
func (m *CaseAddressMutation) RegionCleared() bool {
	_, ok := m.clearedFields[caseaddress.FieldRegion]
	return ok
}

// ResetRegion resets all changes to the "region" field.
func (m *CaseAddressMutation) ResetRegion() {
	m.region = nil
	delete(m.clearedFields, caseaddress.FieldRegion)
}

// SetSource sets the "source" field.
func (m *CaseAddressMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *CaseAddressMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the CaseAddress entity.
// If the CaseAddress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseAddressMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *CaseAddressMutation) ResetSource() {
	m.source = nil
}

// ClearCase clears the "case" edge to the InvestigationCase entity.
func (m *CaseAddressMutation) ClearCase() {
	m.cleared_case = true
	m.clearedFields[caseaddress.FieldCaseID] = struct{}{}
}

// CaseCleared reports if the "case" edge to the InvestigationCase entity was cleared.
func (m *CaseAddressMutation) CaseCleared() bool {
	return m.cleared_case
}

// CaseIDs returns the "case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CaseID instead. It exists only for internal usage by the builders.
func (m *CaseAddressMutation) CaseIDs() (ids []uuid.UUID) {
	if id := m._case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCase resets all changes to the "case" edge.
func (m *CaseAddressMutation) ResetCase() {
	m._case = nil
	m.cleared_case = false
}

// Where appends a list predicates to the CaseAddressMutation builder.
func (m *CaseAddressMutation) Where(ps ...predicate.CaseAddress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CaseAddressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CaseAddressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CaseAddress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CaseAddressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CaseAddressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CaseAddress).
func (m *CaseAddressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CaseAddressMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m._case != nil {
		fields = append(fields, caseaddress.FieldCaseID)
	}
	if m.street != nil {
		fields = append(fields, caseaddress.FieldStreet)
	}
	if m.locality != nil {
		fields = append(fields, caseaddress.FieldLocality)
	}
	if m.region != nil {
		fields = append(fields, caseaddress.FieldRegion)
	}
	if m.source != nil {
		fields = append(fields, caseaddress.FieldSource)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CaseAddressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case caseaddress.FieldCaseID:
		return m.CaseID()
	case caseaddress.FieldStreet:
		return m.Street()
	case caseaddress.FieldLocality:
		return m.Locality()
	case caseaddress.FieldRegion:
		return m.Region()
	case caseaddress.FieldSource:
		return m.Source()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CaseAddressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case caseaddress.FieldCaseID:
		return m.OldCaseID(ctx)
	case caseaddress.FieldStreet:
		return m.OldStreet(ctx)
	case caseaddress.FieldLocality:
		return m.OldLocality(ctx)
	case caseaddress.FieldRegion:
		return m.OldRegion(ctx)
	case caseaddress.FieldSource:
		return m.OldSource(ctx)
	}
	return nil, fmt.Errorf("unknown CaseAddress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseAddressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case caseaddress.FieldCaseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case caseaddress.FieldStreet:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreet(v)
		return nil
	case caseaddress.FieldLocality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocality(v)
		return nil
	case caseaddress.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case caseaddress.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	}
	return fmt.Errorf("unknown CaseAddress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CaseAddressMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CaseAddressMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseAddressMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CaseAddress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CaseAddressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(caseaddress.FieldLocality) {
		fields = append(fields, caseaddress.FieldLocality)
	}
	if m.FieldCleared(caseaddress.FieldRegion) {
		fields = append(fields, caseaddress.FieldRegion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CaseAddressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CaseAddressMutation) ClearField(name string) error {
	switch name {
	case caseaddress.FieldLocality:
		m.ClearLocality()
		return nil
	case caseaddress.FieldRegion:
		m.ClearRegion()
		return nil
	}
	return fmt.Errorf("unknown CaseAddress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CaseAddressMutation) ResetField(name string) error {
	switch name {
	case caseaddress.FieldCaseID:
		m.ResetCaseID()
		return nil
	case caseaddress.FieldStreet:
		m.ResetStreet()
		return nil
	case caseaddress.FieldLocality:
		m.ResetLocality()
		return nil
	case caseaddress.FieldRegion:
		m.ResetRegion()
		return nil
	case caseaddress.FieldSource:
		m.ResetSource()
		return nil
	}
	return fmt.Errorf("unknown CaseAddress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CaseAddressMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._case != nil {
		edges = append(edges, caseaddress.EdgeCase)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CaseAddressMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case caseaddress.EdgeCase:
		if id := m._case; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CaseAddressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CaseAddressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CaseAddressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_case {
		edges = append(edges, caseaddress.EdgeCase)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CaseAddressMutation) EdgeCleared(name string) bool {
	switch name {
	case caseaddress.EdgeCase:
		return m.cleared_case
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CaseAddressMutation) ClearEdge(name string) error {
	switch name {
	case caseaddress.EdgeCase:
		m.ClearCase()
		return nil
	}
	return fmt.Errorf("unknown CaseAddress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CaseAddressMutation) ResetEdge(name string) error {
	switch name {
	case caseaddress.EdgeCase:
		m.ResetCase()
		return nil
	}
	return fmt.Errorf("unknown CaseAddress edge %s", name)
}

// CaseOwnerMutation represents an operation that mutates the CaseOwner nodes in the graph.
type CaseOwnerMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	national_id   *string
	full_name     *string
	source        *string
	clearedFields map[string]struct{}
	_case         *uuid.UUID
	cleared_case  bool
	done          bool
	oldValue      func(context.Context) (*CaseOwner, error)
	predicates    []predicate.CaseOwner
}

var _ ent.Mutation = (*CaseOwnerMutation)(nil)

// caseownerOption allows management of the mutation configuration using functional options.
type caseownerOption func(*CaseOwnerMutation)

// newCaseOwnerMutation creates new mutation for the CaseOwner entity.
func newCaseOwnerMutation(c config, op Op, opts ...caseownerOption) *CaseOwnerMutation {
	m := &CaseOwnerMutation{
		config:        c,
		op:            op,
		typ:           TypeCaseOwner,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCaseOwnerID sets the ID field of the mutation.
func withCaseOwnerID(id uuid.UUID) caseownerOption {
	return func(m *CaseOwnerMutation) {
		var (
			err   error
			once  sync.Once
			value *CaseOwner
		)
		m.oldValue = func(ctx context.Context) (*CaseOwner, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CaseOwner.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCaseOwner sets the old CaseOwner of the mutation.
func withCaseOwner(node *CaseOwner) caseownerOption {
	return func(m *CaseOwnerMutation) {
		m.oldValue = func(context.Context) (*CaseOwner, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CaseOwnerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CaseOwnerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CaseOwner entities.
func (m *CaseOwnerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CaseOwnerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CaseOwnerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CaseOwner.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *CaseOwnerMutation) SetCaseID(u uuid.UUID) {
	m._case = &u
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *CaseOwnerMutation) CaseID() (r uuid.UUID, exists bool) {
	v := m._case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the CaseOwner entity.
// If the CaseOwner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseOwnerMutation) OldCaseID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *CaseOwnerMutation) ResetCaseID() {
	m._case = nil
}

// SetNationalID sets the "national_id" field.
func (m *CaseOwnerMutation) SetNationalID(s string) {
	m.national_id = &s
}

// NationalID returns the value of the "national_id" field in the mutation.
func (m *CaseOwnerMutation) NationalID() (r string, exists bool) {
	v := m.national_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNationalID returns the old "national_id" field's value of the CaseOwner entity.
// If the CaseOwner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseOwnerMutation) OldNationalID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNationalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNationalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNationalID: %w", err)
	}
	return oldValue.NationalID, nil
}

// ClearNationalID clears the value of the "national_id" field.
func (m *CaseOwnerMutation) ClearNationalID() {
	m.national_id = nil
	m.clearedFields[caseowner.FieldNationalID] = struct{}{}
}

// NationalIDCleared returns if the "national_id" field was cleared in this mutation.
func (m *CaseOwnerMutation) NationalIDCleared() bool {
	_, ok := m.clearedFields[caseowner.FieldNationalID]
	return ok
}

// ResetNationalID resets all changes to the "national_id" field.
func (m *CaseOwnerMutation) ResetNationalID() {
	m.national_id = nil
	delete(m.clearedFields, caseowner.FieldNationalID)
}

// SetFullName sets the "full_name" field.
func (m *CaseOwnerMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *CaseOwnerMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the CaseOwner entity.
// If the CaseOwner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseOwnerMutation) OldFullName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ClearFullName clears the value of the "full_name" field.
func (m *CaseOwnerMutation) ClearFullName() {
	m.full_name = nil
	m.clearedFields[caseowner.FieldFullName] = struct{}{}
}

// FullNameCleared returns if the "full_name" field was cleared in this mutation.
func (m *CaseOwnerMutation) FullNameCleared() bool {
	_, ok := m.clearedFields[caseowner.FieldFullName]
	return ok
}

// ResetFullName resets all changes to the "full_name" field.
func (m *CaseOwnerMutation) ResetFullName() {
	m.full_name = nil
	delete(m.clearedFields, caseowner.FieldFullName)
}

// SetSource sets the "source" field.
func (m *CaseOwnerMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *CaseOwnerMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the CaseOwner entity.
// If the CaseOwner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseOwnerMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *CaseOwnerMutation) ResetSource() {
	m.source = nil
}

// ClearCase clears the "case" edge to the InvestigationCase entity.
func (m *CaseOwnerMutation) ClearCase() {
	m.cleared_case = true
	m.clearedFields[caseowner.FieldCaseID] = struct{}{}
}

// CaseCleared reports if the "case" edge to the InvestigationCase entity was cleared.
func (m *CaseOwnerMutation) CaseCleared() bool {
	return m.cleared_case
}

// CaseIDs returns the "case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CaseID instead. It exists only for internal usage by the builders.
func (m *CaseOwnerMutation) CaseIDs() (ids []uuid.UUID) {
	if id := m._case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCase resets all changes to the "case" edge.
func (m *CaseOwnerMutation) ResetCase() {
	m._case = nil
	m.cleared_case = false
}

// Where appends a list predicates to the CaseOwnerMutation builder.
func (m *CaseOwnerMutation) Where(ps ...predicate.CaseOwner) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CaseOwnerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CaseOwnerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CaseOwner, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CaseOwnerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CaseOwnerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CaseOwner).
func (m *CaseOwnerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CaseOwnerMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m._case != nil {
		fields = append(fields, caseowner.FieldCaseID)
	}
	if m.national_id != nil {
		fields = append(fields, caseowner.FieldNationalID)
	}
	if m.full_name != nil {
		fields = append(fields, caseowner.FieldFullName)
	}
	if m.source != nil {
		fields = append(fields, caseowner.FieldSource)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CaseOwnerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case caseowner.FieldCaseID:
		return m.CaseID()
	case caseowner.FieldNationalID:
		return m.NationalID()
	case caseowner.FieldFullName:
		return m.FullName()
	case caseowner.FieldSource:
		return m.Source()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CaseOwnerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case caseowner.FieldCaseID:
		return m.OldCaseID(ctx)
	case caseowner.FieldNationalID:
		return m.OldNationalID(ctx)
	case caseowner.FieldFullName:
		return m.OldFullName(ctx)
	case caseowner.FieldSource:
		return m.OldSource(ctx)
	}
	return nil, fmt.Errorf("unknown CaseOwner field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseOwnerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case caseowner.FieldCaseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case caseowner.FieldNationalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNationalID(v)
		return nil
	case caseowner.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case caseowner.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	}
	return fmt.Errorf("unknown CaseOwner field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CaseOwnerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CaseOwnerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseOwnerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CaseOwner numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CaseOwnerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(caseowner.FieldNationalID) {
		fields = append(fields, caseowner.FieldNationalID)
	}
	if m.FieldCleared(caseowner.FieldFullName) {
		fields = append(fields, caseowner.FieldFullName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CaseOwnerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CaseOwnerMutation) ClearField(name string) error {
	switch name {
	case caseowner.FieldNationalID:
		m.ClearNationalID()
		return nil
	case caseowner.FieldFullName:
		m.ClearFullName()
		return nil
	}
	return fmt.Errorf("unknown CaseOwner nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CaseOwnerMutation) ResetField(name string) error {
	switch name {
	case caseowner.FieldCaseID:
		m.ResetCaseID()
		return nil
	case caseowner.FieldNationalID:
		m.ResetNationalID()
		return nil
	case caseowner.FieldFullName:
		m.ResetFullName()
		return nil
	case caseowner.FieldSource:
		m.ResetSource()
		return nil
	}
	return fmt.Errorf("unknown CaseOwner field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CaseOwnerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._case != nil {
		edges = append(edges, caseowner.EdgeCase)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CaseOwnerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case caseowner.EdgeCase:
		if id := m._case; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CaseOwnerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CaseOwnerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CaseOwnerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_case {
		edges = append(edges, caseowner.EdgeCase)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CaseOwnerMutation) EdgeCleared(name string) bool {
	switch name {
	case caseowner.EdgeCase:
		return m.cleared_case
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CaseOwnerMutation) ClearEdge(name string) error {
	switch name {
	case caseowner.EdgeCase:
		m.ClearCase()
		return nil
	}
	return fmt.Errorf("unknown CaseOwner unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CaseOwnerMutation) ResetEdge(name string) error {
	switch name {
	case caseowner.EdgeCase:
		m.ResetCase()
		return nil
	}
	return fmt.Errorf("unknown CaseOwner edge %s", name)
}

// FolderMutation represents an operation that mutates the Folder nodes in the graph.
type FolderMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	organization_id  *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	documents        map[uuid.UUID]struct{}
	removeddocuments map[uuid.UUID]struct{}
	cleareddocuments bool
	cases            map[uuid.UUID]struct{}
	removedcases     map[uuid.UUID]struct{}
	clearedcases     bool
	done             bool
	oldValue         func(context.Context) (*Folder, error)
	predicates       []predicate.Folder
}

var _ ent.Mutation = (*FolderMutation)(nil)

// folderOption allows management of the mutation configuration using functional options.
type folderOption func(*FolderMutation)

// newFolderMutation creates new mutation for the Folder entity.
func newFolderMutation(c config, op Op, opts ...folderOption) *FolderMutation {
	m := &FolderMutation{
		config:        c,
		op:            op,
		typ:           TypeFolder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFolderID sets the ID field of the mutation.
func withFolderID(id uuid.UUID) folderOption {
	return func(m *FolderMutation) {
		var (
			err   error
			once  sync.Once
			value *Folder
		)
		m.oldValue = func(ctx context.Context) (*Folder, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Folder.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFolder sets the old Folder of the mutation.
func withFolder(node *Folder) folderOption {
	return func(m *FolderMutation) {
		m.oldValue = func(context.Context) (*Folder, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FolderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FolderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Folder entities.
func (m *FolderMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FolderMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FolderMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Folder.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *FolderMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FolderMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Folder entity.
// If the Folder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FolderMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FolderMutation) ResetName() {
	m.name = nil
}

// SetOrganizationID sets the "organization_id" field.
func (m *FolderMutation) SetOrganizationID(u uuid.UUID) {
	m.organization_id = &u
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *FolderMutation) OrganizationID() (r uuid.UUID, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the Folder entity.
// If the Folder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FolderMutation) OldOrganizationID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (m *FolderMutation) ClearOrganizationID() {
	m.organization_id = nil
	m.clearedFields[folder.FieldOrganizationID] = struct{}{}
}

// OrganizationIDCleared returns if the "organization_id" field was cleared in this mutation.
func (m *FolderMutation) OrganizationIDCleared() bool {
	_, ok := m.clearedFields[folder.FieldOrganizationID]
	return ok
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *FolderMutation) ResetOrganizationID() {
	m.organization_id = nil
	delete(m.clearedFields, folder.FieldOrganizationID)
}

// SetCreatedAt sets the "created_at" field.
func (m *FolderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FolderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Folder entity.
// If the Folder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FolderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FolderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FolderMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FolderMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Folder entity.
// If the Folder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FolderMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FolderMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDocumentIDs adds the "documents" edge to the ProcessedDocument entity by ids.
func (m *FolderMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the ProcessedDocument entity.
func (m *FolderMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the ProcessedDocument entity was cleared.
func (m *FolderMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the ProcessedDocument entity by IDs.
func (m *FolderMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the ProcessedDocument entity.
func (m *FolderMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *FolderMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *FolderMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddCaseIDs adds the "cases" edge to the InvestigationCase entity by ids.
func (m *FolderMutation) AddCaseIDs(ids ...uuid.UUID) {
	if m.cases == nil {
		m.cases = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.cases[ids[i]] = struct{}{}
	}
}

// ClearCases clears the "cases" edge to the InvestigationCase entity.
func (m *FolderMutation) ClearCases() {
	m.clearedcases = true
}

// CasesCleared reports if the "cases" edge to the InvestigationCase entity was cleared.
func (m *FolderMutation) CasesCleared() bool {
	return m.clearedcases
}

// RemoveCaseIDs removes the "cases" edge to the InvestigationCase entity by IDs.
func (m *FolderMutation) RemoveCaseIDs(ids ...uuid.UUID) {
	if m.removedcases == nil {
		m.removedcases = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.cases, ids[i])
		m.removedcases[ids[i]] = struct{}{}
	}
}

// RemovedCases returns the removed IDs of the "cases" edge to the InvestigationCase entity.
func (m *FolderMutation) RemovedCasesIDs() (ids []uuid.UUID) {
	for id := range m.removedcases {
		ids = append(ids, id)
	}
	return
}

// CasesIDs returns the "cases" edge IDs in the mutation.
func (m *FolderMutation) CasesIDs() (ids []uuid.UUID) {
	for id := range m.cases {
		ids = append(ids, id)
	}
	return
}

// ResetCases resets all changes to the "cases" edge.
func (m *FolderMutation) ResetCases() {
	m.cases = nil
	m.clearedcases = false
	m.removedcases = nil
}

// Where appends a list predicates to the FolderMutation builder.
func (m *FolderMutation) Where(ps ...predicate.Folder) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FolderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FolderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Folder, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FolderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FolderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Folder).
func (m *FolderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FolderMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, folder.FieldName)
	}
	if m.organization_id != nil {
		fields = append(fields, folder.FieldOrganizationID)
	}
	if m.created_at != nil {
		fields = append(fields, folder.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, folder.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FolderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case folder.FieldName:
		return m.Name()
	case folder.FieldOrganizationID:
		return m.OrganizationID()
	case folder.FieldCreatedAt:
		return m.CreatedAt()
	case folder.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FolderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case folder.FieldName:
		return m.OldName(ctx)
	case folder.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case folder.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case folder.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Folder field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FolderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case folder.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case folder.FieldOrganizationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case folder.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case folder.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Folder field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FolderMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FolderMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FolderMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Folder numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FolderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(folder.FieldOrganizationID) {
		fields = append(fields, folder.FieldOrganizationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FolderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FolderMutation) ClearField(name string) error {
	switch name {
	case folder.FieldOrganizationID:
		m.ClearOrganizationID()
		return nil
	}
	return fmt.Errorf("unknown Folder nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FolderMutation) ResetField(name string) error {
	switch name {
	case folder.FieldName:
		m.ResetName()
		return nil
	case folder.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case folder.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case folder.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Folder field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FolderMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.documents != nil {
		edges = append(edges, folder.EdgeDocuments)
	}
	if m.cases != nil {
		edges = append(edges, folder.EdgeCases)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FolderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case folder.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case folder.EdgeCases:
		ids := make([]ent.Value, 0, len(m.cases))
		for id := range m.cases {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FolderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddocuments != nil {
		edges = append(edges, folder.EdgeDocuments)
	}
	if m.removedcases != nil {
		edges = append(edges, folder.EdgeCases)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FolderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case folder.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case folder.EdgeCases:
		ids := make([]ent.Value, 0, len(m.removedcases))
		for id := range m.removedcases {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FolderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocuments {
		edges = append(edges, folder.EdgeDocuments)
	}
	if m.clearedcases {
		edges = append(edges, folder.EdgeCases)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FolderMutation) EdgeCleared(name string) bool {
	switch name {
	case folder.EdgeDocuments:
		return m.cleareddocuments
	case folder.EdgeCases:
		return m.clearedcases
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FolderMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Folder unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FolderMutation) ResetEdge(name string) error {
	switch name {
	case folder.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case folder.EdgeCases:
		m.ResetCases()
		return nil
	}
	return fmt.Errorf("unknown Folder edge %s", name)
}

// InvestigationCaseMutation represents an operation that mutates the InvestigationCase nodes in the graph.
type InvestigationCaseMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	case_number          *string
	legal_context        *string
	warnings             *[]string
	appendwarnings       []string
	enrichment_raw       *json.RawMessage
	appendenrichment_raw json.RawMessage
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	folder               *uuid.UUID
	clearedfolder        bool
	vehicle              *uuid.UUID
	clearedvehicle       bool
	owners               map[uuid.UUID]struct{}
	removedowners        map[uuid.UUID]struct{}
	clearedowners        bool
	addresses            map[uuid.UUID]struct{}
	removedaddresses     map[uuid.UUID]struct{}
	clearedaddresses     bool
	activities           map[uuid.UUID]struct{}
	removedactivities    map[uuid.UUID]struct{}
	clearedactivities    bool
	documents            map[uuid.UUID]struct{}
	removeddocuments     map[uuid.UUID]struct{}
	cleareddocuments     bool
	done                 bool
	oldValue             func(context.Context) (*InvestigationCase, error)
	predicates           []predicate.InvestigationCase
}

var _ ent.Mutation = (*InvestigationCaseMutation)(nil)

// investigationcaseOption allows management of the mutation configuration using functional options.
type investigationcaseOption func(*InvestigationCaseMutation)

// newInvestigationCaseMutation creates new mutation for the InvestigationCase entity.
func newInvestigationCaseMutation(c config, op Op, opts ...investigationcaseOption) *InvestigationCaseMutation {
	m := &InvestigationCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeInvestigationCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvestigationCaseID sets the ID field of the mutation.
func withInvestigationCaseID(id uuid.UUID) investigationcaseOption {
	return func(m *InvestigationCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *InvestigationCase
		)
		m.oldValue = func(ctx context.Context) (*InvestigationCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InvestigationCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvestigationCase sets the old InvestigationCase of the mutation.
func withInvestigationCase(node *InvestigationCase) investigationcaseOption {
	return func(m *InvestigationCaseMutation) {
		m.oldValue = func(context.Context) (*InvestigationCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvestigationCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvestigationCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InvestigationCase entities.
func (m *InvestigationCaseMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvestigationCaseMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvestigationCaseMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InvestigationCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFolderID sets the "folder_id" field.
func (m *InvestigationCaseMutation) SetFolderID(u uuid.UUID) {
	m.folder = &u
}

// FolderID returns the value of the "folder_id" field in the mutation.
func (m *InvestigationCaseMutation) FolderID() (r uuid.UUID, exists bool) {
	v := m.folder
	if v == nil {
		return
	}
	return *v, true
}

// OldFolderID returns the old "folder_id" field's value of the InvestigationCase entity.
// If the InvestigationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationCaseMutation) OldFolderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFolderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFolderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFolderID: %w", err)
	}
	return oldValue.FolderID, nil
}

// ResetFolderID resets all changes to the "folder_id" field.
func (m *InvestigationCaseMutation) ResetFolderID() {
	m.folder = nil
}

// SetCaseNumber sets the "case_number" field.
func (m *InvestigationCaseMutation) SetCaseNumber(s string) {
	m.case_number = &s
}

// CaseNumber returns the value of the "case_number" field in the mutation.
func (m *InvestigationCaseMutation) CaseNumber() (r string, exists bool) {
	v := m.case_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseNumber returns the old "case_number" field's value of the InvestigationCase entity.
// If the InvestigationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationCaseMutation) OldCaseNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseNumber: %w", err)
	}
	return oldValue.CaseNumber, nil
}

// ResetCaseNumber resets all changes to the "case_number" field.
func (m *InvestigationCaseMutation) ResetCaseNumber() {
	m.case_number = nil
}

// SetLegalContext sets the "legal_context" field.
func (m *InvestigationCaseMutation) SetLegalContext(s string) {
	m.legal_context = &s
}

// LegalContext returns the value of the "legal_context" field in the mutation.
func (m *InvestigationCaseMutation) LegalContext() (r string, exists bool) {
	v := m.legal_context
	if v == nil {
		return
	}
	return *v, true
}

// OldLegalContext returns the old "legal_context" field's value of the InvestigationCase entity.
// If the InvestigationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationCaseMutation) OldLegalContext(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegalContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegalContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegalContext: %w", err)
	}
	return oldValue.LegalContext, nil
}

// ClearLegalContext clears the value of the "legal_context" field.
func (m *InvestigationCaseMutation) ClearLegalContext() {
	m.legal_context = nil
	m.clearedFields[investigationcase.FieldLegalContext] = struct{}{}
}

// LegalContextCleared returns if the "legal_context" field was cleared in this mutation.
func (m *InvestigationCaseMutation) LegalContextCleared() bool {
	_, ok := m.clearedFields[investigationcase.FieldLegalContext]
	return ok
}

// ResetLegalContext resets all changes to the "legal_context" field.
func (m *InvestigationCaseMutation) ResetLegalContext() {
	m.legal_context = nil
	delete(m.clearedFields, investigationcase.FieldLegalContext)
}

// SetWarnings sets the "warnings" field.
func (m *InvestigationCaseMutation) SetWarnings(s []string) {
	m.warnings = &s
	m.appendwarnings = nil
}

// Warnings returns the value of the "warnings" field in the mutation.
func (m *InvestigationCaseMutation) Warnings() (r []string, exists bool) {
	v := m.warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldWarnings returns the old "warnings" field's value of the InvestigationCase entity.
// If the InvestigationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationCaseMutation) OldWarnings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarnings: %w", err)
	}
	return oldValue.Warnings, nil
}

// AppendWarnings adds s to the "warnings" field.
func (m *InvestigationCaseMutation) AppendWarnings(s []string) {
	m.appendwarnings = append(m.appendwarnings, s...)
}

// AppendedWarnings returns the list of values that were appended to the "warnings" field in this mutation.
func (m *InvestigationCaseMutation) AppendedWarnings() ([]string, bool) {
	if len(m.appendwarnings) == 0 {
		return nil, false
	}
	return m.appendwarnings, true
}

// ClearWarnings clears the value of the "warnings" field.
func (m *InvestigationCaseMutation) ClearWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	m.clearedFields[investigationcase.FieldWarnings] = struct{}{}
}

// WarningsCleared returns if the "warnings" field was cleared in this mutation.
func (m *InvestigationCaseMutation) WarningsCleared() bool {
	_, ok := m.clearedFields[investigationcase.FieldWarnings]
	return ok
}

// ResetWarnings resets all changes to the "warnings" field.
func (m *InvestigationCaseMutation) ResetWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	delete(m.clearedFields, investigationcase.FieldWarnings)
}

// SetEnrichmentRaw sets the "enrichment_raw" field.
func (m *InvestigationCaseMutation) SetEnrichmentRaw(jm json.RawMessage) {
	m.enrichment_raw = &jm
	m.appendenrichment_raw = nil
}

// EnrichmentRaw returns the value of the "enrichment_raw" field in the mutation.
func (m *InvestigationCaseMutation) EnrichmentRaw() (r json.RawMessage, exists bool) {
	v := m.enrichment_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichmentRaw returns the old "enrichment_raw" field's value of the InvestigationCase entity.
// If the InvestigationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationCaseMutation) OldEnrichmentRaw(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichmentRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichmentRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichmentRaw: %w", err)
	}
	return oldValue.EnrichmentRaw, nil
}

// AppendEnrichmentRaw adds jm to the "enrichment_raw" field.
func (m *InvestigationCaseMutation) AppendEnrichmentRaw(jm json.RawMessage) {
	m.appendenrichment_raw = append(m.appendenrichment_raw, jm...)
}

// AppendedEnrichmentRaw returns the list of values that were appended to the "enrichment_raw" field in this mutation.
func (m *InvestigationCaseMutation) AppendedEnrichmentRaw() (json.RawMessage, bool) {
	if len(m.appendenrichment_raw) == 0 {
		return nil, false
	}
	return m.appendenrichment_raw, true
}

// ClearEnrichmentRaw clears the value of the "enrichment_raw" field.
func (m *InvestigationCaseMutation) ClearEnrichmentRaw() {
	m.enrichment_raw = nil
	m.appendenrichment_raw = nil
	m.clearedFields[investigationcase.FieldEnrichmentRaw] = struct{}{}
}

// EnrichmentRawCleared returns if the "enrichment_raw" field was cleared in this mutation.
func (m *InvestigationCaseMutation) EnrichmentRawCleared() bool {
	_, ok := m.clearedFields[investigationcase.FieldEnrichmentRaw]
	return ok
}

// ResetEnrichmentRaw resets all changes to the "enrichment_raw" field.
func (m *InvestigationCaseMutation) ResetEnrichmentRaw() {
	m.enrichment_raw = nil
	m.appendenrichment_raw = nil
	delete(m.clearedFields, investigationcase.FieldEnrichmentRaw)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvestigationCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvestigationCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InvestigationCase entity.
// If the InvestigationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvestigationCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InvestigationCaseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InvestigationCaseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InvestigationCase entity.
// If the InvestigationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationCaseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InvestigationCaseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearFolder clears the "folder" edge to the Folder entity.
func (m *InvestigationCaseMutation) ClearFolder() {
	m.clearedfolder = true
	m.clearedFields[investigationcase.FieldFolderID] = struct{}{}
}

// FolderCleared reports if the "folder" edge to the Folder entity was cleared.
func (m *InvestigationCaseMutation) FolderCleared() bool {
	return m.clearedfolder
}

// FolderIDs returns the "folder" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FolderID instead. It exists only for internal usage by the builders.
func (m *InvestigationCaseMutation) FolderIDs() (ids []uuid.UUID) {
	if id := m.folder; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFolder resets all changes to the "folder" edge.
func (m *InvestigationCaseMutation) ResetFolder() {
	m.folder = nil
	m.clearedfolder = false
}

// SetVehicleID sets the "vehicle" edge to the Vehicle entity by id.
func (m *InvestigationCaseMutation) SetVehicleID(id uuid.UUID) {
	m.vehicle = &id
}

// ClearVehicle clears the "vehicle" edge to the Vehicle entity.
func (m *InvestigationCaseMutation) ClearVehicle() {
	m.clearedvehicle = true
}

// VehicleCleared reports if the "vehicle" edge to the Vehicle entity was cleared.
func (m *InvestigationCaseMutation) VehicleCleared() bool {
	return m.clearedvehicle
}

// VehicleID returns the "vehicle" edge ID in the mutation.
func (m *InvestigationCaseMutation) VehicleID() (id uuid.UUID, exists bool) {
	if m.vehicle != nil {
		return *m.vehicle, true
	}
	return
}

// VehicleIDs returns the "vehicle" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VehicleID instead. It exists only for internal usage by the builders.
func (m *InvestigationCaseMutation) VehicleIDs() (ids []uuid.UUID) {
	if id := m.vehicle; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVehicle resets all changes to the "vehicle" edge.
func (m *InvestigationCaseMutation) ResetVehicle() {
	m.vehicle = nil
	m.clearedvehicle = false
}

// AddOwnerIDs adds the "owners" edge to the CaseOwner entity by ids.
func (m *InvestigationCaseMutation) AddOwnerIDs(ids ...uuid.UUID) {
	if m.owners == nil {
		m.owners = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.owners[ids[i]] = struct{}{}
	}
}

// ClearOwners clears the "owners" edge to the CaseOwner entity.
func (m *InvestigationCaseMutation) ClearOwners() {
	m.clearedowners = true
}

// OwnersCleared reports if the "owners" edge to the CaseOwner entity was cleared.
func (m *InvestigationCaseMutation) OwnersCleared() bool {
	return m.clearedowners
}

// RemoveOwnerIDs removes the "owners" edge to the CaseOwner entity by IDs.
func (m *InvestigationCaseMutation) RemoveOwnerIDs(ids ...uuid.UUID) {
	if m.removedowners == nil {
		m.removedowners = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.owners, ids[i])
		m.removedowners[ids[i]] = struct{}{}
	}
}

// RemovedOwners returns the removed IDs of the "owners" edge to the CaseOwner entity.
func (m *InvestigationCaseMutation) RemovedOwnersIDs() (ids []uuid.UUID) {
	for id := range m.removedowners {
		ids = append(ids, id)
	}
	return
}

// OwnersIDs returns the "owners" edge IDs in the mutation.
func (m *InvestigationCaseMutation) OwnersIDs() (ids []uuid.UUID) {
	for id := range m.owners {
		ids = append(ids, id)
	}
	return
}

// ResetOwners resets all changes to the "owners" edge.
func (m *InvestigationCaseMutation) ResetOwners() {
	m.owners = nil
	m.clearedowners = false
	m.removedowners = nil
}

// AddAddressIDs adds the "addresses" edge to the CaseAddress entity by ids.
func (m *InvestigationCaseMutation) AddAddressIDs(ids ...uuid.UUID) {
	if m.addresses == nil {
		m.addresses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.addresses[ids[i]] = struct{}{}
	}
}

// ClearAddresses clears the "addresses" edge to the CaseAddress entity.
func (m *InvestigationCaseMutation) ClearAddresses() {
	m.clearedaddresses = true
}

// AddressesCleared reports if the "addresses" edge to the CaseAddress entity was cleared.
func (m *InvestigationCaseMutation) AddressesCleared() bool {
	return m.clearedaddresses
}

// RemoveAddressIDs removes the "addresses" edge to the CaseAddress entity by IDs.
func (m *InvestigationCaseMutation) RemoveAddressIDs(ids ...uuid.UUID) {
	if m.removedaddresses == nil {
		m.removedaddresses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.addresses, ids[i])
		m.removedaddresses[ids[i]] = struct{}{}
	}
}

// RemovedAddresses returns the removed IDs of the "addresses" edge to the CaseAddress entity.
func (m *InvestigationCaseMutation) RemovedAddressesIDs() (ids []uuid.UUID) {
	for id := range m.removedaddresses {
		ids = append(ids, id)
	}
	return
}

// AddressesIDs returns the "addresses" edge IDs in the mutation.
func (m *InvestigationCaseMutation) AddressesIDs() (ids []uuid.UUID) {
	for id := range m.addresses {
		ids = append(ids, id)
	}
	return
}

// ResetAddresses resets all changes to the "addresses" edge.
func (m *InvestigationCaseMutation) ResetAddresses() {
	m.addresses = nil
	m.clearedaddresses = false
	m.removedaddresses = nil
}

// AddActivityIDs adds the "activities" edge to the CaseActivity entity by ids.
func (m *InvestigationCaseMutation) AddActivityIDs(ids ...uuid.UUID) {
	if m.activities == nil {
		m.activities = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.activities[ids[i]] = struct{}{}
	}
}

// ClearActivities clears the "activities" edge to the CaseActivity entity.
func (m *InvestigationCaseMutation) ClearActivities() {
	m.clearedactivities = true
}

// ActivitiesCleared reports if the "activities" edge to the CaseActivity entity was cleared.
func (m *InvestigationCaseMutation) ActivitiesCleared() bool {
	return m.clearedactivities
}

// RemoveActivityIDs removes the "activities" edge to the CaseActivity entity by IDs.
func (m *InvestigationCaseMutation) RemoveActivityIDs(ids ...uuid.UUID) {
	if m.removedactivities == nil {
		m.removedactivities = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.activities, ids[i])
		m.removedactivities[ids[i]] = struct{}{}
	}
}

// RemovedActivities returns the removed IDs of the "activities" edge to the CaseActivity entity.
func (m *InvestigationCaseMutation) RemovedActivitiesIDs() (ids []uuid.UUID) {
	for id := range m.removedactivities {
		ids = append(ids, id)
	}
	return
}

// ActivitiesIDs returns the "activities" edge IDs in the mutation.
func (m *InvestigationCaseMutation) ActivitiesIDs() (ids []uuid.UUID) {
	for id := range m.activities {
		ids = append(ids, id)
	}
	return
}

// ResetActivities resets all changes to the "activities" edge.
func (m *InvestigationCaseMutation) ResetActivities() {
	m.activities = nil
	m.clearedactivities = false
	m.removedactivities = nil
}

// AddDocumentIDs adds the "documents" edge to the ProcessedDocument entity by ids.
func (m *InvestigationCaseMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the ProcessedDocument entity.
func (m *InvestigationCaseMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the ProcessedDocument entity was cleared.
func (m *InvestigationCaseMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the ProcessedDocument entity by IDs.
func (m *InvestigationCaseMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the ProcessedDocument entity.
func (m *InvestigationCaseMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *InvestigationCaseMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *InvestigationCaseMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the InvestigationCaseMutation builder.
func (m *InvestigationCaseMutation) Where(ps ...predicate.InvestigationCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvestigationCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvestigationCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InvestigationCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvestigationCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvestigationCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InvestigationCase).
func (m *InvestigationCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvestigationCaseMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.folder != nil {
		fields = append(fields, investigationcase.FieldFolderID)
	}
	if m.case_number != nil {
		fields = append(fields, investigationcase.FieldCaseNumber)
	}
	if m.legal_context != nil {
		fields = append(fields, investigationcase.FieldLegalContext)
	}
	if m.warnings != nil {
		fields = append(fields, investigationcase.FieldWarnings)
	}
	if m.enrichment_raw != nil {
		fields = append(fields, investigationcase.FieldEnrichmentRaw)
	}
	if m.created_at != nil {
		fields = append(fields, investigationcase.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, investigationcase.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvestigationCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case investigationcase.FieldFolderID:
		return m.FolderID()
	case investigationcase.FieldCaseNumber:
		return m.CaseNumber()
	case investigationcase.FieldLegalContext:
		return m.LegalContext()
	case investigationcase.FieldWarnings:
		return m.Warnings()
	case investigationcase.FieldEnrichmentRaw:
		return m.EnrichmentRaw()
	case investigationcase.FieldCreatedAt:
		return m.CreatedAt()
	case investigationcase.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvestigationCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case investigationcase.FieldFolderID:
		return m.OldFolderID(ctx)
	case investigationcase.FieldCaseNumber:
		return m.OldCaseNumber(ctx)
	case investigationcase.FieldLegalContext:
		return m.OldLegalContext(ctx)
	case investigationcase.FieldWarnings:
		return m.OldWarnings(ctx)
	case investigationcase.FieldEnrichmentRaw:
		return m.OldEnrichmentRaw(ctx)
	case investigationcase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case investigationcase.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InvestigationCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvestigationCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case investigationcase.FieldFolderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFolderID(v)
		return nil
	case investigationcase.FieldCaseNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseNumber(v)
		return nil
	case investigationcase.FieldLegalContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegalContext(v)
		return nil
	case investigationcase.FieldWarnings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarnings(v)
		return nil
	case investigationcase.FieldEnrichmentRaw:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichmentRaw(v)
		return nil
	case investigationcase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case investigationcase.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InvestigationCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvestigationCaseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvestigationCaseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvestigationCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InvestigationCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvestigationCaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(investigationcase.FieldLegalContext) {
		fields = append(fields, investigationcase.FieldLegalContext)
	}
	if m.FieldCleared(investigationcase.FieldWarnings) {
		fields = append(fields, investigationcase.FieldWarnings)
	}
	if m.FieldCleared(investigationcase.FieldEnrichmentRaw) {
		fields = append(fields, investigationcase.FieldEnrichmentRaw)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvestigationCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvestigationCaseMutation) ClearField(name string) error {
	switch name {
	case investigationcase.FieldLegalContext:
		m.ClearLegalContext()
		return nil
	case investigationcase.FieldWarnings:
		m.ClearWarnings()
		return nil
	case investigationcase.FieldEnrichmentRaw:
		m.ClearEnrichmentRaw()
		return nil
	}
	return fmt.Errorf("unknown InvestigationCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvestigationCaseMutation) ResetField(name string) error {
	switch name {
	case investigationcase.FieldFolderID:
		m.ResetFolderID()
		return nil
	case investigationcase.FieldCaseNumber:
		m.ResetCaseNumber()
		return nil
	case investigationcase.FieldLegalContext:
		m.ResetLegalContext()
		return nil
	case investigationcase.FieldWarnings:
		m.ResetWarnings()
		return nil
	case investigationcase.FieldEnrichmentRaw:
		m.ResetEnrichmentRaw()
		return nil
	case investigationcase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case investigationcase.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown InvestigationCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvestigationCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.folder != nil {
		edges = append(edges, investigationcase.EdgeFolder)
	}
	if m.vehicle != nil {
		edges = append(edges, investigationcase.EdgeVehicle)
	}
	if m.owners != nil {
		edges = append(edges, investigationcase.EdgeOwners)
	}
	if m.addresses != nil {
		edges = append(edges, investigationcase.EdgeAddresses)
	}
	if m.activities != nil {
		edges = append(edges, investigationcase.EdgeActivities)
	}
	if m.documents != nil {
		edges = append(edges, investigationcase.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvestigationCaseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case investigationcase.EdgeFolder:
		if id := m.folder; id != nil {
			return []ent.Value{*id}
		}
	case investigationcase.EdgeVehicle:
		if id := m.vehicle; id != nil {
			return []ent.Value{*id}
		}
	case investigationcase.EdgeOwners:
		ids := make([]ent.Value, 0, len(m.owners))
		for id := range m.owners {
			ids = append(ids, id)
		}
		return ids
	case investigationcase.EdgeAddresses:
		ids := make([]ent.Value, 0, len(m.addresses))
		for id := range m.addresses {
			ids = append(ids, id)
		}
		return ids
	case investigationcase.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.activities))
		for id := range m.activities {
			ids = append(ids, id)
		}
		return ids
	case investigationcase.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvestigationCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedowners != nil {
		edges = append(edges, investigationcase.EdgeOwners)
	}
	if m.removedaddresses != nil {
		edges = append(edges, investigationcase.EdgeAddresses)
	}
	if m.removedactivities != nil {
		edges = append(edges, investigationcase.EdgeActivities)
	}
	if m.removeddocuments != nil {
		edges = append(edges, investigationcase.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvestigationCaseMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case investigationcase.EdgeOwners:
		ids := make([]ent.Value, 0, len(m.removedowners))
		for id := range m.removedowners {
			ids = append(ids, id)
		}
		return ids
	case investigationcase.EdgeAddresses:
		ids := make([]ent.Value, 0, len(m.removedaddresses))
		for id := range m.removedaddresses {
			ids = append(ids, id)
		}
		return ids
	case investigationcase.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.removedactivities))
		for id := range m.removedactivities {
			ids = append(ids, id)
		}
		return ids
	case investigationcase.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvestigationCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedfolder {
		edges = append(edges, investigationcase.EdgeFolder)
	}
	if m.clearedvehicle {
		edges = append(edges, investigationcase.EdgeVehicle)
	}
	if m.clearedowners {
		edges = append(edges, investigationcase.EdgeOwners)
	}
	if m.clearedaddresses {
		edges = append(edges, investigationcase.EdgeAddresses)
	}
	if m.clearedactivities {
		edges = append(edges, investigationcase.EdgeActivities)
	}
	if m.cleareddocuments {
		edges = append(edges, investigationcase.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvestigationCaseMutation) EdgeCleared(name string) bool {
	switch name {
	case investigationcase.EdgeFolder:
		return m.clearedfolder
	case investigationcase.EdgeVehicle:
		return m.clearedvehicle
	case investigationcase.EdgeOwners:
		return m.clearedowners
	case investigationcase.EdgeAddresses:
		return m.clearedaddresses
	case investigationcase.EdgeActivities:
		return m.clearedactivities
	case investigationcase.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvestigationCaseMutation) ClearEdge(name string) error {
	switch name {
	case investigationcase.EdgeFolder:
		m.ClearFolder()
		return nil
	case investigationcase.EdgeVehicle:
		m.ClearVehicle()
		return nil
	}
	return fmt.Errorf("unknown InvestigationCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvestigationCaseMutation) ResetEdge(name string) error {
	switch name {
	case investigationcase.EdgeFolder:
		m.ResetFolder()
		return nil
	case investigationcase.EdgeVehicle:
		m.ResetVehicle()
		return nil
	case investigationcase.EdgeOwners:
		m.ResetOwners()
		return nil
	case investigationcase.EdgeAddresses:
		m.ResetAddresses()
		return nil
	case investigationcase.EdgeActivities:
		m.ResetActivities()
		return nil
	case investigationcase.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown InvestigationCase edge %s", name)
}

// ProcessedDocumentMutation represents an operation that mutates the ProcessedDocument nodes in the graph.
type ProcessedDocumentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	storage_ref            *string
	filename               *string
	file_ext               *string
	file_size              *int
	addfile_size           *int
	content_hash           *[]byte
	doc_type               *string
	state                  *string
	pair_id                *uuid.UUID
	extracted_text         *string
	extracted_fields       *json.RawMessage
	appendextracted_fields json.RawMessage
	error_detail           *string
	retry_count            *int
	addretry_count         *int
	next_attempt_at        *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	folder                 *uuid.UUID
	clearedfolder          bool
	_case                  *uuid.UUID
	cleared_case           bool
	done                   bool
	oldValue               func(context.Context) (*ProcessedDocument, error)
	predicates             []predicate.ProcessedDocument
}

var _ ent.Mutation = (*ProcessedDocumentMutation)(nil)

// processeddocumentOption allows management of the mutation configuration using functional options.
type processeddocumentOption func(*ProcessedDocumentMutation)

// newProcessedDocumentMutation creates new mutation for the ProcessedDocument entity.
func newProcessedDocumentMutation(c config, op Op, opts ...processeddocumentOption) *ProcessedDocumentMutation {
	m := &ProcessedDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessedDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessedDocumentID sets the ID field of the mutation.
func withProcessedDocumentID(id uuid.UUID) processeddocumentOption {
	return func(m *ProcessedDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessedDocument
		)
		m.oldValue = func(ctx context.Context) (*ProcessedDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessedDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessedDocument sets the old ProcessedDocument of the mutation.
func withProcessedDocument(node *ProcessedDocument) processeddocumentOption {
	return func(m *ProcessedDocumentMutation) {
		m.oldValue = func(context.Context) (*ProcessedDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessedDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessedDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessedDocument entities.
func (m *ProcessedDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessedDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessedDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessedDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFolderID sets the "folder_id" field.
func (m *ProcessedDocumentMutation) SetFolderID(u uuid.UUID) {
	m.folder = &u
}

// FolderID returns the value of the "folder_id" field in the mutation.
func (m *ProcessedDocumentMutation) FolderID() (r uuid.UUID, exists bool) {
	v := m.folder
	if v == nil {
		return
	}
	return *v, true
}

// OldFolderID returns the old "folder_id" field's value of the ProcessedDocument entity.
// If the ProcessedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedDocumentMutation) OldFolderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFolderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFolderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFolderID: %w", err)
	}
	return oldValue.FolderID, nil
}

// ResetFolderID resets all changes to the "folder_id" field.
func (m *ProcessedDocumentMutation) ResetFolderID() {
	m.folder = nil
}

// SetStorageRef sets the "storage_ref" field.
func (m *ProcessedDocumentMutation) SetStorageRef(s string) {
	m.storage_ref = &s
}

// StorageRef returns the value of the "storage_ref" field in the mutation.
func (m *ProcessedDocumentMutation) StorageRef() (r string, exists bool) {
	v := m.storage_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageRef returns the old "storage_ref" field's value of the ProcessedDocument entity.
// If the ProcessedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedDocumentMutation) OldStorageRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageRef: %w", err)
	}
	return oldValue.StorageRef, nil
}

// ResetStorageRef resets all changes to the "storage_ref" field.
func (m *ProcessedDocumentMutation) ResetStorageRef() {
	m.storage_ref = nil
}

// SetFilename sets the "filename" field.
func (m *ProcessedDocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ProcessedDocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the ProcessedDocument entity.
// If the ProcessedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedDocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ProcessedDocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *ProcessedDocumentMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *ProcessedDocumentMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the ProcessedDocument entity.
// If the ProcessedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedDocumentMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *ProcessedDocumentMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *ProcessedDocumentMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *ProcessedDocumentMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the ProcessedDocument entity.
// If the ProcessedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedDocumentMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *ProcessedDocumentMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *ProcessedDocumentMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *ProcessedDocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetContentHash sets the "content_hash" field.
func (m *ProcessedDocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ProcessedDocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the ProcessedDocument entity.
// If the ProcessedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedDocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ProcessedDocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetDocType sets the "doc_type" field.
func (m *ProcessedDocumentMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *ProcessedDocumentMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the ProcessedDocument entity.
// If the ProcessedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedDocumentMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *ProcessedDocumentMutation) ResetDocType() {
	m.doc_type = nil
}

// SetState sets the "state" field.
func (m *ProcessedDocumentMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *ProcessedDocumentMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the ProcessedDocument entity.
// If the ProcessedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedDocumentMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ProcessedDocumentMutation) ResetState() {
	m.state = nil
}

// SetPairID sets the "pair_id" field.
func (m *ProcessedDocumentMutation) SetPairID(u uuid.UUID) {
	m.pair_id = &u
}

// PairID returns the value of the "pair_id" field in the mutation.
func (m *ProcessedDocumentMutation) PairID() (r uuid.UUID, exists bool) {
	v := m.pair_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPairID returns the old "pair_id" field's value of the ProcessedDocument entity.
// If the ProcessedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedDocumentMutation) OldPairID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPairID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPairID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPairID: %w", err)
	}
	return oldValue.PairID, nil
}

// ClearPairID clears the value of the "pair_id" field.
func (m *ProcessedDocumentMutation) ClearPairID() {
	m.pair_id = nil
	m.clearedFields[processeddocument.FieldPairID] = struct{}{}
}

// PairIDCleared returns if the "pair_id" field was cleared in this mutation.
func (m *ProcessedDocumentMutation) PairIDCleared() bool {
	_, ok := m.clearedFields[processeddocument.FieldPairID]
	return ok
}

// ResetPairID resets all changes to the "pair_id" field.
func (m *ProcessedDocumentMutation) ResetPairID() {
	m.pair_id = nil
	delete(m.clearedFields, processeddocument.FieldPairID)
}

// SetCaseID sets the "case_id" field.
func (m *ProcessedDocumentMutation) SetCaseID(u uuid.UUID) {
	m._case = &u
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *ProcessedDocumentMutation) CaseID() (r uuid.UUID, exists bool) {
	v := m._case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the ProcessedDocument entity.
// If the ProcessedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedDocumentMutation) OldCaseID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ClearCaseID clears the value of the "case_id" field.
func (m *ProcessedDocumentMutation) ClearCaseID() {
	m._case = nil
	m.clearedFields[processeddocument.FieldCaseID] = struct{}{}
}

// CaseIDCleared returns if the "case_id" field was cleared in this mutation.
func (m *ProcessedDocumentMutation) CaseIDCleared() bool {
	_, ok := m.clearedFields[processeddocument.FieldCaseID]
	return ok
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *ProcessedDocumentMutation) ResetCaseID() {
	m._case = nil
	delete(m.clearedFields, processeddocument.FieldCaseID)
}

// SetExtractedText sets the "extracted_text" field.
func (m *ProcessedDocumentMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *ProcessedDocumentMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the ProcessedDocument entity.
// If the ProcessedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedDocumentMutation) OldExtractedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (m *ProcessedDocumentMutation) ClearExtractedText() {
	m.extracted_text = nil
	m.clearedFields[processeddocument.FieldExtractedText] = struct{}{}
}

// ExtractedTextCleared returns if the "extracted_text" field was cleared in this mutation.
func (m *ProcessedDocumentMutation) ExtractedTextCleared() bool {
	_, ok := m.clearedFields[processeddocument.FieldExtractedText]
	return ok
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *ProcessedDocumentMutation) ResetExtractedText() {
	m.extracted_text = nil
	delete(m.clearedFields, processeddocument.FieldExtractedText)
}

// SetExtractedFields sets the "extracted_fields" field.
func (m *ProcessedDocumentMutation) SetExtractedFields(jm json.RawMessage) {
	m.extracted_fields = &jm
	m.appendextracted_fields = nil
}

// ExtractedFields returns the value of the "extracted_fields" field in the mutation.
func (m *ProcessedDocumentMutation) ExtractedFields() (r json.RawMessage, exists bool) {
	v := m.extracted_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedFields returns the old "extracted_fields" field's value of the ProcessedDocument entity.
// If the ProcessedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedDocumentMutation) OldExtractedFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedFields: %w", err)
	}
	return oldValue.ExtractedFields, nil
}

// AppendExtractedFields adds jm to the "extracted_fields" field.
func (m *ProcessedDocumentMutation) AppendExtractedFields(jm json.RawMessage) {
	m.appendextracted_fields = append(m.appendextracted_fields, jm...)
}

// AppendedExtractedFields returns the list of values that were appended to the "extracted_fields" field in this mutation.
func (m *ProcessedDocumentMutation) AppendedExtractedFields() (json.RawMessage, bool) {
	if len(m.appendextracted_fields) == 0 {
		return nil, false
	}
	return m.appendextracted_fields, true
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (m *ProcessedDocumentMutation) ClearExtractedFields() {
	m.extracted_fields = nil
	m.appendextracted_fields = nil
	m.clearedFields[processeddocument.FieldExtractedFields] = struct{}{}
}

// ExtractedFieldsCleared returns if the "extracted_fields" field was cleared in this mutation.
func (m *ProcessedDocumentMutation) ExtractedFieldsCleared() bool {
	_, ok := m.clearedFields[processeddocument.FieldExtractedFields]
	return ok
}

// ResetExtractedFields resets all changes to the "extracted_fields" field.
func (m *ProcessedDocumentMutation) ResetExtractedFields() {
	m.extracted_fields = nil
	m.appendextracted_fields = nil
	delete(m.clearedFields, processeddocument.FieldExtractedFields)
}

// SetErrorDetail sets the "error_detail" field.
func (m *ProcessedDocumentMutation) SetErrorDetail(s string) {
	m.error_detail = &s
}

// ErrorDetail returns the value of the "error_detail" field in the mutation.
func (m *ProcessedDocumentMutation) ErrorDetail() (r string, exists bool) {
	v := m.error_detail
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorDetail returns the old "error_detail" field's value of the ProcessedDocument entity.
// If the ProcessedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedDocumentMutation) OldErrorDetail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorDetail: %w", err)
	}
	return oldValue.ErrorDetail, nil
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (m *ProcessedDocumentMutation) ClearErrorDetail() {
	m.error_detail = nil
	m.clearedFields[processeddocument.FieldErrorDetail] = struct{}{}
}

// ErrorDetailCleared returns if the "error_detail" field was cleared in this mutation.
func (m *ProcessedDocumentMutation) ErrorDetailCleared() bool {
	_, ok := m.clearedFields[processeddocument.FieldErrorDetail]
	return ok
}

// ResetErrorDetail resets all changes to the "error_detail" field.
func (m *ProcessedDocumentMutation) ResetErrorDetail() {
	m.error_detail = nil
	delete(m.clearedFields, processeddocument.FieldErrorDetail)
}

// SetRetryCount sets the "retry_count" field.
func (m *ProcessedDocumentMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *ProcessedDocumentMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the ProcessedDocument entity.
// If the ProcessedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedDocumentMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *ProcessedDocumentMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *ProcessedDocumentMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *ProcessedDocumentMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *ProcessedDocumentMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *ProcessedDocumentMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the ProcessedDocument entity.
// If the ProcessedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedDocumentMutation) OldNextAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (m *ProcessedDocumentMutation) ClearNextAttemptAt() {
	m.next_attempt_at = nil
	m.clearedFields[processeddocument.FieldNextAttemptAt] = struct{}{}
}

// NextAttemptAtCleared returns if the "next_attempt_at" field was cleared in this mutation.
func (m *ProcessedDocumentMutation) NextAttemptAtCleared() bool {
	_, ok := m.clearedFields[processeddocument.FieldNextAttemptAt]
	return ok
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *ProcessedDocumentMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
	delete(m.clearedFields, processeddocument.FieldNextAttemptAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessedDocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessedDocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcessedDocument entity.
// If the ProcessedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedDocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcessedDocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProcessedDocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProcessedDocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProcessedDocument entity.
// If the ProcessedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedDocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProcessedDocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearFolder clears the "folder" edge to the Folder entity.
func (m *ProcessedDocumentMutation) ClearFolder() {
	m.clearedfolder = true
	m.clearedFields[processeddocument.FieldFolderID] = struct{}{}
}

// FolderCleared reports if the "folder" edge to the Folder entity was cleared.
func (m *ProcessedDocumentMutation) FolderCleared() bool {
	return m.clearedfolder
}

// FolderIDs returns the "folder" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FolderID instead. It exists only for internal usage by the builders.
func (m *ProcessedDocumentMutation) FolderIDs() (ids []uuid.UUID) {
	if id := m.folder; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFolder resets all changes to the "folder" edge.
func (m *ProcessedDocumentMutation) ResetFolder() {
	m.folder = nil
	m.clearedfolder = false
}

// ClearCase clears the "case" edge to the InvestigationCase entity.
func (m *ProcessedDocumentMutation) ClearCase() {
	m.cleared_case = true
	m.clearedFields[processeddocument.FieldCaseID] = struct{}{}
}

// CaseCleared reports if the "case" edge to the InvestigationCase entity was cleared.
func (m *ProcessedDocumentMutation) CaseCleared() bool {
	return m.CaseIDCleared() || m.cleared_case
}

// CaseIDs returns the "case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CaseID instead. It exists only for internal usage by the builders.
func (m *ProcessedDocumentMutation) CaseIDs() (ids []uuid.UUID) {
	if id := m._case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCase resets all changes to the "case" edge.
func (m *ProcessedDocumentMutation) ResetCase() {
	m._case = nil
	m.cleared_case = false
}

// Where appends a list predicates to the ProcessedDocumentMutation builder.
func (m *ProcessedDocumentMutation) Where(ps ...predicate.ProcessedDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessedDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessedDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessedDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessedDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessedDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessedDocument).
func (m *ProcessedDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessedDocumentMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.folder != nil {
		fields = append(fields, processeddocument.FieldFolderID)
	}
	if m.storage_ref != nil {
		fields = append(fields, processeddocument.FieldStorageRef)
	}
	if m.filename != nil {
		fields = append(fields, processeddocument.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, processeddocument.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, processeddocument.FieldFileSize)
	}
	if m.content_hash != nil {
		fields = append(fields, processeddocument.FieldContentHash)
	}
	if m.doc_type != nil {
		fields = append(fields, processeddocument.FieldDocType)
	}
	if m.state != nil {
		fields = append(fields, processeddocument.FieldState)
	}
	if m.pair_id != nil {
		fields = append(fields, processeddocument.FieldPairID)
	}
	if m._case != nil {
		fields = append(fields, processeddocument.FieldCaseID)
	}
	if m.extracted_text != nil {
		fields = append(fields, processeddocument.FieldExtractedText)
	}
	if m.extracted_fields != nil {
		fields = append(fields, processeddocument.FieldExtractedFields)
	}
	if m.error_detail != nil {
		fields = append(fields, processeddocument.FieldErrorDetail)
	}
	if m.retry_count != nil {
		fields = append(fields, processeddocument.FieldRetryCount)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, processeddocument.FieldNextAttemptAt)
	}
	if m.created_at != nil {
		fields = append(fields, processeddocument.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, processeddocument.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessedDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processeddocument.FieldFolderID:
		return m.FolderID()
	case processeddocument.FieldStorageRef:
		return m.StorageRef()
	case processeddocument.FieldFilename:
		return m.Filename()
	case processeddocument.FieldFileExt:
		return m.FileExt()
	case processeddocument.FieldFileSize:
		return m.FileSize()
	case processeddocument.FieldContentHash:
		return m.ContentHash()
	case processeddocument.FieldDocType:
		return m.DocType()
	case processeddocument.FieldState:
		return m.State()
	case processeddocument.FieldPairID:
		return m.PairID()
	case processeddocument.FieldCaseID:
		return m.CaseID()
	case processeddocument.FieldExtractedText:
		return m.ExtractedText()
	case processeddocument.FieldExtractedFields:
		return m.ExtractedFields()
	case processeddocument.FieldErrorDetail:
		return m.ErrorDetail()
	case processeddocument.FieldRetryCount:
		return m.RetryCount()
	case processeddocument.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case processeddocument.FieldCreatedAt:
		return m.CreatedAt()
	case processeddocument.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessedDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processeddocument.FieldFolderID:
		return m.OldFolderID(ctx)
	case processeddocument.FieldStorageRef:
		return m.OldStorageRef(ctx)
	case processeddocument.FieldFilename:
		return m.OldFilename(ctx)
	case processeddocument.FieldFileExt:
		return m.OldFileExt(ctx)
	case processeddocument.FieldFileSize:
		return m.OldFileSize(ctx)
	case processeddocument.FieldContentHash:
		return m.OldContentHash(ctx)
	case processeddocument.FieldDocType:
		return m.OldDocType(ctx)
	case processeddocument.FieldState:
		return m.OldState(ctx)
	case processeddocument.FieldPairID:
		return m.OldPairID(ctx)
	case processeddocument.FieldCaseID:
		return m.OldCaseID(ctx)
	case processeddocument.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case processeddocument.FieldExtractedFields:
		return m.OldExtractedFields(ctx)
	case processeddocument.FieldErrorDetail:
		return m.OldErrorDetail(ctx)
	case processeddocument.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case processeddocument.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case processeddocument.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case processeddocument.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessedDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessedDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processeddocument.FieldFolderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFolderID(v)
		return nil
	case processeddocument.FieldStorageRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageRef(v)
		return nil
	case processeddocument.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case processeddocument.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case processeddocument.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case processeddocument.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case processeddocument.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case processeddocument.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case processeddocument.FieldPairID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPairID(v)
		return nil
	case processeddocument.FieldCaseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case processeddocument.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case processeddocument.FieldExtractedFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedFields(v)
		return nil
	case processeddocument.FieldErrorDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorDetail(v)
		return nil
	case processeddocument.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case processeddocument.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case processeddocument.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case processeddocument.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessedDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessedDocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, processeddocument.FieldFileSize)
	}
	if m.addretry_count != nil {
		fields = append(fields, processeddocument.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessedDocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processeddocument.FieldFileSize:
		return m.AddedFileSize()
	case processeddocument.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessedDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processeddocument.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case processeddocument.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessedDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessedDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processeddocument.FieldPairID) {
		fields = append(fields, processeddocument.FieldPairID)
	}
	if m.FieldCleared(processeddocument.FieldCaseID) {
		fields = append(fields, processeddocument.FieldCaseID)
	}
	if m.FieldCleared(processeddocument.FieldExtractedText) {
		fields = append(fields, processeddocument.FieldExtractedText)
	}
	if m.FieldCleared(processeddocument.FieldExtractedFields) {
		fields = append(fields, processeddocument.FieldExtractedFields)
	}
	if m.FieldCleared(processeddocument.FieldErrorDetail) {
		fields = append(fields, processeddocument.FieldErrorDetail)
	}
	if m.FieldCleared(processeddocument.FieldNextAttemptAt) {
		fields = append(fields, processeddocument.FieldNextAttemptAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessedDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessedDocumentMutation) ClearField(name string) error {
	switch name {
	case processeddocument.FieldPairID:
		m.ClearPairID()
		return nil
	case processeddocument.FieldCaseID:
		m.ClearCaseID()
		return nil
	case processeddocument.FieldExtractedText:
		m.ClearExtractedText()
		return nil
	case processeddocument.FieldExtractedFields:
		m.ClearExtractedFields()
		return nil
	case processeddocument.FieldErrorDetail:
		m.ClearErrorDetail()
		return nil
	case processeddocument.FieldNextAttemptAt:
		m.ClearNextAttemptAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessedDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessedDocumentMutation) ResetField(name string) error {
	switch name {
	case processeddocument.FieldFolderID:
		m.ResetFolderID()
		return nil
	case processeddocument.FieldStorageRef:
		m.ResetStorageRef()
		return nil
	case processeddocument.FieldFilename:
		m.ResetFilename()
		return nil
	case processeddocument.FieldFileExt:
		m.ResetFileExt()
		return nil
	case processeddocument.FieldFileSize:
		m.ResetFileSize()
		return nil
	case processeddocument.FieldContentHash:
		m.ResetContentHash()
		return nil
	case processeddocument.FieldDocType:
		m.ResetDocType()
		return nil
	case processeddocument.FieldState:
		m.ResetState()
		return nil
	case processeddocument.FieldPairID:
		m.ResetPairID()
		return nil
	case processeddocument.FieldCaseID:
		m.ResetCaseID()
		return nil
	case processeddocument.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case processeddocument.FieldExtractedFields:
		m.ResetExtractedFields()
		return nil
	case processeddocument.FieldErrorDetail:
		m.ResetErrorDetail()
		return nil
	case processeddocument.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case processeddocument.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case processeddocument.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case processeddocument.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessedDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessedDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.folder != nil {
		edges = append(edges, processeddocument.EdgeFolder)
	}
	if m._case != nil {
		edges = append(edges, processeddocument.EdgeCase)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessedDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processeddocument.EdgeFolder:
		if id := m.folder; id != nil {
			return []ent.Value{*id}
		}
	case processeddocument.EdgeCase:
		if id := m._case; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessedDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessedDocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessedDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfolder {
		edges = append(edges, processeddocument.EdgeFolder)
	}
	if m.cleared_case {
		edges = append(edges, processeddocument.EdgeCase)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessedDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case processeddocument.EdgeFolder:
		return m.clearedfolder
	case processeddocument.EdgeCase:
		return m.cleared_case
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessedDocumentMutation) ClearEdge(name string) error {
	switch name {
	case processeddocument.EdgeFolder:
		m.ClearFolder()
		return nil
	case processeddocument.EdgeCase:
		m.ClearCase()
		return nil
	}
	return fmt.Errorf("unknown ProcessedDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessedDocumentMutation) ResetEdge(name string) error {
	switch name {
	case processeddocument.EdgeFolder:
		m.ResetFolder()
		return nil
	case processeddocument.EdgeCase:
		m.ResetCase()
		return nil
	}
	return fmt.Errorf("unknown ProcessedDocument edge %s", name)
}

// RegistryCreditMutation represents an operation that mutates the RegistryCredit nodes in the graph.
type RegistryCreditMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	subject       *string
	key_tail      *string
	consumed_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RegistryCredit, error)
	predicates    []predicate.RegistryCredit
}

var _ ent.Mutation = (*RegistryCreditMutation)(nil)

// registrycreditOption allows management of the mutation configuration using functional options.
type registrycreditOption func(*RegistryCreditMutation)

// newRegistryCreditMutation creates new mutation for the RegistryCredit entity.
func newRegistryCreditMutation(c config, op Op, opts ...registrycreditOption) *RegistryCreditMutation {
	m := &RegistryCreditMutation{
		config:        c,
		op:            op,
		typ:           TypeRegistryCredit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRegistryCreditID sets the ID field of the mutation.
func withRegistryCreditID(id uuid.UUID) registrycreditOption {
	return func(m *RegistryCreditMutation) {
		var (
			err   error
			once  sync.Once
			value *RegistryCredit
		)
		m.oldValue = func(ctx context.Context) (*RegistryCredit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RegistryCredit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRegistryCredit sets the old RegistryCredit of the mutation.
func withRegistryCredit(node *RegistryCredit) registrycreditOption {
	return func(m *RegistryCreditMutation) {
		m.oldValue = func(context.Context) (*RegistryCredit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RegistryCreditMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RegistryCreditMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RegistryCredit entities.
func (m *RegistryCreditMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RegistryCreditMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RegistryCreditMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RegistryCredit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubject sets the "subject" field.
func (m *RegistryCreditMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *RegistryCreditMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the RegistryCredit entity.
// If the RegistryCredit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistryCreditMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *RegistryCreditMutation) ResetSubject() {
	m.subject = nil
}

// SetKeyTail sets the "key_tail" field.
func (m *RegistryCreditMutation) SetKeyTail(s string) {
	m.key_tail = &s
}

// KeyTail returns the value of the "key_tail" field in the mutation.
func (m *RegistryCreditMutation) KeyTail() (r string, exists bool) {
	v := m.key_tail
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyTail returns the old "key_tail" field's value of the RegistryCredit entity.
// If the RegistryCredit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistryCreditMutation) OldKeyTail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyTail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyTail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyTail: %w", err)
	}
	return oldValue.KeyTail, nil
}

// ResetKeyTail resets all changes to the "key_tail" field.
func (m *RegistryCreditMutation) ResetKeyTail() {
	m.key_tail = nil
}

// SetConsumedAt sets the "consumed_at" field.
func (m *RegistryCreditMutation) SetConsumedAt(t time.Time) {
	m.consumed_at = &t
}

// ConsumedAt returns the value of the "consumed_at" field in the mutation.
func (m *RegistryCreditMutation) ConsumedAt() (r time.Time, exists bool) {
	v := m.consumed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumedAt returns the old "consumed_at" field's value of the RegistryCredit entity.
// If the RegistryCredit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistryCreditMutation) OldConsumedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumedAt: %w", err)
	}
	return oldValue.ConsumedAt, nil
}

// ResetConsumedAt resets all changes to the "consumed_at" field.
func (m *RegistryCreditMutation) ResetConsumedAt() {
	m.consumed_at = nil
}

// Where appends a list predicates to the RegistryCreditMutation builder.
func (m *RegistryCreditMutation) Where(ps ...predicate.RegistryCredit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RegistryCreditMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RegistryCreditMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RegistryCredit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RegistryCreditMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RegistryCreditMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RegistryCredit).
func (m *RegistryCreditMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RegistryCreditMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.subject != nil {
		fields = append(fields, registrycredit.FieldSubject)
	}
	if m.key_tail != nil {
		fields = append(fields, registrycredit.FieldKeyTail)
	}
	if m.consumed_at != nil {
		fields = append(fields, registrycredit.FieldConsumedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RegistryCreditMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case registrycredit.FieldSubject:
		return m.Subject()
	case registrycredit.FieldKeyTail:
		return m.KeyTail()
	case registrycredit.FieldConsumedAt:
		return m.ConsumedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RegistryCreditMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case registrycredit.FieldSubject:
		return m.OldSubject(ctx)
	case registrycredit.FieldKeyTail:
		return m.OldKeyTail(ctx)
	case registrycredit.FieldConsumedAt:
		return m.OldConsumedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RegistryCredit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RegistryCreditMutation) SetField(name string, value ent.Value) error {
	switch name {
	case registrycredit.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case registrycredit.FieldKeyTail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyTail(v)
		return nil
	case registrycredit.FieldConsumedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RegistryCredit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RegistryCreditMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RegistryCreditMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RegistryCreditMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RegistryCredit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RegistryCreditMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RegistryCreditMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RegistryCreditMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RegistryCredit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RegistryCreditMutation) ResetField(name string) error {
	switch name {
	case registrycredit.FieldSubject:
		m.ResetSubject()
		return nil
	case registrycredit.FieldKeyTail:
		m.ResetKeyTail()
		return nil
	case registrycredit.FieldConsumedAt:
		m.ResetConsumedAt()
		return nil
	}
	return fmt.Errorf("unknown RegistryCredit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RegistryCreditMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RegistryCreditMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RegistryCreditMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RegistryCreditMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RegistryCreditMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RegistryCreditMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RegistryCreditMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RegistryCredit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RegistryCreditMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RegistryCredit edge %s", name)
}

// VehicleMutation represents an operation that mutates the Vehicle nodes in the graph.
type VehicleMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	plate         *string
	make          *string
	model         *string
	year          *int
	addyear       *int
	color         *string
	vin           *string
	engine_number *string
	clearedFields map[string]struct{}
	_case         *uuid.UUID
	cleared_case  bool
	done          bool
	oldValue      func(context.Context) (*Vehicle, error)
	predicates    []predicate.Vehicle
}

var _ ent.Mutation = (*VehicleMutation)(nil)

// vehicleOption allows management of the mutation configuration using functional options.
type vehicleOption func(*VehicleMutation)

// newVehicleMutation creates new mutation for the Vehicle entity.
func newVehicleMutation(c config, op Op, opts ...vehicleOption) *VehicleMutation {
	m := &VehicleMutation{
		config:        c,
		op:            op,
		typ:           TypeVehicle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVehicleID sets the ID field of the mutation.
func withVehicleID(id uuid.UUID) vehicleOption {
	return func(m *VehicleMutation) {
		var (
			err   error
			once  sync.Once
			value *Vehicle
		)
		m.oldValue = func(ctx context.Context) (*Vehicle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vehicle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVehicle sets the old Vehicle of the mutation.
func withVehicle(node *Vehicle) vehicleOption {
	return func(m *VehicleMutation) {
		m.oldValue = func(context.Context) (*Vehicle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VehicleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VehicleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Vehicle entities.
func (m *VehicleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VehicleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VehicleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vehicle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *VehicleMutation) SetCaseID(u uuid.UUID) {
	m._case = &u
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *VehicleMutation) CaseID() (r uuid.UUID, exists bool) {
	v := m._case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldCaseID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *VehicleMutation) ResetCaseID() {
	m._case = nil
}

// SetPlate sets the "plate" field.
func (m *VehicleMutation) SetPlate(s string) {
	m.plate = &s
}

// Plate returns the value of the "plate" field in the mutation.
func (m *VehicleMutation) Plate() (r string, exists bool) {
	v := m.plate
	if v == nil {
		return
	}
	return *v, true
}

// OldPlate returns the old "plate" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldPlate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlate: %w", err)
	}
	return oldValue.Plate, nil
}

// ResetPlate resets all changes to the "plate" field.
func (m *VehicleMutation) ResetPlate() {
	m.plate = nil
}

// SetMake sets the "make" field.
func (m *VehicleMutation) SetMake(s string) {
	m.make = &s
}

// Make returns the value of the "make" field in the mutation.
func (m *VehicleMutation) Make() (r string, exists bool) {
	v := m.make
	if v == nil {
		return
	}
	return *v, true
}

// OldMake returns the old "make" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldMake(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMake is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMake requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMake: %w", err)
	}
	return oldValue.Make, nil
}

// ClearMake clears the value of the "make" field.
func (m *VehicleMutation) ClearMake() {
	m.make = nil
	m.clearedFields[vehicle.FieldMake] = struct{}{}
}

// MakeCleared returns if the "make" field was cleared in this mutation.
func (m *VehicleMutation) MakeCleared() bool {
	_, ok := m.clearedFields[vehicle.FieldMake]
	return ok
}

// ResetMake resets all changes to the "make" field.
func (m *VehicleMutation) ResetMake() {
	m.make = nil
	delete(m.clearedFields, vehicle.FieldMake)
}

// SetModel sets the "model" field.
func (m *VehicleMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *VehicleMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *VehicleMutation) ClearModel() {
	m.model = nil
	m.clearedFields[vehicle.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *VehicleMutation) ModelCleared() bool {
	_, ok := m.clearedFields[vehicle.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *VehicleMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, vehicle.FieldModel)
}

// SetYear sets the "year" field.
func (m *VehicleMutation) SetYear(i int) {
	m.year = &i
	m.addyear = nil
}

// Year returns the value of the "year" field in the mutation.
func (m *VehicleMutation) Year() (r int, exists bool) {
	v := m.year
	if v == nil {
		return
	}
	return *v, true
}

// OldYear returns the old "year" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldYear(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYear: %w", err)
	}
	return oldValue.Year, nil
}

// AddYear adds i to the "year" field.
func (m *VehicleMutation) AddYear(i int) {
	if m.addyear != nil {
		*m.addyear += i
	} else {
		m.addyear = &i
	}
}

// AddedYear returns the value that was added to the "year" field in this mutation.
func (m *VehicleMutation) AddedYear() (r int, exists bool) {
	v := m.addyear
	if v == nil {
		return
	}
	return *v, true
}

// ClearYear clears the value of the "year" field.
func (m *VehicleMutation) ClearYear() {
	m.year = nil
	m.addyear = nil
	m.clearedFields[vehicle.FieldYear] = struct{}{}
}

// YearCleared returns if the "year" field was cleared in this mutation.
func (m *VehicleMutation) YearCleared() bool {
	_, ok := m.clearedFields[vehicle.FieldYear]
	return ok
}

// ResetYear resets all changes to the "year" field.
func (m *VehicleMutation) ResetYear() {
	m.year = nil
	m.addyear = nil
	delete(m.clearedFields, vehicle.FieldYear)
}

// SetColor sets the "color" field.
func (m *VehicleMutation) SetColor(s string) {
	m.color = &s
}

// Color returns the value of the "color" field in the mutation.
func (m *VehicleMutation) Color() (r string, exists bool) {
	v := m.color
	if v == nil {
		return
	}
	return *v, true
}

// OldColor returns the old "color" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldColor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColor: %w", err)
	}
	return oldValue.Color, nil
}

// ClearColor clears the value of the "color" field.
func (m *VehicleMutation) ClearColor() {
	m.color = nil
	m.clearedFields[vehicle.FieldColor] = struct{}{}
}

// ColorCleared returns if the "color" field was cleared in this mutation.
func (m *VehicleMutation) ColorCleared() bool {
	_, ok := m.clearedFields[vehicle.FieldColor]
	return ok
}

// ResetColor resets all changes to the "color" field.
func (m *VehicleMutation) ResetColor() {
	m.color = nil
	delete(m.clearedFields, vehicle.FieldColor)
}

// SetVin sets the "vin" field.
func (m *VehicleMutation) SetVin(s string) {
	m.vin = &s
}

// Vin returns the value of the "vin" field in the mutation.
func (m *VehicleMutation) Vin() (r string, exists bool) {
	v := m.vin
	if v == nil {
		return
	}
	return *v, true
}

// OldVin returns the old "vin" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldVin(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVin: %w", err)
	}
	return oldValue.Vin, nil
}

// ClearVin clears the value of the "vin" field.
func (m *VehicleMutation) ClearVin() {
	m.vin = nil
	m.clearedFields[vehicle.FieldVin] = struct{}{}
}

// VinCleared returns if the "vin" field was cleared in this mutation.
func (m *VehicleMutation) VinCleared() bool {
	_, ok := m.clearedFields[vehicle.FieldVin]
	return ok
}

// ResetVin resets all changes to the "vin" field.
func (m *VehicleMutation) ResetVin() {
	m.vin = nil
	delete(m.clearedFields, vehicle.FieldVin)
}

// SetEngineNumber sets the "engine_number" field.
func (m *VehicleMutation) SetEngineNumber(s string) {
	m.engine_number = &s
}

// EngineNumber returns the value of the "engine_number" field in the mutation.
func (m *VehicleMutation) EngineNumber() (r string, exists bool) {
	v := m.engine_number
	if v == nil {
		return
	}
	return *v, true
}

// OldEngineNumber returns the old "engine_number" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldEngineNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngineNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngineNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngineNumber: %w", err)
	}
	return oldValue.EngineNumber, nil
}

// ClearEngineNumber clears the value of the "engine_number" field.
func (m *VehicleMutation) ClearEngineNumber() {
	m.engine_number = nil
	m.clearedFields[vehicle.FieldEngineNumber] = struct{}{}
}

// EngineNumberCleared returns if the "engine_number" field was cleared in this mutation.
func (m *VehicleMutation) EngineNumberCleared() bool {
	_, ok := m.clearedFields[vehicle.FieldEngineNumber]
	return ok
}

// ResetEngineNumber resets all changes to the "engine_number" field.
func (m *VehicleMutation) ResetEngineNumber() {
	m.engine_number = nil
	delete(m.clearedFields, vehicle.FieldEngineNumber)
}

// ClearCase clears the "case" edge to the InvestigationCase entity.
func (m *VehicleMutation) ClearCase() {
	m.cleared_case = true
	m.clearedFields[vehicle.FieldCaseID] = struct{}{}
}

// CaseCleared reports if the "case" edge to the InvestigationCase entity was cleared.
func (m *VehicleMutation) CaseCleared() bool {
	return m.cleared_case
}

// CaseIDs returns the "case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CaseID instead. It exists only for internal usage by the builders.
func (m *VehicleMutation) CaseIDs() (ids []uuid.UUID) {
	if id := m._case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCase resets all changes to the "case" edge.
func (m *VehicleMutation) ResetCase() {
	m._case = nil
	m.cleared_case = false
}

// Where appends a list predicates to the VehicleMutation builder.
func (m *VehicleMutation) Where(ps ...predicate.Vehicle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VehicleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VehicleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vehicle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VehicleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VehicleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vehicle).
func (m *VehicleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VehicleMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m._case != nil {
		fields = append(fields, vehicle.FieldCaseID)
	}
	if m.plate != nil {
		fields = append(fields, vehicle.FieldPlate)
	}
	if m.make != nil {
		fields = append(fields, vehicle.FieldMake)
	}
	if m.model != nil {
		fields = append(fields, vehicle.FieldModel)
	}
	if m.year != nil {
		fields = append(fields, vehicle.FieldYear)
	}
	if m.color != nil {
		fields = append(fields, vehicle.FieldColor)
	}
	if m.vin != nil {
		fields = append(fields, vehicle.FieldVin)
	}
	if m.engine_number != nil {
		fields = append(fields, vehicle.FieldEngineNumber)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VehicleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vehicle.FieldCaseID:
		return m.CaseID()
	case vehicle.FieldPlate:
		return m.Plate()
	case vehicle.FieldMake:
		return m.Make()
	case vehicle.FieldModel:
		return m.Model()
	case vehicle.FieldYear:
		return m.Year()
	case vehicle.FieldColor:
		return m.Color()
	case vehicle.FieldVin:
		return m.Vin()
	case vehicle.FieldEngineNumber:
		return m.EngineNumber()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VehicleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vehicle.FieldCaseID:
		return m.OldCaseID(ctx)
	case vehicle.FieldPlate:
		return m.OldPlate(ctx)
	case vehicle.FieldMake:
		return m.OldMake(ctx)
	case vehicle.FieldModel:
		return m.OldModel(ctx)
	case vehicle.FieldYear:
		return m.OldYear(ctx)
	case vehicle.FieldColor:
		return m.OldColor(ctx)
	case vehicle.FieldVin:
		return m.OldVin(ctx)
	case vehicle.FieldEngineNumber:
		return m.OldEngineNumber(ctx)
	}
	return nil, fmt.Errorf("unknown Vehicle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VehicleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vehicle.FieldCaseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case vehicle.FieldPlate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlate(v)
		return nil
	case vehicle.FieldMake:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMake(v)
		return nil
	case vehicle.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case vehicle.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYear(v)
		return nil
	case vehicle.FieldColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColor(v)
		return nil
	case vehicle.FieldVin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVin(v)
		return nil
	case vehicle.FieldEngineNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngineNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Vehicle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VehicleMutation) AddedFields() []string {
	var fields []string
	if m.addyear != nil {
		fields = append(fields, vehicle.FieldYear)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VehicleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vehicle.FieldYear:
		return m.AddedYear()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VehicleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vehicle.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYear(v)
		return nil
	}
	return fmt.Errorf("unknown Vehicle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VehicleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vehicle.FieldMake) {
		fields = append(fields, vehicle.FieldMake)
	}
	if m.FieldCleared(vehicle.FieldModel) {
		fields = append(fields, vehicle.FieldModel)
	}
	if m.FieldCleared(vehicle.FieldYear) {
		fields = append(fields, vehicle.FieldYear)
	}
	if m.FieldCleared(vehicle.FieldColor) {
		fields = append(fields, vehicle.FieldColor)
	}
	if m.FieldCleared(vehicle.FieldVin) {
		fields = append(fields, vehicle.FieldVin)
	}
	if m.FieldCleared(vehicle.FieldEngineNumber) {
		fields = append(fields, vehicle.FieldEngineNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VehicleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VehicleMutation) ClearField(name string) error {
	switch name {
	case vehicle.FieldMake:
		m.ClearMake()
		return nil
	case vehicle.FieldModel:
		m.ClearModel()
		return nil
	case vehicle.FieldYear:
		m.ClearYear()
		return nil
	case vehicle.FieldColor:
		m.ClearColor()
		return nil
	case vehicle.FieldVin:
		m.ClearVin()
		return nil
	case vehicle.FieldEngineNumber:
		m.ClearEngineNumber()
		return nil
	}
	return fmt.Errorf("unknown Vehicle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VehicleMutation) ResetField(name string) error {
	switch name {
	case vehicle.FieldCaseID:
		m.ResetCaseID()
		return nil
	case vehicle.FieldPlate:
		m.ResetPlate()
		return nil
	case vehicle.FieldMake:
		m.ResetMake()
		return nil
	case vehicle.FieldModel:
		m.ResetModel()
		return nil
	case vehicle.FieldYear:
		m.ResetYear()
		return nil
	case vehicle.FieldColor:
		m.ResetColor()
		return nil
	case vehicle.FieldVin:
		m.ResetVin()
		return nil
	case vehicle.FieldEngineNumber:
		m.ResetEngineNumber()
		return nil
	}
	return fmt.Errorf("unknown Vehicle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VehicleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._case != nil {
		edges = append(edges, vehicle.EdgeCase)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VehicleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vehicle.EdgeCase:
		if id := m._case; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VehicleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VehicleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VehicleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_case {
		edges = append(edges, vehicle.EdgeCase)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VehicleMutation) EdgeCleared(name string) bool {
	switch name {
	case vehicle.EdgeCase:
		return m.cleared_case
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VehicleMutation) ClearEdge(name string) error {
	switch name {
	case vehicle.EdgeCase:
		m.ClearCase()
		return nil
	}
	return fmt.Errorf("unknown Vehicle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VehicleMutation) ResetEdge(name string) error {
	switch name {
	case vehicle.EdgeCase:
		m.ResetCase()
		return nil
	}
	return fmt.Errorf("unknown Vehicle edge %s", name)
}
