// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseactivity"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseaddress"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseowner"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/folder"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/processeddocument"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/vehicle"
)

// InvestigationCaseQuery is the builder for querying InvestigationCase entities.
type InvestigationCaseQuery struct {
	config
	ctx            *QueryContext
	order          []investigationcase.OrderOption
	inters         []Interceptor
	predicates     []predicate.InvestigationCase
	withFolder     *FolderQuery
	withVehicle    *VehicleQuery
	withOwners     *CaseOwnerQuery
	withAddresses  *CaseAddressQuery
	withActivities *CaseActivityQuery
	withDocuments  *ProcessedDocumentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the InvestigationCaseQuery builder.
func (_q *InvestigationCaseQuery) Where(ps ...predicate.InvestigationCase) *InvestigationCaseQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *InvestigationCaseQuery) Limit(limit int) *InvestigationCaseQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *InvestigationCaseQuery) Offset(offset int) *InvestigationCaseQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *InvestigationCaseQuery) Unique(unique bool) *InvestigationCaseQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *InvestigationCaseQuery) Order(o ...investigationcase.OrderOption) *InvestigationCaseQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryFolder chains the current query on the "folder" edge.
func (_q *InvestigationCaseQuery) QueryFolder() *FolderQuery {
	query := (&FolderClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(investigationcase.Table, investigationcase.FieldID, selector),
			sqlgraph.To(folder.Table, folder.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, investigationcase.FolderTable, investigationcase.FolderColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVehicle chains the current query on the "vehicle" edge.
func (_q *InvestigationCaseQuery) QueryVehicle() *VehicleQuery {
	query := (&VehicleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(investigationcase.Table, investigationcase.FieldID, selector),
			sqlgraph.To(vehicle.Table, vehicle.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, investigationcase.VehicleTable, investigationcase.VehicleColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOwners chains the current query on the "owners" edge.
func (_q *InvestigationCaseQuery) QueryOwners() *CaseOwnerQuery {
	query := (&CaseOwnerClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(investigationcase.Table, investigationcase.FieldID, selector),
			sqlgraph.To(caseowner.Table, caseowner.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, investigationcase.OwnersTable, investigationcase.OwnersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAddresses chains the current query on the "addresses" edge.
func (_q *InvestigationCaseQuery) QueryAddresses() *CaseAddressQuery {
	query := (&CaseAddressClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(investigationcase.Table, investigationcase.FieldID, selector),
			sqlgraph.To(caseaddress.Table, caseaddress.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, investigationcase.AddressesTable, investigationcase.AddressesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryActivities chains the current query on the "activities" edge.
func (_q *InvestigationCaseQuery) QueryActivities() *CaseActivityQuery {
	query := (&CaseActivityClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(investigationcase.Table, investigationcase.FieldID, selector),
			sqlgraph.To(caseactivity.Table, caseactivity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, investigationcase.ActivitiesTable, investigationcase.ActivitiesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDocuments chains the current query on the "documents" edge.
func (_q *InvestigationCaseQuery) QueryDocuments() *ProcessedDocumentQuery {
	query := (&ProcessedDocumentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(investigationcase.Table, investigationcase.FieldID, selector),
			sqlgraph.To(processeddocument.Table, processeddocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, investigationcase.DocumentsTable, investigationcase.DocumentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first InvestigationCase entity from the query.
// Returns a *NotFoundError when no InvestigationCase was found.
func (_q *InvestigationCaseQuery) First(ctx context.Context) (*InvestigationCase, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{investigationcase.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *InvestigationCaseQuery) FirstX(ctx context.Context) *InvestigationCase {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first InvestigationCase ID from the query.
// Returns a *NotFoundError when no InvestigationCase ID was found.
func (_q *InvestigationCaseQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{investigationcase.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *InvestigationCaseQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single InvestigationCase entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one InvestigationCase entity is found.
// Returns a *NotFoundError when no InvestigationCase entities are found.
func (_q *InvestigationCaseQuery) Only(ctx context.Context) (*InvestigationCase, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{investigationcase.Label}
	default:
		return nil, &NotSingularError{investigationcase.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *InvestigationCaseQuery) OnlyX(ctx context.Context) *InvestigationCase {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only InvestigationCase ID in the query.
// Returns a *NotSingularError when more than one InvestigationCase ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *InvestigationCaseQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{investigationcase.Label}
	default:
		err = &NotSingularError{investigationcase.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *InvestigationCaseQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of InvestigationCases.
func (_q *InvestigationCaseQuery) All(ctx context.Context) ([]*InvestigationCase, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*InvestigationCase, *InvestigationCaseQuery]()
	return withInterceptors[[]*InvestigationCase](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *InvestigationCaseQuery) AllX(ctx context.Context) []*InvestigationCase {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of InvestigationCase IDs.
func (_q *InvestigationCaseQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(investigationcase.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *InvestigationCaseQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *InvestigationCaseQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*InvestigationCaseQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *InvestigationCaseQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *InvestigationCaseQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *InvestigationCaseQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the InvestigationCaseQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *InvestigationCaseQuery) Clone() *InvestigationCaseQuery {
	if _q == nil {
		return nil
	}
	return &InvestigationCaseQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]investigationcase.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.InvestigationCase{}, _q.predicates...),
		withFolder:     _q.withFolder.Clone(),
		withVehicle:    _q.withVehicle.Clone(),
		withOwners:     _q.withOwners.Clone(),
		withAddresses:  _q.withAddresses.Clone(),
		withActivities: _q.withActivities.Clone(),
		withDocuments:  _q.withDocuments.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithFolder tells the query-builder to eager-load the nodes that are connected to
// the "folder" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InvestigationCaseQuery) WithFolder(opts ...func(*FolderQuery)) *InvestigationCaseQuery {
	query := (&FolderClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFolder = query
	return _q
}

// WithVehicle tells the query-builder to eager-load the nodes that are connected to
// the "vehicle" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InvestigationCaseQuery) WithVehicle(opts ...func(*VehicleQuery)) *InvestigationCaseQuery {
	query := (&VehicleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVehicle = query
	return _q
}

// WithOwners tells the query-builder to eager-load the nodes that are connected to
// the "owners" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InvestigationCaseQuery) WithOwners(opts ...func(*CaseOwnerQuery)) *InvestigationCaseQuery {
	query := (&CaseOwnerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOwners = query
	return _q
}

// WithAddresses tells the query-builder to eager-load the nodes that are connected to
// the "addresses" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InvestigationCaseQuery) WithAddresses(opts ...func(*CaseAddressQuery)) *InvestigationCaseQuery {
	query := (&CaseAddressClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAddresses = query
	return _q
}

// WithActivities tells the query-builder to eager-load the nodes that are connected to
// the "activities" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InvestigationCaseQuery) WithActivities(opts ...func(*CaseActivityQuery)) *InvestigationCaseQuery {
	query := (&CaseActivityClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withActivities = query
	return _q
}

// WithDocuments tells the query-builder to eager-load the nodes that are connected to
// the "documents" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InvestigationCaseQuery) WithDocuments(opts ...func(*ProcessedDocumentQuery)) *InvestigationCaseQuery {
	query := (&ProcessedDocumentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDocuments = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		FolderID uuid.UUID `json:"folder_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.InvestigationCase.Query().
//		GroupBy(investigationcase.FieldFolderID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *InvestigationCaseQuery) GroupBy(field string, fields ...string) *InvestigationCaseGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &InvestigationCaseGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = investigationcase.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		FolderID uuid.UUID `json:"folder_id,omitempty"`
//	}
//
//	client.InvestigationCase.Query().
//		Select(investigationcase.FieldFolderID).
//		Scan(ctx, &v)
func (_q *InvestigationCaseQuery) Select(fields ...string) *InvestigationCaseSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &InvestigationCaseSelect{InvestigationCaseQuery: _q}
	sbuild.label = investigationcase.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a InvestigationCaseSelect configured with the given aggregations.
func (_q *InvestigationCaseQuery) Aggregate(fns ...AggregateFunc) *InvestigationCaseSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *InvestigationCaseQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !investigationcase.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *InvestigationCaseQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*InvestigationCase, error) {
	var (
		nodes       = []*InvestigationCase{}
		_spec       = _q.querySpec()
		loadedTypes = [6]bool{
			_q.withFolder != nil,
			_q.withVehicle != nil,
			_q.withOwners != nil,
			_q.withAddresses != nil,
			_q.withActivities != nil,
			_q.withDocuments != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*InvestigationCase).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &InvestigationCase{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withFolder; query != nil {
		if err := _q.loadFolder(ctx, query, nodes, nil,
			func(n *InvestigationCase, e *Folder) { n.Edges.Folder = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withVehicle; query != nil {
		if err := _q.loadVehicle(ctx, query, nodes, nil,
			func(n *InvestigationCase, e *Vehicle) { n.Edges.Vehicle = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOwners; query != nil {
		if err := _q.loadOwners(ctx, query, nodes,
			func(n *InvestigationCase) { n.Edges.Owners = []*CaseOwner{} },
			func(n *InvestigationCase, e *CaseOwner) { n.Edges.Owners = append(n.Edges.Owners, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAddresses; query != nil {
		if err := _q.loadAddresses(ctx, query, nodes,
			func(n *InvestigationCase) { n.Edges.Addresses = []*CaseAddress{} },
			func(n *InvestigationCase, e *CaseAddress) { n.Edges.Addresses = append(n.Edges.Addresses, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withActivities; query != nil {
		if err := _q.loadActivities(ctx, query, nodes,
			func(n *InvestigationCase) { n.Edges.Activities = []*CaseActivity{} },
			func(n *InvestigationCase, e *CaseActivity) { n.Edges.Activities = append(n.Edges.Activities, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDocuments; query != nil {
		if err := _q.loadDocuments(ctx, query, nodes,
			func(n *InvestigationCase) { n.Edges.Documents = []*ProcessedDocument{} },
			func(n *InvestigationCase, e *ProcessedDocument) { n.Edges.Documents = append(n.Edges.Documents, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *InvestigationCaseQuery) loadFolder(ctx context.Context, query *FolderQuery, nodes []*InvestigationCase, init func(*InvestigationCase), assign func(*InvestigationCase, *Folder)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*InvestigationCase)
	for i := range nodes {
		fk := nodes[i].FolderID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(folder.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "folder_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *InvestigationCaseQuery) loadVehicle(ctx context.Context, query *VehicleQuery, nodes []*InvestigationCase, init func(*InvestigationCase), assign func(*InvestigationCase, *Vehicle)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*InvestigationCase)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(vehicle.FieldCaseID)
	}
	query.Where(predicate.Vehicle(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(investigationcase.VehicleColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CaseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "case_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *InvestigationCaseQuery) loadOwners(ctx context.Context, query *CaseOwnerQuery, nodes []*InvestigationCase, init func(*InvestigationCase), assign func(*InvestigationCase, *CaseOwner)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*InvestigationCase)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(caseowner.FieldCaseID)
	}
	query.Where(predicate.CaseOwner(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(investigationcase.OwnersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CaseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "case_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *InvestigationCaseQuery) loadAddresses(ctx context.Context, query *CaseAddressQuery, nodes []*InvestigationCase, init func(*InvestigationCase), assign func(*InvestigationCase, *CaseAddress)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*InvestigationCase)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(caseaddress.FieldCaseID)
	}
	query.Where(predicate.CaseAddress(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(investigationcase.AddressesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CaseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "case_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *InvestigationCaseQuery) loadActivities(ctx context.Context, query *CaseActivityQuery, nodes []*InvestigationCase, init func(*InvestigationCase), assign func(*InvestigationCase, *CaseActivity)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*InvestigationCase)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(caseactivity.FieldCaseID)
	}
	query.Where(predicate.CaseActivity(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(investigationcase.ActivitiesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CaseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "case_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *InvestigationCaseQuery) loadDocuments(ctx context.Context, query *ProcessedDocumentQuery, nodes []*InvestigationCase, init func(*InvestigationCase), assign func(*InvestigationCase, *ProcessedDocument)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*InvestigationCase)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(processeddocument.FieldCaseID)
	}
	query.Where(predicate.ProcessedDocument(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(investigationcase.DocumentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CaseID
		if fk == nil {
			return fmt.Errorf(`foreign-key "case_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "case_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *InvestigationCaseQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *InvestigationCaseQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(investigationcase.Table, investigationcase.Columns, sqlgraph.NewFieldSpec(investigationcase.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, investigationcase.FieldID)
		for i := range fields {
			if fields[i] != investigationcase.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withFolder != nil {
			_spec.Node.AddColumnOnce(investigationcase.FieldFolderID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *InvestigationCaseQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(investigationcase.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = investigationcase.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// InvestigationCaseGroupBy is the group-by builder for InvestigationCase entities.
type InvestigationCaseGroupBy struct {
	selector
	build *InvestigationCaseQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *InvestigationCaseGroupBy) Aggregate(fns ...AggregateFunc) *InvestigationCaseGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *InvestigationCaseGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InvestigationCaseQuery, *InvestigationCaseGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *InvestigationCaseGroupBy) sqlScan(ctx context.Context, root *InvestigationCaseQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// InvestigationCaseSelect is the builder for selecting fields of InvestigationCase entities.
type InvestigationCaseSelect struct {
	*InvestigationCaseQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *InvestigationCaseSelect) Aggregate(fns ...AggregateFunc) *InvestigationCaseSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *InvestigationCaseSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InvestigationCaseQuery, *InvestigationCaseSelect](ctx, _s.InvestigationCaseQuery, _s, _s.inters, v)
}

func (_s *InvestigationCaseSelect) sqlScan(ctx context.Context, root *InvestigationCaseQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
