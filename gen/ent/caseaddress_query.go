// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseaddress"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
)

// CaseAddressQuery is the builder for querying CaseAddress entities.
type CaseAddressQuery struct {
	config
	ctx        *QueryContext
	order      []caseaddress.OrderOption
	inters     []Interceptor
	predicates []predicate.CaseAddress
	withCase   *InvestigationCaseQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CaseAddressQuery builder.
func (_q *CaseAddressQuery) Where(ps ...predicate.CaseAddress) *CaseAddressQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CaseAddressQuery) Limit(limit int) *CaseAddressQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CaseAddressQuery) Offset(offset int) *CaseAddressQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CaseAddressQuery) Unique(unique bool) *CaseAddressQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CaseAddressQuery) Order(o ...caseaddress.OrderOption) *CaseAddressQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCase chains the current query on the "case" edge.
func (_q *CaseAddressQuery) QueryCase() *InvestigationCaseQuery {
	query := (&InvestigationCaseClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(caseaddress.Table, caseaddress.FieldID, selector),
			sqlgraph.To(investigationcase.Table, investigationcase.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, caseaddress.CaseTable, caseaddress.CaseColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CaseAddress entity from the query.
// Returns a *NotFoundError when no CaseAddress was found.
func (_q *CaseAddressQuery) First(ctx context.Context) (*CaseAddress, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{caseaddress.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CaseAddressQuery) FirstX(ctx context.Context) *CaseAddress {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CaseAddress ID from the query.
// Returns a *NotFoundError when no CaseAddress ID was found.
func (_q *CaseAddressQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{caseaddress.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CaseAddressQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CaseAddress entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CaseAddress entity is found.
// Returns a *NotFoundError when no CaseAddress entities are found.
func (_q *CaseAddressQuery) Only(ctx context.Context) (*CaseAddress, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{caseaddress.Label}
	default:
		return nil, &NotSingularError{caseaddress.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CaseAddressQuery) OnlyX(ctx context.Context) *CaseAddress {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CaseAddress ID in the query.
// Returns a *NotSingularError when more than one CaseAddress ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CaseAddressQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{caseaddress.Label}
	default:
		err = &NotSingularError{caseaddress.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CaseAddressQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CaseAddresses.
func (_q *CaseAddressQuery) All(ctx context.Context) ([]*CaseAddress, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CaseAddress, *CaseAddressQuery]()
	return withInterceptors[[]*CaseAddress](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CaseAddressQuery) AllX(ctx context.Context) []*CaseAddress {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CaseAddress IDs.
func (_q *CaseAddressQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(caseaddress.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CaseAddressQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CaseAddressQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CaseAddressQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CaseAddressQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CaseAddressQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CaseAddressQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CaseAddressQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CaseAddressQuery) Clone() *CaseAddressQuery {
	if _q == nil {
		return nil
	}
	return &CaseAddressQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]caseaddress.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.CaseAddress{}, _q.predicates...),
		withCase:   _q.withCase.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCase tells the query-builder to eager-load the nodes that are connected to
// the "case" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CaseAddressQuery) WithCase(opts ...func(*InvestigationCaseQuery)) *CaseAddressQuery {
	query := (&InvestigationCaseClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCase = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CaseID uuid.UUID `json:"case_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CaseAddress.Query().
//		GroupBy(caseaddress.FieldCaseID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CaseAddressQuery) GroupBy(field string, fields ...string) *CaseAddressGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CaseAddressGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = caseaddress.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CaseID uuid.UUID `json:"case_id,omitempty"`
//	}
//
//	client.CaseAddress.Query().
//		Select(caseaddress.FieldCaseID).
//		Scan(ctx, &v)
func (_q *CaseAddressQuery) Select(fields ...string) *CaseAddressSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CaseAddressSelect{CaseAddressQuery: _q}
	sbuild.label = caseaddress.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CaseAddressSelect configured with the given aggregations.
func (_q *CaseAddressQuery) Aggregate(fns ...AggregateFunc) *CaseAddressSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CaseAddressQuery) prepareQuery(ctx context.Context) error {
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
		if !caseaddress.ValidColumn(f) {
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

func (_q *CaseAddressQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CaseAddress, error) {
	var (
		nodes       = []*CaseAddress{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withCase != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CaseAddress).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CaseAddress{config: _q.config}
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
	if query := _q.withCase; query != nil {
		if err := _q.loadCase(ctx, query, nodes, nil,
			func(n *CaseAddress, e *InvestigationCase) { n.Edges.Case = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CaseAddressQuery) loadCase(ctx context.Context, query *InvestigationCaseQuery, nodes []*CaseAddress, init func(*CaseAddress), assign func(*CaseAddress, *InvestigationCase)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*CaseAddress)
	for i := range nodes {
		fk := nodes[i].CaseID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(investigationcase.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "case_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *CaseAddressQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CaseAddressQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(caseaddress.Table, caseaddress.Columns, sqlgraph.NewFieldSpec(caseaddress.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, caseaddress.FieldID)
		for i := range fields {
			if fields[i] != caseaddress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCase != nil {
			_spec.Node.AddColumnOnce(caseaddress.FieldCaseID)
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

func (_q *CaseAddressQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(caseaddress.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = caseaddress.Columns
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

// CaseAddressGroupBy is the group-by builder for CaseAddress entities.
type CaseAddressGroupBy struct {
	selector
	build *CaseAddressQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CaseAddressGroupBy) Aggregate(fns ...AggregateFunc) *CaseAddressGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CaseAddressGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CaseAddressQuery, *CaseAddressGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CaseAddressGroupBy) sqlScan(ctx context.Context, root *CaseAddressQuery, v any) error {
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

// CaseAddressSelect is the builder for selecting fields of CaseAddress entities.
type CaseAddressSelect struct {
	*CaseAddressQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CaseAddressSelect) Aggregate(fns ...AggregateFunc) *CaseAddressSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CaseAddressSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CaseAddressQuery, *CaseAddressSelect](ctx, _s.CaseAddressQuery, _s, _s.inters, v)
}

func (_s *CaseAddressSelect) sqlScan(ctx context.Context, root *CaseAddressQuery, v any) error {
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
