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
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseactivity"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
)

// CaseActivityQuery is the builder for querying CaseActivity entities.
type CaseActivityQuery struct {
	config
	ctx        *QueryContext
	order      []caseactivity.OrderOption
	inters     []Interceptor
	predicates []predicate.CaseActivity
	withCase   *InvestigationCaseQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CaseActivityQuery builder.
func (_q *CaseActivityQuery) Where(ps ...predicate.CaseActivity) *CaseActivityQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CaseActivityQuery) Limit(limit int) *CaseActivityQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CaseActivityQuery) Offset(offset int) *CaseActivityQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CaseActivityQuery) Unique(unique bool) *CaseActivityQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CaseActivityQuery) Order(o ...caseactivity.OrderOption) *CaseActivityQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCase chains the current query on the "case" edge.
func (_q *CaseActivityQuery) QueryCase() *InvestigationCaseQuery {
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
			sqlgraph.From(caseactivity.Table, caseactivity.FieldID, selector),
			sqlgraph.To(investigationcase.Table, investigationcase.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, caseactivity.CaseTable, caseactivity.CaseColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CaseActivity entity from the query.
// Returns a *NotFoundError when no CaseActivity was found.
func (_q *CaseActivityQuery) First(ctx context.Context) (*CaseActivity, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{caseactivity.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CaseActivityQuery) FirstX(ctx context.Context) *CaseActivity {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CaseActivity ID from the query.
// Returns a *NotFoundError when no CaseActivity ID was found.
func (_q *CaseActivityQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{caseactivity.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CaseActivityQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CaseActivity entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CaseActivity entity is found.
// Returns a *NotFoundError when no CaseActivity entities are found.
func (_q *CaseActivityQuery) Only(ctx context.Context) (*CaseActivity, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{caseactivity.Label}
	default:
		return nil, &NotSingularError{caseactivity.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CaseActivityQuery) OnlyX(ctx context.Context) *CaseActivity {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CaseActivity ID in the query.
// Returns a *NotSingularError when more than one CaseActivity ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CaseActivityQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{caseactivity.Label}
	default:
		err = &NotSingularError{caseactivity.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CaseActivityQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CaseActivities.
func (_q *CaseActivityQuery) All(ctx context.Context) ([]*CaseActivity, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CaseActivity, *CaseActivityQuery]()
	return withInterceptors[[]*CaseActivity](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CaseActivityQuery) AllX(ctx context.Context) []*CaseActivity {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CaseActivity IDs.
func (_q *CaseActivityQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(caseactivity.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CaseActivityQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CaseActivityQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CaseActivityQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CaseActivityQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CaseActivityQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CaseActivityQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CaseActivityQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CaseActivityQuery) Clone() *CaseActivityQuery {
	if _q == nil {
		return nil
	}
	return &CaseActivityQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]caseactivity.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.CaseActivity{}, _q.predicates...),
		withCase:   _q.withCase.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCase tells the query-builder to eager-load the nodes that are connected to
// the "case" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CaseActivityQuery) WithCase(opts ...func(*InvestigationCaseQuery)) *CaseActivityQuery {
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
//	client.CaseActivity.Query().
//		GroupBy(caseactivity.FieldCaseID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CaseActivityQuery) GroupBy(field string, fields ...string) *CaseActivityGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CaseActivityGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = caseactivity.Label
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
//	client.CaseActivity.Query().
//		Select(caseactivity.FieldCaseID).
//		Scan(ctx, &v)
func (_q *CaseActivityQuery) Select(fields ...string) *CaseActivitySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CaseActivitySelect{CaseActivityQuery: _q}
	sbuild.label = caseactivity.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CaseActivitySelect configured with the given aggregations.
func (_q *CaseActivityQuery) Aggregate(fns ...AggregateFunc) *CaseActivitySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CaseActivityQuery) prepareQuery(ctx context.Context) error {
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
		if !caseactivity.ValidColumn(f) {
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

func (_q *CaseActivityQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CaseActivity, error) {
	var (
		nodes       = []*CaseActivity{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withCase != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CaseActivity).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CaseActivity{config: _q.config}
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
			func(n *CaseActivity, e *InvestigationCase) { n.Edges.Case = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CaseActivityQuery) loadCase(ctx context.Context, query *InvestigationCaseQuery, nodes []*CaseActivity, init func(*CaseActivity), assign func(*CaseActivity, *InvestigationCase)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*CaseActivity)
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

func (_q *CaseActivityQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CaseActivityQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(caseactivity.Table, caseactivity.Columns, sqlgraph.NewFieldSpec(caseactivity.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, caseactivity.FieldID)
		for i := range fields {
			if fields[i] != caseactivity.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCase != nil {
			_spec.Node.AddColumnOnce(caseactivity.FieldCaseID)
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

func (_q *CaseActivityQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(caseactivity.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = caseactivity.Columns
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

// CaseActivityGroupBy is the group-by builder for CaseActivity entities.
type CaseActivityGroupBy struct {
	selector
	build *CaseActivityQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CaseActivityGroupBy) Aggregate(fns ...AggregateFunc) *CaseActivityGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CaseActivityGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CaseActivityQuery, *CaseActivityGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CaseActivityGroupBy) sqlScan(ctx context.Context, root *CaseActivityQuery, v any) error {
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

// CaseActivitySelect is the builder for selecting fields of CaseActivity entities.
type CaseActivitySelect struct {
	*CaseActivityQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CaseActivitySelect) Aggregate(fns ...AggregateFunc) *CaseActivitySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CaseActivitySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CaseActivityQuery, *CaseActivitySelect](ctx, _s.CaseActivityQuery, _s, _s.inters, v)
}

func (_s *CaseActivitySelect) sqlScan(ctx context.Context, root *CaseActivityQuery, v any) error {
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
