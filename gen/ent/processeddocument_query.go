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
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/folder"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/processeddocument"
)

// ProcessedDocumentQuery is the builder for querying ProcessedDocument entities.
type ProcessedDocumentQuery struct {
	config
	ctx        *QueryContext
	order      []processeddocument.OrderOption
	inters     []Interceptor
	predicates []predicate.ProcessedDocument
	withFolder *FolderQuery
	withCase   *InvestigationCaseQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ProcessedDocumentQuery builder.
func (_q *ProcessedDocumentQuery) Where(ps ...predicate.ProcessedDocument) *ProcessedDocumentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ProcessedDocumentQuery) Limit(limit int) *ProcessedDocumentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ProcessedDocumentQuery) Offset(offset int) *ProcessedDocumentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ProcessedDocumentQuery) Unique(unique bool) *ProcessedDocumentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ProcessedDocumentQuery) Order(o ...processeddocument.OrderOption) *ProcessedDocumentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryFolder chains the current query on the "folder" edge.
func (_q *ProcessedDocumentQuery) QueryFolder() *FolderQuery {
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
			sqlgraph.From(processeddocument.Table, processeddocument.FieldID, selector),
			sqlgraph.To(folder.Table, folder.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processeddocument.FolderTable, processeddocument.FolderColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCase chains the current query on the "case" edge.
func (_q *ProcessedDocumentQuery) QueryCase() *InvestigationCaseQuery {
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
			sqlgraph.From(processeddocument.Table, processeddocument.FieldID, selector),
			sqlgraph.To(investigationcase.Table, investigationcase.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processeddocument.CaseTable, processeddocument.CaseColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ProcessedDocument entity from the query.
// Returns a *NotFoundError when no ProcessedDocument was found.
func (_q *ProcessedDocumentQuery) First(ctx context.Context) (*ProcessedDocument, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{processeddocument.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ProcessedDocumentQuery) FirstX(ctx context.Context) *ProcessedDocument {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ProcessedDocument ID from the query.
// Returns a *NotFoundError when no ProcessedDocument ID was found.
func (_q *ProcessedDocumentQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{processeddocument.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ProcessedDocumentQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ProcessedDocument entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ProcessedDocument entity is found.
// Returns a *NotFoundError when no ProcessedDocument entities are found.
func (_q *ProcessedDocumentQuery) Only(ctx context.Context) (*ProcessedDocument, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{processeddocument.Label}
	default:
		return nil, &NotSingularError{processeddocument.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ProcessedDocumentQuery) OnlyX(ctx context.Context) *ProcessedDocument {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ProcessedDocument ID in the query.
// Returns a *NotSingularError when more than one ProcessedDocument ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ProcessedDocumentQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{processeddocument.Label}
	default:
		err = &NotSingularError{processeddocument.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ProcessedDocumentQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ProcessedDocuments.
func (_q *ProcessedDocumentQuery) All(ctx context.Context) ([]*ProcessedDocument, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ProcessedDocument, *ProcessedDocumentQuery]()
	return withInterceptors[[]*ProcessedDocument](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ProcessedDocumentQuery) AllX(ctx context.Context) []*ProcessedDocument {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ProcessedDocument IDs.
func (_q *ProcessedDocumentQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(processeddocument.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ProcessedDocumentQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ProcessedDocumentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ProcessedDocumentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ProcessedDocumentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ProcessedDocumentQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ProcessedDocumentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ProcessedDocumentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ProcessedDocumentQuery) Clone() *ProcessedDocumentQuery {
	if _q == nil {
		return nil
	}
	return &ProcessedDocumentQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]processeddocument.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.ProcessedDocument{}, _q.predicates...),
		withFolder: _q.withFolder.Clone(),
		withCase:   _q.withCase.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithFolder tells the query-builder to eager-load the nodes that are connected to
// the "folder" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ProcessedDocumentQuery) WithFolder(opts ...func(*FolderQuery)) *ProcessedDocumentQuery {
	query := (&FolderClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFolder = query
	return _q
}

// WithCase tells the query-builder to eager-load the nodes that are connected to
// the "case" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ProcessedDocumentQuery) WithCase(opts ...func(*InvestigationCaseQuery)) *ProcessedDocumentQuery {
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
//		FolderID uuid.UUID `json:"folder_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ProcessedDocument.Query().
//		GroupBy(processeddocument.FieldFolderID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ProcessedDocumentQuery) GroupBy(field string, fields ...string) *ProcessedDocumentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ProcessedDocumentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = processeddocument.Label
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
//	client.ProcessedDocument.Query().
//		Select(processeddocument.FieldFolderID).
//		Scan(ctx, &v)
func (_q *ProcessedDocumentQuery) Select(fields ...string) *ProcessedDocumentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ProcessedDocumentSelect{ProcessedDocumentQuery: _q}
	sbuild.label = processeddocument.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ProcessedDocumentSelect configured with the given aggregations.
func (_q *ProcessedDocumentQuery) Aggregate(fns ...AggregateFunc) *ProcessedDocumentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ProcessedDocumentQuery) prepareQuery(ctx context.Context) error {
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
		if !processeddocument.ValidColumn(f) {
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

func (_q *ProcessedDocumentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ProcessedDocument, error) {
	var (
		nodes       = []*ProcessedDocument{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withFolder != nil,
			_q.withCase != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ProcessedDocument).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ProcessedDocument{config: _q.config}
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
			func(n *ProcessedDocument, e *Folder) { n.Edges.Folder = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCase; query != nil {
		if err := _q.loadCase(ctx, query, nodes, nil,
			func(n *ProcessedDocument, e *InvestigationCase) { n.Edges.Case = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ProcessedDocumentQuery) loadFolder(ctx context.Context, query *FolderQuery, nodes []*ProcessedDocument, init func(*ProcessedDocument), assign func(*ProcessedDocument, *Folder)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ProcessedDocument)
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
func (_q *ProcessedDocumentQuery) loadCase(ctx context.Context, query *InvestigationCaseQuery, nodes []*ProcessedDocument, init func(*ProcessedDocument), assign func(*ProcessedDocument, *InvestigationCase)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ProcessedDocument)
	for i := range nodes {
		if nodes[i].CaseID == nil {
			continue
		}
		fk := *nodes[i].CaseID
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

func (_q *ProcessedDocumentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ProcessedDocumentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(processeddocument.Table, processeddocument.Columns, sqlgraph.NewFieldSpec(processeddocument.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processeddocument.FieldID)
		for i := range fields {
			if fields[i] != processeddocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withFolder != nil {
			_spec.Node.AddColumnOnce(processeddocument.FieldFolderID)
		}
		if _q.withCase != nil {
			_spec.Node.AddColumnOnce(processeddocument.FieldCaseID)
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

func (_q *ProcessedDocumentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(processeddocument.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = processeddocument.Columns
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

// ProcessedDocumentGroupBy is the group-by builder for ProcessedDocument entities.
type ProcessedDocumentGroupBy struct {
	selector
	build *ProcessedDocumentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ProcessedDocumentGroupBy) Aggregate(fns ...AggregateFunc) *ProcessedDocumentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ProcessedDocumentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProcessedDocumentQuery, *ProcessedDocumentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ProcessedDocumentGroupBy) sqlScan(ctx context.Context, root *ProcessedDocumentQuery, v any) error {
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

// ProcessedDocumentSelect is the builder for selecting fields of ProcessedDocument entities.
type ProcessedDocumentSelect struct {
	*ProcessedDocumentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ProcessedDocumentSelect) Aggregate(fns ...AggregateFunc) *ProcessedDocumentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ProcessedDocumentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProcessedDocumentQuery, *ProcessedDocumentSelect](ctx, _s.ProcessedDocumentQuery, _s, _s.inters, v)
}

func (_s *ProcessedDocumentSelect) sqlScan(ctx context.Context, root *ProcessedDocumentQuery, v any) error {
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
