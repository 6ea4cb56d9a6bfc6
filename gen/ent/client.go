// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseactivity"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseaddress"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseowner"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/folder"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/processeddocument"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/registrycredit"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/vehicle"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CaseActivity is the client for interacting with the CaseActivity builders.
	CaseActivity *CaseActivityClient
	// CaseAddress is the client for interacting with the CaseAddress builders.
	CaseAddress *CaseAddressClient
	// CaseOwner is the client for interacting with the CaseOwner builders.
	CaseOwner *CaseOwnerClient
	// Folder is the client for interacting with the Folder builders.
	Folder *FolderClient
	// InvestigationCase is the client for interacting with the InvestigationCase builders.
	InvestigationCase *InvestigationCaseClient
	// ProcessedDocument is the client for interacting with the ProcessedDocument builders.
	ProcessedDocument *ProcessedDocumentClient
	// RegistryCredit is the client for interacting with the RegistryCredit builders.
	RegistryCredit *RegistryCreditClient
	// Vehicle is the client for interacting with the Vehicle builders.
	Vehicle *VehicleClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CaseActivity = NewCaseActivityClient(c.config)
	c.CaseAddress = NewCaseAddressClient(c.config)
	c.CaseOwner = NewCaseOwnerClient(c.config)
	c.Folder = NewFolderClient(c.config)
	c.InvestigationCase = NewInvestigationCaseClient(c.config)
	c.ProcessedDocument = NewProcessedDocumentClient(c.config)
	c.RegistryCredit = NewRegistryCreditClient(c.config)
	c.Vehicle = NewVehicleClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		CaseActivity:      NewCaseActivityClient(cfg),
		CaseAddress:       NewCaseAddressClient(cfg),
		CaseOwner:         NewCaseOwnerClient(cfg),
		Folder:            NewFolderClient(cfg),
		InvestigationCase: NewInvestigationCaseClient(cfg),
		ProcessedDocument: NewProcessedDocumentClient(cfg),
		RegistryCredit:    NewRegistryCreditClient(cfg),
		Vehicle:           NewVehicleClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		CaseActivity:      NewCaseActivityClient(cfg),
		CaseAddress:       NewCaseAddressClient(cfg),
		CaseOwner:         NewCaseOwnerClient(cfg),
		Folder:            NewFolderClient(cfg),
		InvestigationCase: NewInvestigationCaseClient(cfg),
		ProcessedDocument: NewProcessedDocumentClient(cfg),
		RegistryCredit:    NewRegistryCreditClient(cfg),
		Vehicle:           NewVehicleClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CaseActivity.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.CaseActivity, c.CaseAddress, c.CaseOwner, c.Folder, c.InvestigationCase,
		c.ProcessedDocument, c.RegistryCredit, c.Vehicle,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CaseActivity, c.CaseAddress, c.CaseOwner, c.Folder, c.InvestigationCase,
		c.ProcessedDocument, c.RegistryCredit, c.Vehicle,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CaseActivityMutation:
		return c.CaseActivity.mutate(ctx, m)
	case *CaseAddressMutation:
		return c.CaseAddress.mutate(ctx, m)
	case *CaseOwnerMutation:
		return c.CaseOwner.mutate(ctx, m)
	case *FolderMutation:
		return c.Folder.mutate(ctx, m)
	case *InvestigationCaseMutation:
		return c.InvestigationCase.mutate(ctx, m)
	case *ProcessedDocumentMutation:
		return c.ProcessedDocument.mutate(ctx, m)
	case *RegistryCreditMutation:
		return c.RegistryCredit.mutate(ctx, m)
	case *VehicleMutation:
		return c.Vehicle.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CaseActivityClient is a client for the CaseActivity schema.
type CaseActivityClient struct {
	config
}

// NewCaseActivityClient returns a client for the CaseActivity from the given config.
func NewCaseActivityClient(c config) *CaseActivityClient {
	return &CaseActivityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `caseactivity.Hooks(f(g(h())))`.
func (c *CaseActivityClient) Use(hooks ...Hook) {
	c.hooks.CaseActivity = append(c.hooks.CaseActivity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `caseactivity.Intercept(f(g(h())))`.
func (c *CaseActivityClient) Intercept(interceptors ...Interceptor) {
	c.inters.CaseActivity = append(c.inters.CaseActivity, interceptors...)
}

// Create returns a builder for creating a CaseActivity entity.
func (c *CaseActivityClient) Create() *CaseActivityCreate {
	mutation := newCaseActivityMutation(c.config, OpCreate)
	return &CaseActivityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CaseActivity entities.
func (c *CaseActivityClient) CreateBulk(builders ...*CaseActivityCreate) *CaseActivityCreateBulk {
	return &CaseActivityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CaseActivityClient) MapCreateBulk(slice any, setFunc func(*CaseActivityCreate, int)) *CaseActivityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CaseActivityCreateBulk{err: fmt.Errorf("calling to CaseActivityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CaseActivityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CaseActivityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CaseActivity.
func (c *CaseActivityClient) Update() *CaseActivityUpdate {
	mutation := newCaseActivityMutation(c.config, OpUpdate)
	return &CaseActivityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CaseActivityClient) UpdateOne(_m *CaseActivity) *CaseActivityUpdateOne {
	mutation := newCaseActivityMutation(c.config, OpUpdateOne, withCaseActivity(_m))
	return &CaseActivityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CaseActivityClient) UpdateOneID(id uuid.UUID) *CaseActivityUpdateOne {
	mutation := newCaseActivityMutation(c.config, OpUpdateOne, withCaseActivityID(id))
	return &CaseActivityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CaseActivity.
func (c *CaseActivityClient) Delete() *CaseActivityDelete {
	mutation := newCaseActivityMutation(c.config, OpDelete)
	return &CaseActivityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CaseActivityClient) DeleteOne(_m *CaseActivity) *CaseActivityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CaseActivityClient) DeleteOneID(id uuid.UUID) *CaseActivityDeleteOne {
	builder := c.Delete().Where(caseactivity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CaseActivityDeleteOne{builder}
}

// Query returns a query builder for CaseActivity.
func (c *CaseActivityClient) Query() *CaseActivityQuery {
	return &CaseActivityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCaseActivity},
		inters: c.Interceptors(),
	}
}

// Get returns a CaseActivity entity by its id.
func (c *CaseActivityClient) Get(ctx context.Context, id uuid.UUID) (*CaseActivity, error) {
	return c.Query().Where(caseactivity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CaseActivityClient) GetX(ctx context.Context, id uuid.UUID) *CaseActivity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCase queries the case edge of a CaseActivity.
func (c *CaseActivityClient) QueryCase(_m *CaseActivity) *InvestigationCaseQuery {
	query := (&InvestigationCaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(caseactivity.Table, caseactivity.FieldID, id),
			sqlgraph.To(investigationcase.Table, investigationcase.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, caseactivity.CaseTable, caseactivity.CaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CaseActivityClient) Hooks() []Hook {
	return c.hooks.CaseActivity
}

// Interceptors returns the client interceptors.
func (c *CaseActivityClient) Interceptors() []Interceptor {
	return c.inters.CaseActivity
}

func (c *CaseActivityClient) mutate(ctx context.Context, m *CaseActivityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CaseActivityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CaseActivityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CaseActivityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CaseActivityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CaseActivity mutation op: %q", m.Op())
	}
}

// CaseAddressClient is a client for the CaseAddress schema.
type CaseAddressClient struct {
	config
}

// NewCaseAddressClient returns a client for the CaseAddress from the given config.
func NewCaseAddressClient(c config) *CaseAddressClient {
	return &CaseAddressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `caseaddress.Hooks(f(g(h())))`.
func (c *CaseAddressClient) Use(hooks ...Hook) {
	c.hooks.CaseAddress = append(c.hooks.CaseAddress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `caseaddress.Intercept(f(g(h())))`.
func (c *CaseAddressClient) Intercept(interceptors ...Interceptor) {
	c.inters.CaseAddress = append(c.inters.CaseAddress, interceptors...)
}

// Create returns a builder for creating a CaseAddress entity.
func (c *CaseAddressClient) Create() *CaseAddressCreate {
	mutation := newCaseAddressMutation(c.config, OpCreate)
	return &CaseAddressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CaseAddress entities.
func (c *CaseAddressClient) CreateBulk(builders ...*CaseAddressCreate) *CaseAddressCreateBulk {
	return &CaseAddressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CaseAddressClient) MapCreateBulk(slice any, setFunc func(*CaseAddressCreate, int)) *CaseAddressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CaseAddressCreateBulk{err: fmt.Errorf("calling to CaseAddressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CaseAddressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CaseAddressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CaseAddress.
func (c *CaseAddressClient) Update() *CaseAddressUpdate {
	mutation := newCaseAddressMutation(c.config, OpUpdate)
	return &CaseAddressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CaseAddressClient) UpdateOne(_m *CaseAddress) *CaseAddressUpdateOne {
	mutation := newCaseAddressMutation(c.config, OpUpdateOne, withCaseAddress(_m))
	return &CaseAddressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CaseAddressClient) UpdateOneID(id uuid.UUID) *CaseAddressUpdateOne {
	mutation := newCaseAddressMutation(c.config, OpUpdateOne, withCaseAddressID(id))
	return &CaseAddressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CaseAddress.
func (c *CaseAddressClient) Delete() *CaseAddressDelete {
	mutation := newCaseAddressMutation(c.config, OpDelete)
	return &CaseAddressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CaseAddressClient) DeleteOne(_m *CaseAddress) *CaseAddressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CaseAddressClient) DeleteOneID(id uuid.UUID) *CaseAddressDeleteOne {
	builder := c.Delete().Where(caseaddress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CaseAddressDeleteOne{builder}
}

// Query returns a query builder for CaseAddress.
func (c *CaseAddressClient) Query() *CaseAddressQuery {
	return &CaseAddressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCaseAddress},
		inters: c.Interceptors(),
	}
}

// Get returns a CaseAddress entity by its id.
func (c *CaseAddressClient) Get(ctx context.Context, id uuid.UUID) (*CaseAddress, error) {
	return c.Query().Where(caseaddress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CaseAddressClient) GetX(ctx context.Context, id uuid.UUID) *CaseAddress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCase queries the case edge of a CaseAddress.
func (c *CaseAddressClient) QueryCase(_m *CaseAddress) *InvestigationCaseQuery {
	query := (&InvestigationCaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(caseaddress.Table, caseaddress.FieldID, id),
			sqlgraph.To(investigationcase.Table, investigationcase.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, caseaddress.CaseTable, caseaddress.CaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CaseAddressClient) Hooks() []Hook {
	return c.hooks.CaseAddress
}

// Interceptors returns the client interceptors.
func (c *CaseAddressClient) Interceptors() []Interceptor {
	return c.inters.CaseAddress
}

func (c *CaseAddressClient) mutate(ctx context.Context, m *CaseAddressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CaseAddressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CaseAddressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CaseAddressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CaseAddressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CaseAddress mutation op: %q", m.Op())
	}
}

// CaseOwnerClient is a client for the CaseOwner schema.
type CaseOwnerClient struct {
	config
}

// NewCaseOwnerClient returns a client for the CaseOwner from the given config.
func NewCaseOwnerClient(c config) *CaseOwnerClient {
	return &CaseOwnerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `caseowner.Hooks(f(g(h())))`.
func (c *CaseOwnerClient) Use(hooks ...Hook) {
	c.hooks.CaseOwner = append(c.hooks.CaseOwner, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `caseowner.Intercept(f(g(h())))`.
func (c *CaseOwnerClient) Intercept(interceptors ...Interceptor) {
	c.inters.CaseOwner = append(c.inters.CaseOwner, interceptors...)
}

// Create returns a builder for creating a CaseOwner entity.
func (c *CaseOwnerClient) Create() *CaseOwnerCreate {
	mutation := newCaseOwnerMutation(c.config, OpCreate)
	return &CaseOwnerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CaseOwner entities.
func (c *CaseOwnerClient) CreateBulk(builders ...*CaseOwnerCreate) *CaseOwnerCreateBulk {
	return &CaseOwnerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CaseOwnerClient) MapCreateBulk(slice any, setFunc func(*CaseOwnerCreate, int)) *CaseOwnerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CaseOwnerCreateBulk{err: fmt.Errorf("calling to CaseOwnerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CaseOwnerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CaseOwnerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CaseOwner.
func (c *CaseOwnerClient) Update() *CaseOwnerUpdate {
	mutation := newCaseOwnerMutation(c.config, OpUpdate)
	return &CaseOwnerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CaseOwnerClient) UpdateOne(_m *CaseOwner) *CaseOwnerUpdateOne {
	mutation := newCaseOwnerMutation(c.config, OpUpdateOne, withCaseOwner(_m))
	return &CaseOwnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CaseOwnerClient) UpdateOneID(id uuid.UUID) *CaseOwnerUpdateOne {
	mutation := newCaseOwnerMutation(c.config, OpUpdateOne, withCaseOwnerID(id))
	return &CaseOwnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CaseOwner.
func (c *CaseOwnerClient) Delete() *CaseOwnerDelete {
	mutation := newCaseOwnerMutation(c.config, OpDelete)
	return &CaseOwnerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CaseOwnerClient) DeleteOne(_m *CaseOwner) *CaseOwnerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CaseOwnerClient) DeleteOneID(id uuid.UUID) *CaseOwnerDeleteOne {
	builder := c.Delete().Where(caseowner.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CaseOwnerDeleteOne{builder}
}

// Query returns a query builder for CaseOwner.
func (c *CaseOwnerClient) Query() *CaseOwnerQuery {
	return &CaseOwnerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCaseOwner},
		inters: c.Interceptors(),
	}
}

// Get returns a CaseOwner entity by its id.
func (c *CaseOwnerClient) Get(ctx context.Context, id uuid.UUID) (*CaseOwner, error) {
	return c.Query().Where(caseowner.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CaseOwnerClient) GetX(ctx context.Context, id uuid.UUID) *CaseOwner {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCase queries the case edge of a CaseOwner.
func (c *CaseOwnerClient) QueryCase(_m *CaseOwner) *InvestigationCaseQuery {
	query := (&InvestigationCaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(caseowner.Table, caseowner.FieldID, id),
			sqlgraph.To(investigationcase.Table, investigationcase.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, caseowner.CaseTable, caseowner.CaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CaseOwnerClient) Hooks() []Hook {
	return c.hooks.CaseOwner
}

// Interceptors returns the client interceptors.
func (c *CaseOwnerClient) Interceptors() []Interceptor {
	return c.inters.CaseOwner
}

func (c *CaseOwnerClient) mutate(ctx context.Context, m *CaseOwnerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CaseOwnerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CaseOwnerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CaseOwnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CaseOwnerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CaseOwner mutation op: %q", m.Op())
	}
}

// FolderClient is a client for the Folder schema.
type FolderClient struct {
	config
}

// NewFolderClient returns a client for the Folder from the given config.
func NewFolderClient(c config) *FolderClient {
	return &FolderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `folder.Hooks(f(g(h())))`.
func (c *FolderClient) Use(hooks ...Hook) {
	c.hooks.Folder = append(c.hooks.Folder, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `folder.Intercept(f(g(h())))`.
func (c *FolderClient) Intercept(interceptors ...Interceptor) {
	c.inters.Folder = append(c.inters.Folder, interceptors...)
}

// Create returns a builder for creating a Folder entity.
func (c *FolderClient) Create() *FolderCreate {
	mutation := newFolderMutation(c.config, OpCreate)
	return &FolderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Folder entities.
func (c *FolderClient) CreateBulk(builders ...*FolderCreate) *FolderCreateBulk {
	return &FolderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FolderClient) MapCreateBulk(slice any, setFunc func(*FolderCreate, int)) *FolderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FolderCreateBulk{err: fmt.Errorf("calling to FolderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FolderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FolderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Folder.
func (c *FolderClient) Update() *FolderUpdate {
	mutation := newFolderMutation(c.config, OpUpdate)
	return &FolderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FolderClient) UpdateOne(_m *Folder) *FolderUpdateOne {
	mutation := newFolderMutation(c.config, OpUpdateOne, withFolder(_m))
	return &FolderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FolderClient) UpdateOneID(id uuid.UUID) *FolderUpdateOne {
	mutation := newFolderMutation(c.config, OpUpdateOne, withFolderID(id))
	return &FolderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Folder.
func (c *FolderClient) Delete() *FolderDelete {
	mutation := newFolderMutation(c.config, OpDelete)
	return &FolderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FolderClient) DeleteOne(_m *Folder) *FolderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FolderClient) DeleteOneID(id uuid.UUID) *FolderDeleteOne {
	builder := c.Delete().Where(folder.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FolderDeleteOne{builder}
}

// Query returns a query builder for Folder.
func (c *FolderClient) Query() *FolderQuery {
	return &FolderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFolder},
		inters: c.Interceptors(),
	}
}

// Get returns a Folder entity by its id.
func (c *FolderClient) Get(ctx context.Context, id uuid.UUID) (*Folder, error) {
	return c.Query().Where(folder.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FolderClient) GetX(ctx context.Context, id uuid.UUID) *Folder {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocuments queries the documents edge of a Folder.
func (c *FolderClient) QueryDocuments(_m *Folder) *ProcessedDocumentQuery {
	query := (&ProcessedDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(folder.Table, folder.FieldID, id),
			sqlgraph.To(processeddocument.Table, processeddocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, folder.DocumentsTable, folder.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCases queries the cases edge of a Folder.
func (c *FolderClient) QueryCases(_m *Folder) *InvestigationCaseQuery {
	query := (&InvestigationCaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(folder.Table, folder.FieldID, id),
			sqlgraph.To(investigationcase.Table, investigationcase.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, folder.CasesTable, folder.CasesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FolderClient) Hooks() []Hook {
	return c.hooks.Folder
}

// Interceptors returns the client interceptors.
func (c *FolderClient) Interceptors() []Interceptor {
	return c.inters.Folder
}

func (c *FolderClient) mutate(ctx context.Context, m *FolderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FolderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FolderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FolderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FolderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Folder mutation op: %q", m.Op())
	}
}

// InvestigationCaseClient is a client for the InvestigationCase schema.
type InvestigationCaseClient struct {
	config
}

// NewInvestigationCaseClient returns a client for the InvestigationCase from the given config.
func NewInvestigationCaseClient(c config) *InvestigationCaseClient {
	return &InvestigationCaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `investigationcase.Hooks(f(g(h())))`.
func (c *InvestigationCaseClient) Use(hooks ...Hook) {
	c.hooks.InvestigationCase = append(c.hooks.InvestigationCase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `investigationcase.Intercept(f(g(h())))`.
func (c *InvestigationCaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.InvestigationCase = append(c.inters.InvestigationCase, interceptors...)
}

// Create returns a builder for creating a InvestigationCase entity.
func (c *InvestigationCaseClient) Create() *InvestigationCaseCreate {
	mutation := newInvestigationCaseMutation(c.config, OpCreate)
	return &InvestigationCaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InvestigationCase entities.
func (c *InvestigationCaseClient) CreateBulk(builders ...*InvestigationCaseCreate) *InvestigationCaseCreateBulk {
	return &InvestigationCaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvestigationCaseClient) MapCreateBulk(slice any, setFunc func(*InvestigationCaseCreate, int)) *InvestigationCaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvestigationCaseCreateBulk{err: fmt.Errorf("calling to InvestigationCaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvestigationCaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvestigationCaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InvestigationCase.
func (c *InvestigationCaseClient) Update() *InvestigationCaseUpdate {
	mutation := newInvestigationCaseMutation(c.config, OpUpdate)
	return &InvestigationCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvestigationCaseClient) UpdateOne(_m *InvestigationCase) *InvestigationCaseUpdateOne {
	mutation := newInvestigationCaseMutation(c.config, OpUpdateOne, withInvestigationCase(_m))
	return &InvestigationCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvestigationCaseClient) UpdateOneID(id uuid.UUID) *InvestigationCaseUpdateOne {
	mutation := newInvestigationCaseMutation(c.config, OpUpdateOne, withInvestigationCaseID(id))
	return &InvestigationCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InvestigationCase.
func (c *InvestigationCaseClient) Delete() *InvestigationCaseDelete {
	mutation := newInvestigationCaseMutation(c.config, OpDelete)
	return &InvestigationCaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvestigationCaseClient) DeleteOne(_m *InvestigationCase) *InvestigationCaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvestigationCaseClient) DeleteOneID(id uuid.UUID) *InvestigationCaseDeleteOne {
	builder := c.Delete().Where(investigationcase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvestigationCaseDeleteOne{builder}
}

// Query returns a query builder for InvestigationCase.
func (c *InvestigationCaseClient) Query() *InvestigationCaseQuery {
	return &InvestigationCaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvestigationCase},
		inters: c.Interceptors(),
	}
}

// Get returns a InvestigationCase entity by its id.
func (c *InvestigationCaseClient) Get(ctx context.Context, id uuid.UUID) (*InvestigationCase, error) {
	return c.Query().Where(investigationcase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvestigationCaseClient) GetX(ctx context.Context, id uuid.UUID) *InvestigationCase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFolder queries the folder edge of a InvestigationCase.
func (c *InvestigationCaseClient) QueryFolder(_m *InvestigationCase) *FolderQuery {
	query := (&FolderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(investigationcase.Table, investigationcase.FieldID, id),
			sqlgraph.To(folder.Table, folder.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, investigationcase.FolderTable, investigationcase.FolderColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVehicle queries the vehicle edge of a InvestigationCase.
func (c *InvestigationCaseClient) QueryVehicle(_m *InvestigationCase) *VehicleQuery {
	query := (&VehicleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(investigationcase.Table, investigationcase.FieldID, id),
			sqlgraph.To(vehicle.Table, vehicle.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, investigationcase.VehicleTable, investigationcase.VehicleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOwners queries the owners edge of a InvestigationCase.
func (c *InvestigationCaseClient) QueryOwners(_m *InvestigationCase) *CaseOwnerQuery {
	query := (&CaseOwnerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(investigationcase.Table, investigationcase.FieldID, id),
			sqlgraph.To(caseowner.Table, caseowner.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, investigationcase.OwnersTable, investigationcase.OwnersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAddresses queries the addresses edge of a InvestigationCase.
func (c *InvestigationCaseClient) QueryAddresses(_m *InvestigationCase) *CaseAddressQuery {
	query := (&CaseAddressClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(investigationcase.Table, investigationcase.FieldID, id),
			sqlgraph.To(caseaddress.Table, caseaddress.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, investigationcase.AddressesTable, investigationcase.AddressesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryActivities queries the activities edge of a InvestigationCase.
func (c *InvestigationCaseClient) QueryActivities(_m *InvestigationCase) *CaseActivityQuery {
	query := (&CaseActivityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(investigationcase.Table, investigationcase.FieldID, id),
			sqlgraph.To(caseactivity.Table, caseactivity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, investigationcase.ActivitiesTable, investigationcase.ActivitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocuments queries the documents edge of a InvestigationCase.
func (c *InvestigationCaseClient) QueryDocuments(_m *InvestigationCase) *ProcessedDocumentQuery {
	query := (&ProcessedDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(investigationcase.Table, investigationcase.FieldID, id),
			sqlgraph.To(processeddocument.Table, processeddocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, investigationcase.DocumentsTable, investigationcase.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvestigationCaseClient) Hooks() []Hook {
	return c.hooks.InvestigationCase
}

// Interceptors returns the client interceptors.
func (c *InvestigationCaseClient) Interceptors() []Interceptor {
	return c.inters.InvestigationCase
}

func (c *InvestigationCaseClient) mutate(ctx context.Context, m *InvestigationCaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvestigationCaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvestigationCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvestigationCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvestigationCaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InvestigationCase mutation op: %q", m.Op())
	}
}

// ProcessedDocumentClient is a client for the ProcessedDocument schema.
type ProcessedDocumentClient struct {
	config
}

// NewProcessedDocumentClient returns a client for the ProcessedDocument from the given config.
func NewProcessedDocumentClient(c config) *ProcessedDocumentClient {
	return &ProcessedDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processeddocument.Hooks(f(g(h())))`.
func (c *ProcessedDocumentClient) Use(hooks ...Hook) {
	c.hooks.ProcessedDocument = append(c.hooks.ProcessedDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processeddocument.Intercept(f(g(h())))`.
func (c *ProcessedDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessedDocument = append(c.inters.ProcessedDocument, interceptors...)
}

// Create returns a builder for creating a ProcessedDocument entity.
func (c *ProcessedDocumentClient) Create() *ProcessedDocumentCreate {
	mutation := newProcessedDocumentMutation(c.config, OpCreate)
	return &ProcessedDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessedDocument entities.
func (c *ProcessedDocumentClient) CreateBulk(builders ...*ProcessedDocumentCreate) *ProcessedDocumentCreateBulk {
	return &ProcessedDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessedDocumentClient) MapCreateBulk(slice any, setFunc func(*ProcessedDocumentCreate, int)) *ProcessedDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessedDocumentCreateBulk{err: fmt.Errorf("calling to ProcessedDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessedDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessedDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessedDocument.
func (c *ProcessedDocumentClient) Update() *ProcessedDocumentUpdate {
	mutation := newProcessedDocumentMutation(c.config, OpUpdate)
	return &ProcessedDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessedDocumentClient) UpdateOne(_m *ProcessedDocument) *ProcessedDocumentUpdateOne {
	mutation := newProcessedDocumentMutation(c.config, OpUpdateOne, withProcessedDocument(_m))
	return &ProcessedDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessedDocumentClient) UpdateOneID(id uuid.UUID) *ProcessedDocumentUpdateOne {
	mutation := newProcessedDocumentMutation(c.config, OpUpdateOne, withProcessedDocumentID(id))
	return &ProcessedDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessedDocument.
func (c *ProcessedDocumentClient) Delete() *ProcessedDocumentDelete {
	mutation := newProcessedDocumentMutation(c.config, OpDelete)
	return &ProcessedDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessedDocumentClient) DeleteOne(_m *ProcessedDocument) *ProcessedDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessedDocumentClient) DeleteOneID(id uuid.UUID) *ProcessedDocumentDeleteOne {
	builder := c.Delete().Where(processeddocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessedDocumentDeleteOne{builder}
}

// Query returns a query builder for ProcessedDocument.
func (c *ProcessedDocumentClient) Query() *ProcessedDocumentQuery {
	return &ProcessedDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessedDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessedDocument entity by its id.
func (c *ProcessedDocumentClient) Get(ctx context.Context, id uuid.UUID) (*ProcessedDocument, error) {
	return c.Query().Where(processeddocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessedDocumentClient) GetX(ctx context.Context, id uuid.UUID) *ProcessedDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFolder queries the folder edge of a ProcessedDocument.
func (c *ProcessedDocumentClient) QueryFolder(_m *ProcessedDocument) *FolderQuery {
	query := (&FolderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processeddocument.Table, processeddocument.FieldID, id),
			sqlgraph.To(folder.Table, folder.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processeddocument.FolderTable, processeddocument.FolderColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCase queries the case edge of a ProcessedDocument.
func (c *ProcessedDocumentClient) QueryCase(_m *ProcessedDocument) *InvestigationCaseQuery {
	query := (&InvestigationCaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processeddocument.Table, processeddocument.FieldID, id),
			sqlgraph.To(investigationcase.Table, investigationcase.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processeddocument.CaseTable, processeddocument.CaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessedDocumentClient) Hooks() []Hook {
	return c.hooks.ProcessedDocument
}

// Interceptors returns the client interceptors.
func (c *ProcessedDocumentClient) Interceptors() []Interceptor {
	return c.inters.ProcessedDocument
}

func (c *ProcessedDocumentClient) mutate(ctx context.Context, m *ProcessedDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessedDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessedDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessedDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessedDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessedDocument mutation op: %q", m.Op())
	}
}

// RegistryCreditClient is a client for the RegistryCredit schema.
type RegistryCreditClient struct {
	config
}

// NewRegistryCreditClient returns a client for the RegistryCredit from the given config.
func NewRegistryCreditClient(c config) *RegistryCreditClient {
	return &RegistryCreditClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `registrycredit.Hooks(f(g(h())))`.
func (c *RegistryCreditClient) Use(hooks ...Hook) {
	c.hooks.RegistryCredit = append(c.hooks.RegistryCredit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `registrycredit.Intercept(f(g(h())))`.
func (c *RegistryCreditClient) Intercept(interceptors ...Interceptor) {
	c.inters.RegistryCredit = append(c.inters.RegistryCredit, interceptors...)
}

// Create returns a builder for creating a RegistryCredit entity.
func (c *RegistryCreditClient) Create() *RegistryCreditCreate {
	mutation := newRegistryCreditMutation(c.config, OpCreate)
	return &RegistryCreditCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RegistryCredit entities.
func (c *RegistryCreditClient) CreateBulk(builders ...*RegistryCreditCreate) *RegistryCreditCreateBulk {
	return &RegistryCreditCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RegistryCreditClient) MapCreateBulk(slice any, setFunc func(*RegistryCreditCreate, int)) *RegistryCreditCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RegistryCreditCreateBulk{err: fmt.Errorf("calling to RegistryCreditClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RegistryCreditCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RegistryCreditCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RegistryCredit.
func (c *RegistryCreditClient) Update() *RegistryCreditUpdate {
	mutation := newRegistryCreditMutation(c.config, OpUpdate)
	return &RegistryCreditUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RegistryCreditClient) UpdateOne(_m *RegistryCredit) *RegistryCreditUpdateOne {
	mutation := newRegistryCreditMutation(c.config, OpUpdateOne, withRegistryCredit(_m))
	return &RegistryCreditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RegistryCreditClient) UpdateOneID(id uuid.UUID) *RegistryCreditUpdateOne {
	mutation := newRegistryCreditMutation(c.config, OpUpdateOne, withRegistryCreditID(id))
	return &RegistryCreditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RegistryCredit.
func (c *RegistryCreditClient) Delete() *RegistryCreditDelete {
	mutation := newRegistryCreditMutation(c.config, OpDelete)
	return &RegistryCreditDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RegistryCreditClient) DeleteOne(_m *RegistryCredit) *RegistryCreditDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RegistryCreditClient) DeleteOneID(id uuid.UUID) *RegistryCreditDeleteOne {
	builder := c.Delete().Where(registrycredit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RegistryCreditDeleteOne{builder}
}

// Query returns a query builder for RegistryCredit.
func (c *RegistryCreditClient) Query() *RegistryCreditQuery {
	return &RegistryCreditQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRegistryCredit},
		inters: c.Interceptors(),
	}
}

// Get returns a RegistryCredit entity by its id.
func (c *RegistryCreditClient) Get(ctx context.Context, id uuid.UUID) (*RegistryCredit, error) {
	return c.Query().Where(registrycredit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RegistryCreditClient) GetX(ctx context.Context, id uuid.UUID) *RegistryCredit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RegistryCreditClient) Hooks() []Hook {
	return c.hooks.RegistryCredit
}

// Interceptors returns the client interceptors.
func (c *RegistryCreditClient) Interceptors() []Interceptor {
	return c.inters.RegistryCredit
}

func (c *RegistryCreditClient) mutate(ctx context.Context, m *RegistryCreditMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RegistryCreditCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RegistryCreditUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RegistryCreditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RegistryCreditDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RegistryCredit mutation op: %q", m.Op())
	}
}

// VehicleClient is a client for the Vehicle schema.
type VehicleClient struct {
	config
}

// NewVehicleClient returns a client for the Vehicle from the given config.
func NewVehicleClient(c config) *VehicleClient {
	return &VehicleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vehicle.Hooks(f(g(h())))`.
func (c *VehicleClient) Use(hooks ...Hook) {
	c.hooks.Vehicle = append(c.hooks.Vehicle, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vehicle.Intercept(f(g(h())))`.
func (c *VehicleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Vehicle = append(c.inters.Vehicle, interceptors...)
}

// Create returns a builder for creating a Vehicle entity.
func (c *VehicleClient) Create() *VehicleCreate {
	mutation := newVehicleMutation(c.config, OpCreate)
	return &VehicleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Vehicle entities.
func (c *VehicleClient) CreateBulk(builders ...*VehicleCreate) *VehicleCreateBulk {
	return &VehicleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VehicleClient) MapCreateBulk(slice any, setFunc func(*VehicleCreate, int)) *VehicleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VehicleCreateBulk{err: fmt.Errorf("calling to VehicleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VehicleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VehicleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Vehicle.
func (c *VehicleClient) Update() *VehicleUpdate {
	mutation := newVehicleMutation(c.config, OpUpdate)
	return &VehicleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VehicleClient) UpdateOne(_m *Vehicle) *VehicleUpdateOne {
	mutation := newVehicleMutation(c.config, OpUpdateOne, withVehicle(_m))
	return &VehicleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VehicleClient) UpdateOneID(id uuid.UUID) *VehicleUpdateOne {
	mutation := newVehicleMutation(c.config, OpUpdateOne, withVehicleID(id))
	return &VehicleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Vehicle.
func (c *VehicleClient) Delete() *VehicleDelete {
	mutation := newVehicleMutation(c.config, OpDelete)
	return &VehicleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VehicleClient) DeleteOne(_m *Vehicle) *VehicleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VehicleClient) DeleteOneID(id uuid.UUID) *VehicleDeleteOne {
	builder := c.Delete().Where(vehicle.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VehicleDeleteOne{builder}
}

// Query returns a query builder for Vehicle.
func (c *VehicleClient) Query() *VehicleQuery {
	return &VehicleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVehicle},
		inters: c.Interceptors(),
	}
}

// Get returns a Vehicle entity by its id.
func (c *VehicleClient) Get(ctx context.Context, id uuid.UUID) (*Vehicle, error) {
	return c.Query().Where(vehicle.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VehicleClient) GetX(ctx context.Context, id uuid.UUID) *Vehicle {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCase queries the case edge of a Vehicle.
func (c *VehicleClient) QueryCase(_m *Vehicle) *InvestigationCaseQuery {
	query := (&InvestigationCaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(vehicle.Table, vehicle.FieldID, id),
			sqlgraph.To(investigationcase.Table, investigationcase.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, vehicle.CaseTable, vehicle.CaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VehicleClient) Hooks() []Hook {
	return c.hooks.Vehicle
}

// Interceptors returns the client interceptors.
func (c *VehicleClient) Interceptors() []Interceptor {
	return c.inters.Vehicle
}

func (c *VehicleClient) mutate(ctx context.Context, m *VehicleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VehicleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VehicleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VehicleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VehicleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Vehicle mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CaseActivity, CaseAddress, CaseOwner, Folder, InvestigationCase,
		ProcessedDocument, RegistryCredit, Vehicle []ent.Hook
	}
	inters struct {
		CaseActivity, CaseAddress, CaseOwner, Folder, InvestigationCase,
		ProcessedDocument, RegistryCredit, Vehicle []ent.Interceptor
	}
)
