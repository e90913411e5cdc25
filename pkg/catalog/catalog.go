package catalog

import (
	"errors"
	"fmt"
	"strings"

	"slotpage/pkg/catalog/systable"
	dberror "slotpage/pkg/error"
	"slotpage/pkg/logging"
	"slotpage/pkg/primitives"
	"slotpage/pkg/storage/heap"
	"slotpage/pkg/storage/page"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrTableExists is returned when a table ID or name is already registered.
	ErrTableExists = errors.New("table already exists")

	// ErrColumnExists is returned when a column ID is already registered.
	ErrColumnExists = errors.New("column already exists")

	// ErrTableNotFound is returned when a lookup or a column refers to an
	// unknown table.
	ErrTableNotFound = errors.New("table not found")

	// ErrInvalidDescriptor is returned for descriptors with empty names or types.
	ErrInvalidDescriptor = errors.New("invalid descriptor")
)

const component = "Catalog"

// Config locates the two catalog page files.
type Config struct {
	DataDir     primitives.Filepath
	TablesFile  string
	ColumnsFile string
}

// DefaultConfig returns a Config rooted at ./data with the default file names.
func DefaultConfig() Config {
	return Config{
		DataDir:     "./data",
		TablesFile:  systable.Tables.FileName(),
		ColumnsFile: systable.Columns.FileName(),
	}
}

// Catalog manages CATALOG_TABLES and CATALOG_COLUMNS, each stored in its own
// single-page file under the data directory.
//
// Catalog holds no page state in memory. Every call goes to disk, and
// mutations run as one read-validate-append cycle while the target page is
// locked exclusively.
type Catalog struct {
	cfg     Config
	tables  *systable.TablesTable
	columns *systable.ColumnsTable
}

// New creates a Catalog for cfg. Empty file names fall back to the defaults.
func New(cfg Config) (*Catalog, error) {
	if cfg.DataDir.IsEmpty() {
		return nil, dberror.Newf(dberror.ErrIO, "data directory cannot be empty").WithOperation("New", component)
	}
	if cfg.TablesFile == "" {
		cfg.TablesFile = systable.Tables.FileName()
	}
	if cfg.ColumnsFile == "" {
		cfg.ColumnsFile = systable.Columns.FileName()
	}

	tables, err := systable.NewTablesTable(cfg.DataDir.Join(cfg.TablesFile))
	if err != nil {
		return nil, err
	}
	columns, err := systable.NewColumnsTable(cfg.DataDir.Join(cfg.ColumnsFile))
	if err != nil {
		return nil, err
	}

	return &Catalog{cfg: cfg, tables: tables, columns: columns}, nil
}

// Config returns the configuration the catalog was built with.
func (c *Catalog) Config() Config {
	return c.cfg
}

// TablesPath returns the path of the CATALOG_TABLES page.
func (c *Catalog) TablesPath() primitives.Filepath {
	return c.tables.File().FilePath()
}

// ColumnsPath returns the path of the CATALOG_COLUMNS page.
func (c *Catalog) ColumnsPath() primitives.Filepath {
	return c.columns.File().FilePath()
}

// Initialize creates the data directory and both catalog pages. Existing
// pages are left untouched unless force is set, in which case they are reset
// to empty.
func (c *Catalog) Initialize(force bool) error {
	files := []interface {
		Exists() bool
		Create() error
		FilePath() primitives.Filepath
	}{c.tables.File(), c.columns.File()}

	for _, f := range files {
		// MkdirAll creates the page's parent, which is the data directory.
		if err := f.FilePath().MkdirAll(0o755); err != nil {
			return dberror.WrapIO(err, "Initialize", component)
		}
		if f.Exists() && !force {
			logging.WithPage(f.FilePath()).Debug().Msg("catalog page exists, keeping it")
			continue
		}
		if err := f.Create(); err != nil {
			return fmt.Errorf("failed to initialize %s: %w", f.FilePath().Base(), err)
		}
		logging.WithPage(f.FilePath()).Info().Bool("force", force).Msg("catalog page created")
	}
	return nil
}

// AddTables registers tables in one page rewrite. IDs and names (compared
// case-insensitively) must be unique across the batch and the page; on any
// violation nothing is written.
func (c *Catalog) AddTables(tables ...systable.TableDescriptor) (err error) {
	f, err := page.Open(c.TablesPath())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	existing, err := heap.ReadRecords[systable.TableDescriptor](f, systable.Tables)
	if err != nil {
		return err
	}

	ids := make(map[primitives.TableID]struct{}, len(existing)+len(tables))
	names := make(map[string]struct{}, len(existing)+len(tables))
	for _, td := range existing {
		ids[td.TableID] = struct{}{}
		names[strings.ToLower(td.TableName)] = struct{}{}
	}

	for _, td := range tables {
		if td.TableName == "" {
			return fmt.Errorf("table %d: empty name: %w", td.TableID, ErrInvalidDescriptor)
		}
		if _, ok := ids[td.TableID]; ok {
			return fmt.Errorf("table id %d: %w", td.TableID, ErrTableExists)
		}
		key := strings.ToLower(td.TableName)
		if _, ok := names[key]; ok {
			return fmt.Errorf("table %q: %w", td.TableName, ErrTableExists)
		}
		ids[td.TableID] = struct{}{}
		names[key] = struct{}{}
	}

	if err := heap.AppendRecords[systable.TableDescriptor](f, systable.Tables, tables); err != nil {
		return err
	}

	logging.WithTable(systable.Tables.TableName()).Info().Int("added", len(tables)).Msg("tables registered")
	return nil
}

// AddColumns registers columns in one page rewrite. Every column must name a
// table present in CATALOG_TABLES and carry a column ID not used before.
func (c *Catalog) AddColumns(columns ...systable.ColumnDescriptor) (err error) {
	known, err := c.tables.GetAll()
	if err != nil {
		return err
	}
	tableIDs := make(map[primitives.TableID]struct{}, len(known))
	for _, td := range known {
		tableIDs[td.TableID] = struct{}{}
	}

	f, err := page.Open(c.ColumnsPath())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	existing, err := heap.ReadRecords[systable.ColumnDescriptor](f, systable.Columns)
	if err != nil {
		return err
	}
	columnIDs := make(map[primitives.ColumnID]struct{}, len(existing)+len(columns))
	for _, col := range existing {
		columnIDs[col.ColumnID] = struct{}{}
	}

	for _, col := range columns {
		if col.ColumnName == "" || col.DataType == "" {
			return fmt.Errorf("column %d: empty name or data type: %w", col.ColumnID, ErrInvalidDescriptor)
		}
		if _, ok := tableIDs[col.TableID]; !ok {
			return fmt.Errorf("column %q refers to table %d: %w", col.ColumnName, col.TableID, ErrTableNotFound)
		}
		if _, ok := columnIDs[col.ColumnID]; ok {
			return fmt.Errorf("column id %d: %w", col.ColumnID, ErrColumnExists)
		}
		columnIDs[col.ColumnID] = struct{}{}
	}

	if err := heap.AppendRecords[systable.ColumnDescriptor](f, systable.Columns, columns); err != nil {
		return err
	}

	logging.WithTable(systable.Columns.TableName()).Info().Int("added", len(columns)).Msg("columns registered")
	return nil
}

// Tables returns every registered table in insertion order.
func (c *Catalog) Tables() ([]systable.TableDescriptor, error) {
	return c.tables.GetAll()
}

// Columns returns every registered column in insertion order.
func (c *Catalog) Columns() ([]systable.ColumnDescriptor, error) {
	return c.columns.GetAll()
}

// ColumnsOf returns the columns of one table in insertion order.
func (c *Catalog) ColumnsOf(tableID primitives.TableID) ([]systable.ColumnDescriptor, error) {
	return c.columns.LoadColumns(tableID)
}

// TableByName looks a table up by name, ignoring case.
func (c *Catalog) TableByName(name string) (systable.TableDescriptor, error) {
	td, err := c.tables.GetByName(name)
	if errors.Is(err, systable.ErrNotFound) {
		return td, fmt.Errorf("%q: %w", name, ErrTableNotFound)
	}
	return td, err
}

// TableByID looks a table up by ID.
func (c *Catalog) TableByID(tableID primitives.TableID) (systable.TableDescriptor, error) {
	td, err := c.tables.GetByID(tableID)
	if errors.Is(err, systable.ErrNotFound) {
		return td, fmt.Errorf("id %d: %w", tableID, ErrTableNotFound)
	}
	return td, err
}

// Load reads both catalog pages concurrently and returns a Snapshot.
// Each goroutine owns exactly one page file.
func (c *Catalog) Load() (*Snapshot, error) {
	var (
		tables  []systable.TableDescriptor
		columns []systable.ColumnDescriptor
		g       errgroup.Group
	)

	g.Go(func() error {
		var err error
		tables, err = c.tables.GetAll()
		return err
	})
	g.Go(func() error {
		var err error
		columns, err = c.columns.GetAll()
		return err
	})

	if err := g.Wait(); err != nil {
		logging.WithComponent(component).Debug().Err(err).Msg("catalog load failed")
		return nil, err
	}

	logging.WithComponent(component).Debug().
		Int("tables", len(tables)).
		Int("columns", len(columns)).
		Msg("catalog loaded")
	return newSnapshot(tables, columns), nil
}
