package main

import (
	"fmt"
	"math"

	"github.com/alecthomas/kong"

	"slotpage/pkg/catalog/systable"
	"slotpage/pkg/debug/pagereader"
	"slotpage/pkg/primitives"
	"slotpage/pkg/storage/page"
)

// InitCmd creates both catalog pages.
type InitCmd struct {
	Force bool `help:"Reset existing catalog pages to empty"`
}

func (c *InitCmd) Run(g *Globals, ctx *kong.Context) error {
	cat, err := g.Catalog()
	if err != nil {
		return err
	}
	if err := cat.Initialize(c.Force); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Stdout, "catalog ready in %s\n", g.DataDir)
	return nil
}

// CreateCmd creates one empty page file.
type CreateCmd struct {
	Path string `arg:"" help:"Page file to create (truncated if it exists)" type:"path"`
}

func (c *CreateCmd) Run(ctx *kong.Context) error {
	if err := page.Create(primitives.Filepath(c.Path)); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Stdout, "created %s\n", c.Path)
	return nil
}

// TablesAddCmd registers one table.
type TablesAddCmd struct {
	ID   uint32 `arg:"" help:"Table ID"`
	Name string `arg:"" help:"Table name"`
}

func (c *TablesAddCmd) Run(g *Globals, ctx *kong.Context) error {
	cat, err := g.Catalog()
	if err != nil {
		return err
	}

	td := systable.TableDescriptor{TableID: primitives.TableID(c.ID), TableName: c.Name}
	if err := cat.AddTables(td); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Stdout, "added table %d %s\n", td.TableID, td.TableName)
	return nil
}

// TablesListCmd prints CATALOG_TABLES.
type TablesListCmd struct{}

func (c *TablesListCmd) Run(g *Globals, ctx *kong.Context) error {
	cat, err := g.Catalog()
	if err != nil {
		return err
	}

	tables, err := cat.Tables()
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Stdout, "%-10s %s\n", "TABLE_ID", "TABLE_NAME")
	for _, td := range tables {
		fmt.Fprintf(ctx.Stdout, "%-10d %s\n", td.TableID, td.TableName)
	}
	return nil
}

// ColumnsAddCmd registers one column.
type ColumnsAddCmd struct {
	ColumnID uint32 `arg:"" help:"Column ID"`
	TableID  uint32 `arg:"" help:"ID of the owning table"`
	Name     string `arg:"" help:"Column name"`
	Type     string `arg:"" help:"Data type, e.g. INTEGER or TEXT"`
	Nullable bool   `help:"Column accepts NULL"`
}

func (c *ColumnsAddCmd) Run(g *Globals, ctx *kong.Context) error {
	cat, err := g.Catalog()
	if err != nil {
		return err
	}

	col := systable.ColumnDescriptor{
		ColumnID:   primitives.ColumnID(c.ColumnID),
		TableID:    primitives.TableID(c.TableID),
		ColumnName: c.Name,
		DataType:   c.Type,
		IsNullable: c.Nullable,
	}
	if err := cat.AddColumns(col); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Stdout, "added column %d to table %d: %s %s\n", col.ColumnID, col.TableID, col.ColumnName, col.DataType)
	return nil
}

// ColumnsListCmd prints CATALOG_COLUMNS, optionally for one table.
type ColumnsListCmd struct {
	TableID int64 `name:"table-id" default:"-1" help:"Only list columns of this table (-1 lists all)"`
}

func (c *ColumnsListCmd) Run(g *Globals, ctx *kong.Context) error {
	if c.TableID < -1 || c.TableID > math.MaxUint32 {
		return fmt.Errorf("--table-id %d is outside [0, %d]", c.TableID, uint32(math.MaxUint32))
	}

	cat, err := g.Catalog()
	if err != nil {
		return err
	}

	var cols []systable.ColumnDescriptor
	if c.TableID >= 0 {
		cols, err = cat.ColumnsOf(primitives.TableID(c.TableID))
	} else {
		cols, err = cat.Columns()
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Stdout, "%-10s %-10s %-20s %-12s %s\n", "COLUMN_ID", "TABLE_ID", "COLUMN_NAME", "DATA_TYPE", "NULLABLE")
	for _, col := range cols {
		fmt.Fprintf(ctx.Stdout, "%-10d %-10d %-20s %-12s %t\n",
			col.ColumnID, col.TableID, col.ColumnName, col.DataType, col.IsNullable)
	}
	return nil
}

// InspectCmd shows the layout of a page file.
type InspectCmd struct {
	Path string `arg:"" help:"Page file to inspect" type:"existingfile"`
	TUI  bool   `name:"tui" help:"Browse the report in an interactive viewer"`
}

func (c *InspectCmd) Run(ctx *kong.Context) error {
	path := primitives.Filepath(c.Path)
	if c.TUI {
		return pagereader.Run(path)
	}

	r, err := pagereader.InspectFile(path)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Stdout, pagereader.Render(r))
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *kong.Context) error {
	fmt.Fprintf(ctx.Stdout, "pagectl version %s\n", version)
	return nil
}
