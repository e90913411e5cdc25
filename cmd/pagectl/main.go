// Command pagectl manages slotted page files and the system catalog stored
// in them: it creates pages, registers tables and columns, and inspects the
// raw layout of any page file.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"slotpage/pkg/catalog"
	"slotpage/pkg/logging"
	"slotpage/pkg/primitives"
)

const version = "0.1.0"

// Globals are the flags shared by every command.
type Globals struct {
	DataDir   string `name:"data-dir" short:"d" env:"SLOTPAGE_DATA_DIR" default:"./data" type:"path" help:"Directory holding the catalog pages"`
	LogLevel  string `name:"log-level" env:"SLOTPAGE_LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log verbosity (${enum})"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log output format (${enum})"`
	LogFile   string `name:"log-file" type:"path" help:"Write logs to this file instead of stderr"`
}

// Catalog opens the catalog rooted at the data directory.
func (g *Globals) Catalog() (*catalog.Catalog, error) {
	cfg := catalog.DefaultConfig()
	cfg.DataDir = primitives.Filepath(g.DataDir)
	return catalog.New(cfg)
}

// CLI defines the command-line interface for pagectl.
type CLI struct {
	Globals

	Init    InitCmd      `cmd:"" help:"Create the catalog pages in the data directory"`
	Create  CreateCmd    `cmd:"" help:"Create a single empty page file"`
	Tables  TablesGroup  `cmd:"" help:"CATALOG_TABLES operations"`
	Columns ColumnsGroup `cmd:"" help:"CATALOG_COLUMNS operations"`
	Inspect InspectCmd   `cmd:"" help:"Show the header, directory and free space of a page file"`
	Version VersionCmd   `cmd:"" help:"Print version information"`
}

// TablesGroup contains CATALOG_TABLES operations.
type TablesGroup struct {
	Add  TablesAddCmd  `cmd:"" help:"Register a table"`
	List TablesListCmd `cmd:"" help:"List registered tables"`
}

// ColumnsGroup contains CATALOG_COLUMNS operations.
type ColumnsGroup struct {
	Add  ColumnsAddCmd  `cmd:"" help:"Register a column of an existing table"`
	List ColumnsListCmd `cmd:"" help:"List registered columns"`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("pagectl"),
		kong.Description("Slotted page and system catalog tool"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := logging.Init(logging.Config{
		Level:      logging.ParseLevel(cli.LogLevel),
		OutputPath: cli.LogFile,
		Format:     cli.LogFormat,
	}); err != nil {
		parser.Fatalf("failed to initialize logging: %v", err)
	}

	err = ctx.Run(&cli.Globals)
	if err != nil {
		logging.WithError(err).Debug().Str("command", ctx.Command()).Msg("command failed")
	}
	_ = logging.Close()
	ctx.FatalIfErrorf(err)
}
