package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/ytshelf/cmd/shelf"
	"github.com/lepinkainen/ytshelf/internal/config"
	"github.com/lepinkainen/ytshelf/internal/yts"
)

var (
	runFetch  = shelf.Fetch
	runList   = shelf.List
	runCount  = shelf.Count
	runSize   = shelf.Size
	runStats  = shelf.Stats
	runExport = shelf.Export
	runBrowse = shelf.Browse
)

// CLI represents the complete command structure for the ytshelf application
type CLI struct {
	// Global flags
	Overwrite    bool `help:"Overwrite existing markdown files when exporting"`
	UpdateCovers bool `help:"Re-download cover images even if they already exist"`

	// Data location flags
	DataDir string `help:"Directory holding the catalog snapshot" default:"."`

	// Datasette flags
	Datasette   bool   `help:"Mirror the catalog to a Datasette database after fetching"`
	DatasetteDB string `help:"Path to SQLite database file" default:"./ytshelf.db"`

	Fetch  FetchCmd  `cmd:"" default:"1" help:"Fetch new movies from the remote listing into the local catalog"`
	List   ListCmd   `cmd:"" help:"List movies from the local catalog, newest first"`
	Count  CountCmd  `cmd:"" help:"Check the remote listing for new movies without saving anything"`
	Size   SizeCmd   `cmd:"" help:"Show total and average catalog size"`
	Stats  StatsCmd  `cmd:"" help:"Show catalog statistics"`
	Export ExportCmd `cmd:"" help:"Export the catalog as markdown notes"`
	Browse BrowseCmd `cmd:"" help:"Browse the catalog interactively"`
}

// FetchCmd represents the fetch command
type FetchCmd struct {
	Covers   bool `help:"Download cover images for newly fetched movies"`
	PageSize int  `help:"Movies per listing page (defaults to yts.pagesize from config)"`
}

// ListCmd represents the list command
type ListCmd struct {
	Limit int `short:"n" help:"Maximum number of movies to show, 0 for all" default:"10"`
}

// CountCmd represents the count command
type CountCmd struct{}

// SizeCmd represents the size command
type SizeCmd struct{}

// StatsCmd represents the stats command
type StatsCmd struct{}

// ExportCmd represents the export command
type ExportCmd struct {
	Output     string `short:"o" help:"Subdirectory under markdown output directory for movie notes" default:"export"`
	JSON       bool   `help:"Write data to JSON format"`
	JSONOutput string `help:"Path to JSON output file (defaults to json/export.json)"`
}

// BrowseCmd represents the browse command
type BrowseCmd struct{}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("ytshelf"),
		kong.Description("A tool to keep a local catalog of the YTS movie listing."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("DataDir", ".")
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("OverwriteFiles", false)

	// Remote listing defaults
	viper.SetDefault("yts.baseurl", yts.DefaultBaseURL)
	viper.SetDefault("yts.pagesize", 50)
	viper.SetDefault("yts.ratelimit", 2)

	// Cover defaults
	viper.SetDefault("covers.enabled", false)

	// Datasette defaults
	viper.SetDefault("datasette.enabled", false)
	viper.SetDefault("datasette.mode", "local")
	viper.SetDefault("datasette.dbfile", "./ytshelf.db")

	viper.AutomaticEnv()
	if err := viper.BindEnv("yts.baseurl", "YTS_BASE_URL"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
			os.Exit(0)
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	config.SetOverwriteFiles(cli.Overwrite)
	config.SetUpdateCovers(cli.UpdateCovers)
	if cli.DataDir != "" && cli.DataDir != "." {
		config.SetDataDir(cli.DataDir)
	}

	if cli.Datasette {
		viper.Set("datasette.enabled", true)
	}
	viper.Set("datasette.dbfile", cli.DatasetteDB)
}

// Run methods for each command

func (f *FetchCmd) Run() error {
	return runFetch(shelf.FetchOptions{
		PageSize: f.PageSize,
		Covers:   f.Covers,
	})
}

func (l *ListCmd) Run() error {
	return runList(l.Limit)
}

func (c *CountCmd) Run() error {
	return runCount()
}

func (s *SizeCmd) Run() error {
	return runSize()
}

func (s *StatsCmd) Run() error {
	return runStats()
}

func (e *ExportCmd) Run() error {
	return runExport(shelf.ExportOptions{
		OutputDir:  e.Output,
		JSONOutput: e.JSONOutput,
		WriteJSON:  e.JSON,
	})
}

func (b *BrowseCmd) Run() error {
	return runBrowse()
}

func initLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("YTSHELF_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
