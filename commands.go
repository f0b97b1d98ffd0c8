package main

import (
	"cmp"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lamchakchan/devtools-pro/internal/browse"
	"github.com/lamchakchan/devtools-pro/internal/catalog"
	"github.com/lamchakchan/devtools-pro/internal/config"
	"github.com/lamchakchan/devtools-pro/internal/listing"
	"github.com/lamchakchan/devtools-pro/internal/logging"
	"github.com/lamchakchan/devtools-pro/internal/platform"
	"github.com/lamchakchan/devtools-pro/internal/tui"
)

// app carries what every command needs once flags are parsed.
type app struct {
	v       *viper.Viper
	cfg     config.Config
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "devtools",
		Short: "DevTools Pro - browse a catalog of open-source developer tools",
		Long: `Browse a catalog of open-source developer tools.

Run without a command in a terminal to open the interactive browser. When
stdin or stdout is not a terminal, or ACCESSIBLE=1 / NO_COLOR is set, the
catalog is printed instead.`,
		Version:           version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.interactive() {
				a.logger.Info("starting interactive browser", zap.Int("tools", a.catalog.Len()))
				return tui.Run(browse.New(a.catalog, a.logger))
			}
			return listing.Run(cmd.OutOrStdout(), a.catalog, listing.Options{}, a.logger)
		},
	}
	root.SetVersionTemplate("devtools {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.String("catalog", "", "YAML file to use instead of the built-in catalog")
	pf.String("log-file", "", "write debug logs to this file")
	pf.String("log-level", config.LevelInfo, "log level (debug, info, warn, error)")

	root.AddCommand(newListCmd(a), newCategoriesCmd(a))
	return root
}

// setup resolves configuration, opens the log and loads the catalog.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.logger = logger

	if cfg.Catalog == "" {
		a.catalog = catalog.Default()
	} else if a.catalog, err = catalog.LoadFile(cfg.Catalog); err != nil {
		return err
	}
	a.logger.Debug("catalog loaded",
		zap.String("source", cmp.Or(cfg.Catalog, "built-in")),
		zap.Int("tools", a.catalog.Len()),
		zap.Int("categories", len(a.catalog.Categories())))
	return nil
}

// interactive reports whether the TUI can take over the terminal.
func (a *app) interactive() bool {
	if a.cfg.Accessible || tui.IsAccessible() {
		return false
	}
	return platform.IsTerminal(os.Stdin) && platform.IsTerminal(os.Stdout)
}

func newListCmd(a *app) *cobra.Command {
	var opts listing.Options

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the tools matching a search, category and sort order",
		Example: `  devtools list
  devtools list --search form --sort rating
  devtools list --category web --favorite 2 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, ok := a.catalog.Category(opts.Category); opts.Category != "" && !ok {
				a.logger.Warn("unknown category filter", zap.String("category", opts.Category))
			}
			return listing.Run(cmd.OutOrStdout(), a.catalog, opts, a.logger)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Search, "search", "s", "", "case-insensitive text to find in names and descriptions")
	f.StringVarP(&opts.Category, "category", "c", catalog.AllCategoryID, "category id to filter on")
	f.StringVar(&opts.Sort, "sort", "name", "sort order: name, rating or downloads")
	f.IntSliceVar(&opts.Favorites, "favorite", nil, "tool id to mark as favorite (repeatable)")
	f.BoolVar(&opts.JSON, "json", false, "JSON output")
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Print the category filters and how many tools each holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listing.Categories(cmd.OutOrStdout(), a.catalog, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "JSON output")
	return cmd
}
