// Package cli provides the command-line interface for paintsviewer.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Fiszh/7TVPaintsViewer/internal/config"
	"github.com/Fiszh/7TVPaintsViewer/internal/cosmetics"
	"github.com/Fiszh/7TVPaintsViewer/internal/logging"
	"github.com/Fiszh/7TVPaintsViewer/internal/version"
	"github.com/Fiszh/7TVPaintsViewer/internal/viewer"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	endpoint   string
	users      []string
	verbose    bool
	quiet      bool
	jsonLogs   bool
}

// NewRootCmd builds the paintsviewer command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "paintsviewer",
		Short: "Preview 7TV paints for a list of users",
		Long: `paintsviewer looks up the paint each configured 7TV user has equipped,
derives the CSS gradient, image and drop-shadow filter for it, and shows the
result as an HTML page, a live web server or a terminal listing.

Users come from the built-in list, a YAML config file, the
PAINTSVIEWER_USERS environment variable or repeated --user flags.`,
		Version:      version.Version,
		SilenceUsage: true,
	}

	registerGlobalFlags(rootCmd.PersistentFlags(), opts)

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// registerGlobalFlags binds the persistent flags to opts.
func registerGlobalFlags(flags *pflag.FlagSet, opts *globalOptions) {
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&opts.endpoint, "endpoint", "", "GraphQL endpoint (default "+cosmetics.DefaultEndpoint+")")
	flags.StringArrayVarP(&opts.users, "user", "u", nil, "user id to show, optionally id=note (repeatable)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	flags.BoolVar(&opts.jsonLogs, "log-json", false, "write logs as JSON")
}

// app is the wiring shared by the commands.
type app struct {
	config config.Config
	logger hclog.Logger
	viewer *viewer.Viewer
}

// newApp resolves configuration (flag > env > file > default) and wires the
// cosmetics client into a viewer.
func newApp(cmd *cobra.Command, opts *globalOptions) (*app, error) {
	logger := logging.New(logging.Options{
		Output:  cmd.ErrOrStderr(),
		Verbose: opts.verbose,
		Quiet:   opts.quiet,
		JSON:    opts.jsonLogs,
	})

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	if opts.endpoint != "" {
		cfg.Endpoint = opts.endpoint
	}
	if len(opts.users) > 0 {
		cfg.Users = nil
		for _, u := range opts.users {
			cfg.Users = append(cfg.Users, config.ParseUsers(u)...)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	clientOpts := cfg.ClientOptions()
	clientOpts.Logger = logger
	client := cosmetics.NewClient(clientOpts)

	logger.Debug("configuration loaded", "endpoint", cfg.Endpoint, "users", len(cfg.Users))

	return &app{
		config: cfg,
		logger: logger,
		viewer: viewer.New(client, cfg.Concurrency, logger),
	}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
