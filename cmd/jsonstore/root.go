package jsonstore

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/jsonstore/internal/version"
	"github.com/arthur-debert/jsonstore/pkg/config"
	"github.com/arthur-debert/jsonstore/pkg/errors"
	"github.com/arthur-debert/jsonstore/pkg/filesystem"
	"github.com/arthur-debert/jsonstore/pkg/logging"
	"github.com/arthur-debert/jsonstore/pkg/paths"
	"github.com/arthur-debert/jsonstore/pkg/storage"
	"github.com/arthur-debert/jsonstore/pkg/ui"
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	verbosity  int
	configPath string
	root       string
	appendRoot string
	backend    string
	format     string
}

// app is the per-invocation state built in PersistentPreRunE.
type app struct {
	flags    globalFlags
	cfg      *config.Config
	renderer ui.Renderer
	store    *storage.Store
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "jsonstore",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidArgument, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&a.flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&a.flags.configPath, "config", "", MsgFlagConfig)
	pf.StringVar(&a.flags.root, "root", "", MsgFlagRoot)
	pf.StringVar(&a.flags.appendRoot, "append-root", "", MsgFlagAppendRoot)
	pf.StringVar(&a.flags.backend, "backend", "", MsgFlagBackend)
	pf.StringVarP(&a.flags.format, "format", "o", "auto", MsgFlagFormat)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ui.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("backend", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return filesystem.Backends(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "records",
		Title: "RECORDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGetCmd(a))
	rootCmd.AddCommand(newSetCmd(a))
	rootCmd.AddCommand(newHasCmd(a))
	rootCmd.AddCommand(newRemoveCmd(a))
	rootCmd.AddCommand(newClearCmd(a))
	rootCmd.AddCommand(newKeysCmd(a))
	rootCmd.AddCommand(newPathCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	initTopics(rootCmd)
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// setup loads configuration, applies flag overrides, configures logging
// and picks the output renderer.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Storage.Root = a.flags.root
	}
	if flags.Changed("append-root") {
		cfg.Storage.AppendRoot = a.flags.appendRoot
	}
	if flags.Changed("backend") {
		cfg.Storage.Backend = a.flags.backend
	}
	cfg.Logging.Verbosity += a.flags.verbosity
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity: cfg.Logging.Verbosity,
		Console:   cmd.ErrOrStderr(),
		LogFile:   cfg.Logging.File,
	})

	format, err := ui.ParseFormat(a.flags.format)
	if err != nil {
		return err
	}
	a.renderer, err = ui.NewRenderer(format, cmd.OutOrStdout())
	return err
}

// openStore builds the store from the effective configuration on first use.
func (a *app) openStore() (*storage.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	st := a.cfg.Storage
	fsys, err := filesystem.New(st.Backend)
	if err != nil {
		return nil, err
	}

	var resolver *paths.Resolver
	if st.Root != "" {
		resolver, err = paths.New(st.Root)
	} else {
		resolver, err = paths.NewWithProvider(paths.DefaultProvider(st.AppName))
	}
	if err != nil {
		return nil, err
	}
	if st.AppendRoot != "" {
		if err := resolver.SetRoot(st.AppendRoot, false); err != nil {
			return nil, err
		}
	}

	opts, err := storeOptions(st)
	if err != nil {
		return nil, err
	}

	a.store = storage.New(fsys, resolver, opts...)
	log.Debug().Str("root", a.store.Root()).Str("backend", st.Backend).Msg("Store opened")
	return a.store, nil
}

// storeOptions translates storage configuration into store options.
func storeOptions(st config.Storage) ([]storage.Option, error) {
	fileMode, err := st.FileMode.Parse()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid file_mode")
	}
	dirMode, err := st.DirMode.Parse()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid dir_mode")
	}
	return []storage.Option{
		storage.WithFileMode(fileMode),
		storage.WithDirMode(dirMode),
		storage.WithCreateRoot(st.CreateRoot),
		storage.WithAtomicWrites(st.AtomicWrites),
		storage.WithIndent(st.Indent),
		storage.WithConcurrency(st.Concurrency),
		storage.WithUseNumber(true),
	}, nil
}

// HandleError reports err on stderr and returns the process exit code.
func HandleError(rootCmd *cobra.Command, err error) int {
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}

	formatName, _ := rootCmd.PersistentFlags().GetString("format")
	format, parseErr := ui.ParseFormat(formatName)
	if parseErr != nil {
		format = ui.FormatAuto
	}
	renderer, rerr := ui.NewRenderer(format, rootCmd.ErrOrStderr())
	if rerr != nil || renderer.RenderError(err) != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	if errors.IsValidation(err) {
		return ExitUsage
	}
	return ExitFailure
}
