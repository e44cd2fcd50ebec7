package cmd

import (
	"errors"
	"io/ioutil"
	"log"
	"os"

	"github.com/josephlewis42/simplesh/core/config"
	"github.com/josephlewis42/simplesh/core/logger"
	"github.com/josephlewis42/simplesh/core/pathindex"
	"github.com/josephlewis42/simplesh/core/shell"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ExitStartupFailure is the process exit status when the shell couldn't
// start, or stopped because its input broke.
const ExitStartupFailure = 2

var (
	cfgPath    string
	verbose    bool
	promptFlag string
)

func addGlobalFlags(flags *pflag.FlagSet) {
	flags.StringVar(&cfgPath, "config", ".", "config path")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log startup details such as skipped search path directories")
}

func diagnostics(cmd *cobra.Command) *log.Logger {
	return log.New(cmd.ErrOrStderr(), "[simplesh] ", 0)
}

// verboseLog is like diagnostics but discards output unless --verbose is set.
func verboseLog(cmd *cobra.Command) *log.Logger {
	l := diagnostics(cmd)
	if !verbose {
		l.SetOutput(ioutil.Discard)
	}
	return l
}

func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	return config.LoadOrDefault(cfgPath, verboseLog(cmd))
}

// buildTable indexes the search path named by the configuration. Skipped
// directories are recorded to events if it isn't nil.
func buildTable(cmd *cobra.Command, cfg *config.Configuration, events shell.EventRecorder) ([]string, *pathindex.Table, error) {
	diag := diagnostics(cmd)
	detail := verboseLog(cmd)

	searchPath := pathindex.SplitSearchPath(os.Getenv(cfg.SearchPathEnv))
	indexer := pathindex.NewIndexer()
	indexer.MaxEntries = cfg.MaxCommands

	table, skipped, err := indexer.Build(searchPath)
	if err != nil {
		return nil, nil, err
	}

	for _, scanErr := range skipped {
		detail.Println(scanErr)

		if events == nil {
			continue
		}
		err := events.Record(&logger.LogEntry_ScanError{
			ScanError: &logger.ScanError{Dir: scanErr.Dir, Error: scanErr.Err.Error()},
		})
		if err != nil {
			diag.Printf("couldn't record event: %v", err)
		}
	}

	return searchPath, table, nil
}

// newLineReader edits lines on a terminal and reads plain lines otherwise.
func newLineReader(cmd *cobra.Command, cfg *config.Configuration) (shell.LineReader, func(), error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && isTerminal(f) {
		rl, err := shell.NewReadlineReader(f, cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.HistoryPath())
		if err != nil {
			return nil, nil, err
		}
		return rl, func() { rl.Close() }, nil
	}

	return shell.NewBufferedReader(cmd.InOrStdin(), cmd.OutOrStdout()), func() {}, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// rootCmd runs the interactive shell when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "simplesh [PROMPT]",
	Short: "A minimal interactive shell.",
	Long: `A minimal interactive shell.

Each line is split on whitespace into a command and its arguments. The command
is looked up in the table of executables built from PATH at startup and run
in the foreground. Type exit or quit to leave.

The prompt can be given as the only argument. Names of subcommands such as
init or commands run that subcommand instead, use --prompt to show them as
the prompt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if len(args) > 0 && cmd.Flags().Changed("prompt") {
			return errors.New("the prompt was given both as an argument and with --prompt")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		var events shell.EventRecorder
		if cfg.EventLog != "" {
			fd, err := cfg.OpenEventLog()
			if err != nil {
				return err
			}
			defer fd.Close()
			events = logger.NewJsonLinesLogRecorder(fd).NewSession()
		}

		searchPath, table, err := buildTable(cmd, cfg, events)
		if err != nil {
			return err
		}

		input, closeInput, err := newLineReader(cmd, cfg)
		if err != nil {
			return err
		}
		defer closeInput()

		prompt := cfg.Prompt
		switch {
		case len(args) > 0:
			prompt = args[0]
		case cmd.Flags().Changed("prompt"):
			prompt = promptFlag
		}

		// Children only share stdin when it can be handed over directly.
		dispatcher := &shell.Dispatcher{
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		}
		if f, ok := cmd.InOrStdin().(*os.File); ok {
			dispatcher.Stdin = f
		}

		stdoutIsTerminal := false
		if f, ok := cmd.OutOrStdout().(*os.File); ok {
			stdoutIsTerminal = isTerminal(f)
		}

		sh := &shell.Shell{
			State:            shell.NewState(searchPath, table),
			Input:            input,
			Dispatcher:       dispatcher,
			Stdout:           cmd.OutOrStdout(),
			Stderr:           cmd.ErrOrStderr(),
			Prompt:           prompt,
			MaxLineLength:    cfg.MaxLineLength,
			TruncateOverlong: cfg.OverlongLines == config.OverlongTruncate,
			Color:            cfg.ShouldColor(stdoutIsTerminal),
			Events:           events,
			Logger:           diagnostics(cmd),
		}

		return sh.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitStartupFailure)
	}
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().StringVar(&promptFlag, "prompt", "", "prompt text, overrides the config")
}
