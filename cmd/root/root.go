// Package root contains the root command for the application
package root

import (
	"context"
	"errors"
	"fmt"

	"trackexpense/internal/config"
	"trackexpense/internal/container"
	"trackexpense/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands. It is replaced by the
	// configured logger once the container is built.
	Log = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the dependencies of the running command.
	AppContainer *container.Container

	// ConfigFile is an explicit configuration file path.
	ConfigFile string

	// Verbose forces debug logging.
	Verbose bool

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "trackexpense",
		Short: "A CLI tool to record expenses and compile monthly expense reports.",
		Long: `trackexpense is a CLI tool that records expenses, analyzes receipts
and compiles the monthly expense report of a subject as XLSX, CSV or text.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to trackexpense!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&ConfigFile, "config", "c", "", "Config file (default searches $HOME/.trackexpense, .trackexpense and .)")
	Cmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "Enable debug logging")
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(ConfigFile)
	if err != nil {
		return err
	}
	if Verbose {
		cfg.Log.Level = "debug"
	}

	c, err := container.NewContainer(Context(cmd), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if AppContainer == nil {
		return nil
	}
	err := AppContainer.Close()
	AppContainer = nil
	return err
}

// Context returns the command context, or a background context when the
// command runs outside Execute.
func Context(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

// GetContainer returns the container built for the running command.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, errors.New("application container not initialized")
	}
	return AppContainer, nil
}
