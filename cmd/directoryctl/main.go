package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"doctor-directory/cmd/bootstrap"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Source is wired from configuration when nil. Tests set it directly.
	Source DoctorStore

	app *bootstrap.App
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close releases database and Redis connections opened by Run.
func (m *Main) Close() {
	if m.app != nil {
		m.app.Close()
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("directoryctl"),
		kong.Description("Maintain and query the doctor directory dataset."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'directoryctl --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.Source == nil {
		app, err := bootstrap.NewCore()
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		m.app = app
		m.Source = app.DoctorSource
		defer m.Close()
	}
	deps.Source = m.Source
	deps.Log = logrus.StandardLogger()

	return kongCtx.Run()
}
