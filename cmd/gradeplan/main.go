package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/gradeplan/internal/cli"
	"github.com/alexanderramin/gradeplan/internal/cli/formatter"
	"github.com/alexanderramin/gradeplan/internal/config"
	"github.com/alexanderramin/gradeplan/internal/optimizer"
	"github.com/alexanderramin/gradeplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, formatter.FormatError(err))
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	engine := optimizer.NewEngine(optimizer.Options{
		MaxPending: cfg.Engine.MaxPending,
		ZeroEffort: cfg.ZeroEffortPolicy(),
	})

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.Logging.UseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Plan:   service.NewPlanService(engine, observer),
		Config: *cfg,
	}

	// Detect interactive terminal for the editor entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
