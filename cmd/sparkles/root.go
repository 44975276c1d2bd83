package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"sparkles/internal/app"
	"sparkles/internal/core"
	"sparkles/internal/display"
	"sparkles/internal/mutator"
)

func newRootCmd() *cobra.Command {
	cfg := app.NewConfig()
	cmd := &cobra.Command{
		Use:           "sparkles",
		Short:         "Watch an 8x8 board of randomly flipping lights",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	cfg.Bind(cmd.Flags())
	return cmd
}

// run starts the mutator and blocks on the display until the user quits.
func run(ctx context.Context, cfg *app.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	grid := core.NewGrid()
	driver := app.NewDriver(grid, cfg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := mutator.New(grid, cfg.Mutator()).Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	err := present(ctx, driver, cfg)
	cancel()
	if werr := g.Wait(); err == nil {
		err = werr
	}
	return err
}

// present runs the selected display on the calling goroutine.
func present(ctx context.Context, driver *app.Driver, cfg *app.Config) error {
	switch cfg.Display {
	case app.DisplayWindow:
		return app.RunWindow(driver, cfg)
	case app.DisplayTerminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		term, err := display.NewTerminal(screen)
		if err != nil {
			return err
		}
		defer term.Close()
		return driver.Run(ctx, term)
	default:
		return fmt.Errorf("unknown display %q", cfg.Display)
	}
}
