// Package main is an interactive demo: it edits an examples/basic Player in the
// terminal, one prompt per widget, and prints the result as YAML.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"gopkg.in/yaml.v3"

	"inspector-generator/examples/basic"
	"inspector-generator/inspect"
	"inspector-generator/inspect/term"
)

var logLevel = new(slog.LevelVar)

func main() {
	reflective := flag.Bool("reflect", false, "render through the reflective binder instead of generated code")
	verbose := flag.Bool("v", false, "verbose (debug) logging")
	flag.Parse()

	if *verbose {
		logLevel.Set(slog.LevelDebug)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ui := term.New(term.WithContext(ctx))

	player := defaultPlayer()
	if err := edit(ui, &player, *reflective, logger); err != nil {
		if errors.Is(err, term.ErrAborted) {
			logger.Info("aborted")
			os.Exit(130)
		}

		logger.Error("edit failed", "err", err)
		os.Exit(1)
	}

	if err := dump(os.Stdout, &player); err != nil {
		logger.Error("dump failed", "err", err)
		os.Exit(1)
	}
}

// promptUI is the terminal UI surface edit needs.
type promptUI interface {
	inspect.UI
	Err() error
}

// edit draws the player once through a registry, which either holds the
// generated inspectors or the reflective one.
func edit(ui promptUI, player *basic.Player, reflective bool, logger *slog.Logger) error {
	reg := inspect.NewRegistry()

	var err error
	if reflective {
		err = inspect.RegisterReflect[basic.Player](reg)
	} else {
		err = basic.RegisterInspectors(reg)
	}

	if err != nil {
		return fmt.Errorf("registering inspectors: %w", err)
	}

	logger.Debug("rendering", "types", len(reg.Types()), "reflective", reflective)

	if err := reg.Render(ui, player); err != nil {
		return err
	}

	return ui.Err()
}

func dump(w io.Writer, player *basic.Player) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(player); err != nil {
		return err
	}

	return enc.Close()
}

func defaultPlayer() basic.Player {
	return basic.Player{
		Name:   "Ada",
		Age:    36,
		Level:  1,
		Active: true,
		Volume: 0.8,
		Home:   basic.Address{Street: "1 Analytical Way", City: "London"},
		Stats:  basic.Stats{Strength: 10, Dexterity: 10},
	}
}
