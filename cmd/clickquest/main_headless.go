//go:build !cgo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/appengine-ltd/clickquest/internal/ui"
)

func main() {
	var (
		showVersion bool
		configPath  string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Bool("classic", true, "ignored: builds without cgo always play in the terminal")
	flag.StringVar(&configPath, "config", "", "settings file (default ./clickquest.yaml if present)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Clickquest %s (terminal build)\n", version)
		return
	}

	_ = godotenv.Load()

	rt, err := setup(context.Background(), configPath, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = ui.NewApp(ui.AppConfig{
		Version: version,
		Title:   rt.cfg.Window.Title,
		Session: rt.session,
		Logger:  rt.logger,
	}).Run()
	rt.Close()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
