//go:build cgo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/appengine-ltd/clickquest/internal/gui"
	"github.com/appengine-ltd/clickquest/internal/ui"
)

func main() {
	var (
		showVersion bool
		classic     bool
		configPath  string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&classic, "classic", false, "play in the terminal instead of a window")
	flag.StringVar(&configPath, "config", "", "settings file (default ./clickquest.yaml if present)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Clickquest %s\n", version)
		return
	}

	_ = godotenv.Load()

	rt, err := setup(context.Background(), configPath, classic)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if classic {
		err = ui.NewApp(ui.AppConfig{
			Version: version,
			Title:   rt.cfg.Window.Title,
			Session: rt.session,
			Logger:  rt.logger,

			TerminalLogger: rt.terminalLogger,
		}).Run()
	} else {
		err = gui.NewApp(gui.AppConfig{
			Version: version,
			Title:   rt.cfg.Window.Title,
			FPS:     int32(rt.cfg.Window.FPS),
			Session: rt.session,
			Logger:  rt.logger,

			TerminalLogger: rt.terminalLogger,
		}).Run()
	}
	rt.Close()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
