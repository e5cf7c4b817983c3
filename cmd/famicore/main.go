package main

import (
	"flag"
	"log"

	"github.com/pkg/profile"

	"github.com/famicore/famicore/internal/nes"
	"github.com/famicore/famicore/internal/ui"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES rom file")
	paused := flag.Bool("paused", false, "start paused, step with R/F keys")
	profiled := flag.Bool("profile", false, "write a cpu profile into the current directory")
	flag.Parse()

	if *romPath == "" {
		log.Fatalln("rom path is required: famicore -rom <file.nes>")
	}

	if *profiled {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	cart, err := nes.NewCartFromFile(*romPath)
	if err != nil {
		log.Fatalf("couldn't load the cartridge: %s\n", err)
	}

	bus := nes.NewBus()
	bus.InsertCartridge(cart)
	bus.Reset()
	if *paused {
		bus.TogglePause()
	}

	if err := ui.RunUI(ui.New(bus)); err != nil {
		log.Fatalf("ui failed: %s\n", err)
	}
}
