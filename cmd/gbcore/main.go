// Command gbcore runs a cartridge image to completion through the
// windowed presentation adapter. It is the thin front end spec.md §1
// scopes out of THE CORE: argument parsing, ROM loading, and wiring the
// chosen display driver.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/thornewood/gbcore/internal/gameboy"
	"github.com/thornewood/gbcore/pkg/display/sdlfrontend"
	"github.com/thornewood/gbcore/pkg/display/streamfrontend"
	"github.com/thornewood/gbcore/pkg/log"
	"github.com/thornewood/gbcore/pkg/romfile"
)

func main() {
	test := flag.Bool("test", false, "print cartridge header information and exit")
	stream := flag.String("stream", "", "serve the display over a websocket at this address instead of opening a window")
	flag.Parse()

	logger := log.New()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: gbcore <rom-path> [--test] [--stream addr]")
		os.Exit(1)
	}
	romPath := flag.Arg(0)

	rom, err := romfile.Load(romPath)
	if err != nil {
		logger.Errorf("unable to load rom %s: %s", romPath, err)
		os.Exit(1)
	}

	gb, err := gameboy.New(rom, romfile.SavePath(romPath))
	if err != nil {
		logger.Errorf("unable to start cartridge %s: %s", romPath, err)
		os.Exit(1)
	}

	if *test {
		h := gb.Cartridge.Header()
		fmt.Printf("title:          %s\n", h.Title)
		fmt.Printf("cartridge type: %s\n", h.CartridgeType)
		fmt.Printf("ram size:       %d bytes\n", h.RAMSize)
		return
	}

	if *stream != "" {
		if err := streamfrontend.New(*stream, logger).Run(gb); err != nil {
			logger.Fatal(err.Error())
		}
		return
	}

	driver, err := sdlfrontend.New("gbcore — " + gb.Cartridge.Header().Title)
	if err != nil {
		logger.Fatal(err.Error())
	}
	if err := driver.Run(gb); err != nil {
		logger.Fatal(err.Error())
	}
}
