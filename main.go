package main

import (
	"flag"
	"log"

	"github.com/N3kTarinka/the-snake/internal/config"
	"github.com/N3kTarinka/the-snake/internal/ebitenui"
	"github.com/N3kTarinka/the-snake/internal/snake"
	"github.com/N3kTarinka/the-snake/internal/termui"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	term := flag.Bool("term", false, "play in the terminal instead of a window")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	g := snake.New(cfg.Grid(), snake.NewRand(cfg.Seed))

	if *term {
		if err := termui.Run(g, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := ebitenui.Run(ebitenui.New(g, cfg)); err != nil {
		log.Fatal(err)
	}
}
