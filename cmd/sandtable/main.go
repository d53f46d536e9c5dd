//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sandtable/internal/app"
	"sandtable/internal/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg := sandbox.DefaultConfig()
	simCfg.Width = cfg.Width
	simCfg.Height = cfg.Height
	simCfg.Seed = cfg.Seed
	simCfg.Params.PoolCapacity = cfg.Pool

	eng, err := sandbox.NewWithConfig(simCfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(eng, cfg.Scale, cfg.Seed)
	size := eng.Size()

	ebiten.SetWindowTitle("sandtable")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
