package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilepaint/config"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "YAML config file")
	textureDir := flag.String("dir", "", "directory to read textures from instead of the embedded set")
	watch := flag.Bool("watch", false, "reload textures from -dir when they change")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, found, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *textureDir != "" {
		cfg.TextureDir = *textureDir
	}
	if *watch {
		cfg.Watch = true
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if err := setupLogging(cfg.LogLevel); err != nil {
		log.Fatal(err)
	}
	if !found {
		logrus.WithField("path", *configPath).Debug("no config file, using defaults")
	}

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	w, h := game.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Title)

	if err := ebiten.RunGame(game); err != nil {
		game.Close()
		log.Fatal(err)
	}
}
