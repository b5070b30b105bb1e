package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"

	"ebiten-invaders/config"
)

func main() {
	profileFlag := flag.Bool("profile", false, "write a CPU profile to the working directory")
	flag.Parse()

	if *profileFlag {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	game := NewGame()

	windowWidth, windowHeight := config.GetScreenDimensions()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Invaders!")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
