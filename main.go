package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/pushbutton/assets"
	"github.com/automoto/pushbutton/config"
	"github.com/automoto/pushbutton/fonts"
	"github.com/automoto/pushbutton/scenes"
	"github.com/automoto/pushbutton/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene assets.Scene) *Game {
	if err := fonts.LoadDefaultFonts(config.Viewer.HUDFontSize); err != nil {
		log.Printf("Warning: HUD disabled: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewBenchScene(scene),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Viewer.Width, config.Viewer.Height)
	return config.Viewer.Width, config.Viewer.Height
}

func main() {
	scenePath := flag.String("scene", assets.DefaultScene, "Embedded scene to open")
	profilesPath := flag.String("profiles", "", "YAML button profiles replacing the embedded ones")
	colliders := flag.Bool("colliders", config.Debug.ShowColliders, "Draw collision objects")
	logTransitions := flag.Bool("log-transitions", config.Debug.LogTransitions, "Log every button state change")
	volume := flag.Float64("volume", config.Audio.DefaultSFXVol, "Sound effect volume (0.0 - 1.0)")
	flag.Parse()

	config.Audio.DefaultSFXVol = *volume
	config.Debug.ShowColliders = *colliders
	config.Debug.LogTransitions = *logTransitions

	if *profilesPath != "" {
		f, err := os.Open(*profilesPath)
		if err != nil {
			log.Fatalf("Failed to open profiles: %v", err)
		}
		err = config.ReloadProfiles(f)
		f.Close()
		if err != nil {
			log.Fatalf("Invalid profiles %s: %v", *profilesPath, err)
		}
	}

	scene, err := assets.LoadScene(assets.SceneFS(), *scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	ebiten.SetWindowSize(config.Viewer.Width*2, config.Viewer.Height*2)
	ebiten.SetWindowTitle("pushbutton")
	ebiten.SetTPS(config.Sim.TickRate)

	// Initialize persistence for authoring overrides
	if err := systems.InitPersistence(config.AppName); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}
