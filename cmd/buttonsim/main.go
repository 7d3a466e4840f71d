package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/automoto/pushbutton/assets"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/automoto/pushbutton/scenes"
	"github.com/automoto/pushbutton/systems"
)

func main() {
	scenePath := flag.String("scene", assets.DefaultScene, "Embedded scene name, or a .tmx file on disk")
	profilesPath := flag.String("profiles", "", "YAML button profiles replacing the embedded ones")
	duration := flag.Duration("duration", 10*time.Second, "Simulated time to run")
	tickRate := flag.Int("tickrate", cfg.Sim.TickRate, "Simulation ticks per second")
	realtime := flag.Bool("realtime", false, "Pace ticks with the wall clock")
	drop := flag.Bool("drop", true, "Release every held weight at start")
	logTransitions := flag.Bool("log-transitions", cfg.Debug.LogTransitions, "Log every button state change")
	useOverrides := flag.Bool("overrides", false, "Apply tunable overrides saved by the viewer")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("Invalid -tickrate %d: must be positive", *tickRate)
	}
	cfg.Sim.TickRate = *tickRate
	cfg.Debug.LogTransitions = *logTransitions

	if *profilesPath != "" {
		f, err := os.Open(*profilesPath)
		if err != nil {
			log.Fatalf("Failed to open profiles: %v", err)
		}
		err = cfg.ReloadProfiles(f)
		f.Close()
		if err != nil {
			log.Fatalf("Invalid profiles %s: %v", *profilesPath, err)
		}
	}

	scene, err := loadScene(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	opts := scenes.Options{}
	if *useOverrides {
		if err := systems.InitPersistence(cfg.AppName); err == nil {
			opts.Overrides, _ = systems.LoadTunableOverrides()
		}
	}

	e, err := scenes.Build(scene, opts)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	if *drop {
		scenes.DropAll(e)
	}

	runner := scenes.NewRunner(e, *tickRate, *realtime)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping simulation...")
		runner.Stop()
	}()

	log.Printf("Simulating %s for %s", scene.Name, *duration)
	runner.Run(*duration)
	scenes.Report(e)
}

func loadScene(path string) (assets.Scene, error) {
	if _, err := os.Stat(path); err == nil {
		return assets.LoadScene(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	}
	return assets.LoadScene(assets.SceneFS(), path)
}
