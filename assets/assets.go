package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/lafriks/go-tiled"
)

//go:embed all:scenes
var sceneFS embed.FS

// DefaultScene is the bench scene shipped with the binary
const DefaultScene = "scenes/testbench.tmx"

// Scene is a button layout read from a Tiled map.
// Coordinates are collision plane units with Y down.
type Scene struct {
	Name     string
	Width    int
	Height   int
	Buttons  []ButtonSpawn
	Pressers []PresserSpawn
}

// ButtonSpawn places one button. X is the center and Bottom the underside of its base.
type ButtonSpawn struct {
	Name    string
	Profile string
	X       float64
	Bottom  float64
}

// PresserSpawn places a trigger volume. X is its center and Bottom its underside.
type PresserSpawn struct {
	Name   string
	Motion string
	X      float64
	Bottom float64
	Width  float64
	Height float64
	Travel float64 // meters, cycle only
	Period float64 // seconds, cycle only
}

// SceneFS returns the embedded scene files.
func SceneFS() fs.FS {
	return sceneFS
}

// SceneNames lists the embedded .tmx files.
func SceneNames() ([]string, error) {
	entries, err := sceneFS.ReadDir("scenes")
	if err != nil {
		return nil, fmt.Errorf("read scenes directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, path.Join("scenes", entry.Name()))
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadScene reads the Buttons and Pressers object groups of a Tiled map.
func LoadScene(fsys fs.FS, name string) (Scene, error) {
	sceneMap, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return Scene{}, fmt.Errorf("load scene %s: %w", name, err)
	}

	scene := Scene{
		Name:   name,
		Width:  sceneMap.Width * sceneMap.TileWidth,
		Height: sceneMap.Height * sceneMap.TileHeight,
	}

	for _, og := range sceneMap.ObjectGroups {
		switch og.Name {
		case "Buttons":
			for _, o := range og.Objects {
				scene.Buttons = append(scene.Buttons, ButtonSpawn{
					Name:    o.Name,
					Profile: o.Properties.GetString("profile"),
					X:       o.X + o.Width/2,
					Bottom:  o.Y + o.Height,
				})
			}
			// Left to right, so selection order follows the layout
			sort.SliceStable(scene.Buttons, func(i, j int) bool {
				return scene.Buttons[i].X < scene.Buttons[j].X
			})
		case "Pressers":
			for _, o := range og.Objects {
				scene.Pressers = append(scene.Pressers, PresserSpawn{
					Name:   o.Name,
					Motion: o.Properties.GetString("motion"),
					X:      o.X + o.Width/2,
					Bottom: o.Y + o.Height,
					Width:  o.Width,
					Height: o.Height,
					Travel: o.Properties.GetFloat("travel"),
					Period: o.Properties.GetFloat("period"),
				})
			}
		}
	}

	if len(scene.Buttons) == 0 {
		return scene, fmt.Errorf("scene %s has no buttons", name)
	}
	return scene, nil
}

// MustLoadScene loads an embedded scene and panics on failure.
func MustLoadScene(name string) Scene {
	scene, err := LoadScene(sceneFS, name)
	if err != nil {
		panic(err)
	}
	return scene
}
