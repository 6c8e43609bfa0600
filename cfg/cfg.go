// Package cfg loads run configuration and maze layout files for the
// harnesses.
package cfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zucenko/mazehunt/model"
)

type Config struct {
	MazeFile    string `yaml:"maze_file"` // empty selects the built-in example maze
	TileX       int    `yaml:"tile_x"`
	TileY       int    `yaml:"tile_y"`
	MaxRounds   int    `yaml:"max_rounds"`
	Games       int    `yaml:"games"`
	Goody0      string `yaml:"goody0"`
	Goody1      string `yaml:"goody1"`
	Baddy       string `yaml:"baddy"`
	Seed        int64  `yaml:"seed"` // 0 seeds from the clock
	StatsDB     string `yaml:"stats_db"`
	StepDelayMs int    `yaml:"step_delay_ms"`
}

func Default() Config {
	return Config{
		TileX:       1,
		TileY:       1,
		MaxRounds:   10000,
		Games:       1000,
		Goody0:      "random",
		Goody1:      "random",
		Baddy:       "random",
		StepDelayMs: 100,
	}
}

// Load reads a YAML config over the defaults.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// built-in 10x10 demo maze
const exampleLayout = "0001010000" +
	"0111010101" +
	"0100000011" +
	"0110100010" +
	"0000100110" +
	"1111100000" +
	"0000001000" +
	"1000111010" +
	"0010001010" +
	"1100101010"

// ExampleMaze returns the built-in 10x10 example maze.
func ExampleMaze() *model.Maze {
	m, err := model.NewMazeWithLayout(10, 10, exampleLayout)
	if err != nil {
		panic(err) // the layout is a compile-time constant
	}
	return m
}

// BuildMaze resolves the maze a config asks for: file or built-in, then
// tiling.
func BuildMaze(c Config) (*model.Maze, error) {
	var m *model.Maze
	var err error
	if c.MazeFile == "" {
		m = ExampleMaze()
	} else if m, err = LoadMaze(c.MazeFile); err != nil {
		return nil, err
	}
	if c.TileX > 1 || c.TileY > 1 {
		return m.Tile(max(c.TileX, 1), max(c.TileY, 1))
	}
	return m, nil
}
