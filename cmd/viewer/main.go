// Viewer is a small ebiten GUI for watching games: step through rounds,
// run them at speed, and roll straight into the next game of the series.
//
// Keys: SPACE step, G go/stop, N new game, A toggle auto-start.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"

	"github.com/zucenko/mazehunt/agents"
	"github.com/zucenko/mazehunt/cfg"
	"github.com/zucenko/mazehunt/game"
	"github.com/zucenko/mazehunt/model"
	"github.com/zucenko/mazehunt/stats"
)

const (
	CELL       = 32
	HUD_HEIGHT = 56
	STEP_TICKS = 4 // auto-play round every 4 frames
	TWEEN_TIME = 0.15
)

var (
	COLOR_BG    = color.RGBA{70, 70, 70, 255}
	COLOR_WALL  = color.RGBA{20, 20, 20, 255}
	COLOR_GOODY = color.RGBA{10, 189, 56, 255}
	COLOR_BADDY = color.RGBA{250, 54, 54, 255}
	COLOR_PING  = color.RGBA{255, 255, 255, 255}
)

type sprite struct {
	x, y   float64
	tx, ty *gween.Tween
}

type Viewer struct {
	next    func() (*game.Game, error)
	g       *game.Game
	sprites map[game.Agent]*sprite

	running   bool
	autoStart bool
	tick      int
	tally     *stats.Tally

	wallImg  *ebiten.Image
	goodyImg *ebiten.Image
	baddyImg *ebiten.Image
	pingImg  *ebiten.Image
}

func newImage(w, h int, c color.Color) *ebiten.Image {
	img, err := ebiten.NewImage(w, h, ebiten.FilterDefault)
	if err != nil {
		log.Fatal(err)
	}
	if err := img.Fill(c); err != nil {
		log.Fatal(err)
	}
	return img
}

func NewViewer(next func() (*game.Game, error)) *Viewer {
	v := &Viewer{
		next:      next,
		autoStart: true,
		tally:     stats.NewTally(),
		wallImg:   newImage(CELL, CELL, COLOR_WALL),
		goodyImg:  newImage(CELL, CELL, COLOR_GOODY),
		baddyImg:  newImage(CELL, CELL, COLOR_BADDY),
		pingImg:   newImage(CELL/2, CELL/2, COLOR_PING),
	}
	v.newGame()
	return v
}

func (v *Viewer) newGame() {
	g, err := v.next()
	if err != nil {
		log.Fatalf("new game: %v", err)
	}
	v.g = g
	v.sprites = make(map[game.Agent]*sprite, 3)
	for _, agent := range g.Agents {
		x, y := v.cellPx(g.Position[agent])
		v.sprites[agent] = &sprite{x: x, y: y}
	}
}

// cellPx converts a maze position to the pixel position of its tile,
// inside the one-cell wall border, with y growing downwards on screen.
func (v *Viewer) cellPx(p model.Position) (float64, float64) {
	return float64((p.X + 1) * CELL), float64((v.g.Maze.Height - p.Y) * CELL)
}

func (v *Viewer) step() {
	if v.g.Status.Terminal() {
		if v.autoStart {
			v.newGame()
		}
		return
	}
	status, err := v.g.DoRound()
	if err != nil {
		log.Errorf("round %d: %v", v.g.Round, err)
		v.running = false
		return
	}
	for _, agent := range v.g.Agents {
		s := v.sprites[agent]
		tx, ty := v.cellPx(v.g.Position[agent])
		if tx != s.x {
			s.tx = gween.New(float32(s.x), float32(tx), TWEEN_TIME, ease.OutQuad)
		}
		if ty != s.y {
			s.ty = gween.New(float32(s.y), float32(ty), TWEEN_TIME, ease.OutQuad)
		}
	}
	if status.Terminal() {
		v.tally.Record(status, v.g.Round)
		if !v.autoStart {
			v.running = false
		}
	}
}

func (v *Viewer) updateTweens() {
	const dt = 1.0 / 60
	for _, s := range v.sprites {
		if s.tx != nil {
			cur, finished := s.tx.Update(dt)
			s.x = float64(cur)
			if finished {
				s.tx = nil
			}
		}
		if s.ty != nil {
			cur, finished := s.ty.Update(dt)
			s.y = float64(cur)
			if finished {
				s.ty = nil
			}
		}
	}
}

func (v *Viewer) update(screen *ebiten.Image) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		v.newGame()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		v.running = !v.running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		v.autoStart = !v.autoStart
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && !v.running {
		v.step()
	}
	if v.running {
		v.tick++
		if v.tick%STEP_TICKS == 0 {
			v.step()
		}
	}
	v.updateTweens()

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	v.draw(screen)
	return nil
}

func (v *Viewer) drawTile(screen, img *ebiten.Image, px, py float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(.92, .92)
	op.GeoM.Translate(px, py)
	screen.DrawImage(img, op)
}

func (v *Viewer) draw(screen *ebiten.Image) {
	if err := screen.Fill(COLOR_BG); err != nil {
		log.Printf("%v", err)
	}
	maze := v.g.Maze

	// border plus interior walls
	for y := -1; y <= maze.Height; y++ {
		for x := -1; x <= maze.Width; x++ {
			pos := model.Position{X: x, Y: y}
			if maze.Cell(pos) != model.WALL {
				continue
			}
			px := float64((x + 1) * CELL)
			py := float64((maze.Height - y) * CELL)
			v.drawTile(screen, v.wallImg, px, py)
		}
	}

	for _, agent := range v.g.Agents {
		s := v.sprites[agent]
		img := v.baddyImg
		if agent.CanPing() {
			img = v.goodyImg
		}
		v.drawTile(screen, img, s.x, s.y)
		if v.g.Ping {
			v.drawTile(screen, v.pingImg, s.x+CELL/4, s.y+CELL/4)
		}
	}

	hudTop := (maze.Height + 2) * CELL
	face := basicfont.Face7x13
	text.Draw(screen,
		fmt.Sprintf("Round: %d   Status: %s", v.g.Round, v.g.Status),
		face, 8, hudTop+16, color.White)
	text.Draw(screen,
		fmt.Sprintf("Goodies: %d  Baddy: %d  Draw: %d",
			v.tally.Count(game.GOODIES_WIN), v.tally.Count(game.BADDY_WINS), v.tally.Count(game.DRAW)),
		face, 8, hudTop+32, color.White)
	text.Draw(screen,
		fmt.Sprintf("SPACE step  G go/stop  N new  A auto-start:%v", v.autoStart),
		face, 8, hudTop+48, color.White)
}

func main() {
	configPath := flag.String("config", os.Getenv("MAZEHUNT_CONFIG"), "path to a yaml config")
	flag.Parse()

	conf := cfg.Default()
	if *configPath != "" {
		var err error
		if conf, err = cfg.Load(*configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}

	maze, err := cfg.BuildMaze(conf)
	if err != nil {
		log.Fatalf("maze: %v", err)
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	goody0, err := agents.GoodyFactory(conf.Goody0, rng)
	if err != nil {
		log.Fatal(err)
	}
	goody1, err := agents.GoodyFactory(conf.Goody1, rng)
	if err != nil {
		log.Fatal(err)
	}
	baddy, err := agents.BaddyFactory(conf.Baddy, rng)
	if err != nil {
		log.Fatal(err)
	}

	viewer := NewViewer(game.Repeat(maze, goody0, goody1, baddy, conf.MaxRounds, rng))

	width := (maze.Width + 2) * CELL
	height := (maze.Height+2)*CELL + HUD_HEIGHT
	if err := ebiten.Run(viewer.update, width, height, 1, "mazehunt"); err != nil {
		log.Fatal(err)
	}
}
