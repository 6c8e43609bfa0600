package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazehunt/agents"
	"github.com/zucenko/mazehunt/cfg"
	"github.com/zucenko/mazehunt/game"
	"github.com/zucenko/mazehunt/model"
	"github.com/zucenko/mazehunt/render"
	"github.com/zucenko/mazehunt/stats"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("MAZEHUNT_CONFIG"), "path to a yaml config")
	mode := flag.String("mode", "stats", "text (watch one game) or stats (batch run)")
	games := flag.Int("games", 0, "override the number of games in stats mode")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	conf := cfg.Default()
	if *configPath != "" {
		var err error
		if conf, err = cfg.Load(*configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if *games > 0 {
		conf.Games = *games
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

	switch *mode {
	case "text":
		runText(maze, goody0, goody1, baddy, conf, rng)
	case "stats":
		runStats(maze, goody0, goody1, baddy, conf, rng)
	default:
		log.Fatalf("unknown mode %q (text, stats)", *mode)
	}
}

// runText plays a single game, printing the state after every round.
func runText(maze *model.Maze, goody0, goody1, baddy game.Factory, conf cfg.Config, rng *rand.Rand) {
	g, err := game.NewGame(maze, goody0(), goody1(), baddy(), conf.MaxRounds, rng)
	if err != nil {
		log.Fatalf("new game: %v", err)
	}

	delay := time.Duration(conf.StepDelayMs) * time.Millisecond
	status, rounds, err := g.Play(func(g *game.Game) {
		os.Stdout.WriteString(render.Game(g) + "\n\n")
		time.Sleep(delay)
	})
	if err != nil {
		log.Fatalf("play: %v", err)
	}
	log.Infof("result: %s after %d rounds", status, rounds)
}

// runStats plays conf.Games games back to back and tallies the outcomes.
func runStats(maze *model.Maze, goody0, goody1, baddy game.Factory, conf cfg.Config, rng *rand.Rand) {
	var sink *stats.SQLiteSink
	if conf.StatsDB != "" {
		var err error
		if sink, err = stats.OpenSQLite(conf.StatsDB); err != nil {
			log.Fatalf("stats db: %v", err)
		}
		defer sink.Close()
	}

	tally := stats.NewTally()
	next := game.Repeat(maze, goody0, goody1, baddy, conf.MaxRounds, rng)
	for i := 0; i < conf.Games; i++ {
		g, err := next()
		if err != nil {
			log.Fatalf("game %d: %v", i, err)
		}
		status, rounds, err := g.Play(nil)
		if err != nil {
			log.Fatalf("game %d: %v", i, err)
		}
		tally.Record(status, rounds)
		if sink != nil {
			if err := sink.Record(uuid.NewString(), status, rounds); err != nil {
				log.Fatalf("game %d: record: %v", i, err)
			}
		}
		if i%10 == 0 {
			log.Infof("%d / %d : %s", i, conf.Games, tally)
		}
	}
	log.Infof("done: %s", tally)

	if sink != nil {
		summary, err := sink.Summary()
		if err != nil {
			log.Fatalf("summary: %v", err)
		}
		log.Infof("recorded in %s: %v", conf.StatsDB, summary)
	}
}
