package stats

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazehunt/game"
)

func TestTally(t *testing.T) {
	tally := NewTally()
	require.Equal(t, 0, tally.Games)

	tally.Record(game.GOODIES_WIN, 10)
	tally.Record(game.GOODIES_WIN, 20)
	tally.Record(game.BADDY_WINS, 5)
	tally.Record(game.DRAW, 100)

	require.Equal(t, 4, tally.Games)
	require.Equal(t, 135, tally.TotalRounds)
	require.Equal(t, 2, tally.Count(game.GOODIES_WIN))
	require.Equal(t, 1, tally.Count(game.BADDY_WINS))
	require.Equal(t, 1, tally.Count(game.DRAW))

	require.Equal(t, "goodies: 2  baddy: 1  draw: 1  (4 games, avg 33.8 rounds)", tally.String())
}

func TestTallyStringEmpty(t *testing.T) {
	require.Equal(t, "goodies: 0  baddy: 0  draw: 0  (0 games, avg 0.0 rounds)", NewTally().String())
}

func TestSQLiteSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")

	sink, err := OpenSQLite(path)
	require.NoError(t, err)

	require.NoError(t, sink.Record("a", game.GOODIES_WIN, 12))
	require.NoError(t, sink.Record("b", game.GOODIES_WIN, 30))
	require.NoError(t, sink.Record("c", game.BADDY_WINS, 4))

	summary, err := sink.Summary()
	require.NoError(t, err)
	require.Equal(t, map[string]int{
		game.GOODIES_WIN.Name(): 2,
		game.BADDY_WINS.Name():  1,
	}, summary)

	// duplicate ids are rejected by the primary key
	require.Error(t, sink.Record("a", game.DRAW, 1))
	require.NoError(t, sink.Close())

	// rows survive a reopen
	sink, err = OpenSQLite(path)
	require.NoError(t, err)
	defer sink.Close()
	summary, err = sink.Summary()
	require.NoError(t, err)
	require.Equal(t, 2, summary[game.GOODIES_WIN.Name()])
}

func TestOpenSQLiteRejectsEmptyPath(t *testing.T) {
	_, err := OpenSQLite("")
	require.Error(t, err)
}
