package cfg

import (
	"bufio"
	"io"
	"os"

	"github.com/zucenko/mazehunt/model"
)

// LoadMaze reads a maze layout file: one line per row, top row first, '1'
// for wall and '0' for space, every line the same length.
func LoadMaze(path string) (*model.Maze, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadMaze(file)
}

func ReadMaze(reader io.Reader) (*model.Maze, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)

	width := 0
	layout := ""
	rows := 0
	for scanner.Scan() {
		line := scanner.Text()
		if rows == 0 {
			width = len(line)
		} else if len(line) != width {
			return nil, &model.InvalidLayoutError{Reason: "all rows must have the same length"}
		}
		layout += line
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, &model.InvalidLayoutError{Reason: "empty maze file"}
	}
	return model.NewMazeWithLayout(width, rows, layout)
}
