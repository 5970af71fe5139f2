package signals

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Rating holds a player's ability ratings from the video-game dataset, 0-99.
type Rating struct {
	Overall      int
	Speed        int
	Acceleration int
}

// LoadRatings parses an ability ratings CSV with the columns
// player_name, school, ovr, spd, acc. Extra columns are ignored.
func LoadRatings(path string) (map[string]Rating, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read ratings header: %w", err)
	}
	cols := columnIndex(header)

	ratings := make(map[string]Rating)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read ratings row: %w", err)
		}

		name := field(row, cols, "player_name")
		school := field(row, cols, "school")
		if name == "" || school == "" {
			continue
		}

		ratings[Key(name, school)] = Rating{
			Overall:      atoiOrZero(field(row, cols, "ovr")),
			Speed:        atoiOrZero(field(row, cols, "spd")),
			Acceleration: atoiOrZero(field(row, cols, "acc")),
		}
	}

	return ratings, nil
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[h] = i
	}
	return cols
}

func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
