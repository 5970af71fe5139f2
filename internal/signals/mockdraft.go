package signals

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Worst-case draft capital: the final pick of the final round.
const (
	lastPick  = 260
	lastRound = 7
)

// DraftCapital is a professional draft desirability estimate for one player.
type DraftCapital struct {
	ProjectedPick  int
	ProjectedRound int
	Score          float64 // 0-1, monotonically decreasing in ProjectedPick
	Source         string
}

// DraftCapitalScore converts a projected pick to a 0-1 score; an earlier
// pick scores higher and pick 260 or later scores zero.
func DraftCapitalScore(pick int) float64 {
	s := float64(lastPick-pick) / lastPick
	if s < 0 {
		return 0
	}
	return s
}

// LoadDraftCapital parses a mock-draft CSV with the columns
// player_name, school, projected_pick, projected_round, source. Rows missing
// a pick or round fall back to the worst case (pick 260, round 7).
func LoadDraftCapital(path string) (map[string]DraftCapital, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read mock draft header: %w", err)
	}
	cols := columnIndex(header)

	capital := make(map[string]DraftCapital)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read mock draft row: %w", err)
		}

		name := field(row, cols, "player_name")
		school := field(row, cols, "school")
		if name == "" || school == "" {
			continue
		}

		pick := atoiOrZero(field(row, cols, "projected_pick"))
		if pick == 0 {
			pick = lastPick
		}
		round := atoiOrZero(field(row, cols, "projected_round"))
		if round == 0 {
			round = lastRound
		}

		capital[Key(name, school)] = DraftCapital{
			ProjectedPick:  pick,
			ProjectedRound: round,
			Score:          DraftCapitalScore(pick),
			Source:         field(row, cols, "source"),
		}
	}

	return capital, nil
}
