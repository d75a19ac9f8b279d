package battleship

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

const (
	hitMark  = 'X'
	missMark = 'o'
	seaMark  = '.'
)

// PrintState - writes a human readable dump of the state.
func PrintState(w io.Writer, state *entity.GameState) {
	for _, player := range state.Players {
		ships := make([]string, 0, len(player.Ships))
		for _, ship := range player.Ships {
			ships = append(ships, fmt.Sprintf("%s: %v", ship.Name, ship.Location))
		}

		fmt.Fprintf(w, "%s's State:\n", player.Name)
		fmt.Fprintf(w, "  Ships: [%s]\n", strings.Join(ships, ", "))
		fmt.Fprintf(w, "  Shots: %v\n", player.Shots)
		fmt.Fprintf(w, "  Successful Shots: %v\n", player.SuccessfulShots)
	}

	fmt.Fprintf(w, "Game Phase: %s\n", state.Phase)
	fmt.Fprintf(w, "Active Player: Player %d\n", state.ActivePlayer+1)
}

// DescribeAction - one line summary, e.g. "Shooting at [B1]".
func DescribeAction(action entity.Action) string {
	switch act := action.(type) {
	case entity.SetShip:
		return act.String()
	case entity.Shoot:
		return act.String()
	default:
		return "No action"
	}
}

// PrintBoard - the grid of shots fired by player: X for hits, o for misses.
func PrintBoard(w io.Writer, player *entity.PlayerState) {
	hits := make(map[string]bool, len(player.SuccessfulShots))
	for _, cell := range player.SuccessfulShots {
		hits[cell] = true
	}

	var sb strings.Builder

	sb.WriteString("   ")
	for col := 1; col <= entity.GridSize; col++ {
		fmt.Fprintf(&sb, "%3d", col)
	}
	sb.WriteByte('\n')

	for row := 0; row < entity.GridSize; row++ {
		fmt.Fprintf(&sb, "%c  ", rune('A'+row))

		for col := 0; col < entity.GridSize; col++ {
			cell := entity.FormatCoordinate(row, col)

			mark := seaMark
			switch {
			case hits[cell]:
				mark = hitMark
			case player.HasShot(cell):
				mark = missMark
			}

			fmt.Fprintf(&sb, "%3c", mark)
		}
		sb.WriteByte('\n')
	}

	fmt.Fprint(w, sb.String())
}
