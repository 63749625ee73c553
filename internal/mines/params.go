package mines

import (
	"fmt"
	"log/slog"
	"strings"
)

var Log *slog.Logger = slog.Default()

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) CellCount() int {
	return p.Width * p.Height
}

func (p GameParams) InBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}

/*
Validate rejects parameters no field can be built from. A mine count
above half the board and a mine count of zero are both legal but
probably not what the caller wanted, so they are reported through the
package logger instead of failing.
*/
func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("board dimensions must be positive, got %dx%d", p.Width, p.Height)
	}
	total := p.CellCount()
	if p.MineCount < 0 {
		return fmt.Errorf("mine count cannot be negative, got %d", p.MineCount)
	}
	if p.MineCount >= total {
		return fmt.Errorf(
			"too many mines for a %dx%d board: %d mines on %d cells",
			p.Width, p.Height, p.MineCount, total,
		)
	}
	if p.MineCount > total/2 {
		Log.Warn(
			"dense minefield",
			slog.Int("mines", p.MineCount),
			slog.String("density", fmt.Sprintf("%.1f%%", float64(p.MineCount)/float64(total)*100)),
		)
	}
	if p.MineCount == 0 {
		reasonable := max(1, total/8)
		Log.Info(
			"empty minefield, consider adding mines",
			slog.Int("suggested", reasonable),
			slog.String("board", fmt.Sprintf("%dx%d", p.Width, p.Height)),
		)
	}
	return nil
}
