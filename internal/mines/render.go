package mines

import "strings"

// RenderField returns the player's view of the field, one string per row,
// top to bottom. Cell precedence: a mine on a lost game renders "*" (even
// when flagged), then "?" for a flag, "-" for a closed cell, and an opened
// cell shows its neighbor mine count ("." when zero).
func (g *Game) RenderField() []string {
	rows := make([]string, g.Height)
	var b strings.Builder
	for y := range g.Height {
		b.Reset()
		b.Grow(g.Width)
		for x := range g.Width {
			c := Cell{x, y}
			switch {
			case g.isMine(c) && g.status == Defeat:
				b.WriteByte('*')
			case g.isFlagged(c):
				b.WriteByte('?')
			case g.isClosed(c):
				b.WriteByte('-')
			default:
				if n := g.minesNear(c); n == 0 {
					b.WriteByte('.')
				} else {
					b.WriteByte(byte('0' + n))
				}
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func (g *Game) String() string {
	return strings.Join(g.RenderField(), "\n")
}
