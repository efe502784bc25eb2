package game

import "github.com/pthm-cable/driftgrid/components"

// spawnParticles fills the world with the fixed particle population:
// uniformly random positions across the grid and independently random
// color bytes. The population never grows or shrinks after this.
func (g *Game) spawnParticles(count int) {
	w := float64(g.field.Rows())
	h := float64(g.field.Cols())

	for i := 0; i < count; i++ {
		pos := components.Position{
			X: g.rng.Float64() * w,
			Y: g.rng.Float64() * h,
		}
		tint := components.Tint{
			R: uint8(g.rng.Intn(256)),
			G: uint8(g.rng.Intn(256)),
			B: uint8(g.rng.Intn(256)),
		}
		g.mapper.NewEntity(&pos, &tint)
	}
}
