package engine

import "github.com/tomz197/asteroids-arcade/internal/loop/config"

// collisionGridCellSize is the cell size for the bullet grid.
// Must be >= the largest collision distance (bullets are points, so the
// largest asteroid radius).
const collisionGridCellSize = config.AsteroidRadiusLarge

// mortal is anything that can be pruned once dead.
type mortal interface {
	IsDead() bool
}

// prune compacts s in place, dropping dead entries. onRemove, if set, is
// called once for every dropped entry. The freed tail is zeroed so dropped
// entities are not kept alive by the backing array.
func prune[T mortal](s []T, onRemove func(T)) []T {
	kept := s[:0]
	for _, e := range s {
		if e.IsDead() {
			if onRemove != nil {
				onRemove(e)
			}
			continue
		}
		kept = append(kept, e)
	}
	clear(s[len(kept):])
	return kept
}

// checkShipCollision tests the ship against every asteroid. The first
// asteroid found destroys the ship.
func (g *Game) checkShipCollision() {
	for _, a := range g.asteroids {
		if g.ship.CollidesWith(a.Pos, a.Size) {
			g.destroyShip()
			return
		}
	}
}

// resolveHits destroys every asteroid touched by a live bullet. Each asteroid
// dies to at most one bullet, and each bullet kills at most one asteroid.
// Fragments are appended after the scan so they are not tested this tick.
func (g *Game) resolveHits() {
	if len(g.bullets) == 0 || len(g.asteroids) == 0 {
		return
	}

	g.bulletGrid.Clear()
	for i, b := range g.bullets {
		g.bulletGrid.Insert(b.Pos, i)
	}

	g.fragments = g.fragments[:0]
	kept := g.asteroids[:0]
	for _, a := range g.asteroids {
		hit := false
		g.bulletGrid.QueryAround(a.Pos, func(j int) bool {
			b := g.bullets[j]
			if b.IsDead() || !a.CollidesWith(b.Pos) {
				return false
			}
			b.Kill()
			hit = true
			return true
		})
		if !hit {
			kept = append(kept, a)
			continue
		}

		g.score += a.Type.Score()
		g.fragments = append(g.fragments, g.spawner.Fragments(a)...)
		g.emit(EventExplosion)
	}
	clear(g.asteroids[len(kept):])
	g.asteroids = append(kept, g.fragments...)
	clear(g.fragments)

	g.bullets = prune(g.bullets, nil)
}
