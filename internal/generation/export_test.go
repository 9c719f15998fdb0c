package generation

import "time"

// SetNow overrides the generator clock for tests.
func SetNow(g *Generator, now func() time.Time) {
	g.now = now
}
