package sprite

import (
	"github.com/sitedeck/sitedeck/pkg/registry"
)

// Bind attaches sprite offsets (and colors, when present) to the sites whose
// hostnames resolved to an icon.
//
// Each site's hostname is looked up in positions with the same candidate
// order the loader used: exact form first, then the "www." variant. Matched
// sites come back as enriched copies; unmatched sites are returned
// unchanged. The input slice is never mutated.
func Bind(sites []registry.Site, positions map[string]Position, colors map[string]string) []registry.Site {
	out := make([]registry.Site, 0, len(sites))
	for _, s := range sites {
		key, ok := matchPosition(Hostname(s.URL), positions)
		if !ok {
			out = append(out, s)
			continue
		}

		pos := positions[key]
		x, y := pos.X, pos.Y
		s.IconX = &x
		s.IconY = &y
		if c, ok := colors[key]; ok {
			color := c
			s.IconColor = &color
		}
		out = append(out, s)
	}
	return out
}

// matchPosition finds the position key for host, trying each lookup
// candidate in order.
func matchPosition(host string, positions map[string]Position) (string, bool) {
	for _, cand := range lookupKeys(host) {
		if _, ok := positions[cand]; ok {
			return cand, true
		}
	}
	return "", false
}
