package sprite

import (
	"testing"

	"github.com/sitedeck/sitedeck/pkg/registry"
)

func TestBindAttachesPositionAndColor(t *testing.T) {
	sites := []registry.Site{
		{Name: "A", URL: "https://a.example"},
		{Name: "B", URL: "https://b.example"},
	}
	positions := map[string]Position{"a.example": {X: 24, Y: 48}}
	colors := map[string]string{"a.example": "#8bb0d6"}

	out := Bind(sites, positions, colors)

	a := out[0]
	if a.IconX == nil || *a.IconX != 24 {
		t.Errorf("IconX = %v, want 24", a.IconX)
	}
	if a.IconY == nil || *a.IconY != 48 {
		t.Errorf("IconY = %v, want 48", a.IconY)
	}
	if a.IconColor == nil || *a.IconColor != "#8bb0d6" {
		t.Errorf("IconColor = %v, want #8bb0d6", a.IconColor)
	}

	b := out[1]
	if b.IconX != nil || b.IconY != nil || b.IconColor != nil {
		t.Errorf("unmatched site was modified: %+v", b)
	}
}

func TestBindMatchesAcrossWWWVariant(t *testing.T) {
	tests := []struct {
		name string
		url  string
		key  string // key the icon was filed under
	}{
		{name: "www url, bare key", url: "https://www.example.com", key: "example.com"},
		{name: "bare url, www key", url: "https://example.com", key: "www.example.com"},
		{name: "exact match", url: "https://example.com", key: "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sites := []registry.Site{{Name: "S", URL: tt.url}}
			positions := map[string]Position{tt.key: {X: 72, Y: 0}}

			out := Bind(sites, positions, nil)
			if out[0].IconX == nil {
				t.Fatalf("icon filed under %q not bound for url %q", tt.key, tt.url)
			}
			if *out[0].IconX != 72 {
				t.Errorf("IconX = %d, want 72", *out[0].IconX)
			}
		})
	}
}

func TestBindPrefersExactMatch(t *testing.T) {
	sites := []registry.Site{{Name: "S", URL: "https://www.example.com"}}
	positions := map[string]Position{
		"www.example.com": {X: 24, Y: 0},
		"example.com":     {X: 48, Y: 0},
	}

	out := Bind(sites, positions, nil)
	if *out[0].IconX != 24 {
		t.Errorf("IconX = %d, want 24 (exact host tried first)", *out[0].IconX)
	}
}

func TestBindDoesNotMutateInput(t *testing.T) {
	sites := []registry.Site{{Name: "A", URL: "https://a.example"}}
	positions := map[string]Position{"a.example": {X: 0, Y: 0}}

	Bind(sites, positions, nil)

	if sites[0].IconX != nil || sites[0].IconY != nil {
		t.Error("Bind mutated the input slice")
	}
}

func TestBindUnresolvableURL(t *testing.T) {
	sites := []registry.Site{{Name: "A", URL: "not a url"}}
	out := Bind(sites, map[string]Position{"a.example": {}}, nil)

	if out[0].IconX != nil {
		t.Error("site with unresolvable URL must pass through unchanged")
	}
	if len(out) != 1 {
		t.Errorf("len(out) = %d, want 1", len(out))
	}
}
