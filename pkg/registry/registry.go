// Package registry loads and validates the site registry.
//
// The registry is a JSON file of the form:
//
//	{
//	  "sites": [
//	    {"name": "Example", "url": "https://example.com", "category": "Tools", "tags": ["a", "b"]}
//	  ]
//	}
//
// Entries without a name or url are dropped, string fields are trimmed, and
// tags are capped at five per site. The loaded list is sorted by
// (category, name, url) so that repeated builds see the sites in the same
// order.
package registry

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/sitedeck/sitedeck/pkg/errors"
)

// MaxTags is the maximum number of tags kept per site.
const MaxTags = 5

// Site is one entry of the site registry.
//
// IconX, IconY and IconColor are nil until the sprite build attaches icon
// metadata; they serialize as null so the generated page sees a stable key
// set for every site.
type Site struct {
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`

	IconX     *int    `json:"icon_x"`
	IconY     *int    `json:"icon_y"`
	IconColor *string `json:"icon_color"`
}

// file mirrors the registry's on-disk layout.
type file struct {
	Sites []rawSite `json:"sites"`
}

type rawSite struct {
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// Load reads the registry file at path and returns the normalized site list.
//
// It returns ErrCodeRegistryNotFound when the file does not exist and
// ErrCodeInvalidRegistry when it cannot be parsed. Individual entries
// missing a name or url are skipped, not treated as errors.
func Load(path string) ([]Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeRegistryNotFound, err, "registry %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidRegistry, err, "reading registry %s", path)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRegistry, err, "parsing registry %s", path)
	}

	return normalize(f.Sites), nil
}

// normalize trims fields, drops incomplete entries, caps tags and sorts the
// result deterministically by (category, name, url).
func normalize(raw []rawSite) []Site {
	sites := make([]Site, 0, len(raw))
	for _, r := range raw {
		name := strings.TrimSpace(r.Name)
		url := strings.TrimSpace(r.URL)
		if name == "" || url == "" {
			continue
		}

		var tags []string
		for _, t := range r.Tags {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			tags = append(tags, t)
			if len(tags) == MaxTags {
				break
			}
		}

		sites = append(sites, Site{
			Name:     name,
			URL:      url,
			Category: strings.TrimSpace(r.Category),
			Tags:     tags,
		})
	}

	sort.Slice(sites, func(i, j int) bool {
		if sites[i].Category != sites[j].Category {
			return sites[i].Category < sites[j].Category
		}
		if sites[i].Name != sites[j].Name {
			return sites[i].Name < sites[j].Name
		}
		return sites[i].URL < sites[j].URL
	})
	return sites
}

// Categories returns the sorted set of distinct non-empty categories.
func Categories(sites []Site) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, s := range sites {
		if s.Category == "" || seen[s.Category] {
			continue
		}
		seen[s.Category] = true
		cats = append(cats, s.Category)
	}
	sort.Strings(cats)
	return cats
}
