// Package page renders the generated HTML page.
//
// The template is plain HTML carrying literal placeholder tokens; rendering
// is token substitution, not a template language. Supported tokens:
//
//	__DATA__             JSON array of site entries
//	__CATEGORIES__       <option> list of distinct categories
//	__SPRITE_DATA_URI__  the encoded sprite sheet
//	__SPRITE_BG_SIZE__   sprite pixel dimensions, e.g. "288px 24px"
//	__BUILD_VERSION__    build version string
//
// The legacy __ICON_CSS_RULES__ token is neutralized to an empty string so
// older templates keep working.
package page

import (
	"encoding/json"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/sitedeck/sitedeck/pkg/errors"
	"github.com/sitedeck/sitedeck/pkg/registry"
)

// Data carries everything substituted into the template.
type Data struct {
	Sites         []registry.Site
	SpriteDataURI string
	SpriteBGSize  string
	Version       string
}

// Render substitutes d into template and returns the final page.
// The site payload is serialized with stable keys so diffs between builds
// stay readable.
func Render(template string, d Data) (string, error) {
	payload, err := json.Marshal(d.Sites)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "serializing site payload")
	}

	out := template
	out = strings.ReplaceAll(out, "__DATA__", string(payload))
	out = strings.ReplaceAll(out, "__CATEGORIES__", CategoryOptions(d.Sites))
	out = strings.ReplaceAll(out, "__SPRITE_DATA_URI__", d.SpriteDataURI)
	out = strings.ReplaceAll(out, "__SPRITE_BG_SIZE__", d.SpriteBGSize)
	out = strings.ReplaceAll(out, "__BUILD_VERSION__", d.Version)

	// In case older templates still have this placeholder, neutralize it.
	out = strings.ReplaceAll(out, "__ICON_CSS_RULES__", "")
	return out, nil
}

// CategoryOptions builds the <option> list for the category filter, one
// element per distinct non-empty category in sorted order. Values are
// HTML-escaped.
func CategoryOptions(sites []registry.Site) string {
	cats := registry.Categories(sites)
	opts := make([]string, len(cats))
	for i, c := range cats {
		esc := html.EscapeString(c)
		opts[i] = fmt.Sprintf(`<option value="%s">%s</option>`, esc, esc)
	}
	return strings.Join(opts, "\n        ")
}

// LoadTemplate reads the template file at path.
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrap(errors.ErrCodeTemplateNotFound, err, "template %s not found", path)
		}
		return "", errors.Wrap(errors.ErrCodeInternal, err, "reading template %s", path)
	}
	return string(data), nil
}

// Write writes the rendered page to path, creating parent directories as
// needed.
func Write(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "creating output directory %s", dir)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing %s", path)
	}
	return nil
}
