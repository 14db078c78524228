package sprite

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	_ "image/jpeg" // jpeg decoding for icon files saved with a wrong extension
	_ "image/png"  // png decoding, the icon directory's native format

	"github.com/sitedeck/sitedeck/pkg/errors"
)

// Skipped records one hostname whose icon file existed but could not be
// used, so callers can report exactly which icons were dropped and why.
type Skipped struct {
	Host string // hostname whose icon was dropped
	Path string // file that failed
	Err  error  // decode or validation failure
}

func (s Skipped) String() string {
	return fmt.Sprintf("%s (%s): %v", s.Host, s.Path, s.Err)
}

// LoadIcons resolves each hostname to an icon file under dir and decodes it.
//
// Per hostname the candidates are tried in lookup order: the exact hostname
// first, then its "www."-variant (stripped or prefixed). Files are named
// "<hostname>.png". The first existing file wins and the result is keyed by
// the *matched* candidate, which may differ from the input hostname.
//
// Icons are optional: a hostname with no matching file is skipped silently.
// A matching file that fails validation or decoding is recorded in the
// returned diagnostics and skipped; one broken icon never aborts the load.
func LoadIcons(dir string, hosts []string) (map[string]image.Image, []Skipped) {
	icons := make(map[string]image.Image)
	var skipped []Skipped

	for _, host := range hosts {
		for _, cand := range lookupKeys(host) {
			if err := errors.ValidateHostname(cand); err != nil {
				skipped = append(skipped, Skipped{Host: host, Path: cand + ".png", Err: err})
				break
			}

			path := filepath.Join(dir, cand+".png")
			if _, err := os.Stat(path); err != nil {
				continue // candidate absent, try the next spelling
			}

			img, err := decodeFile(path)
			if err != nil {
				skipped = append(skipped, Skipped{Host: host, Path: path, Err: err})
			} else {
				icons[cand] = img
			}
			break // first existing file wins, broken or not
		}
	}

	return icons, skipped
}

// decodeFile opens and decodes one image file. The file handle is released
// whether or not decoding succeeds.
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIconDecode, err, "opening %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIconDecode, err, "decoding %s", path)
	}
	return img, nil
}
