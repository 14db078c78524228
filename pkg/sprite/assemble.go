package sprite

import (
	"image"
	"sort"

	"github.com/disintegration/imaging"
)

// Position is the pixel offset of one icon's cell inside the sprite sheet.
type Position struct {
	X int
	Y int
}

// Assembled is the output of a grid layout: the composite sheet plus the
// per-hostname offset and color maps that outlive the pipeline.
type Assembled struct {
	// Sheet is the composite canvas, Columns*IconSize wide and
	// ceil(n/Columns)*IconSize tall. With zero icons it is a 1×1 sentinel
	// canvas in the build's fill policy.
	Sheet *image.NRGBA

	// Positions maps each hostname with a resolvable icon to its cell
	// offset. Hostnames without icons are simply absent.
	Positions map[string]Position

	// Colors maps hostnames to dominant colors; populated only when color
	// extraction produced values.
	Colors map[string]string
}

// Assembler lays normalized icons out on a fixed-column grid.
type Assembler struct {
	cfg Config
}

// NewAssembler creates an assembler for the given configuration.
// The configuration must already be validated.
func NewAssembler(cfg Config) *Assembler {
	return &Assembler{cfg: cfg}
}

// Assemble pastes every icon onto the grid and records its offset.
//
// Cells are assigned in ascending lexicographic hostname order: index i goes
// to cell ((i mod cols)*size, (i div cols)*size). The layout is a pure
// function of the hostname set, so a fixed set produces identical positions
// on every run, and no two hostnames can share a cell.
func (a *Assembler) Assemble(icons map[string]Icon) *Assembled {
	size := a.cfg.IconSize
	cols := a.cfg.Columns
	bg := (&Normalizer{cfg: a.cfg}).background()

	if len(icons) == 0 {
		return &Assembled{
			Sheet:     imaging.New(1, 1, bg),
			Positions: map[string]Position{},
			Colors:    map[string]string{},
		}
	}

	hosts := make([]string, 0, len(icons))
	for host := range icons {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)

	rows := (len(hosts) + cols - 1) / cols
	sheet := imaging.New(cols*size, rows*size, bg)

	positions := make(map[string]Position, len(hosts))
	colors := make(map[string]string)

	for i, host := range hosts {
		ic := icons[host]
		pos := Position{X: (i % cols) * size, Y: (i / cols) * size}
		sheet = imaging.Paste(sheet, ic.Image, image.Pt(pos.X, pos.Y))
		positions[host] = pos
		if ic.Color != "" {
			colors[host] = ic.Color
		}
	}

	return &Assembled{Sheet: sheet, Positions: positions, Colors: colors}
}
