// Package locale holds the translated strings shown by the renderers.
// Message ids are the keys used across the game (cell labels, property
// names, tip panel names, UI captions).
package locale

import (
	_ "embed"
	"fmt"

	"github.com/leonelquinteros/gotext"

	"boardmap/pkg/engine/world"
)

//go:embed en.po
var enPo []byte

var catalog = load(enPo)

func load(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// Get returns the translation for id, or id itself when none exists.
func Get(id string) string {
	// nil... passes no format args (gotext returns the text unformatted)
	// while keeping vet's printf check from treating id as a format string.
	return catalog.Get(id, nil...)
}

// Format translates id and formats it with args.
func Format(id string, args ...any) string {
	return fmt.Sprintf(Get(id), args...)
}

// CellType returns the display name of a cell type
func CellType(t world.CellType) string {
	return Get(t.Label())
}
