package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFonts prepares the monospace face used for labels
func (v *Viewer) loadFonts() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return err
	}
	v.monoFontSource = src
	v.cachedMonoFace = nil
	return nil
}

// getMonoFontFace returns a cached monospace font face
func (v *Viewer) getMonoFontFace() *text.GoTextFace {
	if v.cachedMonoFace == nil {
		v.cachedMonoFace = &text.GoTextFace{
			Source: v.monoFontSource,
			Size:   baseFontSize,
		}
	}
	return v.cachedMonoFace
}
