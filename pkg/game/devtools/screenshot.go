package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"boardmap/pkg/engine/world"
	"boardmap/pkg/game/locale"
	"boardmap/pkg/game/materialize"
	"boardmap/pkg/game/renderer"
)

const screenshotHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Board - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .player { color: #00ff00; font-weight: bold; }
        .selected { color: #ffff00; font-weight: bold; }
        .hole { color: #444; }
        .normal { color: #c8d2f5; }
        .bonus { color: #64ff96; font-weight: bold; }
        .penalty { color: #ff6464; font-weight: bold; }
        .links {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
            color: #888;
        }
        .link { margin: 5px 0; }
    </style>
</head>
<body>
`

// getCellHTMLInfo returns the icon and CSS class for a node
func getCellHTMLInfo(f renderer.Frame, n *materialize.Node) (string, string) {
	switch {
	case f.Player != nil && n == f.Player:
		return "@", "player"
	case f.Selected != nil && n == f.Selected:
		return string(cellSymbol(n.Type)), "selected"
	}
	switch n.Type {
	case world.Normal:
		return "o", "normal"
	case world.Positive:
		return "+", "bonus"
	case world.Negative:
		return "-", "penalty"
	default:
		return "#", "hole"
	}
}

// WriteScreenshotHTML writes frame as a standalone HTML page: a header,
// the symbol grid and the list of links.
func WriteScreenshotHTML(w io.Writer, f renderer.Frame, title string) error {
	if f.Board == nil {
		return errors.New("devtools: no board")
	}
	var page strings.Builder
	page.WriteString(screenshotHead)
	page.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n", html.EscapeString(title)))

	page.WriteString(`    <div class="map-container">` + "\n")
	d := f.Board.Dims()
	for row := 0; row < d.Rows; row++ {
		page.WriteString(`        <div class="map-row">`)
		for col := 0; col < d.Cols; col++ {
			n, err := f.Board.Node(world.Coord{Row: row, Col: col})
			if err != nil {
				return err
			}
			icon, class := getCellHTMLInfo(f, n)
			page.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, icon))
		}
		page.WriteString("</div>\n")
	}
	page.WriteString(`    </div>` + "\n")

	page.WriteString(`    <div class="links">` + html.EscapeString(locale.Get("LEGEND")) + ": # o + - @\n")
	for _, c := range f.Board.Connectors() {
		page.WriteString(fmt.Sprintf(`        <div class="link">%s</div>`+"\n", html.EscapeString(c.Name())))
	}
	page.WriteString("    </div>\n</body>\n</html>\n")

	_, err := io.WriteString(w, page.String())
	return err
}

// SaveScreenshotHTML writes a timestamped screenshot into dir and returns
// its path.
func SaveScreenshotHTML(f renderer.Frame, title, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	out, err := os.Create(filename)
	if err != nil {
		return "", errors.Wrap(err, "devtools: create screenshot")
	}
	defer out.Close()

	if err := WriteScreenshotHTML(out, f, title); err != nil {
		return filename, err
	}
	return filename, nil
}
