// Package tips shows and hides the per-level tips panel.
package tips

// Panels is the UI surface that displays named panels.
type Panels interface {
	Show(name string)
	Hide(name string)
}

// DefaultPanels maps the levels that have tips to their panel names.
var DefaultPanels = map[int]string{
	1: "LEVEL_1_TIPS",
	2: "LEVEL_2_TIPS",
	4: "LEVEL_4_TIPS",
	6: "LEVEL_6_TIPS",
}

// Tips tracks whether a tips panel is currently shown.
type Tips struct {
	panels  Panels
	byLevel map[int]string
	showing bool
}

// New creates tips bound to panels. A nil byLevel uses DefaultPanels.
func New(panels Panels, byLevel map[int]string) *Tips {
	if byLevel == nil {
		byLevel = DefaultPanels
	}
	return &Tips{panels: panels, byLevel: byLevel}
}

// PanelFor returns the panel name for a level, if it has one
func (t *Tips) PanelFor(level int) (string, bool) {
	name, ok := t.byLevel[level]
	return name, ok
}

// Open shows the tips panel for level. Levels without tips are ignored.
func (t *Tips) Open(level int) bool {
	name, ok := t.byLevel[level]
	if !ok {
		return false
	}
	t.panels.Show(name)
	t.showing = true
	return true
}

// Close hides the tips panel for level. Levels without tips are ignored.
func (t *Tips) Close(level int) bool {
	name, ok := t.byLevel[level]
	if !ok {
		return false
	}
	t.panels.Hide(name)
	t.showing = false
	return true
}

// Showing reports whether a tips panel is open
func (t *Tips) Showing() bool {
	return t.showing
}
