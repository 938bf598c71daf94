package tips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type panelLog struct {
	calls []string
}

func (p *panelLog) Show(name string) { p.calls = append(p.calls, "show "+name) }
func (p *panelLog) Hide(name string) { p.calls = append(p.calls, "hide "+name) }

func TestTips_OpenCloseKnownLevel(t *testing.T) {
	panels := &panelLog{}
	tp := New(panels, nil)

	assert.True(t, tp.Open(2))
	assert.True(t, tp.Showing())
	assert.True(t, tp.Close(2))
	assert.False(t, tp.Showing())
	assert.Equal(t, []string{"show LEVEL_2_TIPS", "hide LEVEL_2_TIPS"}, panels.calls)
}

func TestTips_UnknownLevelIsNoop(t *testing.T) {
	panels := &panelLog{}
	tp := New(panels, nil)

	for _, level := range []int{0, 3, 5, 7} {
		assert.False(t, tp.Open(level), "Open(%d)", level)
		assert.False(t, tp.Close(level), "Close(%d)", level)
	}
	assert.Empty(t, panels.calls)
	assert.False(t, tp.Showing())
}

func TestTips_CustomLevels(t *testing.T) {
	panels := &panelLog{}
	tp := New(panels, map[int]string{9: "BOSS"})
	name, ok := tp.PanelFor(9)
	assert.True(t, ok)
	assert.Equal(t, "BOSS", name)
	assert.False(t, tp.Open(1))
	assert.True(t, tp.Open(9))
}
