package components

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
)

// ScrollView is a read-only pane for content taller than the screen. It
// wraps the bubbles viewport and resizes it on every render.
type ScrollView struct {
	vp      viewport.Model
	content string
}

// NewScrollView creates a scroll view over content.
func NewScrollView(content string) ScrollView {
	vp := viewport.New()
	vp.SetContent(content)
	return ScrollView{vp: vp, content: content}
}

// SetContent replaces the content.
func (s *ScrollView) SetContent(content string) {
	s.content = content
	s.vp.SetContent(content)
}

// Update forwards scroll keys (up/down, pgup/pgdown) to the viewport.
func (s ScrollView) Update(msg tea.Msg) (ScrollView, tea.Cmd) {
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

// View renders the visible window at the given size.
func (s *ScrollView) View(width, height int) string {
	s.vp.SetWidth(width)
	s.vp.SetHeight(height)
	return s.vp.View()
}
