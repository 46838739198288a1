package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/postdeck/postdeck/internal/logx"
)

func (m *Model) handlePostKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "space", "x":
		m.toggleSetting()
		return m, nil
	case "enter":
		m.editing = true
		return m, m.content.Focus()
	}

	switch m.config.ActionFor(msg.String()) {
	case "upload_media":
		m.openPicker()
	case "edit_post":
		m.editing = true
		return m, m.content.Focus()
	case "next_week":
		if m.settingCursor < len(m.settings)-1 {
			m.settingCursor++
		}
	case "prev_week":
		if m.settingCursor > 0 {
			m.settingCursor--
		}
	}
	return m, nil
}

func (m *Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.editing = false
		m.content.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	return m, cmd
}

func (m *Model) toggleSetting() {
	if m.settingCursor < len(m.settings) {
		m.settings[m.settingCursor] = !m.settings[m.settingCursor]
		m.log.Debug("setting toggled",
			logx.String("setting", m.config.PostSettings[m.settingCursor]),
			logx.Bool("on", m.settings[m.settingCursor]))
	}
}

// PostText is the composer's current text.
func (m *Model) PostText() string {
	return m.content.Value()
}

// Settings reports each post setting by name.
func (m *Model) Settings() map[string]bool {
	out := make(map[string]bool, len(m.settings))
	for i, name := range m.config.PostSettings {
		out[name] = m.settings[i]
	}
	return out
}

func (m *Model) viewPost(width int) string {
	t := m.theme
	panel := t.Panel.Width(max(width-2, 20))

	// Upload
	upload := []string{
		t.PanelHead.Render("Upload Media"),
		t.Button.Render("+ Upload Media") + t.Muted.Render("  (u)"),
	}
	if m.media.Empty() {
		upload = append(upload, t.Muted.Render("No file selected"))
	} else {
		upload = append(upload, t.Normal.Render(fmt.Sprintf("%s  %s, %s",
			m.media.Name(), m.media.Kind, humanize.Bytes(uint64(m.media.Size)))))
	}

	// Content
	hint := "enter or e to edit"
	if m.editing {
		hint = "esc to stop editing"
	}
	contentHead := t.PanelHead.Render("Post Content") + t.Muted.Render("  ("+hint+")")
	count := t.Muted.Render(fmt.Sprintf("%d characters", len([]rune(m.content.Value()))))

	// Settings
	settings := []string{t.PanelHead.Render("Settings")}
	for i, name := range m.config.PostSettings {
		mark := "[ ]"
		if m.settings[i] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, name)
		if i == m.settingCursor && !m.editing {
			settings = append(settings, t.Focused.Render(line))
		} else {
			settings = append(settings, t.Normal.Render(line))
		}
	}
	if len(m.config.PostSettings) == 0 {
		settings = append(settings, t.Muted.Render("(no settings)"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		panel.Render(strings.Join(upload, "\n")),
		panel.Render(lipgloss.JoinVertical(lipgloss.Left, contentHead, m.content.View(), count)),
		panel.Render(strings.Join(settings, "\n")),
	)
}
