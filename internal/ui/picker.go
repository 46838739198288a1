package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/postdeck/postdeck/internal/media"
)

// MediaSelectedMsg ends a pick with a file.
type MediaSelectedMsg struct {
	Selection media.Selection
}

// MediaCancelledMsg ends a pick without a file.
type MediaCancelledMsg struct{}

type pickerEntry struct {
	name  string
	path  string
	size  int64
	isDir bool
}

// MediaPicker browses the local filesystem and only offers files the media filter accepts.
// Every exit from the picker produces exactly one MediaSelectedMsg or MediaCancelledMsg.
type MediaPicker struct {
	filter     media.Filter
	currentDir string
	entries    []pickerEntry
	cursor     int
	width      int
	height     int
	err        error
	showHidden bool
}

func NewMediaPicker(dir string, filter media.Filter) MediaPicker {
	if dir == "" {
		dir = "/"
	}
	p := MediaPicker{
		filter:     filter,
		currentDir: dir,
		width:      80,
		height:     24,
	}
	p.loadDirectory()
	return p
}

func (p *MediaPicker) loadDirectory() {
	p.entries = nil
	p.err = nil

	if parent := filepath.Dir(p.currentDir); parent != p.currentDir {
		p.entries = append(p.entries, pickerEntry{name: "..", path: parent, isDir: true})
	}

	dirEntries, err := os.ReadDir(p.currentDir)
	if err != nil {
		p.err = err
		return
	}

	var dirs, files []pickerEntry
	for _, entry := range dirEntries {
		name := entry.Name()
		if !p.showHidden && strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(p.currentDir, name)
		if entry.IsDir() {
			dirs = append(dirs, pickerEntry{name: name, path: path, isDir: true})
			continue
		}
		if !p.filter.Accepts(name) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, pickerEntry{name: name, path: path, size: info.Size()})
	}

	byName := func(list []pickerEntry) {
		sort.Slice(list, func(i, j int) bool {
			return strings.ToLower(list[i].name) < strings.ToLower(list[j].name)
		})
	}
	byName(dirs)
	byName(files)

	p.entries = append(p.entries, dirs...)
	p.entries = append(p.entries, files...)

	if p.cursor >= len(p.entries) {
		p.cursor = 0
	}
}

func (p *MediaPicker) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p MediaPicker) CurrentDir() string {
	return p.currentDir
}

func (p *MediaPicker) enter(dir string) {
	p.currentDir = dir
	p.cursor = 0
	p.loadDirectory()
}

func (p MediaPicker) Update(msg tea.Msg) (MediaPicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.entries)-1 {
			p.cursor++
		}
	case "pgup":
		p.cursor = max(p.cursor-10, 0)
	case "pgdown":
		p.cursor = max(min(p.cursor+10, len(p.entries)-1), 0)
	case "home", "g":
		p.cursor = 0
	case "end", "G":
		p.cursor = max(len(p.entries)-1, 0)
	case "backspace", "h", "left":
		if parent := filepath.Dir(p.currentDir); parent != p.currentDir {
			p.enter(parent)
		}
	case "~":
		if home, err := os.UserHomeDir(); err == nil {
			p.enter(home)
		}
	case ".":
		p.showHidden = !p.showHidden
		p.loadDirectory()
	case "enter", "l", "right":
		if p.cursor < 0 || p.cursor >= len(p.entries) {
			return p, nil
		}
		entry := p.entries[p.cursor]
		if entry.isDir {
			p.enter(entry.path)
			return p, nil
		}
		sel, err := p.filter.Select(entry.path)
		if err != nil {
			p.err = err
			return p, nil
		}
		return p, func() tea.Msg { return MediaSelectedMsg{Selection: sel} }
	case "esc", "q", "ctrl+c":
		return p, func() tea.Msg { return MediaCancelledMsg{} }
	}

	return p, nil
}

func (p MediaPicker) View(theme Theme) string {
	var b strings.Builder

	listHeight := max(p.height-14, 5)
	start := 0
	if p.cursor >= listHeight {
		start = p.cursor - listHeight + 1
	}
	end := min(start+listHeight, len(p.entries))

	if p.err != nil {
		b.WriteString(theme.Error.Render(fmt.Sprintf("Error: %v", p.err)))
		b.WriteString("\n")
	}

	for i := start; i < end; i++ {
		entry := p.entries[i]

		var line string
		if entry.isDir {
			line = entry.name + "/"
		} else {
			kind := p.filter.Classify(entry.name)
			line = fmt.Sprintf("%-32s %-6s %s",
				truncate.StringWithTail(entry.name, 32, "..."), kind, humanize.Bytes(uint64(entry.size)))
		}

		style := theme.Normal.Padding(0, 1)
		switch {
		case i == p.cursor:
			style = theme.Focused.Padding(0, 1)
		case entry.isDir:
			style = theme.Indicator.Padding(0, 1)
		}
		b.WriteString(style.Render(line))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if len(p.entries) == 0 {
		b.WriteString(theme.Muted.Italic(true).Render("  (no media here)"))
	}

	displayPath := p.currentDir
	if maxLen := max(p.width-20, 20); len(displayPath) > maxLen {
		displayPath = "..." + displayPath[len(displayPath)-maxLen+3:]
	}
	if p.showHidden {
		displayPath += " (showing hidden)"
	}

	filters := fmt.Sprintf("Image files: %s   Video files: %s",
		p.filter.Patterns(media.KindImage), p.filter.Patterns(media.KindVideo))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		theme.PanelHead.Render("Upload Media"),
		theme.Muted.Render(displayPath),
		theme.Muted.Render(filters),
		"",
		b.String(),
		"",
		theme.Muted.Render("↑/↓ navigate • enter select • backspace parent • ~ home • . hidden • esc cancel"),
	)

	return theme.Dialog.Width(max(p.width-8, 40)).Render(content)
}
