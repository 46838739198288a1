package ui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/postdeck/postdeck/internal/calendar"
	"github.com/postdeck/postdeck/internal/config"
	"github.com/postdeck/postdeck/internal/logx"
	"github.com/postdeck/postdeck/internal/media"
	"github.com/postdeck/postdeck/internal/schedule"
)

type ViewMode int

const (
	ViewPost ViewMode = iota
	ViewSchedules
	ViewMonoLink
)

var viewNames = []string{"Post", "Schedules", "MonoLink"}

func (v ViewMode) String() string {
	if int(v) < len(viewNames) {
		return viewNames[v]
	}
	return "Unknown"
}

type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayReadme
	overlayAlgorithms
	overlayDialog
	overlayPicker
	overlayGoto
)

const messageTimeout = 3 * time.Second

type Model struct {
	// Core components
	config *config.Config
	theme  Theme
	log    logx.Logger
	nav    *calendar.Navigator
	store  *schedule.Store
	filter media.Filter

	// View state
	mode    ViewMode
	overlay overlay

	// Post panel state
	content       textarea.Model
	editing       bool
	settings      []bool
	settingCursor int
	media         media.Selection

	// Overlay state
	dialog    ScheduleDialog
	picker    MediaPicker
	gotoInput textinput.Model
	info      viewport.Model
	infoTab   int

	// UI state
	width      int
	height     int
	message    string
	messageErr bool
	messageSeq int
}

// NewModel builds the root model. A nil clock means time.Now.
func NewModel(cfg *config.Config, store *schedule.Store, log logx.Logger, clock calendar.Clock) *Model {
	if store == nil {
		store = schedule.NewStore()
	}

	ta := textarea.New()
	ta.Placeholder = "What do you want to share?"
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(10)

	m := &Model{
		log:     log.Component("ui"),
		nav:     calendar.NewNavigator(clock),
		store:   store,
		content:   ta,
		gotoInput: newGotoInput(),
		info:      viewport.New(80, 20),
	}
	m.applyConfig(cfg)

	if cfg.StartupView == "schedules" {
		m.mode = ViewSchedules
	}

	return m
}

// applyConfig installs cfg and everything derived from it.
func (m *Model) applyConfig(cfg *config.Config) {
	m.config = cfg
	m.theme = NewTheme(cfg.Colors)
	m.filter = media.NewFilter(cfg.ImageExtensions, cfg.VideoExtensions)

	settings := make([]bool, len(cfg.PostSettings))
	for i := range settings {
		// Settings default to on; keep the user's choices for settings that still exist.
		settings[i] = true
		if i < len(m.settings) {
			settings[i] = m.settings[i]
		}
	}
	m.settings = settings
	if m.settingCursor >= len(m.settings) {
		m.settingCursor = max(len(m.settings)-1, 0)
	}
}

func (m *Model) Navigator() *calendar.Navigator {
	return m.nav
}

func (m *Model) Store() *schedule.Store {
	return m.store
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if m.overlay == overlayNone && m.mode == ViewSchedules {
			return m.handleScheduleMouse(msg)
		}
		return m, nil

	case ScheduleConfirmedMsg:
		m.overlay = overlayNone
		m.store.AddPost(msg.DateKey, msg.Time, msg.Platforms)
		m.log.Info("post scheduled",
			logx.String("date", msg.DateKey),
			logx.String("time", msg.Time),
			logx.Strings("platforms", msg.Platforms))
		return m, m.showMessage(fmt.Sprintf("Scheduled %s on %s", msg.Time, msg.DateKey))

	case ScheduleCancelledMsg:
		m.overlay = overlayNone
		return m, nil

	case MediaSelectedMsg:
		m.overlay = overlayNone
		m.media = msg.Selection
		m.log.Info("media selected",
			logx.String("path", msg.Selection.Path),
			logx.String("kind", msg.Selection.Kind.String()))
		return m, m.showMessage(fmt.Sprintf("Selected file: %s", msg.Selection.Path))

	case MediaCancelledMsg:
		m.overlay = overlayNone
		return m, nil

	case ConfigReloadedMsg:
		if msg.Err != nil {
			m.log.Warn("config reload failed", logx.Err(msg.Err))
			return m, m.showError(fmt.Sprintf("Config error: %v", msg.Err))
		}
		m.applyConfig(msg.Config)
		m.resize()
		m.log.Info("config reloaded", logx.String("path", msg.Config.Path))
		return m, m.showMessage("Config reloaded")

	case messageTimeoutMsg:
		if msg.seq == m.messageSeq {
			m.message = ""
			m.messageErr = false
		}
		return m, nil
	}

	if m.overlay == overlayGoto {
		var cmd tea.Cmd
		m.gotoInput, cmd = m.gotoInput.Update(msg)
		return m, cmd
	}

	if m.editing {
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" && m.overlay != overlayPicker {
		return m, tea.Quit
	}

	switch m.overlay {
	case overlayHelp:
		m.overlay = overlayNone
		return m, nil
	case overlayReadme, overlayAlgorithms:
		return m.handleInfoKeys(msg)
	case overlayDialog:
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	case overlayPicker:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	case overlayGoto:
		return m.handleGotoKeys(msg)
	}

	if m.editing {
		return m.handleEditorKeys(msg)
	}

	// Global keys
	switch m.config.ActionFor(msg.String()) {
	case "quit":
		return m, tea.Quit
	case "help":
		m.overlay = overlayHelp
		return m, nil
	case "post_view":
		m.mode = ViewPost
		return m, nil
	case "schedule_view":
		m.mode = ViewSchedules
		return m, nil
	case "monolink_view":
		m.mode = ViewMonoLink
		return m, nil
	case "next_view":
		m.mode = (m.mode + 1) % ViewMode(len(viewNames))
		return m, nil
	case "readme":
		m.openInfo(overlayReadme)
		return m, nil
	case "algorithms":
		m.infoTab = 0
		m.openInfo(overlayAlgorithms)
		return m, nil
	case "goto_date":
		return m, m.openGoto()
	case "reload_config":
		return m, m.reloadConfig()
	}

	// Mode-specific handling
	switch m.mode {
	case ViewPost:
		return m.handlePostKeys(msg)
	case ViewSchedules:
		return m.handleScheduleKeys(msg)
	}

	return m, nil
}

func (m *Model) handleScheduleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.config.ActionFor(msg.String()) {
	case "next_month":
		m.nav.AdvanceMonth()
	case "prev_month":
		m.nav.RetreatMonth()
	case "next_year":
		m.nav.AdvanceYear()
	case "prev_year":
		m.nav.RetreatYear()
	case "next_day":
		m.nav.MoveSelection(1)
	case "prev_day":
		m.nav.MoveSelection(-1)
	case "next_week":
		m.nav.MoveSelection(7)
	case "prev_week":
		m.nav.MoveSelection(-7)
	case "today":
		m.nav.Today()
	case "new_schedule":
		m.openDialog()
	default:
		if msg.Type == tea.KeyEnter {
			m.openDialog()
		}
	}
	return m, nil
}

func (m *Model) openDialog() {
	m.dialog = NewScheduleDialog(m.nav, m.config.SchedulePlatforms, m.config.DefaultPostTime, m.config.MinuteStep)
	m.overlay = overlayDialog
}

func (m *Model) openPicker() {
	dir := m.config.MediaDir
	if !m.media.Empty() {
		dir = filepath.Dir(m.media.Path)
	}
	m.picker = NewMediaPicker(dir, m.filter)
	m.picker.SetSize(m.width, m.height)
	m.overlay = overlayPicker
}

func (m *Model) reloadConfig() tea.Cmd {
	path := m.config.Path
	if path == "" {
		return m.showMessage("No config file loaded")
	}
	return func() tea.Msg {
		cfg, err := config.LoadFile(path)
		return ConfigReloadedMsg{Config: cfg, Err: err}
	}
}

func (m *Model) resize() {
	w, h := m.contentSize()
	m.content.SetWidth(max(w-6, 20))
	m.content.SetHeight(max(h-16, 3))
	m.info.Width = max(m.width-10, 20)
	m.info.Height = max(m.height-10, 5)
	m.picker.SetSize(m.width, m.height)
	if m.overlay == overlayReadme || m.overlay == overlayAlgorithms {
		m.refreshInfo()
	}
}

func (m *Model) showMessage(text string) tea.Cmd {
	m.message = text
	m.messageErr = false
	return m.expireMessage()
}

func (m *Model) showError(text string) tea.Cmd {
	m.message = text
	m.messageErr = true
	return m.expireMessage()
}

func (m *Model) expireMessage() tea.Cmd {
	m.messageSeq++
	seq := m.messageSeq
	return tea.Tick(messageTimeout, func(time.Time) tea.Msg {
		return messageTimeoutMsg{seq: seq}
	})
}

// ConfigReloadedMsg delivers a freshly loaded config, or the error that prevented loading it.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

type messageTimeoutMsg struct {
	seq int
}
