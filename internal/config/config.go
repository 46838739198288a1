package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/postdeck/postdeck/internal/parser"
)

var (
	ErrUnknownLine     = errors.New("unknown config line")
	ErrUnknownVariable = errors.New("unknown config variable")
	ErrInvalidValue    = errors.New("invalid config value")
)

var (
	setRe   = regexp.MustCompile(`^set\s+(\w+)\s+(.+)$`)
	bindRe  = regexp.MustCompile(`^bind\s+(\S+)\s+(\S+)$`)
	colorRe = regexp.MustCompile(`^color\s+(\w+)\s+(.+)$`)
)

type Config struct {
	// Path of the file the config was loaded from, empty for defaults.
	Path string `yaml:"-"`

	// Content settings
	Platforms         []string `yaml:"platforms"`
	SchedulePlatforms []string `yaml:"schedule_platforms"`
	PostSettings      []string `yaml:"post_settings"`
	ImageExtensions   []string `yaml:"image_extensions"`
	VideoExtensions   []string `yaml:"video_extensions"`
	MediaDir          string   `yaml:"media_dir"`

	// Display settings
	DateFormat      string `yaml:"date_format"`
	DefaultPostTime string `yaml:"default_post_time"`
	MinuteStep      int    `yaml:"minute_step"`

	// UI settings
	Colors      map[string]string `yaml:"colors"`
	KeyBindings map[string]string `yaml:"key_bindings"`
	StartupView string            `yaml:"startup_view"`

	// Behavior settings
	WatchConfig bool `yaml:"watch_config"`

	// Logging
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`

	// Setup command
	PackageManager string   `yaml:"package_manager"`
	Packages       []string `yaml:"packages"`
}

func DefaultConfig() *Config {
	return &Config{
		Platforms: []string{
			"Facebook", "Twitter", "Instagram", "LinkedIn",
			"TikTok", "YouTube", "Pinterest", "Snapchat",
			"RedNote", "Lemon8",
		},
		SchedulePlatforms: []string{"Facebook", "Instagram", "Twitter", "LinkedIn", "TikTok"},
		PostSettings:      []string{"Allow Comments", "Allow Duets", "Allow Stitch"},
		ImageExtensions:   []string{".png", ".jpg", ".jpeg", ".gif"},
		VideoExtensions:   []string{".mp4", ".mov", ".avi"},
		MediaDir:          homeDir(),

		DateFormat:      "Mon Jan 2, 2006",
		DefaultPostTime: "12:00 PM",
		MinuteStep:      5,

		Colors: map[string]string{
			"bg":      "#151517",
			"fg":      "#ffffff",
			"button":  "#1890ff",
			"border":  "#26262A",
			"sidebar": "#101010",
			"hover":   "#26262A",
			"text_bg": "#1E1E1E",
		},

		KeyBindings: map[string]string{
			"q":      "quit",
			"?":      "help",
			"1":      "post_view",
			"2":      "schedule_view",
			"3":      "monolink_view",
			"tab":    "next_view",
			">":      "next_month",
			"<":      "prev_month",
			"]":      "next_year",
			"[":      "prev_year",
			"l":      "next_day",
			"right":  "next_day",
			"h":      "prev_day",
			"left":   "prev_day",
			"j":      "next_week",
			"down":   "next_week",
			"k":      "prev_week",
			"up":     "prev_week",
			"t":      "today",
			"g":      "goto_date",
			"n":      "new_schedule",
			"u":      "upload_media",
			"e":      "edit_post",
			"R":      "readme",
			"A":      "algorithms",
			"ctrl+r": "reload_config",
		},

		StartupView: "post",
		WatchConfig: true,

		LogFile:  defaultLogFile(),
		LogLevel: "info",

		PackageManager: "brew install",
		Packages:       []string{"ffmpeg", "imagemagick", "exiftool"},
	}
}

// SearchPaths lists the config locations in the order LoadConfig tries them.
func SearchPaths() []string {
	return []string{
		os.Getenv("POSTDECK_CONFIG"),
		joinIfSet(os.Getenv("XDG_CONFIG_HOME"), "postdeck", "postdeckrc"),
		joinIfSet(os.Getenv("HOME"), ".config", "postdeck", "postdeckrc"),
		joinIfSet(os.Getenv("HOME"), ".postdeckrc"),
		joinIfSet(os.Getenv("HOME"), ".config", "postdeck", "config.yml"),
	}
}

// LoadConfig returns the defaults overlaid with the first config file found.
func LoadConfig() (*Config, error) {
	for _, path := range SearchPaths() {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return DefaultConfig(), nil
}

// LoadFile returns the defaults overlaid with path. Files ending in .yml or .yaml are read as
// YAML, anything else as an rc file.
func LoadFile(path string) (*Config, error) {
	config := DefaultConfig()

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = config.loadYAML(path)
	default:
		err = config.loadFromFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading config from %s: %w", path, err)
	}

	config.Path = path
	return config, config.validate()
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return err
	}
	c.ImageExtensions = normalizeExtensions(c.ImageExtensions)
	c.VideoExtensions = normalizeExtensions(c.VideoExtensions)
	c.MediaDir = expandHome(c.MediaDir)
	c.LogFile = expandHome(c.LogFile)
	return nil
}

func (c *Config) loadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		if err := c.parseLine(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	return scanner.Err()
}

func (c *Config) parseLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	// set variable value
	if matches := setRe.FindStringSubmatch(line); matches != nil {
		return c.setVariable(matches[1], matches[2])
	}

	// bind key action
	if matches := bindRe.FindStringSubmatch(line); matches != nil {
		c.KeyBindings[matches[1]] = matches[2]
		return nil
	}

	// color element color_spec
	if matches := colorRe.FindStringSubmatch(line); matches != nil {
		c.Colors[matches[1]] = strings.Trim(matches[2], `"'`)
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownLine, line)
}

func (c *Config) setVariable(name, value string) error {
	value = strings.Trim(value, `"'`)

	switch name {
	case "platforms":
		c.Platforms = splitList(value)

	case "schedule_platforms":
		c.SchedulePlatforms = splitList(value)

	case "post_settings":
		c.PostSettings = splitList(value)

	case "image_extensions":
		c.ImageExtensions = normalizeExtensions(splitList(value))

	case "video_extensions":
		c.VideoExtensions = normalizeExtensions(splitList(value))

	case "media_dir":
		c.MediaDir = expandHome(value)

	case "date_format":
		c.DateFormat = value

	case "default_post_time":
		c.DefaultPostTime = value

	case "minute_step":
		step, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: minute_step %q", ErrInvalidValue, value)
		}
		c.MinuteStep = step

	case "startup_view":
		c.StartupView = value

	case "watch_config":
		c.WatchConfig = parseBool(value)

	case "log_file":
		c.LogFile = expandHome(value)

	case "log_level":
		c.LogLevel = value

	case "package_manager":
		c.PackageManager = value

	case "packages":
		c.Packages = splitList(value)

	default:
		return fmt.Errorf("%w: %s", ErrUnknownVariable, name)
	}

	return nil
}

func (c *Config) validate() error {
	if c.MinuteStep <= 0 || c.MinuteStep > 60 || 60%c.MinuteStep != 0 {
		return fmt.Errorf("%w: minute_step must divide 60, got %d", ErrInvalidValue, c.MinuteStep)
	}
	switch c.StartupView {
	case "post", "schedules":
	default:
		return fmt.Errorf("%w: startup_view %q", ErrInvalidValue, c.StartupView)
	}
	if _, _, err := parser.Clock(c.DefaultPostTime); err != nil {
		return fmt.Errorf("%w: default_post_time: %v", ErrInvalidValue, err)
	}
	return nil
}

// ActionFor returns the action bound to key, or "" when the key is unbound.
func (c *Config) ActionFor(key string) string {
	return c.KeyBindings[key]
}

// MediaExtensions returns the image and video extensions together.
func (c *Config) MediaExtensions() []string {
	exts := make([]string, 0, len(c.ImageExtensions)+len(c.VideoExtensions))
	exts = append(exts, c.ImageExtensions...)
	return append(exts, c.VideoExtensions...)
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func normalizeExtensions(exts []string) []string {
	for i, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts[i] = ext
	}
	return exts
}

func parseBool(value string) bool {
	return strings.ToLower(value) == "true" || value == "1"
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

func joinIfSet(base string, elem ...string) string {
	if base == "" {
		return ""
	}
	return filepath.Join(append([]string{base}, elem...)...)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func defaultLogFile() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "postdeck", "postdeck.log")
	}
	return filepath.Join(os.TempDir(), "postdeck.log")
}
