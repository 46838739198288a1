// Package media decides which local files can be attached to a post.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindImage
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "unknown"
	}
}

// Filter accepts files by extension, case-insensitively.
type Filter struct {
	Images []string
	Videos []string
}

// NewFilter builds a filter from extension lists such as ".png" or "mp4".
func NewFilter(images, videos []string) Filter {
	return Filter{Images: normalize(images), Videos: normalize(videos)}
}

// Classify reports what kind of media path looks like.
func (f Filter) Classify(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == "":
		return KindUnknown
	case slices.Contains(f.Images, ext):
		return KindImage
	case slices.Contains(f.Videos, ext):
		return KindVideo
	default:
		return KindUnknown
	}
}

func (f Filter) Accepts(path string) bool {
	return f.Classify(path) != KindUnknown
}

// Patterns renders the filter the way a file dialog would, e.g. "*.png *.jpg".
func (f Filter) Patterns(kind Kind) string {
	var exts []string
	switch kind {
	case KindImage:
		exts = f.Images
	case KindVideo:
		exts = f.Videos
	}
	patterns := make([]string, len(exts))
	for i, ext := range exts {
		patterns[i] = "*" + ext
	}
	return strings.Join(patterns, " ")
}

// Selection is the outcome of one pick: a file or nothing.
type Selection struct {
	Path string
	Kind Kind
	Size int64
}

func (s Selection) Empty() bool {
	return s.Path == ""
}

func (s Selection) Name() string {
	return filepath.Base(s.Path)
}

// Select validates path against the filter and returns the selection.
func (f Filter) Select(path string) (Selection, error) {
	kind := f.Classify(path)
	if kind == KindUnknown {
		return Selection{}, fmt.Errorf("unsupported media type: %s", filepath.Base(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return Selection{}, fmt.Errorf("cannot read media: %w", err)
	}
	if info.IsDir() {
		return Selection{}, fmt.Errorf("not a file: %s", path)
	}

	return Selection{Path: path, Kind: kind, Size: info.Size()}, nil
}

func normalize(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
