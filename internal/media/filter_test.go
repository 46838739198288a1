package media

import (
	"os"
	"path/filepath"
	"testing"
)

func defaultFilter() Filter {
	return NewFilter(
		[]string{".png", ".jpg", ".jpeg", ".gif"},
		[]string{".mp4", ".mov", ".avi"},
	)
}

func TestClassify(t *testing.T) {
	f := defaultFilter()

	tests := []struct {
		path string
		want Kind
	}{
		{"/tmp/photo.png", KindImage},
		{"/tmp/PHOTO.JPG", KindImage},
		{"holiday.jpeg", KindImage},
		{"anim.gif", KindImage},
		{"clip.mp4", KindVideo},
		{"clip.MOV", KindVideo},
		{"old.avi", KindVideo},
		{"notes.txt", KindUnknown},
		{"Makefile", KindUnknown},
		{"archive.png.zip", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := f.Classify(tt.path); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.path, got, tt.want)
			}
			if got := f.Accepts(tt.path); got != (tt.want != KindUnknown) {
				t.Errorf("Accepts(%q) = %v", tt.path, got)
			}
		})
	}
}

func TestNewFilterNormalizes(t *testing.T) {
	f := NewFilter([]string{"PNG", " .webp ", ""}, []string{"mkv"})

	if !f.Accepts("a.png") || !f.Accepts("b.WEBP") || !f.Accepts("c.mkv") {
		t.Errorf("normalized filter rejected valid files: %+v", f)
	}
	if len(f.Images) != 2 {
		t.Errorf("empty extension kept: %v", f.Images)
	}
}

func TestPatterns(t *testing.T) {
	f := defaultFilter()

	if got := f.Patterns(KindImage); got != "*.png *.jpg *.jpeg *.gif" {
		t.Errorf("image patterns = %q", got)
	}
	if got := f.Patterns(KindVideo); got != "*.mp4 *.mov *.avi" {
		t.Errorf("video patterns = %q", got)
	}
	if got := f.Patterns(KindUnknown); got != "" {
		t.Errorf("unknown patterns = %q", got)
	}
}

func TestSelect(t *testing.T) {
	dir := t.TempDir()
	f := defaultFilter()

	img := filepath.Join(dir, "cover.png")
	if err := os.WriteFile(img, []byte("png!"), 0644); err != nil {
		t.Fatal(err)
	}
	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	fakeDir := filepath.Join(dir, "folder.mp4")
	if err := os.Mkdir(fakeDir, 0755); err != nil {
		t.Fatal(err)
	}

	sel, err := f.Select(img)
	if err != nil {
		t.Fatalf("Select(%s): %v", img, err)
	}
	if sel.Kind != KindImage || sel.Size != 4 || sel.Name() != "cover.png" || sel.Empty() {
		t.Errorf("unexpected selection: %+v", sel)
	}

	for _, bad := range []string{txt, fakeDir, filepath.Join(dir, "missing.mov")} {
		if sel, err := f.Select(bad); err == nil {
			t.Errorf("Select(%s) = %+v, want error", bad, sel)
		} else if !sel.Empty() {
			t.Errorf("Select(%s) returned non-empty selection on error", bad)
		}
	}
}
