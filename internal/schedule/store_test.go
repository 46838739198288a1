package schedule

import (
	"slices"
	"testing"
)

func TestAddPostAndPostsFor(t *testing.T) {
	s := NewStore()
	s.AddPost("2024-6-15", "3:00 PM", []string{"Instagram", "TikTok"})

	posts := s.PostsFor("2024-6-15")
	if len(posts) != 1 {
		t.Fatalf("PostsFor returned %d posts, want 1", len(posts))
	}
	if posts[0].Time != "3:00 PM" {
		t.Errorf("Time = %q, want %q", posts[0].Time, "3:00 PM")
	}
	if !slices.Equal(posts[0].Platforms, []string{"Instagram", "TikTok"}) {
		t.Errorf("Platforms = %v, want [Instagram TikTok]", posts[0].Platforms)
	}

	if got := s.PostsFor("2024-6-16"); len(got) != 0 {
		t.Errorf("PostsFor(2024-6-16) = %v, want empty", got)
	}
}

func TestPostsKeepInsertionOrder(t *testing.T) {
	s := NewStore()
	s.AddPost("2024-6-15", "9:00 AM", []string{"Facebook"})
	s.AddPost("2024-6-15", "8:00 AM", []string{"Twitter"})
	s.AddPost("2024-6-15", "9:00 AM", []string{"Facebook"})

	posts := s.PostsFor("2024-6-15")
	want := []string{"9:00 AM", "8:00 AM", "9:00 AM"}
	if len(posts) != len(want) {
		t.Fatalf("got %d posts, want %d", len(posts), len(want))
	}
	for i, p := range posts {
		if p.Time != want[i] {
			t.Errorf("post %d time = %q, want %q", i, p.Time, want[i])
		}
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
}

func TestAddPostAcceptsAnything(t *testing.T) {
	s := NewStore()
	s.AddPost("not-a-date", "whenever", nil)
	s.AddPost("2024-2-30", "", []string{"Nonexistent"})

	if !s.HasPosts("not-a-date") {
		t.Error("HasPosts(not-a-date) = false")
	}
	if !s.HasPosts("2024-2-30") {
		t.Error("HasPosts(2024-2-30) = false")
	}
	if got := s.PostsFor("not-a-date")[0].Platforms; len(got) != 0 {
		t.Errorf("Platforms = %v, want empty", got)
	}
}

func TestHasPosts(t *testing.T) {
	s := NewStore()

	for _, key := range []string{"2024-6-15", "", "2024-06-15"} {
		if s.HasPosts(key) {
			t.Errorf("HasPosts(%q) on empty store = true", key)
		}
	}

	s.AddPost("2024-6-15", "3:00 PM", []string{"Instagram"})
	if !s.HasPosts("2024-6-15") {
		t.Error("HasPosts(2024-6-15) = false after AddPost")
	}
	// Keys are not normalized: zero padding is a different key.
	if s.HasPosts("2024-06-15") {
		t.Error("HasPosts(2024-06-15) = true, keys must match exactly")
	}
}

func TestStoreDoesNotAlias(t *testing.T) {
	s := NewStore()
	platforms := []string{"Instagram", "TikTok"}
	s.AddPost("2024-6-15", "3:00 PM", platforms)

	platforms[0] = "Changed"
	if got := s.PostsFor("2024-6-15")[0].Platforms[0]; got != "Instagram" {
		t.Errorf("store saw caller mutation: %q", got)
	}

	out := s.PostsFor("2024-6-15")
	out[0].Time = "mutated"
	out[0].Platforms[1] = "mutated"
	again := s.PostsFor("2024-6-15")
	if again[0].Time != "3:00 PM" || again[0].Platforms[1] != "TikTok" {
		t.Errorf("store saw mutation of returned posts: %+v", again[0])
	}
}

func TestDatesOrdering(t *testing.T) {
	s := NewStore()
	for _, key := range []string{"2024-12-1", "2024-2-10", "junk", "2024-2-9", "2023-12-31", "-1-1-1"} {
		s.AddPost(key, "12:00 PM", nil)
	}

	want := []string{"-1-1-1", "2023-12-31", "2024-2-9", "2024-2-10", "2024-12-1", "junk"}
	if got := s.Dates(); !slices.Equal(got, want) {
		t.Errorf("Dates = %v, want %v", got, want)
	}
}
