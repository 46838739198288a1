// Package schedule keeps the posts queued from the schedule dialog. The store lives in memory
// for the life of the process and is never written anywhere.
package schedule

import (
	"slices"
	"sort"
	"strconv"
	"strings"
)

// ScheduledPost is one queued post. Time is free-form, e.g. "3:00 PM".
type ScheduledPost struct {
	Time      string
	Platforms []string
}

// Store maps date keys ("YYYY-M-D") to the posts queued for that day, in insertion order.
type Store struct {
	posts map[string][]ScheduledPost
	total int
}

func NewStore() *Store {
	return &Store{posts: make(map[string][]ScheduledPost)}
}

// AddPost appends a post under dateKey. It never fails.
func (s *Store) AddPost(dateKey, time string, platforms []string) {
	s.posts[dateKey] = append(s.posts[dateKey], ScheduledPost{
		Time:      time,
		Platforms: slices.Clone(platforms),
	})
	s.total++
}

// PostsFor returns a copy of the posts queued under dateKey, or nil.
func (s *Store) PostsFor(dateKey string) []ScheduledPost {
	posts := s.posts[dateKey]
	if len(posts) == 0 {
		return nil
	}
	out := make([]ScheduledPost, len(posts))
	for i, p := range posts {
		out[i] = ScheduledPost{Time: p.Time, Platforms: slices.Clone(p.Platforms)}
	}
	return out
}

func (s *Store) HasPosts(dateKey string) bool {
	return len(s.posts[dateKey]) > 0
}

// Len is the number of posts across all dates.
func (s *Store) Len() int {
	return s.total
}

// Dates returns every key with posts in calendar order. Keys that do not parse as
// "YYYY-M-D" sort after the rest, lexically.
func (s *Store) Dates() []string {
	keys := make([]string, 0, len(s.posts))
	for k := range s.posts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aok := parseKey(keys[i])
		b, bok := parseKey(keys[j])
		switch {
		case aok && bok:
			for n := range a {
				if a[n] != b[n] {
					return a[n] < b[n]
				}
			}
			return false
		case aok != bok:
			return aok
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

func parseKey(key string) ([3]int, bool) {
	var out [3]int
	parts := strings.Split(key, "-")
	// A leading "-" belongs to a negative year.
	if len(parts) == 4 && parts[0] == "" {
		parts = []string{"-" + parts[1], parts[2], parts[3]}
	}
	if len(parts) != 3 {
		return out, false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return out, false
		}
		out[i] = n
	}
	return out, true
}
