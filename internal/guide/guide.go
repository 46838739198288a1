// Package guide holds the static help texts: the usage README and the per-platform
// algorithm notes.
package guide

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const Unavailable = "Content not available for this platform."

const Readme = `# Social Media Posting Interface

## Overview
This application allows you to manage and schedule posts across multiple social media platforms.

## Features
- Multi-platform posting
- Media upload support
- Post scheduling
- Preview functionality
- Platform-specific settings

## Usage
1. Select your target platforms
2. Upload media content
3. Write your post
4. Configure platform-specific settings
5. Preview your post
6. Schedule or publish immediately

## Support
For additional support, please contact support@example.com
`

// AlgorithmPlatforms are the tabs of the algorithm guide, in display order.
var AlgorithmPlatforms = []string{
	"TikTok", "Instagram", "LinkedIn", "YouTube",
	"Pinterest", "Snapchat", "RedNote", "Lemon8",
}

var algorithms = map[string]string{
	"TikTok": `# TikTok Algorithm Guide

## Key Factors
• Watch Time: The longer viewers watch, the better
• Completion Rate: Videos watched from start to finish
• User Interactions: Likes, comments, shares, follows
• Hashtag Relevance: Using trending and niche hashtags
• Sound Usage: Trending sounds boost visibility

## Best Practices
1. Hook viewers in first 3 seconds
2. Keep videos between 21-34 seconds for optimal completion
3. Post 1-4 times per day
4. Use trending sounds and effects
5. Engage with comments within first hour

## Optimal Post Times
• Weekdays: 6-9 AM, 11 AM-2 PM, 7-10 PM EST
• Weekends: 11 AM-7 PM EST
• Peak engagement: Tuesday-Thursday

## Content Strategy
• Follow trends but add unique twist
• Use pattern interrupts
• Create series content
• Maintain consistent posting schedule
• Cross-promote on other platforms
`,
}

// Algorithm returns the guide for platform, or Unavailable.
func Algorithm(platform string) string {
	if text, ok := algorithms[platform]; ok {
		return text
	}
	return Unavailable
}

type LineKind int

const (
	LineText LineKind = iota
	LineHeading1
	LineHeading2
	LineBullet
)

// Line is one rendered line of a guide.
type Line struct {
	Kind LineKind
	Text string
}

// Layout splits a guide into typed lines, wrapping body text to width. Heading markers are
// stripped; a width below 1 disables wrapping.
func Layout(text string, width int) []Line {
	var lines []Line
	for _, raw := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		kind := LineText
		switch {
		case strings.HasPrefix(raw, "## "):
			kind, raw = LineHeading2, strings.TrimPrefix(raw, "## ")
		case strings.HasPrefix(raw, "# "):
			kind, raw = LineHeading1, strings.TrimPrefix(raw, "# ")
		case strings.HasPrefix(raw, "• "), strings.HasPrefix(raw, "- "):
			kind = LineBullet
		}

		if width < 1 || raw == "" {
			lines = append(lines, Line{Kind: kind, Text: raw})
			continue
		}
		for _, wrapped := range strings.Split(wordwrap.String(raw, width), "\n") {
			lines = append(lines, Line{Kind: kind, Text: wrapped})
		}
	}
	return lines
}
