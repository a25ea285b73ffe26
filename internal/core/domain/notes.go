package domain

import (
	"strings"
)

// ReleaseNotes buckets changelog-worthy paragraphs collected from commit
// messages since the last release.
type ReleaseNotes struct {
	Breaking []string
	Feature  []string
	Fix      []string
}

// Empty reports whether no qualifying notes were found.
func (n ReleaseNotes) Empty() bool {
	return len(n.Breaking) == 0 && len(n.Feature) == 0 && len(n.Fix) == 0
}

// Merge appends another set of notes, preserving order.
func (n *ReleaseNotes) Merge(other ReleaseNotes) {
	n.Breaking = append(n.Breaking, other.Breaking...)
	n.Feature = append(n.Feature, other.Feature...)
	n.Fix = append(n.Fix, other.Fix...)
}

// markers maps a leading paragraph marker to the bucket it feeds.
// Matching is case-insensitive on the word before the colon.
var markers = map[string]int{
	"break":    0,
	"breaking": 0,
	"feat":     1,
	"feature":  1,
	"new":      1,
	"fix":      2,
	"bug":      2,
}

// ParseNotes extracts release notes from a single commit message.
// The message is split into blank-line separated paragraphs; a paragraph
// contributes iff its first line starts with a recognized marker followed
// by a colon. The marker prefix is stripped, the rest of the paragraph is
// kept verbatim. Unmarked paragraphs are ignored.
func ParseNotes(message string) ReleaseNotes {
	var notes ReleaseNotes

	message = strings.ReplaceAll(message, "\r\n", "\n")
	for _, paragraph := range strings.Split(message, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		marker, rest, ok := strings.Cut(paragraph, ":")
		if !ok {
			continue
		}
		bucket, known := markers[strings.ToLower(strings.TrimSpace(marker))]
		if !known {
			continue
		}

		note := strings.TrimSpace(rest)
		if note == "" {
			continue
		}
		switch bucket {
		case 0:
			notes.Breaking = append(notes.Breaking, note)
		case 1:
			notes.Feature = append(notes.Feature, note)
		case 2:
			notes.Fix = append(notes.Fix, note)
		}
	}

	return notes
}

// CollectNotes extracts and merges release notes from a list of commit
// messages, oldest last or first as provided; order within a bucket follows
// the input order.
func CollectNotes(messages []string) ReleaseNotes {
	var notes ReleaseNotes
	for _, message := range messages {
		notes.Merge(ParseNotes(message))
	}
	return notes
}
