// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

// Package markup splits jutsu descriptions into renderable text segments.
//
// # Format
//
// Descriptions support a single inline marker: **bold**. A pair of double
// asterisks wraps a bold run; everything else is plain text. An unpaired
// marker is not an error — it is kept as literal text so a half-typed
// description still renders.
package markup

import "regexp"

// boldRun matches a complete **...** run. The inner class forbids '*' so
// that an unpaired trailing marker never extends a match.
var boldRun = regexp.MustCompile(`\*\*[^*]+\*\*`)

// Segment is one renderable run of a description.
type Segment struct {
	Text string `json:"text"`
	Bold bool   `json:"bold"`
}

// Segments splits text on paired ** delimiters.
//
// "a **b** c" yields three segments: plain "a ", bold "b", plain " c".
// Unmatched markers fall through into the surrounding plain segments.
// Empty input yields an empty slice.
func Segments(text string) []Segment {
	segments := make([]Segment, 0, 4)
	last := 0

	for _, match := range boldRun.FindAllStringIndex(text, -1) {
		start, end := match[0], match[1]

		// Plain run before this bold run
		if start > last {
			segments = append(segments, Segment{Text: text[last:start]})
		}

		// Strip the ** pair from both ends
		segments = append(segments, Segment{Text: text[start+2 : end-2], Bold: true})
		last = end
	}

	// Trailing plain run, including any unpaired markers
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}

	return segments
}
