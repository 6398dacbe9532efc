// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

package markup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shinobidex/fichas-api/pkg/markup"
)

/*
TestSegments_Paired checks the canonical three-segment split.
*/
func TestSegments_Paired(t *testing.T) {
	got := markup.Segments("a **b** c")

	assert.Equal(t, []markup.Segment{
		{Text: "a "},
		{Text: "b", Bold: true},
		{Text: " c"},
	}, got)
}

/*
TestSegments_Unpaired checks that a lone marker renders as literal text.
*/
func TestSegments_Unpaired(t *testing.T) {
	got := markup.Segments("a **b c")

	assert.Equal(t, []markup.Segment{{Text: "a **b c"}}, got)
}

/*
TestSegments_Edges covers empty input, adjacent runs, and marker-only text.
*/
func TestSegments_Edges(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []markup.Segment
	}{
		{"empty", "", []markup.Segment{}},
		{"only_bold", "**x**", []markup.Segment{{Text: "x", Bold: true}}},
		{"adjacent_bold", "**a****b**", []markup.Segment{
			{Text: "a", Bold: true},
			{Text: "b", Bold: true},
		}},
		{"trailing_marker", "fim**", []markup.Segment{{Text: "fim**"}}},
		{"plain_only", "sem destaque", []markup.Segment{{Text: "sem destaque"}}},
		{"multiple_runs", "**Rank:** S — **Custo:** alto", []markup.Segment{
			{Text: "Rank:", Bold: true},
			{Text: " S — "},
			{Text: "Custo:", Bold: true},
			{Text: " alto"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markup.Segments(tt.input))
		})
	}
}
