package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywords(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{"drops short tokens and stop words", "The Affordable Housing Act of 2024", []string{"affordable", "housing", "2024"}},
		{"splits on punctuation", "Rent-control: local limits", []string{"rent", "control", "local", "limits"}},
		{"de-duplicates", "Bond bond BOND housing", []string{"bond", "housing"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Keywords(tt.title))
		})
	}
}

func TestOverlap(t *testing.T) {
	assert.Equal(t, 2, overlap([]string{"rent", "control", "local"}, []string{"control", "rent", "bond"}))
	assert.Equal(t, 0, overlap(nil, []string{"rent"}))
}
