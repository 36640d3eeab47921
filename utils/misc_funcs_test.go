package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"sarah johnson":      "Sarah Johnson",
		"  sarah  JOHNSON ":  "Sarah Johnson",
		"ADA":                "Ada",
		"":                   "",
		"   ":                "",
		"jean-luc picard":    "Jean-Luc Picard",
	}

	for input, want := range cases {
		assert.Equal(t, want, TitleCase(input), "input %q", input)
	}
}
