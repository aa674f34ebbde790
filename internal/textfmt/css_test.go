package textfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinifyCSS(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"comments and declarations",
			"/* c */\nbody {\n    margin: 0;\n    padding: 20px;\n}\n",
			"body {margin:0;padding:20px}",
		},
		{
			"multi-line comment",
			"/* one\n two */a { color: red }",
			"a {color:red }",
		},
		{
			"media query",
			"@media (max-width: 768px) {\n  .c {\n    padding: 0 10px;\n  }\n}",
			"@media (max-width:768px) {.c {padding:0 10px} }",
		},
		{
			"pseudo selector untouched",
			".button:hover {\n  color: blue;\n}",
			".button:hover {color:blue}",
		},
		{
			"non-greedy comments",
			"/* a */ b {} /* c */",
			"b {}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinifyCSS(tt.input))
		})
	}
}

func TestMinifyCSSStats(t *testing.T) {
	input := "a {\n  color: red;\n}\n"
	stats, err := MinifyCSSStats(input)
	require.NoError(t, err)

	assert.Equal(t, "a {color:red}", stats.Minified)
	assert.Equal(t, len(input), stats.OriginalSize)
	assert.Equal(t, 13, stats.MinifiedSize)
	// (20 - 13) / 20
	assert.Equal(t, 35.0, stats.SavingsPercent)

	odd, err := MinifyCSSStats("a  {  }")
	require.NoError(t, err)
	assert.Equal(t, "a {}", odd.Minified)
	// (7 - 4) / 7 = 42.857...
	assert.Equal(t, 42.9, odd.SavingsPercent)

	_, err = MinifyCSSStats(" \n ")
	assert.ErrorIs(t, err, ErrEmptyInput)
}
