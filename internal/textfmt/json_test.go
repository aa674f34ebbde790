package textfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatJSON(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		indent int
		want   string
	}{
		{
			"object default indent",
			`{"b":1,"a":[1,2]}`,
			0,
			"{\n  \"b\": 1,\n  \"a\": [\n    1,\n    2\n  ]\n}",
		},
		{
			"four spaces",
			`{"a":{"b":null}}`,
			4,
			"{\n    \"a\": {\n        \"b\": null\n    }\n}",
		},
		{
			"surrounding whitespace",
			"\n  [true]  \n",
			2,
			"[\n  true\n]",
		},
		{
			"scalar",
			`"hi"`,
			2,
			`"hi"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatJSON(tt.input, tt.indent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinifyJSON(t *testing.T) {
	got, err := MinifyJSON("{\n  \"a\": [1, 2],\n  \"b\": \"x y\"\n}\n")
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2],"b":"x y"}`, got)
}

func TestJSON_Errors(t *testing.T) {
	_, err := FormatJSON("   ", 2)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = MinifyJSON(`{"a":}`)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Line)
	assert.Equal(t, 6, se.Column)
	assert.Contains(t, se.Error(), "line 1, column 6")
}

func TestValidateJSON(t *testing.T) {
	res, err := ValidateJSON(`{"ok":true}`)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Nil(t, res.Error)

	res, err = ValidateJSON("{\n  \"a\": \n}")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	require.NotNil(t, res.Error)
	assert.Equal(t, 3, res.Error.Line)
	assert.Equal(t, 1, res.Error.Column)

	res, err = ValidateJSON(`{"a":1`)
	require.NoError(t, err)
	assert.False(t, res.Valid)

	_, err = ValidateJSON("")
	assert.ErrorIs(t, err, ErrEmptyInput)
}
