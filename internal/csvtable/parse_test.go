package csvtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimple(t *testing.T) {
	rows, err := Parse("a,b,c\n1,2,3\n")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"1", "2", "3"}}, rows)
}

func TestParseNoTrailingNewline(t *testing.T) {
	rows, err := Parse("a,b\n1,2")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, rows)
}

func TestParseCRLF(t *testing.T) {
	rows, err := Parse("a,b\r\n1,2\r\n")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, rows)
}

func TestParseQuotedCells(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "comma inside quotes",
			input: "\"a,b\",c\n",
			want:  [][]string{{"a,b", "c"}},
		},
		{
			name:  "escaped quote",
			input: "\"say \"\"hi\"\"\",x\n",
			want:  [][]string{{`say "hi"`, "x"}},
		},
		{
			name:  "newline inside quotes",
			input: "\"line1\nline2\",x\n",
			want:  [][]string{{"line1\nline2", "x"}},
		},
		{
			name:  "carriage return inside quotes is preserved",
			input: "\"a\r\nb\",x\n",
			want:  [][]string{{"a\r\nb", "x"}},
		},
		{
			name:  "empty quoted cell",
			input: "\"\",x\n",
			want:  [][]string{{"", "x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rows)
		})
	}
}

func TestParseUnterminatedQuote(t *testing.T) {
	_, err := Parse("a,\"unterminated\n")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseEmptyInput(t *testing.T) {
	rows, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseEmptyCells(t *testing.T) {
	rows, err := Parse(",,\n")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"", "", ""}}, rows)
}
