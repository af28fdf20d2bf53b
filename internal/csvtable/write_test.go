package csvtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"empty", "", ""},
		{"comma", "a,b", `"a,b"`},
		{"quote", `say "hi"`, `"say ""hi"""`},
		{"newline", "a\nb", "\"a\nb\""},
		{"carriage return", "a\rb", "\"a\rb\""},
		{"leading space", " a", `" a"`},
		{"trailing space", "a ", `"a "`},
		{"inner space stays bare", "a b", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeCell(tt.in))
		})
	}
}

func TestStringJoinsWithCRLF(t *testing.T) {
	table := Table{
		Headers: []string{"A", "B"},
		Rows:    [][]string{{"1", "2"}},
	}
	assert.Equal(t, "A,B\r\n1,2\r\n", table.String())
}

func TestRoundTrip(t *testing.T) {
	table := Table{
		Headers: []string{"Job Name", "Cron", "Notes"},
		Rows: [][]string{
			{"daily, hourly", `uses "JST"`, "plain"},
			{" padded ", "x\ny", ""},
		},
	}

	n, err := ParseAndNormalize(table.String())
	require.NoError(t, err)
	assert.Equal(t, table, n.Table)
}
