package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			raw:  `{"title":"Coffee","amount":4.5}`,
			want: `{"title":"Coffee","amount":4.5}`,
		},
		{
			name: "bare array",
			raw:  `[{"title":"A"},{"title":"B"}]`,
			want: `[{"title":"A"},{"title":"B"}]`,
		},
		{
			name: "fenced json matches bare response",
			raw:  "```json\n{\"title\":\"Coffee\",\"amount\":4.5}\n```",
			want: `{"title":"Coffee","amount":4.5}`,
		},
		{
			name: "fence without language tag",
			raw:  "```\n[{\"title\":\"A\"}]\n```",
			want: `[{"title":"A"}]`,
		},
		{
			name: "object wrapped in prose",
			raw:  "Sure! Here is the extracted data:\n{\"title\":\"Coffee\"}\nLet me know if you need anything else.",
			want: `{"title":"Coffee"}`,
		},
		{
			name: "array wrapped in prose and fences",
			raw:  "Here you go:\n```json\n[{\"title\":\"A\"}]\n```\nCheers!",
			want: `[{"title":"A"}]`,
		},
		{
			name: "nested objects keep outer span",
			raw:  `result: {"rows":[{"title":"A"},{"title":"B"}]} done`,
			want: `{"rows":[{"title":"A"},{"title":"B"}]}`,
		},
		{
			name:    "no json at all",
			raw:     "I could not read the receipt, sorry.",
			wantErr: true,
		},
		{
			name:    "unbalanced json is malformed",
			raw:     `{"title":"Coffee"`,
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Recover(tt.raw)
			if tt.wantErr {
				var malformed *MalformedError
				require.ErrorAs(t, err, &malformed)
				// The raw response is preserved verbatim for the user.
				assert.Equal(t, tt.raw, malformed.Raw)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestRecover_FencedEqualsBare(t *testing.T) {
	bare := `{"title":"Kedai Kopi","amount":"12.50","category":"Makan","date":"12 Jan"}`
	fenced := "```json\n" + bare + "\n```"

	fromBare, err := Recover(bare)
	require.NoError(t, err)
	fromFenced, err := Recover(fenced)
	require.NoError(t, err)

	var a, b map[string]any
	require.NoError(t, json.Unmarshal(fromBare, &a))
	require.NoError(t, json.Unmarshal(fromFenced, &b))
	assert.Equal(t, a, b)
}
