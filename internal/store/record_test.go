package store

import (
	"RugbyStatsApi/internal/assert"
	"encoding/json"
	"testing"
)

func TestRawValueUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "String", input: `"45%"`, want: "45%"},
		{name: "Integer", input: `14`, want: "14"},
		{name: "Float", input: `12.5`, want: "12.5"},
		{name: "Empty String", input: `""`, want: ""},
		{name: "Object", input: `{"v": 1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v RawValue
			err := json.Unmarshal([]byte(tt.input), &v)
			if tt.wantErr {
				assert.Equal(t, err != nil, true)
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, v.String(), tt.want)
		})
	}
}

func TestRawValueConversions(t *testing.T) {
	v := RawValue("14")
	n, err := v.Int()
	assert.NilError(t, err)
	assert.Equal(t, n, 14)

	f, err := RawValue("12.5").Float64()
	assert.NilError(t, err)
	assert.FloatEqual(t, f, 12.5)

	_, err = RawValue("45%").Float64()
	assert.Equal(t, err != nil, true)
}

func TestRawPlayerUnmarshal(t *testing.T) {
	doc := `{
		"name": "Johnny Sexton",
		"id": 12059,
		"number": 10,
		"position": "FH",
		"captain": true,
		"eventTimes": {"substitution": ["70'"]},
		"tackles": {"name": "Tackles", "value": 8},
		"points": {"name": "Points", "value": "13"},
		"metadata": {"source": "feed-v2"}
	}`

	var p RawPlayer
	err := json.Unmarshal([]byte(doc), &p)
	assert.NilError(t, err)

	assert.Equal(t, p.Name, "Johnny Sexton")
	assert.Equal(t, p.ID, int64(12059))
	assert.Equal(t, p.Number.String(), "10")
	assert.Equal(t, p.Captain, true)
	assert.StringSliceEqual(t, p.EventTimes["substitution"], []string{"70'"})

	assert.Equal(t, len(p.Stats), 2)
	assert.Equal(t, p.Stats["tackles"].Value.String(), "8")
	assert.Equal(t, p.Stats["points"].Value.String(), "13")

	// blocks without a name field are not stats
	_, ok := p.Stats["metadata"]
	assert.Equal(t, ok, false)
}

func TestRawPlayerRoundTrip(t *testing.T) {
	p := RawPlayer{
		Name:     "Peter O'Mahony",
		ID:       96,
		Number:   RawValue("6"),
		Position: "BF",
		Stats: map[string]RawPlayerStat{
			"tackles": {Name: "Tackles", Value: RawValue("15")},
		},
	}

	b, err := json.Marshal(&p)
	assert.NilError(t, err)

	var got RawPlayer
	assert.NilError(t, json.Unmarshal(b, &got))
	assert.Equal(t, got.Name, p.Name)
	assert.Equal(t, got.Stats["tackles"].Value.String(), "15")
}
