package value_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"boatmatch/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func TestNumberUnmarshal(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		absent   bool
		number   float64
		isNumber bool
		text     string
		isText   bool
	}{
		{name: "Number", input: `{"v":28}`, number: 28, isNumber: true},
		{name: "Fraction", input: `{"v":28.5}`, number: 28.5, isNumber: true},
		{name: "String", input: `{"v":"28 ft"}`, text: "28 ft", isText: true},
		{name: "Null", input: `{"v":null}`, absent: true},
		{name: "Missing", input: `{}`, absent: true},
		{name: "Boolean kept as text", input: `{"v":true}`, text: "true", isText: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var dest struct {
				V value.Number `json:"v"`
			}

			rq.NoError(json.Unmarshal([]byte(tc.input), &dest))
			rq.Equal(tc.absent, dest.V.IsAbsent())

			num, ok := dest.V.Float()
			rq.Equal(tc.isNumber, ok)
			rq.InDelta(tc.number, num, 1e-9)

			text, ok := dest.V.Text()
			rq.Equal(tc.isText, ok)
			rq.Equal(tc.text, text)
		})
	}
}

func TestNumberMarshal(t *testing.T) {
	rq := require.New(t)

	payload, err := json.Marshal(map[string]value.Number{
		"a": value.NumberOf(125000),
		"b": value.TextOf("about 30 feet"),
		"c": {},
	})
	rq.NoError(err)
	rq.JSONEq(`{"a":125000,"b":"about 30 feet","c":null}`, string(payload))
}

func TestStringListUnmarshal(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  value.StringList
	}{
		{name: "Array", input: `{"v":["GPS","T-top"]}`, want: value.StringList{"GPS", "T-top"}},
		{name: "Single string", input: `{"v":"Sport"}`, want: value.StringList{"Sport"}},
		{name: "Nested and mixed", input: `{"v":["GPS",["Radar",3],{"x":1},null]}`, want: value.StringList{"GPS", "Radar"}},
		{name: "Null", input: `{"v":null}`, want: nil},
		{name: "Number", input: `{"v":42}`, want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var dest struct {
				V value.StringList `json:"v"`
			}

			rq.NoError(json.Unmarshal([]byte(tc.input), &dest))
			rq.Equal(tc.want, dest.V)
		})
	}
}
