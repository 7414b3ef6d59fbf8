package value

import (
	"bytes"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type numberKind uint8

const (
	numberAbsent numberKind = iota
	numberValue
	numberText
)

// Number is a loosely typed scalar as produced by vision/LLM collaborators:
// a JSON number, a JSON string such as "28 ft", null, or anything else (kept
// verbatim as text). Decoding never fails.
type Number struct {
	kind numberKind
	num  float64
	text string
}

func NumberOf(v float64) Number {
	return Number{kind: numberValue, num: v}
}

func TextOf(s string) Number {
	return Number{kind: numberText, text: s}
}

func (n Number) IsAbsent() bool {
	return n.kind == numberAbsent
}

// Float returns the value when it was supplied as a number.
func (n Number) Float() (float64, bool) {
	return n.num, n.kind == numberValue
}

// Text returns the value when it was supplied as text.
func (n Number) Text() (string, bool) {
	return n.text, n.kind == numberText
}

func (n Number) String() string {
	switch n.kind {
	case numberValue:
		return strconv.FormatFloat(n.num, 'f', -1, 64)
	case numberText:
		return n.text
	default:
		return ""
	}
}

func (n Number) MarshalJSON() ([]byte, error) {
	switch n.kind {
	case numberValue:
		if math.IsNaN(n.num) || math.IsInf(n.num, 0) {
			return []byte("null"), nil
		}

		return []byte(strconv.FormatFloat(n.num, 'f', -1, 64)), nil
	case numberText:
		return json.Marshal(n.text) //nolint:wrapcheck
	default:
		return []byte("null"), nil
	}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*n = Number{}
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = TextOf(string(data))

			return nil
		}

		*n = TextOf(s)
	default:
		v, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			*n = TextOf(string(data))

			return nil
		}

		*n = NumberOf(v)
	}

	return nil
}
