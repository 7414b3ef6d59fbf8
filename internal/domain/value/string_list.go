package value

// StringList accepts a JSON array of strings, a single string or null.
// Nested arrays are flattened and non-string entries are dropped, so
// decoding never fails on malformed attribute guesses.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = nil

		return nil
	}

	var out []string

	flattenStrings(raw, &out)

	*l = out

	return nil
}

func flattenStrings(v any, out *[]string) {
	switch t := v.(type) {
	case string:
		*out = append(*out, t)
	case []any:
		for _, item := range t {
			flattenStrings(item, out)
		}
	}
}
