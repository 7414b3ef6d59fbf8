package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"boatmatch/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Signed image URL",
			input:  []byte(`{"name":"Aurora","imageUrl":"https://cdn.example.com/boats/1.jpg?X-Amz-Signature=abc123"}`),
			output: []byte(`{"name":"Aurora","imageUrl":"https://cdn.example.com/boats/1.jpg?[MASKED]"}`),
		},
		{
			name:   "Plain image URL is kept",
			input:  []byte(`{"imageUrl":"https://cdn.example.com/boats/1.jpg"}`),
			output: []byte(`{"imageUrl":"https://cdn.example.com/boats/1.jpg"}`),
		},
		{
			name:   "API key",
			input:  []byte(`{"apiKey":"sk-123","ApiKey":"sk-456"}`),
			output: []byte(`{"apiKey":"[MASKED]","ApiKey":"[MASKED]"}`),
		},
		{
			name:   "Seller contacts",
			input:  []byte(`{"seller": {"email": "jane@marina.com", "phone": "+1 555 0100"}, "price": 125000}`),
			output: []byte(`{"seller": {"email": "[MASKED]", "phone": "[MASKED]"}, "price": 125000}`),
		},
		{
			name:   "Bearer token",
			input:  []byte("GET / HTTP/1.1\r\nAuthorization: Bearer secret-token\r\n"),
			output: []byte("GET / HTTP/1.1\r\nAuthorization: Bearer [MASKED]\r\n"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
