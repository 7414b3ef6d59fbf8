package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

// Uploaded photos are referenced by pre-signed URLs; the signature part is a
// bearer credential and must not reach the logs.
//
//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	regexp.MustCompile(`(?s)("imageUrl":\s?"[^"?]*\?).+?(")`),
	regexp.MustCompile(`(?s)("[Aa]pi[Kk]ey":\s?").+?(")`),
	regexp.MustCompile(`(?s)("email":\s?").+?(")`),
	regexp.MustCompile(`(?s)("phone":\s?").+?(")`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
