package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	regexp.MustCompile(`(?s)("[Aa]pi[Kk]ey":\s?").+?(")`),
	regexp.MustCompile(`(?s)("[Tt]oken":\s?").+?(")`),
	regexp.MustCompile(`(?s)("botToken":\s?").+?(")`),
	// Telegram bot API paths carry the token in the URL.
	regexp.MustCompile(`(bot)\d+:[\w-]+(/)`),
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
