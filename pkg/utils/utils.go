package utils

import (
	"crypto/rand"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	StripHTML(value string) string
	IsEmptyHTML(value string) bool
	BuildExcerpt(value string, maxLength int) string
	SplitCommaList(value string) []string
	JoinCommaList(values []string) string
}

type utils struct {
	stripPolicy *bluemonday.Policy
}

func New() IUtils {
	return &utils{
		stripPolicy: bluemonday.StrictPolicy(),
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// StripHTML drops every tag from an HTML fragment and returns the trimmed text.
func (u *utils) StripHTML(value string) string {
	if value == "" {
		return ""
	}
	stripped := u.stripPolicy.Sanitize(value)
	return strings.TrimSpace(html.UnescapeString(stripped))
}

// IsEmptyHTML reports whether an HTML fragment carries no visible text.
func (u *utils) IsEmptyHTML(value string) bool {
	return u.StripHTML(value) == ""
}

func (u *utils) BuildExcerpt(value string, maxLength int) string {
	if value == "" {
		return ""
	}
	runes := []rune(value)
	if maxLength <= 0 || len(runes) <= maxLength {
		return value
	}
	return strings.TrimSpace(string(runes[:maxLength])) + "..."
}

// SplitCommaList splits comma-separated free text, dropping blank entries.
func (u *utils) SplitCommaList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (u *utils) JoinCommaList(values []string) string {
	return strings.Join(values, ", ")
}
