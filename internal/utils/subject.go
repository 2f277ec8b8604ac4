package utils

import (
	"regexp"
	"strings"
)

// DefaultSubjectMarkers are the line prefixes the orchestrator is known to use
// when it bundles the subject into the raw body. English and Spanish, since
// the upstream mailbox receives both.
var DefaultSubjectMarkers = []string{"Subject", "Asunto"}

var subjectPrefixRegex = regexp.MustCompile(`(?i)^(Re|Fwd|Fw)(\[\d+\])?:\s*`)

// NormalizeSubject removes reply/forward prefixes like Re:, Fwd: from a subject
func NormalizeSubject(subject string) string {
	subject = strings.TrimSpace(subject)
	for subjectPrefixRegex.MatchString(subject) {
		subject = subjectPrefixRegex.ReplaceAllString(subject, "")
		subject = strings.TrimSpace(subject)
	}
	return subject
}

// ExtractSubjectFromBody scans body for a "<marker>: ..." line and, when found,
// returns the recovered subject plus the body with that line removed. When no
// marker matches it returns an empty subject and the body untouched.
func ExtractSubjectFromBody(body string, markers []string) (string, string) {
	if body == "" || len(markers) == 0 {
		return "", body
	}

	escaped := make([]string, 0, len(markers))
	for _, marker := range markers {
		escaped = append(escaped, regexp.QuoteMeta(marker))
	}
	re := regexp.MustCompile(`(?im)^[ \t]*(?:` + strings.Join(escaped, "|") + `)[ \t]*:[ \t]*(.+)$`)

	match := re.FindStringSubmatchIndex(body)
	if match == nil {
		return "", body
	}

	subject := strings.TrimSpace(body[match[2]:match[3]])
	remainder := body[:match[0]] + body[match[1]:]
	return subject, strings.TrimSpace(remainder)
}
