package utils

import (
	"regexp"
	"strings"
)

// The no-code orchestrator (Make.com) posts JSON where the body field carries
// raw HTML with unescaped quotes, which breaks strict decoding. These helpers
// recover the fields on a best-effort basis so a malformed payload still
// yields a usable email instead of a rejected request.

// ExtractJSONStringField pulls a string field out of a raw, possibly malformed
// JSON document. The match is escape-aware, so properly escaped quotes inside
// the value do not terminate it.
func ExtractJSONStringField(raw, field string) (string, bool) {
	re := regexp.MustCompile(`"` + regexp.QuoteMeta(field) + `"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	match := re.FindStringSubmatch(raw)
	if match == nil {
		return "", false
	}
	return UnescapeJSONString(match[1]), true
}

// ExtractEmbeddedBodyField handles the case where the body value itself
// contains unescaped quotes (HTML attributes like dir="ltr"), which makes the
// field regex stop early. It slices from the opening of the body value to the
// last closing quote before the document's final brace.
func ExtractEmbeddedBodyField(raw string) (string, bool) {
	for _, opener := range []string{`"body": "`, `"body":"`} {
		start := strings.Index(raw, opener)
		if start == -1 {
			continue
		}
		start += len(opener)

		closing := strings.LastIndex(raw, `"`)
		tail := strings.TrimSpace(raw[closing+1:])
		if closing <= start || (tail != "}" && tail != "},") {
			continue
		}

		return UnescapeJSONString(raw[start:closing]), true
	}
	return "", false
}

// UnescapeJSONString resolves the escape sequences the orchestrator actually
// produces. Unknown escapes are left alone rather than dropped.
func UnescapeJSONString(value string) string {
	replacer := strings.NewReplacer(
		`\"`, `"`,
		`\n`, "\n",
		`\r`, "\r",
		`\t`, "\t",
		`\/`, "/",
		`\\`, `\`,
	)
	return replacer.Replace(value)
}
