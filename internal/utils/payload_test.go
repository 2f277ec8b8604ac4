package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONStringField(t *testing.T) {
	raw := `{"subject": "Hello", "body": "World"}`

	subject, ok := ExtractJSONStringField(raw, "subject")
	assert.True(t, ok)
	assert.Equal(t, "Hello", subject)

	body, ok := ExtractJSONStringField(raw, "body")
	assert.True(t, ok)
	assert.Equal(t, "World", body)

	_, ok = ExtractJSONStringField(raw, "category")
	assert.False(t, ok)
}

func TestExtractJSONStringField_EscapedQuotes(t *testing.T) {
	raw := `{"body": "he said \"hi\" and left\nyesterday"}`

	body, ok := ExtractJSONStringField(raw, "body")

	assert.True(t, ok)
	assert.Equal(t, "he said \"hi\" and left\nyesterday", body)
}

func TestExtractEmbeddedBodyField_UnescapedQuotes(t *testing.T) {
	// what Make.com actually sends: raw HTML with unescaped attribute quotes
	raw := "{\n\"subject\": \"ayuda\",\n\"body\": \"<p dir=\"ltr\">No tengo internet</p>\"\n}"

	body, ok := ExtractEmbeddedBodyField(raw)

	assert.True(t, ok)
	assert.Equal(t, `<p dir="ltr">No tengo internet</p>`, body)
}

func TestExtractEmbeddedBodyField_NoBodyField(t *testing.T) {
	_, ok := ExtractEmbeddedBodyField(`{"subject": "only a subject"}`)

	assert.False(t, ok)
}

func TestUnescapeJSONString(t *testing.T) {
	assert.Equal(t, "a \"quoted\" word", UnescapeJSONString(`a \"quoted\" word`))
	assert.Equal(t, "line\nbreak", UnescapeJSONString(`line\nbreak`))
	assert.Equal(t, "a/b", UnescapeJSONString(`a\/b`))
	assert.Equal(t, "untouched", UnescapeJSONString("untouched"))
}
