package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLToPlainText_StripsMarkup(t *testing.T) {
	html := `<p dir="ltr">No tengo internet desde <b>ayer</b></p>`

	text := HTMLToPlainText(html)

	assert.Equal(t, "No tengo internet desde ayer", text)
}

func TestHTMLToPlainText_DropsScriptAndStyle(t *testing.T) {
	html := `<style>p { color: red; }</style><p>visible</p><script>alert("x")</script>`

	text := HTMLToPlainText(html)

	assert.Equal(t, "visible", text)
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color")
}

func TestHTMLToPlainText_KeepsBlockSeparation(t *testing.T) {
	html := `<div>first paragraph</div><div>second paragraph</div>`

	text := HTMLToPlainText(html)

	assert.Contains(t, text, "first paragraph")
	assert.Contains(t, text, "second paragraph")
	assert.NotContains(t, text, "paragraphsecond")
}

func TestHTMLToPlainText_PlainTextPassthrough(t *testing.T) {
	assert.Equal(t, "just plain text", HTMLToPlainText("just   plain\t text"))
	assert.Equal(t, "", HTMLToPlainText(""))
}

func TestHTMLToPlainText_DecodesEntities(t *testing.T) {
	text := HTMLToPlainText(`<p>Tom &amp; Jerry &gt; others</p>`)

	assert.Equal(t, "Tom & Jerry > others", text)
}

func TestCollapseWhitespace(t *testing.T) {
	input := "  line one  \n\n\n\n   line\ttwo  "

	assert.Equal(t, "line one\n\nline two", CollapseWhitespace(input))
}

func TestTruncateText(t *testing.T) {
	long := strings.Repeat("a", 5000)

	assert.Len(t, TruncateText(long, 4000), 4000)
	assert.Equal(t, "short", TruncateText("short", 4000))
	assert.Equal(t, long, TruncateText(long, 0))
}

func TestTruncateText_RuneSafe(t *testing.T) {
	input := strings.Repeat("é", 10)

	truncated := TruncateText(input, 5)

	assert.Equal(t, strings.Repeat("é", 5), truncated)
}
