package utils

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRegex = regexp.MustCompile(`[ \t\r\f]+`)

var blankLinesRegex = regexp.MustCompile(`\n{3,}`)

// HTMLToPlainText extracts the readable text from an HTML fragment. Script and
// style elements are dropped. Input that fails to parse is returned as-is with
// whitespace collapsed, so callers never have to handle a hard failure.
func HTMLToPlainText(html string) string {
	if html == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return CollapseWhitespace(html)
	}

	// Remove script and style elements
	doc.Find("script, style").Each(func(i int, el *goquery.Selection) {
		el.Remove()
	})

	// Block elements don't render adjacent, keep their text separated
	doc.Find("p, div, br, li, tr, h1, h2, h3, h4, h5, h6").Each(func(i int, el *goquery.Selection) {
		el.AppendHtml("\n")
	})

	text := doc.Find("body").Text()
	return CollapseWhitespace(text)
}

// CollapseWhitespace squeezes runs of spaces and tabs and trims every line,
// keeping single newlines so paragraph structure survives into the prompt.
func CollapseWhitespace(text string) string {
	text = whitespaceRegex.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")

	text = blankLinesRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// TruncateText caps text at max runes, discarding the tail.
func TruncateText(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
