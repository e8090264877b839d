package mail

import (
	"strings"

	"golang.org/x/net/html"
)

// ComposeHTML prepends the optional plain-text message to the summary HTML.
// The message is escaped, its line breaks become <br>, and an <hr> separates it
// from the summary. The summary is inserted verbatim.
func ComposeHTML(message *string, summaryHTML string) string {
	if message == nil || *message == "" {
		return summaryHTML
	}

	text := strings.ReplaceAll(*message, "\r\n", "\n")
	text = strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")

	var b strings.Builder
	b.Grow(len(text) + len(summaryHTML) + 16)
	b.WriteString("<p>")
	b.WriteString(text)
	b.WriteString("</p><hr>")
	b.WriteString(summaryHTML)
	return b.String()
}
