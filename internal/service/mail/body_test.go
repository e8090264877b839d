package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeHTMLWithoutMessage(t *testing.T) {
	assert.Equal(t, "<p>hi</p>", ComposeHTML(nil, "<p>hi</p>"))

	empty := ""
	assert.Equal(t, "<p>hi</p>", ComposeHTML(&empty, "<p>hi</p>"))
}

func TestComposeHTMLConvertsLineBreaks(t *testing.T) {
	msg := "line1\nline2"
	assert.Equal(t, "<p>line1<br>line2</p><hr><h2>Summary</h2>", ComposeHTML(&msg, "<h2>Summary</h2>"))

	crlf := "line1\r\nline2"
	assert.Equal(t, "<p>line1<br>line2</p><hr>x", ComposeHTML(&crlf, "x"))
}

func TestComposeHTMLEscapesMessageOnly(t *testing.T) {
	msg := "Tom & Jerry <b>"
	got := ComposeHTML(&msg, "<ul><li>a & b</li></ul>")
	assert.Equal(t, "<p>Tom &amp; Jerry &lt;b&gt;</p><hr><ul><li>a & b</li></ul>", got)
}
