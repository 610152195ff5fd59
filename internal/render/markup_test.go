package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToLaTeX_EscapesSpecialCharacters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ampersand", "Fish & Chips", `\&`},
		{"percent", "50% off", `\%`},
		{"dollar", "$100 per night", `\$`},
		{"hash", "Room #5", `\#`},
		{"underscore", "user_name", `\_`},
		{"open brace", "set {a", `\{`},
		{"close brace", "b} done", `\}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := MarkdownToLaTeX(tt.input)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestMarkdownToLaTeX_EscapingIsStable(t *testing.T) {
	// Escaping the escaped form must not reintroduce unescaped structural
	// characters.
	out := MarkdownToLaTeX("A & B")
	assert.Contains(t, out, `\&`)
	assert.NotContains(t, strings.ReplaceAll(out, `\&`, ""), "&")
}

func TestMarkdownToLaTeX_Headers(t *testing.T) {
	out := MarkdownToLaTeX("# Day One\n## Morning\n### Breakfast")
	assert.Contains(t, out, `\section{Day One}`)
	assert.Contains(t, out, `\subsection{Morning}`)
	assert.Contains(t, out, `\subsubsection{Breakfast}`)
}

func TestMarkdownToLaTeX_BoldBeforeItalic(t *testing.T) {
	out := MarkdownToLaTeX("**x** *y*")
	assert.Contains(t, out, `\textbf{x}`)
	assert.Contains(t, out, `\textit{y}`)
	assert.NotContains(t, out, `\textbf{x** *y}`)
}

func TestMarkdownToLaTeX_BulletList(t *testing.T) {
	out := MarkdownToLaTeX("- first\n* second\n\nafter")
	assert.Contains(t, out, `\begin{itemize}`)
	assert.Contains(t, out, `\item first`)
	assert.Contains(t, out, `\item second`)
	assert.Contains(t, out, `\end{itemize}`)

	// The blank line must close the list before the paragraph.
	listEnd := strings.Index(out, `\end{itemize}`)
	para := strings.Index(out, `after\\`)
	assert.Less(t, listEnd, para)
}

func TestMarkdownToLaTeX_ListClosedAtEOF(t *testing.T) {
	out := MarkdownToLaTeX("- only item")
	assert.Equal(t, 1, strings.Count(out, `\begin{itemize}`))
	assert.Equal(t, 1, strings.Count(out, `\end{itemize}`))
	assert.True(t, strings.HasSuffix(out, `\end{itemize}`))
}

func TestMarkdownToLaTeX_UnbalancedMarkersPassThrough(t *testing.T) {
	out := MarkdownToLaTeX("a ** lonely marker")
	assert.NotContains(t, out, `\textbf`)
	assert.Contains(t, out, "lonely marker")
}

func TestMarkdownToLaTeX_NeverEmpty(t *testing.T) {
	assert.NotEmpty(t, MarkdownToLaTeX(""))
}

func TestCleanForRichText_Emphasis(t *testing.T) {
	out := CleanForRichText("**bold** and *italic*")
	assert.Contains(t, out, "<b>bold</b>")
	assert.Contains(t, out, "<i>italic</i>")
}

func TestCleanForRichText_StripsHeadersAndListMarkers(t *testing.T) {
	out := CleanForRichText("## Heading\n- item one\n* item two")
	assert.NotContains(t, out, "##")
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "• item one")
	assert.Contains(t, out, "• item two")
}

func TestCleanForRichText_AmpersandEntitySafety(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare ampersand", "Fish & Chips", "Fish &amp; Chips"},
		{"existing entity kept", "a &amp; b", "a &amp; b"},
		{"numeric entity kept", "&#169; notice", "&#169; notice"},
		{"hex entity kept", "&#x27; quote", "&#x27; quote"},
		{"trailing ampersand", "ends with &", "ends with &amp;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanForRichText(tt.input))
		})
	}
}
