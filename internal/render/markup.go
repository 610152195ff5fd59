package render

import (
	"regexp"
	"strings"
)

// latexEscaper escapes the characters that carry meaning in LaTeX. It is a
// simultaneous replacer, so the backslashes it emits are never re-escaped.
var latexEscaper = strings.NewReplacer(
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
)

var (
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*]+?)\*`)

	headerPrefixRe = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	listMarkerRe   = regexp.MustCompile(`(?m)^[*\-+]\s+`)
	strayMarkupRe  = regexp.MustCompile("[`~]")
	entityTailRe   = regexp.MustCompile(`^(?:amp|lt|gt|quot|apos|#[0-9]+|#x[0-9a-fA-F]+);`)
)

// MarkdownToLaTeX converts the constrained markdown subset produced by the
// AI model into LaTeX. It never fails: unmatched emphasis markers are passed
// through as literal characters.
func MarkdownToLaTeX(markdown string) string {
	var out []string
	inList := false

	closeList := func() {
		if inList {
			out = append(out, `\end{itemize}`)
			inList = false
		}
	}

	for _, raw := range strings.Split(markdown, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			closeList()
			out = append(out, `\vspace{0.5em}`)
			continue
		}

		escaped := latexEscaper.Replace(line)

		switch {
		case strings.HasPrefix(line, "# "):
			closeList()
			text := strings.TrimSpace(escaped[len(`\# `):])
			out = append(out, `\section{`+applyEmphasis(text)+`}`)
		case strings.HasPrefix(line, "## "):
			closeList()
			text := strings.TrimSpace(escaped[len(`\#\# `):])
			out = append(out, `\subsection{`+applyEmphasis(text)+`}`)
		case strings.HasPrefix(line, "### "):
			closeList()
			text := strings.TrimSpace(escaped[len(`\#\#\# `):])
			out = append(out, `\subsubsection{`+applyEmphasis(text)+`}`)
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			if !inList {
				out = append(out, `\begin{itemize}`)
				inList = true
			}
			text := strings.TrimSpace(escaped[2:])
			out = append(out, `\item `+applyEmphasis(text))
		default:
			closeList()
			out = append(out, applyEmphasis(escaped)+`\\`)
		}
	}
	closeList()

	return strings.Join(out, "\n")
}

// applyEmphasis turns **bold** runs into \textbf and *italic* runs into
// \textit. Bold runs first so a double marker is never split into two
// italic matches.
func applyEmphasis(text string) string {
	text = boldRe.ReplaceAllString(text, `\textbf{$1}`)
	text = italicRe.ReplaceAllString(text, `\textit{$1}`)
	return text
}

// CleanForRichText normalizes markdown for the library renderer's limited
// rich-text syntax: header markers stripped, emphasis mapped to <b>/<i>
// tags, list markers turned into bullets, and bare ampersands made
// entity-safe. It is independent of the LaTeX translation because the
// target syntax differs.
func CleanForRichText(text string) string {
	text = headerPrefixRe.ReplaceAllString(text, "")
	text = boldRe.ReplaceAllString(text, "<b>$1</b>")
	text = italicRe.ReplaceAllString(text, "<i>$1</i>")
	text = listMarkerRe.ReplaceAllString(text, "• ")
	text = strayMarkupRe.ReplaceAllString(text, "")
	return escapeBareAmpersands(text)
}

// escapeBareAmpersands replaces & with &amp; unless it already starts a
// recognized entity reference.
func escapeBareAmpersands(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] != '&' {
			b.WriteByte(text[i])
			continue
		}
		if entityTailRe.MatchString(text[i+1:]) {
			b.WriteByte('&')
			continue
		}
		b.WriteString("&amp;")
	}
	return b.String()
}
