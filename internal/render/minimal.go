package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// renderMinimal is the last tier of the fallback chain. It wraps the raw,
// untranslated itinerary text in a document-shaped envelope and depends on
// nothing that can fail.
func renderMinimal(text, themeID string, now time.Time) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "TRAVEL ITINERARY - %s TEMPLATE\n", strings.ToUpper(themeID))
	buf.WriteString(generatedByLine + "\n")
	buf.WriteString(now.Format(timestampLayout) + "\n\n")
	buf.WriteString(text)
	buf.WriteString("\n\nHave a wonderful journey!\n")
	return buf.Bytes()
}
