package markdown

import (
	"fmt"
	"sort"
	"strings"
)

// writeTable renders a two-column Markdown table with a header row, an
// alignment separator and one row per entry, keys and values both in
// inline code. Rows come out in sorted key order so regenerated pages are
// byte-for-byte stable.
func writeTable[V any](b *strings.Builder, m map[string]V, keyName, valueName string) {
	b.WriteString(keyName + " | " + valueName + "\n")
	b.WriteString(":----- | :----\n")

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(b, "`%s` | <code>%v</code>\n", k, m[k])
	}
	b.WriteString("\n")
}

// writeNoneTable renders the placeholder table used when a section has no
// entries to document.
func writeNoneTable(b *strings.Builder) {
	b.WriteString("| None |\n")
	b.WriteString("| :--- |\n\n")
}
