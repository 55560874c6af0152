package aggql

import (
	"strings"
	"unicode/utf8"

	"github.com/zoobzio/aggql/keywords"
)

// Qualify rewrites alias-prefixed identifiers typed before cursor into
// table-prefixed ones, using the DuckDB reserved keywords.
//
// Table names match in any case, but aliases are lowercased before matching
// and replacing: in "select O.x from orders O" only " o." would be rewritten,
// so the text is unchanged. An alias that is a reserved keyword, such as
// select, is never rewritten.
//
//	Qualify("select a.x from orders a", []string{"orders"}, 24)
//	// "select orders.x from orders a"
func Qualify(text string, tables []string, cursor int) string {
	return QualifyWith(DefaultDialect(), text, tables, cursor)
}

// QualifyWith is Qualify with the reserved keywords of dialect.
func QualifyWith(dialect Dialect, text string, tables []string, cursor int) string {
	return qualify(dialect.Keywords(), text, tables, cursor)
}

// qualify works on whitespace-separated words of the whole text. Every word
// equal to a known table (ignoring case) is followed by its alias, optionally
// after AS. Unless the alias is a reserved keyword, " alias." is replaced by
// " table." in the text before cursor, with alias in lower case.
//
// Words inside string literals and comments are not told apart from code.
// cursor is clamped to the text and moved back to a rune boundary.
func qualify(reserved *keywords.Set, text string, tables []string, cursor int) string {
	cursor = clampCursor(text, cursor)
	result := text[:cursor]
	words := strings.Fields(text)

	for _, table := range tables {
		for i, word := range words {
			if !strings.EqualFold(word, table) {
				continue
			}
			next := i + 1
			if next < len(words) && strings.EqualFold(words[next], "as") {
				next++
			}
			if next >= len(words) {
				continue
			}
			alias := strings.ToLower(words[next])
			if reserved.Contains(alias) {
				continue
			}
			result = strings.ReplaceAll(result, " "+alias+".", " "+table+".")
		}
	}

	return result
}

func clampCursor(text string, cursor int) int {
	if cursor < 0 {
		return 0
	}
	if cursor >= len(text) {
		return len(text)
	}
	for cursor > 0 && !utf8.RuneStart(text[cursor]) {
		cursor--
	}
	return cursor
}
