package value

import "strings"

//nolint:gochecknoglobals
var trademarkReplacer = strings.NewReplacer("™", "", "®", "", "©", "")

// NormalizeTitle produces the title-based identity of a game: lowercased,
// trademark glyphs stripped, whitespace collapsed to single spaces.
func NormalizeTitle(title string) string {
	title = trademarkReplacer.Replace(strings.ToLower(title))

	return strings.Join(strings.Fields(title), " ")
}
