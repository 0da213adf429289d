package card

import (
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var knownTagColors = map[string]ColorPair{
	"BEGINNER":       {Background: "bg-sky-400/30", Text: "text-sky-300"},
	"INTERMEDIATE":   {Background: "bg-amber-400/30", Text: "text-amber-300"},
	"RUST":           {Background: "bg-indigo-400/30", Text: "text-indigo-300"},
	"SOLANA":         {Background: "bg-purple-400/30", Text: "text-purple-300"},
	"SOLANA/WEB3.JS": {Background: "bg-purple-400/30", Text: "text-purple-300"},
	"GENERAL":        {Background: "bg-amber-400/30", Text: "text-amber-300"},
}

var palette = []ColorPair{
	{Background: "bg-rose-400/30", Text: "text-rose-300"},
	{Background: "bg-green-400/30", Text: "text-green-300"},
	{Background: "bg-cyan-400/30", Text: "text-cyan-300"},
	{Background: "bg-lime-400/30", Text: "text-lime-300"},
	{Background: "bg-blue-400/30", Text: "text-blue-300"},
	{Background: "bg-pink-400/30", Text: "text-pink-300"},
}

var upper = cases.Upper(language.Und)

// TagColors resolves the badge colors of a tag. Known tags are matched
// case-insensitively; any other tag gets a palette entry chosen by hash, so
// the same tag always renders the same way.
func TagColors(tag string) ColorPair {
	key := upper.String(tag)
	if pair, ok := knownTagColors[key]; ok {
		return pair
	}
	return palette[hashString(key)%int64(len(palette))]
}

// hashString is the 31-multiplier rolling hash over UTF-16 code units,
// wrapped to int32 and made non-negative.
func hashString(s string) int64 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(unit)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}
