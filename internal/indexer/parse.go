package indexer

import (
	"regexp"
	"strconv"
	"strings"
)

// verseMarker matches the bracketed verse numbers the text provider embeds
// in plain-text chapter content, e.g. "[1] In the beginning ... [2] ...".
var verseMarker = regexp.MustCompile(`\[(\d+)\]`)

type parsedVerse struct {
	Number int
	Text   string
}

// parseVerses splits raw chapter content into discrete verses. Whitespace
// inside a verse is collapsed to single spaces; markers with no following
// text are dropped. A return of zero verses means the chapter content was
// not in the expected shape.
func parseVerses(content string) []parsedVerse {
	locs := verseMarker.FindAllStringSubmatchIndex(content, -1)
	verses := make([]parsedVerse, 0, len(locs))
	for i, loc := range locs {
		num, err := strconv.Atoi(content[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		start := loc[1]
		end := len(content)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		text := strings.Join(strings.Fields(content[start:end]), " ")
		if text == "" {
			continue
		}
		verses = append(verses, parsedVerse{Number: num, Text: text})
	}
	return verses
}
