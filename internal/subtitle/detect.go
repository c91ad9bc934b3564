package subtitle

import (
	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

// DetectLanguage guesses the dominant language of the document by majority
// vote over per-cue detection. Returns language.Und when the document is
// empty or no cue yields a confident guess.
func DetectLanguage(doc *Document) language.Tag {
	if doc == nil || len(doc.Cues) == 0 {
		return language.Und
	}

	langMap := make(map[string]int)
	for _, cue := range doc.Cues {
		if cue.Text == "" {
			continue
		}
		lang := whatlanggo.DetectLang(cue.Text).Iso6391()
		if lang == "" {
			// Undetectable cues must not outvote a real language.
			continue
		}
		langMap[lang]++
	}

	var topLang string
	var topCount int
	for lang, count := range langMap {
		if count > topCount {
			topLang = lang
			topCount = count
		}
	}
	if topLang == "" {
		return language.Und
	}

	return language.All.Make(topLang)
}
