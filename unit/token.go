package unit

import "unicode"

// tokenize splits run text into atoms-to-be: each token is a word or a
// single punctuation rune, with any immediately following whitespace
// attached. Whitespace at the start of the text becomes its own token,
// since run boundaries always cut atoms and there is nothing to attach
// it to.
func tokenize(text string) []string {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	var res []string
	i := 0
	for i < len(runes) {
		start := i
		switch {
		case unicode.IsSpace(runes[i]):
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
		case isPunct(runes[i]):
			i++
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
		default:
			for i < len(runes) && !unicode.IsSpace(runes[i]) && !isPunct(runes[i]) {
				i++
			}
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
		}
		res = append(res, string(runes[start:i]))
	}
	return res
}

func isPunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// IsWord reports whether a token carries word content rather than bare
// punctuation or whitespace. Move detection builds its word sets from
// these.
func IsWord(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
