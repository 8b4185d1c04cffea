package spell

import (
	"strings"
	"unicode"
)

// spellSyllables is the fixed vocabulary of magic-word fragments, in
// catalogue order so a syllable code is stable across lookups. Entries
// 41-50 are inert reserved slots; the matcher skips empty strings, so
// they can never match.
var spellSyllables = [51]string{
	"", "al", "ad", "ex", "ut", "om", "para", "ana", "evo", "ori", "mort",
	"lux", "liber", "vita", "flam", "pox", "hur", "moe", "ani", "ina",
	"eta", "amo", "hora", "gran", "cogni", "res", "mas", "vis", "som",
	"aqua", "frigo", "tera", "ura", "sio", "grav", "ito", "pan", "vid",
	"isa", "iva", "con", "", "", "", "", "", "", "", "", "", "",
}

// unknownSyllableIndex is the marker emitted for a token fragment that no
// known syllable prefixes.
const unknownSyllableIndex = 6

// maxSyllables caps both word tokens and emitted syllable codes per phrase.
const maxSyllables = 9

// wordToken is one whitespace- or quote-delimited segment of a cast phrase.
// Quoted segments carry cast parameters such as a target name.
type wordToken struct {
	text   string
	quoted bool
}

// wordTokens splits a cast phrase into up to maxSyllables tokens. Text
// between double quotes becomes a single token regardless of embedded
// whitespace; an unterminated quote swallows the rest of the input.
func wordTokens(words string) []wordToken {
	var tokens []wordToken
	runes := []rune(words)
	i := 0
	for i < len(runes) {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}
		quoted := runes[i] == '"'
		if quoted {
			i++
		}
		var sb strings.Builder
		if quoted {
			for i < len(runes) {
				if runes[i] == '"' {
					i++
					break
				}
				sb.WriteRune(runes[i])
				i++
			}
		} else {
			for i < len(runes) && !unicode.IsSpace(runes[i]) {
				sb.WriteRune(runes[i])
				i++
			}
		}
		if sb.Len() == 0 {
			continue
		}
		tokens = append(tokens, wordToken{text: sb.String(), quoted: quoted})
		if len(tokens) >= maxSyllables {
			break
		}
	}
	return tokens
}

// syllablesFromWords decomposes a cast phrase into syllable codes. This is
// the fuzzy secondary lookup key: "exura sio" and the concatenated
// "exurasio" decompose identically, so both resolve to the same spell.
func syllablesFromWords(words string) []uint8 {
	var out []uint8
	for _, token := range wordTokens(words) {
		out = appendTokenSyllables(token.text, out)
		if len(out) >= maxSyllables {
			break
		}
	}
	return out
}

// appendTokenSyllables greedily decomposes one token: at each position the
// longest matching syllable prefix wins (ties are impossible since only a
// strictly longer match replaces the best seen). A fragment matching no
// syllable emits one unknown marker and abandons the rest of that token
// without touching the remainder of the phrase.
func appendTokenSyllables(token string, out []uint8) []uint8 {
	remaining := strings.ToLower(token)
	for remaining != "" {
		bestIndex := -1
		bestLen := 0
		for index, syllable := range spellSyllables {
			if syllable == "" {
				continue
			}
			if strings.HasPrefix(remaining, syllable) && len(syllable) > bestLen {
				bestIndex = index
				bestLen = len(syllable)
			}
		}
		if bestIndex < 0 {
			return append(out, unknownSyllableIndex)
		}
		out = append(out, uint8(bestIndex))
		remaining = remaining[bestLen:]
		if len(out) >= maxSyllables {
			return out
		}
	}
	return out
}

// syllableKey packs a syllable sequence into a map key.
func syllableKey(syllables []uint8) string {
	return string(syllables)
}
