package spell

import (
	"reflect"
	"testing"
)

func TestSyllablesFromWords(t *testing.T) {
	tests := []struct {
		name  string
		words string
		want  []uint8
	}{
		{
			name:  "simple phrase",
			words: "exura gran",
			want:  []uint8{3, 32, 23},
		},
		{
			name:  "concatenated phrase decomposes identically",
			words: "exuragran",
			want:  []uint8{3, 32, 23},
		},
		{
			name:  "quoted parameter emits unknown marker",
			words: `exura sio "name"`,
			want:  []uint8{3, 32, 33, 6},
		},
		{
			name:  "unknown fragment aborts token only",
			words: "exura zzz vita",
			want:  []uint8{3, 32, 6, 13},
		},
		{
			name:  "case insensitive",
			words: "EXURA Gran",
			want:  []uint8{3, 32, 23},
		},
		{
			name:  "empty input",
			words: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			words: "   \t ",
			want:  nil,
		},
		{
			name:  "longest prefix wins",
			words: "anamort",
			want:  []uint8{7, 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := syllablesFromWords(tt.words)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("syllablesFromWords(%q) = %v, want %v", tt.words, got, tt.want)
			}
		})
	}
}

func TestSyllablesCappedAtNine(t *testing.T) {
	got := syllablesFromWords("ad ad ad ad ad ad ad ad ad ad ad ad")
	if len(got) != maxSyllables {
		t.Fatalf("expected %d syllables, got %d: %v", maxSyllables, len(got), got)
	}
	for i, code := range got {
		if code != 2 {
			t.Fatalf("syllable %d = %d, want 2", i, code)
		}
	}
}

func TestWordTokensQuoting(t *testing.T) {
	tokens := wordTokens(`exura sio "Bob the Brave"`)
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[2].text != "Bob the Brave" || !tokens[2].quoted {
		t.Fatalf("quoted token not preserved: %+v", tokens[2])
	}
}

func TestWordTokensUnterminatedQuote(t *testing.T) {
	tokens := wordTokens(`exiva "half a name`)
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[1].text != "half a name" {
		t.Fatalf("unterminated quote should swallow the rest, got %q", tokens[1].text)
	}
}
