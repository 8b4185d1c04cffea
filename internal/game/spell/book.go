package spell

import (
	"fmt"
	"log/slog"
	"strings"
)

// Book owns every spell definition and resolves spoken phrases and rune
// items back to them. It is built once during startup and read-only after,
// so callers need no locking once the server accepts traffic.
type Book struct {
	spells      map[ID]*Spell
	byWords     map[string]ID
	byRuneType  map[ItemTypeID]ID
	bySyllables map[string]ID

	// debugLookups traces which resolution path matched. Threaded in from
	// config at construction; advisory only.
	debugLookups bool

	// resolvers is the ordered phrase-resolution chain; earlier entries
	// win. New lookup paths slot in here without nesting fallbacks.
	resolvers []resolver
}

type resolver struct {
	name    string
	resolve func(input string) (ID, bool)
}

// Option configures a Book at construction.
type Option func(*Book)

// WithLookupDebug enables the diagnostic trace line on every lookup.
func WithLookupDebug(enabled bool) Option {
	return func(b *Book) { b.debugLookups = enabled }
}

// NewBook creates an empty spellbook.
func NewBook(opts ...Option) *Book {
	b := &Book{
		spells:      make(map[ID]*Spell),
		byWords:     make(map[string]ID),
		byRuneType:  make(map[ItemTypeID]ID),
		bySyllables: make(map[string]ID),
	}
	b.resolvers = []resolver{
		{name: "exact", resolve: b.resolveExactWords},
		{name: "syllables", resolve: b.resolveSyllables},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Insert registers a spell. Every integrity rule is checked before any
// index mutates, so a failed insert leaves the book unchanged: duplicate
// id, duplicate words (case-insensitive), a rune item on a non-rune spell,
// duplicate rune item, and duplicate syllable sequence all fail.
func (b *Book) Insert(s Spell) error {
	if _, exists := b.spells[s.ID]; exists {
		return fmt.Errorf("spell %d already exists", s.ID)
	}
	wordsKey := strings.ToLower(s.Words)
	if existing, exists := b.byWords[wordsKey]; exists {
		return fmt.Errorf("spell words %q already used by %d", s.Words, existing)
	}
	if s.Kind != KindRune && s.RuneTypeID != 0 {
		return fmt.Errorf("non-rune spell %d (%s) cannot define a rune item", s.ID, s.Name)
	}
	if s.RuneTypeID != 0 {
		if existing, exists := b.byRuneType[s.RuneTypeID]; exists {
			return fmt.Errorf("rune item %d already mapped to %d", s.RuneTypeID, existing)
		}
	}
	syllables := syllablesFromWords(s.Words)
	if len(syllables) > 0 {
		if existing, exists := b.bySyllables[syllableKey(syllables)]; exists {
			return fmt.Errorf("spell syllables %v already used by %d", syllables, existing)
		}
	}

	stored := s
	b.spells[s.ID] = &stored
	b.byWords[wordsKey] = s.ID
	if s.RuneTypeID != 0 {
		b.byRuneType[s.RuneTypeID] = s.ID
	}
	if len(syllables) > 0 {
		b.bySyllables[syllableKey(syllables)] = s.ID
	}
	return nil
}

// Get returns a spell by id.
func (b *Book) Get(id ID) (*Spell, bool) {
	s, ok := b.spells[id]
	return s, ok
}

// GetByWords resolves a phrase by case-insensitive exact match only.
func (b *Book) GetByWords(words string) (*Spell, bool) {
	id, ok := b.resolveExactWords(words)
	if !ok {
		return nil, false
	}
	return b.spells[id], true
}

// GetByInput resolves a spoken phrase through the ordered resolver chain:
// exact words first, then the syllable decomposition. This is what lets
// the concatenated "exurasio" cast the same spell as "exura sio".
func (b *Book) GetByInput(words string) (*Spell, bool) {
	for _, r := range b.resolvers {
		if id, ok := r.resolve(words); ok {
			if b.debugLookups {
				slog.Debug("spell lookup", "input", words, "path", r.name, "spell", id)
			}
			return b.spells[id], true
		}
	}
	if b.debugLookups {
		slog.Debug("spell lookup", "input", words, "path", "none")
	}
	return nil, false
}

// GetByRuneItem resolves a rune item type to its spell.
func (b *Book) GetByRuneItem(runeType ItemTypeID) (*Spell, bool) {
	id, ok := b.byRuneType[runeType]
	if b.debugLookups {
		slog.Debug("spell lookup", "rune", runeType, "matched", ok)
	}
	if !ok {
		return nil, false
	}
	return b.spells[id], true
}

// All visits every spell in unspecified order.
func (b *Book) All(visit func(*Spell)) {
	for _, s := range b.spells {
		visit(s)
	}
}

// Len returns the number of registered spells.
func (b *Book) Len() int {
	return len(b.spells)
}

func (b *Book) resolveExactWords(words string) (ID, bool) {
	id, ok := b.byWords[strings.ToLower(words)]
	return id, ok
}

func (b *Book) resolveSyllables(words string) (ID, bool) {
	id, ok := b.bySyllables[syllableKey(syllablesFromWords(words))]
	return id, ok
}

// RegisterBuiltins loads the static catalogue into the book and logs any
// data-quality findings. Catalogue inconsistencies that break indexing
// (duplicate words, bad rune declarations) abort with an error the caller
// should treat as fatal at startup; Validate findings are warnings only.
func RegisterBuiltins(b *Book) error {
	for _, s := range builtinSpells() {
		if err := b.Insert(s); err != nil {
			return fmt.Errorf("registering builtin spells: %w", err)
		}
	}
	for _, finding := range Validate(b) {
		slog.Warn("spell validation", "finding", finding)
	}
	return nil
}

// Validate reports data-quality violations that do not stop the server:
// rune spells without a rune item and spells without words. Other spells
// stay usable, so these are logged, never fatal.
func Validate(b *Book) []string {
	var findings []string
	b.All(func(s *Spell) {
		if s.Kind == KindRune && s.RuneTypeID == 0 {
			findings = append(findings, fmt.Sprintf("rune spell %d (%s) missing rune item id", s.ID, s.Name))
		}
		if strings.TrimSpace(s.Words) == "" {
			findings = append(findings, fmt.Sprintf("spell %d (%s) missing words", s.ID, s.Name))
		}
	})
	return findings
}
