package content

// translation links one localized lesson slug to its canonical (English) slug.
type translation struct {
	lang      string
	localized string
	canonical string
}

// Translations is the static bidirectional-ish lesson slug table. It is built
// once and read-only for the process lifetime.
//
// Entries are ordered: reverse lookups return the first matching entry, so
// resolution is first-definition-wins and deterministic even if two localized
// slugs ever map to the same canonical slug.
type Translations struct {
	entries []translation
}

// NewTranslations builds a table from ordered (lang, localized, canonical)
// entries.
func NewTranslations(entries ...[3]string) *Translations {
	t := &Translations{entries: make([]translation, 0, len(entries))}
	for _, e := range entries {
		t.entries = append(t.entries, translation{lang: e[0], localized: e[1], canonical: e[2]})
	}
	return t
}

// DefaultTranslations returns the lesson slug table for the well-known lessons.
func DefaultTranslations() *Translations {
	return NewTranslations(
		[3]string{"pt", "ola-mundo", "hello-world"},
		[3]string{"pt", "instalacao", "installation"},
		[3]string{"pt", "variaveis", "variables"},
		[3]string{"pt", "tipos-de-dados", "data-types"},
		[3]string{"pt", "cargo", "cargo"},
		[3]string{"es", "hola-mundo", "hello-world"},
		[3]string{"es", "instalacion", "installation"},
		[3]string{"es", "variables", "variables"},
		[3]string{"es", "cargo", "cargo"},
	)
}

// Canonical resolves a localized slug to its canonical slug, regardless of
// language. First matching entry wins.
func (t *Translations) Canonical(localized string) (string, bool) {
	for _, e := range t.entries {
		if e.localized == localized {
			return e.canonical, true
		}
	}
	return "", false
}

// Localized resolves a canonical slug to the localized slug for lang. First
// matching entry wins.
func (t *Translations) Localized(lang, canonical string) (string, bool) {
	for _, e := range t.entries {
		if e.lang == lang && e.canonical == canonical {
			return e.localized, true
		}
	}
	return "", false
}
