// Package i18n provides translation catalogs for all user-visible text.
// Catalogs are YAML files embedded at build time, keyed by language code.
// Lookup keys are the English source strings; a missing entry falls back to
// the key itself, so English needs no catalog entries of its own.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locale/*.yaml
var localeFS embed.FS

// DefaultLanguage is used when no preference is set or the requested
// language is unknown.
const DefaultLanguage = "en"

// DisplayNames maps language codes to their native display names, used by
// the preferences dialog and CLI help.
var DisplayNames = map[string]string{
	"en":    "English",
	"es":    "Español",
	"de":    "Deutsch",
	"nb_NO": "Norsk Bokmål",
}

// Translator resolves display strings for one language. It is passed
// explicitly to the display layers rather than held as ambient state.
type Translator struct {
	lang    string
	catalog map[string]string
}

// New loads the catalog for the given language code. Unknown codes fall
// back to English so a stale settings file cannot break startup.
func New(lang string) *Translator {
	if !IsSupported(lang) {
		lang = DefaultLanguage
	}
	catalog, err := loadCatalog(lang)
	if err != nil {
		// Embedded catalogs are validated by tests; an unreadable one
		// degrades to key-passthrough rather than failing startup.
		catalog = map[string]string{}
	}
	return &Translator{lang: lang, catalog: catalog}
}

// Language returns the language code this translator resolves to.
func (t *Translator) Language() string {
	return t.lang
}

// T returns the translation for the given source string, or the source
// string itself when no entry exists.
func (t *Translator) T(key string) string {
	if s, ok := t.catalog[key]; ok && s != "" {
		return s
	}
	return key
}

// Tf translates the source string and applies fmt.Sprintf with args.
func (t *Translator) Tf(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}

// Languages returns the supported language codes in sorted order.
func Languages() []string {
	entries, err := localeFS.ReadDir("locale")
	if err != nil {
		return []string{DefaultLanguage}
	}
	codes := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") {
			codes = append(codes, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(codes)
	return codes
}

// IsSupported reports whether a catalog exists for the given code.
func IsSupported(code string) bool {
	for _, c := range Languages() {
		if c == code {
			return true
		}
	}
	return false
}

func loadCatalog(lang string) (map[string]string, error) {
	data, err := localeFS.ReadFile("locale/" + lang + ".yaml")
	if err != nil {
		return nil, err
	}
	catalog := map[string]string{}
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", lang, err)
	}
	return catalog, nil
}
