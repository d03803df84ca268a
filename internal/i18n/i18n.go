// Package i18n holds the player-facing strings of the game, as gettext
// catalogs embedded in the binary.
package i18n

import (
	"embed"
	"path"
	"slices"
	"strings"

	"github.com/leonelquinteros/gotext"
	"k8s.io/klog/v2"
)

// Message keys.
const (
	Title            = "TITLE"
	InputPlaceholder = "INPUT_PLACEHOLDER"
	StartGame        = "START_GAME"
	PlayAgain        = "PLAY_AGAIN"
	TimeLeft         = "TIME_LEFT" // takes the remaining seconds
	YouWon           = "YOU_WON"
	TimeIsUp         = "TIME_IS_UP"
)

// DefaultLanguage is used when the requested language has no catalog.
const DefaultLanguage = "ru"

//go:embed locales/*.po
var locales embed.FS

// Messages is one language's catalog.
type Messages struct {
	lang string
	po   *gotext.Po
}

// Languages lists the available catalogs, sorted.
func Languages() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return []string{DefaultLanguage}
	}
	var langs []string
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	slices.Sort(langs)
	return langs
}

// Load returns the catalog for lang ("en", "ru", or a locale such as
// "en-US"); unknown languages fall back to DefaultLanguage.
func Load(lang string) *Messages {
	lang = normalize(lang)
	data, err := locales.ReadFile(path.Join("locales", lang+".po"))
	if err != nil {
		if lang != DefaultLanguage {
			klog.V(1).Infof("i18n: no catalog for %q, using %q", lang, DefaultLanguage)
		}
		lang = DefaultLanguage
		data, err = locales.ReadFile(path.Join("locales", lang+".po"))
		if err != nil {
			klog.Errorf("i18n: default catalog missing: %v", err)
		}
	}
	po := gotext.NewPo()
	po.Parse(data)
	return &Messages{lang: lang, po: po}
}

func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	return lang
}

// Language returns the catalog's language code.
func (m *Messages) Language() string { return m.lang }

// Get translates key, formatting vars into it if given. Unknown keys are
// returned unchanged.
func (m *Messages) Get(key string, vars ...any) string {
	return m.po.Get(key, vars...)
}
