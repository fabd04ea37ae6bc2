package i18n

import (
	"embed"
	"fmt"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	domain "github.com/Xausdorf/vietqr-receive/internal/domain/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// Supported languages, the first one is the fallback.
var supported = []language.Tag{language.Vietnamese, language.English}

type Catalog struct {
	matcher      language.Matcher
	translations map[language.Tag]domain.Translations
}

func Load() (*Catalog, error) {
	c := &Catalog{
		matcher:      language.NewMatcher(supported),
		translations: make(map[language.Tag]domain.Translations, len(supported)),
	}

	for _, tag := range supported {
		raw, err := locales.ReadFile("locales/" + tag.String() + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", tag, err)
		}
		var t domain.Translations
		if err := yaml.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", tag, err)
		}
		c.translations[tag] = t
	}

	return c, nil
}

// Lookup picks the best supported language for the given preferences. Each
// preference may be a BCP 47 tag ("en-US") or an Accept-Language header value.
func (c *Catalog) Lookup(prefs ...string) domain.Translations {
	var tags []language.Tag
	for _, p := range prefs {
		if p == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}

	_, idx, _ := c.matcher.Match(tags...)
	return c.translations[supported[idx]]
}
