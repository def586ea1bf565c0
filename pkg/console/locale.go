package console

import (
	"fmt"
	"strings"
	"sync"

	"codeberg.org/tslocum/gotext"
	"golang.org/x/text/language"
)

//go:generate xgotext -no-locations -default bgengine -in . -out locales

const domainPrefix = "bgengine-"

const englishIdentifier = "en"

var (
	localesOnce   sync.Once
	localesErr    error
	languageTags  []language.Tag
	languageNames []string
)

func init() {
	gotext.SetDomain(domainPrefix + englishIdentifier)
}

// loadLocales registers every embedded translation with gotext.
func loadLocales() error {
	localesOnce.Do(func() {
		entries, err := assetFS.ReadDir("locales")
		if err != nil {
			localesErr = fmt.Errorf("failed to list files in locales directory: %w", err)
			return
		}

		availableTags := []language.Tag{
			language.MustParse("en_US"),
		}
		availableNames := []string{
			englishIdentifier,
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			b, err := assetFS.ReadFile(fmt.Sprintf("locales/%s/%s.po", entry.Name(), entry.Name()))
			if err != nil {
				localesErr = fmt.Errorf("failed to read locale %s: %w", entry.Name(), err)
				return
			}
			availableTags = append(availableTags, language.MustParse(entry.Name()))
			availableNames = append(availableNames, entry.Name())

			po := gotext.NewPo()
			po.Parse(b)
			gotext.GetStorage().AddTranslator(domainPrefix+entry.Name(), po)
		}
		languageTags = availableTags
		languageNames = availableNames
	})
	return localesErr
}

// matchLanguage returns the name of the embedded locale closest to identifier.
func matchLanguage(identifier string) string {
	if identifier == "" || loadLocales() != nil {
		return englishIdentifier
	}

	tag, err := language.Parse(identifier)
	if err != nil {
		return englishIdentifier
	}

	useLanguage, index, _ := language.NewMatcher(languageTags).Match(tag)
	useLanguageCode := useLanguage.String()
	if index < 0 || useLanguageCode == "" || strings.HasPrefix(useLanguageCode, "en") {
		return englishIdentifier
	}
	return languageNames[index]
}

// Languages returns the identifiers of every available translation.
func Languages() []string {
	if err := loadLocales(); err != nil {
		return []string{englishIdentifier}
	}
	return append([]string(nil), languageNames...)
}
