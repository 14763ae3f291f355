// Package l10n resolves localized UI strings. Lookups take a context because
// remote or lazily loaded catalogs may suspend.
package l10n

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Localizer resolves key to a string, substituting {{name}} placeholders from args.
// fallback is used, with the same substitution, when the key is unknown.
type Localizer interface {
	Get(ctx context.Context, key string, args map[string]any, fallback string) (string, error)
}

var placeholder = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// Format substitutes {{name}} placeholders. Unknown names are left as written.
func Format(text string, args map[string]any) string {
	if len(args) == 0 {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		if v, ok := args[name]; ok {
			return fmt.Sprint(v)
		}
		return m
	})
}

// Null always answers with the formatted fallback
type Null struct{}

func (Null) Get(ctx context.Context, key string, args map[string]any, fallback string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return Format(fallback, args), nil
}

// Catalog is a YAML-backed set of locales. It is read-only once parsed.
type Catalog struct {
	locale  string
	strings map[string]map[string]string
}

// LoadCatalog reads a file of the form
//
//	en-US:
//	  find_not_found: Phrase not found
func LoadCatalog(path, locale string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data, locale)
}

// ParseCatalog parses catalog YAML
func ParseCatalog(data []byte, locale string) (*Catalog, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if raw == nil {
		raw = make(map[string]map[string]string)
	}
	return &Catalog{locale: locale, strings: raw}, nil
}

// Locales lists the locales present in the catalog, sorted
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.strings))
	for l := range c.strings {
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

// Covers reports whether the active locale or its base language has entries
func (c *Catalog) Covers() bool {
	return len(c.strings[c.locale]) > 0 || len(c.strings[baseLanguage(c.locale)]) > 0
}

// Get looks the key up in the active locale, then its base language ("de" for "de-AT")
func (c *Catalog) Get(ctx context.Context, key string, args map[string]any, fallback string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	for _, locale := range []string{c.locale, baseLanguage(c.locale)} {
		if text, ok := c.strings[locale][key]; ok {
			return Format(text, args), nil
		}
	}
	return Format(fallback, args), nil
}

func baseLanguage(locale string) string {
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		return locale[:i]
	}
	return locale
}
