// Package currency renders money amounts the way the host locale expects.
package currency

import (
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// FallbackLocale is used when the environment names no usable locale.
var FallbackLocale = language.AmericanEnglish

// localeEnvVars are consulted in POSIX precedence order for monetary formatting.
var localeEnvVars = []string{"LC_ALL", "LC_MONETARY", "LANG"}

// HostLocale returns the locale of the host environment.
// LC_ALL wins over LC_MONETARY, which wins over LANG. The first non-empty
// variable decides; if it is "C", "POSIX" or unparseable, FallbackLocale is returned.
func HostLocale() language.Tag {
	for _, key := range localeEnvVars {
		value := strings.TrimSpace(os.Getenv(key))
		if value == "" {
			continue
		}
		tag, ok := ParseLocale(value)
		if !ok {
			return FallbackLocale
		}
		return tag
	}
	return FallbackLocale
}

// ParseLocale accepts POSIX locale names ("de_DE.UTF-8@euro") as well as
// BCP 47 tags ("de-DE").
func ParseLocale(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	switch value {
	case "", "C", "POSIX":
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}

var (
	defaultOnce      sync.Once
	defaultFormatter *Formatter
)

// Default returns the formatter for HostLocale. The host locale is read once
// per process, the same way the JVM fixes its default locale at startup.
func Default() *Formatter {
	defaultOnce.Do(func() {
		defaultFormatter = NewFormatter(HostLocale())
	})
	return defaultFormatter
}
