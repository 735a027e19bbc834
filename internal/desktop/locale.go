package desktop

import (
	"strings"

	"golang.org/x/text/language"
)

// LocaleKeys returns the localized-key suffixes to try, most specific first,
// for the current message locale (LC_ALL, LC_MESSAGES, then LANG). For
// "sr_RS.UTF-8@latin" that is sr_RS@latin, sr_RS, sr@latin, sr.
// C, POSIX and unparsable locales yield nil.
func LocaleKeys(getenv func(string) string) []string {
	var raw string
	for _, k := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			raw = v
			break
		}
	}
	return localeKeysFor(raw)
}

func localeKeysFor(raw string) []string {
	if raw == "" || raw == "C" || raw == "POSIX" || strings.HasPrefix(raw, "C.") {
		return nil
	}

	var modifier string
	if i := strings.IndexByte(raw, '@'); i >= 0 {
		raw, modifier = raw[:i], raw[i+1:]
	}
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		raw = raw[:i]
	}

	// Keys use the POSIX codes as written; Parse only validates them since
	// it canonicalizes (tl becomes fil, iw becomes he).
	lang, country, _ := strings.Cut(raw, "_")
	if lang == "" {
		return nil
	}
	if tag, err := language.Parse(lang); err != nil || tag == language.Und {
		return nil
	}
	if country != "" {
		if _, err := language.ParseRegion(country); err != nil {
			country = ""
		}
	}

	var keys []string
	if country != "" && modifier != "" {
		keys = append(keys, lang+"_"+country+"@"+modifier)
	}
	if country != "" {
		keys = append(keys, lang+"_"+country)
	}
	if modifier != "" {
		keys = append(keys, lang+"@"+modifier)
	}
	return append(keys, lang)
}
