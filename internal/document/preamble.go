package document

import (
	"regexp"
	"strings"
)

// babelAliases lists the babel option names of a language, the preferred one
// first, where they differ from the lowercased English name.
var babelAliases = map[string][]string{
	"de": {"ngerman", "german"},
	"fr": {"french", "francais", "frenchb"},
	"pt": {"portuguese", "portuges", "brazilian"},
	"el": {"greek"},
	"nb": {"norsk"},
}

var (
	babelRe  = regexp.MustCompile(`\\usepackage\[([^\]]*)\]\{babel\}`)
	selectRe = regexp.MustCompile(`\\selectlanguage\{([^}]*)\}`)
)

// BabelName returns the babel option name used for a language code.
func BabelName(code string) string {
	if names, ok := babelAliases[code]; ok {
		return names[0]
	}
	return strings.ToLower(LanguageName(code))
}

func isBabelName(code, name string) bool {
	name = strings.TrimSpace(name)
	if names, ok := babelAliases[code]; ok {
		for _, n := range names {
			if n == name {
				return true
			}
		}
		return false
	}
	return name == BabelName(code)
}

// LocalizePreamble rewrites the babel package options and the
// \selectlanguage arguments naming the source language so that they name the
// target language instead. Other languages are left alone.
func LocalizePreamble(preamble, from, to string) string {
	target := BabelName(to)

	preamble = babelRe.ReplaceAllStringFunc(preamble, func(m string) string {
		opts := babelRe.FindStringSubmatch(m)[1]
		parts := strings.Split(opts, ",")
		for i, p := range parts {
			if isBabelName(from, p) {
				parts[i] = strings.Replace(p, strings.TrimSpace(p), target, 1)
			}
		}
		return `\usepackage[` + strings.Join(parts, ",") + `]{babel}`
	})

	return selectRe.ReplaceAllStringFunc(preamble, func(m string) string {
		if isBabelName(from, selectRe.FindStringSubmatch(m)[1]) {
			return `\selectlanguage{` + target + `}`
		}
		return m
	})
}
