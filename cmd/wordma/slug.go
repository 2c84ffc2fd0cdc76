package main

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify turns a site name into a directory name: lowercase ASCII letters,
// digits and single hyphens. Accents are stripped. Other scripts are dropped,
// so the result can be empty.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	result = strings.Join(strings.Fields(result), "-")
	result = slugInvalid.ReplaceAllString(result, "")
	result = slugHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
