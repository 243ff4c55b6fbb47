package util

import (
	"strings"
	"unicode"
)

func RemoveDuplicateStrings(strings []string, ignoreList []string) []string {
	presentStrings := make(map[string]bool)
	var list []string

	for _, ignoreString := range ignoreList {
		presentStrings[ignoreString] = true
	}

	for _, item := range strings {
		if _, value := presentStrings[item]; !value && item != "" {
			presentStrings[item] = true
			list = append(list, item)
		}
	}
	return list
}

func TrimString(s string, length int) string {
	if len(s) <= length {
		return s
	}

	return s[:length]
}

// SplitList splits a comma separated flag value, dropping blanks & duplicates
func SplitList(s string) []string {
	items := []string{}
	for _, item := range strings.Split(s, ",") {
		items = append(items, strings.TrimSpace(item))
	}

	return RemoveDuplicateStrings(items, []string{})
}

// Slugify turns a title into a lowercase file name friendly string
func Slugify(s string) string {
	var builder strings.Builder

	lastDash := true
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			builder.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			builder.WriteRune('-')
			lastDash = true
		}
	}

	slug := strings.Trim(builder.String(), "-")
	if slug == "" {
		slug = "figure"
	}

	return strings.Trim(TrimString(slug, 80), "-")
}
