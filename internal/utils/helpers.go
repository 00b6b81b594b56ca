package utils

import (
	"net/url"
	"sort"
	"strings"
)

// Uniq returns the distinct non-empty values of list in first-seen order
func Uniq(list []string) []string {
	seen := make(map[string]bool, len(list))
	var out []string
	for _, v := range list {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// SortedUniq returns the distinct non-empty values of list, sorted lexicographically
func SortedUniq(list []string) []string {
	out := Uniq(list)
	sort.Strings(out)
	return out
}

// TruncateString truncates a string to the specified number of runes and adds "..." if necessary
func TruncateString(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	if length <= 3 {
		return string(r[:length])
	}
	return string(r[:length-3]) + "..."
}

// IsRemoteSource checks if a data source points at an http(s) URL rather than a local file
func IsRemoteSource(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}
