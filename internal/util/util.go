// Package util contains small helpers shared by the parlance packages.
package util

import (
	"sort"
	"strings"
	"unicode"
)

// MakeTextList gives a nice list of things based on their display name.
func MakeTextList(items []string, articles bool) string {
	if len(items) < 1 {
		return ""
	}

	withArts := make([]string, len(items))
	for i := range items {
		art := ""
		if articles {
			art = ArticleFor(items[i], false) + " "
		}
		withArts[i] = art + items[i]
	}

	if len(withArts) == 1 {
		return withArts[0]
	}
	if len(withArts) == 2 {
		return withArts[0] + " and " + withArts[1]
	}

	// if its more than two, use an oxford comma
	withArts[len(withArts)-1] = "and " + withArts[len(withArts)-1]
	return strings.Join(withArts, ", ")
}

// ArticleFor returns the indefinite or definite article for the given string,
// capitalized the same way the string is.
func ArticleFor(s string, definite bool) string {
	sRunes := []rune(s)

	if len(sRunes) < 1 {
		return ""
	}

	leadingUpper := unicode.IsUpper(sRunes[0])

	if definite {
		if leadingUpper {
			return "The"
		}
		return "the"
	}

	art := "a"
	if leadingUpper {
		art = "A"
	}

	first := unicode.ToUpper(sRunes[0])
	if first == 'A' || first == 'E' || first == 'I' || first == 'O' || first == 'U' {
		art += "n"
	}

	return art
}

// OrderedKeys returns the keys of m, ordered a particular way. The order is
// guaranteed to be the same on every run.
//
// As of this writing, the order is alphabetical, but this function does not
// guarantee this will always be the case.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))

	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}

// SortBy returns a copy of sl sorted using the given less function.
func SortBy[T any](sl []T, less func(l, r T) bool) []T {
	sorted := make([]T, len(sl))
	copy(sorted, sl)
	sort.Slice(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// EditDistance returns the Levenshtein distance between the two strings; the
// minimum number of single-rune insertions, deletions, and substitutions
// needed to turn s1 into s2.
func EditDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	prev := make([]int, len(r2)+1)
	cur := make([]int, len(r2)+1)

	for j := 0; j <= len(r2); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		cur[0] = i
		for j := 1; j <= len(r2); j++ {
			subCost := 1
			if r1[i-1] == r2[j-1] {
				subCost = 0
			}

			best := prev[j-1] + subCost
			if del := prev[j] + 1; del < best {
				best = del
			}
			if ins := cur[j-1] + 1; ins < best {
				best = ins
			}
			cur[j] = best
		}
		prev, cur = cur, prev
	}

	return prev[len(r2)]
}
