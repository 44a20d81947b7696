// Package utils holds identifier helpers shared by the code generator and the
// CLI.
package utils

import (
	"strings"
	"unicode"
)

// ToPascalCase joins the words of s with each word capitalized:
// "swap_base_input" and "swapBaseInput" both become "SwapBaseInput".
func ToPascalCase(s string) string {
	words := SplitWords(s)
	var result strings.Builder
	for _, word := range words {
		if len(word) > 0 {
			result.WriteString(strings.ToUpper(string(word[0])))
			result.WriteString(strings.ToLower(word[1:]))
		}
	}
	return result.String()
}

func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// ToSnakeCase lowercases the words of s and joins them with underscores.
// Anchor hashes instruction names in this form.
func ToSnakeCase(s string) string {
	words := SplitWords(s)
	for i := range words {
		words[i] = strings.ToLower(words[i])
	}
	return strings.Join(words, "_")
}

// SplitWords breaks s on separators and lower-to-upper case transitions.
// Runs of capitals stay in one word.
func SplitWords(s string) []string {
	var words []string
	var current strings.Builder

	for i, r := range s {
		if r == '_' || r == '-' || r == ' ' {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			continue
		}

		if unicode.IsUpper(r) && i > 0 {
			prev := rune(s[i-1])
			if !unicode.IsUpper(prev) && prev != '_' && prev != '-' && prev != ' ' {
				if current.Len() > 0 {
					words = append(words, current.String())
					current.Reset()
				}
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}
