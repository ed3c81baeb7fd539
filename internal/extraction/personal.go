package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/ai-interviewer/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?[0-9][0-9\s\-().]{7,}[0-9]`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

// ExtractPersonalInfo scans all lines, independent of section boundaries,
// for the first email-shaped token, the first phone-shaped token, the first
// name-like line, and the first location-like line. First match wins in each
// category.
func ExtractPersonalInfo(lines []string) types.PersonalInfo {
	var info types.PersonalInfo
	for _, line := range lines {
		if info.Email == "" {
			if m := emailPattern.FindString(line); m != "" {
				info.Email = m
			}
		}
		if info.Phone == "" {
			if m := findPhone(line); m != "" {
				info.Phone = m
			}
		}
		if info.Name == "" && isNameLine(line) {
			info.Name = line
		}
		if info.Location == "" && isLocationLike(line) {
			info.Location = line
		}
		if info.Name != "" && info.Email != "" && info.Phone != "" && info.Location != "" {
			break
		}
	}
	return info
}

// findPhone returns the first phone-shaped token in the line: digits and
// separators totaling at least 10 digits.
func findPhone(line string) string {
	for _, m := range phonePattern.FindAllString(line, -1) {
		if len(digitPattern.FindAllString(m, -1)) >= 10 {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// isNameLine reports whether the line looks like a candidate name: a short
// line of at most 4 words that is not an email, not a phone number, and does
// not mention "resume" or "cv".
func isNameLine(line string) bool {
	if wordCount(line) > 4 {
		return false
	}
	lower := strings.ToLower(line)
	if strings.Contains(lower, "resume") || strings.Contains(lower, "cv") {
		return false
	}
	if emailPattern.MatchString(line) || findPhone(line) != "" {
		return false
	}
	// A name should be mostly letters.
	letters := 0
	for _, r := range line {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r == ' ' || r == '.' || r == '\'' || r == '-' {
			letters++
		}
	}
	return letters == len(line) && letters > 0
}

// isLocationLike reports whether a short line looks like a location: either
// "City, Region" shaped or containing a work-mode token such as "remote".
func isLocationLike(line string) bool {
	if len(line) > 40 || wordCount(line) > 4 {
		return false
	}
	lower := strings.ToLower(line)
	if containsAny(lower, locationKeywords) {
		return true
	}
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return false
	}
	left, right := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	return isTitleCasedPhrase(left) && (isTitleCasedPhrase(right) || isAllCaps(right))
}

// isTitleCasedPhrase reports whether every word starts with an uppercase
// letter and the rest are lowercase letters.
func isTitleCasedPhrase(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		r := rune(w[0])
		if r < 'A' || r > 'Z' {
			return false
		}
		for _, c := range w[1:] {
			if c < 'a' || c > 'z' {
				return false
			}
		}
	}
	return true
}

// isAllCaps reports whether the string is entirely uppercase letters
// (spaces allowed).
func isAllCaps(s string) bool {
	seen := false
	for _, r := range s {
		if r == ' ' || r == '.' {
			continue
		}
		if r < 'A' || r > 'Z' {
			return false
		}
		seen = true
	}
	return seen
}
