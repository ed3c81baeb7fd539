package extraction

import "strings"

// ExtractSkills collects known technology names from the skills section,
// then supplements them with a whole-document scan against the same
// vocabulary, so skills mentioned only in body text are still found.
// The result is deduplicated case-insensitively with the casing of the
// first occurrence preserved.
func ExtractSkills(lines []string) []string {
	skills := []string{}
	seen := map[string]bool{}

	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		key := strings.ToLower(s)
		if !seen[key] {
			seen[key] = true
			skills = append(skills, s)
		}
	}

	// Pass 1: tokenize skills-section lines on list separators and keep
	// tokens that exactly match the vocabulary.
	for _, line := range sectionContent("skills", lines) {
		for _, token := range splitSkillTokens(line) {
			if isKnownSkill(token) {
				add(token)
			}
		}
	}

	// Pass 2: scan the full document for vocabulary terms not already found.
	// The scan copy is lowered byte for byte so match offsets stay valid
	// in the original document.
	doc := strings.Join(lines, "\n")
	lowerDoc := lowerASCII(doc)
	for _, vocab := range skillVocabulary {
		if seen[vocab] {
			continue
		}
		if idx := indexToken(lowerDoc, vocab); idx >= 0 {
			add(doc[idx : idx+len(vocab)])
		}
	}

	return skills
}

// splitSkillTokens tokenizes a line by the list separators used in skills
// sections: comma, bullet, dash, pipe, and tab.
func splitSkillTokens(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ',', '•', '●', '▪', '◦', '-', '|', '\t', ';', ':':
			return true
		}
		return false
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// isKnownSkill reports whether the token, case-insensitively, is in the
// skill vocabulary.
func isKnownSkill(token string) bool {
	lower := strings.ToLower(strings.TrimSpace(token))
	for _, vocab := range skillVocabulary {
		if lower == vocab {
			return true
		}
	}
	return false
}

// lowerASCII lowercases ASCII letters only. Unlike strings.ToLower it
// never changes byte length, so offsets into the result index the source
// string correctly. The skill vocabulary is all ASCII, so matches are
// unaffected.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// indexToken finds term in lowerDoc at a token boundary: the neighboring
// characters must not be letters or digits. Plain substring matching would
// discover "java" inside "javascript" and "r" nearly everywhere.
func indexToken(lowerDoc, term string) int {
	from := 0
	for {
		idx := strings.Index(lowerDoc[from:], term)
		if idx < 0 {
			return -1
		}
		idx += from
		if boundaryAt(lowerDoc, idx-1) && boundaryAt(lowerDoc, idx+len(term)) {
			return idx
		}
		from = idx + 1
	}
}

// boundaryAt reports whether position i is outside the string or holds a
// non-alphanumeric byte.
func boundaryAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	return !(('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9'))
}
