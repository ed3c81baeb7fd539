package extraction

import "strings"

// minCertificationLength filters out stray fragments inside the
// certifications section.
const minCertificationLength = 8

// ExtractCertifications collects certification lines: sufficiently long
// lines that either carry a bullet marker (stripped in the result) or
// mention a known certification provider.
func ExtractCertifications(lines []string) []string {
	certs := []string{}
	seen := map[string]bool{}
	for _, line := range sectionContent("certifications", lines) {
		if len(line) < minCertificationLength {
			continue
		}
		if !hasBulletPrefix(line) && !containsAny(strings.ToLower(line), certificationKeywords) {
			continue
		}
		cert := stripBullet(line)
		key := strings.ToLower(cert)
		if cert != "" && !seen[key] {
			seen[key] = true
			certs = append(certs, cert)
		}
	}
	return certs
}

// ExtractLanguages collects every line of the languages section that
// mentions a known spoken language.
func ExtractLanguages(lines []string) []string {
	langs := []string{}
	seen := map[string]bool{}
	for _, line := range sectionContent("languages", lines) {
		stripped := stripBullet(line)
		if !containsAny(strings.ToLower(stripped), languageVocabulary) {
			continue
		}
		key := strings.ToLower(stripped)
		if !seen[key] {
			seen[key] = true
			langs = append(langs, stripped)
		}
	}
	return langs
}
