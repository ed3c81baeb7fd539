package extraction

import "strings"

// Section header keyword sets. Matching is substring and case-insensitive.
var (
	skillsHeaders = []string{
		"skills", "technical skills", "technologies", "expertise", "competencies",
	}
	experienceHeaders = []string{
		"experience", "work experience", "employment", "work history",
		"professional experience",
	}
	projectsHeaders = []string{
		"projects", "personal projects", "academic projects", "key projects",
	}
	educationHeaders = []string{
		"education", "academic background", "qualifications",
	}
	certificationsHeaders = []string{
		"certifications", "certificates", "licenses",
	}
	languagesHeaders = []string{
		"languages",
	}
)

// sectionHeaders maps each known section to its header keyword set.
var sectionHeaders = map[string][]string{
	"skills":         skillsHeaders,
	"experience":     experienceHeaders,
	"projects":       projectsHeaders,
	"education":      educationHeaders,
	"certifications": certificationsHeaders,
	"languages":      languagesHeaders,
}

// exitKeywordsFor returns the header keywords of every known section except
// the named one. Hitting any of them while inside a section terminates it.
func exitKeywordsFor(self string) []string {
	own := sectionHeaders[self]
	var out []string
	for name, set := range sectionHeaders {
		if name == self {
			continue
		}
		for _, kw := range set {
			// A foreign keyword that contains (or is contained by) one of our
			// own entry keywords would terminate the section on its own
			// header line, so skip overlapping keywords.
			overlaps := false
			for _, o := range own {
				if strings.Contains(kw, o) || strings.Contains(o, kw) {
					overlaps = true
					break
				}
			}
			if !overlaps {
				out = append(out, kw)
			}
		}
	}
	return out
}

// skillVocabulary is the fixed set of known technology names. Matching is
// case-insensitive and token-bounded; the casing found in the document is
// preserved on first occurrence.
var skillVocabulary = []string{
	// languages
	"python", "java", "javascript", "typescript", "golang", "ruby", "php",
	"swift", "kotlin", "scala", "rust", "c++", "c#", "objective-c", "perl",
	"matlab", "r", "dart", "elixir", "haskell", "lua", "groovy", "bash",
	"powershell", "sql", "html", "css", "sass", "graphql",
	// frameworks and libraries
	"react", "angular", "vue", "svelte", "next.js", "nuxt", "node.js",
	"express", "django", "flask", "fastapi", "spring", "spring boot",
	"rails", "laravel", "symfony", ".net", "asp.net", "flutter",
	"react native", "jquery", "bootstrap", "tailwind", "redux", "numpy",
	"pandas", "scikit-learn", "tensorflow", "pytorch", "keras", "opencv",
	"spark", "hadoop", "kafka", "airflow",
	// databases and caches
	"mysql", "postgresql", "postgres", "mongodb", "redis", "sqlite",
	"oracle", "cassandra", "dynamodb", "elasticsearch", "neo4j", "mariadb",
	"firebase", "supabase", "snowflake", "bigquery", "redshift",
	// cloud and infrastructure
	"aws", "azure", "gcp", "google cloud", "heroku", "vercel", "netlify",
	"docker", "kubernetes", "terraform", "ansible", "jenkins", "circleci",
	"github actions", "gitlab ci", "nginx", "apache", "linux", "unix",
	// tools and practices
	"git", "github", "gitlab", "bitbucket", "jira", "confluence", "figma",
	"postman", "grafana", "prometheus", "selenium", "cypress", "jest",
	"pytest", "junit", "agile", "scrum", "rest", "grpc", "microservices",
	"ci/cd", "tdd", "oauth", "jwt", "websocket", "rabbitmq", "celery",
	"tableau", "power bi", "excel", "salesforce",
}

// jobTitleKeywords mark a line as a likely job title inside the experience
// section.
var jobTitleKeywords = []string{
	"developer", "engineer", "manager", "analyst", "designer", "consultant",
	"architect", "intern", "lead", "administrator", "scientist", "specialist",
	"director", "officer", "coordinator", "supervisor", "technician",
	"programmer", "associate", "head of",
}

// institutionKeywords mark a line as an institution name inside the
// education section.
var institutionKeywords = []string{
	"university", "college", "institute", "school", "academy", "foundation",
}

// degreeKeywords mark a line as a degree inside the education section.
var degreeKeywords = []string{
	"bachelor", "master", "phd", "ph.d", "doctorate", "b.tech", "m.tech",
	"b.e", "m.e", "b.sc", "m.sc", "bsc", "msc", "mba", "bca", "mca",
	"diploma", "associate degree", "b.a", "m.a",
}

// certificationKeywords identify certification-provider lines.
var certificationKeywords = []string{
	"certified", "certificate", "certification", "aws", "azure", "google",
	"coursera", "udemy", "udacity", "cisco", "oracle", "scrum", "pmp",
	"comptia", "linkedin learning", "edx",
}

// languageVocabulary is the fixed set of spoken-language names.
var languageVocabulary = []string{
	"english", "spanish", "french", "german", "hindi", "mandarin", "chinese",
	"japanese", "korean", "arabic", "portuguese", "russian", "italian",
	"dutch", "bengali", "tamil", "telugu", "marathi", "urdu", "punjabi",
	"vietnamese", "turkish", "polish", "swedish",
}

// locationKeywords are tokens that make a short line look like a location.
var locationKeywords = []string{
	"remote", "hybrid", "onsite", "on-site",
}

// bulletPrefixes mark description lines in bulleted resumes.
var bulletPrefixes = []string{"•", "-", "*", "●", "▪", "◦"}

// hasBulletPrefix reports whether the line starts with a bullet marker.
func hasBulletPrefix(line string) bool {
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// stripBullet removes a leading bullet marker and surrounding whitespace.
func stripBullet(line string) string {
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(line, p) {
			return strings.TrimSpace(strings.TrimPrefix(line, p))
		}
	}
	return line
}
