package analysis

// meaningfulVocabulary distinguishes short-but-substantive answers from
// poor-quality ones.
var meaningfulVocabulary = []string{
	"worked", "developed", "implemented", "built", "created", "designed",
	"managed", "led", "challenge", "experience", "project", "team",
	"result", "learned", "improved", "solved", "achieved", "delivered",
	"collaborated", "optimized",
}

// technicalVocabulary terms signal technical depth in an answer.
var technicalVocabulary = []string{
	"api", "database", "framework", "algorithm", "code", "software",
	"system", "architecture", "cloud", "docker", "kubernetes", "testing",
	"deployment", "frontend", "backend", "server", "microservice", "cache",
	"caching", "latency", "pipeline", "dashboard", "python", "java",
	"javascript", "typescript", "react", "sql", "git", "linux", "aws",
	"scaling", "refactor", "debug",
}

// experienceVocabulary terms signal the answer draws on real work history.
var experienceVocabulary = []string{
	"worked", "developed", "built", "managed", "led", "created", "designed",
	"implemented", "delivered", "launched", "maintained", "collaborated",
	"shipped", "my last job", "previous role", "my company", "years of",
	"my team",
}

// problemSolvingVocabulary terms signal problem-solving language.
var problemSolvingVocabulary = []string{
	"solved", "solve", "debug", "fixed", "bug", "challenge", "issue",
	"problem", "troubleshoot", "root cause", "investigated", "resolved",
	"optimized", "improved", "workaround", "bottleneck", "diagnosed",
}

// exampleVocabulary terms signal a specific, concrete example.
var exampleVocabulary = []string{
	"for example", "for instance", "specifically", "in one case",
	"one time", "such as", "in particular", "once i", "when i",
	"e.g",
}

// starVocabulary is used by per-question behavioral feedback to detect
// STAR-method structure.
var starVocabulary = []string{
	"situation", "task", "action", "result", "outcome",
}
