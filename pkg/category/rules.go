package category

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/hackynews/hackynews/pkg/domain"
)

// Rule maps a lower-cased title to a category. A rule fires if any of its checks match.
type Rule struct {
	Category   domain.Category
	Prefixes   []string // title starts with
	Substrings []string // raw substring anywhere in title
	Words      []string // whole word, bounded by non-alphanumeric characters or title edges
}

// rules are evaluated in order and the first match wins, order is part of the contract
var rules = []Rule{
	{Category: ShowHN, Prefixes: []string{"show hn:", "show hn "}},
	{Category: AskHN, Prefixes: []string{"ask hn:", "ask hn ", "tell hn:", "tell hn "}},
	{Category: JobsCareers, Substrings: []string{"hiring", "job", "career", "salary", "interview", "remote work"}},
	{
		Category: AIML,
		Substrings: []string{"machine learning", "deep learning", "neural net", "llm", "gpt", "openai",
			"chatgpt", "stable diffusion", "artificial intelligence", "language model"},
		Words: []string{"ai"}, // "ai" as a substring hits daily, said, email etc
	},
	{
		Category: Startups,
		Substrings: []string{"startup", "funding", "venture", "acquisition", "series a", "series b",
			"angel investor", "founder"},
		Words: []string{"vc", "ipo"},
	},
	{
		Category: Security,
		Substrings: []string{"security", "privacy", "hack", "vulnerability", "breach", "exploit", "cyber",
			"encryption", "authentication", "infosec"},
	},
	{
		Category: Programming,
		Words: []string{"programming", "code", "coding", "developer", "javascript", "python", "rust", "golang",
			"typescript", "java", "c++", "compiler", "algorithm"},
	},
	{
		Category: DevOps,
		Substrings: []string{"devops", "kubernetes", "docker", "aws", "cloud", "serverless", "microservice",
			"infrastructure", "cicd", "ci/cd"},
	},
	{
		Category: Data,
		Substrings: []string{"database", "sql", "nosql", "data science", "analytics", "big data",
			"data engineering", "etl", "pandas", "jupyter"},
	},
	{
		Category: Hardware,
		Substrings: []string{"chip", "semiconductor", "hardware", "laptop", "raspberry pi", "arduino",
			"microcontroller", "processor", "circuit", "robotics"},
	},
	{
		Category: TechCompanies,
		Substrings: []string{"google", "microsoft", "apple", "amazon", "facebook", "twitter", "x.com",
			"netflix", "tesla", "github"},
		Words: []string{"meta", "uber"},
	},
}

// Rules returns a copy of the ordered rule list
func Rules() []Rule {
	res := make([]Rule, len(rules))
	copy(res, rules)
	return res
}

// Match runs the ordered rules against title. Returns false if no rule matched.
// Title is lower-cased once; the function is pure and safe for concurrent use.
func Match(title string) (domain.Category, bool) {
	lt := strings.ToLower(strings.TrimSpace(title))
	if lt == "" {
		return "", false
	}
	for _, r := range rules {
		if r.matches(lt) {
			return r.Category, true
		}
	}
	return "", false
}

func (r Rule) matches(lt string) bool {
	if lo.ContainsBy(r.Prefixes, func(p string) bool { return strings.HasPrefix(lt, p) }) {
		return true
	}
	if lo.ContainsBy(r.Substrings, func(s string) bool { return strings.Contains(lt, s) }) {
		return true
	}
	return lo.ContainsBy(r.Words, func(w string) bool { return containsWord(lt, w) })
}

// containsWord checks if word occurs in s with no letter or digit directly before or after it,
// so "code" matches "the code." but not "decode" or "codes"
func containsWord(s, word string) bool {
	if word == "" {
		return false
	}
	for start := 0; start <= len(s)-len(word); {
		idx := strings.Index(s[start:], word)
		if idx < 0 {
			return false
		}
		pos := start + idx
		end := pos + len(word)

		before, after := true, true
		if pos > 0 {
			r, _ := utf8.DecodeLastRuneInString(s[:pos])
			before = !isWordRune(r)
		}
		if end < len(s) {
			r, _ := utf8.DecodeRuneInString(s[end:])
			after = !isWordRune(r)
		}
		if before && after {
			return true
		}
		_, size := utf8.DecodeRuneInString(s[pos:])
		start = pos + size
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
