package extract

import (
	"path"
	"regexp"
	"strings"
)

// conceptTable is the closed domain vocabulary. Each pattern matches the
// start of a path segment or filename stem, case-insensitively.
var conceptTable = []struct {
	Name    string
	Pattern *regexp.Regexp
}{
	{"authentication", regexp.MustCompile(`(?i)^(auth|login|logout|oauth|jwt|session|passport|token)`)},
	{"authorization", regexp.MustCompile(`(?i)^(permission|role|rbac|policy|acl|guard)`)},
	{"database", regexp.MustCompile(`(?i)^(db|database|model|schema|repository|entity|orm|prisma)`)},
	{"api", regexp.MustCompile(`(?i)^(api|route|endpoint|handler|controller|resource)`)},
	{"payment", regexp.MustCompile(`(?i)^(payment|billing|stripe|invoice|checkout|subscription)`)},
	{"email", regexp.MustCompile(`(?i)^(email|mail|smtp|notification)`)},
	{"search", regexp.MustCompile(`(?i)^(search|query|filter|index)`)},
	{"cache", regexp.MustCompile(`(?i)^(cache|redis|memo)`)},
	{"queue", regexp.MustCompile(`(?i)^(queue|job|worker|task|cron|scheduler)`)},
	{"configuration", regexp.MustCompile(`(?i)^(config|settings|env)`)},
	{"testing", regexp.MustCompile(`(?i)^(test|spec|mock|fixture)`)},
	{"logging", regexp.MustCompile(`(?i)^(log|logger|audit|trace)`)},
	{"migration", regexp.MustCompile(`(?i)^(migration|migrate|seed)`)},
	{"middleware", regexp.MustCompile(`(?i)^(middleware|interceptor|hook)`)},
	{"validation", regexp.MustCompile(`(?i)^(valid|sanitiz|schema)`)},
	{"upload", regexp.MustCompile(`(?i)^(upload|storage|file|asset|media|s3)`)},
	{"websocket", regexp.MustCompile(`(?i)^(ws|websocket|socket|realtime|sse)`)},
}

// Concepts maps the fixed vocabulary onto file paths. Matching is path-only
// (no file contents), discovery order is the enumerator's order, and each
// concept list is capped to keep the artifact compact. Concepts with zero
// matches are absent from the result.
func Concepts(files []string, limit int) map[string][]string {
	out := make(map[string][]string)
	for _, concept := range conceptTable {
		var hits []string
		for _, file := range files {
			if !matchesPath(concept.Pattern, file) {
				continue
			}
			hits = append(hits, file)
			if len(hits) >= limit {
				break
			}
		}
		if len(hits) > 0 {
			out[concept.Name] = hits
		}
	}
	return out
}

func matchesPath(pattern *regexp.Regexp, file string) bool {
	segments := strings.Split(file, "/")
	for i, segment := range segments {
		if i == len(segments)-1 {
			segment = strings.TrimSuffix(segment, path.Ext(segment))
		}
		if pattern.MatchString(segment) {
			return true
		}
	}
	return false
}
