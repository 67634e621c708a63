package switcher

import (
	"regexp"
	"strings"
)

// pathMatcher matches request paths against exclusion patterns where "*"
// stands for any run of characters, "/" included. Leading slashes are
// ignored on both sides, so "api/*" and "/api/*" are equivalent.
type pathMatcher struct {
	patterns []*regexp.Regexp
}

func newPathMatcher(patterns []string) *pathMatcher {
	m := &pathMatcher{}
	for _, p := range patterns {
		p = strings.TrimLeft(strings.TrimSpace(p), "/")
		if p == "" {
			p = "/"
		}
		quoted := regexp.QuoteMeta(p)
		m.patterns = append(m.patterns, regexp.MustCompile("^"+strings.ReplaceAll(quoted, `\*`, ".*")+"$"))
	}
	return m
}

func (m *pathMatcher) match(path string) bool {
	if len(m.patterns) == 0 {
		return false
	}
	path = strings.TrimLeft(path, "/")
	if path == "" {
		path = "/"
	}
	for _, re := range m.patterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
