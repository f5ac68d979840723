package registry

import (
	"regexp"
	"strings"
)

var (
	parenPattern      = regexp.MustCompile(`\([^)]*\)`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes a free-text exercise name into the registry lookup
// key: lowercase, parenthetical qualifiers removed, whitespace collapsed, and
// the vendor "egym" prefix stripped. The function is idempotent.
//
// Parenthetical qualifiers like "(Per Arm)" are stripped, not used as
// disambiguators: two records differing only by such a qualifier must carry
// distinct normalized names to stay distinguishable.
func Normalize(name string) string {
	key := strings.ToLower(name)
	key = parenPattern.ReplaceAllString(key, " ")
	key = whitespacePattern.ReplaceAllString(key, " ")
	key = strings.TrimSpace(key)
	for strings.HasPrefix(key, "egym ") {
		key = strings.TrimPrefix(key, "egym ")
	}
	return key
}
