package teams

import (
	"strings"
	"unicode"
)

// Ref is how a game refers to one of its teams: a display name and a logo.
type Ref struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
}

// Initials returns up to two upper-case initials of the team name.
// Renderers show them when the team has no logo.
func (r Ref) Initials() string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(r.Name) {
		first := []rune(word)[0]
		b.WriteRune(unicode.ToUpper(first))
		n++
		if n == 2 {
			break
		}
	}
	return b.String()
}
