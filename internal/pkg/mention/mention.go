package mention

import "regexp"

var mentionRe = regexp.MustCompile(`@([A-Za-z0-9_]{1,30})`)

// Extract returns the usernames mentioned in text as @username tokens.
// The result is deduplicated and preserves the order of first
// occurrence. Tokens are not checked against real users here.
func Extract(text string) []string {
	if text == "" {
		return nil
	}

	matches := mentionRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	usernames := make([]string, 0, len(matches))

	for _, m := range matches {
		username := m[1]
		if _, ok := seen[username]; ok {
			continue
		}
		seen[username] = struct{}{}
		usernames = append(usernames, username)
	}

	return usernames
}
