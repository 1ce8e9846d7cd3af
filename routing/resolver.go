// Package routing classifies free-text messages against the static
// tables in tables.go: greeting detection, the anonymous-user login
// gate, and feature/role resolution to a dashboard navigation path.
package routing

import "strings"

// Classification is the per-request routing result.
type Classification struct {
	Feature       string // matched feature key, "" if none matched
	Link          string // navigation path (dashboard or login page)
	LoginRequired bool
	RoleHint      string // for anonymous users, the role whose login page was suggested
}

// IsGreeting reports whether the trimmed, lowercased message is exactly
// one of the known greeting phrases.
func IsGreeting(message string) bool {
	m := strings.ToLower(strings.TrimSpace(message))
	for _, g := range greetingPhrases {
		if m == g {
			return true
		}
	}
	return false
}

// GreetingReply returns the fixed greeting for a role.
func GreetingReply(role string) string {
	role = strings.ToLower(role)
	if role == "" || role == "guest" {
		return guestGreeting
	}
	if reply, ok := roleGreetings[role]; ok {
		return reply
	}
	return genericGreeting
}

// NeedsLogin reports whether an anonymous request touches a restricted
// topic. Logged-in roles are never gated here; permission scoping within
// a role belongs to the dashboard, not the chatbot.
func NeedsLogin(message, role string) bool {
	role = strings.ToLower(role)
	if role != "" && role != "guest" {
		return false
	}
	m := strings.ToLower(message)
	for _, keyword := range loginKeywords {
		if strings.Contains(m, keyword) {
			return true
		}
	}
	return false
}

// Capabilities returns the capability lines for a role, or the limited
// access fallback for guests and unknown roles.
func Capabilities(role string) []string {
	if ops, ok := roleOperations[strings.ToLower(role)]; ok {
		return ops
	}
	return []string{"Limited access until login"}
}

// Resolve maps a message and role to a navigation link. Anonymous users
// get a login page (role-specific if the message hints at one); logged-in
// users get the path of the first matching feature that has a path for
// their role, falling back to their dashboard.
func Resolve(message, role string) Classification {
	role = strings.ToLower(role)
	m := strings.ToLower(message)

	c := Classification{
		Feature:       matchFeature(m),
		LoginRequired: NeedsLogin(message, role),
	}

	if role == "" || role == "guest" {
		for _, entry := range roleIndicators {
			for _, phrase := range entry.Phrases {
				if strings.Contains(m, phrase) {
					c.RoleHint = entry.Key
					c.Link = loginLink(entry.Key)
					return c
				}
			}
		}
		c.Link = featureLinks["login"]["default"]
		return c
	}

	for _, entry := range featureIndicators {
		for _, phrase := range entry.Phrases {
			if !strings.Contains(m, phrase) {
				continue
			}
			if link, ok := lookupLink(role, entry.Key); ok {
				c.Link = link
				return c
			}
			// Matched feature has no path for this role; keep scanning.
			break
		}
	}

	if link, ok := featureLinks["dashboard"][role]; ok {
		c.Link = link
	} else {
		// Unknown role strings fall through to the generic default.
		c.Link = featureLinks["dashboard"]["default"]
	}
	return c
}

// matchFeature returns the first feature whose trigger phrase is
// contained in the lowercased message.
func matchFeature(lower string) string {
	for _, entry := range featureIndicators {
		for _, phrase := range entry.Phrases {
			if strings.Contains(lower, phrase) {
				return entry.Key
			}
		}
	}
	return ""
}

// lookupLink resolves (role, feature) to a path, checking the role-keyed
// group first and the feature-keyed group ("dashboard", "login") second.
func lookupLink(role, feature string) (string, bool) {
	if paths, ok := featureLinks[role]; ok {
		if link, ok := paths[feature]; ok {
			return link, true
		}
	}
	if roles, ok := featureLinks[feature]; ok {
		if link, ok := roles[role]; ok {
			return link, true
		}
	}
	return "", false
}

func loginLink(role string) string {
	if link, ok := featureLinks["login"][role]; ok {
		return link
	}
	return featureLinks["login"]["default"]
}

// FeatureLabel converts a feature key to its display form
// ("contact_admin" -> "contact admin"), defaulting to "this feature".
func FeatureLabel(feature string) string {
	if feature == "" {
		return "this feature"
	}
	return strings.ReplaceAll(feature, "_", " ")
}
