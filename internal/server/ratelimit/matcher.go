package ratelimit

import "strings"

// MatchEndpoint resolves the rate limit configuration for a request path
// and method. Exact path matches win; configs whose path ends in "/"
// match as prefixes (so "/interviews/" covers "/interviews/{id}/answers").
// Returns nil when nothing matches. The health check is always unlimited.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	var prefixMatch *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if prefixMatch == nil && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			prefixMatch = c
		}
	}
	return prefixMatch
}
