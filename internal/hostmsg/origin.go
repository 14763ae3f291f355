package hostmsg

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gobwas/glob"
)

// OriginPolicy decides which inbound origins are trusted.
// The own origin is always trusted; everything else must match an allow-list pattern.
type OriginPolicy struct {
	own     string
	allowed []glob.Glob
}

// NewOriginPolicy compiles the allow-list. Patterns use glob syntax, e.g. "https://*.example.com".
func NewOriginPolicy(own string, allowed []string) (*OriginPolicy, error) {
	p := &OriginPolicy{own: normalizeOrigin(own)}
	for _, pattern := range allowed {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile origin pattern %q: %w", pattern, err)
		}
		p.allowed = append(p.allowed, g)
	}
	return p, nil
}

// Allow reports whether a message from origin may be delivered
func (p *OriginPolicy) Allow(origin string) bool {
	origin = normalizeOrigin(origin)
	if origin == "" {
		return false
	}
	if p.own != "" && origin == p.own {
		return true
	}
	for _, g := range p.allowed {
		if g.Match(origin) {
			return true
		}
	}
	return false
}

func normalizeOrigin(origin string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(origin)), "/")
}

// OriginOf returns scheme://host for a URL
func OriginOf(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("url %q has no origin", rawURL)
	}
	return normalizeOrigin(u.Scheme + "://" + u.Host), nil
}
