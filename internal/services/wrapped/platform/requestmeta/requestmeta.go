// Package requestmeta provides normalized request metadata helpers.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how the request scheme is resolved.
//
// X-Forwarded-Proto is only honored when TrustForwardedProto is set, which
// should be the case only behind a proxy that overwrites the header.
type SchemePolicy struct {
	TrustForwardedProto bool
}

type origin struct {
	scheme string
	host   string
	port   string
}

func (o origin) valid() bool {
	return o.scheme != "" && o.host != "" && o.port != ""
}

// IsHTTPS reports whether a request should be treated as HTTPS.
func IsHTTPS(r *http.Request) bool {
	return IsHTTPSWithPolicy(r, SchemePolicy{})
}

// IsHTTPSWithPolicy reports whether a request should be treated as HTTPS
// under policy.
func IsHTTPSWithPolicy(r *http.Request, policy SchemePolicy) bool {
	return requestScheme(r, policy) == "https"
}

// HasSameOriginProof reports whether Origin or Referer proves the request
// came from a page served by this host.
func HasSameOriginProof(r *http.Request) bool {
	return HasSameOriginProofWithPolicy(r, SchemePolicy{})
}

// HasSameOriginProofWithPolicy is HasSameOriginProof under policy.
func HasSameOriginProofWithPolicy(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	self := requestOrigin(r, policy)
	if self.host == "" {
		return false
	}
	claimed := strings.TrimSpace(r.Header.Get("Origin"))
	if claimed == "" {
		claimed = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if claimed == "" {
		return false
	}
	other, ok := parseOrigin(claimed)
	if !ok {
		return false
	}
	return other.valid() && self.valid() && other == self
}

func parseOrigin(raw string) (origin, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return origin{}, false
	}
	scheme := strings.ToLower(strings.TrimSpace(parsed.Scheme))
	if scheme == "" {
		return origin{}, false
	}
	o := origin{
		scheme: scheme,
		host:   strings.ToLower(strings.TrimSpace(parsed.Hostname())),
		port:   strings.TrimSpace(parsed.Port()),
	}
	if o.port == "" {
		o.port = defaultPort(scheme)
	}
	return o, true
}

func requestOrigin(r *http.Request, policy SchemePolicy) origin {
	scheme := requestScheme(r, policy)
	host, port := splitHost(r.Host)
	if host == "" && r.URL != nil {
		host, port = splitHost(r.URL.Host)
	}
	if port == "" {
		port = defaultPort(scheme)
	}
	return origin{scheme: scheme, host: host, port: port}
}

func requestScheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		switch forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded {
		case "http", "https":
			return forwarded
		}
	}
	if r.URL != nil {
		switch scheme := strings.ToLower(strings.TrimSpace(r.URL.Scheme)); scheme {
		case "http", "https":
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func splitHost(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(strings.TrimSpace(parsed.Hostname())), strings.TrimSpace(parsed.Port())
}
