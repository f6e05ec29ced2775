package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address's domain resolves (MX first,
// plain A/AAAA as a fallback). A DNS hiccup rejects the address; callers
// use this only at registration time where a retry is cheap.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
