package declaration

import (
	"strings"

	"github.com/miekg/dns"
)

// validDomain reports whether s is a usable zone name. IsDomainName is
// permissive (it accepts single labels and underscores), so require at
// least two labels and reject characters outside the LDH set.
func validDomain(s string) bool {
	if _, ok := dns.IsDomainName(dns.Fqdn(s)); !ok {
		return false
	}
	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" || len(label) > 63 {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, c := range label {
			switch {
			case c >= 'a' && c <= 'z':
			case c >= '0' && c <= '9':
			case c == '-':
			default:
				return false
			}
		}
	}
	return true
}
