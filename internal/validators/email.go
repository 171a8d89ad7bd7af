package validators

import (
	"net"
	"strings"
)

// LookupHost is swapped in tests to avoid DNS.
var LookupHost = func(host string) bool {
	if mx, err := net.LookupMX(host); err == nil && len(mx) > 0 {
		return true
	}
	if ips, err := net.LookupIP(host); err == nil && len(ips) > 0 {
		return true
	}
	return false
}

// IsEmailDomainValid reports whether the part after @ resolves to a mail
// exchanger or an address.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return LookupHost(email[at+1:])
}
