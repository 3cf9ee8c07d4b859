// Package emailcheck rejects throwaway mailbox providers at signup.
package emailcheck

import (
	"strings"

	emailverifier "github.com/AfterShip/email-verifier"
)

// Checker combines the verifier's maintained disposable-domain list with
// domains the operator blocks on top of it.
type Checker struct {
	verifier *emailverifier.Verifier
	blocked  map[string]struct{}
}

// New builds a checker from the library list plus extra domains.
func New(extra ...string) *Checker {
	c := &Checker{
		verifier: emailverifier.NewVerifier(),
		blocked:  make(map[string]struct{}, len(extra)),
	}
	for _, d := range extra {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			c.blocked[d] = struct{}{}
		}
	}
	return c
}

// IsDisposable reports whether the address belongs to a disposable provider,
// or to an extra blocked domain or any of its subdomains.
func (c *Checker) IsDisposable(email string) bool {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return false
	}
	domain := strings.ToLower(strings.TrimSuffix(email[at+1:], "."))
	if domain == "" {
		return false
	}
	if c.verifier.IsDisposable(domain) {
		return true
	}

	for domain != "" {
		if _, ok := c.blocked[domain]; ok {
			return true
		}
		dot := strings.IndexByte(domain, '.')
		if dot < 0 {
			break
		}
		domain = domain[dot+1:]
	}
	return false
}
