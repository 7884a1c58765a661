// Package coverart resolves album cover URLs by querying a prioritized
// chain of external lookup providers. Each provider is an interchangeable
// implementation of the Provider interface; the resolver tries them in
// order and stops at the first hit.
package coverart
