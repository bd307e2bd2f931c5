// Package refreshtoken models issued refresh tokens and their lifecycle.
//
// A token is Active while it is not revoked and its expiry is in the future. Revocation is
// a one-time transition; expiry is evaluated at query time against the injected clock.
// On rotation the revoked token records the hash of its successor, forming a chain that
// exposes replay of a stale token.
//
// The raw token value never enters this package; only its hash does.
package refreshtoken
