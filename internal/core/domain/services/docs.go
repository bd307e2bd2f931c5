// Package services provides domain services that coordinate more than one entity.
//
// The package includes:
//   - RefreshTokenRotator: replaces an active refresh token with a successor and records
//     the successor's hash on the revoked token
package services
