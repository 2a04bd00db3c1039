// Package services defines service interfaces of the auth subsystem.
package services

import "context"

// PasswordService defines password hashing operations. Verify reports a
// mismatch as (false, nil); only a structurally invalid hash is an error.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)

	Verify(ctx context.Context, password, hash string) (bool, error)
}
