package database

import (
	"context"

	"github.com/apna-adda/adda/internal/common/cnst"
)

// Database defines the methods for credential and listing persistence.
type Database interface {
	// Close closes the database connection.
	Close() error

	// CreateUser persists a new end user. No uniqueness is enforced.
	CreateUser(ctx context.Context, user *User) error

	// FindUserByCredentials looks up an end user by exact match on email and
	// password. Returns errorx.ErrNotFound when no row matches.
	FindUserByCredentials(ctx context.Context, email, password string) (*User, error)

	// CreateAdmin persists a new admin. Returns errorx.ErrInvalidAadhaar when
	// the aadhaar is not exactly 12 digits and errorx.ErrAdminExists when an
	// existing admin shares the email or aadhaar.
	CreateAdmin(ctx context.Context, admin *Admin) error

	// GetAdminByEmail returns the admin with the given email, or
	// errorx.ErrNotFound.
	GetAdminByEmail(ctx context.Context, email string) (*Admin, error)

	// CreateTenant persists a tenant lead record.
	CreateTenant(ctx context.Context, tenant *Tenant) error

	// CountListings reports how many listings a category store holds.
	CountListings(ctx context.Context, category cnst.ListingCategory) (int64, error)

	// CreateListings bulk-inserts listings into a category store.
	CreateListings(ctx context.Context, category cnst.ListingCategory, listings []*Listing) error

	// GetListings returns all listings of a category store.
	GetListings(ctx context.Context, category cnst.ListingCategory) ([]*Listing, error)
}
