package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apna-adda/adda/internal/common/cnst"
	"github.com/apna-adda/adda/internal/common/config"
	"github.com/apna-adda/adda/internal/common/errorx"
)

func newTestDB(t *testing.T) Database {
	t.Helper()
	cfg := &config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"}
	db, err := NewSQLite(cfg)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestStore_UserCredentialLookup(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.CreateUser(ctx, &User{Username: "ravi", Email: "ravi@example.com", Password: "secret"}))

	user, err := db.FindUserByCredentials(ctx, "ravi@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ravi", user.Username)

	// Both fields must match exactly.
	_, err = db.FindUserByCredentials(ctx, "ravi@example.com", "wrong")
	assert.ErrorIs(t, err, errorx.ErrNotFound)
	_, err = db.FindUserByCredentials(ctx, "other@example.com", "secret")
	assert.ErrorIs(t, err, errorx.ErrNotFound)
}

func TestStore_DuplicateUsersAllowed(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// End-user registration performs no duplicate check.
	assert.NoError(t, db.CreateUser(ctx, &User{Username: "a", Email: "same@example.com", Password: "x"}))
	assert.NoError(t, db.CreateUser(ctx, &User{Username: "b", Email: "same@example.com", Password: "y"}))
}

func TestStore_AdminUniqueness(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	a1 := &Admin{Name: "A", Email: "a@x.com", PasswordHash: "h", Aadhaar: "123456789012", OwnershipPaperFileName: "p1"}
	require.NoError(t, db.CreateAdmin(ctx, a1))

	// Same email, distinct aadhaar.
	err := db.CreateAdmin(ctx, &Admin{Name: "B", Email: "a@x.com", PasswordHash: "h", Aadhaar: "222222222222", OwnershipPaperFileName: "p2"})
	assert.ErrorIs(t, err, errorx.ErrAdminExists)

	// Same aadhaar, distinct email.
	err = db.CreateAdmin(ctx, &Admin{Name: "C", Email: "c@x.com", PasswordHash: "h", Aadhaar: "123456789012", OwnershipPaperFileName: "p3"})
	assert.ErrorIs(t, err, errorx.ErrAdminExists)

	// Distinct pair succeeds and both are retrievable.
	require.NoError(t, db.CreateAdmin(ctx, &Admin{Name: "D", Email: "d@x.com", PasswordHash: "h", Aadhaar: "333333333333", OwnershipPaperFileName: "p4"}))

	got, err := db.GetAdminByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
	got, err = db.GetAdminByEmail(ctx, "d@x.com")
	require.NoError(t, err)
	assert.Equal(t, "D", got.Name)
}

func TestStore_AdminAadhaarValidation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for _, aadhaar := range []string{"", "12345", "1234567890123", "12345678901a"} {
		err := db.CreateAdmin(ctx, &Admin{Name: "A", Email: "a@x.com", PasswordHash: "h", Aadhaar: aadhaar, OwnershipPaperFileName: "p"})
		assert.ErrorIs(t, err, errorx.ErrInvalidAadhaar)
	}

	// Nothing was persisted.
	_, err := db.GetAdminByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, errorx.ErrNotFound)
}

func TestStore_AdminNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetAdminByEmail(context.Background(), "missing@x.com")
	assert.ErrorIs(t, err, errorx.ErrNotFound)
}

func TestStore_Tenant(t *testing.T) {
	db := newTestDB(t)

	tenant := &Tenant{
		TenantName:       "Sunil",
		Age:              34,
		Email:            "sunil@example.com",
		Phone:            "9876543210",
		NumPeople:        4,
		PropertySelected: "Green View Apartments",
		ListedAmount:     15000,
		ReadyToPay:       14000,
		LeaseTime:        "11 months",
		Aadhaar:          "234567890123",
		Photo:            "photo-1.jpg",
	}
	require.NoError(t, db.CreateTenant(context.Background(), tenant))
	assert.NotZero(t, tenant.ID)
}

func TestStore_ListingsPerCategory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	count, err := db.CountListings(ctx, cnst.CategoryAuthorityPlots)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, db.CreateListings(ctx, cnst.CategoryAuthorityPlots, []*Listing{
		{City: "Noida", Title: "Plot 12", Rent: 12000},
		{City: "Noida", Title: "Plot 14", Rent: 15000},
	}))
	require.NoError(t, db.CreateListings(ctx, cnst.CategoryFlatsApartments, []*Listing{
		{City: "Delhi", Title: "2BHK", Rent: 9000},
	}))

	count, err = db.CountListings(ctx, cnst.CategoryAuthorityPlots)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	// Categories are isolated from one another.
	plots, err := db.GetListings(ctx, cnst.CategoryAuthorityPlots)
	require.NoError(t, err)
	require.Len(t, plots, 2)
	assert.Equal(t, "Plot 12", plots[0].Title)

	flats, err := db.GetListings(ctx, cnst.CategoryFlatsApartments)
	require.NoError(t, err)
	require.Len(t, flats, 1)

	// Bulk-inserting nothing is a no-op.
	assert.NoError(t, db.CreateListings(ctx, cnst.CategoryListings, nil))
}
