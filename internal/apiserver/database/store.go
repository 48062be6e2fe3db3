package database

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"github.com/apna-adda/adda/internal/common/cnst"
	"github.com/apna-adda/adda/internal/common/errorx"
)

var aadhaarRe = regexp.MustCompile(`^\d{12}$`)

// store implements Database on top of a gorm connection. The driver-specific
// constructors only differ in how the connection is opened.
type store struct {
	db *gorm.DB
}

func newStore(gormDB *gorm.DB) (*store, error) {
	if err := gormDB.AutoMigrate(&User{}, &Admin{}, &Tenant{}, &Listing{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &store{db: gormDB}, nil
}

// Close closes the database connection.
func (s *store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *store) CreateUser(ctx context.Context, user *User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *store) FindUserByCredentials(ctx context.Context, email, password string) (*User, error) {
	var user User
	err := s.db.WithContext(ctx).
		Where("email = ? AND password = ?", email, password).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *store) CreateAdmin(ctx context.Context, admin *Admin) error {
	if !aadhaarRe.MatchString(admin.Aadhaar) {
		return errorx.ErrInvalidAadhaar
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Fast-path duplicate check. The unique indexes on email and aadhaar
		// remain the authoritative guard against concurrent registrations.
		var count int64
		if err := tx.Model(&Admin{}).
			Where("email = ? OR aadhaar = ?", admin.Email, admin.Aadhaar).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errorx.ErrAdminExists
		}
		return tx.Create(admin).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorx.ErrAdminExists
		}
		return err
	}
	return nil
}

func (s *store) GetAdminByEmail(ctx context.Context, email string) (*Admin, error) {
	var admin Admin
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (s *store) CreateTenant(ctx context.Context, tenant *Tenant) error {
	return s.db.WithContext(ctx).Create(tenant).Error
}

func (s *store) CountListings(ctx context.Context, category cnst.ListingCategory) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&Listing{}).
		Where("category = ?", string(category)).
		Count(&count).Error
	return count, err
}

func (s *store) CreateListings(ctx context.Context, category cnst.ListingCategory, listings []*Listing) error {
	if len(listings) == 0 {
		return nil
	}
	for _, l := range listings {
		l.Category = string(category)
	}
	return s.db.WithContext(ctx).Create(&listings).Error
}

func (s *store) GetListings(ctx context.Context, category cnst.ListingCategory) ([]*Listing, error) {
	var listings []*Listing
	err := s.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Order("id asc").
		Find(&listings).Error
	return listings, err
}
