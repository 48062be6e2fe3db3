package database

import "time"

// User represents an end-user account. Passwords are stored exactly as
// received and matched by equality at login.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"type:varchar(100);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Admin represents a property-owner account. Email and aadhaar are unique;
// the index is the authoritative guard, the pre-insert check is a fast path.
type Admin struct {
	ID                     uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name                   string    `json:"name" gorm:"type:varchar(100);not null"`
	Email                  string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash           string    `json:"-" gorm:"not null"`
	Aadhaar                string    `json:"aadhaar" gorm:"type:varchar(12);uniqueIndex;not null"`
	OwnershipPaperFileName string    `json:"ownershipPaperFileName" gorm:"not null"`
	CreatedAt              time.Time `json:"createdAt"`
}

// Tenant represents a tenant lead submission. It carries no credentials and
// no session is ever bound to it.
type Tenant struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	TenantName       string    `json:"tenantName" gorm:"type:varchar(100);not null"`
	Age              int       `json:"age" gorm:"not null"`
	Email            string    `json:"email" gorm:"type:varchar(255);not null"`
	Phone            string    `json:"phone" gorm:"type:varchar(20);not null"`
	NumPeople        int       `json:"numPeople" gorm:"not null"`
	PropertySelected string    `json:"propertySelected" gorm:"not null"`
	ListedAmount     int64     `json:"listedAmount" gorm:"not null"`
	ReadyToPay       int64     `json:"readyToPay" gorm:"not null"`
	LeaseTime        string    `json:"leaseTime" gorm:"not null"`
	Aadhaar          string    `json:"aadhaar" gorm:"type:varchar(12);not null"`
	Photo            string    `json:"photo" gorm:"not null"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Listing represents a property listing in one of the category stores.
type Listing struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Category  string `json:"-" gorm:"type:varchar(50);index;not null"`
	City      string `json:"city"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Rent      int64  `json:"rent"`
	DateAdded string `json:"dateAdded"`
	Area      string `json:"area"`
	Image     string `json:"image"`
}
