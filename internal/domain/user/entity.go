package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff account scoped to one store.
type User struct {
	id           uuid.UUID
	storeID      uuid.UUID
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(storeID uuid.UUID, email Email, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		storeID:      storeID,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) StoreID() uuid.UUID    { return u.storeID }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
