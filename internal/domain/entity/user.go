package entity

import (
	"github.com/google/uuid"
)

// User is the authenticated account holder receiving money.
type User struct {
	id         uuid.UUID
	name       string
	accountNum string
}

func NewUser(id uuid.UUID, name, accountNum string) *User {
	return &User{
		id:         id,
		name:       name,
		accountNum: accountNum,
	}
}

func (u *User) ID() uuid.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) AccountNum() string {
	return u.accountNum
}
