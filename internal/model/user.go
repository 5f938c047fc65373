package model

import "strconv"

type User struct {
	ID    uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" binding:"max=50"`
	Email string `json:"email" binding:"required,max=100"`
}

func (User) TableName() string { return "users" }
func (User) Kind() string      { return "User" }

func (u *User) GetID() uint64   { return u.ID }
func (u *User) SetID(id uint64) { u.ID = id }

func (User) ConflictMessage() string { return "Email already registered" }

func (u *User) Fields() []Field {
	return []Field{
		{Label: "ID", Value: strconv.FormatUint(u.ID, 10)},
		{Label: "Name", Value: u.Name},
		{Label: "Email", Value: u.Email},
	}
}
