package model

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"users,alias:us"`

	UserID       int        `bun:",pk,autoincrement" json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `bun:"password_hash" json:"-"`
	CurrentMapID int        `json:"currentMapId"`
	Money        int        `json:"money"`
	LastLogin    *time.Time `json:"lastLogin"`
}
