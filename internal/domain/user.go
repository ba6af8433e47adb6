package domain

import (
	"time"
)

type Role string

const (
	RoleAdmin  Role = "Quản trị"
	RoleDoctor Role = "Bác sĩ"
	RoleNurse  Role = "Điều dưỡng"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	HospitalID   int64     `json:"hospitalID"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
