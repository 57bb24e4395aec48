package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is the single account type for both principals. Admin accounts
// carry no username and an empty assignment list; the Role column tells
// the two kinds apart. Email/username uniqueness is enforced per role in
// the controllers, mirroring the separate admin/user stores this schema
// replaced.
type User struct {
	gorm.Model
	Username        string                    `json:"username" gorm:"index"`
	Email           string                    `json:"email" gorm:"index;not null"`
	Password        string                    `json:"-" gorm:"not null"`
	Role            string                    `json:"role" gorm:"default:'user'"` // user, admin
	AssignedCourses datatypes.JSONSlice[uint] `json:"assigned_courses"`
}
