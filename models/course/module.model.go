package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Module represents a section within a course. CourseID is immutable
// after creation; LessonIDs mirrors the lessons' ModuleID back-references.
type Module struct {
	gorm.Model
	CourseID  uint                      `json:"course_id" gorm:"index;not null"`
	Title     string                    `json:"title"`
	Content   string                    `json:"content"`
	LessonIDs datatypes.JSONSlice[uint] `json:"lessons"`
}
