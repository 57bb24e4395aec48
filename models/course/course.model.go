package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ThumbnailSentinel marks a course that has no real image uploaded yet.
const ThumbnailSentinel = "Dummy"

// Course represents a learning course. ModuleIDs is the parent side of
// the course/module relation; every entry must reference a Module whose
// CourseID points back here. Both sides are written in one transaction.
type Course struct {
	gorm.Model
	Title        string                    `json:"title"`
	Description  string                    `json:"description"`
	ThumbnailID  string                    `json:"thumbnail_public_id" gorm:"default:'Dummy'"`
	ThumbnailURL string                    `json:"thumbnail_secure_url" gorm:"default:'Dummy'"`
	ModuleIDs    datatypes.JSONSlice[uint] `json:"modules"`
	CreatedBy    string                    `json:"created_by"`
}
