package course

import "gorm.io/gorm"

// Lesson represents video content within a module. ModuleID is immutable
// after creation.
type Lesson struct {
	gorm.Model
	ModuleID uint   `json:"module_id" gorm:"index;not null"`
	Title    string `json:"title"`
	VideoURL string `json:"video_url"`
}
