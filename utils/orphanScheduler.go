package utils

import (
	"log"
	"time"

	"lms/database"
	courseModels "lms/models/course"

	"github.com/robfig/cron/v3"
)

// logSweeper logs sweeper events with timestamp
func logSweeper(message string) {
	log.Printf("[ORPHAN-SWEEPER %s] %s", time.Now().Format(time.RFC3339), message)
}

// SweepOrphans deletes modules whose owning course no longer exists and
// lessons whose owning module no longer exists. Course and user deletion
// do not cascade inline, so this job is what eventually reclaims the
// orphaned subtrees.
func SweepOrphans() {
	db := database.Database.Db

	var modules []courseModels.Module
	if err := db.Find(&modules).Error; err != nil {
		logSweeper("Error fetching modules: " + err.Error())
		return
	}

	for _, module := range modules {
		var course courseModels.Course
		if err := db.First(&course, module.CourseID).Error; err == nil {
			continue
		}

		// Owning course is gone; drop the module and its lessons.
		if err := db.Where("module_id = ?", module.ID).Delete(&courseModels.Lesson{}).Error; err != nil {
			logSweeper("Error deleting lessons of orphaned module: " + err.Error())
			continue
		}
		if err := db.Delete(&courseModels.Module{}, module.ID).Error; err != nil {
			logSweeper("Error deleting orphaned module: " + err.Error())
			continue
		}
		logSweeper("Deleted orphaned module " + module.Title)
	}

	var lessons []courseModels.Lesson
	if err := db.Find(&lessons).Error; err != nil {
		logSweeper("Error fetching lessons: " + err.Error())
		return
	}

	for _, lesson := range lessons {
		var module courseModels.Module
		if err := db.First(&module, lesson.ModuleID).Error; err == nil {
			continue
		}
		if err := db.Delete(&courseModels.Lesson{}, lesson.ID).Error; err != nil {
			logSweeper("Error deleting orphaned lesson: " + err.Error())
			continue
		}
		logSweeper("Deleted orphaned lesson " + lesson.Title)
	}
}

// StartOrphanSweeper schedules the hourly orphan sweep.
func StartOrphanSweeper() {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		logSweeper("Starting orphan sweep")
		SweepOrphans()
	})

	c.Start()
	logSweeper("Orphan sweeper scheduled")
}
