package utils_test

import (
	"testing"

	"lms/database"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

func TestSweepOrphansRemovesDanglingSubtrees(t *testing.T) {
	db := setupDb(t)

	course := courseModels.Course{Title: "Kept course", Description: "stays"}
	require.NoError(t, db.Create(&course).Error)

	keptModule := courseModels.Module{CourseID: course.ID, Title: "Kept module"}
	require.NoError(t, db.Create(&keptModule).Error)

	keptLesson := courseModels.Lesson{ModuleID: keptModule.ID, Title: "Kept lesson"}
	require.NoError(t, db.Create(&keptLesson).Error)

	// A module pointing at a course that no longer exists, with a lesson
	// hanging off it.
	orphanModule := courseModels.Module{CourseID: 9999, Title: "Orphan module"}
	require.NoError(t, db.Create(&orphanModule).Error)

	orphanLesson := courseModels.Lesson{ModuleID: orphanModule.ID, Title: "Orphan lesson"}
	require.NoError(t, db.Create(&orphanLesson).Error)

	// A lesson whose module is gone entirely.
	strayLesson := courseModels.Lesson{ModuleID: 8888, Title: "Stray lesson"}
	require.NoError(t, db.Create(&strayLesson).Error)

	utils.SweepOrphans()

	var modules []courseModels.Module
	require.NoError(t, db.Find(&modules).Error)
	require.Len(t, modules, 1)
	assert.Equal(t, "Kept module", modules[0].Title)

	var lessons []courseModels.Lesson
	require.NoError(t, db.Find(&lessons).Error)
	require.Len(t, lessons, 1)
	assert.Equal(t, "Kept lesson", lessons[0].Title)
}

func TestSweepOrphansIsIdempotent(t *testing.T) {
	db := setupDb(t)

	orphan := courseModels.Module{CourseID: 9999, Title: "Orphan module"}
	require.NoError(t, db.Create(&orphan).Error)

	utils.SweepOrphans()
	utils.SweepOrphans()

	var count int64
	require.NoError(t, db.Model(&courseModels.Module{}).Count(&count).Error)
	assert.Zero(t, count)
}
