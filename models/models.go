package models

import (
	"time"

	"gorm.io/datatypes"
)

// Run records one invocation of the coverage report generator.
type Run struct {
	ID uint `gorm:"primaryKey;autoIncrement"`

	// Invocation configuration
	ReportGlob string `gorm:"type:varchar(512);not null"`
	ReportType string `gorm:"type:varchar(50);not null"`
	OutputDir  string `gorm:"type:varchar(512);not null"`

	// Filter expression handed to the generator, plus the raw pattern
	// lists it was built from
	Filters    string         `gorm:"type:text"`
	Inclusions datatypes.JSON `gorm:"type:jsonb"`
	Exclusions datatypes.JSON `gorm:"type:jsonb"`

	// Outcome
	MatchedFiles int   `gorm:"default:0"`
	ExitCode     int   `gorm:"not null"`
	DurationMS   int64 `gorm:"default:0"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}
