package db

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/termfx/covreport/models"
)

// RecordRun persists one coverage run and prunes history beyond retain.
// retain <= 0 disables pruning.
func RecordRun(gdb *gorm.DB, run *models.Run, retain int) error {
	if err := gdb.Create(run).Error; err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	if retain > 0 {
		if err := pruneRuns(gdb, retain); err != nil {
			return fmt.Errorf("pruning run history: %w", err)
		}
	}
	return nil
}

// RecentRuns returns up to n runs, newest first.
func RecentRuns(gdb *gorm.DB, n int) ([]models.Run, error) {
	var runs []models.Run
	err := gdb.Order("created_at DESC, id DESC").Limit(n).Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}

// PatternsJSON encodes a pattern list for storage. A nil list stores as [].
func PatternsJSON(patterns []string) datatypes.JSON {
	if patterns == nil {
		patterns = []string{}
	}
	raw, err := json.Marshal(patterns)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

func pruneRuns(gdb *gorm.DB, retain int) error {
	var keep []uint
	err := gdb.Model(&models.Run{}).
		Order("created_at DESC, id DESC").
		Limit(retain).
		Pluck("id", &keep).Error
	if err != nil {
		return err
	}
	if len(keep) < retain {
		return nil // nothing old enough to prune
	}
	return gdb.Where("id NOT IN ?", keep).Delete(&models.Run{}).Error
}
