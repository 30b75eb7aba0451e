// interfaces.go: this code defines the interface for the database operations
package datastore

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/securebank/fraudflow/internal/conf"
	"github.com/securebank/fraudflow/internal/errors"
)

// Interface abstracts the underlying database implementation and defines the
// operations the workflow layer is allowed to perform on fraud cases.
type Interface interface {
	Open() error
	Close() error
	Insert(fraudCase *FraudCase) error
	FindOldestPendingByName(holderName string) (*FraudCase, error)
	GetByID(id uint) (*FraudCase, error)
	UpdateStatus(id uint, newStatus, note string) error
	GetAllCases() ([]FraudCase, error)
	CountCases() (int64, error)
}

// DataStore implements Interface using a GORM database.
type DataStore struct {
	DB *gorm.DB // GORM database instance
}

// New creates a new datastore instance based on the provided configuration.
func New(settings *conf.Settings) Interface {
	switch {
	case settings.Output.SQLite.Enabled:
		return &SQLiteStore{
			Settings: settings,
		}
	case settings.Output.MySQL.Enabled:
		return &MySQLStore{
			Settings: settings,
		}
	default:
		return nil
	}
}

// Insert stores a new fraud case. The store assigns the ID and timestamps and
// defaults the status to pending_review.
func (ds *DataStore) Insert(fraudCase *FraudCase) error {
	if ds.DB == nil {
		return dbError(errors.NewStd("database connection is not initialized"), "insert")
	}

	if fraudCase.Status == "" {
		fraudCase.Status = StatusPendingReview
	}
	if !ValidStatus(fraudCase.Status) {
		return validationError("unknown case status", "status", fraudCase.Status)
	}

	if err := ds.DB.Create(fraudCase).Error; err != nil {
		return dbError(err, "insert", "holder_name", fraudCase.HolderName)
	}
	return nil
}

// FindOldestPendingByName returns the oldest pending_review case for the
// given holder name, matched case-insensitively. Returns a not-found error
// when no pending case exists; callers treat that as an expected outcome.
func (ds *DataStore) FindOldestPendingByName(holderName string) (*FraudCase, error) {
	if ds.DB == nil {
		return nil, dbError(errors.NewStd("database connection is not initialized"), "find_oldest_pending")
	}

	var fraudCase FraudCase
	err := ds.DB.
		Where("LOWER(holder_name) = LOWER(?) AND status = ?", holderName, StatusPendingReview).
		Order("id ASC").
		First(&fraudCase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("pending case", holderName)
		}
		return nil, dbError(err, "find_oldest_pending", "holder_name", holderName)
	}

	return &fraudCase, nil
}

// GetByID returns the full case row including the security answer. For
// internal verification use only, never handed to a presentation layer.
func (ds *DataStore) GetByID(id uint) (*FraudCase, error) {
	if ds.DB == nil {
		return nil, dbError(errors.NewStd("database connection is not initialized"), "get_by_id")
	}

	var fraudCase FraudCase
	if err := ds.DB.First(&fraudCase, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("case", fmt.Sprintf("%d", id))
		}
		return nil, dbError(err, "get_by_id", "case_id", id)
	}

	return &fraudCase, nil
}

// transitionSnapshot mirrors the raw_json payload written on every update.
type transitionSnapshot struct {
	LastUpdated string `json:"last_updated"`
	Note        string `json:"note"`
	Status      string `json:"status"`
}

// UpdateStatus transitions a case out of pending_review in a single atomic
// update. The WHERE clause is conditional on the current status so that
// concurrent resolutions of the same case serialize at the database: the
// loser gets a state error instead of silently overwriting the winner.
func (ds *DataStore) UpdateStatus(id uint, newStatus, note string) error {
	if ds.DB == nil {
		return dbError(errors.NewStd("database connection is not initialized"), "update_status")
	}
	if !IsTerminalStatus(newStatus) {
		return validationError("status transition must target a terminal status", "status", newStatus)
	}

	now := time.Now().UTC()
	snapshot, err := json.Marshal(transitionSnapshot{
		LastUpdated: now.Format(time.RFC3339),
		Note:        note,
		Status:      newStatus,
	})
	if err != nil {
		return dbError(err, "update_status", "case_id", id)
	}

	result := ds.DB.Model(&FraudCase{}).
		Where("id = ? AND status = ?", id, StatusPendingReview).
		Updates(map[string]any{
			"status":       newStatus,
			"outcome_note": note,
			"raw_json":     string(snapshot),
			"updated_at":   now,
		})
	if result.Error != nil {
		return dbError(result.Error, "update_status", "case_id", id)
	}

	if result.RowsAffected == 0 {
		// Nothing matched: either the case does not exist or it is no
		// longer pending. Distinguish the two for the caller.
		var count int64
		if err := ds.DB.Model(&FraudCase{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return dbError(err, "update_status", "case_id", id)
		}
		if count == 0 {
			return notFoundError("case", fmt.Sprintf("%d", id))
		}
		return stateError("case is no longer pending", id, newStatus)
	}

	getLogger().Info("Case status updated",
		"case_id", id,
		"status", newStatus)
	return nil
}

// GetAllCases returns every case row ordered by ID, for operator inspection.
func (ds *DataStore) GetAllCases() ([]FraudCase, error) {
	if ds.DB == nil {
		return nil, dbError(errors.NewStd("database connection is not initialized"), "get_all_cases")
	}

	var cases []FraudCase
	if err := ds.DB.Order("id ASC").Find(&cases).Error; err != nil {
		return nil, dbError(err, "get_all_cases")
	}
	return cases, nil
}

// CountCases returns the total number of case rows.
func (ds *DataStore) CountCases() (int64, error) {
	if ds.DB == nil {
		return 0, dbError(errors.NewStd("database connection is not initialized"), "count_cases")
	}

	var count int64
	if err := ds.DB.Model(&FraudCase{}).Count(&count).Error; err != nil {
		return 0, dbError(err, "count_cases")
	}
	return count, nil
}

// performAutoMigration runs GORM auto-migration for the case table.
func performAutoMigration(db *gorm.DB, debug bool, dbType, connectionInfo string) error {
	if err := db.AutoMigrate(&FraudCase{}); err != nil {
		return fmt.Errorf("failed to auto-migrate %s database: %w", dbType, err)
	}

	if debug {
		getLogger().Debug("Database connection initialized",
			"db_type", dbType,
			"connection", connectionInfo)
	}

	return nil
}
