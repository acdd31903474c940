package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/airliftops/loadmaster/internal/model"
	"github.com/airliftops/loadmaster/internal/model/convert"
	"github.com/airliftops/loadmaster/pkg/core"
)

// Store implements flight plan persistence on top of an open GORM
// connection. The SQLite and Postgres storage backends share it; they
// differ only in how the connection is established.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open connection. The schema must already be
// migrated.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// SaveFlightLoad upserts the plan. Existing pallet and vehicle rows for
// the flight are replaced wholesale.
func (s *Store) SaveFlightLoad(load core.FlightLoad, result core.ValidationResult) error {
	flight, err := convert.FlightToModel(load, result)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Flight
		err := tx.Where("flight_id = ?", load.ID).First(&existing).Error
		if err == nil {
			if err := tx.Where("flight_ref = ?", existing.ID).Delete(&model.PalletRecord{}).Error; err != nil {
				return err
			}
			if err := tx.Where("flight_ref = ?", existing.ID).Delete(&model.VehicleRecord{}).Error; err != nil {
				return err
			}
			flight.ID = existing.ID
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "flight_id"}},
			UpdateAll: true,
		}).Create(&flight).Error
	})
}

// GetFlightLoad returns the stored plan for the given flight ID.
func (s *Store) GetFlightLoad(id string) (core.FlightLoad, core.ValidationResult, error) {
	var flight model.Flight
	err := s.db.Preload("Pallets").Preload("Vehicles").
		Where("flight_id = ?", id).First(&flight).Error
	if err == gorm.ErrRecordNotFound {
		return core.FlightLoad{}, core.ValidationResult{}, fmt.Errorf("flight %s not found", id)
	}
	if err != nil {
		return core.FlightLoad{}, core.ValidationResult{}, err
	}
	return convert.FlightToCore(flight)
}

// ListFlightIDs returns all stored flight IDs in sorted order.
func (s *Store) ListFlightIDs() ([]string, error) {
	var ids []string
	err := s.db.Model(&model.Flight{}).
		Order("flight_id asc").Pluck("flight_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteFlightLoad removes a stored plan and its cargo rows.
func (s *Store) DeleteFlightLoad(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var flight model.Flight
		err := tx.Where("flight_id = ?", id).First(&flight).Error
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("flight %s not found", id)
		}
		if err != nil {
			return err
		}

		if err := tx.Where("flight_ref = ?", flight.ID).Delete(&model.PalletRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("flight_ref = ?", flight.ID).Delete(&model.VehicleRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&flight).Error
	})
}
