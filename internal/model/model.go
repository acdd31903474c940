package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&Flight{},
	&PalletRecord{},
	&VehicleRecord{},
}

// Flight is the persisted form of a planned flight load. Derived
// weight/CoB and the validation outcome are stored alongside the cargo
// rows so reports can be produced without re-running the solver.
type Flight struct {
	gorm.Model
	FlightID     string         `json:"flightId" gorm:"size:64;uniqueIndex"`
	AircraftType string         `json:"aircraftType" gorm:"size:16"`
	Passengers   int            `json:"passengers"`
	TotalWeight  float64        `json:"totalWeight"`
	CoBPercent   float64        `json:"cobPercent"`
	Valid        bool           `json:"valid"`
	Issues       datatypes.JSON `json:"issues"`
	IsModified   bool           `json:"isModified"`

	Pallets  []PalletRecord  `json:"pallets" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:FlightRef"`
	Vehicles []VehicleRecord `json:"vehicles" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:FlightRef"`
}

func (*Flight) TableName() string {
	return "flights"
}

// PalletRecord is one seated pallet. Contents are stored as a JSON
// document; the engine never queries into them.
type PalletRecord struct {
	gorm.Model
	FlightRef uint   `json:"-" gorm:"index:idx_pallet_flight_ref"`
	PalletID  string `json:"palletId" gorm:"size:64"`

	GrossWeight float64        `json:"grossWeight"`
	NetWeight   float64        `json:"netWeight"`
	Height      float64        `json:"height"`
	Hazmat      bool           `json:"hazmat"`
	Contents    datatypes.JSON `json:"contents"`

	StationIndex      int     `json:"stationIndex"`
	LongitudinalCoord float64 `json:"longitudinalCoord"`
	IsRamp            bool    `json:"isRamp"`
}

func (*PalletRecord) TableName() string {
	return "pallets"
}

// VehicleRecord is one piece of rolling stock on the cargo floor.
type VehicleRecord struct {
	gorm.Model
	FlightRef uint   `json:"-" gorm:"index:idx_vehicle_flight_ref"`
	VehicleID string `json:"vehicleId" gorm:"size:64"`

	Weight          float64 `json:"weight"`
	Length          float64 `json:"length"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	FrontAxleWeight float64 `json:"frontAxleWeight"`
	RearAxleWeight  float64 `json:"rearAxleWeight"`

	LongitudinalPosition float64 `json:"longitudinalPosition"`
	LateralPosition      float64 `json:"lateralPosition"`
}

func (*VehicleRecord) TableName() string {
	return "vehicles"
}
