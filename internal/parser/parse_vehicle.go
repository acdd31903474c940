package parser

import (
	"fmt"
	"strings"

	"github.com/airliftops/loadmaster/internal/util"
	"github.com/airliftops/loadmaster/pkg/core"
)

// ParseVehicleRow parses the fields of a VEHICLE row (the kind field
// already stripped):
//
//	0: vehicle ID
//	1: weight (lbs)
//	2: length (inches)
//	3: width (inches)
//	4: height (inches)
//	5: front axle weight (lbs, optional)
//	6: rear axle weight (lbs, optional)
//
// Floor position is left zero; the planner seats rolling stock when the
// flight is built.
func (p *Parser) ParseVehicleRow(fields []string) (core.Vehicle, error) {
	if len(fields) < 5 {
		return core.Vehicle{}, fmt.Errorf("vehicle row has %d fields, need at least 5", len(fields))
	}

	id := strings.TrimSpace(fields[0])
	if id == "" {
		return core.Vehicle{}, fmt.Errorf("vehicle row missing ID")
	}

	weight, err := util.ParseWeight(fields[1])
	if err != nil {
		return core.Vehicle{}, fmt.Errorf("vehicle %s weight: %w", id, err)
	}
	length, err := util.ParseDimension(fields[2])
	if err != nil {
		return core.Vehicle{}, fmt.Errorf("vehicle %s length: %w", id, err)
	}
	width, err := util.ParseDimension(fields[3])
	if err != nil {
		return core.Vehicle{}, fmt.Errorf("vehicle %s width: %w", id, err)
	}
	height, err := util.ParseDimension(fields[4])
	if err != nil {
		return core.Vehicle{}, fmt.Errorf("vehicle %s height: %w", id, err)
	}

	vehicle := core.Vehicle{
		ID:     id,
		Weight: weight,
		Length: length,
		Width:  width,
		Height: height,
	}

	if len(fields) > 5 && strings.TrimSpace(fields[5]) != "" {
		vehicle.FrontAxleWeight, err = util.ParseWeight(fields[5])
		if err != nil {
			return core.Vehicle{}, fmt.Errorf("vehicle %s front axle: %w", id, err)
		}
	}
	if len(fields) > 6 && strings.TrimSpace(fields[6]) != "" {
		vehicle.RearAxleWeight, err = util.ParseWeight(fields[6])
		if err != nil {
			return core.Vehicle{}, fmt.Errorf("vehicle %s rear axle: %w", id, err)
		}
	}

	return vehicle, nil
}

// ParsePaxRow parses the fields of a PAX row (the kind field already
// stripped): a single passenger count. Multiple PAX rows in one list
// accumulate.
func (p *Parser) ParsePaxRow(fields []string) (core.PassengerBlock, error) {
	if len(fields) < 1 {
		return core.PassengerBlock{}, fmt.Errorf("pax row missing count")
	}
	count, err := util.ParseCount(fields[0])
	if err != nil {
		return core.PassengerBlock{}, fmt.Errorf("pax count: %w", err)
	}
	return core.PassengerBlock{Count: count}, nil
}
