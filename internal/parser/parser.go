// Package parser converts movement-list rows into cargo structs. It is
// pure []string -> struct conversion with a logger as its only
// dependency; dimensional validation against an airframe happens
// downstream in the engine, not here.
package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/airliftops/loadmaster/pkg/core"
)

// Row kinds accepted in the first field of a movement-list record.
const (
	KindPallet  = "PALLET"
	KindVehicle = "VEHICLE"
	KindPax     = "PAX"
)

// MovementList is the classified cargo set read from one movement list.
type MovementList struct {
	Pallets    []core.Pallet
	Vehicles   []core.Vehicle
	Passengers int
}

// Parser provides movement-list row conversion.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a new parser with only a logger dependency.
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}

// ParseMovementList reads a CSV movement list. A header row (first
// field "KIND") and comment lines starting with '#' are skipped. Any
// malformed row fails the whole list: a silently dropped cargo row
// would plan an aircraft that doesn't match the manifest.
func (p *Parser) ParseMovementList(r io.Reader) (MovementList, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var list MovementList
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return MovementList{}, fmt.Errorf("movement list line %d: %w", line+1, err)
		}
		line++
		if len(rec) == 0 {
			continue
		}

		kind := strings.ToUpper(strings.TrimSpace(rec[0]))
		if line == 1 && kind == "KIND" {
			continue
		}

		switch kind {
		case KindPallet:
			pallet, err := p.ParsePalletRow(rec[1:])
			if err != nil {
				return MovementList{}, fmt.Errorf("movement list line %d: %w", line, err)
			}
			list.Pallets = append(list.Pallets, pallet)
		case KindVehicle:
			vehicle, err := p.ParseVehicleRow(rec[1:])
			if err != nil {
				return MovementList{}, fmt.Errorf("movement list line %d: %w", line, err)
			}
			list.Vehicles = append(list.Vehicles, vehicle)
		case KindPax:
			block, err := p.ParsePaxRow(rec[1:])
			if err != nil {
				return MovementList{}, fmt.Errorf("movement list line %d: %w", line, err)
			}
			list.Passengers += block.Count
		default:
			return MovementList{}, fmt.Errorf("movement list line %d: unknown row kind %q", line, rec[0])
		}
	}

	p.logger.Debug("Parsed movement list",
		"pallets", len(list.Pallets),
		"vehicles", len(list.Vehicles),
		"passengers", list.Passengers)
	return list, nil
}
