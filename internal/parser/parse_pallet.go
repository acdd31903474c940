package parser

import (
	"fmt"
	"strings"

	"github.com/airliftops/loadmaster/internal/util"
	"github.com/airliftops/loadmaster/pkg/core"
)

// ParsePalletRow parses the fields of a PALLET row (the kind field
// already stripped):
//
//	0: pallet ID
//	1: gross weight (lbs)
//	2: net weight (lbs)
//	3: height (inches)
//	4: hazmat flag (Y/N, optional)
//	5: contents, "name@weight" items joined with ';' (optional)
//
// Placement is left zero; station assignment happens when the pallet
// is seated on a flight.
func (p *Parser) ParsePalletRow(fields []string) (core.Pallet, error) {
	if len(fields) < 4 {
		return core.Pallet{}, fmt.Errorf("pallet row has %d fields, need at least 4", len(fields))
	}

	id := strings.TrimSpace(fields[0])
	if id == "" {
		return core.Pallet{}, fmt.Errorf("pallet row missing ID")
	}

	gross, err := util.ParseWeight(fields[1])
	if err != nil {
		return core.Pallet{}, fmt.Errorf("pallet %s gross weight: %w", id, err)
	}
	net, err := util.ParseWeight(fields[2])
	if err != nil {
		return core.Pallet{}, fmt.Errorf("pallet %s net weight: %w", id, err)
	}
	height, err := util.ParseDimension(fields[3])
	if err != nil {
		return core.Pallet{}, fmt.Errorf("pallet %s height: %w", id, err)
	}

	pallet := core.Pallet{
		ID:          id,
		GrossWeight: gross,
		NetWeight:   net,
		Height:      height,
	}

	if len(fields) > 4 {
		pallet.Hazmat, err = util.ParseFlag(fields[4])
		if err != nil {
			return core.Pallet{}, fmt.Errorf("pallet %s hazmat flag: %w", id, err)
		}
	}
	if len(fields) > 5 && strings.TrimSpace(fields[5]) != "" {
		pallet.Contents, err = parseContents(fields[5])
		if err != nil {
			return core.Pallet{}, fmt.Errorf("pallet %s contents: %w", id, err)
		}
	}

	return pallet, nil
}

// parseContents parses "name@weight" items joined with ';'. A trailing
// "xN" on the weight gives an item count, e.g. "MRE case@42x12".
func parseContents(s string) ([]core.PalletContent, error) {
	var contents []core.PalletContent
	for _, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, spec, ok := strings.Cut(item, "@")
		if !ok {
			return nil, fmt.Errorf("content item %q missing '@weight'", item)
		}

		count := 1
		weightStr, countStr, hasCount := strings.Cut(spec, "x")
		if hasCount {
			c, err := util.ParseCount(countStr)
			if err != nil {
				return nil, fmt.Errorf("content item %q count: %w", item, err)
			}
			count = c
		}
		weight, err := util.ParseWeight(weightStr)
		if err != nil {
			return nil, fmt.Errorf("content item %q weight: %w", item, err)
		}

		contents = append(contents, core.PalletContent{
			Name:   strings.TrimSpace(name),
			Weight: weight,
			Count:  count,
		})
	}
	return contents, nil
}
