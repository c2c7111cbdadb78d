package service

import (
	"sort"
	"strings"

	"github.com/MKhiriev/dealer-desk/models"
)

// SortKey selects the ordering applied by [Filter] after the search match.
type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortYearAsc   SortKey = "year-asc"
	SortYearDesc  SortKey = "year-desc"
)

// SortKeys lists the cycle order used by the list screen.
var SortKeys = []SortKey{SortNone, SortPriceAsc, SortPriceDesc, SortYearAsc, SortYearDesc}

// Filter returns the cars whose brand or model contains search
// case-insensitively, ordered by key. It is a pure function of its inputs:
// the input slice is never mutated, the sort is stable, and [SortNone]
// preserves input order.
func Filter(cars []models.Car, search string, key SortKey) []models.Car {
	needle := strings.ToLower(search)

	filtered := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if strings.Contains(strings.ToLower(car.Brand), needle) ||
			strings.Contains(strings.ToLower(car.Model), needle) {
			filtered = append(filtered, car)
		}
	}

	switch key {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case SortYearAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].ProductionYear < filtered[j].ProductionYear })
	case SortYearDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].ProductionYear > filtered[j].ProductionYear })
	}

	return filtered
}
