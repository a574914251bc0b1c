package domain

import "strings"

// CustomHoliday is a store-defined holiday that recurs on the same month and
// day every year.
type CustomHoliday struct {
	Name  string `json:"name"`
	Month int    `json:"month"`
	Day   int    `json:"day"`
}

// CustomHolidayInput is a raw row submitted by an administrator.
type CustomHolidayInput struct {
	Name   string `json:"name"`
	Month  int    `json:"month"`
	Day    int    `json:"day"`
	Delete bool   `json:"delete"`
}

// SanitizeCustomHolidays drops deleted rows, rows without a name and rows
// whose month or day is out of range. Order is preserved.
func SanitizeCustomHolidays(rows []CustomHolidayInput) []CustomHoliday {
	clean := make([]CustomHoliday, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if row.Delete || name == "" {
			continue
		}
		if row.Month < 1 || row.Month > 12 || row.Day < 1 || row.Day > 31 {
			continue
		}
		clean = append(clean, CustomHoliday{Name: name, Month: row.Month, Day: row.Day})
	}
	return clean
}
