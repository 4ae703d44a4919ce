package handlers

import (
	"fmt"
	"time"
)

// FormatDuration renders a day count the way the club advertises it:
// whole years, whole months, otherwise days.
func FormatDuration(days int) string {
	switch {
	case days != 0 && days%365 == 0:
		years := days / 365
		if years == 1 {
			return "1 year"
		}
		return fmt.Sprintf("%d years", years)
	case days != 0 && days%30 == 0:
		months := days / 30
		if months == 1 {
			return "1 month"
		}
		return fmt.Sprintf("%d months", months)
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// FormatPrice renders an amount as en-US currency.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// FormatDate renders a date as yyyy-MM-dd.
func FormatDate(date time.Time) string {
	return date.Format("2006-01-02")
}

// FullName joins optional first/last names with a single space.
func FullName(firstname, lastname *string) string {
	first, last := "", ""
	if firstname != nil {
		first = *firstname
	}
	if lastname != nil {
		last = *lastname
	}
	return first + " " + last
}
