// Package extract infers structured job attributes (salary, seniority,
// location mode, employment type, skills) from free posting text.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// hoursPerYear converts hourly rates to annual figures.
const hoursPerYear = 2080

// DefaultCurrency is assumed when the posting names no currency.
const DefaultCurrency = "USD"

var (
	salaryRangeRE  = regexp.MustCompile(`(?i)\$?([\d,]+)\s*(/hour|per hour|hour)?\s*-\s*\$?([\d,]+)\s*(USD|/hour|per hour|hour|per year|annually)?`)
	salarySingleRE = regexp.MustCompile(`(?i)\$([\d,]+)\s*(USD|/hour|per hour|hour|per year|annually)`)
)

// Salary holds an inferred annual salary range.
type Salary struct {
	Min      int
	Max      int
	Currency string
}

// ParseSalary infers a salary range. The structured salary_range field wins
// over anything found in the description; hourly figures are converted to
// annual consistently, whichever source they come from.
func ParseSalary(description, salaryRange string) Salary {
	salary := Salary{Currency: DefaultCurrency}

	if s, ok := parseRange(salaryRange); ok {
		return s
	}
	if s, ok := parseRange(description); ok {
		return s
	}
	if match := salarySingleRE.FindStringSubmatch(description); match != nil {
		value, err := parseAmount(match[1])
		if err == nil {
			value = annualize(value, match[2])
			salary.Min = value
			salary.Max = value
		}
	}
	return salary
}

func parseRange(text string) (Salary, bool) {
	match := salaryRangeRE.FindStringSubmatch(text)
	if match == nil {
		return Salary{}, false
	}
	low, err1 := parseAmount(match[1])
	high, err2 := parseAmount(match[3])
	if err1 != nil || err2 != nil {
		return Salary{}, false
	}
	// Either side naming an hourly unit makes the whole range hourly.
	unit := match[2] + " " + match[4]
	return Salary{
		Min:      annualize(low, unit),
		Max:      annualize(high, unit),
		Currency: DefaultCurrency,
	}, true
}

func parseAmount(raw string) (int, error) {
	return strconv.Atoi(strings.ReplaceAll(raw, ",", ""))
}

func annualize(value int, unit string) int {
	if strings.Contains(strings.ToLower(unit), "hour") {
		return value * hoursPerYear
	}
	return value
}
