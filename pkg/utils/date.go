package utils

import "time"

// DateLayout é o formato yyyy-MM-dd usado nos filtros de período
const DateLayout = time.DateOnly

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatDate formata a data no padrão yyyy-MM-dd
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween retorna a diferença em dias de calendário entre start e end.
// Horários e fusos são ignorados: apenas ano, mês e dia contam.
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	return int(e.Sub(s).Hours() / 24)
}

// FirstDayOfMonth retorna o primeiro dia do mês de t
func FirstDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
