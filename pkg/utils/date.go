package utils

import "time"

// DateLayout é o formato YYYY-MM-DD usado nas rotas e no banco
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

// IsValidDate verifica se a string está no formato YYYY-MM-DD
func IsValidDate(dateStr string) bool {
	if len(dateStr) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, dateStr)
	return err == nil
}

// DateOnly descarta o horário, mantendo o dia do calendário em UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysAgo retorna o dia do calendário n dias antes de now
func DaysAgo(now time.Time, n int) time.Time {
	return DateOnly(now).AddDate(0, 0, -n)
}

// StartOfWeek retorna o domingo mais recente (inclusive hoje)
func StartOfWeek(now time.Time) time.Time {
	day := DateOnly(now)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func StartOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
