package settings

import "time"

// DefaultReminderTime es la hora que trae la app de fábrica.
const DefaultReminderTime = "08:00"

const timeLayout = "15:04"

type Reminder struct {
	Enabled bool
	Time    string // HH:MM
}

type Settings struct {
	Onboarded bool
	Premium   bool
	Reminder  Reminder
}

// Defaults es el estado de una instalación nueva.
func Defaults() Settings {
	return Settings{Reminder: Reminder{Time: DefaultReminderTime}}
}

// ParseReminderTime valida HH:MM (24h) y lo devuelve normalizado.
func ParseReminderTime(s string) (string, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", ErrInvalidTime
	}
	return t.Format(timeLayout), nil
}
