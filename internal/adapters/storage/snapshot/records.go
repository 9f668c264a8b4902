package snapshot

import (
	"fmt"
	"strconv"
	"time"

	"passaro-ok/internal/domain/birds"
	"passaro-ok/internal/domain/health"
	"passaro-ok/internal/domain/healthlogs"
	"passaro-ok/internal/domain/records"
)

// Formato persistido: mismas claves y nombres de campo que usaba la app en el dispositivo.

const dateLayout = "2006-01-02"

type birdRecord struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Species          string        `json:"species"`
	Age              string        `json:"age"`
	AcquireDate      string        `json:"acquireDate"`
	Status           health.Status `json:"status"`
	LastUpdate       time.Time     `json:"lastUpdate"`
	PhotoKey         string        `json:"photoKey,omitempty"`
	PhotoContentType string        `json:"photoContentType,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
}

type logRecord struct {
	ID           string        `json:"id"`
	BirdID       string        `json:"birdId"`
	Date         time.Time     `json:"date"`
	Appetite     string        `json:"appetite"`
	Activity     string        `json:"activity"`
	Droppings    string        `json:"droppings"`
	Singing      string        `json:"singing"`
	ResultStatus health.Status `json:"resultStatus"`
	Notes        string        `json:"notes,omitempty"`
}

type advancedRecord struct {
	ID        string    `json:"id"`
	BirdID    string    `json:"birdId"`
	Date      time.Time `json:"date"`
	Weight    string    `json:"weight,omitempty"` // gramos, como texto
	IsMolting *bool     `json:"isMolting,omitempty"`
	Event     string    `json:"event,omitempty"`
}

func fromBird(b birds.Bird) birdRecord {
	r := birdRecord{
		ID:               b.ID,
		Name:             b.Name,
		Species:          b.Species,
		Age:              b.Age,
		Status:           b.Status,
		LastUpdate:       b.LastUpdate,
		PhotoKey:         b.PhotoKey,
		PhotoContentType: b.PhotoContentType,
		CreatedAt:        b.CreatedAt,
	}
	if b.AcquiredOn != nil {
		r.AcquireDate = b.AcquiredOn.Format(dateLayout)
	}
	return r
}

func (r birdRecord) toBird() (birds.Bird, error) {
	b := birds.Bird{
		ID:               r.ID,
		Name:             r.Name,
		Species:          r.Species,
		Age:              r.Age,
		Status:           r.Status,
		LastUpdate:       r.LastUpdate,
		PhotoKey:         r.PhotoKey,
		PhotoContentType: r.PhotoContentType,
		CreatedAt:        r.CreatedAt,
	}
	if !b.Status.Valid() {
		b.Status = health.StatusGreen
	}
	if r.AcquireDate != "" {
		t, err := time.Parse(dateLayout, r.AcquireDate)
		if err != nil {
			return birds.Bird{}, fmt.Errorf("bird %s acquireDate: %w", r.ID, err)
		}
		b.AcquiredOn = &t
	}
	return b, nil
}

func fromLog(l healthlogs.HealthLog) logRecord {
	return logRecord{
		ID:           l.ID,
		BirdID:       l.BirdID,
		Date:         l.Date,
		Appetite:     l.Appetite,
		Activity:     l.Activity,
		Droppings:    l.Droppings,
		Singing:      l.Singing,
		ResultStatus: l.ResultStatus,
		Notes:        l.Notes,
	}
}

func (r logRecord) toLog() healthlogs.HealthLog {
	return healthlogs.HealthLog{
		ID:           r.ID,
		BirdID:       r.BirdID,
		Date:         r.Date,
		Appetite:     r.Appetite,
		Activity:     r.Activity,
		Droppings:    r.Droppings,
		Singing:      r.Singing,
		ResultStatus: r.ResultStatus,
		Notes:        r.Notes,
	}
}

func fromRecord(a records.AdvancedRecord) advancedRecord {
	r := advancedRecord{
		ID:        a.ID,
		BirdID:    a.BirdID,
		Date:      a.Date,
		IsMolting: a.IsMolting,
		Event:     a.Event,
	}
	if a.WeightGrams != nil {
		r.Weight = strconv.FormatFloat(*a.WeightGrams, 'f', -1, 64)
	}
	return r
}

func (r advancedRecord) toRecord() (records.AdvancedRecord, error) {
	a := records.AdvancedRecord{
		ID:        r.ID,
		BirdID:    r.BirdID,
		Date:      r.Date,
		IsMolting: r.IsMolting,
		Event:     r.Event,
	}
	if r.Weight != "" {
		w, err := strconv.ParseFloat(r.Weight, 64)
		if err != nil {
			return records.AdvancedRecord{}, fmt.Errorf("record %s weight: %w", r.ID, err)
		}
		a.WeightGrams = &w
	}
	return a, nil
}
