package records

import "time"

// AdvancedRecord es un registro extra (peso, muda, eventos). Solo premium.
type AdvancedRecord struct {
	ID     string
	BirdID string
	Date   time.Time

	WeightGrams *float64
	IsMolting   *bool
	Event       string
}
