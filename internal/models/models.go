// Package models holds the gorm entities persisted by the service.
package models

// All returns every entity in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserPreferences{},
		&Additive{},
		&Product{},
		&ScanHistory{},
	}
}
