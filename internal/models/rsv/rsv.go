// Package rsv declares the vehicle registry model groups whose schemas the
// tool can export. Two groups are registered:
//
//   - "rsv.core": owners, vehicles, registrations and technical inspections
//   - "rsv.audit": import batches and their audit events
//
// Declaration order inside a group is meaningful: referenced tables come
// before referencing ones so generated create scripts apply cleanly.
package rsv

import (
	"time"

	"schemagen/internal/schema"
)

// Owner is a registered vehicle owner or operator.
type Owner struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	NationalID string `gorm:"size:16;unique;not null"` // IČO or birth number
	FullName   string `gorm:"size:255;not null"`
	City       string `gorm:"size:128"`
}

// Vehicle is one vehicle record keyed by its VIN.
type Vehicle struct {
	ID                uint64 `gorm:"primaryKey;autoIncrement"`
	VIN               string `gorm:"size:17;unique;not null"`
	Make              string `gorm:"size:64;not null"`
	ModelName         string `gorm:"size:64"`
	EngineCCM         int32
	EngineKW          float64
	FirstRegisteredAt time.Time `gorm:"not null"`
	OwnerID           uint64    `gorm:"not null;index"`
	Owner             *Owner
}

// Registration is a plate assignment for a vehicle over a validity window.
type Registration struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	VehicleID   uint64 `gorm:"not null"`
	Vehicle     *Vehicle
	PlateNumber string    `gorm:"size:12;unique;not null"`
	District    string    `gorm:"size:64"` // e.g., "AB - Praha"
	ValidFrom   time.Time `gorm:"not null"`
	ValidTo     *time.Time
	Active      bool `gorm:"not null"`
}

// Inspection is one periodic technical inspection (STK) result.
type Inspection struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	VehicleID   uint64 `gorm:"not null"`
	Vehicle     *Vehicle
	StationCode int32     `gorm:"not null"` // STK station code
	ProtocolNo  string    `gorm:"size:32;unique"`
	InspectedAt time.Time `gorm:"not null;index"`
	Result      string    `gorm:"size:16"` // e.g., "A", "B", "Nezjištěno"
	OdometerKM  int32
}

// ImportBatch is one run of the upstream registry import.
type ImportBatch struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	SourceURL  string    `gorm:"size:512;not null"`
	StartedAt  time.Time `gorm:"not null"`
	FinishedAt *time.Time
	RowCount   int64
}

// AuditEvent is a single event recorded while importing a batch.
type AuditEvent struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	BatchID    uint64 `gorm:"not null"`
	Batch      *ImportBatch
	OccurredAt time.Time `gorm:"not null"`
	Kind       string    `gorm:"size:32;not null"` // e.g., "download", "parse_error"
	Detail     string    `gorm:"type:text"`
}

func init() {
	schema.Register("rsv.core", &Owner{}, &Vehicle{}, &Registration{}, &Inspection{})
	schema.Register("rsv.audit", &ImportBatch{}, &AuditEvent{})
}
