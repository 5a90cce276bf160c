package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot is a physical quantity of one Variant currently on hand. Quantity is
// expressed in the variant's purchase unit and must never go negative. A lot
// that reaches zero is kept, not deleted, so the audit trail stays complete.
// AcquisitionDate drives FIFO ordering; nil dates sort after all dated lots.
type Lot struct {
	ID              string
	VariantID       string
	PurchaseID      string // originating purchase, may be empty for seeded stock
	Quantity        decimal.Decimal
	AcquisitionDate *time.Time
	ExpirationDate  *time.Time
	Location        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
