package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reasons for a manual inventory depletion.
const (
	DepletionReasonSpoilage   = "SPOILAGE"
	DepletionReasonGift       = "GIFT"
	DepletionReasonCorrection = "CORRECTION"
	DepletionReasonAdHocUsage = "AD_HOC_USAGE"
	DepletionReasonOther      = "OTHER" // requires non-empty notes
)

// ValidDepletionReason reports whether reason is one of the enumerated values.
func ValidDepletionReason(reason string) bool {
	switch reason {
	case DepletionReasonSpoilage, DepletionReasonGift, DepletionReasonCorrection,
		DepletionReasonAdHocUsage, DepletionReasonOther:
		return true
	}
	return false
}

// InventoryDepletion is an immutable audit record of a non-recipe depletion
// (spoilage, gift, correction, ad hoc use). Never updated or deleted once
// written.
type InventoryDepletion struct {
	ID            string
	LotID         string
	Quantity      decimal.Decimal // in the lot's native unit
	Unit          string
	Reason        string
	Notes         string
	Cost          decimal.Decimal
	DepletionDate time.Time
	CreatedBy     string
}
