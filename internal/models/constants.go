package models

import "strings"

// Claim lifecycle statuses. Stored lowercase; input is matched
// case-insensitively.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ClaimStatuses lists every valid claim status in display order.
var ClaimStatuses = []string{StatusPending, StatusCompleted, StatusCancelled}

// NormalizeStatus lowercases and trims a raw status value.
// It does not validate; use ValidClaimStatus for that.
func NormalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidClaimStatus reports whether s normalizes to a known claim status.
func ValidClaimStatus(s string) bool {
	n := NormalizeStatus(s)
	for _, v := range ClaimStatuses {
		if n == v {
			return true
		}
	}
	return false
}

// Date layouts used for listing expiry dates and claim timestamps.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// DefaultExpiryWindowDays is the fallback day window for the
// nearing-expiry report when no configuration is present.
const DefaultExpiryWindowDays = 3

// DefaultLowStockThreshold is the quantity at or below which a listing
// shows up in the low-stock alert.
const DefaultLowStockThreshold = 5
