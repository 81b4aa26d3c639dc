package enum

// QuoteStatus represents the lifecycle state of a quote
type QuoteStatus string

const (
	QuoteStatusOpen      QuoteStatus = "OPEN"
	QuoteStatusClosed    QuoteStatus = "CLOSED"
	QuoteStatusCancelled QuoteStatus = "CANCELLED"
)

// Valid reports whether the status is one of the known values
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusOpen, QuoteStatusClosed, QuoteStatusCancelled:
		return true
	}
	return false
}

// ParseQuoteStatus converts a request string into a QuoteStatus.
// Accepts the lowercase forms used by the frontend.
func ParseQuoteStatus(s string) (QuoteStatus, bool) {
	switch s {
	case "OPEN", "open":
		return QuoteStatusOpen, true
	case "CLOSED", "closed":
		return QuoteStatusClosed, true
	case "CANCELLED", "cancelled":
		return QuoteStatusCancelled, true
	}
	return "", false
}
