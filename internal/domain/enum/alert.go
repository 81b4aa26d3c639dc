package enum

// AlertType classifies what a reminder alert is about
type AlertType string

const (
	AlertTypeBirthday         AlertType = "BIRTHDAY"
	AlertTypeInactiveCustomer AlertType = "INACTIVE_CUSTOMER"
	AlertTypeOpenQuote        AlertType = "OPEN_QUOTE"
	// AlertTypeFollowup exists in the schema for manually created
	// follow-ups; the generator never produces it.
	AlertTypeFollowup AlertType = "FOLLOWUP"
)

// Valid reports whether the type is one of the known values
func (t AlertType) Valid() bool {
	switch t {
	case AlertTypeBirthday, AlertTypeInactiveCustomer, AlertTypeOpenQuote, AlertTypeFollowup:
		return true
	}
	return false
}

// AlertUrgency ranks how soon an alert should be acted on
type AlertUrgency string

const (
	AlertUrgencyHigh   AlertUrgency = "HIGH"
	AlertUrgencyMedium AlertUrgency = "MEDIUM"
	AlertUrgencyLow    AlertUrgency = "LOW"
)

// AlertStatus tracks whether an alert has been acted on
type AlertStatus string

const (
	AlertStatusPending  AlertStatus = "PENDING"
	AlertStatusResolved AlertStatus = "RESOLVED"
)

// Valid reports whether the status is one of the known values
func (s AlertStatus) Valid() bool {
	return s == AlertStatusPending || s == AlertStatusResolved
}
