package valueobjects

// TicketStatus is the workflow state of a ticket. Storage is a free
// string: staff may set values outside the known set, and the known
// constants only drive display and the resolved-reopen rule.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "Open"
	StatusInProgress TicketStatus = "In-Progress"
	StatusResolved   TicketStatus = "Resolved"
)

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

// IsKnown reports whether the status is one of the values the dashboard
// UI offers. Unknown values are stored as-is.
func (ts TicketStatus) IsKnown() bool {
	return ts == StatusOpen || ts == StatusInProgress || ts == StatusResolved
}
