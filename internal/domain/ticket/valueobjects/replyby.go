package valueobjects

// ReplyBy records which side wrote the most recent message on a ticket.
type ReplyBy string

const (
	ReplyByStaff ReplyBy = "STAFF"
	ReplyByUser  ReplyBy = "USER"
)

func (r ReplyBy) String() string {
	return string(r)
}

// FromStaffFlag maps a message's is_staff flag to the cached marker.
func FromStaffFlag(isStaff bool) ReplyBy {
	if isStaff {
		return ReplyByStaff
	}
	return ReplyByUser
}
