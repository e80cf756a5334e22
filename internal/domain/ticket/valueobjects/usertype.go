package valueobjects

import "strings"

// UserType classifies who submitted an enquiry.
type UserType string

const (
	UserTypeStudent UserType = "STUDENT"
	UserTypeStaff   UserType = "STAFF"
	UserTypeVisitor UserType = "VISITOR"
)

func (u UserType) String() string {
	return string(u)
}

func (u UserType) IsValid() bool {
	return u == UserTypeStudent || u == UserTypeStaff || u == UserTypeVisitor
}

// ParseUserType maps a submitted claim ("student", "Staff", ...) to its
// canonical value. Anything unrecognized is treated as a visitor claim.
func ParseUserType(s string) UserType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student":
		return UserTypeStudent
	case "staff":
		return UserTypeStaff
	default:
		return UserTypeVisitor
	}
}
