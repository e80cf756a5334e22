package valueobjects

import "fmt"

// Department is the university unit an enquiry is routed to.
type Department string

const (
	DepartmentIT             Department = "I.T."
	DepartmentFinance        Department = "Finance"
	DepartmentHR             Department = "HR"
	DepartmentAdmission      Department = "Admission"
	DepartmentStudentSupport Department = "Student Support Service"
)

var validDepartments = map[Department]bool{
	DepartmentIT:             true,
	DepartmentFinance:        true,
	DepartmentHR:             true,
	DepartmentAdmission:      true,
	DepartmentStudentSupport: true,
}

// AllDepartments returns the routing choices shown on the public
// submission form, in display order.
func AllDepartments() []Department {
	return []Department{
		DepartmentIT,
		DepartmentFinance,
		DepartmentHR,
		DepartmentAdmission,
		DepartmentStudentSupport,
	}
}

func (d Department) String() string {
	return string(d)
}

func (d Department) IsValid() bool {
	return validDepartments[d]
}

func NewDepartment(s string) (Department, error) {
	d := Department(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid department: %s", s)
	}
	return d, nil
}
