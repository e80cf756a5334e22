package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
)

// Ticket is a submitted enquiry routed to a department and tracked to
// resolution. The last_reply fields cache the tail of the conversation
// thread for dashboard display; the messages themselves are the source
// of truth.
type Ticket struct {
	id                 uint
	name               string
	email              string
	phone              string
	userType           vo.UserType
	studentID          string
	staffID            string
	validatedStudentID *uint
	validatedStaffID   *uint
	subject            string
	message            string
	department         vo.Department
	status             string
	lastReplyBy        *vo.ReplyBy
	replyMessage       string
	createdAt          time.Time
	updatedAt          time.Time
}

func NewTicket(
	name string,
	email string,
	phone string,
	userType vo.UserType,
	department vo.Department,
	subject string,
	message string,
) (*Ticket, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if !userType.IsValid() {
		return nil, fmt.Errorf("invalid user type")
	}
	if !department.IsValid() {
		return nil, fmt.Errorf("invalid department")
	}

	now := biztime.NowUTC()
	return &Ticket{
		name:       name,
		email:      email,
		phone:      phone,
		userType:   userType,
		subject:    subject,
		message:    message,
		department: department,
		status:     vo.StatusOpen.String(),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructTicket(
	id uint,
	name string,
	email string,
	phone string,
	userType vo.UserType,
	studentID string,
	staffID string,
	validatedStudentID *uint,
	validatedStaffID *uint,
	subject string,
	message string,
	department vo.Department,
	status string,
	lastReplyBy *vo.ReplyBy,
	replyMessage string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !userType.IsValid() {
		return nil, fmt.Errorf("invalid user type")
	}
	if !department.IsValid() {
		return nil, fmt.Errorf("invalid department")
	}

	return &Ticket{
		id:                 id,
		name:               name,
		email:              email,
		phone:              phone,
		userType:           userType,
		studentID:          studentID,
		staffID:            staffID,
		validatedStudentID: validatedStudentID,
		validatedStaffID:   validatedStaffID,
		subject:            subject,
		message:            message,
		department:         department,
		status:             status,
		lastReplyBy:        lastReplyBy,
		replyMessage:       replyMessage,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

// Reference is the zero-padded public rendering of the ticket id.
func (t *Ticket) Reference() string {
	return FormatReference(t.id)
}

func (t *Ticket) Name() string {
	return t.name
}

func (t *Ticket) Email() string {
	return t.email
}

func (t *Ticket) Phone() string {
	return t.phone
}

func (t *Ticket) UserType() vo.UserType {
	return t.userType
}

func (t *Ticket) StudentID() string {
	return t.studentID
}

func (t *Ticket) StaffID() string {
	return t.staffID
}

func (t *Ticket) ValidatedStudentID() *uint {
	return t.validatedStudentID
}

func (t *Ticket) ValidatedStaffID() *uint {
	return t.validatedStaffID
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Message() string {
	return t.message
}

func (t *Ticket) Department() vo.Department {
	return t.department
}

func (t *Ticket) Status() string {
	return t.status
}

func (t *Ticket) LastReplyBy() *vo.ReplyBy {
	return t.lastReplyBy
}

func (t *Ticket) ReplyMessage() string {
	return t.replyMessage
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// LinkStudent records a verified student identity on the ticket.
func (t *Ticket) LinkStudent(claimedID string, masterID uint) {
	t.studentID = claimedID
	t.validatedStudentID = &masterID
	t.userType = vo.UserTypeStudent
}

// LinkStaff records a verified staff identity on the ticket.
func (t *Ticket) LinkStaff(claimedID string, masterID uint) {
	t.staffID = claimedID
	t.validatedStaffID = &masterID
	t.userType = vo.UserTypeStaff
}

// ChangeStatus overwrites the status. Any non-empty value is accepted;
// the known set is not enforced at this level.
func (t *Ticket) ChangeStatus(status string) error {
	if len(status) == 0 {
		return fmt.Errorf("status cannot be empty")
	}
	t.status = status
	t.updatedAt = biztime.NowUTC()
	return nil
}

// ApplyReply refreshes the cached last-reply fields after a message is
// appended to the thread. A non-staff reply to a Resolved ticket flips
// the status back to Open so the dashboard surfaces it again.
func (t *Ticket) ApplyReply(body string, isStaff bool) {
	by := vo.FromStaffFlag(isStaff)
	t.lastReplyBy = &by
	t.replyMessage = body
	t.updatedAt = biztime.NowUTC()

	if !isStaff && vo.TicketStatus(t.status).IsResolved() {
		t.status = vo.StatusOpen.String()
	}
}
