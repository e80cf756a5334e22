package email

import (
	"fmt"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

// Sender delivers a composed message.
type Sender interface {
	Send(to []string, subject, plainBody string) error
}

// Dispatcher composes and delivers helpdesk notifications in the background.
// Delivery failures are logged and never surfaced to the caller.
type Dispatcher struct {
	mailer           Sender
	departmentEmails map[string]string
	centralEmail     string
	logger           logger.Interface
}

func NewDispatcher(mailer Sender, departmentEmails map[string]string, centralEmail string, log logger.Interface) *Dispatcher {
	return &Dispatcher{
		mailer:           mailer,
		departmentEmails: departmentEmails,
		centralEmail:     centralEmail,
		logger:           log.Named("email.dispatcher"),
	}
}

// NotifyTicketOpened alerts the department inbox and acknowledges the submitter.
func (d *Dispatcher) NotifyTicketOpened(t *ticket.Ticket) {
	deptAddress := d.departmentAddress(t.Department().String())
	reference := t.Reference()

	alertSubject := fmt.Sprintf("New Enquiry %s: %s", reference, t.Subject())
	alertBody := fmt.Sprintf(
		"A new enquiry has been submitted to the %s department.\n\n"+
			"Reference: %s\n"+
			"From: %s <%s>\n"+
			"Subject: %s\n\n"+
			"%s\n",
		t.Department().String(), reference, t.Name(), t.Email(), t.Subject(), t.Message())

	d.deliver("department alert", []string{deptAddress}, alertSubject, alertBody)

	ackSubject := fmt.Sprintf("Enquiry Received: %s", reference)
	ackBody := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Thank you for contacting us. Your enquiry has been received and "+
			"forwarded to the %s department.\n\n"+
			"Your reference number is %s. Please keep it safe and use it to "+
			"track the progress of your enquiry.\n\n"+
			"University Enquiry Desk\n",
		t.Name(), t.Department().String(), reference)

	d.deliver("submission acknowledgement", []string{t.Email()}, ackSubject, ackBody)
}

// NotifyStaffReply emails the submitter when staff respond on the thread.
// The responder signs with name and department label.
func (d *Dispatcher) NotifyStaffReply(t *ticket.Ticket, staffName, staffDepartment, replyBody string) {
	reference := t.Reference()

	subject := fmt.Sprintf("Response to Your Enquiry %s", reference)
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"There is a new response on your enquiry %s.\n\n"+
			"%s\n\n"+
			"-- %s, %s\n\n"+
			"You can view the full conversation by tracking your enquiry "+
			"with your reference number.\n",
		t.Name(), reference, replyBody, staffName, staffDepartment)

	d.deliver("staff reply notification", []string{t.Email()}, subject, body)
}

func (d *Dispatcher) departmentAddress(department string) string {
	if addr, ok := d.departmentEmails[department]; ok && addr != "" {
		return addr
	}
	return d.centralEmail
}

func (d *Dispatcher) deliver(kind string, to []string, subject, body string) {
	goroutine.SafeGo(d.logger, "email."+kind, func() {
		if err := d.mailer.Send(to, subject, body); err != nil {
			d.logger.Warnw("email delivery failed",
				"kind", kind,
				"to", to,
				"error", err)
			return
		}
		d.logger.Debugw("email delivered", "kind", kind, "to", to)
	})
}
