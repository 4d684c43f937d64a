package notification

const (
	KindOTPCode          = "otp_code"
	KindSupervisorInvite = "supervisor_invite"
	KindEmployeeInvite   = "employee_invite"
	KindLeaveRequested   = "leave_requested"
	KindLeaveDecided     = "leave_decided"
)

type Message struct {
	Kind    string
	To      string
	Subject string
	HTML    string
}
