package notification

import (
	"bytes"
	"html/template"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var templates = template.Must(template.New("mail").Parse(`
{{define "otp"}}<h3>Your OTP Code</h3>
<p>Your OTP code for attendance is: <strong>{{.Code}}</strong></p>
<p>This code will expire in {{.ValidMinutes}} minutes.</p>
{{end}}
{{define "supervisor_invite"}}<h3>Welcome to {{.Organization}}</h3>
<p>Hello {{.Name}},</p>
<p>You have been added as a supervisor. Set up your account here:</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
{{end}}
{{define "employee_invite"}}<h3>Welcome aboard</h3>
<p>Hello {{.Name}},</p>
<p>{{.SupervisorName}} has added you as an employee. Set up your account here:</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
{{end}}
{{define "leave_requested"}}<h3>New Leave Request</h3>
<p>{{.EmployeeName}} has requested leave from {{.StartDate}} to {{.EndDate}}.</p>
<p>Reason: {{.Reason}}</p>
{{end}}
{{define "leave_decided"}}<h3>Leave Request {{.StatusTitle}}</h3>
<p>Your leave request from {{.StartDate}} to {{.EndDate}} has been {{.Status}}.</p>
{{end}}
`))

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

func OTPCode(to, code string, validMinutes int) (Message, error) {
	html, err := render("otp", struct {
		Code         string
		ValidMinutes int
	}{code, validMinutes})
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: KindOTPCode, To: to, Subject: "Your OTP Code", HTML: html}, nil
}

func SupervisorInvite(to, name, organization, link string) (Message, error) {
	html, err := render("supervisor_invite", struct {
		Name         string
		Organization string
		Link         string
	}{name, organization, link})
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: KindSupervisorInvite, To: to, Subject: "Set up your supervisor account", HTML: html}, nil
}

func EmployeeInvite(to, name, supervisorName, link string) (Message, error) {
	html, err := render("employee_invite", struct {
		Name           string
		SupervisorName string
		Link           string
	}{name, supervisorName, link})
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: KindEmployeeInvite, To: to, Subject: "Set up your employee account", HTML: html}, nil
}

func LeaveRequested(to, employeeName, startDate, endDate, reason string) (Message, error) {
	html, err := render("leave_requested", struct {
		EmployeeName string
		StartDate    string
		EndDate      string
		Reason       string
	}{employeeName, startDate, endDate, reason})
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: KindLeaveRequested, To: to, Subject: "New leave request from " + employeeName, HTML: html}, nil
}

func LeaveDecided(to, status, startDate, endDate string) (Message, error) {
	title := cases.Title(language.English).String(status)
	html, err := render("leave_decided", struct {
		Status      string
		StatusTitle string
		StartDate   string
		EndDate     string
	}{status, title, startDate, endDate})
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: KindLeaveDecided, To: to, Subject: "Leave request " + status, HTML: html}, nil
}
