package attendance

type ClockInRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Method     string `json:"method" binding:"required,oneof=fingerprint otp"`
	DeviceIP   string `json:"device_ip"`
	DeviceID   string `json:"device_id"`
	OTPCode    string `json:"otp_code"`
}

type ClockOutRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Method     string `json:"method" binding:"required,oneof=fingerprint otp"`
	DeviceIP   string `json:"device_ip"`
	OTPCode    string `json:"otp_code"`
}

type HistoryQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	AttendanceDate string  `json:"attendance_date"`
	ClockInTime    *string `json:"clock_in_time"`
	ClockOutTime   *string `json:"clock_out_time"`
	ClockInMethod  *string `json:"clock_in_method"`
	ClockOutMethod *string `json:"clock_out_method"`
	DeviceIP       string  `json:"device_ip,omitempty"`
	DeviceID       *string `json:"device_id,omitempty"`
	Status         string  `json:"status"`
}

// TeamMemberStatus is one row of a supervisor's view of today.
type TeamMemberStatus struct {
	EmployeeID string              `json:"employee_id"`
	FullName   string              `json:"full_name"`
	Email      string              `json:"email"`
	State      string              `json:"state"`
	Record     *AttendanceResponse `json:"record,omitempty"`
}

const (
	StateAbsent    = "absent"
	StateClockedIn = "clocked_in"
	StateComplete  = "complete"
)
