package dashboard

type OrganizationStats struct {
	TotalSupervisors     int64 `json:"total_supervisors"`
	TotalEmployees       int64 `json:"total_employees"`
	PresentToday         int64 `json:"present_today"`
	PendingLeaveRequests int64 `json:"pending_leave_requests"`
}

type AttendanceSummary struct {
	DaysPresentThisMonth int     `json:"days_present_this_month"`
	TotalWorkingDays     int     `json:"total_working_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

type AttendanceItem struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	ClockInTime  *string `json:"clock_in_time"`
	ClockOutTime *string `json:"clock_out_time"`
	Status       string  `json:"status"`
}

type LeaveItem struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type OwnerDashboard struct {
	OrganizationStats OrganizationStats `json:"organization_stats"`
	RecentAttendance  []AttendanceItem  `json:"recent_attendance"`
	PendingLeaves     []LeaveItem       `json:"pending_leaves"`
}

type EmployeeDashboard struct {
	AttendanceSummary    AttendanceSummary `json:"attendance_summary"`
	RecentAttendance     []AttendanceItem  `json:"recent_attendance"`
	PendingLeaveRequests []LeaveItem       `json:"pending_leave_requests"`
}
