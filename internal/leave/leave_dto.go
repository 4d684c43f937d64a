package leave

type CreateLeaveRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type DecideLeaveRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

type ListLeaveQuery struct {
	Status string `form:"status"`
}

type LeaveResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	SupervisorID  string  `json:"supervisor_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	EmployeeEmail string  `json:"employee_email,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	ApprovedAt    *string `json:"approved_at"`
	DecidedAt     *string `json:"decided_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
