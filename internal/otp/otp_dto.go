package otp

type RequestOTPRequest struct {
	Email    string `json:"email" binding:"required,email"`
	DeviceIP string `json:"device_ip"`
}

type VerifyOTPRequest struct {
	Email    string `json:"email" binding:"required,email"`
	OTPCode  string `json:"otp_code" binding:"required"`
	DeviceIP string `json:"device_ip"`
}

type RequestOTPResponse struct {
	ExpiresAt string `json:"expires_at"`
}

type VerifyOTPResponse struct {
	Verified  bool   `json:"verified"`
	ExpiresAt string `json:"expires_at"`
}
