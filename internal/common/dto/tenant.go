package dto

// TenantSubmissionRequest represents a tenant lead submission; the photo
// arrives as a multipart file alongside these fields. All fields are
// mandatory and presence is checked at the handler boundary.
type TenantSubmissionRequest struct {
	TenantName       string `form:"tenantName" json:"tenantName"`
	Age              int    `form:"age" json:"age"`
	Email            string `form:"email" json:"email"`
	Phone            string `form:"phone" json:"phone"`
	NumPeople        int    `form:"numPeople" json:"numPeople"`
	PropertySelected string `form:"propertySelected" json:"propertySelected"`
	ListedAmount     int64  `form:"listedAmount" json:"listedAmount"`
	ReadyToPay       int64  `form:"readyToPay" json:"readyToPay"`
	LeaseTime        string `form:"leaseTime" json:"leaseTime"`
	Aadhaar          string `form:"aadhaar" json:"aadhaar"`
}
