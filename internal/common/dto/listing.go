package dto

// AddListingRequest represents a listing submission to the file-backed
// append path. Rent stays a string so the appended entry round-trips the
// caller's value untouched.
type AddListingRequest struct {
	City     string `form:"city" json:"city"`
	Title    string `form:"title" json:"title"`
	Type     string `form:"type" json:"type"`
	Rent     string `form:"rent" json:"rent"`
	Area     string `form:"area" json:"area"`
	Image    string `form:"image" json:"image"`
	Category string `form:"category" json:"category"`
}
