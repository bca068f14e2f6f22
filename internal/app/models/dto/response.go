package dto

// SuccessResponse is the standard body for mutating endpoints.
// Kept flat so clients can test response.success directly.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// NewSuccessResponse creates the standard success body
func NewSuccessResponse() SuccessResponse {
	return SuccessResponse{Success: true}
}
