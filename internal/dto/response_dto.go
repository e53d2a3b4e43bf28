package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type LoginDTO struct {
	Password string `json:"password" binding:"required"`
}
