package dto

type CreateAssignmentRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Subject     string `json:"subject" binding:"omitempty,max=100"`
	DueDate     *Date  `json:"dueDate"`
	Status      string `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

type UpdateAssignmentRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Subject     *string `json:"subject" binding:"omitempty,max=100"`
	DueDate     *Date   `json:"dueDate"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
}
