package dto

type CreateReminderRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description" binding:"omitempty,max=1000"`
	ReminderDate Date   `json:"reminderDate" binding:"required"`
}

type UpdateReminderRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=200"`
	Description  *string `json:"description" binding:"omitempty,max=1000"`
	ReminderDate *Date   `json:"reminderDate"`
	IsCompleted  *bool   `json:"isCompleted"`
}
