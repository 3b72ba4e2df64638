package dto

type CreateTimetableEntryRequest struct {
	Subject   string `json:"subject" binding:"required,max=100"`
	Day       string `json:"day" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	StartTime string `json:"startTime" binding:"required,min=3"`
	EndTime   string `json:"endTime" binding:"required,min=3"`
	Location  string `json:"location" binding:"omitempty,max=200"`
	Color     string `json:"color"`
}

type UpdateTimetableEntryRequest struct {
	Subject   *string `json:"subject" binding:"omitempty,max=100"`
	Day       *string `json:"day" binding:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday"`
	StartTime *string `json:"startTime" binding:"omitempty,min=3"`
	EndTime   *string `json:"endTime" binding:"omitempty,min=3"`
	Location  *string `json:"location" binding:"omitempty,max=200"`
	Color     *string `json:"color"`
}
