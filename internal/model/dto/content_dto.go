package dto

type ProjectRequest struct {
	Title         string `json:"title" binding:"required"`
	Image         string `json:"image"`
	ProjectType   string `json:"project_type" binding:"required"`
	ProjectStatus string `json:"project_status"`
}

type ServiceRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type TeamMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position" binding:"required"`
	Photo    string `json:"photo"`
}

type WorkRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	WorkType    string `json:"work_type" binding:"required"`
}
