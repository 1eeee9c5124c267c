package model

import (
	"time"
)

// Enum labels are stored in Arabic, matching what the public profile
// renders directly.
const (
	ProjectTypeResidential    = "سكني"
	ProjectTypeCommercial     = "تجاري"
	ProjectTypeIndustrial     = "صناعي"
	ProjectTypeInfrastructure = "بنية_تحتية"

	ProjectInProgress = "قيد_التنفيذ"
	ProjectCompleted  = "مكتمل"

	WorkTypeExecution   = "تنفيذ"
	WorkTypeFinishing   = "تشطيب"
	WorkTypeMaintenance = "صيانة"
)

type Project struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	CompanyID     int64     `gorm:"not null;index" json:"company_id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Image         string    `gorm:"size:500" json:"image,omitempty"`
	ProjectType   string    `gorm:"size:30;not null" json:"project_type"`
	ProjectStatus string    `gorm:"size:30;not null;default:قيد_التنفيذ" json:"project_status"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Project) TableName() string {
	return "projects"
}

type Service struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	CompanyID   int64     `gorm:"not null;index" json:"company_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Price       float64   `gorm:"type:decimal(10,2)" json:"price,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Service) TableName() string {
	return "services"
}

type TeamMember struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CompanyID int64     `gorm:"not null;index" json:"company_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Position  string    `gorm:"size:100;not null" json:"position"`
	Photo     string    `gorm:"size:500" json:"photo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

type Work struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	CompanyID   int64     `gorm:"not null;index" json:"company_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Image       string    `gorm:"size:500" json:"image,omitempty"`
	WorkType    string    `gorm:"size:30;not null" json:"work_type"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Work) TableName() string {
	return "works"
}

type GalleryImage struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CompanyID int64     `gorm:"not null;index" json:"company_id"`
	ImageURL  string    `gorm:"size:500;not null" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}

func ValidProjectType(t string) bool {
	switch t {
	case ProjectTypeResidential, ProjectTypeCommercial, ProjectTypeIndustrial, ProjectTypeInfrastructure:
		return true
	}
	return false
}

func ValidProjectStatus(s string) bool {
	return s == ProjectInProgress || s == ProjectCompleted
}

func ValidWorkType(t string) bool {
	switch t {
	case WorkTypeExecution, WorkTypeFinishing, WorkTypeMaintenance:
		return true
	}
	return false
}
