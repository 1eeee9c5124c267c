package dto

import (
	"github.com/moqawil/moqawil_server/internal/model"
)

type UpdateProfileRequest struct {
	CompanyName string `json:"company_name"`
	City        string `json:"city"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone1      string `json:"phone_1"`
	Phone2      string `json:"phone_2"`
	Email       string `json:"email"`
	FacebookURL string `json:"facebook_url"`
	Whatsapp    string `json:"whatsapp_number"`
	FoundedAt   string `json:"founded_at"`
}

// PublicProfile is the full payload behind /companies/:slug.
type PublicProfile struct {
	Company  *model.Company       `json:"company"`
	Projects []model.Project      `json:"projects"`
	Services []model.Service      `json:"services"`
	Team     []model.TeamMember   `json:"team"`
	Works    []model.Work         `json:"works"`
	Gallery  []model.GalleryImage `json:"gallery"`
}

type ModerationRequest struct {
	Verified   *bool `json:"verified"`
	Restricted *bool `json:"restricted"`
	Banned     *bool `json:"banned"`
}

type CompanyListItem struct {
	Company      *model.Company      `json:"company"`
	Subscription *model.Subscription `json:"subscription,omitempty"`
}
