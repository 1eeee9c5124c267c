package model

// Statistic holds one row per company per calendar date. Counters are
// bumped with a single SQL upsert so concurrent visits cannot lose
// increments.
type Statistic struct {
	ID             int64  `gorm:"primaryKey" json:"id"`
	CompanyID      int64  `gorm:"not null;uniqueIndex:idx_stats_company_date" json:"company_id"`
	Date           string `gorm:"size:10;not null;uniqueIndex:idx_stats_company_date" json:"date"` // YYYY-MM-DD
	Visits         int    `gorm:"default:0" json:"visits"`
	PhoneClicks    int    `gorm:"default:0" json:"phone_clicks"`
	WhatsappClicks int    `gorm:"default:0" json:"whatsapp_clicks"`
	FacebookClicks int    `gorm:"default:0" json:"facebook_clicks"`
}

func (Statistic) TableName() string {
	return "statistics"
}
