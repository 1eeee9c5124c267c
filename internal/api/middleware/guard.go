package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/pkg/response"
	"github.com/moqawil/moqawil_server/internal/repository"
)

// RequireCompany resolves the caller's company and stores it in the
// context. Banned companies are cut off here, whatever their
// subscription says.
func RequireCompany(companyRepo *repository.CompanyRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		company, err := companyRepo.GetByUserID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.PermissionError(c, "")
			} else {
				response.ServerError(c, "")
			}
			c.Abort()
			return
		}

		if company.Banned {
			response.BannedError(c)
			c.Abort()
			return
		}

		c.Set(CompanyKey, company)
		c.Next()
	}
}

// RequireActiveSubscription gates the dashboard: the company's current
// subscription must exist and be active. Runs after RequireCompany.
func RequireActiveSubscription(subRepo *repository.SubscriptionRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		company := GetCompany(c)
		if company == nil || company.CurrentSubscriptionID == nil {
			response.PaymentPendingError(c)
			c.Abort()
			return
		}

		sub, err := subRepo.GetByID(*company.CurrentSubscriptionID)
		if err != nil || sub.Status != model.SubscriptionActive {
			response.PaymentPendingError(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
