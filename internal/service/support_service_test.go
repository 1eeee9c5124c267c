package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/repository"
	"github.com/moqawil/moqawil_server/internal/testutil"
)

func newSupportService(db *gorm.DB) *SupportService {
	return NewSupportService(db, repository.NewTicketRepo(db), newNotificationService(db))
}

func TestTicketLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newSupportService(db)

	user := testutil.CreateUser(t, db)
	company := testutil.CreateCompany(t, db, user)

	ticket, err := svc.Create(company.ID, &dto.CreateTicketRequest{Message: "لا أستطيع رفع الصور"})
	require.NoError(t, err)
	assert.Equal(t, model.TicketNew, ticket.Status)

	replied, err := svc.Reply(ticket.ID, &dto.ReplyTicketRequest{Reply: "تم حل المشكلة، حاول مجدداً"})
	require.NoError(t, err)
	assert.Equal(t, model.TicketReplied, replied.Status)
	assert.Equal(t, "تم حل المشكلة، حاول مجدداً", replied.Reply)

	// The reply lands in the company's notifications.
	var n model.Notification
	require.NoError(t, db.Where("company_id = ?", company.ID).First(&n).Error)
	assert.Equal(t, model.SenderSupport, n.SenderType)

	require.NoError(t, svc.Close(ticket.ID))

	_, err = svc.Reply(ticket.ID, &dto.ReplyTicketRequest{Reply: "رد متأخر"})
	assert.ErrorIs(t, err, ErrTicketClosed)
}

func TestTicketAdminQueueOrdering(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newSupportService(db)

	user := testutil.CreateUser(t, db)
	company := testutil.CreateCompany(t, db, user)

	first, err := svc.Create(company.ID, &dto.CreateTicketRequest{Message: "الأولى"})
	require.NoError(t, err)
	_, err = svc.Create(company.ID, &dto.CreateTicketRequest{Message: "الثانية"})
	require.NoError(t, err)

	_, err = svc.Reply(first.ID, &dto.ReplyTicketRequest{Reply: "رد"})
	require.NoError(t, err)

	tickets, total, err := svc.List("", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	// New tickets come before replied ones.
	assert.Equal(t, model.TicketNew, tickets[0].Status)

	newOnly, total, err := svc.List(model.TicketNew, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "الثانية", newOnly[0].Message)
}

func TestReplyUnknownTicket(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newSupportService(db)

	_, err := svc.Reply(999, &dto.ReplyTicketRequest{Reply: "رد"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
