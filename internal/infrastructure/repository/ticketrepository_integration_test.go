package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.TicketModel{},
		&models.TicketMessageModel{},
		&models.StudentMasterModel{},
		&models.StaffMasterModel{},
		&models.StaffAccountModel{},
		&models.StaffProfileModel{},
	)
	require.NoError(t, err)

	return database
}

func createTestTicket(t *testing.T, department vo.Department, subject string) *ticket.Ticket {
	tk, err := ticket.NewTicket("Ama Mensah", "ama@example.com", "0244000000", vo.UserTypeVisitor, department, subject, "Initial enquiry message.")
	require.NoError(t, err)
	return tk
}

func saveTicketWithSeed(t *testing.T, ticketRepo *TicketRepository, messageRepo *MessageRepository, department vo.Department, subject string) *ticket.Ticket {
	t.Helper()
	ctx := context.Background()

	tk := createTestTicket(t, department, subject)
	require.NoError(t, ticketRepo.Save(ctx, tk))

	seed, err := ticket.NewMessage(tk.ID(), nil, tk.Name(), tk.Message(), false)
	require.NoError(t, err)
	require.NoError(t, messageRepo.Save(ctx, seed))

	return tk
}

func TestTicketRepository_SaveAndFind(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTicketRepository(database)
	ctx := context.Background()

	tk := createTestTicket(t, vo.DepartmentIT, "Portal login issue")
	err := repo.Save(ctx, tk)
	require.NoError(t, err)
	assert.NotZero(t, tk.ID())

	found, err := repo.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, tk.ID(), found.ID())
	assert.Equal(t, "Ama Mensah", found.Name())
	assert.Equal(t, vo.DepartmentIT, found.Department())
	assert.Equal(t, "Open", found.Status())
	assert.Nil(t, found.LastReplyBy())
}

func TestTicketRepository_FindByID_NotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTicketRepository(database)

	found, err := repo.FindByID(context.Background(), 404)
	require.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTicketRepository_Update(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTicketRepository(database)
	ctx := context.Background()

	tk := createTestTicket(t, vo.DepartmentFinance, "Fee receipt missing")
	require.NoError(t, repo.Save(ctx, tk))

	tk.ApplyReply("Your receipt has been reissued.", true)
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	require.NotNil(t, found.LastReplyBy())
	assert.Equal(t, vo.ReplyByStaff, *found.LastReplyBy())
	assert.Equal(t, "Your receipt has been reissued.", found.ReplyMessage())
}

func TestTicketRepository_Delete_CascadesMessages(t *testing.T) {
	database := setupTestDB(t)
	ticketRepo := NewTicketRepository(database)
	messageRepo := NewMessageRepository(database)
	ctx := context.Background()

	tk := saveTicketWithSeed(t, ticketRepo, messageRepo, vo.DepartmentIT, "To be deleted")

	reply, err := ticket.NewMessage(tk.ID(), nil, "Kofi Boateng", "On it.", true)
	require.NoError(t, err)
	require.NoError(t, messageRepo.Save(ctx, reply))

	require.NoError(t, ticketRepo.Delete(ctx, tk.ID()))

	_, err = ticketRepo.FindByID(ctx, tk.ID())
	assert.True(t, errors.IsNotFoundError(err))

	var count int64
	require.NoError(t, database.Model(&models.TicketMessageModel{}).Where("ticket_id = ?", tk.ID()).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTicketRepository_Delete_NotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTicketRepository(database)

	err := repo.Delete(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTicketRepository_DeleteBatch(t *testing.T) {
	database := setupTestDB(t)
	ticketRepo := NewTicketRepository(database)
	messageRepo := NewMessageRepository(database)
	ctx := context.Background()

	tk1 := saveTicketWithSeed(t, ticketRepo, messageRepo, vo.DepartmentIT, "First")
	tk2 := saveTicketWithSeed(t, ticketRepo, messageRepo, vo.DepartmentIT, "Second")
	tk3 := saveTicketWithSeed(t, ticketRepo, messageRepo, vo.DepartmentHR, "Kept")

	deleted, err := ticketRepo.DeleteBatch(ctx, []uint{tk1.ID(), tk2.ID(), 9999})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = ticketRepo.FindByID(ctx, tk3.ID())
	assert.NoError(t, err)

	var count int64
	require.NoError(t, database.Model(&models.TicketMessageModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTicketRepository_ListDashboard(t *testing.T) {
	database := setupTestDB(t)
	ticketRepo := NewTicketRepository(database)
	messageRepo := NewMessageRepository(database)
	ctx := context.Background()

	itTicket := saveTicketWithSeed(t, ticketRepo, messageRepo, vo.DepartmentIT, "Portal login issue")
	hrTicket := saveTicketWithSeed(t, ticketRepo, messageRepo, vo.DepartmentHR, "Leave balance query")

	staffReply, err := ticket.NewMessage(itTicket.ID(), nil, "Kofi Boateng", "Password reset done.", true)
	require.NoError(t, err)
	require.NoError(t, messageRepo.Save(ctx, staffReply))

	userFollowup, err := ticket.NewMessage(itTicket.ID(), nil, "Ama Mensah", "Still cannot log in.", false)
	require.NoError(t, err)
	require.NoError(t, messageRepo.Save(ctx, userFollowup))

	t.Run("department filter", func(t *testing.T) {
		dept := vo.DepartmentIT
		entries, err := ticketRepo.ListDashboard(ctx, &dept)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		entry := entries[0]
		assert.Equal(t, itTicket.ID(), entry.Ticket.ID())
		assert.Equal(t, "Still cannot log in.", entry.LastMessage)
		assert.False(t, entry.LastIsStaff)
		assert.Equal(t, "Kofi Boateng", entry.LastStaffName)
		assert.True(t, entry.HasUnreadUserActivity())
	})

	t.Run("university-wide listing", func(t *testing.T) {
		entries, err := ticketRepo.ListDashboard(ctx, nil)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		ids := []uint{entries[0].Ticket.ID(), entries[1].Ticket.ID()}
		assert.Contains(t, ids, itTicket.ID())
		assert.Contains(t, ids, hrTicket.ID())
	})

	t.Run("ticket with only a staff tail has no new flag", func(t *testing.T) {
		dept := vo.DepartmentHR
		entries, err := ticketRepo.ListDashboard(ctx, &dept)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		closing, err := ticket.NewMessage(hrTicket.ID(), nil, "Efua Owusu", "Balance is 12 days.", true)
		require.NoError(t, err)
		require.NoError(t, messageRepo.Save(ctx, closing))

		entries, err = ticketRepo.ListDashboard(ctx, &dept)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Balance is 12 days.", entries[0].LastMessage)
		assert.True(t, entries[0].LastIsStaff)
		assert.False(t, entries[0].HasUnreadUserActivity())
	})
}

func TestTicketRepository_ListDashboard_OrdersByLastActivity(t *testing.T) {
	database := setupTestDB(t)
	ticketRepo := NewTicketRepository(database)
	messageRepo := NewMessageRepository(database)
	ctx := context.Background()

	older := saveTicketWithSeed(t, ticketRepo, messageRepo, vo.DepartmentIT, "Older")
	newer := saveTicketWithSeed(t, ticketRepo, messageRepo, vo.DepartmentIT, "Newer")

	// Pin the activity timestamps so the ordering is deterministic.
	require.NoError(t, database.Model(&models.TicketModel{}).Where("id = ?", older.ID()).Update("updated_at", int64(1000)).Error)
	require.NoError(t, database.Model(&models.TicketModel{}).Where("id = ?", newer.ID()).Update("updated_at", int64(2000)).Error)

	entries, err := ticketRepo.ListDashboard(ctx, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, newer.ID(), entries[0].Ticket.ID())
	assert.Equal(t, older.ID(), entries[1].Ticket.ID())
}

func TestMessageRepository_ListByTicketID(t *testing.T) {
	database := setupTestDB(t)
	ticketRepo := NewTicketRepository(database)
	messageRepo := NewMessageRepository(database)
	ctx := context.Background()

	tk := saveTicketWithSeed(t, ticketRepo, messageRepo, vo.DepartmentIT, "Threaded")

	reply, err := ticket.NewMessage(tk.ID(), nil, "Kofi Boateng", "First reply.", true)
	require.NoError(t, err)
	require.NoError(t, messageRepo.Save(ctx, reply))

	parentID := reply.ID()
	nested, err := ticket.NewMessage(tk.ID(), &parentID, "Ama Mensah", "Nested reply.", false)
	require.NoError(t, err)
	require.NoError(t, messageRepo.Save(ctx, nested))

	messages, err := messageRepo.ListByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, messages, 3)

	assert.Equal(t, "Initial enquiry message.", messages[0].Body())
	assert.Equal(t, "First reply.", messages[1].Body())
	assert.Equal(t, "Nested reply.", messages[2].Body())
	require.NotNil(t, messages[2].ParentID())
	assert.Equal(t, reply.ID(), *messages[2].ParentID())
}

func TestMessageRepository_Exists(t *testing.T) {
	database := setupTestDB(t)
	ticketRepo := NewTicketRepository(database)
	messageRepo := NewMessageRepository(database)
	ctx := context.Background()

	tk := saveTicketWithSeed(t, ticketRepo, messageRepo, vo.DepartmentIT, "Exists check")

	messages, err := messageRepo.ListByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, messages, 1)

	exists, err := messageRepo.Exists(ctx, messages[0].ID())
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = messageRepo.Exists(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, exists)
}
