package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/staff"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

func dashboardEntryForTest(t *testing.T, id uint, lastMessage string, lastIsStaff bool) *ticket.DashboardEntry {
	t.Helper()

	return &ticket.DashboardEntry{
		Ticket:      ticketForTest(t, id, "Open"),
		LastMessage: lastMessage,
		LastIsStaff: lastIsStaff,
	}
}

func TestDashboardUseCase_Execute_SuperuserSeesEverything(t *testing.T) {
	var filter *vo.Department
	filterSet := false

	ticketRepo := &mockTicketRepository{
		ListDashboardFunc: func(ctx context.Context, department *vo.Department) ([]*ticket.DashboardEntry, error) {
			filter = department
			filterSet = true
			return []*ticket.DashboardEntry{
				dashboardEntryForTest(t, 1, "Any update?", false),
				dashboardEntryForTest(t, 2, "Resolved for you.", true),
			}, nil
		},
	}
	profileRepo := &mockProfileRepository{
		FindByAccountIDFunc: func(ctx context.Context, accountID uint) (*staff.Profile, error) {
			return nil, errors.NewNotFoundError("profile not found")
		},
	}

	uc := NewDashboardUseCase(ticketRepo, profileRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), DashboardQuery{AccountID: 1, Superuser: true})
	require.NoError(t, err)

	assert.True(t, filterSet)
	assert.Nil(t, filter)
	assert.Empty(t, result.Scope)
	assert.Equal(t, "Super Admin", result.DisplayDepartment)

	require.Len(t, result.Entries, 2)
	assert.True(t, result.Entries[0].HasNew)
	assert.False(t, result.Entries[1].HasNew)
}

func TestDashboardUseCase_Execute_SuperCommandProfileSeesEverything(t *testing.T) {
	profile, err := staff.ReconstructProfile(4, 9, "Super Command", "Administrator", "admin@ugc.edu.gh")
	require.NoError(t, err)

	var filter *vo.Department
	ticketRepo := &mockTicketRepository{
		ListDashboardFunc: func(ctx context.Context, department *vo.Department) ([]*ticket.DashboardEntry, error) {
			filter = department
			return nil, nil
		},
	}
	profileRepo := &mockProfileRepository{
		FindByAccountIDFunc: func(ctx context.Context, accountID uint) (*staff.Profile, error) {
			return profile, nil
		},
	}

	uc := NewDashboardUseCase(ticketRepo, profileRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), DashboardQuery{AccountID: 9, Superuser: false})
	require.NoError(t, err)

	assert.Nil(t, filter)
	assert.Empty(t, result.Scope)
	assert.Equal(t, "Super Admin", result.DisplayDepartment)
}

func TestDashboardUseCase_Execute_DepartmentStaffScoped(t *testing.T) {
	profile, err := staff.ReconstructProfile(5, 3, "Finance", "Officer", "finance@ugc.edu.gh")
	require.NoError(t, err)

	var filter *vo.Department
	ticketRepo := &mockTicketRepository{
		ListDashboardFunc: func(ctx context.Context, department *vo.Department) ([]*ticket.DashboardEntry, error) {
			filter = department
			return []*ticket.DashboardEntry{dashboardEntryForTest(t, 3, "Fee receipt missing", false)}, nil
		},
	}
	profileRepo := &mockProfileRepository{
		FindByAccountIDFunc: func(ctx context.Context, accountID uint) (*staff.Profile, error) {
			return profile, nil
		},
	}

	uc := NewDashboardUseCase(ticketRepo, profileRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), DashboardQuery{AccountID: 3, Superuser: false})
	require.NoError(t, err)

	require.NotNil(t, filter)
	assert.Equal(t, vo.DepartmentFinance, *filter)
	assert.Equal(t, "Finance", result.Scope)
	assert.Equal(t, "Finance Dept", result.DisplayDepartment)
	require.Len(t, result.Entries, 1)
}

func TestDashboardUseCase_Execute_NoProfileForbidden(t *testing.T) {
	profileRepo := &mockProfileRepository{
		FindByAccountIDFunc: func(ctx context.Context, accountID uint) (*staff.Profile, error) {
			return nil, errors.NewNotFoundError("profile not found")
		},
	}

	uc := NewDashboardUseCase(&mockTicketRepository{}, profileRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), DashboardQuery{AccountID: 8, Superuser: false})
	require.Error(t, err)
	assert.Nil(t, result)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "no department assigned", appErr.Message)
}

func TestDashboardUseCase_Execute_UnknownProfileDepartmentForbidden(t *testing.T) {
	profile, err := staff.ReconstructProfile(6, 4, "Estates", "Officer", "estates@ugc.edu.gh")
	require.NoError(t, err)

	profileRepo := &mockProfileRepository{
		FindByAccountIDFunc: func(ctx context.Context, accountID uint) (*staff.Profile, error) {
			return profile, nil
		},
	}

	uc := NewDashboardUseCase(&mockTicketRepository{}, profileRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), DashboardQuery{AccountID: 4, Superuser: false})
	require.Error(t, err)
	assert.Nil(t, result)
}
