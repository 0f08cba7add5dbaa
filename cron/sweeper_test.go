package cron

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docta-server/config"
)

type MockSessionExpirer struct {
	mock.Mock
}

func (m *MockSessionExpirer) ExpireDueTransactionally(ctx context.Context, now int64) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func TestRunSessionCleanup_ExpiresDueSessions(t *testing.T) {
	repo := new(MockSessionExpirer)
	repo.On("ExpireDueTransactionally", mock.Anything, mock.AnythingOfType("int64")).Return(int64(3), nil)

	runSessionCleanup(repo)

	repo.AssertExpectations(t)
}

func TestRunSessionCleanup_NothingDue(t *testing.T) {
	repo := new(MockSessionExpirer)
	repo.On("ExpireDueTransactionally", mock.Anything, mock.AnythingOfType("int64")).Return(int64(0), nil)

	runSessionCleanup(repo)

	repo.AssertExpectations(t)
}

func TestRunSessionCleanup_FailureDoesNotPanic(t *testing.T) {
	repo := new(MockSessionExpirer)
	repo.On("ExpireDueTransactionally", mock.Anything, mock.AnythingOfType("int64")).Return(int64(0), errors.New("transaction aborted"))

	assert.NotPanics(t, func() { runSessionCleanup(repo) })
	repo.AssertExpectations(t)
}

func TestStartSessionCleanup_SchedulesAndStops(t *testing.T) {
	config.LoadConfig()
	repo := new(MockSessionExpirer)

	c := StartSessionCleanup(repo)
	assert.NotNil(t, c)
	assert.Len(t, c.Entries(), 1)

	<-c.Stop().Done()
	repo.AssertNotCalled(t, "ExpireDueTransactionally", mock.Anything, mock.Anything)
}
