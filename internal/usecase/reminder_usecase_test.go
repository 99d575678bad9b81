package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influmarket/internal/domain/entity"
)

type fakeMailer struct {
	sent    []string
	failFor map[string]bool
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.failFor[to] {
		return fmt.Errorf("smtp refused %s", to)
	}
	m.sent = append(m.sent, to)
	return nil
}

func TestDailyRemindersTargetInactiveUsers(t *testing.T) {
	w := newMarketWorld(t)
	ctx := context.Background()

	stale := time.Now().Add(-48 * time.Hour)
	for _, id := range []string{w.influencerUserID, w.brandUserID} {
		user, err := w.users.GetByID(ctx, id)
		require.NoError(t, err)
		user.LastActivity = stale
	}
	active, err := w.users.GetByID(ctx, w.outsiderUserID)
	require.NoError(t, err)
	active.LastActivity = time.Now()

	mailer := &fakeMailer{}
	uc := NewReminderUseCase(w.users, w.influencers, w.brands, w.campaigns, w.proposals, mailer)

	sent, err := uc.SendDailyReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.ElementsMatch(t, []string{"inf@example.com", "brand@example.com"}, mailer.sent)
}

func TestDailyRemindersContinueAfterSendFailure(t *testing.T) {
	w := newMarketWorld(t)
	ctx := context.Background()

	stale := time.Now().Add(-48 * time.Hour)
	for _, id := range []string{w.influencerUserID, w.brandUserID, w.outsiderUserID} {
		user, err := w.users.GetByID(ctx, id)
		require.NoError(t, err)
		user.LastActivity = stale
	}

	mailer := &fakeMailer{failFor: map[string]bool{"inf@example.com": true}}
	uc := NewReminderUseCase(w.users, w.influencers, w.brands, w.campaigns, w.proposals, mailer)

	sent, err := uc.SendDailyReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sent, "one failed recipient does not abort the batch")
}

func TestMonthlySummariesSkipIdleAccounts(t *testing.T) {
	w := newMarketWorld(t)
	ctx := context.Background()

	// The outsider influencer has no proposals, so no summary for them.
	require.NoError(t, w.users.Create(ctx, &entity.User{ID: "user-idle-brand", Email: "idle@example.com", Username: "idle", Type: entity.UserTypeBrand, Active: true}))
	require.NoError(t, w.brands.Create(ctx, &entity.Brand{ID: "prof-idle-brand", UserID: "user-idle-brand", Name: "Idle Co"}))

	mailer := &fakeMailer{}
	uc := NewReminderUseCase(w.users, w.influencers, w.brands, w.campaigns, w.proposals, mailer)

	sent, err := uc.SendMonthlySummaries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.ElementsMatch(t, []string{"inf@example.com", "brand@example.com"}, mailer.sent)
}
