package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"influmarket/internal/domain/entity"
	"influmarket/internal/domain/repository"
	"influmarket/pkg/logger"
)

// ReminderUseCase sends the periodic nudge emails. A send failure for one
// recipient is logged and the batch keeps going.
type ReminderUseCase struct {
	userRepo       repository.UserRepository
	influencerRepo repository.InfluencerRepository
	brandRepo      repository.BrandRepository
	campaignRepo   repository.CampaignRepository
	proposalRepo   repository.ProposalRepository
	mailer         EmailSender
}

func NewReminderUseCase(
	userRepo repository.UserRepository,
	influencerRepo repository.InfluencerRepository,
	brandRepo repository.BrandRepository,
	campaignRepo repository.CampaignRepository,
	proposalRepo repository.ProposalRepository,
	mailer EmailSender,
) *ReminderUseCase {
	return &ReminderUseCase{
		userRepo:       userRepo,
		influencerRepo: influencerRepo,
		brandRepo:      brandRepo,
		campaignRepo:   campaignRepo,
		proposalRepo:   proposalRepo,
		mailer:         mailer,
	}
}

// SendDailyReminders nudges every non-admin user who has not been active in
// the last 24 hours.
func (uc *ReminderUseCase) SendDailyReminders(ctx context.Context) (int, error) {
	users, _, err := uc.userRepo.List(ctx, "", 0, 0)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-24 * time.Hour)
	sent := 0
	for _, user := range users {
		if user.Type == entity.UserTypeAdmin || !user.Active {
			continue
		}
		if !user.LastActivity.Before(cutoff) {
			continue
		}

		body := fmt.Sprintf("Hello %s!\n\nNew campaigns are waiting for your proposals and brands are searching for influencers in your niche. Log in and make your mark!\n", user.Username)
		if err := uc.mailer.Send(user.Email, "We miss you!", body); err != nil {
			logger.Warn("Failed to send daily reminder to %s: %v", user.Email, err)
			continue
		}
		sent++
	}
	return sent, nil
}

// SendMonthlySummaries mails influencers a summary of their proposals and
// brands a summary of their campaigns. Users with no activity get nothing.
func (uc *ReminderUseCase) SendMonthlySummaries(ctx context.Context) (int, error) {
	sent := 0

	influencers, _, err := uc.influencerRepo.List(ctx, "", 0, 0)
	if err != nil {
		return 0, err
	}
	for _, influencer := range influencers {
		proposals, _, err := uc.proposalRepo.ListByInfluencer(ctx, influencer.ID, 0, 0)
		if err != nil || len(proposals) == 0 {
			continue
		}

		user, err := uc.userRepo.GetByID(ctx, influencer.UserID)
		if err != nil {
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Hello %s!\n\nYour proposals this month:\n", user.Username)
		for _, p := range proposals {
			fmt.Fprintf(&b, "- bid %.2f, status %s\n", p.BidAmount, p.Status)
		}
		if err := uc.mailer.Send(user.Email, "Your Monthly Proposal Summary", b.String()); err != nil {
			logger.Warn("Failed to send monthly summary to %s: %v", user.Email, err)
			continue
		}
		sent++
	}

	brands, _, err := uc.brandRepo.List(ctx, 0, 0)
	if err != nil {
		return sent, err
	}
	for _, brand := range brands {
		campaigns, _, err := uc.campaignRepo.ListByBrand(ctx, brand.ID, 0, 0)
		if err != nil || len(campaigns) == 0 {
			continue
		}

		user, err := uc.userRepo.GetByID(ctx, brand.UserID)
		if err != nil {
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Hello %s!\n\nYour campaigns this month:\n", brand.Name)
		for _, c := range campaigns {
			fmt.Fprintf(&b, "- %s (%s), budget %.2f\n", c.Title, c.Status, c.Budget)
		}
		if err := uc.mailer.Send(user.Email, "Your Monthly Campaign Summary", b.String()); err != nil {
			logger.Warn("Failed to send monthly summary to %s: %v", user.Email, err)
			continue
		}
		sent++
	}

	return sent, nil
}

// StartScheduler fires the daily job every 24 hours and the monthly job when
// the calendar month changes. It stops when the context is cancelled.
func (uc *ReminderUseCase) StartScheduler(ctx context.Context) {
	go func() {
		daily := time.NewTicker(24 * time.Hour)
		defer daily.Stop()

		lastMonth := time.Now().Month()
		for {
			select {
			case <-daily.C:
				if n, err := uc.SendDailyReminders(ctx); err != nil {
					logger.Error("Daily reminder run failed: %v", err)
				} else {
					logger.Info("Daily reminders sent to %d users", n)
				}

				if now := time.Now(); now.Month() != lastMonth {
					lastMonth = now.Month()
					if n, err := uc.SendMonthlySummaries(ctx); err != nil {
						logger.Error("Monthly summary run failed: %v", err)
					} else {
						logger.Info("Monthly summaries sent to %d recipients", n)
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}
