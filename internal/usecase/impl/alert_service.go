package impl

import (
	"context"
	"log/slog"
	"time"

	"flatradar/config"
	"flatradar/internal/domain/entity"
	"flatradar/internal/domain/repository"
	"flatradar/internal/domain/service"
	"flatradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type alertService struct {
	logger      *slog.Logger
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	alertRepo   repository.AlertRepository
	sender      service.AlertSender
	scorer      usecase.ScoringUsecase
	poller      *config.PollerConfig
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	Logger      *slog.Logger
	ListingRepo repository.ListingRepository
	UserRepo    repository.UserRepository
	AlertRepo   repository.AlertRepository
	Sender      service.AlertSender
	Scorer      usecase.ScoringUsecase
	Config      *config.Config
}

// NewAlertService creates the alert-dispatch use case.
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		logger:      params.Logger,
		listingRepo: params.ListingRepo,
		userRepo:    params.UserRepo,
		alertRepo:   params.AlertRepo,
		sender:      params.Sender,
		scorer:      params.Scorer,
		poller:      params.Config.Poller,
	}
}

// RunCycle executes one polling cycle. Only a failed listing or user fetch
// aborts the cycle; everything below that is contained per user or per pair.
func (s *alertService) RunCycle(ctx context.Context) (usecase.CycleStats, error) {
	stats := usecase.CycleStats{}
	started := time.Now()

	listings, err := s.listingRepo.FindRecent(ctx, s.poller.RecencyWindow)
	if err != nil {
		return stats, errors.Wrap(err, "fetch recent listings")
	}

	users, err := s.userRepo.FindAlertable(ctx)
	if err != nil {
		return stats, errors.Wrap(err, "fetch alertable users")
	}

	stats.Listings = len(listings)
	stats.Users = len(users)

	for _, user := range users {
		s.processUser(ctx, user, listings, &stats)
	}

	s.logger.Info("polling cycle finished",
		slog.Int("listings", stats.Listings),
		slog.Int("users", stats.Users),
		slog.Int("evaluated", stats.Evaluated),
		slog.Int("matched", stats.Matched),
		slog.Int("sent", stats.Sent),
		slog.Int("alreadySent", stats.AlreadySent),
		slog.Int("failures", stats.Failures),
		slog.Duration("elapsed", time.Since(started)),
	)

	return stats, nil
}

func (s *alertService) processUser(ctx context.Context, user *entity.User, listings []*entity.Listing, stats *usecase.CycleStats) {
	criteria, err := s.userRepo.FindCriteria(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCriteriaNotFound) {
			stats.Skipped++

			return
		}
		stats.Failures++
		s.logger.Error("fetch criteria failed, skipping user this cycle",
			slog.String("userID", user.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	for _, listing := range listings {
		s.processPair(ctx, user, criteria, listing, stats)
	}
}

// processPair evaluates one (user, listing) pair and dispatches at most one
// alert for it, ever. Failures are logged and counted; they never propagate.
func (s *alertService) processPair(ctx context.Context, user *entity.User, criteria *entity.UserCriteria, listing *entity.Listing, stats *usecase.CycleStats) {
	sent, err := s.alertRepo.Exists(ctx, user.ID, listing.ID)
	if err != nil {
		stats.Failures++
		s.logger.Error("dedup check failed",
			slog.String("userID", user.ID.String()),
			slog.String("listingID", listing.ID.String()),
			slog.Any("error", err),
		)

		return
	}
	if sent {
		stats.AlreadySent++

		return
	}

	stats.Evaluated++
	result := s.scorer.Score(listing, criteria)
	if !result.Matched() {
		return
	}
	stats.Matched++

	// Dispatch first, record after: a failed dispatch leaves no record, so
	// the pair is retried on a later cycle.
	if err := s.sender.SendAlert(ctx, user, listing, result); err != nil {
		stats.Failures++
		s.logger.Error("alert dispatch failed",
			slog.String("userID", user.ID.String()),
			slog.String("listingID", listing.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	alert := &entity.SentAlert{
		ID:             uuid.New(),
		UserID:         user.ID,
		ListingID:      listing.ID,
		ScoreTotal:     result.Total,
		ScoreStrict:    result.StrictScore,
		ScoreComfort:   result.ComfortScore,
		StrictMatches:  result.StrictMatches,
		ComfortMatches: result.ComfortMatches,
		Badges:         result.Badges,
		SentAt:         time.Now(),
	}
	if err := s.alertRepo.Create(ctx, alert); err != nil {
		if errors.Is(err, repository.ErrAlertAlreadySent) {
			// An overlapping cycle won the race; normal outcome.
			stats.AlreadySent++

			return
		}
		stats.Failures++
		s.logger.Error("alert sent but recording failed, pair may be retried",
			slog.String("userID", user.ID.String()),
			slog.String("listingID", listing.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	stats.Sent++
	s.logger.Info("alert sent",
		slog.String("userID", user.ID.String()),
		slog.String("listingID", listing.ID.String()),
		slog.Int("score", result.Total),
	)
}
