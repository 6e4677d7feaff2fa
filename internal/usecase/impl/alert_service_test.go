package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"flatradar/config"
	"flatradar/internal/domain/entity"
	"flatradar/internal/domain/repository"
	mockRepo "flatradar/internal/mocks/repository"
	mockSvc "flatradar/internal/mocks/service"
	"flatradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type alertServiceFixture struct {
	service     usecase.AlertUsecase
	listingRepo *mockRepo.MockListingRepository
	userRepo    *mockRepo.MockUserRepository
	alertRepo   *mockRepo.MockAlertRepository
	sender      *mockSvc.MockAlertSender
	poller      *config.PollerConfig
}

func newAlertServiceFixture(t *testing.T) *alertServiceFixture {
	t.Helper()

	f := &alertServiceFixture{
		listingRepo: mockRepo.NewMockListingRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		alertRepo:   mockRepo.NewMockAlertRepository(t),
		sender:      mockSvc.NewMockAlertSender(t),
		poller: &config.PollerConfig{
			Interval:      3 * time.Minute,
			RecencyWindow: 48 * time.Hour,
		},
	}

	scorer := newTestScorer(t, nil)
	cfg := &config.Config{
		Matching: scorer.matching,
		Poller:   f.poller,
	}

	f.service = NewAlertService(AlertServiceParams{
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		ListingRepo: f.listingRepo,
		UserRepo:    f.userRepo,
		AlertRepo:   f.alertRepo,
		Sender:      f.sender,
		Scorer:      scorer,
		Config:      cfg,
	})

	return f
}

func alertableUser() *entity.User {
	return &entity.User{
		ID:                  uuid.New(),
		IsActive:            true,
		OnboardingCompleted: true,
	}
}

func TestAlertService_RunCycle_SendsAndRecords(t *testing.T) {
	f := newAlertServiceFixture(t)
	ctx := context.Background()

	user := alertableUser()
	listing := plainpalaisListing()
	listing.ID = uuid.New()
	criteria := plainpalaisCriteria()
	criteria.UserID = user.ID

	f.listingRepo.EXPECT().
		FindRecent(ctx, 48*time.Hour).
		Return([]*entity.Listing{listing}, nil)
	f.userRepo.EXPECT().
		FindAlertable(ctx).
		Return([]*entity.User{user}, nil)
	f.userRepo.EXPECT().
		FindCriteria(ctx, user.ID).
		Return(criteria, nil)
	f.alertRepo.EXPECT().
		Exists(ctx, user.ID, listing.ID).
		Return(false, nil)
	f.sender.EXPECT().
		SendAlert(ctx, user, listing, mock.AnythingOfType("*entity.ScoreResult")).
		Return(nil)
	f.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SentAlert")).
		Run(func(_ context.Context, alert *entity.SentAlert) {
			assert.Equal(t, user.ID, alert.UserID)
			assert.Equal(t, listing.ID, alert.ListingID)
			assert.Equal(t, 109, alert.ScoreTotal)
			assert.Equal(t, 100, alert.ScoreStrict)
			assert.Equal(t, 9, alert.ScoreComfort)
		}).
		Return(nil)

	stats, err := f.service.RunCycle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Listings)
	assert.Equal(t, 1, stats.Users)
	assert.Equal(t, 1, stats.Evaluated)
	assert.Equal(t, 1, stats.Matched)
	assert.Equal(t, 1, stats.Sent)
	assert.Zero(t, stats.Failures)
}

func TestAlertService_RunCycle_DedupSkipsScoringAndDispatch(t *testing.T) {
	f := newAlertServiceFixture(t)
	ctx := context.Background()

	user := alertableUser()
	listing := plainpalaisListing()
	listing.ID = uuid.New()
	criteria := plainpalaisCriteria()
	criteria.UserID = user.ID

	f.listingRepo.EXPECT().
		FindRecent(ctx, 48*time.Hour).
		Return([]*entity.Listing{listing}, nil)
	f.userRepo.EXPECT().
		FindAlertable(ctx).
		Return([]*entity.User{user}, nil)
	f.userRepo.EXPECT().
		FindCriteria(ctx, user.ID).
		Return(criteria, nil)
	f.alertRepo.EXPECT().
		Exists(ctx, user.ID, listing.ID).
		Return(true, nil)

	stats, err := f.service.RunCycle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.AlreadySent)
	assert.Zero(t, stats.Evaluated)
	assert.Zero(t, stats.Sent)
}

func TestAlertService_RunCycle_NoCriteriaSkipsUser(t *testing.T) {
	f := newAlertServiceFixture(t)
	ctx := context.Background()

	user := alertableUser()
	listing := plainpalaisListing()
	listing.ID = uuid.New()

	f.listingRepo.EXPECT().
		FindRecent(ctx, 48*time.Hour).
		Return([]*entity.Listing{listing}, nil)
	f.userRepo.EXPECT().
		FindAlertable(ctx).
		Return([]*entity.User{user}, nil)
	f.userRepo.EXPECT().
		FindCriteria(ctx, user.ID).
		Return(nil, repository.ErrCriteriaNotFound)

	stats, err := f.service.RunCycle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
	assert.Zero(t, stats.Evaluated)
	assert.Zero(t, stats.Failures)
}

func TestAlertService_RunCycle_DispatchFailureLeavesNoRecord(t *testing.T) {
	f := newAlertServiceFixture(t)
	ctx := context.Background()

	user := alertableUser()
	listing := plainpalaisListing()
	listing.ID = uuid.New()
	criteria := plainpalaisCriteria()
	criteria.UserID = user.ID

	f.listingRepo.EXPECT().
		FindRecent(ctx, 48*time.Hour).
		Return([]*entity.Listing{listing}, nil)
	f.userRepo.EXPECT().
		FindAlertable(ctx).
		Return([]*entity.User{user}, nil)
	f.userRepo.EXPECT().
		FindCriteria(ctx, user.ID).
		Return(criteria, nil)
	f.alertRepo.EXPECT().
		Exists(ctx, user.ID, listing.ID).
		Return(false, nil)
	f.sender.EXPECT().
		SendAlert(ctx, user, listing, mock.AnythingOfType("*entity.ScoreResult")).
		Return(errors.New("push channel unavailable"))

	stats, err := f.service.RunCycle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Matched)
	assert.Equal(t, 1, stats.Failures)
	assert.Zero(t, stats.Sent)
	f.alertRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAlertService_RunCycle_RecordRaceCountsAlreadySent(t *testing.T) {
	f := newAlertServiceFixture(t)
	ctx := context.Background()

	user := alertableUser()
	listing := plainpalaisListing()
	listing.ID = uuid.New()
	criteria := plainpalaisCriteria()
	criteria.UserID = user.ID

	f.listingRepo.EXPECT().
		FindRecent(ctx, 48*time.Hour).
		Return([]*entity.Listing{listing}, nil)
	f.userRepo.EXPECT().
		FindAlertable(ctx).
		Return([]*entity.User{user}, nil)
	f.userRepo.EXPECT().
		FindCriteria(ctx, user.ID).
		Return(criteria, nil)
	f.alertRepo.EXPECT().
		Exists(ctx, user.ID, listing.ID).
		Return(false, nil)
	f.sender.EXPECT().
		SendAlert(ctx, user, listing, mock.AnythingOfType("*entity.ScoreResult")).
		Return(nil)
	f.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SentAlert")).
		Return(repository.ErrAlertAlreadySent)

	stats, err := f.service.RunCycle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.AlreadySent)
	assert.Zero(t, stats.Sent)
	assert.Zero(t, stats.Failures, "losing the record race is not a fault")
}

func TestAlertService_RunCycle_NonMatchingPairNotDispatched(t *testing.T) {
	f := newAlertServiceFixture(t)
	ctx := context.Background()

	user := alertableUser()
	listing := plainpalaisListing()
	listing.ID = uuid.New()
	listing.TotalRent = intPtr(4000)
	criteria := plainpalaisCriteria()
	criteria.UserID = user.ID

	f.listingRepo.EXPECT().
		FindRecent(ctx, 48*time.Hour).
		Return([]*entity.Listing{listing}, nil)
	f.userRepo.EXPECT().
		FindAlertable(ctx).
		Return([]*entity.User{user}, nil)
	f.userRepo.EXPECT().
		FindCriteria(ctx, user.ID).
		Return(criteria, nil)
	f.alertRepo.EXPECT().
		Exists(ctx, user.ID, listing.ID).
		Return(false, nil)

	stats, err := f.service.RunCycle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Evaluated)
	assert.Zero(t, stats.Matched)
	f.sender.AssertNotCalled(t, "SendAlert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAlertService_RunCycle_ListingFetchAbortsCycle(t *testing.T) {
	f := newAlertServiceFixture(t)
	ctx := context.Background()

	f.listingRepo.EXPECT().
		FindRecent(ctx, 48*time.Hour).
		Return(nil, errors.New("connection refused"))

	_, err := f.service.RunCycle(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch recent listings")
	f.userRepo.AssertNotCalled(t, "FindAlertable", mock.Anything)
}

func TestAlertService_RunCycle_UserFailureDoesNotStopSiblings(t *testing.T) {
	f := newAlertServiceFixture(t)
	ctx := context.Background()

	broken := alertableUser()
	healthy := alertableUser()
	listing := plainpalaisListing()
	listing.ID = uuid.New()
	criteria := plainpalaisCriteria()
	criteria.UserID = healthy.ID

	f.listingRepo.EXPECT().
		FindRecent(ctx, 48*time.Hour).
		Return([]*entity.Listing{listing}, nil)
	f.userRepo.EXPECT().
		FindAlertable(ctx).
		Return([]*entity.User{broken, healthy}, nil)
	f.userRepo.EXPECT().
		FindCriteria(ctx, broken.ID).
		Return(nil, errors.New("criteria table unreachable"))
	f.userRepo.EXPECT().
		FindCriteria(ctx, healthy.ID).
		Return(criteria, nil)
	f.alertRepo.EXPECT().
		Exists(ctx, healthy.ID, listing.ID).
		Return(false, nil)
	f.sender.EXPECT().
		SendAlert(ctx, healthy, listing, mock.AnythingOfType("*entity.ScoreResult")).
		Return(nil)
	f.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SentAlert")).
		Return(nil)

	stats, err := f.service.RunCycle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Failures)
	assert.Equal(t, 1, stats.Sent)
}

func TestAlertService_RunCycle_EmptyWindowDoesNothing(t *testing.T) {
	f := newAlertServiceFixture(t)
	ctx := context.Background()

	user := alertableUser()
	criteria := plainpalaisCriteria()
	criteria.UserID = user.ID

	f.listingRepo.EXPECT().
		FindRecent(ctx, 48*time.Hour).
		Return([]*entity.Listing{}, nil)
	f.userRepo.EXPECT().
		FindAlertable(ctx).
		Return([]*entity.User{user}, nil)
	f.userRepo.EXPECT().
		FindCriteria(ctx, user.ID).
		Return(criteria, nil)

	stats, err := f.service.RunCycle(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Listings)
	assert.Zero(t, stats.Evaluated)
	assert.Zero(t, stats.Sent)
}
