// Package notification carries matched listings to users over Firebase
// Cloud Messaging.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"flatradar/config"
	"flatradar/internal/domain/entity"
	"flatradar/internal/domain/repository"
	"flatradar/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type firebaseAlertSender struct {
	client   *messaging.Client
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewFirebaseAlertSender creates the FCM-backed alert channel.
func NewFirebaseAlertSender(ctx context.Context, cfg *config.Config, userRepo repository.UserRepository, logger *slog.Logger) (service.AlertSender, error) {
	firebaseCfg := &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	opt := option.WithCredentialsFile(cfg.Firebase.CredentialsPath)

	app, err := firebase.NewApp(ctx, firebaseCfg, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseAlertSender{
		client:   client,
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

// SendAlert pushes one matched listing to every active device of the user.
// It succeeds if at least one device accepted the message; a user with no
// registered devices is not an error.
func (s *firebaseAlertSender) SendAlert(ctx context.Context, user *entity.User, listing *entity.Listing, score *entity.ScoreResult) error {
	devices, err := s.userRepo.FindDevices(ctx, user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to load user devices")
	}
	if len(devices) == 0 {
		s.logger.Debug("user has no active devices, alert dropped",
			slog.String("userID", user.ID.String()),
		)

		return nil
	}

	title := alertTitle(score)
	body := alertBody(listing, score)
	data := map[string]string{
		"listingID":  listing.ID.String(),
		"scoreTotal": fmt.Sprintf("%d", score.Total),
		"badges":     strings.Join(score.Badges, ","),
	}

	delivered := 0
	for _, device := range devices {
		message := &messaging.Message{
			Token: device.FCMToken,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}

		if _, err := s.client.Send(ctx, message); err != nil {
			if messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err) {
				s.logger.Warn("device token rejected by FCM",
					slog.String("userID", user.ID.String()),
					slog.String("deviceID", device.ID.String()),
					slog.Any("error", err),
				)

				continue
			}

			return errors.Wrap(err, "failed to send notification")
		}
		delivered++
	}

	if delivered == 0 {
		return errors.New("no device accepted the notification")
	}

	return nil
}

func alertTitle(score *entity.ScoreResult) string {
	switch {
	case hasBadge(score, entity.BadgePerfectMatch):
		return "Perle rare trouvée !"
	case hasBadge(score, entity.BadgeExceptionalPrice):
		return "Prix exceptionnel repéré !"
	case hasBadge(score, entity.BadgeUrgent):
		return "Annonce urgente pour vous"
	default:
		return "Nouvelle annonce pour vous"
	}
}

func alertBody(listing *entity.Listing, score *entity.ScoreResult) string {
	var parts []string

	if listing.Rooms != nil {
		parts = append(parts, fmt.Sprintf("%.1f pièces", *listing.Rooms))
	} else if listing.DwellingType != "" {
		parts = append(parts, listing.DwellingType)
	}

	place := listing.Neighborhood
	if place == "" {
		place = listing.City
	}
	if place != "" {
		parts = append(parts, place)
	}

	if listing.TotalRent != nil {
		parts = append(parts, fmt.Sprintf("CHF %d/mois", *listing.TotalRent))
	} else if listing.MonthlyRent != nil {
		parts = append(parts, fmt.Sprintf("CHF %d/mois", *listing.MonthlyRent))
	}

	summary := strings.Join(parts, ", ")
	if summary == "" {
		summary = listing.FullAddress
	}

	return fmt.Sprintf("%s (score %d)", summary, score.Total)
}

func hasBadge(score *entity.ScoreResult, badge string) bool {
	for _, b := range score.Badges {
		if b == badge {
			return true
		}
	}

	return false
}
