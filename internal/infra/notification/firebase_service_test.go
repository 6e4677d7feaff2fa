package notification

import (
	"testing"

	"flatradar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestAlertTitle_PicksStrongestBadge(t *testing.T) {
	assert.Equal(t, "Nouvelle annonce pour vous", alertTitle(&entity.ScoreResult{}))
	assert.Equal(t, "Annonce urgente pour vous", alertTitle(&entity.ScoreResult{
		Badges: []string{entity.BadgeUrgent},
	}))
	assert.Equal(t, "Prix exceptionnel repéré !", alertTitle(&entity.ScoreResult{
		Badges: []string{entity.BadgeUrgent, entity.BadgeExceptionalPrice},
	}))
	assert.Equal(t, "Perle rare trouvée !", alertTitle(&entity.ScoreResult{
		Badges: []string{entity.BadgeExceptionalPrice, entity.BadgePerfectMatch},
	}))
}

func TestAlertBody_SummarizesAvailableFields(t *testing.T) {
	rooms := 3.5
	rent := 2200
	listing := &entity.Listing{
		Rooms:        &rooms,
		Neighborhood: "Plainpalais",
		TotalRent:    &rent,
	}

	body := alertBody(listing, &entity.ScoreResult{Total: 109})
	assert.Equal(t, "3.5 pièces, Plainpalais, CHF 2200/mois (score 109)", body)
}

func TestAlertBody_FallsBackToAddress(t *testing.T) {
	listing := &entity.Listing{FullAddress: "Rue de la Servette 4"}

	body := alertBody(listing, &entity.ScoreResult{Total: 85})
	assert.Equal(t, "Rue de la Servette 4 (score 85)", body)
}
