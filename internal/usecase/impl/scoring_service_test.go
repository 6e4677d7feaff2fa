package impl

import (
	"testing"
	"time"

	"flatradar/config"
	"flatradar/internal/domain/entity"
	"flatradar/internal/infra/locations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func newTestScorer(t *testing.T, mutate func(*config.MatchingConfig)) *scoringService {
	t.Helper()

	resolver, err := locations.NewResolver()
	require.NoError(t, err)

	matching := &config.MatchingConfig{
		GenevaContext:         true,
		TypeVeto:              true,
		PremiumScoreThreshold: 120,
		ExceptionalPriceRatio: 0.85,
	}
	if mutate != nil {
		mutate(matching)
	}
	cfg := &config.Config{Matching: matching}

	return NewScoringService(cfg, resolver).(*scoringService)
}

func plainpalaisListing() *entity.Listing {
	return &entity.Listing{
		FullAddress:  "Rue de Carouge 12",
		City:         "Genève",
		PostalCode:   "1205",
		Neighborhood: "Plainpalais",
		Rooms:        floatPtr(3),
		DwellingType: "Appartement",
		TopFloor:     true,
		Balcony:      true,
		TotalRent:    intPtr(2200),
		MonthlyRent:  intPtr(2000),
		CreatedAt:    time.Now(),
	}
}

func plainpalaisCriteria() *entity.UserCriteria {
	return &entity.UserCriteria{
		Strict: entity.StrictCriteria{
			BudgetMax:     intPtr(2500),
			Zones:         []entity.CanonicalLocation{"Carouge", "Plainpalais"},
			RoomsMin:      floatPtr(3),
			DwellingTypes: []string{"Appartement"},
		},
		Comfort: entity.ComfortCriteria{
			TopFloor: true,
			Balcony:  true,
			Elevator: true,
		},
	}
}

func TestScore_FullMatch(t *testing.T) {
	scorer := newTestScorer(t, nil)

	result := scorer.Score(plainpalaisListing(), plainpalaisCriteria())

	assert.Equal(t, 100, result.StrictScore)
	assert.Equal(t, 9, result.ComfortScore, "top floor 5 + balcony 4; elevator wish cannot match")
	assert.Equal(t, 109, result.Total)
	assert.ElementsMatch(t, []string{"zone", "budget", "rooms", "dwelling_type"}, result.StrictMatches)
	assert.ElementsMatch(t, []string{"top_floor", "balcony"}, result.ComfortMatches)
	assert.Empty(t, result.RejectionReasons)
	assert.Empty(t, result.Badges)
	assert.True(t, result.Matched())
}

func TestScore_BudgetVetoZeroesEverything(t *testing.T) {
	scorer := newTestScorer(t, nil)

	listing := plainpalaisListing()
	listing.TotalRent = intPtr(2600)

	result := scorer.Score(listing, plainpalaisCriteria())

	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0, result.StrictScore)
	assert.Equal(t, 0, result.ComfortScore)
	assert.Empty(t, result.StrictMatches)
	assert.Empty(t, result.ComfortMatches)
	assert.Empty(t, result.Badges)
	require.Len(t, result.RejectionReasons, 1)
	assert.Contains(t, result.RejectionReasons[0], "budget")
	assert.False(t, result.Matched())
}

func TestScore_AllStrictDimensionsRecordedEvenAfterFailure(t *testing.T) {
	scorer := newTestScorer(t, nil)

	listing := plainpalaisListing()
	listing.Neighborhood = "Meyrin"
	listing.PostalCode = "1217"
	listing.City = ""
	listing.TotalRent = intPtr(9000)

	result := scorer.Score(listing, plainpalaisCriteria())

	require.Len(t, result.Checks, 4, "every strict dimension is recorded, comfort is not evaluated")
	assert.Len(t, result.RejectionReasons, 2, "zone and budget both failed")
	assert.Equal(t, 0, result.Total)
}

func TestScore_MissingListingDataGetsBenefitOfDoubt(t *testing.T) {
	scorer := newTestScorer(t, nil)

	listing := plainpalaisListing()
	listing.TotalRent = nil
	listing.Rooms = nil
	listing.DwellingType = ""

	result := scorer.Score(listing, plainpalaisCriteria())

	assert.Equal(t, 100, result.StrictScore)
	assert.True(t, result.Matched())
}

func TestScore_UnresolvableLocationFailsZoneWhenZonesSpecified(t *testing.T) {
	scorer := newTestScorer(t, nil)

	listing := plainpalaisListing()
	listing.Neighborhood = "nowhere"
	listing.PostalCode = "9999"
	listing.City = "nowhere"

	result := scorer.Score(listing, plainpalaisCriteria())
	assert.Equal(t, 0, result.Total)
	require.NotEmpty(t, result.RejectionReasons)
	assert.Contains(t, result.RejectionReasons[0], "zone")

	// With no zone constraint the same listing passes.
	criteria := plainpalaisCriteria()
	criteria.Strict.Zones = nil
	assert.True(t, scorer.Score(listing, criteria).Matched())
}

func TestScore_UnspecifiedCriteriaAutoPass(t *testing.T) {
	scorer := newTestScorer(t, nil)

	result := scorer.Score(plainpalaisListing(), &entity.UserCriteria{})

	assert.Equal(t, 100, result.StrictScore)
	assert.Equal(t, 0, result.ComfortScore)
	assert.True(t, result.Matched())
}

func TestScore_TypeVetoToggle(t *testing.T) {
	listing := plainpalaisListing()
	listing.DwellingType = "Studio"

	// Veto enabled: mismatch zeroes the score.
	strict := newTestScorer(t, nil)
	result := strict.Score(listing, plainpalaisCriteria())
	assert.Equal(t, 0, result.Total)
	require.NotEmpty(t, result.RejectionReasons)
	assert.Contains(t, result.RejectionReasons[0], "dwelling_type")

	// Veto disabled: the dimension is still recorded and awards nothing,
	// but the listing survives.
	lenient := newTestScorer(t, func(m *config.MatchingConfig) { m.TypeVeto = false })
	result = lenient.Score(listing, plainpalaisCriteria())
	assert.Equal(t, 85, result.StrictScore)
	assert.True(t, result.Matched())
	assert.NotContains(t, result.StrictMatches, "dwelling_type")
}

func TestScore_ComfortSubtotalAlwaysWithinCap(t *testing.T) {
	scorer := newTestScorer(t, nil)

	listing := plainpalaisListing()
	listing.Furnished = true
	listing.ParkingIncluded = true
	listing.Terrace = true

	criteria := plainpalaisCriteria()
	criteria.Comfort = entity.ComfortCriteria{
		TopFloor: true, Quiet: true, Balcony: true, Furnished: true,
		Parking: true, Elevator: true, Extras: []string{"cave", "lave-vaisselle"},
	}

	result := scorer.Score(listing, criteria)
	assert.Equal(t, 17, result.ComfortScore, "5+4+4+4, quiet and elevator cannot match")
	assert.LessOrEqual(t, result.ComfortScore, 30)
	assert.Equal(t, 117, result.Total)
}

func TestScore_Badges(t *testing.T) {
	scorer := newTestScorer(t, nil)

	listing := plainpalaisListing()
	listing.TotalRent = intPtr(2000) // 2000 <= 0.85 * 2500
	listing.Urgent = true
	listing.Furnished = true
	listing.ParkingIncluded = true

	criteria := plainpalaisCriteria()
	criteria.Comfort.Furnished = true
	criteria.Comfort.Parking = true

	result := scorer.Score(listing, criteria)
	assert.Equal(t, 117, result.Total)
	assert.Contains(t, result.Badges, entity.BadgeExceptionalPrice)
	assert.Contains(t, result.Badges, entity.BadgeUrgent)
	assert.NotContains(t, result.Badges, entity.BadgePerfectMatch, "total must exceed the premium threshold")

	// Lower the threshold and the badge appears.
	premium := newTestScorer(t, func(m *config.MatchingConfig) { m.PremiumScoreThreshold = 110 })
	result = premium.Score(listing, criteria)
	assert.Contains(t, result.Badges, entity.BadgePerfectMatch)
}

func TestScore_DeterministicAndSideEffectFree(t *testing.T) {
	scorer := newTestScorer(t, nil)

	listing := plainpalaisListing()
	criteria := plainpalaisCriteria()

	first := scorer.Score(listing, criteria)
	second := scorer.Score(listing, criteria)
	assert.Equal(t, first, second)
}

func TestScore_RoomRangeBounds(t *testing.T) {
	scorer := newTestScorer(t, nil)

	criteria := plainpalaisCriteria()
	criteria.Strict.RoomsMin = floatPtr(3)
	criteria.Strict.RoomsMax = floatPtr(4.5)

	listing := plainpalaisListing()
	listing.Rooms = floatPtr(4.5)
	assert.True(t, scorer.Score(listing, criteria).Matched())

	listing.Rooms = floatPtr(5)
	assert.False(t, scorer.Score(listing, criteria).Matched())

	listing.Rooms = floatPtr(2.5)
	assert.False(t, scorer.Score(listing, criteria).Matched())
}

func TestScore_AvailabilityIsNotScored(t *testing.T) {
	// The desired availability travels with the strict block but no listing
	// dimension scores it; it must not affect the outcome.
	scorer := newTestScorer(t, nil)

	criteria := plainpalaisCriteria()
	criteria.Strict.AvailableFrom = timePtr(time.Now().AddDate(0, 1, 0))

	assert.Equal(t, 109, scorer.Score(plainpalaisListing(), criteria).Total)
}
