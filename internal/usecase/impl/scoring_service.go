// Package impl contains the concrete implementations of the use-case layer.
package impl

import (
	"fmt"
	"strings"

	"flatradar/config"
	"flatradar/internal/domain/entity"
	"flatradar/internal/infra/locations"
	"flatradar/internal/usecase"
)

// Strict criterion weights. A strict criterion either awards its full weight
// or vetoes the whole score.
const (
	zoneWeight   = 30
	budgetWeight = 30
	roomsWeight  = 25
	typeWeight   = 15
)

// Comfort bonus points, awarded on top of a passing strict phase.
const (
	topFloorPoints  = 5
	balconyPoints   = 4
	furnishedPoints = 4
	parkingPoints   = 4
	quietPoints     = 4
	elevatorPoints  = 4

	comfortCap = 30
)

// Strict criterion names used in match lists and checks.
const (
	criterionZone    = "zone"
	criterionBudget  = "budget"
	criterionRooms   = "rooms"
	criterionType    = "dwelling_type"
	criterionTop     = "top_floor"
	criterionQuiet   = "quiet"
	criterionBalcony = "balcony"
	criterionFurn    = "furnished"
	criterionParking = "parking"
	criterionLift    = "elevator"
)

type scoringService struct {
	resolver *locations.Resolver
	matching *config.MatchingConfig
}

// NewScoringService creates the scoring engine. The returned service holds
// only immutable state and is safe for concurrent use.
func NewScoringService(cfg *config.Config, resolver *locations.Resolver) usecase.ScoringUsecase {
	return &scoringService{
		resolver: resolver,
		matching: cfg.Matching,
	}
}

// strictCheck is the outcome of one strict dimension before the veto is
// applied. vetoes tells whether a failure of this dimension zeroes the score;
// the dwelling-type dimension can be configured not to.
type strictCheck struct {
	check  entity.CriterionCheck
	vetoes bool
}

func (s *scoringService) Score(listing *entity.Listing, criteria *entity.UserCriteria) *entity.ScoreResult {
	result := &entity.ScoreResult{}

	// Strict phase: evaluate and record every dimension, veto at the end.
	strictChecks := []strictCheck{
		s.checkZone(listing, criteria),
		s.checkBudget(listing, criteria),
		s.checkRooms(listing, criteria),
		s.checkDwellingType(listing, criteria),
	}

	vetoed := false
	for _, sc := range strictChecks {
		result.Checks = append(result.Checks, sc.check)
		if !sc.check.Passed && sc.vetoes {
			vetoed = true
			result.RejectionReasons = append(result.RejectionReasons,
				fmt.Sprintf("%s: %s", sc.check.Name, sc.check.Explanation))
		}
	}

	if vetoed {
		// Strict-AND-veto: the audit trail survives, everything else is
		// zeroed and comfort is not evaluated.
		return result
	}

	for _, sc := range strictChecks {
		if !sc.check.Passed {
			continue
		}
		result.StrictScore += sc.check.Awarded
		result.StrictMatches = append(result.StrictMatches, sc.check.Name)
	}

	// Comfort phase: bonuses only, never fatal.
	comfort := 0
	for _, check := range s.comfortChecks(listing, criteria) {
		result.Checks = append(result.Checks, check)
		if check.Passed {
			comfort += check.Awarded
			result.ComfortMatches = append(result.ComfortMatches, check.Name)
		}
	}
	if comfort > comfortCap {
		comfort = comfortCap
	}
	result.ComfortScore = comfort
	result.Total = result.StrictScore + result.ComfortScore

	result.Badges = s.badges(listing, criteria, result.Total)

	return result
}

func (s *scoringService) checkZone(listing *entity.Listing, criteria *entity.UserCriteria) strictCheck {
	check := entity.CriterionCheck{Name: criterionZone, Strict: true, Possible: zoneWeight}

	zones := criteria.Strict.Zones
	if len(zones) == 0 {
		check.Passed = true
		check.Awarded = zoneWeight
		check.Explanation = "no zone constraint"

		return strictCheck{check: check, vetoes: true}
	}

	resolved := s.resolver.ResolveListing(listing, s.matching.GenevaContext)
	wanted := make(map[entity.CanonicalLocation]struct{}, len(zones))
	for _, zone := range zones {
		wanted[zone] = struct{}{}
	}

	var hits []string
	for _, zone := range resolved {
		if _, ok := wanted[zone]; ok {
			hits = append(hits, zone.String())
		}
	}

	if len(hits) > 0 {
		check.Passed = true
		check.Awarded = zoneWeight
		check.Explanation = fmt.Sprintf("listing is in %s", strings.Join(hits, ", "))
	} else if len(resolved) == 0 {
		check.Explanation = "listing location could not be resolved to any known zone"
	} else {
		check.Explanation = fmt.Sprintf("listing zones %s do not intersect the desired zones", joinZones(resolved))
	}

	return strictCheck{check: check, vetoes: true}
}

func (s *scoringService) checkBudget(listing *entity.Listing, criteria *entity.UserCriteria) strictCheck {
	check := entity.CriterionCheck{Name: criterionBudget, Strict: true, Possible: budgetWeight}

	budget := criteria.Strict.BudgetMax
	switch {
	case budget == nil:
		check.Passed = true
		check.Awarded = budgetWeight
		check.Explanation = "no budget constraint"
	case listing.TotalRent == nil:
		// Benefit of the doubt when the post does not state the rent.
		check.Passed = true
		check.Awarded = budgetWeight
		check.Explanation = "rent not stated, benefit of the doubt"
	case *listing.TotalRent <= *budget:
		check.Passed = true
		check.Awarded = budgetWeight
		check.Explanation = fmt.Sprintf("total rent %d CHF is within budget %d CHF", *listing.TotalRent, *budget)
	default:
		check.Explanation = fmt.Sprintf("total rent %d CHF exceeds budget %d CHF", *listing.TotalRent, *budget)
	}

	return strictCheck{check: check, vetoes: true}
}

func (s *scoringService) checkRooms(listing *entity.Listing, criteria *entity.UserCriteria) strictCheck {
	check := entity.CriterionCheck{Name: criterionRooms, Strict: true, Possible: roomsWeight}

	minRooms := criteria.Strict.RoomsMin
	maxRooms := criteria.Strict.RoomsMax
	switch {
	case minRooms == nil && maxRooms == nil:
		check.Passed = true
		check.Awarded = roomsWeight
		check.Explanation = "no room count constraint"
	case listing.Rooms == nil:
		check.Passed = true
		check.Awarded = roomsWeight
		check.Explanation = "room count not stated, benefit of the doubt"
	case minRooms != nil && *listing.Rooms < *minRooms:
		check.Explanation = fmt.Sprintf("%.1f rooms is below the minimum %.1f", *listing.Rooms, *minRooms)
	case maxRooms != nil && *listing.Rooms > *maxRooms:
		check.Explanation = fmt.Sprintf("%.1f rooms is above the maximum %.1f", *listing.Rooms, *maxRooms)
	default:
		check.Passed = true
		check.Awarded = roomsWeight
		check.Explanation = fmt.Sprintf("%.1f rooms is within the requested range", *listing.Rooms)
	}

	return strictCheck{check: check, vetoes: true}
}

func (s *scoringService) checkDwellingType(listing *entity.Listing, criteria *entity.UserCriteria) strictCheck {
	check := entity.CriterionCheck{Name: criterionType, Strict: true, Possible: typeWeight}

	accepted := criteria.Strict.DwellingTypes
	switch {
	case len(accepted) == 0:
		check.Passed = true
		check.Awarded = typeWeight
		check.Explanation = "no dwelling type constraint"
	case listing.DwellingType == "":
		check.Passed = true
		check.Awarded = typeWeight
		check.Explanation = "dwelling type not stated, benefit of the doubt"
	default:
		listingType := strings.ToLower(listing.DwellingType)
		for _, want := range accepted {
			if strings.Contains(listingType, strings.ToLower(want)) {
				check.Passed = true
				check.Awarded = typeWeight
				check.Explanation = fmt.Sprintf("dwelling type %q matches %q", listing.DwellingType, want)

				break
			}
		}
		if !check.Passed {
			check.Explanation = fmt.Sprintf("dwelling type %q matches none of the accepted types", listing.DwellingType)
		}
	}

	// Whether a type mismatch vetoes is a deployment decision.
	return strictCheck{check: check, vetoes: s.matching.TypeVeto}
}

func (s *scoringService) comfortChecks(listing *entity.Listing, criteria *entity.UserCriteria) []entity.CriterionCheck {
	var checks []entity.CriterionCheck
	comfort := criteria.Comfort

	record := func(name string, points int, has bool, hasExplanation, missesExplanation string) {
		check := entity.CriterionCheck{Name: name, Possible: points}
		if has {
			check.Passed = true
			check.Awarded = points
			check.Explanation = hasExplanation
		} else {
			check.Explanation = missesExplanation
		}
		checks = append(checks, check)
	}

	if comfort.TopFloor {
		record(criterionTop, topFloorPoints, listing.TopFloor,
			"listing is on the top floor", "listing is not on the top floor")
	}
	if comfort.Balcony {
		record(criterionBalcony, balconyPoints, listing.Balcony || listing.Terrace,
			"listing has a balcony or terrace", "listing has neither balcony nor terrace")
	}
	if comfort.Furnished {
		record(criterionFurn, furnishedPoints, listing.Furnished,
			"listing is furnished", "listing is not furnished")
	}
	if comfort.Parking {
		record(criterionParking, parkingPoints, listing.ParkingIncluded,
			"parking is included", "parking is not included")
	}
	// Listings carry no quietness or elevator data; these wishes are
	// recorded so the audit trail shows they were considered.
	if comfort.Quiet {
		record(criterionQuiet, quietPoints, false,
			"", "listings carry no quietness information")
	}
	if comfort.Elevator {
		record(criterionLift, elevatorPoints, false,
			"", "listings carry no elevator information")
	}
	for _, extra := range comfort.Extras {
		checks = append(checks, entity.CriterionCheck{
			Name:        "extra:" + extra,
			Explanation: "free-form wish, recorded but not scored",
		})
	}

	return checks
}

func (s *scoringService) badges(listing *entity.Listing, criteria *entity.UserCriteria, total int) []string {
	var badges []string

	if budget := criteria.Strict.BudgetMax; budget != nil && listing.TotalRent != nil {
		if float64(*listing.TotalRent) <= s.matching.ExceptionalPriceRatio*float64(*budget) {
			badges = append(badges, entity.BadgeExceptionalPrice)
		}
	}
	if listing.Urgent {
		badges = append(badges, entity.BadgeUrgent)
	}
	if total > s.matching.PremiumScoreThreshold {
		badges = append(badges, entity.BadgePerfectMatch)
	}

	return badges
}

func joinZones(zones []entity.CanonicalLocation) string {
	names := make([]string, 0, len(zones))
	for _, zone := range zones {
		names = append(names, zone.String())
	}

	return "[" + strings.Join(names, ", ") + "]"
}
