package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/expotech/exhibition-service/internal/models"
	"github.com/expotech/exhibition-service/internal/repository"
)

const (
	// No participant may receive more than a 90% discount, however many rules stack.
	maxDiscountRatio = 0.9
	// Floor protecting against zero or negative prices from rule misconfiguration.
	minPriceRatio = 0.1
)

type AppliedDiscount struct {
	RuleName           string
	RuleType           string
	DiscountAmount     float64
	DiscountPercentage float64
	FixedAmount        float64
}

// PriceQuote is computed, never persisted: the same inputs always regenerate
// the same quote.
type PriceQuote struct {
	BasePrice        float64
	DiscountAmount   float64
	FinalPrice       float64
	AppliedDiscounts []AppliedDiscount
	PricePerSqm      float64
	BoothSize        float64
}

type CalculateBoothPriceInput struct {
	ExhibitionID     uint
	BoothSize        float64
	RegistrationDate time.Time // zero value = today
	ParticipantCount int       // zero value = 1
}

type PackagePrice struct {
	PackageID    uint
	CurrentPrice float64
	PriceType    models.PriceType
	Package      *models.Package
}

type PricingService interface {
	CalculateBoothPrice(ctx context.Context, input CalculateBoothPriceInput) (*PriceQuote, error)
	GetPackagePrice(ctx context.Context, packageID uint) (*PackagePrice, error)
}

type pricingService struct {
	pricingRepo    repository.PricingRepository
	exhibitionRepo repository.ExhibitionRepository
	now            func() time.Time
}

func NewPricingService(pricingRepo repository.PricingRepository, exhibitionRepo repository.ExhibitionRepository) PricingService {
	return &pricingService{
		pricingRepo:    pricingRepo,
		exhibitionRepo: exhibitionRepo,
		now:            time.Now,
	}
}

func (s *pricingService) CalculateBoothPrice(ctx context.Context, input CalculateBoothPriceInput) (*PriceQuote, error) {
	if input.BoothSize <= 0 {
		return nil, fmt.Errorf("%w: booth_size must be positive", ErrValidation)
	}

	exhibition, err := s.exhibitionRepo.FindByID(ctx, input.ExhibitionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExhibitionNotFound
		}
		return nil, err
	}

	registrationDate := input.RegistrationDate
	if registrationDate.IsZero() {
		registrationDate = s.now()
	}
	participantCount := input.ParticipantCount
	if participantCount <= 0 {
		participantCount = 1
	}

	rules, err := s.pricingRepo.FindActiveRules(ctx, input.ExhibitionID)
	if err != nil {
		return nil, err
	}

	basePrice := exhibition.PricePerSqm * input.BoothSize
	matched := selectRules(rules, input.BoothSize, registrationDate, participantCount)
	totalDiscount, applied := composeDiscounts(basePrice, matched)

	return &PriceQuote{
		BasePrice:        basePrice,
		DiscountAmount:   totalDiscount,
		FinalPrice:       finalPrice(basePrice, totalDiscount),
		AppliedDiscounts: applied,
		PricePerSqm:      exhibition.PricePerSqm,
		BoothSize:        input.BoothSize,
	}, nil
}

func (s *pricingService) GetPackagePrice(ctx context.Context, packageID uint) (*PackagePrice, error) {
	pkg, err := s.pricingRepo.FindPackageByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	price, priceType := resolvePackagePrice(pkg, s.now())
	return &PackagePrice{
		PackageID:    pkg.ID,
		CurrentPrice: price,
		PriceType:    priceType,
		Package:      pkg,
	}, nil
}

// selectRules keeps rules whose every optional constraint matches. The input
// slice arrives ordered by priority then creation; selection preserves that
// order so quotes stay reproducible.
func selectRules(rules []models.PricingRule, boothSize float64, registrationDate time.Time, participantCount int) []models.PricingRule {
	date := dateOnly(registrationDate)
	matched := make([]models.PricingRule, 0, len(rules))
	for _, rule := range rules {
		if ruleMatches(rule, boothSize, date, participantCount) {
			matched = append(matched, rule)
		}
	}
	return matched
}

// ruleMatches applies each clause only when the constraint is present. A nil
// constraint always passes; a zero value is a real bound.
func ruleMatches(rule models.PricingRule, boothSize float64, date time.Time, participantCount int) bool {
	if !rule.IsActive {
		return false
	}
	if rule.StartDate != nil && date.Before(dateOnly(*rule.StartDate)) {
		return false
	}
	if rule.EndDate != nil && date.After(dateOnly(*rule.EndDate)) {
		return false
	}
	if rule.MinAreaSqm != nil && boothSize < *rule.MinAreaSqm {
		return false
	}
	if rule.MaxAreaSqm != nil && boothSize > *rule.MaxAreaSqm {
		return false
	}
	if rule.MinParticipants != nil && participantCount < *rule.MinParticipants {
		return false
	}
	return true
}

// composeDiscounts accumulates one discount per rule: percentage when set,
// otherwise the fixed amount. The total is capped at 90% of the base price;
// line items keep their raw amounts for audit display.
func composeDiscounts(basePrice float64, rules []models.PricingRule) (float64, []AppliedDiscount) {
	total := 0.0
	applied := make([]AppliedDiscount, 0, len(rules))
	for _, rule := range rules {
		var amount float64
		switch {
		case rule.DiscountPercentage > 0:
			amount = basePrice * rule.DiscountPercentage / 100
		case rule.FixedDiscountAmount > 0:
			amount = rule.FixedDiscountAmount
		default:
			continue
		}
		total += amount
		applied = append(applied, AppliedDiscount{
			RuleName:           rule.Name,
			RuleType:           rule.RuleType,
			DiscountAmount:     amount,
			DiscountPercentage: rule.DiscountPercentage,
			FixedAmount:        rule.FixedDiscountAmount,
		})
	}

	if limit := basePrice * maxDiscountRatio; total > limit {
		total = limit
	}
	return total, applied
}

func finalPrice(basePrice, totalDiscount float64) float64 {
	final := basePrice - totalDiscount
	if floor := basePrice * minPriceRatio; final < floor {
		final = floor
	}
	return final
}

// resolvePackagePrice checks the last-minute window before the early-bird one.
// When both windows are configured to overlap, last-minute wins; this ordering
// is a fixed contract, not an implementation detail.
func resolvePackagePrice(pkg *models.Package, now time.Time) (float64, models.PriceType) {
	today := dateOnly(now)
	if pkg.LastMinuteStartDate != nil && pkg.LastMinutePrice != nil &&
		!today.Before(dateOnly(*pkg.LastMinuteStartDate)) {
		return *pkg.LastMinutePrice, models.PriceLastMinute
	}
	if pkg.EarlyBirdEndDate != nil && pkg.EarlyBirdPrice != nil &&
		!today.After(dateOnly(*pkg.EarlyBirdEndDate)) {
		return *pkg.EarlyBirdPrice, models.PriceEarlyBird
	}
	return pkg.Price, models.PriceRegular
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
