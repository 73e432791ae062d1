package tipsterservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/tipsters/internal/betting"
	"github.com/GlebRadaev/tipsters/internal/domain"
	"go.uber.org/zap"
)

const (
	leaderboardSize = 100
	defaultName     = "Tipster"
)

type UserRepo interface {
	Leaderboard(ctx context.Context, limit int) ([]domain.Tipster, error)
	FindTipster(ctx context.Context, id int) (*domain.Tipster, error)
}

type BetRepo interface {
	FindPublicByUser(ctx context.Context, tipsterID, viewerID int) ([]domain.PublicBet, error)
	FindByID(ctx context.Context, betID int) (*domain.BetSlip, error)
	Selections(ctx context.Context, betIDs []int) ([]domain.Selection, error)
}

type Unlocker interface {
	IsUnlocked(ctx context.Context, viewerID int, slip domain.BetSlip) (bool, error)
}

var (
	ErrTipsterNotFound = errors.New("Tipster non trovato")
	ErrBetNotFound     = errors.New("Bet non trovata")
)

type Service struct {
	userRepo UserRepo
	betRepo  BetRepo
	unlocker Unlocker
	siteURL  string
	now      func() time.Time
}

func New(userRepo UserRepo, betRepo BetRepo, unlocker Unlocker, siteURL string) *Service {
	return &Service{
		userRepo: userRepo,
		betRepo:  betRepo,
		unlocker: unlocker,
		siteURL:  strings.TrimRight(siteURL, "/"),
		now:      time.Now,
	}
}

// Name is the display name, else the local part of the email.
func Name(t domain.Tipster) string {
	if name := strings.TrimSpace(t.DisplayName); name != "" {
		return t.DisplayName
	}
	if local, _, _ := strings.Cut(t.Email, "@"); local != "" {
		return local
	}
	return defaultName
}

func summarize(t domain.Tipster) domain.TipsterSummary {
	return domain.TipsterSummary{
		Tipster:   t,
		Name:      Name(t),
		IsAdvisor: betting.IsAdvisor(t.Balance),
	}
}

func (s *Service) List(ctx context.Context) ([]domain.TipsterSummary, error) {
	tipsters, err := s.userRepo.Leaderboard(ctx, leaderboardSize)
	if err != nil {
		zap.L().Error("failed to load leaderboard", zap.Error(err))
		return nil, err
	}
	out := make([]domain.TipsterSummary, 0, len(tipsters))
	for _, t := range tipsters {
		out = append(out, summarize(t))
	}
	return out, nil
}

// PublicBets lists a tipster's slips priced for the viewer. viewerID 0 is
// an anonymous visitor.
func (s *Service) PublicBets(ctx context.Context, tipsterID, viewerID int) (*domain.TipsterPage, error) {
	tipster, err := s.userRepo.FindTipster(ctx, tipsterID)
	if err != nil {
		zap.L().Error("failed to get tipster", zap.Error(err))
		return nil, err
	}
	if tipster == nil {
		return nil, ErrTipsterNotFound
	}
	bets, err := s.betRepo.FindPublicByUser(ctx, tipsterID, viewerID)
	if err != nil {
		zap.L().Error("failed to get public bets", zap.Error(err))
		return nil, err
	}

	price := betting.UnlockPrice(tipster.Balance)
	page := &domain.TipsterPage{
		Tipster:     summarize(*tipster),
		UnlockPrice: price,
		Bets:        make([]domain.PricedBet, 0, len(bets)),
	}
	for _, b := range bets {
		if viewerID != 0 && viewerID == tipsterID {
			b.IsUnlocked = true
		}
		page.Bets = append(page.Bets, domain.PricedBet{
			PublicBet:  b,
			Price:      price,
			IsObscured: !b.IsUnlocked,
		})
	}
	return page, nil
}

// PublicMatches returns the legs of a slip. Teams, market and selection are
// blanked unless the viewer owns or unlocked the slip.
func (s *Service) PublicMatches(ctx context.Context, betID, viewerID int) (*domain.PublicSlip, error) {
	slip, err := s.betRepo.FindByID(ctx, betID)
	if err != nil {
		zap.L().Error("failed to get bet slip", zap.Error(err))
		return nil, err
	}
	if slip == nil {
		return nil, ErrBetNotFound
	}
	unlocked, err := s.unlocker.IsUnlocked(ctx, viewerID, *slip)
	if err != nil {
		zap.L().Error("failed to check bet lock", zap.Error(err))
		return nil, err
	}
	selections, err := s.betRepo.Selections(ctx, []int{betID})
	if err != nil {
		zap.L().Error("failed to get bet selections", zap.Error(err))
		return nil, err
	}

	now := s.now()
	out := &domain.PublicSlip{
		BetID:      slip.ID,
		OwnerID:    slip.UserID,
		IsUnlocked: unlocked,
		Legs:       make([]domain.PublicLeg, 0, len(selections)),
	}
	for _, sel := range selections {
		leg := domain.PublicLeg{
			Selection:  sel,
			IsObscured: !unlocked,
			IsExpired:  sel.FixtureDate.Before(now) || sel.MatchStatus != domain.MatchNotStarted,
		}
		if !unlocked {
			leg.HomeTeam, leg.AwayTeam = "", ""
			leg.Market, leg.Selection.Selection = "", ""
			leg.MatchID = 0
		}
		out.Legs = append(out.Legs, leg)
	}
	return out, nil
}
