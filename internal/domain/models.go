package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBalance is the GP a user starts with when no balance row exists yet.
const DefaultBalance = 100.0

// UnknownGoals marks a score that has not been reported for a match.
const UnknownGoals = -1

const (
	MatchNotStarted = "NS"
	MatchFinished   = "FT"
)

type SlipStatus string

const (
	SlipLive SlipStatus = "LIVE"
	SlipWon  SlipStatus = "WON"
	SlipLost SlipStatus = "LOST"
)

const (
	TxTypeSale       = "sale"
	TxTypeWithdrawal = "withdrawal"

	TxStatusPending   = "pending"
	TxStatusCompleted = "completed"
	TxStatusRejected  = "rejected"
)

const (
	OrderCreated  = "CREATED"
	OrderCaptured = "CAPTURED"
)

type User struct {
	ID            int       `db:"id"`
	Email         string    `db:"email"`
	PasswordHash  string    `db:"password_hash"`
	DisplayName   string    `db:"display_name"`
	IsAdmin       bool      `db:"is_admin"`
	IsBlocked     bool      `db:"is_blocked"`
	EmailVerified bool      `db:"email_verified"`
	CreatedAt     time.Time `db:"created_at"`
}

type Balance struct {
	UserID  int     `db:"user_id"`
	Balance float64 `db:"balance"`
}

type Match struct {
	FixtureID   int       `db:"fixture_id"`
	LeagueID    int       `db:"league_id"`
	LeagueName  string    `db:"league_name"`
	HomeTeamID  int       `db:"home_team_id"`
	HomeTeam    string    `db:"home_team"`
	HomeLogo    string    `db:"home_logo"`
	AwayTeamID  int       `db:"away_team_id"`
	AwayTeam    string    `db:"away_team"`
	AwayLogo    string    `db:"away_logo"`
	FixtureDate time.Time `db:"fixture_date"`
	Status      string    `db:"status"`
	GoalsHome   int       `db:"goals_home"`
	GoalsAway   int       `db:"goals_away"`
	Minute      int       `db:"minute"`
	Priority    int       `db:"priority"`
}

// OddRow is one raw bookmaker quote as stored, odd kept in its textual form.
type OddRow struct {
	MatchID   int    `db:"match_id"`
	Market    string `db:"market"`
	Selection string `db:"selection"`
	Odd       string `db:"odd"`
}

type Team struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
	Logo string `db:"logo"`
}

type BetSlip struct {
	ID           int       `db:"id"`
	UserID       int       `db:"user_id"`
	TotalOdds    float64   `db:"total_odds"`
	Stake        float64   `db:"stake"`
	PotentialWin float64   `db:"potential_win"`
	IsSettled    bool      `db:"is_settled"`
	CreatedAt    time.Time `db:"created_at"`
	Selections   []Selection
}

// Selection is a slip leg joined with the live data of its match.
type Selection struct {
	ID          int       `db:"id"`
	BetID       int       `db:"saved_bet_id"`
	MatchID     int       `db:"match_id"`
	Market      string    `db:"market"`
	Selection   string    `db:"selection"`
	Odd         float64   `db:"odd"`
	HomeTeam    string    `db:"home_team"`
	AwayTeam    string    `db:"away_team"`
	LeagueName  string    `db:"league_name"`
	FixtureDate time.Time `db:"fixture_date"`
	MatchStatus string    `db:"status"`
	GoalsHome   int       `db:"goals_home"`
	GoalsAway   int       `db:"goals_away"`
	Minute      int       `db:"minute"`
}

type BetLock struct {
	ID             int       `db:"id"`
	UserID         int       `db:"user_id"`
	BetID          int       `db:"bet_id"`
	PurchasedPrice float64   `db:"purchased_price"`
	CreatedAt      time.Time `db:"created_at"`
}

type Wallet struct {
	UserID      int     `db:"user_id"`
	BalanceEuro float64 `db:"balance_euro"`
}

type Transaction struct {
	ID           int       `db:"id"`
	UserID       int       `db:"user_id"`
	Amount       float64   `db:"amount"`
	Type         string    `db:"type"`
	Status       string    `db:"status"`
	PaymentEmail string    `db:"payment_email"`
	CreatedAt    time.Time `db:"created_at"`
}

type PaymentOrder struct {
	OrderID   string    `db:"order_id"`
	BuyerID   int       `db:"buyer_id"`
	BetID     int       `db:"bet_id"`
	Amount    float64   `db:"amount"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type Tipster struct {
	ID          int     `db:"id"`
	Email       string  `db:"email"`
	DisplayName string  `db:"display_name"`
	Balance     float64 `db:"balance"`
	TotalBets   int     `db:"total_bets"`
}

// PublicBet is a slip as listed on a tipster profile for a given viewer.
type PublicBet struct {
	ID           int       `db:"id"`
	TotalOdds    float64   `db:"total_odds"`
	Stake        float64   `db:"stake"`
	PotentialWin float64   `db:"potential_win"`
	MatchCount   int       `db:"match_count"`
	IsUnlocked   bool      `db:"is_unlocked"`
	CreatedAt    time.Time `db:"created_at"`
}

type FinancialSummary struct {
	TotalGross          float64 `db:"total_gross"`
	TotalAdvisorBalance float64 `db:"total_advisor_balance"`
	TotalAdvisorEarned  float64 `db:"total_advisor_earned"`
	TotalWithdrawn      float64 `db:"total_withdrawn"`
	PlatformProfit      float64
}

type AdvisorStat struct {
	AdvisorID            int     `db:"advisor_id"`
	AdvisorEmail         string  `db:"advisor_email"`
	TotalSalesCount      int     `db:"total_sales_count"`
	GrossRevenue         float64 `db:"gross_revenue"`
	ExpectedAdvisorShare float64 `db:"expected_advisor_share"`
	CurrentWalletBalance float64 `db:"current_wallet_balance"`
}

type ReportTransaction struct {
	ID            int       `db:"id"`
	AdvisorAmount float64   `db:"advisor_amount"`
	Type          string    `db:"type"`
	Status        string    `db:"status"`
	BuyerEmail    string    `db:"buyer_email"`
	AdvisorEmail  string    `db:"advisor_email"`
	CreatedAt     time.Time `db:"created_at"`
}

type FinancialStats struct {
	Summary      FinancialSummary
	Advisors     []AdvisorStat
	Transactions []ReportTransaction
}

type Profile struct {
	User          User
	Balance       float64
	WalletBalance float64
}

// NewBet is a slip as submitted by its owner. Zero TotalOdds means the
// product of the selection odds.
type NewBet struct {
	Stake      float64
	TotalOdds  float64
	Selections []Selection
}

type PlacedBet struct {
	ID         int
	NewBalance float64
}

// LegResult is a selection with its evaluation against the live score.
type LegResult struct {
	Selection
	IsWinning     bool
	CurrentResult string
}

type SlipResult struct {
	BetSlip
	Status SlipStatus
	Legs   []LegResult
}

type TipsterSummary struct {
	Tipster
	Name      string
	IsAdvisor bool
}

// PricedBet is a public slip with the unlock price seen by one viewer.
type PricedBet struct {
	PublicBet
	Price      decimal.Decimal
	IsObscured bool
}

type TipsterPage struct {
	Tipster     TipsterSummary
	UnlockPrice decimal.Decimal
	Bets        []PricedBet
}

// PublicLeg is a selection as shown to a viewer. When IsObscured is set the
// teams, market and selection are blanked.
type PublicLeg struct {
	Selection
	IsObscured bool
	IsExpired  bool
}

type PublicSlip struct {
	BetID      int
	OwnerID    int
	IsUnlocked bool
	Legs       []PublicLeg
}

type Quote struct {
	BetID        int
	OwnerID      int
	OwnerBalance float64
	Price        decimal.Decimal
}

// Grant is a paid unlock to apply: Paid is what the buyer was charged.
type Grant struct {
	BuyerID    int
	BetID      int
	OwnerID    int
	Paid       decimal.Decimal
	PayerEmail string
}

type UnlockResult struct {
	AlreadyUnlocked bool
	Price           decimal.Decimal
}

type CreatedOrder struct {
	OrderID         string
	Amount          decimal.Decimal
	AlreadyUnlocked bool
}

type CapturedOrder struct {
	OrderID         string
	BetID           int
	Amount          decimal.Decimal
	AlreadyCaptured bool
}

type WalletView struct {
	Balance      float64
	Transactions []Transaction
}

type PayPalConfig struct {
	ClientID string
	Mode     string
}

// Session is a signed bearer token with the profile it was issued for.
type Session struct {
	Token   string
	Profile Profile
}
