package models

import (
	"time"

	"github.com/google/uuid"
)

// DealStatus is moderation status of a staged deal.
type DealStatus string

// Deal moderation statuses. New deals are always staged as StatusPending.
const (
	StatusPending  DealStatus = "pending"
	StatusApproved DealStatus = "approved"
	StatusExpired  DealStatus = "expired"
	StatusRejected DealStatus = "rejected"
	StatusFlagged  DealStatus = "flagged"
)

// Product is one shopping search result in canonical form.
// Optional source fields are pointers; Price is always positive,
// items without a usable price never become Products.
type Product struct {
	ProductID string
	Title     string
	Source    string
	Price     float64
	Currency  string

	OriginalPrice      *float64
	DiscountPercentage *float64
	DiscountTag        *string

	Thumbnail    *string
	ProductLink  *string
	Rating       *float64
	Reviews      *int
	DeliveryInfo *string
	Condition    *string
}

// SearchQuery is one search intent with its filters and bookkeeping.
type SearchQuery struct {
	Keyword      string
	CategoryID   *uuid.UUID
	CategoryName *string
	Priority     int

	MinPrice  *float64
	MaxPrice  *float64
	OnSale    bool
	SortBy    *string
	MinRating *float64

	NumResults   *int
	TimePeriod   *string
	Condition    *string
	FreeShipping bool
	LocalSellers bool

	LastSearched *time.Time
	SearchCount  int
}

// Deal is a staged deal record awaiting manual moderation.
type Deal struct {
	Title              string
	Description        string
	OriginalPrice      float64
	DiscountedPrice    float64
	DiscountPercentage float64
	Currency           string
	AffiliateURL       string
	ImageURL           *string

	StoreID    *uuid.UUID
	CategoryID *uuid.UUID
	PostedBy   *uuid.UUID

	Status DealStatus
}

// RunResult accumulates counters and errors of one agent run.
// It is owned by a single run and never shared between runs.
type RunResult struct {
	Success              bool     `json:"success"`
	QueriesProcessed     int      `json:"queriesProcessed"`
	ProductsFound        int      `json:"productsFound"`
	ProductsWithDiscount int      `json:"productsWithDiscount"`
	DealsCreated         int      `json:"dealsCreated"`
	Errors               []string `json:"errors"`
}

// AddError appends an error message to the run's error list.
func (r *RunResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}
