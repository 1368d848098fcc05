package model

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ActivityStatus describes the outcome of a last-activity lookup.
type ActivityStatus string

var (
	// ActivityFound means a transfer involving the account was found.
	ActivityFound ActivityStatus = "found"
	// ActivityNone means the account never appears in a transfer.
	ActivityNone ActivityStatus = "none"
	// ActivityError means the lookup failed.
	ActivityError ActivityStatus = "error"
)

const (
	// ActivityTimeLayout renders timestamps as YYYY-MM-DD HH:MM:SS.
	ActivityTimeLayout = "2006-01-02 15:04:05"

	noActivityText    = "No transactions"
	activityErrorText = "Error"
)

// ActivityRecord is the most recent transfer an account took part in.
type ActivityRecord struct {
	Account   common.Address
	LastBlock uint64
	Timestamp time.Time
	Status    ActivityStatus
}

// String renders the record the way it is reported to users.
func (r ActivityRecord) String() string {
	switch r.Status {
	case ActivityFound:
		return r.Timestamp.UTC().Format(ActivityTimeLayout)
	case ActivityNone:
		return noActivityText
	default:
		return activityErrorText
	}
}
