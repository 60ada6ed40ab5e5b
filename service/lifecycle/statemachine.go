package lifecycle

import (
	"github.com/ngthuong45/flashsale/model"
	"time"
)

// Action is the automatic transition to apply to a single campaign.
type Action int

const (
	// ActionNone ...
	ActionNone Action = 0

	// ActionFinish transitions ACTIVE -> FINISHED
	ActionFinish Action = 1

	// ActionActivate transitions SCHEDULED -> ACTIVE
	ActionActivate Action = 2
)

// NextAction computes the legal automatic transition for a campaign at the
// given instant. activeExists reports whether any campaign currently holds
// the active slot. States with no legal transition return ActionNone, this
// is the normal outcome and never an error.
func NextAction(c model.Campaign, now time.Time, activeExists bool) Action {
	switch c.Status {
	case model.CampaignStatusActive:
		if !c.EndTime.After(now) {
			return ActionFinish
		}
		return ActionNone

	case model.CampaignStatusScheduled:
		if activeExists {
			return ActionNone
		}
		if !c.StartTime.After(now) {
			return ActionActivate
		}
		return ActionNone

	default:
		// DRAFT and FINISHED never transition automatically
		return ActionNone
	}
}
