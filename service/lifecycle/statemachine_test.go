package lifecycle

import (
	"testing"
	"time"

	"github.com/ngthuong45/flashsale/model"
	"github.com/stretchr/testify/assert"
)

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newCampaign(id int64, status model.CampaignStatus, start string, end string) model.Campaign {
	return model.Campaign{
		ID:           id,
		Title:        "campaign",
		Status:       status,
		DiscountType: model.DiscountTypeIndividual,
		StartTime:    newTime(start),
		EndTime:      newTime(end),
	}
}

func TestNextAction__Active_Expired(t *testing.T) {
	c := newCampaign(1, model.CampaignStatusActive,
		"2023-06-01T08:00:00Z", "2023-06-01T10:00:00Z")

	action := NextAction(c, newTime("2023-06-01T10:00:00Z"), true)
	assert.Equal(t, ActionFinish, action)

	action = NextAction(c, newTime("2023-06-01T11:00:00Z"), true)
	assert.Equal(t, ActionFinish, action)
}

func TestNextAction__Active_Not_Yet_Expired(t *testing.T) {
	c := newCampaign(1, model.CampaignStatusActive,
		"2023-06-01T08:00:00Z", "2023-06-01T10:00:00Z")

	action := NextAction(c, newTime("2023-06-01T09:59:59Z"), true)
	assert.Equal(t, ActionNone, action)
}

func TestNextAction__Scheduled_Started__Slot_Free(t *testing.T) {
	c := newCampaign(2, model.CampaignStatusScheduled,
		"2023-06-01T08:00:00Z", "2023-06-01T10:00:00Z")

	action := NextAction(c, newTime("2023-06-01T08:00:00Z"), false)
	assert.Equal(t, ActionActivate, action)

	action = NextAction(c, newTime("2023-06-01T09:00:00Z"), false)
	assert.Equal(t, ActionActivate, action)
}

func TestNextAction__Scheduled_Started__Slot_Taken(t *testing.T) {
	c := newCampaign(2, model.CampaignStatusScheduled,
		"2023-06-01T08:00:00Z", "2023-06-01T10:00:00Z")

	action := NextAction(c, newTime("2023-06-01T09:00:00Z"), true)
	assert.Equal(t, ActionNone, action)
}

func TestNextAction__Scheduled_Not_Started(t *testing.T) {
	c := newCampaign(2, model.CampaignStatusScheduled,
		"2023-06-01T08:00:00Z", "2023-06-01T10:00:00Z")

	action := NextAction(c, newTime("2023-06-01T07:59:59Z"), false)
	assert.Equal(t, ActionNone, action)
}

func TestNextAction__Draft_And_Finished_Are_Inert(t *testing.T) {
	now := newTime("2023-06-01T09:00:00Z")

	for _, status := range []model.CampaignStatus{
		model.CampaignStatusDraft,
		model.CampaignStatusFinished,
	} {
		c := newCampaign(3, status, "2023-06-01T08:00:00Z", "2023-06-01T10:00:00Z")

		assert.Equal(t, ActionNone, NextAction(c, now, false))
		assert.Equal(t, ActionNone, NextAction(c, now, true))
	}
}

func TestNextAction__Never_Reverses(t *testing.T) {
	// sweep one day around the campaign window in both slot states, no
	// instant may produce a transition that skips a step or goes back
	c := newCampaign(4, model.CampaignStatusActive,
		"2023-06-01T08:00:00Z", "2023-06-01T10:00:00Z")

	for offset := 0; offset < 24; offset++ {
		now := newTime("2023-06-01T00:00:00Z").Add(time.Duration(offset) * time.Hour)
		for _, activeExists := range []bool{false, true} {
			action := NextAction(c, now, activeExists)
			assert.True(t, action == ActionNone || action == ActionFinish)
		}
	}
}
