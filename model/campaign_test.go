package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCampaign_Validate__OK(t *testing.T) {
	c := Campaign{
		DiscountType:          DiscountTypeGlobal,
		GlobalDiscountPercent: 20,
		StartTime:             newTime("2023-06-01T09:00:00Z"),
		EndTime:               newTime("2023-06-01T12:00:00Z"),
	}
	assert.Equal(t, nil, c.Validate())
}

func TestCampaign_Validate__Start_Equal_End(t *testing.T) {
	c := Campaign{
		DiscountType: DiscountTypeIndividual,
		StartTime:    newTime("2023-06-01T09:00:00Z"),
		EndTime:      newTime("2023-06-01T09:00:00Z"),
	}
	assert.Equal(t, ErrInvalidTimeRange, c.Validate())
}

func TestCampaign_Validate__Start_After_End(t *testing.T) {
	c := Campaign{
		DiscountType: DiscountTypeIndividual,
		StartTime:    newTime("2023-06-01T12:00:00Z"),
		EndTime:      newTime("2023-06-01T09:00:00Z"),
	}
	assert.Equal(t, ErrInvalidTimeRange, c.Validate())
}

func TestCampaign_Validate__Global_Percent_Out_Of_Range(t *testing.T) {
	c := Campaign{
		DiscountType:          DiscountTypeGlobal,
		GlobalDiscountPercent: 101,
		StartTime:             newTime("2023-06-01T09:00:00Z"),
		EndTime:               newTime("2023-06-01T12:00:00Z"),
	}
	assert.Equal(t, ErrInvalidDiscountPercent, c.Validate())

	c.GlobalDiscountPercent = -1
	assert.Equal(t, ErrInvalidDiscountPercent, c.Validate())
}

func TestCampaign_Validate__Individual_Ignores_Global_Percent(t *testing.T) {
	c := Campaign{
		DiscountType:          DiscountTypeIndividual,
		GlobalDiscountPercent: 101,
		StartTime:             newTime("2023-06-01T09:00:00Z"),
		EndTime:               newTime("2023-06-01T12:00:00Z"),
	}
	assert.Equal(t, nil, c.Validate())
}

func TestCampaign_ContainsProduct(t *testing.T) {
	c := Campaign{
		ProductIDs: []int64{3, 5, 8},
	}
	assert.Equal(t, true, c.ContainsProduct(5))
	assert.Equal(t, false, c.ContainsProduct(4))

	empty := Campaign{}
	assert.Equal(t, false, empty.ContainsProduct(5))
}
