//go:build unit

package campaign_test

import (
	"testing"

	"franguinho-pos/internal/domain/campaign"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCampaign(t *testing.T) {
	storeID := uuid.New()

	tests := []struct {
		name       string
		cname      string
		message    string
		recipients []string
		errIs      error
	}{
		{
			name:       "basic success case",
			cname:      "Promo de sexta",
			message:    "Frango assado em dobro hoje!",
			recipients: []string{"5511999990001", "5511999990002"},
		},
		{
			name:       "name is required",
			cname:      "  ",
			message:    "oi",
			recipients: []string{"5511999990001"},
			errIs:      campaign.ErrNameRequired,
		},
		{
			name:       "message is required",
			cname:      "Promo",
			message:    "",
			recipients: []string{"5511999990001"},
			errIs:      campaign.ErrMessageRequired,
		},
		{
			name:    "at least one recipient",
			cname:   "Promo",
			message: "oi",
			errIs:   campaign.ErrNoRecipients,
		},
		{
			name:       "blank recipient rejected",
			cname:      "Promo",
			message:    "oi",
			recipients: []string{"5511999990001", "  "},
			errIs:      campaign.ErrEmptyRecipient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := campaign.NewCampaign(storeID, tt.cname, tt.message, tt.recipients)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, campaign.StatusDraft, c.Status())
		})
	}

	t.Run("duplicate recipients collapse", func(t *testing.T) {
		c, err := campaign.NewCampaign(storeID, "Promo", "oi", []string{
			"5511999990001", "5511999990002", "5511999990001",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"5511999990001", "5511999990002"}, c.Recipients())
	})
}

func TestStart(t *testing.T) {
	c, err := campaign.NewCampaign(uuid.New(), "Promo", "oi", []string{"5511999990001"})
	require.NoError(t, err)

	require.NoError(t, c.Start())
	assert.Equal(t, campaign.StatusRunning, c.Status())

	assert.ErrorIs(t, c.Start(), campaign.ErrNotRunnable)

	c.Complete()
	assert.Equal(t, campaign.StatusCompleted, c.Status())
	assert.ErrorIs(t, c.Start(), campaign.ErrNotRunnable)
}
