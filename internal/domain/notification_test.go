package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationTypeSuppressesNickname(t *testing.T) {
	assert.True(t, NotificationCanceledPurchaseTrading.SuppressesNickname())
	assert.True(t, NotificationPurchaseWinning.SuppressesNickname())

	assert.False(t, NotificationPurchaseBidding.SuppressesNickname())
	assert.False(t, NotificationCompletedPurchaseTrading.SuppressesNickname())
}

func TestNotificationTypeTitleAndContent(t *testing.T) {
	for _, typ := range []NotificationType{
		NotificationPurchaseBidding,
		NotificationPurchaseWinning,
		NotificationCanceledPurchaseTrading,
		NotificationCompletedPurchaseTrading,
	} {
		assert.NotEmpty(t, typ.Title(), "type %s", typ)
		assert.NotEmpty(t, typ.Content(), "type %s", typ)
	}

	// Unknown types still render a generic title.
	assert.Equal(t, "알림", NotificationType("기타").Title())
	assert.Empty(t, NotificationType("기타").Content())
}
