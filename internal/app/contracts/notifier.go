package contracts

import (
	"context"
	"esveikata-finder/internal/pkg/dto/requests"
)

type SlotNotifier interface {
	NotifySlotsAvailable(ctx context.Context, notification *requests.SlotsAvailableNotification) error
}
