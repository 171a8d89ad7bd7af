package cache

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/prestine-booking/internal/config"
	"github.com/BruksfildServices01/prestine-booking/internal/logging"
)

func TestBlockedDatesKey(t *testing.T) {
	if got := BlockedDatesKey("classic-studio"); got != "blocked_dates:classic-studio" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestDisabledCacheIsNoop(t *testing.T) {
	ctx := context.Background()

	for _, c := range []*BlockedDates{
		nil,
		NewBlockedDates(nil, time.Minute, logging.Discard()),
	} {
		c.Set(ctx, "classic-studio", []string{"2025-04-01"})
		if days, ok := c.Get(ctx, "classic-studio"); ok || days != nil {
			t.Fatalf("disabled cache must always miss")
		}
		c.Invalidate(ctx, "classic-studio")
	}
}

func TestConnectWithoutURL(t *testing.T) {
	client, err := Connect(context.Background(), &config.Config{})
	if err != nil || client != nil {
		t.Fatalf("expected nil client and no error, got %v %v", client, err)
	}
}
