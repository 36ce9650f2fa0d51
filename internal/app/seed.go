package app

import (
	"context"

	"currencymon/internal/adapters"
	"currencymon/internal/config"
	"currencymon/internal/domain"
	"currencymon/internal/rate"
	"currencymon/internal/store"

	"github.com/sirupsen/logrus"
)

// seedSubscriptionCodes maps seed user position to the char codes they start
// out following.
var seedSubscriptionCodes = [][]string{
	{"USD", "EUR"},
	{"USD"},
	{"GBP"},
	{"CNY"},
}

// seed populates the empty store once at startup: currencies from the first
// available snapshot, users from config, and a default set of subscriptions
// matched by char code.
func seed(ctx context.Context, cfg *config.AppConfig, reconciler *rate.Reconciler, currencies adapters.CurrencyRepository, users *store.UserRepository) error {
	snap, live := reconciler.FetchSnapshot(ctx)
	if !live {
		logrus.Warn("Seeding from fallback rates, live feed was unavailable")
	}
	if _, err := reconciler.Merge(ctx, snap, true); err != nil {
		return err
	}

	names := cfg.Seed.Users
	if len(names) == 0 {
		names = []string{"Alice Johnson", "Bob Smith", "Carol Davis", "Dan Miller"}
	}
	userIDs, err := users.SeedUsers(ctx, names)
	if err != nil {
		return err
	}

	byCode := make(map[string]int64)
	rows, err := currencies.List(ctx, "")
	if err != nil {
		return err
	}
	for _, c := range rows {
		byCode[c.CharCode] = c.ID
	}

	var pairs []domain.Subscription
	for i, userID := range userIDs {
		if i >= len(seedSubscriptionCodes) {
			break
		}
		for _, code := range seedSubscriptionCodes[i] {
			if currencyID, ok := byCode[code]; ok {
				pairs = append(pairs, domain.Subscription{UserID: userID, CurrencyID: currencyID})
			}
		}
	}
	return users.SeedSubscriptions(ctx, pairs)
}
