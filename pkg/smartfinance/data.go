package smartfinance

import (
	"context"

	"github.com/pkg/errors"
)

// dataService implements the DataService interface.
type dataService struct {
	client *Client
}

// Snapshot fetches the current accounts and transactions. Without a
// configured provider it serves the deterministic sample snapshot so the
// engine behaves identically in demo mode. Provider errors are wrapped and
// surfaced; converting them into the demo result is the insight service's
// job, not this one's.
func (s *dataService) Snapshot(ctx context.Context) (*Snapshot, error) {
	provider := s.client.options.Provider
	if provider == nil {
		return SampleSnapshot(s.client.now()), nil
	}

	accounts, err := provider.Accounts(ctx)
	if err != nil {
		return nil, errors.Wrap(ErrProviderUnavailable, err.Error())
	}

	end := s.client.now()
	start := end.Add(-s.client.options.Lookback)
	txns, err := provider.Transactions(ctx, start, end)
	if err != nil {
		return nil, errors.Wrap(ErrProviderUnavailable, err.Error())
	}

	s.client.logger.Debug().
		Int("accounts", len(accounts)).
		Int("transactions", len(txns)).
		Msg("snapshot fetched")

	return &Snapshot{Transactions: txns, Accounts: accounts}, nil
}
