package memory

import (
	"context"
	"sync"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
)

type ledgerKey struct {
	asset domain.Asset
	owner domain.Address
}

type tables struct {
	admins      *table[domain.Address, *domain.Admin]
	offers      *table[domain.Address, *domain.Offer]
	escrows     *table[domain.Address, *domain.EscrowAccount]
	disputes    *table[domain.Address, *domain.Dispute]
	votes       *table[domain.Address, *domain.Vote]
	reputations *table[domain.Address, *domain.Reputation]
	tokens      *table[domain.Address, *domain.RewardToken]
	userRewards *table[domain.Address, *domain.UserRewards]
	limits      *table[string, *domain.RateLimit]
	balances    *table[ledgerKey, uint64]
}

// Store is an in-memory domain.Store. Instructions are serialized by one
// lock and see their own writes through per-table overlays.
type Store struct {
	mu sync.RWMutex
	t  tables
}

func NewStore() *Store {
	return &Store{t: tables{
		admins:      newTable[domain.Address](func(a *domain.Admin) *domain.Admin { return a.Clone() }),
		offers:      newTable[domain.Address](func(o *domain.Offer) *domain.Offer { return o.Clone() }),
		escrows:     newTable[domain.Address](func(e *domain.EscrowAccount) *domain.EscrowAccount { return e.Clone() }),
		disputes:    newTable[domain.Address](func(d *domain.Dispute) *domain.Dispute { return d.Clone() }),
		votes:       newTable[domain.Address](func(v *domain.Vote) *domain.Vote { c := *v; return &c }),
		reputations: newTable[domain.Address](func(r *domain.Reputation) *domain.Reputation { c := *r; return &c }),
		tokens:      newTable[domain.Address](func(r *domain.RewardToken) *domain.RewardToken { c := *r; return &c }),
		userRewards: newTable[domain.Address](func(r *domain.UserRewards) *domain.UserRewards { c := *r; return &c }),
		limits: newTable[string](func(l *domain.RateLimit) *domain.RateLimit {
			return &domain.RateLimit{Key: l.Key, Events: append([]time.Time(nil), l.Events...)}
		}),
		balances: newTable[ledgerKey](same[uint64]),
	}}
}

func (s *Store) begin() *Tx {
	return &Tx{t: tables{
		admins:      s.t.admins.begin(),
		offers:      s.t.offers.begin(),
		escrows:     s.t.escrows.begin(),
		disputes:    s.t.disputes.begin(),
		votes:       s.t.votes.begin(),
		reputations: s.t.reputations.begin(),
		tokens:      s.t.tokens.begin(),
		userRewards: s.t.userRewards.begin(),
		limits:      s.t.limits.begin(),
		balances:    s.t.balances.begin(),
	}}
}

func (s *Store) Atomically(ctx context.Context, fn func(tx domain.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.begin()
	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// View runs fn against the committed state. Writes made by fn are dropped.
func (s *Store) View(ctx context.Context, fn func(tx domain.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.begin())
}

var (
	_ domain.Store = (*Store)(nil)
	_ domain.Tx    = (*Tx)(nil)
)
