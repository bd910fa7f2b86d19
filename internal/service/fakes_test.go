package service

import (
	"context"
	"sort"

	"github.com/TradingIntent/Intentnew/internal/models"
	"github.com/TradingIntent/Intentnew/internal/repository"
)

// fakeTradeStore is an in-memory TradeStore with the same upsert and
// ordering semantics as the GORM-backed repository.
type fakeTradeStore struct {
	trades map[string]models.Trade
}

func newFakeTradeStore() *fakeTradeStore {
	return &fakeTradeStore{trades: make(map[string]models.Trade)}
}

func (s *fakeTradeStore) Save(trade *models.Trade) error {
	s.trades[trade.ID] = *trade
	return nil
}

func (s *fakeTradeStore) GetByUserID(userID uint) ([]models.Trade, error) {
	var out []models.Trade
	for _, t := range s.trades {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *fakeTradeStore) GetByUserIDPaginated(userID uint, page, pageSize int) ([]models.Trade, int64, error) {
	all, _ := s.GetByUserID(userID)
	total := int64(len(all))

	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (s *fakeTradeStore) GetByIDAndUserID(id string, userID uint) (*models.Trade, error) {
	t, ok := s.trades[id]
	if !ok || t.UserID != userID {
		return nil, repository.ErrTradeNotFound
	}
	return &t, nil
}

func (s *fakeTradeStore) Delete(id string) error {
	delete(s.trades, id)
	return nil
}

func (s *fakeTradeStore) CountByUserID(userID uint) (int64, error) {
	var count int64
	for _, t := range s.trades {
		if t.UserID == userID {
			count++
		}
	}
	return count, nil
}

// fakeUserStore is an in-memory UserStore
type fakeUserStore struct {
	users  map[uint]models.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]models.User), nextID: 1}
}

func (s *fakeUserStore) Create(user *models.User) error {
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = *user
	return nil
}

func (s *fakeUserStore) GetByID(id uint) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (s *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *fakeUserStore) ExistsByEmail(email string) (bool, error) {
	_, err := s.GetByEmail(email)
	return err == nil, nil
}

func (s *fakeUserStore) ExistsByWallet(address string) (bool, error) {
	for _, u := range s.users {
		if u.WalletAddress != nil && *u.WalletAddress == address {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) UpdateWallet(id uint, address string) error {
	u, ok := s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.WalletAddress = &address
	s.users[id] = u
	return nil
}

// fakeGenerator records whether the text generator was invoked
type fakeGenerator struct {
	reply  string
	err    error
	called bool
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.called = true
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}
