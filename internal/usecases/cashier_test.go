package usecases_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	atolWorker "github.com/kassatech/atolWorker"
	"github.com/kassatech/atolWorker/internal/domain/models"
	"github.com/kassatech/atolWorker/internal/usecases"
)

type fakeCashierStore struct {
	cashiers map[string]models.Cashier
	err      error
	putErr   error
}

func (s *fakeCashierStore) GetCashier(deviceID string) (*models.Cashier, error) {
	if s.err != nil {
		return nil, s.err
	}
	if c, ok := s.cashiers[deviceID]; ok {
		return &c, nil
	}
	return nil, nil
}

func (s *fakeCashierStore) PutCashier(deviceID string, cashier models.Cashier) error {
	if s.putErr != nil {
		return s.putErr
	}
	if s.cashiers == nil {
		s.cashiers = make(map[string]models.Cashier)
	}
	s.cashiers[deviceID] = cashier
	return nil
}

func testConfig() *atolWorker.Config {
	return &atolWorker.Config{
		CashierName: "Дежурный кассир",
		CashierINN:  "123456789012",
	}
}

func Test_CashierResolver_KwargsWin(t *testing.T) {
	store := &fakeCashierStore{cashiers: map[string]models.Cashier{
		"kkt-1": {Name: "Из кэша", INN: "000000000000"},
	}}
	resolver := usecases.NewCashierResolver(testConfig(), store, zap.NewNop().Sugar())

	cashier := resolver.Resolve("kkt-1", models.Kwargs{
		"cashier_name": "Иванова И.И.",
		"cashier_inn":  "771234567890",
	})

	assert.Equal(t, models.Cashier{Name: "Иванова И.И.", INN: "771234567890"}, cashier)
}

func Test_CashierResolver_StoreSecond(t *testing.T) {
	store := &fakeCashierStore{cashiers: map[string]models.Cashier{
		"kkt-1": {Name: "Петрова П.П.", INN: "772222222222"},
	}}
	resolver := usecases.NewCashierResolver(testConfig(), store, zap.NewNop().Sugar())

	cashier := resolver.Resolve("kkt-1", models.Kwargs{})

	assert.Equal(t, "Петрова П.П.", cashier.Name)
}

func Test_CashierResolver_DefaultLast(t *testing.T) {
	store := &fakeCashierStore{cashiers: map[string]models.Cashier{}}
	resolver := usecases.NewCashierResolver(testConfig(), store, zap.NewNop().Sugar())

	cashier := resolver.Resolve("kkt-unknown", nil)

	assert.Equal(t, "Дежурный кассир", cashier.Name)
	assert.Equal(t, "123456789012", cashier.INN)
}

// Недоступность хранилища — промах, не ошибка.
func Test_CashierResolver_StoreFailureFallsThrough(t *testing.T) {
	store := &fakeCashierStore{err: errors.New("connection refused")}
	resolver := usecases.NewCashierResolver(testConfig(), store, zap.NewNop().Sugar())

	cashier := resolver.Resolve("kkt-1", models.Kwargs{})

	assert.Equal(t, "Дежурный кассир", cashier.Name)
}

func Test_CashierResolver_NilStore(t *testing.T) {
	resolver := usecases.NewCashierResolver(testConfig(), nil, zap.NewNop().Sugar())

	cashier := resolver.Resolve("kkt-1", models.Kwargs{})

	assert.Equal(t, "Дежурный кассир", cashier.Name)
}

// Кассир из kwargs запоминается за устройством: следующий вызов без
// kwargs получает его из кэша.
func Test_CashierResolver_KwargsCachedForDevice(t *testing.T) {
	store := &fakeCashierStore{}
	resolver := usecases.NewCashierResolver(testConfig(), store, zap.NewNop().Sugar())

	first := resolver.Resolve("kkt-1", models.Kwargs{
		"cashier_name": "Иванова И.И.",
		"cashier_inn":  "771234567890",
	})
	second := resolver.Resolve("kkt-1", models.Kwargs{})

	assert.Equal(t, first, second)
	assert.Equal(t, "Иванова И.И.", second.Name)
}

// Отказ записи в кэш не влияет на результат резолва.
func Test_CashierResolver_PutFailureIgnored(t *testing.T) {
	store := &fakeCashierStore{putErr: errors.New("connection refused")}
	resolver := usecases.NewCashierResolver(testConfig(), store, zap.NewNop().Sugar())

	cashier := resolver.Resolve("kkt-1", models.Kwargs{"cashier_name": "Иванова И.И."})

	assert.Equal(t, "Иванова И.И.", cashier.Name)
}

// Пустое имя в kwargs не считается переданным кассиром.
func Test_CashierResolver_EmptyKwargsNameIgnored(t *testing.T) {
	resolver := usecases.NewCashierResolver(testConfig(), nil, zap.NewNop().Sugar())

	cashier := resolver.Resolve("kkt-1", models.Kwargs{"cashier_name": ""})

	assert.Equal(t, "Дежурный кассир", cashier.Name)
}
