package usecases

import (
	atolWorker "github.com/kassatech/atolWorker"
	"github.com/kassatech/atolWorker/internal/domain/models"
	"github.com/kassatech/atolWorker/internal/interfaces"
	"go.uber.org/zap"
)

type cashierResolver struct {
	store interfaces.CashierStore
	def   models.Cashier
	log   *zap.SugaredLogger
}

// NewCashierResolver собирает резолвер кассира: kwargs → хранилище →
// кассир по умолчанию из конфигурации.
func NewCashierResolver(cfg *atolWorker.Config, store interfaces.CashierStore, log *zap.SugaredLogger) interfaces.CashierResolver {
	return &cashierResolver{
		store: store,
		def:   models.Cashier{Name: cfg.CashierName, INN: cfg.CashierINN},
		log:   log,
	}
}

// Resolve выбирает действующего кассира строго по приоритету: первая
// непустая ступень выигрывает. Недоступность хранилища — не ошибка:
// логируется и считается промахом.
func (r *cashierResolver) Resolve(deviceID string, kwargs models.Kwargs) models.Cashier {
	if name := kwargs.String("cashier_name"); name != "" {
		cashier := models.Cashier{Name: name, INN: kwargs.String("cashier_inn")}
		// Переданный в kwargs кассир запоминается за устройством: следующие
		// команды без kwargs получат его из кэша.
		if r.store != nil {
			if err := r.store.PutCashier(deviceID, cashier); err != nil {
				r.log.Warnw("не удалось сохранить кассира в хранилище", "device", deviceID, "error", err)
			}
		}
		return cashier
	}

	if r.store != nil {
		cashier, err := r.store.GetCashier(deviceID)
		switch {
		case err != nil:
			r.log.Warnw("не удалось прочитать кассира из хранилища", "device", deviceID, "error", err)
		case cashier != nil:
			return *cashier
		}
	}

	return r.def
}
