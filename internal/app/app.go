package app

import (
	"context"

	atolWorker "github.com/kassatech/atolWorker"
	busrouter "github.com/kassatech/atolWorker/internal/handlers/bus"
	"github.com/kassatech/atolWorker/internal/handlers/telegram"
	"github.com/kassatech/atolWorker/internal/interfaces"
	"github.com/kassatech/atolWorker/internal/repository"
	"github.com/kassatech/atolWorker/internal/services"
	"github.com/kassatech/atolWorker/internal/usecases"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func New() *fx.App {
	return fx.New(
		fx.Provide(
			// Config
			atolWorker.LoadConfig,

			// Logger
			NewLogger,

			// Repository
			repository.NewPostgresRepository,
			repository.NewCashierRepository,

			// Services
			newBus,

			// Usecases
			usecases.NewCashierResolver,
			newProcessors,

			// Handlers
			busrouter.NewRouter,
			telegram.NewCommandHandler,
			telegram.NewBot,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			startRouter,
			startBot,
		),
	)
}

func NewLogger() (*zap.Logger, *zap.SugaredLogger) {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger, logger.Sugar()
}

func newBus(cfg *atolWorker.Config, log *zap.SugaredLogger) interfaces.Bus {
	return services.NewKafkaBus(cfg.KafkaBroker, log)
}

// newProcessors собирает по процессору на каждое сконфигурированное
// устройство. Сессии драйвера создаются здесь же: боевое cgo-связывание
// libfptr10 подставляется заменой newFptr, по умолчанию работает эмулятор.
func newProcessors(cfg *atolWorker.Config, resolver interfaces.CashierResolver, log *zap.SugaredLogger) map[string]interfaces.Processor {
	if !cfg.UseEmulator {
		log.Warnw("⚠️ боевой драйвер libfptr10 не собран, используется эмулятор")
	}

	procs := make(map[string]interfaces.Processor, len(cfg.Devices))
	for _, device := range cfg.Devices {
		drv := driverFor(device)
		procs[device.ID] = usecases.NewCommandProcessor(device.ID, drv, resolver, log)
		log.Infow("🖨 устройство инициализировано", "device", device.ID, "type", device.ConnectionType)
	}
	return procs
}

func startRouter(lifecycle fx.Lifecycle, router *busrouter.Router, bus interfaces.Bus) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			router.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			router.Stop()
			return bus.Close()
		},
	})
}

func startBot(lifecycle fx.Lifecycle, bot *telegram.Bot) {
	if bot == nil {
		return
	}
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go bot.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			bot.Stop()
			return nil
		},
	})
}
