package bus

import (
	"context"
	"sync"

	jsoniter "github.com/json-iterator/go"
	atolWorker "github.com/kassatech/atolWorker"
	"github.com/kassatech/atolWorker/internal/domain/models"
	"github.com/kassatech/atolWorker/internal/interfaces"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Router держит по одному процессору на сконфигурированное устройство и
// маршрутизирует сообщения его командного канала. Процессоры создаются на
// старте: опечатка в device_id обнаруживается при запуске, а не первой
// командой.
type Router struct {
	devices []atolWorker.DeviceConfig
	bus     interfaces.Bus
	procs   map[string]interfaces.Processor
	log     *zap.SugaredLogger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRouter(cfg *atolWorker.Config, bus interfaces.Bus, procs map[string]interfaces.Processor, log *zap.SugaredLogger) *Router {
	return &Router{
		devices: cfg.Devices,
		bus:     bus,
		procs:   procs,
		log:     log,
	}
}

// Start запускает по воркеру на устройство. Один воркер на канал — единственный
// механизм FIFO-порядка команд устройства, вторых потребителей канала быть
// не должно.
func (r *Router) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	for _, device := range r.devices {
		proc, ok := r.procs[device.ID]
		if !ok {
			r.log.Errorw("нет процессора для устройства", "device", device.ID)
			continue
		}

		r.wg.Add(1)
		go func(device atolWorker.DeviceConfig, proc interfaces.Processor) {
			defer r.wg.Done()
			err := r.bus.Consume(ctx, device.CommandChannel(), func(payload []byte) {
				r.handleMessage(ctx, device, proc, payload)
			})
			if err != nil && ctx.Err() == nil {
				r.log.Errorw("воркер устройства остановился", "device", device.ID, "error", err)
			}
		}(device, proc)
	}

	r.log.Infow("🚀 роутер команд запущен", "devices", len(r.devices))
}

// Stop останавливает воркеры и дожидается их завершения.
func (r *Router) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

// handleMessage обрабатывает одно сообщение командного канала. Сообщение
// никогда не роняет воркер: ping пропускается, нечитаемый payload
// логируется и отбрасывается, любая ошибка исполнения уже упакована
// процессором в ответ.
func (r *Router) handleMessage(ctx context.Context, device atolWorker.DeviceConfig, proc interfaces.Processor, payload []byte) {
	if string(payload) == models.PingPayload {
		return
	}

	var cmd models.Command
	if err := json.Unmarshal(payload, &cmd); err != nil {
		r.log.Warnw("⚠️ нечитаемое сообщение отброшено", "device", device.ID, "error", err)
		return
	}

	r.log.Infow("📥 команда получена", "device", device.ID, "command", cmd.Command, "command_id", cmd.CommandID)
	resp := proc.Execute(cmd)

	raw, err := json.Marshal(resp)
	if err != nil {
		r.log.Errorw("не удалось сериализовать ответ", "device", device.ID, "command_id", cmd.CommandID, "error", err)
		return
	}
	if err := r.bus.Publish(ctx, device.ResponseChannel(), raw); err != nil {
		r.log.Errorw("не удалось опубликовать ответ", "device", device.ID, "command_id", cmd.CommandID, "error", err)
		return
	}
	r.log.Infow("📤 ответ отправлен", "device", device.ID, "command_id", cmd.CommandID, "success", resp.Success)
}
