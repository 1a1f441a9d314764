package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	atolWorker "github.com/kassatech/atolWorker"
	"github.com/kassatech/atolWorker/internal/domain/models"
	"github.com/kassatech/atolWorker/internal/interfaces"
	tele "gopkg.in/telebot.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CommandHandler публикует админ-команды в каналы устройств. Ответы
// устройства уходят в канал ответов, как для любого клиента шины —
// бот отдаёт только command_id для корреляции.
type CommandHandler struct {
	cfg *atolWorker.Config
	bus interfaces.Bus
}

func NewCommandHandler(cfg *atolWorker.Config, bus interfaces.Bus) *CommandHandler {
	return &CommandHandler{cfg: cfg, bus: bus}
}

func (h *CommandHandler) OnStart(c tele.Context) error {
	return c.Send("👋 <b>ATOL Worker</b>\n\n/devices — список устройств\n/status &lt;device&gt; — запросить статус\n/ping &lt;device&gt; — проверить канал")
}

func (h *CommandHandler) OnDevices(c tele.Context) error {
	if len(h.cfg.Devices) == 0 {
		return c.Send("⚠️ Устройства не сконфигурированы")
	}

	var sb strings.Builder
	sb.WriteString("🖨 <b>Устройства</b>\n\n")
	for _, d := range h.cfg.Devices {
		switch d.ConnectionType {
		case "tcp":
			fmt.Fprintf(&sb, "• <code>%s</code> — tcp %s:%d\n", d.ID, d.Host, d.Port)
		case "serial":
			fmt.Fprintf(&sb, "• <code>%s</code> — serial %s @ %d\n", d.ID, d.SerialPort, d.BaudRate)
		default:
			fmt.Fprintf(&sb, "• <code>%s</code> — %s\n", d.ID, d.ConnectionType)
		}
	}
	return c.Send(sb.String())
}

func (h *CommandHandler) OnStatus(c tele.Context) error {
	device, ok := h.findDevice(c.Message().Payload)
	if !ok {
		return c.Send("⚠️ Укажите устройство: /status &lt;device&gt;")
	}

	cmd := models.Command{
		CommandID: uuid.NewString(),
		DeviceID:  device.ID,
		Command:   models.OpGetStatus,
	}
	raw, err := json.Marshal(cmd)
	if err != nil {
		return c.Send("Ошибка сериализации команды")
	}

	if err := h.publish(device.CommandChannel(), raw); err != nil {
		return c.Send(fmt.Sprintf("❌ Не удалось отправить команду: %s", err))
	}
	return c.Send(fmt.Sprintf("📤 Команда отправлена\ncommand_id: <code>%s</code>", cmd.CommandID))
}

func (h *CommandHandler) OnPing(c tele.Context) error {
	device, ok := h.findDevice(c.Message().Payload)
	if !ok {
		return c.Send("⚠️ Укажите устройство: /ping &lt;device&gt;")
	}

	if err := h.publish(device.CommandChannel(), []byte(models.PingPayload)); err != nil {
		return c.Send(fmt.Sprintf("❌ Не удалось отправить ping: %s", err))
	}
	return c.Send(fmt.Sprintf("🏓 Ping отправлен в канал <code>%s</code>", device.CommandChannel()))
}

func (h *CommandHandler) findDevice(payload string) (atolWorker.DeviceConfig, bool) {
	id := strings.TrimSpace(payload)
	for _, d := range h.cfg.Devices {
		if d.ID == id {
			return d, true
		}
	}
	return atolWorker.DeviceConfig{}, false
}

func (h *CommandHandler) publish(channel string, payload []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return h.bus.Publish(ctx, channel, payload)
}
