package bus_test

import (
	"context"
	"sync"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	atolWorker "github.com/kassatech/atolWorker"
	"github.com/kassatech/atolWorker/internal/domain/models"
	"github.com/kassatech/atolWorker/internal/driver"
	busrouter "github.com/kassatech/atolWorker/internal/handlers/bus"
	"github.com/kassatech/atolWorker/internal/interfaces"
	"github.com/kassatech/atolWorker/internal/usecases"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// memBus — шина в памяти: канал устройства — буферизованный go-канал,
// публикации складируются для проверок.
type memBus struct {
	mu        sync.Mutex
	inboxes   map[string]chan []byte
	published map[string][][]byte
}

func newMemBus() *memBus {
	return &memBus{
		inboxes:   make(map[string]chan []byte),
		published: make(map[string][][]byte),
	}
}

func (b *memBus) inbox(channel string) chan []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch, ok := b.inboxes[channel]
	if !ok {
		ch = make(chan []byte, 64)
		b.inboxes[channel] = ch
	}
	return ch
}

func (b *memBus) Publish(_ context.Context, channel string, payload []byte) error {
	b.mu.Lock()
	b.published[channel] = append(b.published[channel], payload)
	b.mu.Unlock()
	b.inbox(channel) <- payload
	return nil
}

func (b *memBus) Consume(ctx context.Context, channel string, handle func(payload []byte)) error {
	ch := b.inbox(channel)
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-ch:
			handle(msg)
		}
	}
}

func (b *memBus) Close() error { return nil }

func (b *memBus) Published(channel string) [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([][]byte, len(b.published[channel]))
	copy(out, b.published[channel])
	return out
}

func newTestRouter(t *testing.T, deviceIDs ...string) (*busrouter.Router, *memBus, *atolWorker.Config) {
	t.Helper()
	log := zap.NewNop().Sugar()
	cfg := &atolWorker.Config{CashierName: "Кассир"}
	procs := make(map[string]interfaces.Processor)
	for _, id := range deviceIDs {
		device := atolWorker.DeviceConfig{ID: id, ConnectionType: "tcp", Host: "localhost", Port: 5555}
		cfg.Devices = append(cfg.Devices, device)
		drv := driver.New(driver.NewEmulator(), device)
		resolver := usecases.NewCashierResolver(cfg, nil, log)
		procs[id] = usecases.NewCommandProcessor(id, drv, resolver, log)
	}

	transport := newMemBus()
	router := busrouter.NewRouter(cfg, transport, procs, log)
	return router, transport, cfg
}

func publishCommand(t *testing.T, b *memBus, device atolWorker.DeviceConfig, cmd models.Command) {
	t.Helper()
	raw, err := json.Marshal(cmd)
	require.NoError(t, err)
	require.NoError(t, b.Publish(context.Background(), device.CommandChannel(), raw))
}

func decodeResponses(t *testing.T, payloads [][]byte) []models.Response {
	t.Helper()
	out := make([]models.Response, 0, len(payloads))
	for _, raw := range payloads {
		var resp models.Response
		require.NoError(t, json.Unmarshal(raw, &resp))
		out = append(out, resp)
	}
	return out
}

func Test_Router_RoutesCommandAndPublishesResponse(t *testing.T) {
	router, memBus, cfg := newTestRouter(t, "kkt-1")
	router.Start()
	defer router.Stop()

	device := cfg.Devices[0]
	publishCommand(t, memBus, device, models.Command{
		CommandID: "cmd-1",
		DeviceID:  device.ID,
		Command:   models.OpGetSerialNumber,
	})

	require.Eventually(t, func() bool {
		return len(memBus.Published(device.ResponseChannel())) == 1
	}, time.Second, 10*time.Millisecond)

	responses := decodeResponses(t, memBus.Published(device.ResponseChannel()))
	assert.Equal(t, "cmd-1", responses[0].CommandID)
	assert.True(t, responses[0].Success)
	assert.Contains(t, responses[0].Data, "serial_number")
}

// Ping и нечитаемые сообщения не порождают ответов и не роняют воркер.
func Test_Router_SkipsPingAndDropsMalformed(t *testing.T) {
	router, memBus, cfg := newTestRouter(t, "kkt-1")
	router.Start()
	defer router.Stop()

	device := cfg.Devices[0]
	require.NoError(t, memBus.Publish(context.Background(), device.CommandChannel(), []byte(models.PingPayload)))
	require.NoError(t, memBus.Publish(context.Background(), device.CommandChannel(), []byte("{broken json")))
	publishCommand(t, memBus, device, models.Command{
		CommandID: "cmd-after-garbage",
		DeviceID:  device.ID,
		Command:   models.OpBeep,
	})

	require.Eventually(t, func() bool {
		return len(memBus.Published(device.ResponseChannel())) == 1
	}, time.Second, 10*time.Millisecond)

	responses := decodeResponses(t, memBus.Published(device.ResponseChannel()))
	assert.Equal(t, "cmd-after-garbage", responses[0].CommandID)
}

func Test_Router_PreservesPerDeviceOrder(t *testing.T) {
	router, memBus, cfg := newTestRouter(t, "kkt-1")
	router.Start()
	defer router.Stop()

	device := cfg.Devices[0]
	ids := []string{"cmd-a", "cmd-b", "cmd-c", "cmd-d"}
	for _, id := range ids {
		publishCommand(t, memBus, device, models.Command{
			CommandID: id,
			DeviceID:  device.ID,
			Command:   models.OpGetShortStatus,
		})
	}

	require.Eventually(t, func() bool {
		return len(memBus.Published(device.ResponseChannel())) == len(ids)
	}, time.Second, 10*time.Millisecond)

	responses := decodeResponses(t, memBus.Published(device.ResponseChannel()))
	got := make([]string, 0, len(responses))
	for _, resp := range responses {
		got = append(got, resp.CommandID)
	}
	assert.Equal(t, ids, got)
}

func Test_Router_IsolatesDevices(t *testing.T) {
	router, memBus, cfg := newTestRouter(t, "kkt-1", "kkt-2")
	router.Start()
	defer router.Stop()

	first, second := cfg.Devices[0], cfg.Devices[1]
	publishCommand(t, memBus, first, models.Command{
		CommandID: "cmd-first",
		DeviceID:  first.ID,
		Command:   models.OpGetSerialNumber,
	})
	publishCommand(t, memBus, second, models.Command{
		CommandID: "cmd-second",
		DeviceID:  second.ID,
		Command:   models.OpGetSerialNumber,
	})

	require.Eventually(t, func() bool {
		return len(memBus.Published(first.ResponseChannel())) == 1 &&
			len(memBus.Published(second.ResponseChannel())) == 1
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, "cmd-first", decodeResponses(t, memBus.Published(first.ResponseChannel()))[0].CommandID)
	assert.Equal(t, "cmd-second", decodeResponses(t, memBus.Published(second.ResponseChannel()))[0].CommandID)
}

// Неуспешный ответ — тоже ответ: ошибка устройства уходит в канал ответов.
func Test_Router_PublishesFailureResponses(t *testing.T) {
	router, memBus, cfg := newTestRouter(t, "kkt-1")
	router.Start()
	defer router.Stop()

	device := cfg.Devices[0]
	publishCommand(t, memBus, device, models.Command{
		CommandID: "cmd-bad",
		DeviceID:  device.ID,
		Command:   "no_such_operation",
	})

	require.Eventually(t, func() bool {
		return len(memBus.Published(device.ResponseChannel())) == 1
	}, time.Second, 10*time.Millisecond)

	responses := decodeResponses(t, memBus.Published(device.ResponseChannel()))
	assert.Equal(t, "cmd-bad", responses[0].CommandID)
	assert.False(t, responses[0].Success)
}
