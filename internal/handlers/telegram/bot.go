package telegram

import (
	"time"

	atolWorker "github.com/kassatech/atolWorker"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/middleware"
)

// Bot — административный интерфейс воркера. Необязателен: без TG_TOKEN
// воркер работает только через шину.
type Bot struct {
	Bot *tele.Bot
	log *zap.SugaredLogger
}

func NewBot(cfg *atolWorker.Config, commands *CommandHandler, log *zap.SugaredLogger) *Bot {
	if cfg.TgToken == "" {
		log.Infow("TG_TOKEN не задан, бот отключен")
		return nil
	}

	pref := tele.Settings{
		Token:     cfg.TgToken,
		Poller:    &tele.LongPoller{Timeout: 10 * time.Second},
		ParseMode: tele.ModeHTML,
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		log.Warnw("⚠️ не удалось создать бота, работаем без него", "error", err)
		return nil
	}

	b.Use(middleware.Recover())
	b.Use(LogMiddleware(log))

	b.Handle("/start", commands.OnStart)
	b.Handle("/devices", commands.OnDevices)
	b.Handle("/status", commands.OnStatus)
	b.Handle("/ping", commands.OnPing)

	err = b.SetCommands([]tele.Command{
		{Text: "devices", Description: "Список устройств"},
		{Text: "status", Description: "Запросить статус ККТ"},
		{Text: "ping", Description: "Проверить канал устройства"},
	})
	if err != nil {
		log.Warnw("⚠️ не удалось обновить список команд", "error", err)
	}

	return &Bot{Bot: b, log: log}
}

func (b *Bot) Start() {
	b.log.Infow("🤖 бот запущен")
	b.Bot.Start()
}

func (b *Bot) Stop() {
	b.Bot.Stop()
}
