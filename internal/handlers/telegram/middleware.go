package telegram

import (
	"strings"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func LogMiddleware(log *zap.SugaredLogger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			user := c.Sender()
			username := user.FirstName
			if user.Username != "" {
				username += " (@" + user.Username + ")"
			}

			log.Infow("сообщение бота",
				"user_id", user.ID,
				"user", username,
				"text", strings.TrimSpace(c.Text()),
				"duration", time.Since(start),
			)
			return err
		}
	}
}
