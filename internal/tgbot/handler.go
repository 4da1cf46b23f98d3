package tgbot

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/Geergon/tiktok-goTelegramBot/internal/tiktok"
	"github.com/celestix/gotgproto/ext"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gotd/td/tg"
	"github.com/spf13/viper"
)

var viperMutex sync.RWMutex

// Handler тримає все, що потрібно обробникам: клієнт API, Bot API клієнт для
// медіа-груп і базу вайтлисту. MTProto-клієнт приходить через ext.Context у
// кожен виклик.
type Handler struct {
	api *tiktok.Client
	bot *tgbotapi.BotAPI
	db  *sql.DB
}

func NewHandler(api *tiktok.Client, botToken string, db *sql.DB) (*Handler, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("ініціалізація Bot API: %w", err)
	}
	return &Handler{api: api, bot: bot, db: db}, nil
}

func (h *Handler) Start(ctx *ext.Context, u *ext.Update) error {
	chatID := u.EffectiveChat().GetID()
	_, err := ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
		Message: "Привіт! Надішли посилання на TikTok — поверну відео або фотоальбом разом з описом і статистикою.",
	})
	return err
}

// Echo — обробник звичайних текстових повідомлень. Працює лише коли
// увімкнено автозавантаження; команди пропускає.
func (h *Handler) Echo(ctx *ext.Context, u *ext.Update) error {
	viperMutex.RLock()
	autoDownload := viper.GetBool("auto_download")
	viperMutex.RUnlock()
	if !autoDownload {
		return nil
	}
	if strings.HasPrefix(u.EffectiveMessage.Text, "/") {
		return nil
	}
	return h.Download(ctx, u)
}
