package tgbot

import (
	"log"

	"github.com/celestix/gotgproto/ext"
	"github.com/gotd/td/tg"
	"github.com/spf13/viper"
)

func settingsRows() []tg.KeyboardButtonRow {
	return []tg.KeyboardButtonRow{
		{
			Buttons: []tg.KeyboardButtonClass{
				&tg.KeyboardButtonCallback{
					Text: "Автозавантаження посилань: " + boolToEmoji(viper.GetBool("auto_download")),
					Data: []byte("cb_settings_auto_download"),
				},
			},
		},
		{
			Buttons: []tg.KeyboardButtonClass{
				&tg.KeyboardButtonCallback{
					Text: "Видалення посилань: " + boolToEmoji(viper.GetBool("delete_url")),
					Data: []byte("cb_settings_delete_links"),
				},
			},
		},
	}
}

func boolToEmoji(b bool) string {
	if b {
		return "✅"
	}
	return "❌"
}

func (h *Handler) Settings(ctx *ext.Context, update *ext.Update) error {
	if !h.AdminAccess(ctx, update) {
		return nil
	}
	chatID := update.EffectiveChat().GetID()

	viperMutex.RLock()
	rows := settingsRows()
	viperMutex.RUnlock()

	_, _ = ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
		Message: "⚙️ Налаштування бота:\nВиберіть опцію для увімкнення/вимкнення.",
		ReplyMarkup: &tg.ReplyInlineMarkup{
			Rows: rows,
		},
	})
	return nil
}

func (h *Handler) SettingsCallback(ctx *ext.Context, u *ext.Update) error {
	chatID := u.EffectiveChat().GetID()

	callback := u.CallbackQuery
	data := callback.Data
	messageID := callback.MsgID

	viperMutex.Lock()
	switch string(data) {
	case "cb_settings_auto_download":
		viper.Set("auto_download", !viper.GetBool("auto_download"))
	case "cb_settings_delete_links":
		viper.Set("delete_url", !viper.GetBool("delete_url"))
	default:
		log.Printf("Невідомий callback: %s", data)
		viperMutex.Unlock()
		return nil
	}
	if err := viper.WriteConfig(); err != nil {
		log.Printf("Помилка збереження конфігурації: %v", err)
		viperMutex.Unlock()
		return err
	}
	viperMutex.Unlock()

	viperMutex.RLock()
	rows := settingsRows()
	viperMutex.RUnlock()

	_, _ = ctx.EditMessage(chatID, &tg.MessagesEditMessageRequest{
		ID:      messageID,
		Message: "⚙️ Налаштування бота:",
		ReplyMarkup: &tg.ReplyInlineMarkup{
			Rows: rows,
		},
	})

	_, _ = ctx.AnswerCallback(&tg.MessagesSetBotCallbackAnswerRequest{
		QueryID: callback.QueryID,
	})
	return nil
}
