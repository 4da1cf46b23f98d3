package tgbot

import (
	"fmt"
	"log"
	"strconv"

	"github.com/Geergon/tiktok-goTelegramBot/internal/tiktok"
	"github.com/celestix/gotgproto/ext"
	"github.com/celestix/gotgproto/types"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gotd/td/tg"
)

// Ліміт Telegram на кількість елементів у одній медіа-групі.
const albumBatchLimit = 10

// sendAlbum доставляє фотоальбом медіа-групами через Bot API. Підпис несе
// перший елемент першої групи, службове повідомлення після відправки
// видаляється.
func (h *Handler) sendAlbum(ctx *ext.Context, u *ext.Update, chatID int64, placeholderID int, capt string, res *tiktok.Result) error {
	images := make([][]byte, 0, len(res.Payload.ImagePaths))
	for _, p := range res.Payload.ImagePaths {
		data, err := h.api.FetchImage(ctx, p)
		if err != nil {
			log.Printf("Не вдалося отримати зображення %s: %v", p, err)
			continue
		}
		images = append(images, data)
	}
	if len(images) == 0 {
		return fmt.Errorf("жодне зображення альбому не завантажилося")
	}

	ctx.EditMessage(chatID, &tg.MessagesEditMessageRequest{
		ID:      placeholderID,
		Message: "Надсилання: \n[◼◼◼◼◼◼◼◻]",
	})

	botChatID := bridgeChatID(u.EffectiveChat(), chatID)
	log.Printf("Надсилаю %d зображень у чат %d медіа-групами", len(images), botChatID)

	for batchIdx, batch := range chunkImages(images, albumBatchLimit) {
		group := make([]interface{}, 0, len(batch))
		for i, data := range batch {
			name := fmt.Sprintf("image_%02d.jpeg", batchIdx*albumBatchLimit+i+1)
			media := tgbotapi.NewInputMediaPhoto(tgbotapi.FileBytes{Name: name, Bytes: data})
			if batchIdx == 0 && i == 0 && capt != "" {
				media.Caption = capt
				media.ParseMode = tgbotapi.ModeHTML
			}
			group = append(group, media)
		}
		if _, err := h.bot.SendMediaGroup(tgbotapi.NewMediaGroup(botChatID, group)); err != nil {
			return fmt.Errorf("надсилання медіа-групи: %w", err)
		}
	}

	if err := ctx.DeleteMessages(chatID, []int{placeholderID}); err != nil {
		log.Printf("Помилка видалення службового повідомлення (ID: %d, ChatID: %d): %v", placeholderID, chatID, err)
	}
	return nil
}

func chunkImages(images [][]byte, size int) [][][]byte {
	var batches [][][]byte
	for len(images) > size {
		batches = append(batches, images[:size])
		images = images[size:]
	}
	if len(images) > 0 {
		batches = append(batches, images)
	}
	return batches
}

// bridgeChatID зводить id чату з MTProto до формату Bot API залежно від типу
// піра: канали й супергрупи отримують префікс -100, звичайні групи — знак
// мінус, приватні чати лишаються як є.
func bridgeChatID(chat types.EffectiveChat, chatID int64) int64 {
	switch {
	case chat == nil:
		return chatID
	case chat.IsAChannel():
		return botAPIChatID(chatID)
	case chat.IsAChat():
		if chatID > 0 {
			return -chatID
		}
		return chatID
	default:
		return chatID
	}
}

// botAPIChatID зводить id супергрупи з MTProto до формату Bot API: той самий
// id з префіксом -100. Від'ємні id вже повні, їх не чіпаємо.
func botAPIChatID(chatID int64) int64 {
	if chatID < 0 {
		return chatID
	}
	full, err := strconv.ParseInt("-100"+strconv.FormatInt(chatID, 10), 10, 64)
	if err != nil {
		return chatID
	}
	return full
}
