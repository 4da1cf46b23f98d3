package tgbot

import (
	"errors"
	"log"

	"github.com/Geergon/tiktok-goTelegramBot/internal/tiktok"
	"github.com/celestix/gotgproto/ext"
	"github.com/gotd/td/tg"
)

// report перетворює помилку будь-якого кроку на рівно одне повідомлення
// користувачу: редагує службове повідомлення, а якщо його вже немає —
// надсилає нове. Жодна помилка не лишається без відповіді в чаті.
func (h *Handler) report(ctx *ext.Context, chatID int64, placeholderID int, link string, err error) {
	var userMsg string
	switch {
	case errors.Is(err, tiktok.ErrInvalidLink):
		userMsg = "Це не схоже на робоче посилання на TikTok. Спробуйте інше."
	case errors.Is(err, tiktok.ErrUpstreamTimeout):
		userMsg = "Сервер надто довго відповідає. Спробуйте пізніше."
	case errors.Is(err, tiktok.ErrContentUnavailable):
		userMsg = "Не вдалося обробити відео. Можливо, воно приватне або видалене. 😥"
	default:
		userMsg = "Сталася невідома помилка. 😥"
	}

	log.Printf("Помилка обробки %s у чаті %d: %v", link, chatID, err)

	if placeholderID != 0 {
		if _, editErr := ctx.EditMessage(chatID, &tg.MessagesEditMessageRequest{
			ID:      placeholderID,
			Message: userMsg,
		}); editErr == nil {
			return
		} else {
			log.Printf("Помилка редагування повідомлення про помилку: %v", editErr)
		}
	}

	if _, sendErr := ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
		Message: userMsg,
	}); sendErr != nil {
		log.Printf("Не вдалося надіслати повідомлення про помилку: %v", sendErr)
	}
}
