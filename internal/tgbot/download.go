package tgbot

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Geergon/tiktok-goTelegramBot/internal/caption"
	"github.com/Geergon/tiktok-goTelegramBot/internal/tiktok"
	"github.com/celestix/gotgproto/ext"
	"github.com/gotd/td/telegram/message/entity"
	tghtml "github.com/gotd/td/telegram/message/html"
	"github.com/gotd/td/telegram/uploader"
	"github.com/gotd/td/tg"
	"github.com/spf13/viper"
)

// Download — увесь конвеєр одного повідомлення: посилання → запит до API →
// підпис → відео або альбом. Стан між повідомленнями не тримається, кожен
// виклик незалежний.
func (h *Handler) Download(ctx *ext.Context, u *ext.Update) error {
	chatID := h.Access(ctx, u)
	if chatID == 0 {
		return nil
	}

	msg := u.EffectiveMessage
	text := msg.Text

	link, ok := tiktok.ExtractURL(text)
	if !ok || !tiktok.IsURL(link) {
		return nil
	}
	log.Printf("Знайдено посилання %s у чаті %d", link, chatID)

	sent, err := ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
		Message: "⏳ Обробка посилання: \n[◼◼◻◻◻◻◻◻]",
	})
	if err != nil {
		log.Printf("Помилка надсилання повідомлення про початок: %v", err)
		return err
	}

	res, err := h.api.VideoData(ctx, link)
	if err != nil {
		h.report(ctx, chatID, sent.GetID(), link, err)
		return nil
	}

	ctx.EditMessage(chatID, &tg.MessagesEditMessageRequest{
		ID:      sent.GetID(),
		Message: "Отримано дані, готую медіа: \n[◼◼◼◼◻◻◻◻]",
	})

	capt := caption.Render(&res.Metadata)

	switch res.Payload.Kind {
	case tiktok.PayloadAlbum:
		err = h.sendAlbum(ctx, u, chatID, sent.GetID(), capt, res)
	default:
		err = h.sendVideo(ctx, chatID, sent.GetID(), capt, res)
	}
	if err != nil {
		h.report(ctx, chatID, sent.GetID(), link, err)
		return nil
	}

	viperMutex.RLock()
	deleteURL := viper.GetBool("delete_url")
	viperMutex.RUnlock()
	if deleteURL && strings.TrimSpace(text) == link {
		if err := ctx.DeleteMessages(chatID, []int{msg.ID}); err != nil {
			log.Printf("Помилка видалення повідомлення з посиланням (ID: %d, ChatID: %d): %v", msg.ID, chatID, err)
		}
	}

	log.Printf("Медіа за посиланням %s доставлено у чат %d", link, chatID)
	return nil
}

// sendVideo доставляє відео редагуванням службового повідомлення: воно стає
// фінальним, окремо видаляти нічого не треба. Підпис іде в тому ж редагуванні,
// тому обмеження на довжину підпису при надсиланні нас не стосується.
func (h *Handler) sendVideo(ctx *ext.Context, chatID int64, placeholderID int, capt string, res *tiktok.Result) error {
	fileName := "video.mp4"
	if res.Metadata.VideoID != "" {
		fileName = res.Metadata.VideoID + ".mp4"
	}

	up := uploader.NewUploader(ctx.Raw)
	var file tg.InputFileClass
	var err error
	switch res.Payload.Kind {
	case tiktok.PayloadVideoRef:
		file, err = up.FromPath(ctx, res.Payload.FilePath)
	default:
		file, err = up.FromBytes(ctx, fileName, res.Payload.Video)
	}
	if err != nil {
		return fmt.Errorf("завантаження відео в Telegram: %w", err)
	}

	media := &tg.InputMediaUploadedDocument{
		File:     file,
		MimeType: "video/mp4",
		Attributes: []tg.DocumentAttributeClass{
			&tg.DocumentAttributeVideo{
				SupportsStreaming: true,
			},
			&tg.DocumentAttributeFilename{
				FileName: fileName,
			},
		},
	}

	ctx.EditMessage(chatID, &tg.MessagesEditMessageRequest{
		ID:      placeholderID,
		Message: "Надсилання: \n[◼◼◼◼◼◼◼◻]",
	})

	msgText, entities, err := captionEntities(capt)
	if err != nil {
		return err
	}

	req := &tg.MessagesEditMessageRequest{
		ID:       placeholderID,
		Message:  msgText,
		Media:    media,
		Entities: entities,
	}
	if markup := h.trackButton(ctx, &res.Metadata); markup != nil {
		req.ReplyMarkup = markup
	}
	if _, err := ctx.EditMessage(chatID, req); err != nil {
		return fmt.Errorf("редагування повідомлення з відео: %w", err)
	}
	return nil
}

// captionEntities перетворює HTML-підпис на текст з MTProto-сутностями.
func captionEntities(capt string) (string, []tg.MessageEntityClass, error) {
	var b entity.Builder
	if err := tghtml.HTML(strings.NewReader(capt), &b, tghtml.Options{}); err != nil {
		return "", nil, fmt.Errorf("розбір підпису: %w", err)
	}
	msgText, entities := b.Complete()
	return msgText, entities, nil
}

// trackButton повертає кнопку із посиланням на завантаження розпізнаного
// треку або nil, коли треку немає. Статус музики питаємо рівно один раз і
// тільки якщо Shazam щось упізнав, а файл ще не готовий.
func (h *Handler) trackButton(ctx context.Context, meta *tiktok.Metadata) tg.ReplyMarkupClass {
	if meta.VideoID == "" {
		return nil
	}
	fileID := meta.MusicFileID
	if fileID == "" && meta.Shazam != nil && meta.Shazam.Title != "" {
		id, err := h.api.MusicStatus(ctx, meta.VideoID)
		if err != nil {
			log.Printf("Помилка перевірки статусу музики для %s: %v", meta.VideoID, err)
			return nil
		}
		fileID = id
	}
	if fileID == "" {
		return nil
	}
	return &tg.ReplyInlineMarkup{
		Rows: []tg.KeyboardButtonRow{
			{
				Buttons: []tg.KeyboardButtonClass{
					&tg.KeyboardButtonURL{
						Text: "🎵 Завантажити трек",
						URL:  h.api.DownloadURL(meta.VideoID, fileID),
					},
				},
			},
		},
	}
}
