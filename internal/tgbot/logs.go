package tgbot

import (
	"log"
	"os"

	"github.com/celestix/gotgproto/ext"
	"github.com/gotd/td/telegram/uploader"
	"github.com/gotd/td/tg"
)

// LogFile — файл, куди main скеровує логи; команда /logs віддає його адміну.
const LogFile = "bot.log"

func (h *Handler) SendLogs(ctx *ext.Context, update *ext.Update) error {
	if !h.AdminAccess(ctx, update) {
		return nil
	}
	chatID := update.EffectiveChat().GetID()

	fileInfo, err := os.Stat(LogFile)
	if err != nil {
		logMsg := "Помилка перевірки файлу логів"
		if os.IsNotExist(err) {
			logMsg = "Файл логів не існує: " + LogFile
		}
		log.Println(logMsg)
		_, err := ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
			Message: "Помилка: файл логів недоступний.",
		})
		return err
	}

	if fileInfo.IsDir() {
		log.Printf("Файл %s є директорією", LogFile)
		_, err := ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
			Message: "Помилка: файл логів є директорією.",
		})
		return err
	}

	if fileInfo.Size() == 0 {
		log.Println("Файл логів порожній")
		_, err := ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
			Message: "Файл логів порожній.",
		})
		return err
	}

	logFileData, err := uploader.NewUploader(ctx.Raw).FromPath(ctx, LogFile)
	if err != nil {
		log.Printf("Помилка завантаження файлу логів: %v", err)
		_, err := ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
			Message: "Помилка: не вдалося завантажити файл логів.",
		})
		return err
	}

	media := &tg.InputMediaUploadedDocument{
		File:     logFileData,
		MimeType: "text/plain",
		Attributes: []tg.DocumentAttributeClass{
			&tg.DocumentAttributeFilename{
				FileName: LogFile,
			},
		},
	}

	_, err = ctx.SendMedia(chatID, &tg.MessagesSendMediaRequest{
		Media: media,
	})
	if err != nil {
		log.Printf("Помилка надсилання файлу логів: %v", err)
		return err
	}

	return nil
}
