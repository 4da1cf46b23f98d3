package tgbot

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Geergon/tiktok-goTelegramBot/internal/database"
	"github.com/celestix/gotgproto/ext"
	"github.com/gotd/td/tg"
)

// AddToWhitelist — /add <user_id> [username].
func (h *Handler) AddToWhitelist(ctx *ext.Context, u *ext.Update) error {
	if !h.AdminAccess(ctx, u) {
		return nil
	}
	chatID := u.EffectiveChat().GetID()

	args := strings.Fields(u.EffectiveMessage.Text)
	if len(args) < 2 {
		_, err := ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
			Message: "Використання: /add <user_id> [username]",
		})
		return err
	}

	userID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		_, err := ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
			Message: "user_id має бути числом.",
		})
		return err
	}
	username := ""
	if len(args) > 2 {
		username = strings.TrimPrefix(args[2], "@")
	}

	if err := database.InsertIntoWhitelist(h.db, username, userID); err != nil {
		log.Printf("Не вдалося додати користувача %d до вайтлисту: %v", userID, err)
		_, err := ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
			Message: "Помилка: не вдалося додати користувача.",
		})
		return err
	}

	_, err = ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
		Message: fmt.Sprintf("Користувача %d додано до вайтлисту. ✅", userID),
	})
	return err
}

// RemoveFromWhitelist — /remove <username>.
func (h *Handler) RemoveFromWhitelist(ctx *ext.Context, u *ext.Update) error {
	if !h.AdminAccess(ctx, u) {
		return nil
	}
	chatID := u.EffectiveChat().GetID()

	args := strings.Fields(u.EffectiveMessage.Text)
	if len(args) != 2 {
		_, err := ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
			Message: "Використання: /remove <username>",
		})
		return err
	}
	username := strings.TrimPrefix(args[1], "@")

	if err := database.DeleteFromWhitelist(h.db, username); err != nil {
		log.Printf("Не вдалося видалити користувача %s з вайтлисту: %v", username, err)
		_, err := ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
			Message: "Помилка: не вдалося видалити користувача.",
		})
		return err
	}

	_, err := ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
		Message: fmt.Sprintf("Користувача @%s видалено з вайтлисту.", username),
	})
	return err
}

// ListWhitelist — /list.
func (h *Handler) ListWhitelist(ctx *ext.Context, u *ext.Update) error {
	if !h.AdminAccess(ctx, u) {
		return nil
	}
	chatID := u.EffectiveChat().GetID()

	ids, usernames, err := database.GetAllWhitelist(h.db)
	if err != nil {
		log.Printf("Помилка читання вайтлисту: %v", err)
		_, err := ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
			Message: "Помилка: не вдалося прочитати вайтлист.",
		})
		return err
	}

	if len(ids) == 0 {
		_, err := ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
			Message: "Вайтлист порожній.",
		})
		return err
	}

	var b strings.Builder
	b.WriteString("Вайтлист:\n")
	for i, id := range ids {
		if usernames[i] != "" {
			fmt.Fprintf(&b, "%d — @%s\n", id, usernames[i])
		} else {
			fmt.Fprintf(&b, "%d\n", id)
		}
	}

	_, err = ctx.SendMessage(chatID, &tg.MessagesSendMessageRequest{
		Message: b.String(),
	})
	return err
}
