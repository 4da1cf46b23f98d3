package tgbot

import (
	"log"

	"github.com/Geergon/tiktok-goTelegramBot/internal/database"
	"github.com/celestix/gotgproto/ext"
	"github.com/spf13/viper"
)

// Access повертає id чату, якщо повідомлення дозволено обробляти, інакше 0.
// Порожні списки allowed_chat і allowed_user означають відкритий режим.
func (h *Handler) Access(ctx *ext.Context, update *ext.Update) int64 {
	chat := update.EffectiveChat()
	if chat == nil {
		return 0
	}
	chatID := chat.GetID()
	user := update.EffectiveUser()

	viperMutex.RLock()
	allowedChats := viper.GetIntSlice("allowed_chat")
	allowedUsers := viper.GetIntSlice("allowed_user")
	viperMutex.RUnlock()

	if len(allowedChats) == 0 && len(allowedUsers) == 0 {
		return chatID
	}

	for _, allowed := range allowedChats {
		if int64(allowed) == chatID {
			return chatID
		}
	}

	if user != nil {
		for _, allowedUserID := range allowedUsers {
			if int64(allowedUserID) == user.ID {
				return chatID
			}
		}

		whitelisted, err := database.IsUserWhitelisted(h.db, user.ID)
		if err != nil {
			log.Println(err)
		}
		if whitelisted {
			return chatID
		}
	}

	username := ""
	userID := int64(0)
	if user != nil {
		username = user.Username
		userID = user.ID
	}
	log.Printf("Неавторизований доступ: %s (UserID: %d, ChatID: %d)", username, userID, chatID)
	return 0
}

// AdminAccess пускає лише користувачів зі списку allowed_user.
func (h *Handler) AdminAccess(ctx *ext.Context, update *ext.Update) bool {
	user := update.EffectiveUser()
	if user == nil {
		return false
	}

	viperMutex.RLock()
	allowedUsers := viper.GetIntSlice("allowed_user")
	viperMutex.RUnlock()

	for _, allowedUserID := range allowedUsers {
		if int64(allowedUserID) == user.ID {
			return true
		}
	}

	log.Printf("Неавторизований доступ до адмінських команд: %s (UserID: %d)", user.Username, user.ID)
	return false
}
