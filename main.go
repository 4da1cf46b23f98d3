package main

import (
	"errors"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/Geergon/tiktok-goTelegramBot/internal/database"
	"github.com/Geergon/tiktok-goTelegramBot/internal/tgbot"
	"github.com/Geergon/tiktok-goTelegramBot/internal/tiktok"

	"github.com/celestix/gotgproto"
	"github.com/celestix/gotgproto/dispatcher/handlers"
	"github.com/celestix/gotgproto/dispatcher/handlers/filters"
	"github.com/celestix/gotgproto/sessionMaker"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Помилка при завантаженні .env файлу")
	}

	log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   tgbot.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     14,
	}))

	appId, err := strconv.Atoi(os.Getenv("APP_ID"))
	if err != nil {
		log.Fatal("Помилка при отриманні APP_ID")
	}
	apiHash := os.Getenv("API_HASH")
	if apiHash == "" {
		log.Fatal("API_HASH не задано")
	}
	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		log.Fatal("BOT_TOKEN не задано")
	}

	initConfig()

	whitelistDb, err := database.InitDB("whitelist.db")
	if err != nil {
		log.Fatalln("Помилка ініціалізації бази вайтлисту:", err)
	}

	apiClient := tiktok.NewClient(
		viper.GetString("api.base_url"),
		viper.GetString("api.public_url"),
		viper.GetString("api.url_param"),
		viper.GetDuration("api.timeout"),
	)

	handler, err := tgbot.NewHandler(apiClient, botToken, whitelistDb)
	if err != nil {
		log.Fatalln("Помилка ініціалізації обробників:", err)
	}

	client, err := gotgproto.NewClient(
		// Get AppID from https://my.telegram.org/apps
		appId,
		// Get ApiHash from https://my.telegram.org/apps
		apiHash,
		gotgproto.ClientTypeBot(botToken),
		&gotgproto.ClientOpts{
			Session: sessionMaker.SqlSession(sqlite.Open("tiktokbot")),
		},
	)
	if err != nil {
		log.Fatalln("Помилка при запуску бота:", err)
	}

	d := client.Dispatcher
	d.AddHandler(handlers.NewCommand("start", handler.Start))
	d.AddHandler(handlers.NewCommand("download", handler.Download))
	d.AddHandler(handlers.NewCommand("settings", handler.Settings))
	d.AddHandler(handlers.NewCommand("logs", handler.SendLogs))
	d.AddHandler(handlers.NewCommand("add", handler.AddToWhitelist))
	d.AddHandler(handlers.NewCommand("remove", handler.RemoveFromWhitelist))
	d.AddHandler(handlers.NewCommand("list", handler.ListWhitelist))
	d.AddHandler(handlers.NewCallbackQuery(filters.CallbackQuery.Prefix("cb_settings"), handler.SettingsCallback))
	d.AddHandlerToGroup(handlers.NewMessage(filters.Message.Text, handler.Echo), 1)

	log.Printf("Бот (@%s) стартував...", client.Self.Username)
	client.Idle()
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetDefault("api.base_url", "http://127.0.0.1:18361")
	viper.SetDefault("api.public_url", "http://127.0.0.1:18361")
	viper.SetDefault("api.url_param", "original_url")
	viper.SetDefault("api.timeout", "120s")
	viper.SetDefault("auto_download", true)
	viper.SetDefault("delete_url", false)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if err := viper.SafeWriteConfig(); err != nil {
				log.Printf("Не вдалося створити config.yaml: %v", err)
			}
		} else {
			log.Fatalln("Помилка читання конфігурації:", err)
		}
	}
}
