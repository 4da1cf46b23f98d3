package tiktok

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Рядок, яким API позначає нерозпізнане посилання. Частина контракту
// зовнішнього сервісу, звіряємо дослівно.
const invalidLinkDetail = "Неверный формат ссылки"

// Client — клієнт до API, який тягне метадані і саме відео. Один запит на
// повідомлення, без повторних спроб: або відповідь, або одна з помилок
// errors.go.
type Client struct {
	base   string
	public string
	param  string
	http   *http.Client
}

// NewClient створює клієнт. param — назва query-параметра з посиланням
// (original_url для поточного API, url для старих розгортань). timeout діє на
// кожен запит, типово 120 секунд: API може довго прогрівати сесію.
func NewClient(baseURL, publicURL, param string, timeout time.Duration) *Client {
	if param == "" {
		param = "original_url"
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		public: strings.TrimRight(publicURL, "/"),
		param:  param,
		http:   &http.Client{Timeout: timeout},
	}
}

// VideoData виконує GET /video_data і розбирає відповідь у Result. Рівно один
// з варіантів payload має бути присутнім, інакше ErrMalformedResponse.
func (c *Client) VideoData(ctx context.Context, link string) (*Result, error) {
	q := url.Values{}
	q.Set(c.param, link)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/video_data?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &apiErr) == nil && strings.Contains(apiErr.Detail, invalidLinkDetail) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLink, apiErr.Detail)
		}
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrContentUnavailable, resp.StatusCode, apiErr.Detail)
	}

	var wire struct {
		Metadata      Metadata `json:"metadata"`
		VideoBase64   string   `json:"videoBase64"`
		VideoFilePath string   `json:"videoFilePath"`
		ImagePaths    []string `json:"image_paths"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	res := &Result{Metadata: wire.Metadata}
	switch {
	case len(wire.ImagePaths) > 0:
		res.Payload = Payload{Kind: PayloadAlbum, ImagePaths: wire.ImagePaths}
	case wire.VideoBase64 != "":
		raw, err := base64.StdEncoding.DecodeString(wire.VideoBase64)
		if err != nil {
			return nil, fmt.Errorf("%w: videoBase64: %v", ErrMalformedResponse, err)
		}
		res.Payload = Payload{Kind: PayloadVideo, Video: raw}
	case wire.VideoFilePath != "":
		res.Payload = Payload{Kind: PayloadVideoRef, FilePath: wire.VideoFilePath}
	default:
		return nil, ErrMalformedResponse
	}
	return res, nil
}

// FetchImage завантажує зображення альбому за шляхом з image_paths.
func (c *Client) FetchImage(ctx context.Context, path string) ([]byte, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("зображення %s: HTTP %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// MusicStatus робить один запит статусу розпізнаного треку. Повертає
// ідентифікатор аудіофайлу, якщо завантаження вже завершене, інакше порожній
// рядок. Не помилка: кнопка просто не додається.
func (c *Client) MusicStatus(ctx context.Context, taskID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/music_status/"+url.PathEscape(taskID), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", nil
	}
	var status struct {
		Status string `json:"status"`
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return "", nil
	}
	if status.Status != "completed" {
		return "", nil
	}
	return status.Result, nil
}

// DownloadURL — публічне посилання на сторінку завантаження треку. Бот сам
// по ньому не ходить, лише вставляє у кнопку.
func (c *Client) DownloadURL(videoID, musicFileID string) string {
	return c.public + "/download/" + url.PathEscape(videoID) + "/" + url.PathEscape(musicFileID)
}
