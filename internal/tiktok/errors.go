package tiktok

import "errors"

// Класифікація помилок запиту до API. Кожна гілка пайплайна закінчується
// рівно одним повідомленням користувачу, тому категорій стільки ж, скільки
// різних текстів відповіді.
var (
	ErrInvalidLink        = errors.New("tiktok: невірний формат посилання")
	ErrContentUnavailable = errors.New("tiktok: контент недоступний")
	ErrUpstreamTimeout    = errors.New("tiktok: API не відповідає")
	ErrMalformedResponse  = errors.New("tiktok: відповідь API без медіа")
)
