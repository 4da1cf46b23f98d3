package caption

import "strings"

// Коди регіонів, які реально трапляються у відповідях API. Невідомий код
// показуємо як є, великими літерами.
var countryNames = map[string]string{
	"UA": "Україна",
	"PL": "Польща",
	"DE": "Німеччина",
	"GB": "Велика Британія",
	"US": "США",
	"CA": "Канада",
	"FR": "Франція",
	"IT": "Італія",
	"ES": "Іспанія",
	"PT": "Португалія",
	"CZ": "Чехія",
	"SK": "Словаччина",
	"RO": "Румунія",
	"TR": "Туреччина",
	"GE": "Грузія",
	"KZ": "Казахстан",
	"RU": "Росія",
	"BY": "Білорусь",
	"JP": "Японія",
	"KR": "Південна Корея",
	"CN": "Китай",
	"ID": "Індонезія",
	"VN": "В'єтнам",
	"TH": "Таїланд",
	"IN": "Індія",
	"BR": "Бразилія",
	"MX": "Мексика",
	"AR": "Аргентина",
	"AU": "Австралія",
}

func CountryName(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if name, ok := countryNames[code]; ok {
		return name
	}
	return code
}
