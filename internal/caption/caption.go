package caption

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Geergon/tiktok-goTelegramBot/internal/tiktok"
	"github.com/dustin/go-humanize"
)

// Limit — максимальна довжина підпису до медіа в Telegram.
const Limit = 1024

// Render збирає HTML-підпис з метаданих у фіксованому порядку: автор, регіон,
// опис, статистика, деталі відео, музика. Відсутні групи полів пропускаються
// без порожніх рядків. Результат завжди вкладається у Limit: спочатку
// обрізається опис, і лише якщо цього мало — хвіст цілком.
func Render(meta *tiktok.Metadata) string {
	head := renderHead(meta)
	tail := renderTail(meta)

	var block string
	if desc := strings.TrimSpace(meta.Description); desc != "" {
		overhead := utf8.RuneCountInString("<blockquote></blockquote>\n")
		budget := Limit - runeLen(head) - runeLen(tail) - overhead
		if budget > 0 {
			if fitted := fitEscaped(desc, budget); fitted != "" {
				block = "<blockquote>" + fitted + "</blockquote>\n"
			}
		}
	}

	s := head + block + tail
	if runeLen(s) > Limit {
		s = hardTruncate(s, Limit)
	}
	return s
}

// hardTruncate вкорочує вже зібраний HTML до limit рун, не лишаючи
// розірваної розмітки: зріз не потрапляє всередину тега, а незакриті на
// момент зрізу теги дозакриваються. Розраховує на розмітку з Render, де
// весь вільний текст уже екранований.
func hardTruncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}

	var open []string // стек відкритих тегів
	closers := 0      // сумарна довжина закривачів для стеку, в рунах
	cut := 0
	var cutOpen []string

	i := 0
	for i < len(r) {
		if r[i] == '<' {
			j := i
			for j < len(r) && r[j] != '>' {
				j++
			}
			if j == len(r) {
				break
			}
			raw := string(r[i+1 : j])
			name := strings.TrimPrefix(raw, "/")
			if f := strings.Fields(name); len(f) > 0 {
				name = f[0]
			}
			if strings.HasPrefix(raw, "/") {
				if n := len(open); n > 0 && open[n-1] == name {
					open = open[:n-1]
					closers -= len("</" + name + ">")
				}
			} else {
				open = append(open, name)
				closers += len("</" + name + ">")
			}
			i = j + 1
		} else {
			i++
		}
		if i+closers <= limit {
			cut = i
			cutOpen = append(cutOpen[:0], open...)
		}
	}

	var b strings.Builder
	b.WriteString(string(r[:cut]))
	for k := len(cutOpen) - 1; k >= 0; k-- {
		b.WriteString("</" + cutOpen[k] + ">")
	}
	return b.String()
}

func renderHead(meta *tiktok.Metadata) string {
	var b strings.Builder

	if a := meta.Author; a != nil && (a.UniqueID != "" || a.Nickname != "") {
		name := a.Nickname
		if name == "" {
			name = a.UniqueID
		}
		if a.UniqueID != "" {
			// Handle теж приходить від API, тому в атрибут href потрапляє
			// лише як екранований сегмент шляху.
			fmt.Fprintf(&b, `<b>Автор:</b> <a href="https://www.tiktok.com/@%s">%s</a>`,
				url.PathEscape(a.UniqueID), html.EscapeString(name))
		} else {
			fmt.Fprintf(&b, "<b>Автор:</b> %s", html.EscapeString(name))
		}
		if a.Verified {
			b.WriteString(" ✅")
		}
		b.WriteString("\n")
	}

	if meta.Region != "" {
		fmt.Fprintf(&b, "<b>🌍 Регіон:</b> %s\n", CountryName(meta.Region))
	}

	return b.String()
}

func renderTail(meta *tiktok.Metadata) string {
	var b strings.Builder

	if s := meta.Statistics; s != nil {
		b.WriteString("\n<b>📊 Статистика:</b>\n")
		fmt.Fprintf(&b, "  ❤️ Лайки: %s\n", humanize.Comma(s.DiggCount))
		fmt.Fprintf(&b, "  💬 Коментарі: %s\n", humanize.Comma(s.CommentCount))
		fmt.Fprintf(&b, "  🔁 Репости: %s\n", humanize.Comma(s.ShareCount))
		fmt.Fprintf(&b, "  ▶️ Перегляди: %s\n", humanize.Comma(s.PlayCount))
	}

	if as := meta.AuthorStats; as != nil {
		fmt.Fprintf(&b, "\n<b>👥 Автор:</b> %s підписників, %s вподобань\n",
			humanize.Comma(as.FollowerCount), humanize.Comma(as.HeartCount))
	}

	if d := meta.VideoDetails; d != nil && (d.Resolution != "" || d.SizeMB != "") {
		parts := make([]string, 0, 3)
		if d.Resolution != "" {
			parts = append(parts, d.Resolution)
		}
		if d.FPS > 0 {
			parts = append(parts, fmt.Sprintf("%d fps", d.FPS))
		}
		if d.SizeMB != "" {
			parts = append(parts, d.SizeMB)
		}
		fmt.Fprintf(&b, "\n<b>⚙️ Деталі відео:</b> %s\n", strings.Join(parts, ", "))
	}

	if meta.CreateTime > 0 {
		fmt.Fprintf(&b, "<b>📅 Опубліковано:</b> %s\n",
			time.Unix(meta.CreateTime, 0).UTC().Format("02.01.2006 15:04"))
	}

	if sh := meta.Shazam; sh != nil && sh.Title != "" {
		fmt.Fprintf(&b, "\n<b>🎵 Музика (Shazam):</b> %s — %s",
			html.EscapeString(sh.Artist), html.EscapeString(sh.Title))
	} else if m := meta.Music; m != nil && m.Title != "" {
		fmt.Fprintf(&b, "\n<b>🎵 Музика:</b> %s — %s",
			html.EscapeString(m.Title), html.EscapeString(m.AuthorName))
	}

	return b.String()
}

// fitEscaped екранує текст і за потреби вкорочує його так, щоб екранований
// варіант разом із трикрапкою вліз у budget рун. Обрізається сирий текст,
// щоб не розірвати HTML-сутність на середині.
func fitEscaped(s string, budget int) string {
	esc := html.EscapeString(s)
	if runeLen(esc) <= budget {
		return esc
	}
	r := []rune(s)
	for len(r) > 0 {
		esc = html.EscapeString(strings.TrimRight(string(r), " ")) + "…"
		if runeLen(esc) <= budget {
			return esc
		}
		r = r[:len(r)-1]
	}
	return ""
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
