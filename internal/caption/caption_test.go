package caption

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Geergon/tiktok-goTelegramBot/internal/tiktok"
)

func fullMeta() *tiktok.Metadata {
	return &tiktok.Metadata{
		VideoID: "7123456789012345678",
		Author: &tiktok.Author{
			UniqueID: "user.name",
			Nickname: "Користувач",
			Verified: true,
		},
		AuthorStats: &tiktok.AuthorStats{
			FollowerCount: 10500,
			HeartCount:    1234567,
		},
		Description: "звичайний опис відео #тег",
		Statistics: &tiktok.Statistics{
			DiggCount:    1234567,
			CommentCount: 890,
			ShareCount:   123,
			PlayCount:    9876543,
		},
		Region: "UA",
		Music: &tiktok.Music{
			Title:      "original sound",
			AuthorName: "user.name",
		},
		Shazam: &tiktok.Shazam{
			Artist: "Виконавець",
			Title:  "Пісня",
		},
		VideoDetails: &tiktok.VideoDetails{
			Resolution: "1080x1920",
			FPS:        30,
			SizeMB:     "12.34 MB",
		},
		CreateTime: 1700000000,
	}
}

func TestRenderIdempotent(t *testing.T) {
	meta := fullMeta()
	first := Render(meta)
	second := Render(meta)
	if first != second {
		t.Error("повторний рендер тих самих метаданих має давати той самий рядок")
	}
}

func TestRenderFullSections(t *testing.T) {
	got := Render(fullMeta())

	for _, want := range []string{
		`<a href="https://www.tiktok.com/@user.name">Користувач</a>`,
		"Україна",
		"<blockquote>звичайний опис відео #тег</blockquote>",
		"❤️ Лайки: 1,234,567",
		"▶️ Перегляди: 9,876,543",
		"10,500 підписників",
		"1080x1920, 30 fps, 12.34 MB",
		"Музика (Shazam):</b> Виконавець — Пісня",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("у підписі немає %q:\n%s", want, got)
		}
	}

	// Shazam перекриває рідну музику TikTok.
	if strings.Contains(got, "original sound") {
		t.Error("рідна музика не має показуватися, коли є збіг Shazam")
	}
}

func TestRenderNativeMusicFallback(t *testing.T) {
	meta := fullMeta()
	meta.Shazam = nil
	got := Render(meta)
	if !strings.Contains(got, "Музика:</b> original sound — user.name") {
		t.Errorf("без Shazam має показуватися рідна музика:\n%s", got)
	}
}

func TestRenderOmitsMissingSections(t *testing.T) {
	meta := &tiktok.Metadata{
		Author: &tiktok.Author{UniqueID: "user", Nickname: "Користувач"},
	}
	got := Render(meta)

	for _, absent := range []string{
		"Статистика", "Регіон", "Деталі відео", "Музика", "Опубліковано",
		"підписників", "undefined", "null", "<nil>", "blockquote",
	} {
		if strings.Contains(got, absent) {
			t.Errorf("у підписі без відповідних полів не має бути %q:\n%s", absent, got)
		}
	}
	if !strings.Contains(got, "Автор") {
		t.Error("рядок автора має лишитися")
	}
}

func TestRenderEscapesFreeText(t *testing.T) {
	meta := &tiktok.Metadata{
		Author:      &tiktok.Author{UniqueID: "user", Nickname: "Ev<il>&Co"},
		Description: "<b>жирний</b> & <script>",
		Shazam:      &tiktok.Shazam{Artist: "A<b>", Title: "T&T"},
	}
	got := Render(meta)

	for _, want := range []string{
		"Ev&lt;il&gt;&amp;Co",
		"&lt;b&gt;жирний&lt;/b&gt; &amp; &lt;script&gt;",
		"A&lt;b&gt; — T&amp;T",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("екранований фрагмент %q відсутній:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<script>") {
		t.Error("сирий HTML з опису потрапив у підпис")
	}
}

func TestRenderEscapesAuthorHandleInHref(t *testing.T) {
	meta := &tiktok.Metadata{
		Author: &tiktok.Author{UniqueID: `x"><b>inj</b`, Nickname: "нік"},
	}
	got := Render(meta)

	if strings.Contains(got, `"><b>`) {
		t.Errorf("handle вирвався з атрибута href:\n%s", got)
	}
	want := `href="https://www.tiktok.com/@x%22%3E%3Cb%3Einj%3C%2Fb"`
	if !strings.Contains(got, want) {
		t.Errorf("очікували екранований сегмент шляху %q:\n%s", want, got)
	}
}

func TestRenderTruncationBoundary(t *testing.T) {
	meta := fullMeta()
	meta.Description = ""
	base := utf8.RuneCountInString(Render(meta))
	budget := Limit - base - utf8.RuneCountInString("<blockquote></blockquote>\n")
	if budget <= 0 {
		t.Fatalf("фіксовані секції самі з'їли ліміт: budget = %d", budget)
	}

	// Рівно в бюджет: без трикрапки, рівно Limit рун.
	meta.Description = strings.Repeat("ї", budget)
	got := Render(meta)
	if n := utf8.RuneCountInString(got); n != Limit {
		t.Errorf("опис точно в бюджет: довжина %d, очікували %d", n, Limit)
	}
	if strings.Contains(got, "…") {
		t.Error("опис точно в бюджет не має обрізатися")
	}

	// На одну руну менше.
	meta.Description = strings.Repeat("ї", budget-1)
	got = Render(meta)
	if n := utf8.RuneCountInString(got); n != Limit-1 {
		t.Errorf("опис на руну коротший: довжина %d, очікували %d", n, Limit-1)
	}

	// На одну руну більше: трикрапка і не більше ліміту.
	meta.Description = strings.Repeat("ї", budget+1)
	got = Render(meta)
	if n := utf8.RuneCountInString(got); n > Limit {
		t.Errorf("довжина %d перевищує ліміт %d", n, Limit)
	}
	if !strings.Contains(got, "…") {
		t.Error("задовгий опис має закінчуватися трикрапкою")
	}
}

func TestRenderNeverExceedsLimit(t *testing.T) {
	meta := fullMeta()
	for _, n := range []int{0, 100, 1000, 1024, 2000, 8000} {
		meta.Description = strings.Repeat("о", n)
		if got := Render(meta); utf8.RuneCountInString(got) > Limit {
			t.Errorf("опис з %d рун: підпис довший за ліміт (%d)", n, utf8.RuneCountInString(got))
		}
	}
}

func TestRenderHardTruncationKeepsMarkupBalanced(t *testing.T) {
	// Регіон — вільний текст без власного ліміту, тому роздутий регіон
	// виносить фіксовані секції за межу підпису. Перебір довжин проводить
	// точку зрізу через усі теги хвоста, включно з серединами тегів.
	for n := 780; n <= 1060; n++ {
		meta := &tiktok.Metadata{
			Author: &tiktok.Author{UniqueID: "user", Nickname: "Користувач"},
			Region: strings.Repeat("щ", n),
			Statistics: &tiktok.Statistics{
				DiggCount:    1,
				CommentCount: 2,
				ShareCount:   3,
				PlayCount:    4,
			},
			Music: &tiktok.Music{Title: "пісня", AuthorName: "автор"},
		}
		got := Render(meta)

		if l := utf8.RuneCountInString(got); l > Limit {
			t.Fatalf("регіон з %d рун: довжина підпису %d перевищує ліміт", n, l)
		}
		if open, closed := strings.Count(got, "<b>"), strings.Count(got, "</b>"); open != closed {
			t.Fatalf("регіон з %d рун: %d відкритих <b> проти %d закритих:\n%s", n, open, closed, got)
		}
		if i := strings.LastIndex(got, "<"); i >= 0 && !strings.Contains(got[i:], ">") {
			t.Fatalf("регіон з %d рун: зріз усередині тега:\n%s", n, got)
		}
	}
}

func TestCountryName(t *testing.T) {
	if got := CountryName("UA"); got != "Україна" {
		t.Errorf("CountryName(UA) = %q", got)
	}
	if got := CountryName("ua"); got != "Україна" {
		t.Errorf("CountryName(ua) = %q", got)
	}
	if got := CountryName("zz"); got != "ZZ" {
		t.Errorf("невідомий код має повертатися великими літерами, отримали %q", got)
	}
}
