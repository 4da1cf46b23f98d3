package tiktok

import "testing"

func TestExtractURL(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"порожній текст", "", "", false},
		{"текст без посилання", "подивись яке круте відео", "", false},
		{"інший домен", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "", false},
		{
			"коротке посилання vt",
			"https://vt.tiktok.com/ZS8abc123/",
			"https://vt.tiktok.com/ZS8abc123/",
			true,
		},
		{
			"коротке посилання vm посеред тексту",
			"глянь https://vm.tiktok.com/ZMabcDEF/ дуже смішно",
			"https://vm.tiktok.com/ZMabcDEF/",
			true,
		},
		{
			"канонічне посилання",
			"https://www.tiktok.com/@user.name/video/7123456789012345678",
			"https://www.tiktok.com/@user.name/video/7123456789012345678",
			true,
		},
		{
			"канонічне посилання з query",
			"https://www.tiktok.com/@user/video/7123456789012345678?is_copy_url=1",
			"https://www.tiktok.com/@user/video/7123456789012345678?is_copy_url=1",
			true,
		},
		{
			"пунктуація в кінці",
			"ось: https://vm.tiktok.com/ZMabcDEF!",
			"https://vm.tiktok.com/ZMabcDEF",
			true,
		},
		{
			"крапка після посилання",
			"https://vt.tiktok.com/ZS8abc123/.",
			"https://vt.tiktok.com/ZS8abc123/",
			true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractURL(tc.text)
			if ok != tc.ok {
				t.Fatalf("ExtractURL(%q): ok = %v, очікували %v", tc.text, ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("ExtractURL(%q) = %q, очікували %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestIsURL(t *testing.T) {
	if !IsURL("https://vm.tiktok.com/ZMabcDEF/") {
		t.Error("робоче посилання має проходити перевірку")
	}
	if IsURL("просто текст") {
		t.Error("текст без схеми не є посиланням")
	}
}
