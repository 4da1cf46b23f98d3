package tiktok

// Metadata — те, що повертає API у полі "metadata". Будь-яке поле може бути
// відсутнім, тому все опціональне тримаємо у вказівниках.
type Metadata struct {
	VideoID       string        `json:"video_id"`
	Author        *Author       `json:"author"`
	AuthorStats   *AuthorStats  `json:"authorStats"`
	Music         *Music        `json:"music"`
	Shazam        *Shazam       `json:"shazam"`
	Description   string        `json:"description"`
	Statistics    *Statistics   `json:"statistics"`
	Region        string        `json:"region"`
	VideoDetails  *VideoDetails `json:"video_details"`
	CreateTime    int64         `json:"createTime"`
	VideoDuration int           `json:"video_duration"`
	IsDuet        bool          `json:"isDuet"`
	IsStitch      bool          `json:"isStitch"`
	ShadowBan     bool          `json:"shadow_ban"`
	MusicFileID   string        `json:"music_file_id"`
	IsAlbum       bool          `json:"is_album"`
}

type Author struct {
	UniqueID string `json:"uniqueId"`
	Nickname string `json:"nickname"`
	Verified bool   `json:"verified"`
	Avatar   string `json:"avatarLarger"`
}

type AuthorStats struct {
	FollowerCount int64 `json:"followerCount"`
	HeartCount    int64 `json:"heartCount"`
}

// Statistics: канонічне поле лічильника вподобань — diggCount, як у структурі
// itemStruct самого TikTok. Варіант likeCount не читаємо.
type Statistics struct {
	DiggCount    int64 `json:"diggCount"`
	CommentCount int64 `json:"commentCount"`
	ShareCount   int64 `json:"shareCount"`
	PlayCount    int64 `json:"playCount"`
}

type Music struct {
	Title      string `json:"title"`
	AuthorName string `json:"authorName"`
}

// Shazam — розпізнаний трек, на відміну від рідної музики TikTok.
type Shazam struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
}

type VideoDetails struct {
	Resolution string `json:"resolution"`
	FPS        int    `json:"fps"`
	SizeMB     string `json:"size_mb"`
}

type PayloadKind int

const (
	PayloadVideo PayloadKind = iota
	PayloadVideoRef
	PayloadAlbum
)

// Payload — рівно один з трьох варіантів відповіді API: відео байтами,
// посилання на файл на сервері API або список зображень альбому.
type Payload struct {
	Kind       PayloadKind
	Video      []byte
	FilePath   string
	ImagePaths []string
}

type Result struct {
	Metadata Metadata
	Payload  Payload
}
