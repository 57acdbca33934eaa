package tvdb

// Series is a full series record.
type Series struct {
	ID              int      `json:"id"`
	SeriesName      string   `json:"seriesName"`
	Aliases         []string `json:"aliases"`
	Banner          string   `json:"banner"`
	Status          string   `json:"status"`
	FirstAired      string   `json:"firstAired"`
	Network         string   `json:"network"`
	NetworkID       string   `json:"networkId"`
	Runtime         string   `json:"runtime"`
	Genre           []string `json:"genre"`
	Overview        string   `json:"overview"`
	LastUpdated     int64    `json:"lastUpdated"`
	AirsDayOfWeek   string   `json:"airsDayOfWeek"`
	AirsTime        string   `json:"airsTime"`
	Rating          string   `json:"rating"`
	IMDBID          string   `json:"imdbId"`
	Zap2ItID        string   `json:"zap2itId"`
	Added           string   `json:"added"`
	SiteRating      float64  `json:"siteRating"`
	SiteRatingCount int      `json:"siteRatingCount"`
	Slug            string   `json:"slug"`
}

// SeriesSearchResult is the reduced series shape returned by search/series.
type SeriesSearchResult struct {
	ID         int      `json:"id"`
	SeriesName string   `json:"seriesName"`
	Aliases    []string `json:"aliases"`
	Banner     string   `json:"banner"`
	FirstAired string   `json:"firstAired"`
	Network    string   `json:"network"`
	Overview   string   `json:"overview"`
	Slug       string   `json:"slug"`
	Status     string   `json:"status"`
}

// EpisodeLanguage names the language the episode name and overview are in.
type EpisodeLanguage struct {
	EpisodeName string `json:"episodeName"`
	Overview    string `json:"overview"`
}

// Episode is one episode record.
type Episode struct {
	ID                 int             `json:"id"`
	AiredSeason        int             `json:"airedSeason"`
	AiredEpisodeNumber int             `json:"airedEpisodeNumber"`
	EpisodeName        string          `json:"episodeName"`
	FirstAired         string          `json:"firstAired"`
	GuestStars         []string        `json:"guestStars"`
	Directors          []string        `json:"directors"`
	Writers            []string        `json:"writers"`
	Overview           string          `json:"overview"`
	Language           EpisodeLanguage `json:"language"`
	ProductionCode     string          `json:"productionCode"`
	ShowURL            string          `json:"showUrl"`
	LastUpdated        int64           `json:"lastUpdated"`
	DVDSeason          float64         `json:"dvdSeason"`
	DVDEpisodeNumber   float64         `json:"dvdEpisodeNumber"`
	AbsoluteNumber     int             `json:"absoluteNumber"`
	SeriesID           int             `json:"seriesId"`
	Filename           string          `json:"filename"`
	IMDBID             string          `json:"imdbId"`
	SiteRating         float64         `json:"siteRating"`
	SiteRatingCount    int             `json:"siteRatingCount"`
}

// Actor is one cast member of a series.
type Actor struct {
	ID          int    `json:"id"`
	SeriesID    int    `json:"seriesId"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	SortOrder   int    `json:"sortOrder"`
	Image       string `json:"image"`
	ImageAuthor int    `json:"imageAuthor"`
	ImageAdded  string `json:"imageAdded"`
	LastUpdated string `json:"lastUpdated"`
}

// RatingsInfo carries the community rating of an image.
type RatingsInfo struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Image is one artwork record (poster, banner, fanart, season).
type Image struct {
	ID          int         `json:"id"`
	KeyType     string      `json:"keyType"`
	SubKey      string      `json:"subKey"`
	FileName    string      `json:"fileName"`
	LanguageID  int         `json:"languageId"`
	Resolution  string      `json:"resolution"`
	RatingsInfo RatingsInfo `json:"ratingsInfo"`
	Thumbnail   string      `json:"thumbnail"`
}

// Language is one translation language supported by the API.
type Language struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
	EnglishName  string `json:"englishName"`
}

// Update marks a series that changed within a queried time window.
type Update struct {
	ID          int   `json:"id"`
	LastUpdated int64 `json:"lastUpdated"`
}

// SeriesAll bundles a series record with its full episode list.
type SeriesAll struct {
	Series
	Episodes []Episode `json:"episodes"`
}
