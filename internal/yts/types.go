package yts

// Wire types for the YTS list_movies.json endpoint.

type listResponse struct {
	Status        string   `json:"status"`
	StatusMessage string   `json:"status_message"`
	Data          listData `json:"data"`
}

type listData struct {
	MovieCount int `json:"movie_count"`
	Limit      int `json:"limit"`
	PageNumber int `json:"page_number"`
	// Movies is absent past the end of the listing.
	Movies []wireMovie `json:"movies"`
}

type wireMovie struct {
	ID               int           `json:"id"`
	Title            string        `json:"title"`
	Year             int           `json:"year"`
	ImdbCode         string        `json:"imdb_code"`
	SmallCoverImage  string        `json:"small_cover_image"`
	MediumCoverImage string        `json:"medium_cover_image"`
	LargeCoverImage  string        `json:"large_cover_image"`
	Torrents         []wireTorrent `json:"torrents"`
}

type wireTorrent struct {
	URL       string `json:"url"`
	Hash      string `json:"hash"`
	Quality   string `json:"quality"`
	Type      string `json:"type"`
	Seeds     int    `json:"seeds"`
	Peers     int    `json:"peers"`
	SizeBytes uint64 `json:"size_bytes"`
}
