package vibe

// Track is one competition category of the hackathon.
type Track struct {
	ID          string
	Title       string
	Category    string
	Tag         string
	Image       string // externally hosted image URL
	Description string
}

// Catalog is the ordered, read-only list of tracks.
type Catalog struct {
	tracks []Track
}

// NewCatalog creates a Catalog from tracks. The slice is copied.
func NewCatalog(tracks []Track) Catalog {
	return Catalog{tracks: append([]Track(nil), tracks...)}
}

// DefaultCatalog returns the three tracks of the event.
func DefaultCatalog() Catalog {
	return NewCatalog([]Track{
		{
			ID:          "1",
			Title:       "Игры",
			Category:    "GameDev",
			Tag:         "Fun",
			Image:       "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?q=80&w=1000&auto=format&fit=crop",
			Description: "Создавай игры, в которые хочется залипнуть. От текстовых новелл и кликеров до полноценных браузерных шутеров. Главное — вайб и геймплей.",
		},
		{
			ID:          "2",
			Title:       "Telegram Боты",
			Category:    "Automation",
			Tag:         "Bot",
			Image:       "https://images.unsplash.com/photo-1614064641938-3bbee52942c7?q=80&w=1000&auto=format&fit=crop",
			Description: "Разрабатывай полезных или фановых ботов для Telegram. Интеграции, мини-аппы (TWA), сервисы или AI-ассистенты внутри мессенджера.",
		},
		{
			ID:          "3",
			Title:       "Веб-сайты",
			Category:    "Frontend",
			Tag:         "Web",
			Image:       "https://images.unsplash.com/photo-1547658719-da2b51169166?q=80&w=1000&auto=format&fit=crop",
			Description: "Креативный веб, лендинги, генеративный UI или полезные сервисы. Покажи, на что способен современный фронтенд.",
		},
	})
}

// Len returns the number of tracks.
func (c Catalog) Len() int { return len(c.tracks) }

// At returns the track at index i. It panics if i is out of range.
func (c Catalog) At(i int) Track { return c.tracks[i] }

// Tracks returns a copy of all tracks in order.
func (c Catalog) Tracks() []Track { return append([]Track(nil), c.tracks...) }

// Index returns the position of the track with the given ID, or -1.
func (c Catalog) Index(id string) int {
	for i, t := range c.tracks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// TrackSelection is the detail-view state: which track, if any, is open.
type TrackSelection struct {
	catalog  Catalog
	selected int // -1 = none
}

// NewTrackSelection creates a selection over catalog with nothing selected.
func NewTrackSelection(catalog Catalog) TrackSelection {
	return TrackSelection{catalog: catalog, selected: -1}
}

// Selected returns the selected track and its index.
// The boolean is false when nothing is selected.
func (s TrackSelection) Selected() (Track, int, bool) {
	if s.selected < 0 {
		return Track{}, -1, false
	}
	return s.catalog.At(s.selected), s.selected, true
}

// Select opens the track at index i. Out-of-range indices are ignored.
func (s *TrackSelection) Select(i int) {
	if i < 0 || i >= s.catalog.Len() {
		return
	}
	s.selected = i
}

// Clear closes the detail view.
func (s *TrackSelection) Clear() { s.selected = -1 }

// Next moves to the following track, wrapping from the last to the first.
// It does nothing when no track is selected.
func (s *TrackSelection) Next() {
	if s.selected < 0 {
		return
	}
	n := s.catalog.Len()
	s.selected = (s.selected + 1) % n
}

// Prev moves to the preceding track, wrapping from the first to the last.
// It does nothing when no track is selected.
func (s *TrackSelection) Prev() {
	if s.selected < 0 {
		return
	}
	n := s.catalog.Len()
	s.selected = (s.selected - 1 + n) % n
}
