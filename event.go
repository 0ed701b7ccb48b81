package vibe

// Event describes the hackathon itself: the facts shown in the header and
// the prize tiers.
type Event struct {
	Name            string
	Tagline         string
	Date            string
	Location        string
	RegistrationURL string
	CommunityURL    string
	Prizes          []Prize
}

// Prize is one reward tier.
type Prize struct {
	Title       string
	Reward      string
	Description string
}

// DefaultEvent returns the Vibe Coding Hackathon.
func DefaultEvent() Event {
	return Event{
		Name:            "VIBE CODING",
		Tagline:         "< Хакатон эпохи AI />",
		Date:            "30 Ноября",
		Location:        "Онлайн",
		RegistrationURL: "https://docs.google.com/forms/",
		CommunityURL:    "https://t.me/vibecod3rs",
		Prizes: []Prize{
			{Title: "Участник", Reward: "Бесплатно", Description: "Участие в хакатоне бесплатное для всех."},
			{Title: "Финалист", Reward: "Скидка", Description: "Скидка на курс по вайб-кодингу всем, кто дойдет до финала."},
			{Title: "Победитель", Reward: "Курс", Description: "Первое место получает полное обучение на курсе бесплатно."},
		},
	}
}
