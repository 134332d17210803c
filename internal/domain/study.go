package domain

// CardStatusCounts holds the count of a user's cards per status.
// New includes flashcards the user has no progress row for.
type CardStatusCounts struct {
	New      int
	Learning int
	Known    int
	Total    int
}

// Dashboard holds aggregated study statistics for the user.
type Dashboard struct {
	DueCount      int
	ReviewedToday int
	StatusCounts  CardStatusCounts
}
