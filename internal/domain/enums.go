package domain

// CardStatus is the coarse learning status of a flashcard for one user.
// It is derived from the repetition counter and never set independently.
type CardStatus string

const (
	CardStatusNew      CardStatus = "NEW"
	CardStatusLearning CardStatus = "LEARNING"
	CardStatusKnown    CardStatus = "KNOWN"
)

func (s CardStatus) String() string { return string(s) }

func (s CardStatus) IsValid() bool {
	switch s {
	case CardStatusNew, CardStatusLearning, CardStatusKnown:
		return true
	}
	return false
}

// Rating is the user's self-assessed recall quality after revealing a card.
// The four buttons collapse the six-point SM-2 quality scale on purpose:
// HARD still counts as a successful repetition.
type Rating string

const (
	RatingForgot Rating = "FORGOT"
	RatingHard   Rating = "HARD"
	RatingGood   Rating = "GOOD"
	RatingEasy   Rating = "EASY"
)

func (r Rating) String() string { return string(r) }

func (r Rating) IsValid() bool {
	switch r {
	case RatingForgot, RatingHard, RatingGood, RatingEasy:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleStudent UserRole = "STUDENT"
	UserRoleAdmin   UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStudent, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
