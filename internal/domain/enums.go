package domain

// MoodType is the closed set of mood categories a record can carry.
type MoodType string

const (
	MoodTypeHappy   MoodType = "happy"
	MoodTypeCalm    MoodType = "calm"
	MoodTypeAnxious MoodType = "anxious"
	MoodTypeSad     MoodType = "sad"
	MoodTypeAngry   MoodType = "angry"
	MoodTypeCustom  MoodType = "custom"
)

// MoodTypes lists every valid MoodType in display order.
var MoodTypes = []MoodType{
	MoodTypeHappy, MoodTypeCalm, MoodTypeAnxious,
	MoodTypeSad, MoodTypeAngry, MoodTypeCustom,
}

func (m MoodType) String() string { return string(m) }

func (m MoodType) IsValid() bool {
	switch m {
	case MoodTypeHappy, MoodTypeCalm, MoodTypeAnxious, MoodTypeSad, MoodTypeAngry, MoodTypeCustom:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
