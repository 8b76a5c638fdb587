package domain

// MoodTypeInfo is the display metadata of a mood type.
type MoodTypeInfo struct {
	Type  MoodType
	Label string
	Icon  string
	Color string
}

var moodCatalog = map[MoodType]MoodTypeInfo{
	MoodTypeHappy:   {Type: MoodTypeHappy, Label: "Happy", Icon: "😊", Color: "#FCD34D"},
	MoodTypeCalm:    {Type: MoodTypeCalm, Label: "Calm", Icon: "😌", Color: "#93C5FD"},
	MoodTypeAnxious: {Type: MoodTypeAnxious, Label: "Anxious", Icon: "😰", Color: "#C4B5FD"},
	MoodTypeSad:     {Type: MoodTypeSad, Label: "Sad", Icon: "😢", Color: "#9CA3AF"},
	MoodTypeAngry:   {Type: MoodTypeAngry, Label: "Angry", Icon: "😠", Color: "#F87171"},
	MoodTypeCustom:  {Type: MoodTypeCustom, Label: "Custom", Icon: "💭", Color: "#86EFAC"},
}

// MoodCatalog returns display metadata for every mood type in display order.
func MoodCatalog() []MoodTypeInfo {
	out := make([]MoodTypeInfo, 0, len(MoodTypes))
	for _, m := range MoodTypes {
		out = append(out, moodCatalog[m])
	}
	return out
}

// InfoFor returns the metadata of m, falling back to the custom entry.
func InfoFor(m MoodType) MoodTypeInfo {
	if info, ok := moodCatalog[m]; ok {
		return info
	}
	return moodCatalog[MoodTypeCustom]
}

// IntensityLabel buckets an intensity into a human-readable band.
func IntensityLabel(intensity int) string {
	switch {
	case intensity <= 3:
		return "mild"
	case intensity <= 6:
		return "moderate"
	case intensity <= 8:
		return "strong"
	default:
		return "intense"
	}
}
