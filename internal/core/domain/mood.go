package domain

// Mood keywords. These are what the interaction log stores.
const (
	MoodSad       = "sad"
	MoodEnergetic = "energetic"
	MoodCalm      = "calm"
	MoodHappy     = "happy"
	MoodDefault   = "default"
)

// MoodProfile parameterizes a recommendation query for one mood category.
type MoodProfile struct {
	Mood          string
	GenreSeeds    []string
	TargetEnergy  float64
	TargetValence float64
}

type moodCategory struct {
	aliases []string
	profile MoodProfile
}

// Aliases never overlap, so lookup order is irrelevant.
var moodCategories = []moodCategory{
	{
		aliases: []string{"😢", "😭", "sad"},
		profile: MoodProfile{Mood: MoodSad, GenreSeeds: []string{"acoustic", "piano"}, TargetEnergy: 0.2, TargetValence: 0.1},
	},
	{
		aliases: []string{"⚡", "🔥", "angry"},
		profile: MoodProfile{Mood: MoodEnergetic, GenreSeeds: []string{"edm", "work-out"}, TargetEnergy: 0.9, TargetValence: 0.8},
	},
	{
		aliases: []string{"🧘", "calm"},
		profile: MoodProfile{Mood: MoodCalm, GenreSeeds: []string{"ambient", "classical"}, TargetEnergy: 0.1, TargetValence: 0.5},
	},
	{
		aliases: []string{"🥰", "❤️", "happy"},
		profile: MoodProfile{Mood: MoodHappy, GenreSeeds: []string{"romance", "pop"}, TargetEnergy: 0.6, TargetValence: 0.9},
	},
}

var defaultProfile = MoodProfile{Mood: MoodDefault, GenreSeeds: []string{"pop"}, TargetEnergy: 0.5, TargetValence: 0.5}

// ProfileFor maps an emoji or keyword to its mood profile. Matching is exact
// and case-sensitive. Unrecognized labels get the default profile, never an error.
func ProfileFor(label string) MoodProfile {
	for _, c := range moodCategories {
		for _, a := range c.aliases {
			if a == label {
				return c.profile.clone()
			}
		}
	}
	return DefaultProfile()
}

// DefaultProfile returns the profile used for unrecognized labels.
func DefaultProfile() MoodProfile {
	return defaultProfile.clone()
}

func (p MoodProfile) clone() MoodProfile {
	p.GenreSeeds = append([]string(nil), p.GenreSeeds...)
	return p
}
