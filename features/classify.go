package features

import "strings"

type Gender string

const (
	GenderMale     Gender = "male"
	GenderFemale   Gender = "female"
	GenderSeparate Gender = "separate"
	GenderUnisex   Gender = "unisex"
)

type ToiletType string

const (
	TypeWestern ToiletType = "western"
	TypeIndian  ToiletType = "indian"
	TypeBoth    ToiletType = "both"
)

// ClassifyGender normalizes the free-text gender field from the source
// data into a canonical category. Anything unrecognized is unisex.
func ClassifyGender(raw string) Gender {
	g := strings.ToLower(strings.TrimSpace(raw))
	switch g {
	case "male", "men", "gents", "man":
		return GenderMale
	case "female", "women", "ladies", "woman":
		return GenderFemale
	case "separate", "both genders", "male and female":
		return GenderSeparate
	case "unisex", "mixed", "all", "common":
		return GenderUnisex
	}
	return GenderUnisex
}

// ClassifyToiletType normalizes the western-or-indian field. Matching is
// substring based since the source data mixes phrasings; the default is
// western.
func ClassifyToiletType(raw string) ToiletType {
	t := strings.ToLower(strings.TrimSpace(raw))
	if t == "" {
		return TypeWestern
	}
	switch {
	case strings.Contains(t, "both"),
		strings.Contains(t, "western") && strings.Contains(t, "indian"):
		return TypeBoth
	case t == "squat", strings.Contains(t, "indian"):
		return TypeIndian
	case t == "sitting", strings.Contains(t, "western"):
		return TypeWestern
	}
	return TypeWestern
}
