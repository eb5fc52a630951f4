package features

import "github.com/namma-loo/api-go/models"

// Badge is a small UI marker for one amenity. Color and BackgroundColor
// are a fixed pairing per badge id, looked up from badgeDefs.
type Badge struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	Icon            string `json:"icon"`
	Color           string `json:"color"`
	BackgroundColor string `json:"backgroundColor"`
}

var badgeDefs = map[string]Badge{
	"free":            {ID: "free", Label: "Free", Icon: "star", Color: "#FFFFFF", BackgroundColor: "#34C759"},
	"paid":            {ID: "paid", Label: "Paid", Icon: "dollar-sign", Color: "#FFFFFF", BackgroundColor: "#FF9500"},
	"wheelchair":      {ID: "wheelchair", Label: "Accessible", Icon: "wheelchair", Color: "#FFFFFF", BackgroundColor: "#007AFF"},
	"gender-male":     {ID: "gender-male", Label: "Men Only", Icon: "user", Color: "#FFFFFF", BackgroundColor: "#2196F3"},
	"gender-female":   {ID: "gender-female", Label: "Women Only", Icon: "user", Color: "#FFFFFF", BackgroundColor: "#E91E63"},
	"gender-separate": {ID: "gender-separate", Label: "Separate", Icon: "users", Color: "#FFFFFF", BackgroundColor: "#8E44AD"},
	"gender-unisex":   {ID: "gender-unisex", Label: "Unisex", Icon: "user", Color: "#FFFFFF", BackgroundColor: "#6C757D"},
	"baby":            {ID: "baby", Label: "Baby Care", Icon: "baby", Color: "#FFFFFF", BackgroundColor: "#E91E63"},
	"shower":          {ID: "shower", Label: "Shower", Icon: "droplets", Color: "#FFFFFF", BackgroundColor: "#00BCD4"},
	"napkin-vendor":   {ID: "napkin-vendor", Label: "Napkin Vendor", Icon: "package", Color: "#FFFFFF", BackgroundColor: "#9C27B0"},
	"western":         {ID: "western", Label: "Western", Icon: "home", Color: "#FFFFFF", BackgroundColor: "#FF6B35"},
	"indian":          {ID: "indian", Label: "Indian", Icon: "square", Color: "#FFFFFF", BackgroundColor: "#795548"},
}

// Badges derives the ordered badge list for a toilet. Order is part of
// the contract: payment, accessibility, gender, baby care, shower,
// napkin vendor, then toilet type (western before indian when both).
func Badges(t *models.Toilet) []Badge {
	var badges []Badge

	if t.IsPaid == models.AmenityYes {
		badges = append(badges, badgeDefs["paid"])
	} else {
		badges = append(badges, badgeDefs["free"])
	}

	if t.Wheelchair == models.AmenityYes {
		badges = append(badges, badgeDefs["wheelchair"])
	}

	badges = append(badges, badgeDefs["gender-"+string(ClassifyGender(t.Gender))])

	if t.Baby == models.AmenityYes {
		badges = append(badges, badgeDefs["baby"])
	}
	if t.Shower == models.AmenityYes {
		badges = append(badges, badgeDefs["shower"])
	}
	if t.NapkinVendor == models.AmenityYes {
		badges = append(badges, badgeDefs["napkin-vendor"])
	}

	switch ClassifyToiletType(t.WesternOrIndian) {
	case TypeWestern:
		badges = append(badges, badgeDefs["western"])
	case TypeIndian:
		badges = append(badges, badgeDefs["indian"])
	case TypeBoth:
		badges = append(badges, badgeDefs["western"], badgeDefs["indian"])
	}

	return badges
}
