package models

// BusinessCategories is the closed set of directory categories.
var BusinessCategories = []string{
	"Contractors",
	"Materials",
	"Services",
	"Events",
	"Real Estate",
	"Retailers",
	"Wholesalers",
	"Distributors",
	"Leisure and Activities",
}

// LeisureSubcategories refine the Leisure and Activities category.
var LeisureSubcategories = []string{
	"Hotels",
	"Car Rental",
	"Restaurants",
	"Malls",
	"Spas",
	"Shopping",
}

// Locations is the fixed list used by location filters and submissions.
var Locations = []string{
	"Port Louis",
	"Curepipe",
	"Vacoas-Phoenix",
	"Beau Bassin-Rose Hill",
	"Quatre Bornes",
	"Grand Baie",
	"Flic en Flac",
	"Tamarin",
	"Black River",
	"Mahébourg",
	"Other",
}

// PhonePrefix is the Mauritius dialling prefix submissions are expected to use.
const PhonePrefix = "+230"

// KnownCategory reports whether c is a listed category or leisure subcategory.
func KnownCategory(c string) bool {
	for _, known := range BusinessCategories {
		if known == c {
			return true
		}
	}
	for _, known := range LeisureSubcategories {
		if known == c {
			return true
		}
	}
	return false
}

// KnownLocation reports whether l is in the fixed location list.
func KnownLocation(l string) bool {
	for _, known := range Locations {
		if known == l {
			return true
		}
	}
	return false
}
