package cnst

// ListingCategory identifies one of the database-backed listing stores.
type ListingCategory string

const (
	CategoryListings        ListingCategory = "listings"
	CategoryAuthorityPlots  ListingCategory = "authority_plots"
	CategoryFreeholdProp    ListingCategory = "freehold_property"
	CategoryIndustrialPlots ListingCategory = "industrial_plots"
	CategoryFlatsApartments ListingCategory = "flats_apartments"
)

// SeedCategories are the stores that can be bulk-loaded from fixture files,
// keyed to the fixture file name each one is seeded from.
var SeedCategories = map[ListingCategory]string{
	CategoryListings:        "data.json",
	CategoryAuthorityPlots:  "authority_plots.json",
	CategoryFreeholdProp:    "freehold_property.json",
	CategoryIndustrialPlots: "industrial_plots.json",
	CategoryFlatsApartments: "flats_apartment.json",
}

// AppendCategories maps the categories accepted by the listing submission
// endpoint to the JSON file each one is appended to. The file-backed write
// path is independent of the database-backed read path; the two are never
// reconciled.
var AppendCategories = map[string]string{
	"freehold":   "freehold.json",
	"flats":      "flats.json",
	"industrial": "industrial.json",
	"authority":  "authority.json",
	"commercial": "commercial.json",
}
