package domain

// Category describes one entry of the static category catalog that
// drives the client-side category picker.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// categoryFilters maps a category id to the raw OSM tag filters that
// qualify as that category. One category may span several tag
// namespaces; overlap between categories is permitted and not
// deduplicated here.
var categoryFilters = map[string][]string{
	"school": {
		`amenity="school"`,
		`amenity="university"`,
		`amenity="college"`,
		`building="school"`,
		`amenity="kindergarten"`,
		`amenity="music_school"`,
		`amenity="language_school"`,
		`amenity="driving_school"`,
		`office="educational_institution"`,
	},
	"kindergarten": {`amenity="kindergarten"`, `amenity="childcare"`},
	"hospital":     {`amenity="hospital"`, `healthcare="hospital"`, `building="hospital"`},
	"pharmacy":     {`amenity="pharmacy"`, `healthcare="pharmacy"`},
	"bank":         {`amenity="bank"`},
	"atm":          {`amenity="atm"`},
	"post":         {`amenity="post_office"`, `amenity="post_depot"`},
	"police":       {`amenity="police"`},
	"fire":         {`amenity="fire_station"`},
	// shop
	"supermarket": {`shop="supermarket"`, `shop="convenience"`},
	"bakery":      {`shop="bakery"`},
	"hairdresser": {`shop="hairdresser"`, `shop="beauty"`},
	// health
	"doctor":  {`healthcare="doctor"`, `amenity="doctors"`, `amenity="clinic"`},
	"dentist": {`healthcare="dentist"`, `amenity="dentist"`},
	// leisure
	"park":       {`leisure="park"`, `landuse="recreation_ground"`},
	"gym":        {`leisure="fitness_centre"`, `leisure="sports_centre"`, `amenity="gym"`},
	"playground": {`leisure="playground"`},
}

// categories is the ordered catalog served to the picker.
var categories = []Category{
	{ID: "school", Label: "Schulen", Icon: "🏫", Color: "blue"},
	{ID: "kindergarten", Label: "Kindergärten", Icon: "🧸", Color: "pink"},
	{ID: "hospital", Label: "Krankenhäuser", Icon: "🏥", Color: "red"},
	{ID: "pharmacy", Label: "Apotheken", Icon: "💊", Color: "green"},
	{ID: "supermarket", Label: "Supermärkte", Icon: "🛒", Color: "orange"},
	{ID: "bakery", Label: "Bäckereien", Icon: "🥖", Color: "yellow"},
	{ID: "doctor", Label: "Ärzte", Icon: "👨‍⚕️", Color: "teal"},
	{ID: "dentist", Label: "Zahnärzte", Icon: "🦷", Color: "purple"},
	{ID: "bank", Label: "Banken", Icon: "🏦", Color: "indigo"},
	{ID: "post", Label: "Post", Icon: "📮", Color: "amber"},
	{ID: "police", Label: "Polizei", Icon: "🚔", Color: "blue"},
	{ID: "fire", Label: "Feuerwehr", Icon: "🚒", Color: "red"},
	{ID: "park", Label: "Parks", Icon: "🌳", Color: "green"},
	{ID: "gym", Label: "Fitness", Icon: "🏋️", Color: "slate"},
	{ID: "playground", Label: "Spielplätze", Icon: "🎠", Color: "pink"},
	{ID: "atm", Label: "Geldautomaten", Icon: "🏧", Color: "emerald"},
	{ID: "hairdresser", Label: "Friseure", Icon: "✂️", Color: "violet"},
}

// FiltersForCategory resolves a category id to its tag filters.
// Unknown ids resolve to no filters, not an error.
func FiltersForCategory(id string) []string {
	return categoryFilters[id]
}

// ResolveFilters flattens the filters of all requested categories into
// one ordered list. Duplicates across categories are kept as-is: the
// tag predicates are idempotent on the Overpass side.
func ResolveFilters(categoryIDs []string) []string {
	var filters []string
	for _, id := range categoryIDs {
		filters = append(filters, FiltersForCategory(id)...)
	}
	return filters
}

// Categories returns the ordered category catalog.
func Categories() []Category {
	return categories
}
