package constants

// Category is the vendor spending category assigned by the classifier.
type Category string

const (
	FoodRetail     Category = "FoodRetail"
	Fuel           Category = "Fuel"
	OfficeSupplies Category = "OfficeSupplies"
	Lodging        Category = "Lodging"
	Transport      Category = "Transport"
	Unclassified   Category = "Unclassified"
)

// CategoryKeywords maps each category to the vendor-name keywords that select
// it. Groups are tested in the order given by CategoryOrder; the first group
// with any keyword contained in the vendor name wins.
var CategoryKeywords = map[Category][]string{
	FoodRetail: {
		"soriana", "walmart", "oxxo", "chedraui", "bodega", "aurrera",
		"super", "abarrotes", "restaurante", "comercial mexicana",
	},
	Fuel: {
		"pemex", "gasolinera", "gasolina", "combustible", "servicio estacion",
	},
	OfficeSupplies: {
		"office depot", "officemax", "papeleria", "lumen",
	},
	Lodging: {
		"hotel", "motel", "suites", "hostal", "posada",
	},
	Transport: {
		"uber", "taxi", "autobus", "aeromexico", "volaris", "viva aerobus",
		"estacionamiento",
	},
}

// CategoryOrder fixes the evaluation order of the keyword groups.
var CategoryOrder = []Category{FoodRetail, Fuel, OfficeSupplies, Lodging, Transport}
