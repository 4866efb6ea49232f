package inmem

import "hospitality-concierge/internal/catalog"

// Sample data for the Calafell apartments. Order matters: recommendations
// take the first matches.
var seedRestaurants = []catalog.Restaurant{
	{Name: "La Barca de Ca l'Ardet", Cuisine: "seafood", Budget: "expensive", Zone: "Calafell"},
	{Name: "El Vergel de Calafell", Cuisine: "mediterranean", Budget: "medium", Zone: "Calafell"},
	{Name: "Pizzeria Da Vinci", Cuisine: "italian", Budget: "cheap", Zone: "Segur de Calafell"},
	{Name: "Trattoria del Mar", Cuisine: "italian", Budget: "medium", Zone: "Calafell"},
	{Name: "Masia de la Platja", Cuisine: "catalan", Budget: "medium", Zone: "Calafell"},
	{Name: "Bar La Taberna", Cuisine: "tapas", Budget: "cheap", Zone: "Cunit"},
	{Name: "Sushi Koi", Cuisine: "japanese", Budget: "expensive", Zone: "Comarruga"},
}

var seedActivities = []catalog.Activity{
	{Name: "Castell de Calafell", GroupType: "family", Zone: "Calafell", Description: "Iberian citadel and medieval castle with guided tours"},
	{Name: "Paseo Marítimo bike route", GroupType: "couple", Zone: "Calafell", Description: "Seafront cycle path from Calafell to Cunit"},
	{Name: "Kayak & snorkel tour", GroupType: "friends", Zone: "Comarruga", Description: "Guided coastal kayak trip with snorkeling stops"},
	{Name: "Parc de l'Estany", GroupType: "family", Zone: "Cunit", Description: "Lakeside park with playgrounds and picnic areas"},
	{Name: "Sunset sailing trip", GroupType: "couple", Zone: "Segur de Calafell", Description: "Two-hour catamaran outing from the marina"},
	{Name: "Beach volleyball courts", GroupType: "friends", Zone: "Calafell", Description: "Free courts on Platja de Calafell"},
}

var seedProperties = []catalog.PropertyFacts{
	{
		Name: "Mirador del Mar 3B",
		Facilities: map[string]string{
			"wifi":         "yes, fiber 300 Mb, network 'MiradorGuest'",
			"towels":       "included, one set per guest",
			"sheets":       "included, changed on request",
			"capacity":     "up to 5 guests",
			"air_con":      "yes, in the living room and main bedroom",
			"hairdryer":    "yes, in the bathroom",
			"pool":         "no",
			"parking":      "street parking only",
			"washing_machine": "yes, in the kitchen",
		},
		Rules: []string{
			"No smoking anywhere in the apartment",
			"No pets",
			"Quiet hours from 22:00 to 08:00",
			"No parties or events",
		},
		Penalties: []string{
			"Lost keys: 50 EUR replacement fee",
			"Smoking indoors: 150 EUR cleaning fee",
			"Noise complaints after 22:00 may end the stay without refund",
		},
	},
}
