package category

// Log prefixes
const (
	LogPrefixCleaning    = "internal.category.Cleaning"
	LogPrefixRestaurants = "internal.category.Restaurants"
	LogPrefixActivities  = "internal.category.Activities"
	LogPrefixInfo        = "internal.category.Info"
)

// Slot field names
const (
	FieldProblem     = "problem"
	FieldDescription = "description"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldOrigin      = "origin"
	FieldDestination = "destination"
	FieldDay         = "day"
	FieldCuisine     = "cuisine"
	FieldBudget      = "budget"
	FieldGroupType   = "group_type"
	FieldNotes       = "notes"
)

// RecommendationLimit caps how many catalog matches a recommendation reply
// carries, in catalog order.
const RecommendationLimit = 3

// Schema instructions injected into the extractor prompt.
const (
	InstructionsIssue = `The guest is reporting a problem with their stay (something broken, missing, or not working).
"problem" is a short label for what is wrong, "description" is how it happens or where.
If the guest says they do not know how to describe it, record that literally as the description.`

	InstructionsCleaning = `The guest is requesting a cleaning visit for the apartment.
"date" is the day they want the visit (keep their own wording, e.g. "tomorrow", "el viernes", or an ISO date).
"time" is the preferred hour.`

	InstructionsTransport = `The guest is booking a transfer.
"origin" is where they are picked up, "destination" where they are going,
"day" the travel day in their own wording, "time" the pickup hour.`

	InstructionsRestaurants = `The guest wants a restaurant recommendation.
"cuisine" is the kind of food they feel like, "budget" is cheap, medium or expensive.`

	InstructionsActivities = `The guest wants a plan or activity recommendation in the area.
"day" is when they want to go, "group_type" is who is going (family, friends or couple),
"notes" is any extra preference they mention, or "none" if they have no preference.`
)

// Responder prompts
const (
	PromptRecommendationTemplate = `You are a concierge for a holiday apartment in Calafell.
Present the following options to the guest in %s, conversationally, keeping the order and every name exactly as given.
Do not invent options that are not in the list.

Options:
%s`

	PromptInfoTemplate = `You are a concierge for the holiday apartment %q. Answer the guest's question using only the facts below, in %s. If the facts do not cover the question, say you will check with the property manager.

Facts:
%s
Recent conversation:
%s
Guest question:
%q`
)

// Responder configuration
const (
	ResponderTemperature = 0.4
	ResponderMaxTokens   = 300
)

// Localized replies
const (
	AskDetailsES = "¿Podrías darme algún detalle más sobre tu petición?"
	AskDetailsEN = "Could you give me a bit more detail about your request?"

	IssueConfirmationES = "Gracias por avisarnos. Hemos registrado la incidencia \"%s\" con referencia %s y el equipo de mantenimiento se pondrá en contacto contigo."
	IssueConfirmationEN = "Thanks for letting us know. We have registered the issue \"%s\" with reference %s and the maintenance team will get back to you."

	CleaningConfirmationES = "¡Perfecto! Hemos programado la limpieza para el %s a las %s. El equipo pasará por el apartamento."
	CleaningConfirmationEN = "Perfect! We have scheduled the cleaning for %s at %s. The team will come by the apartment."

	TransportConfirmationES = "¡Reserva confirmada! Transporte desde %s hasta %s el %s a las %s. Te esperamos puntuales."
	TransportConfirmationEN = "Booking confirmed! Transport from %s to %s on %s at %s. We will be there on time."

	NoRestaurantsES = "No he encontrado restaurantes que encajen con lo que buscas. ¿Quieres cambiar el tipo de comida o el presupuesto?"
	NoRestaurantsEN = "I couldn't find restaurants matching what you're after. Would you like to change the cuisine or the budget?"

	NoActivitiesES = "No he encontrado actividades para ese plan. ¿Quieres probar con otro tipo de grupo?"
	NoActivitiesEN = "I couldn't find activities for that plan. Would you like to try a different group type?"

	ExtendStayReplyES = "Para ampliar tu estancia, contacta directamente con recepción en el +34 977 000 000 o responde aquí y un gestor te atenderá en breve."
	ExtendStayReplyEN = "To extend your stay, please contact reception directly at +34 977 000 000 or reply here and a manager will get back to you shortly."

	DiscountsReplyES = "Como huésped tienes un 10% de descuento en los restaurantes y actividades colaboradores. Menciona el nombre del apartamento al reservar."
	DiscountsReplyEN = "As a guest you get a 10% discount at partner restaurants and activities. Mention the apartment name when booking."
)

// localized picks the reply variant for the session language. Spanish is the
// default for any language other than English, matching the guest base.
func localized(lang, es, en string) string {
	if lang == "en" {
		return en
	}
	return es
}
