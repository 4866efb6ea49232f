package category

import (
	"hospitality-concierge/internal/catalog"
	"hospitality-concierge/internal/dispatcher"
	"hospitality-concierge/internal/model"
	"hospitality-concierge/internal/slotfill"
	"hospitality-concierge/pkg/datemath"
	"hospitality-concierge/pkg/gcalendar"
	pkgLog "hospitality-concierge/pkg/log"
	"hospitality-concierge/pkg/openai"
)

// Deps bundles the collaborators shared by the category handlers.
type Deps struct {
	Engine     *slotfill.Engine
	Catalog    catalog.Catalog
	LLM        openai.IOpenAI
	Dates      *datemath.Parser
	Calendar   gcalendar.ICalendar // nil disables calendar booking
	CalendarID string
	Property   string
	Logger     pkgLog.Logger
}

// Register wires every category handler into the dispatcher.
func Register(d *dispatcher.Dispatcher, deps Deps) {
	d.Register(model.CategoryIssue, NewIssue(deps.Engine, deps.Logger))
	d.Register(model.CategoryCleaning, NewCleaning(deps.Engine, deps.Dates, deps.Calendar, deps.CalendarID, deps.Property, deps.Logger))
	d.Register(model.CategoryTransport, NewTransport(deps.Engine, deps.Logger))
	d.Register(model.CategoryRestaurants, NewRestaurants(deps.Engine, deps.Catalog, deps.LLM, deps.Logger))
	d.Register(model.CategoryActivities, NewActivities(deps.Engine, deps.Catalog, deps.LLM, deps.Logger))
	d.Register(model.CategoryInfo, NewInfo(deps.Property, deps.Catalog, deps.LLM, deps.Logger))
	d.Register(model.CategoryExtendStay, NewExtendStay())
	d.Register(model.CategoryDiscounts, NewDiscounts())
}
