package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"hospitality-concierge/internal/catalog"
)

// Seed inserts the given entries when the catalog tables are still empty,
// so a fresh database starts with a usable catalog without clobbering data
// maintained through other channels.
func (c *implCatalog) Seed(ctx context.Context, restaurants []catalog.Restaurant, activities []catalog.Activity, properties []catalog.PropertyFacts) error {
	db := c.db.WithContext(ctx)

	var count int64
	if err := db.Model(&restaurantRow{}).Count(&count).Error; err != nil {
		return fmt.Errorf("catalog sqlite: count restaurants: %w", err)
	}
	if count == 0 {
		for _, r := range restaurants {
			row := restaurantRow{Name: r.Name, Cuisine: r.Cuisine, Budget: r.Budget, Zone: r.Zone}
			if err := db.Create(&row).Error; err != nil {
				return fmt.Errorf("catalog sqlite: seed restaurant %q: %w", r.Name, err)
			}
		}
	}

	if err := db.Model(&activityRow{}).Count(&count).Error; err != nil {
		return fmt.Errorf("catalog sqlite: count activities: %w", err)
	}
	if count == 0 {
		for _, a := range activities {
			row := activityRow{Name: a.Name, GroupType: a.GroupType, Zone: a.Zone, Description: a.Description}
			if err := db.Create(&row).Error; err != nil {
				return fmt.Errorf("catalog sqlite: seed activity %q: %w", a.Name, err)
			}
		}
	}

	if err := db.Model(&propertyRow{}).Count(&count).Error; err != nil {
		return fmt.Errorf("catalog sqlite: count apartments: %w", err)
	}
	if count == 0 {
		for _, p := range properties {
			facilities, _ := json.Marshal(p.Facilities)
			rules, _ := json.Marshal(p.Rules)
			penalties, _ := json.Marshal(p.Penalties)
			row := propertyRow{
				Name:       p.Name,
				Facilities: string(facilities),
				Rules:      string(rules),
				Penalties:  string(penalties),
			}
			if err := db.Create(&row).Error; err != nil {
				return fmt.Errorf("catalog sqlite: seed apartment %q: %w", p.Name, err)
			}
		}
	}

	return nil
}
