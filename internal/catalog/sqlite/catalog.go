package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hospitality-concierge/internal/catalog"
)

func (c *implCatalog) Restaurants(ctx context.Context, cuisine, budget string) ([]catalog.Restaurant, error) {
	q := c.db.WithContext(ctx).Model(&restaurantRow{}).Order("id")
	if cuisine != "" {
		q = q.Where("LOWER(cuisine) LIKE ?", "%"+strings.ToLower(cuisine)+"%")
	}
	if budget != "" {
		q = q.Where("LOWER(budget) LIKE ?", "%"+strings.ToLower(budget)+"%")
	}

	var rows []restaurantRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("catalog sqlite: restaurants query failed: %w", err)
	}

	out := make([]catalog.Restaurant, 0, len(rows))
	for _, r := range rows {
		out = append(out, catalog.Restaurant{Name: r.Name, Cuisine: r.Cuisine, Budget: r.Budget, Zone: r.Zone})
	}
	return out, nil
}

func (c *implCatalog) Activities(ctx context.Context, groupType string) ([]catalog.Activity, error) {
	q := c.db.WithContext(ctx).Model(&activityRow{}).Order("id")
	if groupType != "" {
		q = q.Where("LOWER(group_type) LIKE ?", "%"+strings.ToLower(groupType)+"%")
	}

	var rows []activityRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("catalog sqlite: activities query failed: %w", err)
	}

	out := make([]catalog.Activity, 0, len(rows))
	for _, a := range rows {
		out = append(out, catalog.Activity{Name: a.Name, GroupType: a.GroupType, Zone: a.Zone, Description: a.Description})
	}
	return out, nil
}

func (c *implCatalog) PropertyFacts(ctx context.Context, name string) (catalog.PropertyFacts, error) {
	var row propertyRow
	err := c.db.WithContext(ctx).Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return catalog.PropertyFacts{}, catalog.ErrPropertyNotFound
	}
	if err != nil {
		return catalog.PropertyFacts{}, fmt.Errorf("catalog sqlite: property query failed: %w", err)
	}

	facts := catalog.PropertyFacts{Name: row.Name, Facilities: map[string]string{}}
	// Stored JSON may be missing or malformed; an empty record is still usable.
	if row.Facilities != "" {
		if err := json.Unmarshal([]byte(row.Facilities), &facts.Facilities); err != nil {
			c.l.Warnf(ctx, "catalog sqlite: malformed facilities JSON for %q: %v", name, err)
		}
	}
	if row.Rules != "" {
		if err := json.Unmarshal([]byte(row.Rules), &facts.Rules); err != nil {
			c.l.Warnf(ctx, "catalog sqlite: malformed rules JSON for %q: %v", name, err)
		}
	}
	if row.Penalties != "" {
		if err := json.Unmarshal([]byte(row.Penalties), &facts.Penalties); err != nil {
			c.l.Warnf(ctx, "catalog sqlite: malformed penalties JSON for %q: %v", name, err)
		}
	}
	return facts, nil
}
