package importer

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/heartmarshall/planner-backend/internal/domain"
	"github.com/heartmarshall/planner-backend/internal/service/activity"
)

//go:embed catalog.toml
var catalogTOML string

type catalogEntry struct {
	Title       string `toml:"title"`
	Area        string `toml:"area"`
	Priority    int    `toml:"priority"`
	Status      string `toml:"status"`
	Description string `toml:"description"`
	Responsible string `toml:"responsible"`
	Deadline    string `toml:"deadline"`
	Location    string `toml:"location"`
	How         string `toml:"how"`
	Cost        string `toml:"cost"`
}

type catalogFile struct {
	Activities []catalogEntry `toml:"activity"`
}

// Catalog returns the initial action plan as validated create inputs.
func Catalog() ([]activity.CreateActivityInput, error) {
	var file catalogFile
	if _, err := toml.Decode(catalogTOML, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	items := make([]activity.CreateActivityInput, 0, len(file.Activities))
	for i, e := range file.Activities {
		priority := domain.Priority(e.Priority)
		status := domain.ActivityStatus(e.Status)
		in := activity.CreateActivityInput{
			Title:       e.Title,
			Area:        e.Area,
			Priority:    &priority,
			Status:      &status,
			Description: optional(e.Description),
			Responsible: optional(e.Responsible),
			Deadline:    optional(e.Deadline),
			Location:    optional(e.Location),
			How:         optional(e.How),
			Cost:        optional(e.Cost),
		}
		if err := in.Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d (%q): %w", i, e.Title, err)
		}
		items = append(items, in)
	}
	return items, nil
}

func optional(s string) *string {
	return domain.TrimOrNil(&s)
}
