package insights

import (
	"fmt"

	"github.com/2beens/gyminsights/internal/config"
	"github.com/2beens/gyminsights/internal/gymstats/entries"
	"github.com/2beens/gyminsights/internal/gymstats/muscleload"
	"github.com/2beens/gyminsights/internal/gymstats/progress"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// FromConfig builds the summary policy and the movement catalog out of the
// insights config. Configured movements are added on top of the default catalog.
func FromConfig(cfg config.Insights) (policy progress.Policy, catalog *muscleload.Catalog, err error) {
	policy.TimeDirections = make(map[string]progress.Direction, len(cfg.TimeDirections))
	for movement, direction := range cfg.TimeDirections {
		d, perr := progress.ParseDirection(direction)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("time direction of %q: %w", movement, perr))
			continue
		}
		policy.TimeDirections[movement] = d
	}
	if cfg.CaseInsensitiveGrouping {
		policy.GroupOptions = append(policy.GroupOptions, entries.WithCaseInsensitiveNames())
	}

	catalog = muscleload.DefaultCatalog()
	for _, m := range cfg.MuscleMap {
		primary, perr := parseMuscles(m.Primary)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("muscle map of %q: %w", m.Name, perr))
			continue
		}
		secondary, perr := parseMuscles(m.Secondary)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("muscle map of %q: %w", m.Name, perr))
			continue
		}
		catalog.Add(muscleload.NewContribution(m.Name, primary, secondary))
	}

	log.Debugf("insights config: %d time directions, catalog of %d movements", len(policy.TimeDirections), catalog.Len())
	return policy, catalog, err
}

func parseMuscles(names []string) ([]muscleload.MuscleGroup, error) {
	muscles := make([]muscleload.MuscleGroup, 0, len(names))
	for _, name := range names {
		m, err := muscleload.ParseMuscleGroup(name)
		if err != nil {
			return nil, err
		}
		muscles = append(muscles, m)
	}
	return muscles, nil
}
