package app

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"blendviz/adapters/excel"
	"blendviz/domain/formulation"
	"blendviz/internal/config"
	"blendviz/internal/errors"
)

// LoadDataset runs the startup pipeline: read the formulation workbook and
// the optional classification workbooks, apply the significance filter once,
// and freeze the result into the immutable Dataset bundle shared by every
// render call. Any failure here is fatal for the process.
func LoadDataset(ctx context.Context, cfg *config.Config) (*formulation.Dataset, error) {
	var (
		source  *formulation.RecipeTable
		sensory formulation.SensoryMap
		groups  formulation.RecipeGroup
	)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		table, err := excel.NewDataReader(cfg.Data.RecipeFile).ReadRecipeTable()
		if err != nil {
			return errors.Wrapf(err, "loading recipe table from %s", cfg.Data.RecipeFile)
		}
		source = table
		return nil
	})

	if cfg.Data.SensoryFile != "" {
		g.Go(func() error {
			m, err := excel.NewDataReader(cfg.Data.SensoryFile).ReadSensoryMap()
			if err != nil {
				return errors.Wrapf(err, "loading sensory map from %s", cfg.Data.SensoryFile)
			}
			sensory = m
			return nil
		})
	}

	if cfg.Data.GroupsFile != "" {
		g.Go(func() error {
			m, err := excel.NewDataReader(cfg.Data.GroupsFile).ReadRecipeGroups()
			if err != nil {
				return errors.Wrapf(err, "loading recipe groups from %s", cfg.Data.GroupsFile)
			}
			groups = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	filtered := formulation.Filter(source, cfg.Filter.MinUsage, cfg.Filter.MinWeight)
	log.Printf("[LoadDataset] Significance filter (usage<=%d AND max<%.4f) kept %d of %d ingredients",
		cfg.Filter.MinUsage, cfg.Filter.MinWeight, len(filtered.Ingredients()), len(source.Ingredients()))

	return &formulation.Dataset{
		Source:  source,
		Table:   filtered,
		Sensory: sensory,
		Groups:  groups,
	}, nil
}
