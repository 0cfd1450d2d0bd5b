package lookup

import (
	"context"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/greengirl/dashboard/internal/material"
)

// Seed is the reference data loaded from a YAML file at start-up.
type Seed struct {
	Projects      []string                  `json:"projects"`
	ActivityTypes []string                  `json:"activityTypes"`
	Storage       map[material.Type]float64 `json:"storage"`
}

// LoadSeed reads and validates a seed file.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes seed YAML and rejects unknown material types or negative capacities.
func ParseSeed(data []byte) (*Seed, error) {
	var s Seed
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}

	for typ, capacity := range s.Storage {
		if !typ.Valid() {
			return nil, fmt.Errorf("seed storage: unknown material type %q", typ)
		}
		if capacity < 0 {
			return nil, fmt.Errorf("seed storage: negative capacity for %q", typ)
		}
	}

	return &s, nil
}

// Apply writes the seed into the repository. Existing names are kept and
// capacities are overwritten.
func (s *Seed) Apply(ctx context.Context, repo Repository) error {
	if err := repo.AddProjects(ctx, s.Projects); err != nil {
		return err
	}
	if err := repo.AddActivityTypes(ctx, s.ActivityTypes); err != nil {
		return err
	}
	for _, typ := range material.Types {
		capacity, ok := s.Storage[typ]
		if !ok {
			continue
		}
		if err := repo.UpsertCapacity(ctx, typ, capacity); err != nil {
			return err
		}
	}
	return nil
}
