package happywhale

import (
	"context"
	"time"

	"github.com/seawatch/happywhale/internal/domain/reference"
)

// Ocean is an ocean known to the lookup database.
type Ocean struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Sea is a sea within an ocean.
type Sea struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OceanID int64  `json:"oceanId"`
}

// Oceans lists all oceans ordered by id.
func (c *Client) Oceans(ctx context.Context) (out []Ocean, err error) {
	start := time.Now()
	defer func() { c.obs.observe("oceans", start, err) }()

	oceans, err := c.refSvc.Oceans(ctx)
	if err != nil {
		return nil, err
	}
	out = make([]Ocean, len(oceans))
	for i, o := range oceans {
		out[i] = Ocean{ID: o.ID, Name: o.Name}
	}
	return out, nil
}

// Seas lists the seas of the named ocean. An unknown ocean yields an empty list.
func (c *Client) Seas(ctx context.Context, oceanName string) (out []Sea, err error) {
	start := time.Now()
	defer func() { c.obs.observe("seas", start, err) }()

	seas, err := c.refSvc.SeasByOceanName(ctx, oceanName)
	if err != nil {
		return nil, err
	}
	return toSeas(seas), nil
}

// SeasByOceanID lists the seas of the ocean with the given id.
func (c *Client) SeasByOceanID(ctx context.Context, oceanID int64) (out []Sea, err error) {
	start := time.Now()
	defer func() { c.obs.observe("seas", start, err) }()

	seas, err := c.refSvc.SeasByOceanID(ctx, &oceanID)
	if err != nil {
		return nil, err
	}
	return toSeas(seas), nil
}

// SpeciesNames lists species display names in alphabetical order.
func (c *Client) SpeciesNames(ctx context.Context) (names []string, err error) {
	start := time.Now()
	defer func() { c.obs.observe("species", start, err) }()

	return c.refSvc.SpeciesNames(ctx)
}

func toSeas(seas []reference.Sea) []Sea {
	out := make([]Sea, len(seas))
	for i, s := range seas {
		out[i] = Sea{ID: s.ID, Name: s.Name, OceanID: s.OceanID}
	}
	return out
}
