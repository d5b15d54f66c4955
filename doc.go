// Package happywhale builds and submits encounter and individual searches
// against the Happywhale critterspot service.
//
// Ocean, sea and species names are resolved to service identifiers through a
// local read-only SQLite lookup database. Names that are not in the database
// are sent as null rather than rejected.
//
//	client, _ := happywhale.New(ctx, happywhale.WithDatabase("happywhale.db"))
//
//	res, err := client.SearchEncounters(ctx,
//	    happywhale.DateBetween{Start: "2023-01-01", End: "2023-06-30"},
//	    happywhale.WaterGeo{OceanName: "Pacific", SeaName: "Bering Sea"},
//	    happywhale.WithSpecies("Orca"),
//	    happywhale.WithShowConnections(true),
//	)
//
// Queries can be built without sending them:
//
//	q, _ := client.BuildIndividualSearch(ctx, "Humpback Whale")
//	body, _ := json.Marshal(q)
//
// The client holds no open connections: every lookup opens the database,
// runs one query and closes it again. Each search is a single HTTP POST
// with no retries.
package happywhale
