// Package dataframe maps tabular data onto Starpoint's columnar operations.
//
// A Frame is an ordered, named-column table whose rows become documents: the
// embedding column (default "embedding") supplies each row's vector, and all
// remaining columns are flattened into that row's metadata map.
//
//	f, _ := dataframe.NewFrame("embedding", "title", "page")
//	f.AppendRow(starpoint.NewVector(values), "intro", 1)
//
//	adapter := dataframe.NewClient(store, log)
//	resp, err := adapter.InsertFrame(ctx, f, starpoint.CollectionByName("documents"))
package dataframe
