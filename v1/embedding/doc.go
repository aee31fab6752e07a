// Package embedding is the client for Starpoint's hosted embed endpoint,
// which turns texts into embedding vectors server-side.
//
// Texts can be submitted bare (Embed), as parallel text and metadata columns
// (EmbedAndJoinMetadataByColumns), or as pre-joined records carrying the
// text under a known key (EmbedAndJoinMetadata). All three funnel into
// EmbedItems, a single POST to /api/v1/embed.
//
//	client, err := embedding.NewClient(cfg, log)
//	if err != nil {
//	    return err
//	}
//	resp, err := client.EmbedAndJoinMetadataByColumns(ctx,
//	    []string{"first passage", "second passage"},
//	    []map[string]any{{"page": 1}, {"page": 2}},
//	    embedding.ModelMiniLM,
//	)
//
// The client shares the core transport and its error contract; see the
// starpoint package documentation.
package embedding
