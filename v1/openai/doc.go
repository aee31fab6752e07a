// Package openai bridges OpenAI's embeddings API into Starpoint: one call
// embeds a batch of texts and inserts the vectors, paired with per-item
// metadata, into a collection.
//
//	adapter, err := openai.NewClient(&openai.Config{APIKey: key}, store, log)
//	if err != nil {
//	    return err
//	}
//	resp, err := adapter.BuildAndInsertEmbeddings(ctx,
//	    openai.DefaultModel,
//	    []string{"first passage", "second passage"},
//	    nil, // metadata derived from the inputs
//	    starpoint.CollectionByName("documents"),
//	    "",
//	)
//
// The provider response is always returned, even when the Starpoint write
// fails; callers who need the write outcome inspect Response.Starpoint.
package openai
