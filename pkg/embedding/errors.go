package embedding

import "errors"

// ErrEmbeddingFailure marks transport errors and non-success responses
// from the embedding model. The upstream detail is wrapped alongside it.
var ErrEmbeddingFailure = errors.New("failed to generate embedding")
