// Package reembed recomputes stored section and subsection embeddings
// with a new or updated embedding model.
//
// The package walks both tables in id order, embeds row text in batches
// with retry and exponential backoff, normalizes the resulting vectors
// for cosine similarity, and writes them back. Batches are processed on
// a bounded worker pool with progress reporting.
package reembed
