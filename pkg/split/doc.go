// Package split implements the directory splitting pipeline.
//
// The package is responsible for:
//   - Shard naming: fixed-width, zero-padded directory names derived from the
//     shard index and total shard count
//   - Shard assignment: a deterministic mapping from a file's ordinal position
//     to its shard, balancing load in consecutive blocks
//   - Provisioning: idempotent creation of the output root and all shard
//     directories
//   - Enumeration: a stable, sorted listing of the regular files directly
//     inside the source directory
//   - Orchestration: the Splitter, which composes the above and performs the
//     transfers in order
//
// Key Design Principles:
//   - Deterministic: the same source directory and shard count always produce
//     the same partition
//   - Front-loaded partition: every shard receives floor(N/K) files in
//     consecutive blocks and the last shard absorbs the remainder
//   - Sequential: files are transferred one at a time in enumeration order;
//     a failed transfer aborts the run, leaving prior transfers in place
package split
