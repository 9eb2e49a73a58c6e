// Package many aggregates slices of containers into single outcomes.
//
// Three policies exist, one function family each:
//   - All*: error-collecting. Every element is inspected; when any fail, the
//     outcome carries every failure payload in input order.
//   - Sequence*: fail-fast. Accumulation stops at the first failure and its
//     payload alone becomes the outcome; later elements are never inspected.
//   - Partition*: total separation. Every element lands in exactly one of two
//     plain slices, successes and failures, both in input order.
//
// Every combinator is a pure single pass over its input, allocates fresh
// output slices and never mutates the containers it reads. An empty input is
// valid and aggregates to an empty success.
//
// Zip2/Zip3 and Combine2/Combine3 are the fixed-arity entry points for call
// sites whose element types differ per position.
package many
