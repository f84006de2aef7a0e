// Package profile defines the pluggable profile boundary (§1's "the
// profile scripting environment" external collaborator) in the shape the
// rest of the engine actually consumes: way classification, edge weighting,
// turn penalties, access rules, and the §6.3 numeric constants a profile
// may override. It also ships DefaultCarProfile, a minimal concrete profile
// used by tests, fixtures, and the example CLIs in place of a real
// scripting runtime (explicitly out of scope per spec.md §1 Non-goals).
package profile
