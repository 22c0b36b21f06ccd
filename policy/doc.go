// Package policy loads and validates the declarative curation policy
// document. The policy carries the license allow and deny lists, the
// risk detection rules, the quality rubric weights and reputation
// table, the novelty threshold and the approval queue parameters.
//
// Loading never fails: an absent or invalid document falls back to a
// built-in default so the pipeline always starts with a usable policy.
package policy
