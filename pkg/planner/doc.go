// Package planner implements the operations over a goal Document: adding
// goals and tasks, listing the tree, and suggesting the next due item.
//
// Operations mutate the Document they are given and never persist it. The
// caller loads the Document through a store.Store and saves it after every
// mutating call.
package planner
