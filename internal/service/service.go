// Package service contains the business logic.
//
// It sits between the handler layer and the solver.
// It receives validated data from the handler, applies the
// service limits, and calls the hanoi package to do the work
package service
