// Package commands implements the gokin command line: querying the kinetics
// estimator for one set of species or for a batch of them, and serving
// canned estimator responses for testing.
package commands
