// Package engine contains the surface scanner. For each confirmed
// environment it asks the environment's layout which directories to search,
// looks for every candidate artifact in them, and classifies what it finds
// from metadata alone. This package is internal; external consumers should
// use the stable facade in pkg/core.
package engine
