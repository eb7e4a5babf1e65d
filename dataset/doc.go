// Package dataset produces and persists the point sets that package sinecure
// interpolates.
//
// Points enter the system three ways: parsed out of free-form coordinate text
// (see [ParseCoords]), loaded from CSV files with selectable columns (see
// [ReadCSV]), or synthesized as a day-cycle temperature series (see
// [Generator]). [Validate] checks a point set for interpolability before it
// is handed to the solver, and [WriteCSV] round-trips point sets back to
// disk.
package dataset
