// Package serialization provides the native .nlcg checkpoint format for
// persisting a beta-update strategy selection.
//
// A strategy carries no state besides its type tag, so a checkpoint is a
// small self-describing header:
//
//	Format Structure:
//	  [4 bytes: Magic "NLCG"]
//	  [4 bytes: Version (uint32 LE)]
//	  [4 bytes: Flags (uint32 LE)]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [32 bytes: SHA-256 of the header JSON]
//	  [Header: JSON metadata]
//
// Example usage:
//
//	// Save the solver configuration
//	header := serialization.NewHeader(optim.KindPolakRibierePlus, vector.Float64)
//	if err := serialization.Save("solver.nlcg", header); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Restore it
//	loaded, err := serialization.Load("solver.nlcg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	update, err := serialization.Restore[*vector.Dense[float64], *vector.Dense[float64], float64](loaded)
package serialization
