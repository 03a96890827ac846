// Package snapshot persists document-feature matrices to local files.
//
// The file format is self-describing: a fixed header records the format
// version, the compression scheme, and the codec name, followed by a single
// compressed block holding the codec-marshalled matrix. Files written with
// any built-in codec or compression scheme can always be read back,
// regardless of the current package defaults.
//
// Example:
//
//	err := snapshot.Save("matrix.fms", m, snapshot.WithCompression(snapshot.CompressionZSTD))
//	m2, err := snapshot.Load("matrix.fms")
package snapshot
