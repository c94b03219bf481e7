// Package snapshot provides curve.Observer implementations that capture the
// intermediate coordinates of a decode.
//
// Recorder keeps every step in memory. DirSink appends each step to a
// "{bit}_{dim}.csv" file, the layout external plotting and animation tools read.
package snapshot
