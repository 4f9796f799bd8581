// Package obsio reads and writes the flat files the relocation core
// exchanges with its collaborators:
//
//   - observation tables — whitespace-separated columns with a header row
//     and '#' comment lines, one phase arrival per line:
//     station latitude longitude distance azimuth phase time dtdd dtdh dt cc weight
//   - event lists — CSV of time,latitude,longitude,depth,magnitude; by
//     convention the first row is the master event and the second the
//     slave being relocated.
//   - misfit surfaces — gzip-compressed JSON dumps of a sweep's Surface,
//     written with parallel gzip so multi-million-node surfaces stay cheap.
//
// Parsing is strict: a malformed record fails the whole read with an error
// naming the offending line. Silently skipping observations would change
// scientific results downstream.
package obsio
