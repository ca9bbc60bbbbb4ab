// Package datagrid exposes project-level metadata.
package datagrid

// Version is the datagrid release version.
const Version = "0.1.0"
