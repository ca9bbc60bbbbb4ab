// Package types defines the scalar value model, dataset snapshot types,
// configuration, and standard errors shared by the datagrid packages.
package types
