// This file defines the message types used in the Model-View-Update
// loop. File IO runs in background commands and reports back through
// these messages.

package tui

import "github.com/mesh-intelligence/datagrid/pkg/types"

type datasetLoadedMsg struct{ ds types.Dataset } // Sent when a reload finishes
type loadFailedMsg struct{ err error }           // Sent when a reload fails
type savedMsg struct{ path string }              // Sent when a save finishes
type saveFailedMsg struct{ err error }           // Sent when a save fails
