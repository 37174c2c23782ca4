package models

import "time"

// DEFAULT_TOTAL is the count a new bar treats as 100%
const DEFAULT_TOTAL uint64 = 100

// DEFAULT_BAR_LENGTH is the number of cells a new bar occupies
const DEFAULT_BAR_LENGTH = 90

// NEWLINE_WIDTH is the minimum bar width in new-line mode, shorter bars
// are padded with spaces up to it
const NEWLINE_WIDTH = 50

// DEFAULT_FILL is the character used for completed cells
const DEFAULT_FILL = '='

// defaults used by the demo driver (can be set using flags or RICHBAR_* variables)
var (
	DEFAULT_DEMO_LENGTH = 80
	DEFAULT_DEMO_COLOR  = "red"
	DEFAULT_DEMO_DELAY  = 150 * time.Millisecond
	ENV_PREFIX          = "RICHBAR_"
)
