// meta/meta.go
package meta

import "time"

// TURN_TIME is the default thinking time of a search agent per decision.
const TURN_TIME = 500 * time.Millisecond

// MAX_MOVES ends a game without a winner after this many moves in total.
const MAX_MOVES = 300

// NUM_GAMES defines the number of games an experiment plays by default.
const NUM_GAMES = 12

// PARALLEL defines how many games run at the same time.
const PARALLEL = 4
