package caverun

import (
	"github.com/tinwren/pocket-arcade/internal/physics"
)

// Level map characters.
const (
	cellWall   = '#'
	cellPlat   = '='
	cellGem    = '*'
	cellSpike  = '^'
	cellPlayer = 'P'
	cellExit   = 'E'
	cellPatrol = 'M'
)

// Footprint of a patrolling platform in cells.
const (
	patrolW    = 4.0
	patrolH    = 1.0
	patrolSpan = 8 // max scan distance for the patrol range
)

// defaultLevel is the built-in cave. One character per screen cell,
// y grows downward.
var defaultLevel = []string{
	"############################################################",
	"#..........................................................#",
	"#....*..............*...........................*..........#",
	"#..=====.......=======........................=====........#",
	"#..........................................................#",
	"#.......*.....................*.........E..................#",
	"#....======......M..........======....========.............#",
	"#..........................................................#",
	"#..*.........................*.............................#",
	"#.====....=====......====....====..........................#",
	"#...............................................M..........#",
	"#..........................................................#",
	"#..P........................................^^.............#",
	"############################################################",
}

// patrolSpawn places a patrolling platform and its travel range.
// minX and maxX are the edges of the free span in level coordinates.
type patrolSpawn struct {
	x, y       float64
	minX, maxX float64
}

// levelData is the parsed form of an ASCII level map. Solid runs are
// merged horizontally so a shelf is one collider, not one per cell.
type levelData struct {
	width, height int

	walls     []physics.Rect
	platforms []physics.Rect
	gems      []physics.Rect
	hazards   []physics.Rect
	patrols   []patrolSpawn

	exit    physics.Rect
	hasExit bool

	spawnX, spawnY float64
	hasSpawn       bool
}

// cellRect returns the collision rect for a run of cells starting at
// column x in row y, w cells wide and h cells tall.
func cellRect(x, y, w, h int) physics.Rect {
	return physics.Rect{
		X: float64(x) + float64(w)/2,
		Y: float64(y) + float64(h)/2,
		W: float64(w),
		H: float64(h),
	}
}

func parseLevel(rows []string) *levelData {
	lv := &levelData{height: len(rows)}
	for _, row := range rows {
		if len(row) > lv.width {
			lv.width = len(row)
		}
	}

	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case cellWall, cellPlat:
				// Merge the horizontal run into one collider.
				ch := row[x]
				start := x
				for x+1 < len(row) && row[x+1] == ch {
					x++
				}
				r := cellRect(start, y, x-start+1, 1)
				if ch == cellWall {
					lv.walls = append(lv.walls, r)
				} else {
					lv.platforms = append(lv.platforms, r)
				}
			case cellGem:
				lv.gems = append(lv.gems, cellRect(x, y, 1, 1))
			case cellSpike:
				lv.hazards = append(lv.hazards, cellRect(x, y, 1, 1))
			case cellExit:
				lv.exit = cellRect(x, y, 1, 2)
				lv.hasExit = true
			case cellPlayer:
				lv.spawnX = float64(x) + 0.5
				lv.spawnY = float64(y)
				lv.hasSpawn = true
			case cellPatrol:
				lv.patrols = append(lv.patrols, patrolAt(row, x, y))
			}
		}
	}
	return lv
}

// patrolAt computes the travel range for a patrol platform by scanning
// the row for free cells on both sides, capped at patrolSpan.
func patrolAt(row string, x, y int) patrolSpawn {
	passable := func(i int) bool {
		if i < 0 || i >= len(row) {
			return false
		}
		return row[i] != cellWall && row[i] != cellPlat
	}

	lo := x
	for lo > x-patrolSpan && passable(lo-1) {
		lo--
	}
	hi := x
	for hi < x+patrolSpan && passable(hi+1) {
		hi++
	}

	return patrolSpawn{
		x:    float64(x) + 0.5,
		y:    float64(y) + patrolH/2,
		minX: float64(lo),
		maxX: float64(hi) + 1,
	}
}
