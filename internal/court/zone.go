// Package court maps raw court coordinates onto shooting zones, shot types and contest levels.
// Everything here is pure and total: any real input yields an answer.
package court

import (
	"math"

	"github.com/maxviazov/courtside-stats/internal/model"
)

// Basket is the rim center in court units.
var Basket = model.Point{X: model.CourtWidth / 2, Y: model.BasketY}

// FreeThrowSpot is where every free throw is recorded.
var FreeThrowSpot = model.Point{X: model.CourtWidth / 2, Y: model.PaintDepth}

// Distance is the Euclidean distance between two points.
func Distance(a, b model.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// ClassifyZone buckets p into a zone. The paint check wins over the arc check, and the arc uses a
// strict inequality so a point exactly on the line is still a two.
func ClassifyZone(p model.Point) model.ShotPosition {
	d := Distance(p, Basket)
	left := p.X < model.CourtWidth/2

	var zone model.Zone
	switch {
	case p.Y < model.PaintDepth && math.Abs(p.X-model.CourtWidth/2) < model.PaintHalfWidth:
		zone = model.Paint
	case d > model.ThreePointRadius:
		switch {
		case p.Y > model.CornerThreeDepth && left:
			zone = model.LeftCorner3
		case p.Y > model.CornerThreeDepth:
			zone = model.RightCorner3
		default:
			zone = model.AboveBreak3
		}
	case left:
		zone = model.MidRangeLeft
	default:
		zone = model.MidRangeRight
	}
	return model.ShotPosition{Zone: zone, Distance: d}
}

// AutoShotType suggests 2PT or 3PT for a field goal at p. Free throws are never inferred.
func AutoShotType(p model.Point) model.ShotType {
	if Distance(p, Basket) > model.ThreePointRadius {
		return model.ThreePoint
	}
	if p.Y > model.CornerThreeDepth && (p.X < 0 || p.X > model.CourtWidth) {
		return model.ThreePoint
	}
	return model.TwoPoint
}
