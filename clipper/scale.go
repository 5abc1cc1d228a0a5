package clipper

import (
	"math"

	clipper2 "github.com/CWBudde/Go-Clipper2/port"

	"github.com/polynest/nest2d/geom"
)

// ScaleFactor converts world-unit floats to Go-Clipper2's int64 grid. Per
// spec it must be >= 1e7 so that sub-unit geometry differences survive the
// round trip.
const ScaleFactor = 1e7

// maxSafeCoordinate bounds the magnitude of a world coordinate that can be
// scaled by ScaleFactor without overflowing int64.
const maxSafeCoordinate = float64(math.MaxInt64) / ScaleFactor / 2

func toPath64(p geom.Polygon) (clipper2.Path64, error) {
	out := make(clipper2.Path64, len(p.Points))
	for i, v := range p.Points {
		if absf(v.X) > maxSafeCoordinate || absf(v.Y) > maxSafeCoordinate {
			return nil, ErrInfeasible
		}
		out[i] = clipper2.Point64{
			X: int64(math.Round(v.X * ScaleFactor)),
			Y: int64(math.Round(v.Y * ScaleFactor)),
		}
	}
	return out, nil
}

func toPaths64(ps []geom.Polygon) (clipper2.Paths64, error) {
	out := make(clipper2.Paths64, 0, len(ps))
	for _, p := range ps {
		path, err := toPath64(p)
		if err != nil {
			return nil, err
		}
		out = append(out, path)
	}
	return out, nil
}

func fromPath64(path clipper2.Path64, id string) geom.Polygon {
	pts := make([]geom.Point, len(path))
	for i, v := range path {
		pts[i] = geom.Point{X: float64(v.X) / ScaleFactor, Y: float64(v.Y) / ScaleFactor}
	}
	return geom.Polygon{ID: id, Points: pts}
}

func fromPaths64(paths clipper2.Paths64) []geom.Polygon {
	out := make([]geom.Polygon, len(paths))
	for i, path := range paths {
		out[i] = fromPath64(path, "")
	}
	return out
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
