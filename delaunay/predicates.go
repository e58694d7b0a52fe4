// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"math"
	"math/big"

	"github.com/golang/geo/r2"
)

const (
	epsilon     = 1.0 / (1 << 53)
	ccwErrBound = (3 + 16*epsilon) * epsilon
	iccErrBound = (10 + 96*epsilon) * epsilon
)

// Orient returns a positive value if c lies to the left of the directed
// line from a to b, a negative value if it lies to the right and zero if
// the three points are collinear. The sign is exact for finite input.
func Orient(a, b, c r2.Point) float64 {
	l := (a.X - c.X) * (b.Y - c.Y)
	r := (a.Y - c.Y) * (b.X - c.X)
	det := l - r
	if math.Abs(det) > ccwErrBound*(math.Abs(l)+math.Abs(r)) {
		return det
	}
	return float64(orientExact(a, b, c))
}

// InCircle returns a positive value if d lies strictly inside the circle
// through a, b and c, given in counter-clockwise order, a negative value if
// it lies outside and zero if the four points are cocircular. The sign is
// exact for finite input.
func InCircle(a, b, c, d r2.Point) float64 {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y
	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdx*cdy-cdx*bdy) + blift*(cdx*ady-adx*cdy) + clift*(adx*bdy-bdx*ady)
	permanent := (math.Abs(bdx*cdy)+math.Abs(cdx*bdy))*alift +
		(math.Abs(cdx*ady)+math.Abs(adx*cdy))*blift +
		(math.Abs(adx*bdy)+math.Abs(bdx*ady))*clift
	if math.Abs(det) > iccErrBound*permanent {
		return det
	}
	return float64(inCircleExact(a, b, c, d))
}

func orientExact(a, b, c r2.Point) int {
	l := mul(sub(a.X, c.X), sub(b.Y, c.Y))
	r := mul(sub(a.Y, c.Y), sub(b.X, c.X))
	return l.Cmp(r)
}

func inCircleExact(a, b, c, d r2.Point) int {
	adx, ady := sub(a.X, d.X), sub(a.Y, d.Y)
	bdx, bdy := sub(b.X, d.X), sub(b.Y, d.Y)
	cdx, cdy := sub(c.X, d.X), sub(c.Y, d.Y)
	alift := add(mul(adx, adx), mul(ady, ady))
	blift := add(mul(bdx, bdx), mul(bdy, bdy))
	clift := add(mul(cdx, cdx), mul(cdy, cdy))

	det := mul(alift, diff(mul(bdx, cdy), mul(cdx, bdy)))
	det = add(det, mul(blift, diff(mul(cdx, ady), mul(adx, cdy))))
	det = add(det, mul(clift, diff(mul(adx, bdy), mul(bdx, ady))))
	return det.Sign()
}

func sub(x, y float64) *big.Rat {
	return diff(new(big.Rat).SetFloat64(x), new(big.Rat).SetFloat64(y))
}

func diff(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Sub(x, y)
}

func add(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Add(x, y)
}

func mul(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Mul(x, y)
}
