package chomp

// distToTileMid returns the signed pixel distance from a position to the
// midpoint of its tile, per axis. Zero on both axes means the actor is
// exactly centered.
func distToTileMid(pos Point) Point {
	return Point{
		X: tileSize/2 - pos.X%tileSize,
		Y: tileSize/2 - pos.Y%tileSize,
	}
}

// canMove reports whether an actor at pos can advance one pixel in dir.
// Movement is blocked when the actor has a perpendicular offset from the
// tile centerline and cornering is not allowed, or when the tile one step
// ahead is blocking and the actor is already centered along the movement
// axis. Cornering is a player-only privilege.
func (pf *playfield) canMove(pos Point, dir Dir, allowCornering bool) bool {
	dirVec := dir.Vector()
	distMid := distToTileMid(pos)

	var moveDistMid, perpDistMid int
	if dirVec.X != 0 {
		moveDistMid, perpDistMid = distMid.X, distMid.Y
	} else {
		moveDistMid, perpDistMid = distMid.Y, distMid.X
	}

	if !allowCornering && perpDistMid != 0 {
		return false
	}

	checkTile := clampedTilePos(pixelToTile(pos).Add(dirVec))
	if pf.isBlocking(checkTile) && moveDistMid == 0 {
		return false
	}
	return true
}

// move advances pos one pixel in dir. With cornering enabled the
// perpendicular axis is additionally nudged one pixel toward the tile
// centerline, never overshooting. The x coordinate wraps modulo the
// display width, which is what makes the tunnel teleport work.
func move(pos Point, dir Dir, allowCornering bool) Point {
	dirVec := dir.Vector()
	pos = pos.Add(dirVec)

	if allowCornering {
		distMid := distToTileMid(pos)
		if dirVec.X != 0 {
			if distMid.Y < 0 {
				pos.Y--
			} else if distMid.Y > 0 {
				pos.Y++
			}
		} else {
			if distMid.X < 0 {
				pos.X--
			} else if distMid.X > 0 {
				pos.X++
			}
		}
	}

	if pos.X < 0 {
		pos.X = displayPixelsX - 1
	} else if pos.X >= displayPixelsX {
		pos.X = 0
	}
	return pos
}
