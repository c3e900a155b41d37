package battlesquares

// Decide picks a single action for the actor selfId from one snapshot.
//
// The first live opponent met while walking outward from the player in
// the order up, down, left, right is fired at. A dead actor still
// occupies its cell, so it ends the walk along that ray without being
// a target. With nothing to fire at, the player moves to the first
// adjacent cell (same order) that is inside the grid and empty. If no
// such cell exists the action is ActionNone.
func Decide(snapshot GameSnapshot, selfId ActorID) (Action, error) {
	if err := snapshot.Validate(); err != nil {
		return ActionNone, err
	}

	self, err := snapshot.FindActor(selfId)
	if err != nil {
		return ActionNone, err
	}

	if d, ok := alignedTarget(snapshot, self); ok {
		return FireAction(d), nil
	}

	if d, ok := safeMove(snapshot, self); ok {
		return MoveAction(d), nil
	}

	return ActionNone, nil
}

func alignedTarget(snapshot GameSnapshot, self Actor) (Direction, bool) {
	for _, d := range Directions {
		target, found := scanRay(snapshot, self, d)
		if found && target.Alive {
			return d, true
		}
	}
	return 0, false
}

// Walks from self in direction d and returns the first actor on the ray.
func scanRay(snapshot GameSnapshot, self Actor, d Direction) (Actor, bool) {
	for pos := self.Position.Move(d); pos.InBounds(snapshot.GridSize); pos = pos.Move(d) {
		if actor, prs := snapshot.ActorAt(pos, self.ID); prs {
			return actor, true
		}
	}
	return Actor{}, false
}

func safeMove(snapshot GameSnapshot, self Actor) (Direction, bool) {
	for _, d := range Directions {
		dest := self.Position.Move(d)
		if !dest.InBounds(snapshot.GridSize) {
			continue
		}
		if _, occupied := snapshot.ActorAt(dest, self.ID); occupied {
			continue
		}
		return d, true
	}
	return 0, false
}

// LineOfFire answers the naive line-of-fire check: the first enemy in
// list order sharing the player's row or column decides the fire
// direction. Nothing blocks the line and enemies on the player's own
// cell are ignored.
func LineOfFire(player Position, enemies []Position) (Action, bool) {
	for _, enemy := range enemies {
		if enemy == player {
			continue
		}

		if enemy.X == player.X {
			if enemy.Y < player.Y {
				return ActionFireLeft, true
			}
			return ActionFireRight, true
		}

		if enemy.Y == player.Y {
			if enemy.X < player.X {
				return ActionFireUp, true
			}
			return ActionFireDown, true
		}
	}
	return ActionNone, false
}
