package gears

import "math"

// MeshingAngle returns the rotation a new gear of the given radius, centered at
// center, needs so that its teeth interlock with those of existing.
//
// The new gear uses existing's tooth width and depth. Its phase follows the
// bearing between the two centers, scaled by the gear ratio, minus existing's
// own rotation carried through the same ratio. A gear with an even number of
// teeth is turned by another half tooth so that a tooth, not a gap, sits on
// the line between the centers.
//
// The result is NaN if radius can't hold any teeth.
func MeshingAngle(existing Gear, center Point, radius float64) float64 {
	teeth := teethCount(radius, existing.ToothWidth, existing.ToothDepth)
	if teeth == 0 {
		return math.NaN()
	}
	existingTeeth := existing.Teeth
	if existingTeeth == 0 {
		existingTeeth = teethCount(existing.Radius, existing.ToothWidth, existing.ToothDepth)
	}
	ratio := float64(existingTeeth) / float64(teeth)

	bearing := existing.Center.AngleTo(center) + math.Pi/2

	var offset float64
	if teeth%2 == 0 {
		offset = (tau / float64(teeth)) / 2
	}

	return bearing*(ratio+1) - existing.Rotation*ratio + offset
}
