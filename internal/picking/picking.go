// Package picking converts screen positions into world-space rays for
// object selection.
package picking

import (
	"github.com/Faultbox/vanir/pkg/vmath"
)

// ScreenToRay writes the world-space ray under the given pixel into out.
// screenX and screenY are pixel coordinates with the origin in the top
// left, viewportW and viewportH are the viewport dimensions, and
// invViewProj is the inverse of the view-projection matrix. The ray is
// built by unprojecting the pixel at the near and far clip planes.
func ScreenToRay(screenX, screenY, viewportW, viewportH float64, invViewProj *vmath.Mat4, out *vmath.Ray) *vmath.Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // flip: NDC y grows upward

	near := vmath.Vec4{X: ndcX, Y: ndcY, Z: -1, W: 1}
	far := vmath.Vec4{X: ndcX, Y: ndcY, Z: 1, W: 1}

	invViewProj.TransformVec4(&near, &near)
	invViewProj.TransformVec4(&far, &far)

	if near.W != 0 {
		near.DivScalar(near.W)
	}
	if far.W != 0 {
		far.DivScalar(far.W)
	}

	var origin, dir vmath.Vec3
	near.Vec3(&origin)
	far.Vec3(&dir)
	dir.Sub(&origin)

	return out.Set(&origin, &dir)
}

// PickAABB casts a ray through the given pixel and tests it against box.
// It returns the hit distance along the ray, or -1 on a miss.
func PickAABB(screenX, screenY, viewportW, viewportH float64, invViewProj *vmath.Mat4, box *vmath.AABB) float64 {
	var ray vmath.Ray
	ScreenToRay(screenX, screenY, viewportW, viewportH, invViewProj, &ray)
	return ray.IntersectAABB(box)
}
