// Package camera implements the perspective projection camera with
// thin-lens depth-of-field sampling that maps a sampler's CameraSample
// into a world-space ray.
package camera

import (
	"math"

	"tracer/pkg/geom"
	"tracer/pkg/sampler"
)

// Camera is implemented by every camera model.
type Camera interface {
	// GenerateRay builds the world-space ray for a camera sample,
	// returning a contribution weight (1 for a pinhole camera; a
	// lens-dependent value once vignetting/importance sampling is added).
	GenerateRay(s sampler.CameraSample) (geom.Ray, float32)
}

// Perspective is a standard pinhole/thin-lens perspective camera. The
// raster-to-camera and camera-to-world transforms are built once at
// construction from the full screen-window/aspect/fov derivation a ray
// tracer needs instead of a fixed OpenGL projection.
type Perspective struct {
	CameraToWorld geom.Transform
	RasterToCamera geom.Transform

	LensRadius     float32
	FocalDistance  float32
}

// NewPerspective builds a camera given its world transform, the
// resolution in pixels, the field of view in degrees across the shorter
// image axis, and depth-of-field parameters (lensRadius=0 disables DOF).
// The screen window is derived from the resolution's aspect ratio:
// [-1,1] on the shorter axis, aspect-scaled on the longer.
func NewPerspective(cameraToWorld geom.Transform, resX, resY int, fovDeg float32, lensRadius, focalDistance float32) *Perspective {
	aspect := float32(resX) / float32(resY)
	var screenMinX, screenMaxX, screenMinY, screenMaxY float32
	if aspect > 1 {
		screenMinX, screenMaxX = -aspect, aspect
		screenMinY, screenMaxY = -1, 1
	} else {
		screenMinX, screenMaxX = -1, 1
		screenMinY, screenMaxY = -1/aspect, 1/aspect
	}

	screenToRaster := geom.Scale(geom.NewVec3(float32(resX), float32(resY), 1)).
		Mul(geom.Scale(geom.NewVec3(1/(screenMaxX-screenMinX), 1/(screenMinY-screenMaxY), 1))).
		Mul(geom.Translate(geom.NewVec3(-screenMinX, -screenMaxY, 0)))
	rasterToScreen := screenToRaster.Inverse()

	invTanAng := float32(1.0 / math.Tan(float64(fovDeg)*math.Pi/360.0))
	cameraToScreen := perspectiveProjection(1e-2, 1000, invTanAng)
	rasterToCamera := cameraToScreen.Inverse().Mul(rasterToScreen)

	return &Perspective{
		CameraToWorld:  cameraToWorld,
		RasterToCamera: rasterToCamera,
		LensRadius:     lensRadius,
		FocalDistance:  focalDistance,
	}
}

// perspectiveProjection builds a camera-space-to-screen-space
// perspective transform mapping z=near..far to 0..1 and scaling x/y by
// the field of view, following the standard pbrt derivation.
func perspectiveProjection(near, far, invTanAng float32) geom.Transform {
	m := geom.Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, far / (far - near), -far * near / (far - near)},
		{0, 0, 1, 0},
	}
	persp := geom.NewTransform(m)
	return geom.Scale(geom.NewVec3(invTanAng, invTanAng, 1)).Mul(persp)
}

func (c *Perspective) GenerateRay(s sampler.CameraSample) (geom.Ray, float32) {
	pCamera := c.RasterToCamera.Point(geom.NewPoint3(s.PFilm.X, s.PFilm.Y, 0))
	dir := pCamera.ToVec3().Normalize()
	ray := geom.NewRayAt(geom.NewPoint3(0, 0, 0), dir, s.Time)

	if c.LensRadius > 0 {
		lens := concentricSampleDisk(s.PLens).Mul(c.LensRadius)
		ft := c.FocalDistance / dir.Z
		pFocus := ray.At(ft)
		ray.Origin = geom.NewPoint3(lens.X, lens.Y, 0)
		ray.Direction = pFocus.SubPoint(ray.Origin).Normalize()
	}

	worldRay := c.CameraToWorld.Ray(ray)
	return worldRay, 1
}

func concentricSampleDisk(u geom.Point2) geom.Point2 {
	ox, oy := 2*u.X-1, 2*u.Y-1
	if ox == 0 && oy == 0 {
		return geom.Point2{}
	}
	var theta, r float32
	if absf(ox) > absf(oy) {
		r = ox
		theta = (math.Pi / 4) * (oy / ox)
	} else {
		r = oy
		theta = (math.Pi / 2) - (math.Pi/4)*(ox/oy)
	}
	return geom.Point2{
		X: r * float32(math.Cos(float64(theta))),
		Y: r * float32(math.Sin(float64(theta))),
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
