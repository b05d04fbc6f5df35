// Package accel implements the bounding volume hierarchy used to
// accelerate ray/primitive intersection: an SAH-built binary tree,
// flattened into an array for cache-friendly traversal with a small
// fixed-size stack.
package accel

import (
	"sort"

	"tracer/pkg/geom"
	"tracer/pkg/shape"
)

// Primitive is the minimal surface the BVH needs from a scene object: its
// world-space bound and the two intersection queries. pkg/scene's
// GeometricPrimitive and TransformedPrimitive both satisfy it.
type Primitive interface {
	WorldBound() geom.Bounds3
	Intersect(ray *geom.Ray) (shape.SurfaceInteraction, bool)
	IntersectP(ray geom.Ray) bool
}

const (
	nBuckets     = 12
	maxPrimsInNode = 255
	defaultLeafSize = 4
)

type buildPrimitive struct {
	index   int
	bounds  geom.Bounds3
	centroid geom.Point3
}

// buildNode is the intermediate tree produced by the recursive SAH build;
// it is flattened into linearNode array once construction finishes.
type buildNode struct {
	bounds      geom.Bounds3
	left, right *buildNode
	splitAxis   int
	firstPrim   int
	numPrims    int
}

func (n *buildNode) isLeaf() bool { return n.left == nil && n.right == nil }

// linearNode is the flattened, traversal-time representation: an
// interior node stores the offset of its second child (the first child
// always immediately follows in the array), a leaf stores the offset and
// count of its primitives in the reordered index array.
type linearNode struct {
	bounds        geom.Bounds3
	primitivesOffset int // leaf only
	secondChildOffset int // interior only
	numPrimitives  uint16
	axis           uint8
}

// BVH is an SAH-built bounding volume hierarchy over a fixed primitive
// set, following the classic pbrt linearization: a build pass produces a
// binary tree, then a depth-first flatten pass lays it out as an array so
// traversal needs no pointer chasing and can use a small fixed stack.
type BVH struct {
	primitives []Primitive
	nodes      []linearNode
	leafSize   int
}

// BuildOption configures the BVH builder.
type BuildOption func(*buildConfig)

type buildConfig struct {
	leafSize int
}

// WithLeafSize overrides the default target primitive count per leaf.
func WithLeafSize(n int) BuildOption {
	return func(c *buildConfig) { c.leafSize = n }
}

// Build constructs a BVH over prims using the surface area heuristic with
// nBuckets buckets, making a leaf when the SAH estimate offers no
// improvement over an unsplit leaf, and force-splitting any node that
// would otherwise exceed maxPrimsInNode.
func Build(prims []Primitive, opts ...BuildOption) *BVH {
	cfg := buildConfig{leafSize: defaultLeafSize}
	for _, o := range opts {
		o(&cfg)
	}
	if len(prims) == 0 {
		return &BVH{leafSize: cfg.leafSize}
	}

	build := make([]buildPrimitive, len(prims))
	for i, p := range prims {
		b := p.WorldBound()
		build[i] = buildPrimitive{index: i, bounds: b, centroid: b.Centroid()}
	}

	orderedPrims := make([]Primitive, 0, len(prims))
	root := buildRecursive(build, prims, &orderedPrims, cfg.leafSize)

	b := &BVH{primitives: orderedPrims, leafSize: cfg.leafSize}
	b.nodes = make([]linearNode, 0, countNodes(root))
	flatten(root, &b.nodes)
	return b
}

func countNodes(n *buildNode) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.left) + countNodes(n.right)
}

func buildRecursive(prims []buildPrimitive, all []Primitive, ordered *[]Primitive, leafSize int) *buildNode {
	bounds := geom.EmptyBounds3()
	for _, p := range prims {
		bounds = geom.Union(bounds, p.bounds)
	}

	makeLeaf := func(prims []buildPrimitive) *buildNode {
		first := len(*ordered)
		for _, p := range prims {
			*ordered = append(*ordered, all[p.index])
		}
		return &buildNode{bounds: bounds, firstPrim: first, numPrims: len(prims)}
	}

	if len(prims) <= leafSize {
		return makeLeaf(prims)
	}

	centroidBounds := geom.EmptyBounds3()
	for _, p := range prims {
		centroidBounds = geom.UnionPoint(centroidBounds, p.centroid)
	}
	axis := centroidBounds.MaximumExtent()
	if centroidBounds.Diagonal().Component(axis) == 0 {
		// All centroids coincide along every axis: no split can separate
		// these primitives, so make a (possibly oversized) leaf.
		return makeLeaf(prims)
	}

	mid := len(prims) / 2
	if len(prims) <= 4 {
		// Too few primitives for reliable SAH bucket statistics: sort by
		// centroid along axis and split into two equal-count halves.
		sortByCentroidAxis(prims, axis)
	} else {
		bestSplit, useSAH := sahSplit(prims, centroidBounds, axis, bounds)
		if !useSAH {
			if len(prims) <= maxPrimsInNode {
				return makeLeaf(prims)
			}
			sortByCentroidAxis(prims, axis)
		} else {
			mid = bestSplit
		}
	}

	left := buildRecursive(prims[:mid], all, ordered, leafSize)
	right := buildRecursive(prims[mid:], all, ordered, leafSize)
	return &buildNode{bounds: bounds, left: left, right: right, splitAxis: axis}
}

func sortByCentroidAxis(prims []buildPrimitive, axis int) {
	sort.Slice(prims, func(i, j int) bool {
		return prims[i].centroid.ToVec3().Component(axis) < prims[j].centroid.ToVec3().Component(axis)
	})
}

// sahSplit partitions prims into nBuckets buckets along axis by centroid
// position, then evaluates the SAH cost of every one of the nBuckets-1
// possible splits, and whether the best one beats the cost of an unsplit
// leaf. When it splits, it reorders prims in place so the primitives in
// buckets at or below the best split come first, and returns their count
// as the split index.
func sahSplit(prims []buildPrimitive, centroidBounds geom.Bounds3, axis int, nodeBounds geom.Bounds3) (mid int, useSAH bool) {
	type bucketInfo struct {
		count  int
		bounds geom.Bounds3
	}
	buckets := make([]bucketInfo, nBuckets)
	for i := range buckets {
		buckets[i].bounds = geom.EmptyBounds3()
	}

	bucketOf := func(p buildPrimitive) int {
		off := centroidBounds.Offset(p.centroid).Component(axis)
		b := int(float32(nBuckets) * off)
		if b == nBuckets {
			b = nBuckets - 1
		}
		if b < 0 {
			b = 0
		}
		return b
	}

	for _, p := range prims {
		b := bucketOf(p)
		buckets[b].count++
		buckets[b].bounds = geom.Union(buckets[b].bounds, p.bounds)
	}

	cost := make([]float32, nBuckets-1)
	for i := 0; i < nBuckets-1; i++ {
		b0, b1 := geom.EmptyBounds3(), geom.EmptyBounds3()
		count0, count1 := 0, 0
		for j := 0; j <= i; j++ {
			b0 = geom.Union(b0, buckets[j].bounds)
			count0 += buckets[j].count
		}
		for j := i + 1; j < nBuckets; j++ {
			b1 = geom.Union(b1, buckets[j].bounds)
			count1 += buckets[j].count
		}
		cost[i] = 0.125 + (float32(count0)*b0.SurfaceArea()+float32(count1)*b1.SurfaceArea())/nodeBounds.SurfaceArea()
	}

	minCost := cost[0]
	minIdx := 0
	for i := 1; i < len(cost); i++ {
		if cost[i] < minCost {
			minCost = cost[i]
			minIdx = i
		}
	}

	leafCost := float32(len(prims))
	if len(prims) > maxPrimsInNode && minCost >= leafCost {
		// Force a split even though SAH says a leaf is cheaper, to respect
		// the hard cap on primitives per leaf.
	} else if minCost >= leafCost {
		return 0, false
	}

	partitioned := make([]buildPrimitive, 0, len(prims))
	var belowSplit, aboveSplit []buildPrimitive
	for _, p := range prims {
		if bucketOf(p) <= minIdx {
			belowSplit = append(belowSplit, p)
		} else {
			aboveSplit = append(aboveSplit, p)
		}
	}
	partitioned = append(partitioned, belowSplit...)
	partitioned = append(partitioned, aboveSplit...)
	copy(prims, partitioned)
	return len(belowSplit), true
}

func flatten(n *buildNode, nodes *[]linearNode) int {
	offset := len(*nodes)
	*nodes = append(*nodes, linearNode{})
	if n.isLeaf() {
		(*nodes)[offset] = linearNode{
			bounds:           n.bounds,
			primitivesOffset: n.firstPrim,
			numPrimitives:    uint16(n.numPrims),
		}
		return offset
	}
	axis := n.splitAxis
	flatten(n.left, nodes)
	secondChild := flatten(n.right, nodes)
	(*nodes)[offset] = linearNode{
		bounds:            n.bounds,
		axis:              uint8(axis),
		secondChildOffset: secondChild,
		numPrimitives:     0,
	}
	return offset
}

// WorldBound returns the bound of the whole hierarchy, or an empty bound
// if it holds no primitives.
func (b *BVH) WorldBound() geom.Bounds3 {
	if len(b.nodes) == 0 {
		return geom.EmptyBounds3()
	}
	return b.nodes[0].bounds
}

// Intersect walks the flattened tree with a small fixed stack (64 entries
// is generous for any hierarchy depth a real scene produces), visiting
// the nearer child first so TMax shrinks as fast as possible.
func (b *BVH) Intersect(ray *geom.Ray) (shape.SurfaceInteraction, bool) {
	if len(b.nodes) == 0 {
		return shape.SurfaceInteraction{}, false
	}
	var hit shape.SurfaceInteraction
	hitAnything := false

	invDir := ray.InvDir()
	dirIsNeg := ray.DirIsNeg(invDir)

	var stack [64]int
	stackPtr := 0
	current := 0

	for {
		node := &b.nodes[current]
		if node.bounds.IntersectP(ray.Origin, invDir, dirIsNeg, ray.TMax) {
			if node.numPrimitives > 0 {
				for i := 0; i < int(node.numPrimitives); i++ {
					prim := b.primitives[node.primitivesOffset+i]
					if si, ok := prim.Intersect(ray); ok {
						hit = si
						hitAnything = true
					}
				}
				if stackPtr == 0 {
					break
				}
				stackPtr--
				current = stack[stackPtr]
			} else {
				if dirIsNeg[node.axis] {
					stack[stackPtr] = current + 1
					stackPtr++
					current = node.secondChildOffset
				} else {
					stack[stackPtr] = node.secondChildOffset
					stackPtr++
					current = current + 1
				}
			}
		} else {
			if stackPtr == 0 {
				break
			}
			stackPtr--
			current = stack[stackPtr]
		}
	}
	return hit, hitAnything
}

// IntersectP performs a shadow-ray (any-hit) test; it returns as soon as
// any primitive reports an occlusion rather than finding the closest one.
func (b *BVH) IntersectP(ray geom.Ray) bool {
	if len(b.nodes) == 0 {
		return false
	}
	invDir := ray.InvDir()
	dirIsNeg := ray.DirIsNeg(invDir)

	var stack [64]int
	stackPtr := 0
	current := 0

	for {
		node := &b.nodes[current]
		if node.bounds.IntersectP(ray.Origin, invDir, dirIsNeg, ray.TMax) {
			if node.numPrimitives > 0 {
				for i := 0; i < int(node.numPrimitives); i++ {
					if b.primitives[node.primitivesOffset+i].IntersectP(ray) {
						return true
					}
				}
				if stackPtr == 0 {
					break
				}
				stackPtr--
				current = stack[stackPtr]
			} else {
				if dirIsNeg[node.axis] {
					stack[stackPtr] = current + 1
					stackPtr++
					current = node.secondChildOffset
				} else {
					stack[stackPtr] = node.secondChildOffset
					stackPtr++
					current = current + 1
				}
			}
		} else {
			if stackPtr == 0 {
				break
			}
			stackPtr--
			current = stack[stackPtr]
		}
	}
	return false
}
