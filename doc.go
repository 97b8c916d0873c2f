// Package skypath plans least-cost 3D drone flight paths over raster
// terrain, accounting for slope, wind exposure, vegetation height and
// building avoidance.
//
// 🚀 What is skypath?
//
//	A pure-Go planning library built from small, explicit stages:
//		• raster/      — spatially anchored float grids + bilinear sampling
//		• terrain/     — slope & aspect derivatives (Horn 3×3 kernel)
//		• footprint/   — building dissolve → rasterize → dilate exclusion masks
//		• costsurface/ — slope, wind, vegetation and building cost synthesis
//		• costpath/    — Dijkstra wavefront cost distance + path extraction
//		• route/       — polyline geometry and 3D terrain draping
//		• planner/     — the end-to-end pipeline with explicit failure modes
//
// ✨ Why choose skypath?
//
//   - Deterministic – fixed tie-breaking, bit-reproducible routes
//   - Explicit configuration – no global environment state, every tunable
//     threads through functional options
//   - Honest failures – Unreachable, MisalignedGrids and InvalidInput are
//     sentinel errors; a failed 3D drape degrades to the 2D route with the
//     reason attached instead of being swallowed
//
// Data flows strictly one way:
//
//	elevation ──► slope/aspect ──► cost surface ──► wavefront ──► route ──► drape
//	                   ▲                 ▲
//	        vegetation ┘   buildings+wind┘
//
// Quick start:
//
//	res, err := planner.Plan(planner.Input{
//	    Elevation: dem,
//	    Buildings: footprints,
//	    Wind:      costsurface.Wind{Speed: 8, Direction: 270},
//	    Start:     geom.Point{X: 746699, Y: 382215},
//	    End:       geom.Point{X: 747907, Y: 383991},
//	})
//
// Dive into each package's doc.go for contracts, complexity notes and the
// full error taxonomy.
package skypath
