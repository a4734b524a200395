// Package shapeeval computes the Continuous Shape Measure between a fixed
// reference point cloud and a candidate rotation of an actual point cloud.
//
// Given a rotation R, it builds the squared-distance cost matrix between
// every actual vertex and every reference vertex, solves it with package
// assignment for the optimal correspondence, and reduces the assigned
// squared distances to a single scalar measure — optionally first solving
// for the least-squares scale that minimizes the measure (the
// optimal-scale variant).
//
// shapeeval itself performs no search over R; package optimizer drives the
// rotation search and calls shapeeval once per candidate orientation.
package shapeeval
