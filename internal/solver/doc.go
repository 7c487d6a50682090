// Package solver implements the fixed-step explicit single-step integration
// methods and the driver that advances a state vector through time.
//
// Eleven methods are available, selected by name: Euler, Heun, RK3, RK4,
// RK38, CK4, CK5, RKF4, RKF5, DP4, and DP5. All share one driver contract:
// advance y from t to t+timestep with the method's weighted-stage formula,
// then apply the boundary policy — a state value crossing its lower or upper
// threshold is hard-reset to the configured substitute, not reflected or
// clamped to the boundary. There is no step-size adaptation or error
// control; the embedded-pair methods are used at a fixed step with the
// order's weights.
package solver
