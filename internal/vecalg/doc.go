// Package vecalg provides the abstract element-wise arithmetic that the
// odeflow integrators are written against: a vector algebra with a real
// scalar field.
//
// Components are carried internally as complex128 so a single type
// serves real, complex, and tuple-of-real-or-complex right-hand sides.
// A pure real problem simply keeps every imaginary part at exactly
// zero throughout; every operation here preserves that invariant when
// no complex input is introduced.
package vecalg
