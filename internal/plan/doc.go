// Package plan resolves SCADA records against the loaded device tables and
// produces a Plan consumed by script generation.
//
// Resolution of one record:
//  1. Directive records (binary inputs) pass through unchanged
//  2. Look up the device; a missing device yields OutcomeNoDataMap
//  3. Look up the point by key, then by index equality
//  4. A missing point or a point not marked for SCADA yields OutcomeNoAlias
//  5. Otherwise OutcomeResolved with the point's alias
//
// Data-quality findings (index mismatch, unmarked points, missing devices)
// are collected in Plan.Diagnostics.
package plan
