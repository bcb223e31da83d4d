// Package delivery contains the Delivery aggregate of the procurement domain.
//
// A Delivery is a physical receipt event that may be linked to an Order and
// carries the paperwork the reconciliation subsystem works with: a delivery
// note (BL number and amount) entered at validation time, and a supplier
// invoice reference matched later against the external ledger.
package delivery
