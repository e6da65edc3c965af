// Package money implements a Money type used to represent
// a monetary amount defined by the following properties:
//
// - amount, an exact base-10 decimal which keeps its scale,
// eg. 1.00 has a scale of 2.
//
// - currency, the currency.Currency the amount is expressed in.
//
// Money values are immutable. Arithmetic between two Money values
// requires both to share the same currency and returns
// ErrCurrencyMismatch otherwise.
package money
