// Package currency implements a Currency type used to identify
// a monetary unit by the following properties:
//
// - code, the shorthand for the currency, eg. USD for United States Dollar.
//
// - symbol, the glyph used when displaying amounts, eg. $.
//
// It also implements an immutable Registry mapping codes to
// currencies, which can be loaded from a YAML document.
package currency
