// Package models defines the core domain models for Cantina.
//
// # Models
//
//   - Beer / Stock: the shared inventory of purchasable beverages
//   - RoundItem / Round: one batch of simultaneous purchases with a single timestamp
//   - OrderItem: per-beer aggregate across all rounds of the open order
//   - Order: the running bill (subtotal, taxes, discounts, total, payment state)
//   - Friend: a participant discovered from purchases, with a running paid balance
//
// Participants are identified by name strings; there are no user accounts.
// The system models exactly one open order (tab) at a time.
//
// # Design Principles
//
//  1. Models are plain data; all computation lives in the billing and settle packages.
//  2. OrderItem rows are derived from rounds by grouping on beer name — never hand-edited.
//  3. Monetary values are float64 rounded to 2 decimals at each derived computation.
package models
