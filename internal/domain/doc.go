// Package domain contains the back-office entities: branches, categories,
// products, positions, staff, invoices, invoice items and the users who
// operate them. Entities carry gorm and json tags so the same structs are
// persisted and rendered without a mapping layer.
package domain
