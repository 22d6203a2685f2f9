// Package pageaudit provides a static HTML content auditor. It rebuilds a
// minimal document tree from a rendered page, extracts SEO metadata,
// structured data, links, images and assets, computes readability statistics
// and classifies policy issues into machine- and human-readable reports.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, git/).
package pageaudit
