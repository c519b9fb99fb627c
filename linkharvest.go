// Package linkharvest collects hyperlink URLs from rendered pages and strips
// tracking parameters from them. Links can be harvested from a page's main
// content, from an active text selection, or from a rectangle dragged over
// the page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/). The
// harvesting algorithms themselves live in harvest/ and only see the page
// through the Page, Element and TextRange interfaces declared here.
package linkharvest
