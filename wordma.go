// Package wordma provides the local toolkit behind the wordma blog authoring
// app. It tracks sites and articles in a local database, restores the last
// opened site on launch, and drives theme and deployment directories through
// git and the theme's package manager.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, git/, http/).
package wordma
