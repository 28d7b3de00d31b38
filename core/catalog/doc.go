// Package catalog maps vehicle model names to their maintenance policy
// bundles. The five built-in models are available in two policy versions:
// Legacy, which predates tire rules and uses a two year battery interval for
// Spindler batteries, and Current, which adds tire rules and a three year
// interval. Models defined in configuration can be registered on top.
package catalog
